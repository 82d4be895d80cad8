package digest

import (
	"path/filepath"
	"regexp"
	"time"

	"CoinDigest/internal/model"
)

var reISODate = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`)

// Extract parses one digest file's raw text into a DigestRecord.
// The date is taken from the filename and is the only fatal field:
// without it the whole record is discarded (nil return). Every other
// extraction is independently best-effort and leaves its field absent
// on failure.
func Extract(content, filename string) *model.DigestRecord {
	base := filepath.Base(filename)
	m := reISODate.FindStringSubmatch(base)
	if m == nil {
		return nil
	}
	date, err := time.Parse("2006-01-02", m[1])
	if err != nil {
		return nil
	}

	rec := &model.DigestRecord{
		Date:      date,
		Forecasts: extractForecasts(content),
		File:      base,
	}
	if p, _, ok := extractPrice(content); ok {
		rec.Price = &p
	}
	if c, ok := extractChange24h(content); ok {
		rec.Change24h = &c
	}
	rec.News = extractNews(content)
	rec.PlainSummary = extractPlainSummary(content)
	return rec
}
