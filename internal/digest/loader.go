package digest

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"CoinDigest/internal/model"
)

// Load parses every digest-*.md file in dir, ordered by filename.
// Records without an interpretable date or a recorded price are
// skipped with a warning; they contribute no plotted point.
func Load(dir string) ([]model.DigestRecord, error) {
	files, err := filepath.Glob(filepath.Join(dir, "digest-*.md"))
	if err != nil {
		return nil, fmt.Errorf("scan digest dir: %w", err)
	}
	sort.Strings(files)

	var records []model.DigestRecord
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			log.Printf("[WARN] read %s: %v", f, err)
			continue
		}
		rec := Extract(string(data), f)
		if rec == nil {
			log.Printf("[WARN] %s: no date in filename, skipped", filepath.Base(f))
			continue
		}
		if !rec.HasPrice() {
			log.Printf("[WARN] %s: no recorded price, excluded", rec.File)
			continue
		}
		records = append(records, *rec)
	}
	return records, nil
}

// LoadRecent returns at most max records dated within the last
// lookbackDays before now, oldest first.
func LoadRecent(dir string, lookbackDays, max int, now time.Time) ([]model.DigestRecord, error) {
	records, err := Load(dir)
	if err != nil {
		return nil, err
	}
	// compare by calendar date, digest dates carry no time of day
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -lookbackDays)
	var recent []model.DigestRecord
	for _, r := range records {
		if !r.Date.Before(cutoff) {
			recent = append(recent, r)
		}
	}
	if len(recent) > max {
		recent = recent[len(recent)-max:]
	}
	return recent, nil
}
