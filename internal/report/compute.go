package report

import (
	"math"
	"strconv"
	"strings"
	"time"

	"CoinDigest/internal/model"
)

// Direction classifies a percentage move. It drives presentation only
// (color, arrow glyph), nothing downstream branches on it.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// WeeklyChange reports the percentage move across the record window,
// for run history. False when no priced records are present.
func WeeklyChange(records []model.DigestRecord) (float64, bool) {
	pct, _, ok := weeklyChange(records)
	return pct, ok
}

// weeklyChange computes (close − open) / open × 100 across the
// aggregation window: open is the earliest record's price, close the
// latest's. Records are assumed priced and ordered oldest first.
func weeklyChange(records []model.DigestRecord) (pct float64, dir Direction, ok bool) {
	if len(records) == 0 {
		return 0, DirectionUp, false
	}
	open := *records[0].Price
	cls := *records[len(records)-1].Price
	if open == 0 {
		return 0, DirectionUp, false
	}
	pct = (cls - open) / open * 100
	dir = DirectionUp
	if pct < 0 {
		dir = DirectionDown
	}
	return pct, dir, true
}

// windowHighLow returns the highest and lowest points dated at or
// after windowStart.
func windowHighLow(series []model.PricePoint, windowStart time.Time) (hi, lo model.PricePoint, ok bool) {
	found := false
	for _, p := range series {
		if p.Date.Before(windowStart) {
			continue
		}
		if !found {
			hi, lo, found = p, p, true
			continue
		}
		if p.Price > hi.Price {
			hi = p
		}
		if p.Price < lo.Price {
			lo = p
		}
	}
	return hi, lo, found
}

// priceBounds fits a y-range around the given values with 6% headroom.
// When values is empty (remote fetch failed) it falls back to the
// digest-recorded prices, and to a wide static range when even those
// are missing.
func priceBounds(values []float64, records []model.DigestRecord) (lo, hi float64) {
	if len(values) == 0 {
		for _, r := range records {
			if r.HasPrice() {
				values = append(values, *r.Price)
			}
		}
	}
	if len(values) == 0 {
		return 50000, 100000
	}
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min * 0.94, max * 1.06
}

// latestForecastLabels picks, per horizon, the label from the most
// recent record that carries that horizon, scanning newest first.
// Horizons absent from every record yield the "—" placeholder.
func latestForecastLabels(records []model.DigestRecord) map[model.Horizon]string {
	out := map[model.Horizon]string{
		model.HorizonWeek:  "—",
		model.HorizonMonth: "—",
		model.HorizonYear:  "—",
	}
	remaining := len(out)
	for i := len(records) - 1; i >= 0 && remaining > 0; i-- {
		for h, label := range out {
			if label != "—" {
				continue
			}
			if f, ok := records[i].Forecast(h); ok {
				out[h] = f.Label
				remaining--
			}
		}
	}
	return out
}

// datedNews is a news item tagged with its digest's display date.
type datedNews struct {
	Date  string
	Title string
	Body  string
}

// dedupNews aggregates news newest-digest-first, deduplicating by the
// first 12 characters of the headline.
func dedupNews(records []model.DigestRecord, limit int) []datedNews {
	var out []datedNews
	seen := make(map[string]bool)
	for i := len(records) - 1; i >= 0; i-- {
		for _, item := range records[i].News {
			key := runePrefix(item.Title, 12)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, datedNews{
				Date:  records[i].Date.Format("01/02"),
				Title: item.Title,
				Body:  item.Body,
			})
			if len(out) >= limit {
				return out
			}
		}
	}
	return out
}

// bandSlice is one vertical slice of a fading forecast band.
type bandSlice struct {
	X0, X1 time.Time
	Alpha  float64
}

const bandSliceCount = 12

// bandSlices cuts a forecast band into adjacent time slices with
// exponentially decaying opacity, solid at the band start and fading
// toward its end.
func bandSlices(band model.ForecastBand) []bandSlice {
	total := band.End.Sub(band.Start)
	if total <= 0 {
		total = 24 * time.Hour
	}
	step := total / bandSliceCount
	slices := make([]bandSlice, bandSliceCount)
	for i := 0; i < bandSliceCount; i++ {
		frac := float64(bandSliceCount-i) / bandSliceCount
		slices[i] = bandSlice{
			X0:    band.Start.Add(time.Duration(i) * step),
			X1:    band.Start.Add(time.Duration(i+1) * step),
			Alpha: 0.30 * math.Pow(frac, 1.8),
		}
	}
	return slices
}

func fmtPrice(p *float64) string {
	if p == nil {
		return "N/A"
	}
	return "$" + groupComma(*p)
}

func fmtChange(c *float64) string {
	if c == nil {
		return "—"
	}
	sign := ""
	if *c >= 0 {
		sign = "+"
	}
	return sign + strconv.FormatFloat(*c, 'f', 1, 64) + "%"
}

func changeClass(c *float64) string {
	if c == nil {
		return ""
	}
	if *c >= 0 {
		return string(DirectionUp)
	}
	return string(DirectionDown)
}

func groupComma(v float64) string {
	n := int64(math.Round(v))
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func runePrefix(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func isoDate(t time.Time) string { return t.Format("2006-01-02") }
