package model

import "time"

// Horizon identifies a forecast time frame.
type Horizon string

const (
	HorizonWeek  Horizon = "1w"
	HorizonMonth Horizon = "1m"
	HorizonYear  Horizon = "1y"
)

// Days returns the horizon's fixed duration in days.
func (h Horizon) Days() int {
	switch h {
	case HorizonWeek:
		return 7
	case HorizonMonth:
		return 30
	default:
		return 365
	}
}

// Forecast is a single extracted forecast: a price range plus the
// display label reconstructed from the source line.
type Forecast struct {
	Label string
	Low   float64
	High  float64
}

// Mid returns the midpoint of the forecast range.
func (f Forecast) Mid() float64 { return (f.Low + f.High) / 2 }

// NewsItem is one extracted headline with its body paragraph.
type NewsItem struct {
	Title string
	Body  string
}

// DigestRecord is the parsed summary of one daily digest file.
// Price and Change24h are nil when no extraction rule matched.
type DigestRecord struct {
	Date         time.Time
	Price        *float64
	Change24h    *float64
	Forecasts    map[Horizon]Forecast
	News         []NewsItem
	PlainSummary string
	File         string
}

// HasPrice reports whether a recorded price was extracted. Records
// without a price are excluded from all downstream aggregation.
func (r *DigestRecord) HasPrice() bool { return r.Price != nil }

// Forecast returns the forecast for the given horizon, if present.
func (r *DigestRecord) Forecast(h Horizon) (Forecast, bool) {
	f, ok := r.Forecasts[h]
	return f, ok
}
