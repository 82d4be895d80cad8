package model

import "time"

// PricePoint is one (date, price) sample from the historical series.
type PricePoint struct {
	Date  time.Time
	Price float64
}

// ForecastBand is a forecast range projected onto the time axis:
// the interval [Start, End] carries the [Low, High] price range.
type ForecastBand struct {
	Horizon Horizon
	Start   time.Time
	End     time.Time
	Low     float64
	High    float64
}

// BandFor derives the band for one record and horizon. End is Start
// plus the horizon's fixed duration.
func BandFor(r *DigestRecord, h Horizon) (ForecastBand, bool) {
	f, ok := r.Forecast(h)
	if !ok {
		return ForecastBand{}, false
	}
	return ForecastBand{
		Horizon: h,
		Start:   r.Date,
		End:     r.Date.AddDate(0, 0, h.Days()),
		Low:     f.Low,
		High:    f.High,
	}, true
}
