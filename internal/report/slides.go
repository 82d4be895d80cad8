package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"math"
	"time"

	"CoinDigest/internal/model"
)

// SlidesRenderer builds the weekly slideshow: title badges, a
// Chart.js price-trend slide with selectable time ranges, the
// day-by-day price journey, deduplicated news highlights, three
// forecast cards, and a narrative closing summary.
type SlidesRenderer struct {
	Now func() time.Time
}

func NewSlidesRenderer() *SlidesRenderer {
	return &SlidesRenderer{Now: time.Now}
}

func (s *SlidesRenderer) Name() string { return "slides" }

type slideNews struct {
	Date  string
	Title string
	Body  string
}

type slideRow struct {
	Date   string
	Price  string
	Change string
	Class  string
}

type slidesData struct {
	WeekNum    int
	Year       int
	DateFrom   string
	DateTo     string
	LatestDate string

	OpenPrice  string
	ClosePrice string
	WeeklyPct  string
	WeeklySign string
	WeeklyUp   bool

	HistLabels   template.JS
	HistValues   template.JS
	DigestDates  template.JS
	DigestPrices template.JS
	FcPoints     template.JS
	ChartMin     int
	ChartMax     int

	FC1W string
	FC1M string
	FC1Y string

	News      []slideNews
	PriceRows []slideRow
	Plain     string

	GeneratedAt string
}

func (s *SlidesRenderer) Render(records []model.DigestRecord, series []model.PricePoint) (string, error) {
	if len(records) == 0 {
		return "", fmt.Errorf("no digest data to render")
	}

	first := records[0]
	latest := records[len(records)-1]
	today := dateOnly(s.Now().UTC())
	year, week := today.ISOWeek()

	pct, dir, _ := weeklyChange(records)
	sign := "+"
	if pct < 0 {
		sign = ""
	}

	histLabels := make([]string, len(series))
	histValues := make([]float64, len(series))
	for i, p := range series {
		histLabels[i] = isoDate(p.Date)
		histValues[i] = p.Price
	}
	digestDates := make([]string, len(records))
	digestPrices := make([]float64, len(records))
	for i, r := range records {
		digestDates[i] = isoDate(r.Date)
		digestPrices[i] = *r.Price
	}

	// Forecast extension points from the latest digest: the range
	// midpoint plotted at the horizon's end date.
	type fcPoint struct {
		Date  string  `json:"date"`
		Price float64 `json:"price"`
		Label string  `json:"label"`
	}
	fcPoints := make([]fcPoint, 0, 2) // empty slice marshals to [], not null
	if f, ok := latest.Forecast(model.HorizonWeek); ok {
		fcPoints = append(fcPoints, fcPoint{
			Date:  isoDate(latest.Date.AddDate(0, 0, 7)),
			Price: math.Round(f.Mid()),
			Label: "1W预测",
		})
	}
	if f, ok := latest.Forecast(model.HorizonMonth); ok {
		fcPoints = append(fcPoints, fcPoint{
			Date:  isoDate(latest.Date.AddDate(0, 0, 30)),
			Price: math.Round(f.Mid()),
			Label: "1M预测",
		})
	}

	chartLo, chartHi := priceBounds(nil, records)

	labels := latestForecastLabels(records)

	var news []slideNews
	for _, n := range dedupNews(records, 5) {
		news = append(news, slideNews{Date: n.Date, Title: n.Title, Body: runePrefix(n.Body, 180)})
	}
	if len(news) > maxNewsCards {
		news = news[:maxNewsCards]
	}

	rows := make([]slideRow, len(records))
	for i, r := range records {
		rows[i] = slideRow{
			Date:   r.Date.Format("01/02"),
			Price:  fmtPrice(r.Price),
			Change: fmtChange(r.Change24h),
			Class:  changeClass(r.Change24h),
		}
	}

	data := slidesData{
		WeekNum:    week,
		Year:       year,
		DateFrom:   first.Date.Format("01月02日"),
		DateTo:     latest.Date.Format("01月02日"),
		LatestDate: latest.Date.Format("01月02日"),

		OpenPrice:  fmtPrice(first.Price),
		ClosePrice: fmtPrice(latest.Price),
		WeeklyPct:  fmt.Sprintf("%.1f", pct),
		WeeklySign: sign,
		WeeklyUp:   dir == DirectionUp,

		HistLabels:   marshalJS(histLabels),
		HistValues:   marshalJS(histValues),
		DigestDates:  marshalJS(digestDates),
		DigestPrices: marshalJS(digestPrices),
		FcPoints:     marshalJS(fcPoints),
		ChartMin:     int(chartLo),
		ChartMax:     int(chartHi),

		FC1W: labels[model.HorizonWeek],
		FC1M: labels[model.HorizonMonth],
		FC1Y: labels[model.HorizonYear],

		News:      news,
		PriceRows: rows,
		Plain:     latest.PlainSummary,

		GeneratedAt: isoDate(today),
	}

	var buf bytes.Buffer
	if err := slidesPage.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render slides page: %w", err)
	}
	return buf.String(), nil
}

const maxNewsCards = 4

func marshalJS(v any) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		return template.JS("null")
	}
	return template.JS(b)
}
