package report

import (
	"strings"
	"testing"
	"time"

	"CoinDigest/internal/model"
)

func fixedNow() time.Time {
	return time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
}

func weekRecords() []model.DigestRecord {
	r1 := rec("2026-08-17", 60000)
	c1 := -2.27
	r1.Change24h = &c1
	r1.Forecasts = map[model.Horizon]model.Forecast{
		model.HorizonWeek: {Label: "$61,000 – $63,000", Low: 61000, High: 63000},
	}
	r1.News = []model.NewsItem{{Title: "矿工持仓量触及半年低点", Body: "链上数据显示矿工地址余额连续数周下降，市场解读不一。"}}

	r2 := rec("2026-08-23", 66000)
	c2 := 1.5
	r2.Change24h = &c2
	r2.Forecasts = map[model.Horizon]model.Forecast{
		model.HorizonWeek:  {Label: "$69,500 ± $1,500", Low: 68000, High: 71000},
		model.HorizonMonth: {Label: "$65,000 – $73,300", Low: 65000, High: 73300},
		model.HorizonYear:  {Label: "$143K – $150K", Low: 143000, High: 150000},
	}
	r2.News = []model.NewsItem{{Title: "现货ETF资金流入创两个月新高", Body: "机构资金持续进场，多家分析机构因此上调了短期目标位。"}}
	r2.PlainSummary = "这周价格稳步上行，资金面健康，短期内看不到明显的抛压信号。"

	return []model.DigestRecord{r1, r2}
}

func weekSeries() []model.PricePoint {
	var series []model.PricePoint
	for i := 0; i < 7; i++ {
		series = append(series, model.PricePoint{
			Date:  time.Date(2026, 8, 17+i, 0, 0, 0, 0, time.UTC),
			Price: 60000 + float64(i)*1000,
		})
	}
	return series
}

func TestChartRenderer_FullDocument(t *testing.T) {
	c := &ChartRenderer{Now: fixedNow}
	html, err := c.Render(weekRecords(), weekSeries())
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"<!DOCTYPE html>",
		"Plotly.newPlot",
		"BTC Actual Price",
		"Recorded Price (digest)",
		"Year-End Low · $143K",
		"Year-End High · $150K",
		"2026-08-17", // first series date present in the data
	} {
		if !strings.Contains(html, want) {
			t.Errorf("chart HTML missing %q", want)
		}
	}
}

func TestChartRenderer_EmptySeriesStillRenders(t *testing.T) {
	c := &ChartRenderer{Now: fixedNow}
	html, err := c.Render(weekRecords(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, "Plotly.newPlot") {
		t.Error("expected a complete document without remote data")
	}
	// digest markers survive even when the price line is absent
	if !strings.Contains(html, "Recorded Price (digest)") {
		t.Error("expected digest markers")
	}
	if strings.Contains(html, "BTC Actual Price") {
		t.Error("unexpected price line with no series")
	}
}

func TestSlidesRenderer_FullDocument(t *testing.T) {
	s := &SlidesRenderer{Now: fixedNow}
	html, err := s.Render(weekRecords(), weekSeries())
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"W35",                // ISO week of 2026-08-24
		"$60,000",            // open price badge
		"$66,000",            // close price badge
		"+10.0%",             // weekly change
		"$69,500 ± $1,500",   // 1w forecast card, newest record wins
		"$143K – $150K",      // year-end card
		"现货ETF资金流入创两个月新高",   // news card
		"这周价格稳步上行",           // plain summary
		"new Chart(",         // trend chart wiring
		"1W预测",               // forecast extension point label
	} {
		if !strings.Contains(html, want) {
			t.Errorf("slides HTML missing %q", want)
		}
	}
}

func TestSlidesRenderer_EmptySeriesStillRenders(t *testing.T) {
	s := &SlidesRenderer{Now: fixedNow}
	html, err := s.Render(weekRecords(), nil)
	if err != nil {
		t.Fatal(err)
	}
	// the trend chart degrades to digest markers with digest-derived bounds
	if !strings.Contains(html, "var histLabels = [];") {
		t.Error("expected an empty history array")
	}
	if !strings.Contains(html, "new Chart(") {
		t.Error("expected the chart wiring to survive an empty series")
	}
}

func TestSlidesRenderer_NoRecords(t *testing.T) {
	s := &SlidesRenderer{Now: fixedNow}
	if _, err := s.Render(nil, weekSeries()); err == nil {
		t.Fatal("expected an error with no digest records")
	}
}
