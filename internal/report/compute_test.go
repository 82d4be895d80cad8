package report

import (
	"math"
	"testing"
	"time"

	"CoinDigest/internal/model"
)

func fp(v float64) *float64 { return &v }

func rec(date string, price float64) model.DigestRecord {
	d, _ := time.Parse("2006-01-02", date)
	return model.DigestRecord{Date: d, Price: fp(price)}
}

func TestWeeklyChange(t *testing.T) {
	records := []model.DigestRecord{rec("2026-08-17", 60000), rec("2026-08-23", 66000)}
	pct, dir, ok := weeklyChange(records)
	if !ok {
		t.Fatal("expected a result")
	}
	if math.Abs(pct-10.0) > 1e-9 {
		t.Errorf("pct = %v, want +10.0", pct)
	}
	if dir != DirectionUp {
		t.Errorf("dir = %s, want up", dir)
	}

	down := []model.DigestRecord{rec("2026-08-17", 66000), rec("2026-08-23", 60000)}
	if _, dir, _ := weeklyChange(down); dir != DirectionDown {
		t.Errorf("dir = %s, want down", dir)
	}

	if _, _, ok := weeklyChange(nil); ok {
		t.Error("expected no result for empty records")
	}
}

func TestPriceBounds(t *testing.T) {
	lo, hi := priceBounds([]float64{60000, 70000}, nil)
	if lo != 60000*0.94 || hi != 70000*1.06 {
		t.Errorf("bounds = (%v, %v)", lo, hi)
	}

	// empty series: digest prices take over
	records := []model.DigestRecord{rec("2026-08-17", 64000), rec("2026-08-18", 65000)}
	lo, hi = priceBounds(nil, records)
	if lo != 64000*0.94 || hi != 65000*1.06 {
		t.Errorf("fallback bounds = (%v, %v)", lo, hi)
	}

	// nothing at all: the static wide range
	lo, hi = priceBounds(nil, nil)
	if lo != 50000 || hi != 100000 {
		t.Errorf("static bounds = (%v, %v)", lo, hi)
	}
}

func TestWindowHighLow(t *testing.T) {
	day := func(d int, p float64) model.PricePoint {
		return model.PricePoint{Date: time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC), Price: p}
	}
	series := []model.PricePoint{day(10, 61000), day(15, 68000), day(20, 59000), day(25, 64000)}

	hi, lo, ok := windowHighLow(series, time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC))
	if !ok {
		t.Fatal("expected points in window")
	}
	if hi.Price != 68000 || lo.Price != 59000 {
		t.Errorf("hi=%v lo=%v", hi.Price, lo.Price)
	}

	// window excludes the early spike
	hi, _, _ = windowHighLow(series, time.Date(2026, 8, 16, 0, 0, 0, 0, time.UTC))
	if hi.Price != 64000 {
		t.Errorf("hi=%v, want 64000 after window start", hi.Price)
	}

	if _, _, ok := windowHighLow(series, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)); ok {
		t.Error("expected no points past the series")
	}
}

func TestLatestForecastLabels(t *testing.T) {
	old := rec("2026-08-17", 64000)
	old.Forecasts = map[model.Horizon]model.Forecast{
		model.HorizonWeek: {Label: "$60,000 – $62,000", Low: 60000, High: 62000},
		model.HorizonYear: {Label: "$143K – $150K", Low: 143000, High: 150000},
	}
	latest := rec("2026-08-23", 66000)
	latest.Forecasts = map[model.Horizon]model.Forecast{
		model.HorizonWeek: {Label: "$69,500 ± $1,500", Low: 68000, High: 71000},
	}

	labels := latestForecastLabels([]model.DigestRecord{old, latest})
	if labels[model.HorizonWeek] != "$69,500 ± $1,500" {
		t.Errorf("1w = %q, want the newest record's label", labels[model.HorizonWeek])
	}
	if labels[model.HorizonYear] != "$143K – $150K" {
		t.Errorf("1y = %q, want the older record's label", labels[model.HorizonYear])
	}
	if labels[model.HorizonMonth] != "—" {
		t.Errorf("1m = %q, want the placeholder", labels[model.HorizonMonth])
	}
}

func TestDedupNews(t *testing.T) {
	r1 := rec("2026-08-20", 64000)
	r1.News = []model.NewsItem{
		{Title: "现货ETF资金流入持续增长创新高", Body: "老版本"},
		{Title: "矿工出货压力缓解", Body: "b"},
	}
	r2 := rec("2026-08-22", 65000)
	r2.News = []model.NewsItem{
		{Title: "现货ETF资金流入持续增长超出市场预期", Body: "新版本"}, // same 12-rune prefix as r1's first item
		{Title: "美联储会议纪要引发波动", Body: "c"},
	}

	items := dedupNews([]model.DigestRecord{r1, r2}, 5)
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3 after dedup", len(items))
	}
	// newest digest first, and the newer duplicate wins
	if items[0].Body != "新版本" {
		t.Errorf("first item = %+v, want the newest record's version", items[0])
	}
	if items[0].Date != "08/22" {
		t.Errorf("date = %s", items[0].Date)
	}

	if got := dedupNews([]model.DigestRecord{r1, r2}, 2); len(got) != 2 {
		t.Errorf("limit not applied: got %d", len(got))
	}
}

func TestBandSlices(t *testing.T) {
	start := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)
	band := model.ForecastBand{
		Horizon: model.HorizonWeek,
		Start:   start,
		End:     start.AddDate(0, 0, 7),
		Low:     68000,
		High:    71000,
	}
	slices := bandSlices(band)
	if len(slices) != 12 {
		t.Fatalf("got %d slices, want 12", len(slices))
	}
	if !slices[0].X0.Equal(start) {
		t.Errorf("first slice starts at %v", slices[0].X0)
	}
	if !slices[11].X1.Equal(band.End) {
		t.Errorf("last slice ends at %v, want %v", slices[11].X1, band.End)
	}
	// solid at the start, fading toward the end
	if math.Abs(slices[0].Alpha-0.30) > 1e-9 {
		t.Errorf("first alpha = %v, want 0.30", slices[0].Alpha)
	}
	for i := 1; i < len(slices); i++ {
		if slices[i].Alpha >= slices[i-1].Alpha {
			t.Fatalf("alpha not strictly decreasing at slice %d", i)
		}
	}
	want := 0.30 * math.Pow(float64(12-5)/12, 1.8)
	if math.Abs(slices[5].Alpha-want) > 1e-12 {
		t.Errorf("slice 5 alpha = %v, want %v", slices[5].Alpha, want)
	}
}

func TestFormatHelpers(t *testing.T) {
	if got := fmtPrice(fp(67341)); got != "$67,341" {
		t.Errorf("fmtPrice = %q", got)
	}
	if got := fmtPrice(nil); got != "N/A" {
		t.Errorf("fmtPrice(nil) = %q", got)
	}
	if got := fmtChange(fp(2.27)); got != "+2.3%" {
		t.Errorf("fmtChange = %q", got)
	}
	if got := fmtChange(fp(-1.3)); got != "-1.3%" {
		t.Errorf("fmtChange = %q", got)
	}
	if got := fmtChange(nil); got != "—" {
		t.Errorf("fmtChange(nil) = %q", got)
	}
	if got := changeClass(fp(-0.1)); got != "down" {
		t.Errorf("changeClass = %q", got)
	}
	if got := groupComma(1234567); got != "1,234,567" {
		t.Errorf("groupComma = %q", got)
	}
	if got := runePrefix("比特币周报标题超过十二个字符需要截断", 12); got != "比特币周报标题超过十二个" {
		t.Errorf("runePrefix = %q", got)
	}
}
