package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"time"

	"CoinDigest/internal/model"
)

// Chart palette, clean financial style.
const (
	cPrice     = "#E8640C"
	cPriceFill = "rgba(232,100,12,0.08)"
	cWeekRGB   = "59,130,246"
	cMonthRGB  = "16,185,129"
	cYearLine  = "#D97706"
	cGrid      = "rgba(203,213,225,0.6)"
	cAxis      = "#94a3b8"
	cHigh      = "#16a34a"
	cLow       = "#dc2626"
)

// ChartRenderer builds the forecast-vs-actual Plotly chart: fading
// forecast bands in the back, year-end target lines, the filled actual
// price line, and hollow markers at each digest's recorded price.
type ChartRenderer struct {
	Now func() time.Time
}

func NewChartRenderer() *ChartRenderer {
	return &ChartRenderer{Now: time.Now}
}

func (c *ChartRenderer) Name() string { return "chart" }

var chartPage = template.Must(template.New("chart").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Bitcoin · Actual Price vs Forecast Ranges</title>
  <script src="https://cdn.plot.ly/plotly-2.35.2.min.js" charset="utf-8"></script>
  <style>
    html, body { margin: 0; padding: 0; background: #ffffff; }
    #chart { max-width: 1280px; margin: 0 auto; }
  </style>
</head>
<body>
  <div id="chart"></div>
  <script>
    Plotly.newPlot("chart", {{.Data}}, {{.Layout}}, {responsive: true, scrollZoom: true});
  </script>
</body>
</html>
`))

func (c *ChartRenderer) Render(records []model.DigestRecord, series []model.PricePoint) (string, error) {
	today := dateOnly(c.Now().UTC())

	var traces []any
	var shapes []any

	// Forecast bands go first so everything else draws over them.
	first := map[model.Horizon]bool{model.HorizonWeek: true, model.HorizonMonth: true}
	for i := range records {
		for _, h := range []model.Horizon{model.HorizonWeek, model.HorizonMonth} {
			band, ok := model.BandFor(&records[i], h)
			if !ok {
				continue
			}
			bandTr, edge := bandTraces(band, first[h])
			traces = append(traces, bandTr...)
			shapes = append(shapes, edge)
			first[h] = false
		}
	}

	// Year-end target lines from the most recent record with a 1-year
	// forecast.
	var yeAnns []any
	for i := len(records) - 1; i >= 0; i-- {
		f, ok := records[i].Forecast(model.HorizonYear)
		if !ok {
			continue
		}
		x0 := records[i].Date
		x1 := time.Date(x0.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
		for _, lvl := range []struct {
			level float64
			label string
		}{
			{f.Low, fmt.Sprintf("Year-End Low · $%.0fK", f.Low/1000)},
			{f.High, fmt.Sprintf("Year-End High · $%.0fK", f.High/1000)},
		} {
			shapes = append(shapes, map[string]any{
				"type": "line",
				"x0":   isoDate(x0), "x1": isoDate(x1),
				"y0": lvl.level, "y1": lvl.level,
				"line": map[string]any{"color": cYearLine, "width": 1.5, "dash": "dot"},
			})
			yeAnns = append(yeAnns, map[string]any{
				"x": isoDate(x1), "y": lvl.level,
				"text":    "<b>" + lvl.label + "</b>",
				"xanchor": "right", "yanchor": "bottom", "showarrow": false,
				"font":    map[string]any{"size": 10, "color": cYearLine},
				"bgcolor": "rgba(255,255,255,0.8)", "borderpad": 4,
			})
		}
		// legend stub so the dotted style shows up in the legend
		traces = append(traces, map[string]any{
			"x": []any{nil}, "y": []any{nil}, "mode": "lines",
			"line":       map[string]any{"color": cYearLine, "width": 1.5, "dash": "dot"},
			"name":       fmt.Sprintf("Year-End Target (%d)", x0.Year()),
			"showlegend": true,
		})
		break
	}

	// Actual price line, filled down to a baseline at the series
	// minimum so the fill hugs the curve.
	var baseAnns []any
	if len(series) > 0 {
		dates := make([]string, len(series))
		prices := make([]float64, len(series))
		minPrice := series[0].Price
		for i, p := range series {
			dates[i] = isoDate(p.Date)
			prices[i] = p.Price
			if p.Price < minPrice {
				minPrice = p.Price
			}
		}
		baseline := make([]float64, len(series))
		for i := range baseline {
			baseline[i] = minPrice * 0.995
		}
		traces = append(traces,
			map[string]any{
				"x": dates, "y": baseline,
				"mode": "lines", "line": map[string]any{"width": 0},
				"showlegend": false, "hoverinfo": "skip",
			},
			map[string]any{
				"x": dates, "y": prices,
				"mode": "lines", "name": "BTC Actual Price",
				"line":          map[string]any{"color": cPrice, "width": 2.5},
				"fill":          "tonexty",
				"fillcolor":     cPriceFill,
				"hovertemplate": "<b>%{x|%b %d, %Y}</b><br>Price: <b>$%{y:,.0f}</b><extra></extra>",
			},
		)
		latest := series[len(series)-1]
		baseAnns = append(baseAnns, map[string]any{
			"x": isoDate(latest.Date), "y": latest.Price,
			"text":    fmt.Sprintf("<b>$%s</b>", groupComma(latest.Price)),
			"xanchor": "left", "yanchor": "middle", "showarrow": false,
			"font":    map[string]any{"size": 12, "color": cPrice},
			"bgcolor": "rgba(255,255,255,0.85)", "borderpad": 4, "xshift": 8,
		})
	}
	baseAnns = append(baseAnns, yeAnns...)

	// Hollow markers at each digest's recorded price.
	var markerDates []string
	var markerPrices []float64
	for _, r := range records {
		if !r.HasPrice() {
			continue
		}
		markerDates = append(markerDates, isoDate(r.Date))
		markerPrices = append(markerPrices, *r.Price)
	}
	traces = append(traces, map[string]any{
		"x": markerDates, "y": markerPrices,
		"mode": "markers", "name": "Recorded Price (digest)",
		"marker": map[string]any{
			"size": 8, "color": "white", "symbol": "circle",
			"line": map[string]any{"color": cPrice, "width": 2.5},
		},
		"hovertemplate": "<b>%{x|%b %d, %Y}</b><br>Recorded: <b>$%{y:,.0f}</b><extra></extra>",
	})

	// Default view: last 90 days plus five weeks of forecast runway.
	xStart := today.AddDate(0, 0, -90)
	xEnd := today.AddDate(0, 0, 35)

	// Fit the y-range to visible prices and near-term forecasts only;
	// year-end targets would stretch it too far.
	var visible []float64
	for _, p := range series {
		visible = append(visible, p.Price)
	}
	for _, r := range records {
		for _, h := range []model.Horizon{model.HorizonWeek, model.HorizonMonth} {
			if f, ok := r.Forecast(h); ok {
				visible = append(visible, f.Low, f.High)
			}
		}
	}
	yMin, yMax := priceBounds(visible, records)

	// Time-window presets with precomputed high/low annotations.
	windowButton := func(label string, lookback, runway int) map[string]any {
		return map[string]any{
			"label":  label,
			"method": "relayout",
			"args": []any{map[string]any{
				"xaxis.range": []string{
					isoDate(today.AddDate(0, 0, -lookback)),
					isoDate(today.AddDate(0, 0, runway)),
				},
				"annotations": highlightAnnotations(series, today.AddDate(0, 0, -lookback), baseAnns),
			}},
		}
	}
	allStart := today
	if len(series) > 0 {
		allStart = series[0].Date
	}
	buttons := []any{
		windowButton("1W", 7, 3),
		windowButton("1M", 30, 7),
		windowButton("3M", 90, 14),
		map[string]any{
			"label":  "All",
			"method": "relayout",
			"args": []any{map[string]any{
				"xaxis.autorange": true,
				"annotations":     highlightAnnotations(series, allStart, baseAnns),
			}},
		},
	}

	// Subtle top border line.
	shapes = append(shapes, map[string]any{
		"type": "line", "xref": "paper", "yref": "paper",
		"x0": 0, "x1": 1, "y0": 1, "y1": 1,
		"line": map[string]any{"color": cPrice, "width": 3},
	})

	layout := map[string]any{
		"title": map[string]any{
			"text": fmt.Sprintf(
				"<b>Bitcoin · Actual Price vs Forecast Ranges</b><br><sup style='color:#64748b'>Updated %s</sup>",
				today.Format("January 02, 2006")),
			"font": map[string]any{"size": 20, "color": "#0f172a", "family": "Georgia, serif"},
			"x":    0.0, "xanchor": "left", "pad": map[string]any{"l": 10},
		},
		"xaxis": map[string]any{
			"showgrid": true, "gridcolor": cGrid, "gridwidth": 1,
			"linecolor": cAxis, "tickcolor": cAxis,
			"tickfont":    map[string]any{"color": "#475569"},
			"range":       []string{isoDate(xStart), isoDate(xEnd)},
			"rangeslider": map[string]any{"visible": true, "thickness": 0.05, "bgcolor": "#f8fafc"},
		},
		"yaxis": map[string]any{
			"showgrid": true, "gridcolor": cGrid, "gridwidth": 1,
			"linecolor": cAxis, "tickcolor": cAxis,
			"tickfont":   map[string]any{"color": "#475569"},
			"tickformat": "$,.0f", "side": "right",
			"range": []float64{yMin, yMax},
		},
		"updatemenus": []any{map[string]any{
			"type": "buttons", "direction": "right",
			"x": 0, "xanchor": "left", "y": 1.12, "yanchor": "top",
			"bgcolor": "#f1f5f9", "bordercolor": cGrid, "borderwidth": 1,
			"font":    map[string]any{"size": 11, "color": "#334155"},
			"buttons": buttons,
		}},
		"dragmode":  "pan",
		"hovermode": "x unified",
		"hoverlabel": map[string]any{
			"bgcolor": "white", "bordercolor": cGrid,
			"font": map[string]any{"size": 12, "color": "#0f172a"},
		},
		"legend": map[string]any{
			"orientation": "v", "x": 0.01, "y": 0.99,
			"xanchor": "left", "yanchor": "top",
			"bgcolor": "rgba(255,255,255,0.92)", "bordercolor": "#cbd5e1", "borderwidth": 1,
			"font":       map[string]any{"size": 13, "color": "#1e293b"},
			"itemsizing": "constant", "itemwidth": 40,
		},
		"plot_bgcolor":  "white",
		"paper_bgcolor": "white",
		"font":          map[string]any{"family": "Inter, Arial, sans-serif", "color": "#334155"},
		"margin":        map[string]any{"t": 80, "b": 60, "l": 20, "r": 80},
		"height":        580,
		"shapes":        shapes,
		// default annotations match the default 3M window
		"annotations": highlightAnnotations(series, today.AddDate(0, 0, -90), baseAnns),
	}

	dataJSON, err := json.Marshal(traces)
	if err != nil {
		return "", fmt.Errorf("marshal chart data: %w", err)
	}
	layoutJSON, err := json.Marshal(layout)
	if err != nil {
		return "", fmt.Errorf("marshal chart layout: %w", err)
	}

	var buf bytes.Buffer
	err = chartPage.Execute(&buf, struct {
		Data   template.JS
		Layout template.JS
	}{template.JS(dataJSON), template.JS(layoutJSON)})
	if err != nil {
		return "", fmt.Errorf("render chart page: %w", err)
	}
	return buf.String(), nil
}

// bandTraces renders one forecast band as adjacent fading slices plus
// an invisible full-band hover polygon. The returned shape draws the
// solid left edge.
func bandTraces(band model.ForecastBand, showLegend bool) ([]any, any) {
	rgb := cWeekRGB
	name := "1-Week Forecast Range"
	group := "1w"
	if band.Horizon == model.HorizonMonth {
		rgb = cMonthRGB
		name = "1-Month Forecast Range"
		group = "1m"
	}

	var traces []any
	for i, sl := range bandSlices(band) {
		traces = append(traces, map[string]any{
			"x": []string{isoDate(sl.X0), isoDate(sl.X1), isoDate(sl.X1), isoDate(sl.X0), isoDate(sl.X0)},
			"y": []float64{band.Low, band.Low, band.High, band.High, band.Low},
			"fill":        "toself",
			"fillcolor":   fmt.Sprintf("rgba(%s,%.3f)", rgb, sl.Alpha),
			"line":        map[string]any{"width": 0},
			"mode":        "lines",
			"legendgroup": group,
			"showlegend":  showLegend && i == 0,
			"name":        name,
			"hoverinfo":   "skip",
		})
	}
	traces = append(traces, map[string]any{
		"x": []string{isoDate(band.Start), isoDate(band.End), isoDate(band.End), isoDate(band.Start), isoDate(band.Start)},
		"y": []float64{band.Low, band.Low, band.High, band.High, band.Low},
		"fill":        "toself",
		"fillcolor":   "rgba(0,0,0,0)",
		"line":        map[string]any{"width": 0},
		"mode":        "lines",
		"legendgroup": group,
		"showlegend":  false,
		"hovertemplate": fmt.Sprintf("<b>%s</b><br>From: %s<br>$%%{y:,.0f}<extra></extra>",
			name, isoDate(band.Start)),
	})

	edge := map[string]any{
		"type": "line",
		"x0":   isoDate(band.Start), "x1": isoDate(band.Start),
		"y0": band.Low, "y1": band.High,
		"line": map[string]any{"color": fmt.Sprintf("rgba(%s,0.7)", rgb), "width": 2},
	}
	return traces, edge
}

// highlightAnnotations appends window high/low callouts to the base
// annotation set for the given window start.
func highlightAnnotations(series []model.PricePoint, windowStart time.Time, base []any) []any {
	out := make([]any, len(base))
	copy(out, base)
	hi, lo, ok := windowHighLow(series, windowStart)
	if !ok {
		return out
	}
	return append(out,
		map[string]any{
			"x": isoDate(hi.Date), "y": hi.Price,
			"text":    fmt.Sprintf("<b>High: $%s</b>", groupComma(hi.Price)),
			"xanchor": "center", "yanchor": "bottom",
			"showarrow": true, "arrowhead": 2, "arrowcolor": cHigh, "arrowsize": 0.8,
			"ax": 0, "ay": -36,
			"font":    map[string]any{"size": 11, "color": cHigh},
			"bgcolor": "rgba(255,255,255,0.88)", "bordercolor": cHigh,
			"borderwidth": 1, "borderpad": 4,
		},
		map[string]any{
			"x": isoDate(lo.Date), "y": lo.Price,
			"text":    fmt.Sprintf("<b>Low: $%s</b>", groupComma(lo.Price)),
			"xanchor": "center", "yanchor": "top",
			"showarrow": true, "arrowhead": 2, "arrowcolor": cLow, "arrowsize": 0.8,
			"ax": 0, "ay": 36,
			"font":    map[string]any{"size": 11, "color": cLow},
			"bgcolor": "rgba(255,255,255,0.88)", "bordercolor": cLow,
			"borderwidth": 1, "borderpad": 4,
		},
	)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
