package digest

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"CoinDigest/internal/model"
)

var horizonLineRes = map[model.Horizon]*regexp.Regexp{
	model.HorizonWeek:  regexp.MustCompile(`(?i)(?:1\s*Week|下周|1周)[^\n]+`),
	model.HorizonMonth: regexp.MustCompile(`(?i)(?:1\s*Month|1个月[（(]?基准[）)]?|1个月)[^\n]+`),
}

// The year-end phrasing differs structurally from the short horizons:
// the label carries a year ("年底2025", "1 Year") and the range may use
// K-suffixed tokens, so it gets its own date-aware pattern over the
// whole document instead of a line match.
var reYearEnd = regexp.MustCompile(`(?i)(?:1\s*Year|年底\d{4}[（(]?主流|年底\d{4})[^\n]*?\$([\d,kK]+)[^\n–-]*?[-–]\s*\$([\d,kK]+)`)

var (
	reTargetMargin = regexp.MustCompile(`\$([\d,]+)\s*±\s*\$?([\d,]+)`)
	reLowHigh      = regexp.MustCompile(`\$([\d,]+)[^\d$]+\$([\d,]+)`)
	reSingleValue  = regexp.MustCompile(`\$([\d,]+)`)
)

// rangeRule is one entry in the ordered forecast range chain, tried
// against the matched horizon line. First success wins; the rules must
// stay in target-margin, low-high, single-value order because the
// low-high pattern would also match a ± line.
type rangeRule struct {
	name  string
	parse func(line string) (model.Forecast, bool)
}

var rangeRules = []rangeRule{
	{"target-margin", parseTargetMargin},
	{"low-high", parseLowHigh},
	{"single-value", parseSingleValue},
}

// extractForecasts collects per-horizon forecasts. Each horizon is
// independently best-effort; an unmatched horizon is simply absent.
func extractForecasts(content string) map[model.Horizon]model.Forecast {
	out := make(map[model.Horizon]model.Forecast)
	for _, h := range []model.Horizon{model.HorizonWeek, model.HorizonMonth} {
		line := horizonLineRes[h].FindString(content)
		if line == "" {
			continue
		}
		for _, rule := range rangeRules {
			if f, ok := rule.parse(line); ok {
				out[h] = f
				break
			}
		}
	}
	if f, ok := parseYearEnd(content); ok {
		out[model.HorizonYear] = f
	}
	return out
}

func parseTargetMargin(line string) (model.Forecast, bool) {
	m := reTargetMargin.FindStringSubmatch(line)
	if m == nil {
		return model.Forecast{}, false
	}
	target, err1 := parseAmount(m[1])
	margin, err2 := parseAmount(m[2])
	if err1 != nil || err2 != nil {
		return model.Forecast{}, false
	}
	return model.Forecast{
		Label: fmt.Sprintf("$%s ± $%s", groupComma(target), groupComma(margin)),
		Low:   target - margin,
		High:  target + margin,
	}, true
}

func parseLowHigh(line string) (model.Forecast, bool) {
	m := reLowHigh.FindStringSubmatch(line)
	if m == nil {
		return model.Forecast{}, false
	}
	low, err1 := parseAmount(m[1])
	high, err2 := parseAmount(m[2])
	if err1 != nil || err2 != nil {
		return model.Forecast{}, false
	}
	return model.Forecast{
		Label: fmt.Sprintf("$%s – $%s", groupComma(low), groupComma(high)),
		Low:   low,
		High:  high,
	}, true
}

// parseSingleValue widens a lone target into a synthetic ±0.5% band so
// downstream band rendering has a non-degenerate range.
func parseSingleValue(line string) (model.Forecast, bool) {
	m := reSingleValue.FindStringSubmatch(line)
	if m == nil {
		return model.Forecast{}, false
	}
	v, err := parseAmount(m[1])
	if err != nil {
		return model.Forecast{}, false
	}
	return model.Forecast{
		Label: "$" + groupComma(v),
		Low:   v * 0.995,
		High:  v * 1.005,
	}, true
}

func parseYearEnd(content string) (model.Forecast, bool) {
	m := reYearEnd.FindStringSubmatch(content)
	if m == nil {
		return model.Forecast{}, false
	}
	low, err1 := parsePriceToken(m[1])
	high, err2 := parsePriceToken(m[2])
	if err1 != nil || err2 != nil {
		return model.Forecast{}, false
	}
	return model.Forecast{
		Label: fmt.Sprintf("$%.0fK – $%.0fK", low/1000, high/1000),
		Low:   low,
		High:  high,
	}, true
}

// parsePriceToken handles K-suffixed amounts: "$143K" → 143000.
func parsePriceToken(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if strings.HasSuffix(s, "K") || strings.HasSuffix(s, "k") {
		v, err := strconv.ParseFloat(s[:len(s)-1], 64)
		return v * 1000, err
	}
	return strconv.ParseFloat(s, 64)
}

// groupComma renders a dollar amount with thousands separators,
// rounded to whole units.
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
