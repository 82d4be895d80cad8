package digest

import (
	"regexp"
	"strconv"
	"strings"
)

// Digest files come in two languages and several historical layouts,
// so price extraction is an ordered rule chain: the first rule that
// matches wins, later rules are never consulted.
type priceRule struct {
	name  string
	match func(content string) (float64, bool)
}

var (
	// | 当前价格 | **$65,600** |
	reCurrentPriceRow = regexp.MustCompile(`\|\s*\*?\*?当前价格\*?\*?\s*\|\s*\*?\*?\$\s*([\d,]+)`)
	// | **价格（USD）** | $67,811 |  (full- or half-width parens)
	reMetricRow = regexp.MustCompile(`\|\s*\*\*价格[（(]USD[）)]\*\*\s*\|\s*\*?\*?\$\s*([\d,]+)`)
	// | Price (USD) | **$67,341** |
	reEnglishRow = regexp.MustCompile(`\|\s*\*?\*?Price[^|]*\|\s*\*?\*?\$\s*([\d,]+)`)
	// **约 $67,243 美元**  (older narrative format)
	reNarrative = regexp.MustCompile(`\*\*(?:约\s*)?\$\s*([\d,]+)\s*美元\*\*`)
	// last resort: any table cell holding a 5+ digit dollar figure
	reTableDollar = regexp.MustCompile(`\|\s*\*?\*?\$\s*([\d,]{5,})\s*\*?\*?\s*\|`)
)

var priceRules = []priceRule{
	{"current-price-row", firstAmount(reCurrentPriceRow)},
	{"metric-row", firstAmount(reMetricRow)},
	{"english-row", firstAmount(reEnglishRow)},
	{"narrative", firstAmount(reNarrative)},
	{"table-fallback", tableFallback},
}

// extractPrice runs the rule chain and returns the matched price and
// the name of the rule that produced it.
func extractPrice(content string) (float64, string, bool) {
	for _, rule := range priceRules {
		if v, ok := rule.match(content); ok {
			return v, rule.name, true
		}
	}
	return 0, "", false
}

func firstAmount(re *regexp.Regexp) func(string) (float64, bool) {
	return func(content string) (float64, bool) {
		m := re.FindStringSubmatch(content)
		if m == nil {
			return 0, false
		}
		v, err := parseAmount(m[1])
		if err != nil {
			return 0, false
		}
		return v, true
	}
}

// tableFallback scans line by line so a dollar figure buried in prose
// cannot match; only pipe-delimited rows qualify. The token must carry
// at least five digits (commas excluded), keeping fee-sized figures out.
func tableFallback(content string) (float64, bool) {
	for _, line := range strings.Split(content, "\n") {
		if !strings.Contains(line, "|") {
			continue
		}
		m := reTableDollar.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		digits := strings.ReplaceAll(m[1], ",", "")
		if len(digits) < 5 {
			continue
		}
		v, err := parseAmount(digits)
		if err != nil {
			continue
		}
		return v, true
	}
	return 0, false
}

// parseAmount converts a numeric token, stripping thousands separators.
func parseAmount(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 64)
}
