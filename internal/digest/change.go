package digest

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	// 24小时涨跌幅 … +2.5%
	reChangeLabeled = regexp.MustCompile(`24小时涨跌幅[^\n]*?([+-]?\d+\.?\d*)\s*%`)
	// | 24h Change | -1.3% |  (any table row whose header contains "24")
	reChangeRow = regexp.MustCompile(`\|\s*\*?\*?24[^|]*\|\s*\*?\*?([+-]?\d+\.?\d*)\s*%`)
)

// extractChange24h finds the 24-hour percentage change. Some digest
// layouts render the direction as a ↓ glyph next to an unsigned number;
// when the glyph sits just before the matched token the value is
// forced negative. This is a display-convention heuristic and is kept
// deliberately narrow: it only inspects a small byte window around the
// match and is not generalized beyond what the source files exhibit.
func extractChange24h(content string) (float64, bool) {
	loc := reChangeLabeled.FindStringSubmatchIndex(content)
	if loc == nil {
		loc = reChangeRow.FindStringSubmatchIndex(content)
	}
	if loc == nil {
		return 0, false
	}
	token := content[loc[2]:loc[3]]
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	if downArrowNear(content, loc[2], loc[3]) {
		v = -math.Abs(v)
	}
	return v, true
}

func downArrowNear(content string, start, end int) bool {
	lo := start - 5
	if lo < 0 {
		lo = 0
	}
	hi := end + 20
	if hi > len(content) {
		hi = len(content)
	}
	return strings.Contains(content[lo:hi], "↓")
}
