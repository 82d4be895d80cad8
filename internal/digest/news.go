package digest

import (
	"regexp"
	"strings"

	"CoinDigest/internal/model"
)

const maxNewsItems = 4

// bold headline followed directly by a body paragraph
var reNewsItem = regexp.MustCompile(`\*\*([^*\n]{5,80})\*\*\n([^\n#]{20,300})`)

var (
	reSummaryHeading  = regexp.MustCompile(`白话总结[^\n]*\n+\*\*[^*\n]*\*\*\n+([^\n#]{30,})`)
	reSummaryFallback = regexp.MustCompile(`(?s)白话[^\n]*\n+(.+?)(?:\n\n|$)`)
)

// extractNews scans for bolded headings with a trailing paragraph.
// Table cells and price lines also look like bold spans, so anything
// containing a pipe or leading with a currency amount is rejected.
func extractNews(content string) []model.NewsItem {
	var items []model.NewsItem
	for _, m := range reNewsItem.FindAllStringSubmatch(content, -1) {
		title := strings.TrimSpace(m[1])
		body := strings.TrimSpace(m[2])
		if strings.Contains(title, "|") || strings.Contains(runePrefix(title, 3), "$") {
			continue
		}
		items = append(items, model.NewsItem{Title: title, Body: body})
		if len(items) >= maxNewsItems {
			break
		}
	}
	return items
}

// extractPlainSummary looks for the localized plain-language section:
// heading, bold sub-line, then the paragraph. When the strict shape is
// absent it falls back to any paragraph after a 白话 heading.
func extractPlainSummary(content string) string {
	if m := reSummaryHeading.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := reSummaryFallback.FindStringSubmatch(content); m != nil {
		return runePrefix(strings.TrimSpace(m[1]), 300)
	}
	return ""
}

func runePrefix(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
