package espn

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/tyler180/nfl-playbyplay-backend/internal/pbp"
)

// selector ladder; the exact data-testid match first, broad fallback last
var cardSelectors = []string{
	"section[data-testid='prism-LayoutCard']",
	"section[data-testid*='prism']",
	"section[class*='LayoutCard']",
	"section",
}

var cardClockRe = regexp.MustCompile(`(?i)\d{1,2}:\d{2}\s*-\s*(1st|2nd|3rd|4th|OT)`)

var cardKeywords = []string{"kick", "pass", "run", "punt", "yards"}

// PlayLines returns the visible text lines of the page's play-card
// sections, in page order. ESPN wraps some markup in HTML comments, so
// the comment markers are stripped before parsing. When no selector
// yields a section that looks like a play card, the whole body text is
// returned and the downstream extractor is left to find the cards.
func PlayLines(html string) ([]string, error) {
	clean := strings.ReplaceAll(html, "<!--", "")
	clean = strings.ReplaceAll(clean, "-->", "")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(clean))
	if err != nil {
		return nil, err
	}

	for _, sel := range cardSelectors {
		var lines []string
		matched := 0
		doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			txt := strings.TrimSpace(s.Text())
			if len(txt) <= 20 || !looksLikePlayCard(txt) {
				return
			}
			matched++
			lines = append(lines, pbp.VisibleLines(txt)...)
		})
		if matched > 0 {
			return lines, nil
		}
	}

	return pbp.VisibleLines(doc.Find("body").Text()), nil
}

func looksLikePlayCard(txt string) bool {
	if !cardClockRe.MatchString(txt) {
		return false
	}
	lower := strings.ToLower(txt)
	for _, kw := range cardKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
