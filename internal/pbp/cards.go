// Package pbp turns the visible text of a rendered play-by-play page into
// normalized play records. The pipeline is pure and stateless: extract
// candidate cards, label their lines, normalize fields. Anything that does
// not parse degrades to "no record", never to an error.
package pbp

import (
	"regexp"
	"strings"
)

var (
	clockRe     = regexp.MustCompile(`(?i)^(\d{1,2}:\d{2})\s*-\s*(1st|2nd|3rd|4th|OT)$`)
	situationRe = regexp.MustCompile(`(?i)^(\d+)(st|nd|rd|th)\s*&\s*(\d+)(?:\s*at\s*([A-Z]{2,3})\s*(\d+))?`)
)

// VisibleLines splits rendered page text into trimmed, non-empty lines.
func VisibleLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, ln := range raw {
		ln = strings.TrimSpace(ln)
		if ln != "" {
			lines = append(lines, ln)
		}
	}
	return lines
}

// ExtractCards scans forward through page lines for the card shape: a
// header line, a clock/quarter line, a description, and optionally a
// down-and-distance line. On a match it emits the 3- or 4-line block and
// continues past it; otherwise it advances one line. The first valid
// match wins; overlapping candidates are not suppressed.
func ExtractCards(lines []string) []Card {
	var cards []Card
	for i := 0; i < len(lines); {
		if i+2 < len(lines) && clockRe.MatchString(lines[i+1]) {
			n := 3
			if i+3 < len(lines) && situationRe.MatchString(lines[i+3]) {
				n = 4
			}
			cards = append(cards, Card{Lines: lines[i : i+n]})
			i += n
			continue
		}
		i++
	}
	return cards
}
