package pbp

import "strings"

// ParseCard decides whether a block is a genuine play card and labels its
// lines. The clock/quarter line anchors the layout: the line before it is
// the summary, the line after it the description, and a trailing line is
// kept as the situation only when it matches the down-and-distance shape.
// Reports false when any of the three required lines is missing or empty.
func ParseCard(c Card) (RawPlay, bool) {
	ci := -1
	for i, ln := range c.Lines {
		if clockRe.MatchString(strings.TrimSpace(ln)) {
			ci = i
			break
		}
	}
	// clock line first in the block means there is no summary line
	if ci <= 0 || ci+1 >= len(c.Lines) {
		return RawPlay{}, false
	}

	raw := RawPlay{
		Summary:     strings.TrimSpace(c.Lines[ci-1]),
		TimeQuarter: strings.TrimSpace(c.Lines[ci]),
		Description: strings.TrimSpace(c.Lines[ci+1]),
	}
	if ci+2 < len(c.Lines) {
		if s := strings.TrimSpace(c.Lines[ci+2]); situationRe.MatchString(s) {
			raw.Situation = s
		}
	}

	if raw.Summary == "" || raw.Description == "" {
		return RawPlay{}, false
	}
	return raw, true
}
