package pbp

import (
	"regexp"
	"strconv"
	"strings"
)

const maxDescriptionLen = 500

var quarterByOrdinal = map[string]int{
	"1st": 1, "2nd": 2, "3rd": 3, "4th": 4, "ot": 5,
}

var (
	summaryYardsRe = regexp.MustCompile(`(?i)(\d+)-?yd`)
	playerRe       = regexp.MustCompile(`[A-Z]\.[A-Z][a-z]+`)

	// fallbacks when the summary carries no yardage
	descYardsRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)for (-?\d+) yards?`),
		regexp.MustCompile(`(?i)kicks (-?\d+) yards?`),
		regexp.MustCompile(`(?i)(-?\d+) yard (?:gain|loss)`),
	}
)

// Policy controls the completeness gate. The baseline accepts any play
// with a parsed quarter and clock; RequirePlayType additionally drops
// plays whose summary could not be classified.
type Policy struct {
	RequirePlayType bool
}

// Normalize converts labeled card lines into a Play. Sub-pattern misses
// leave the corresponding field zero; only the completeness gate decides
// whether the record is usable. Sequence is left for the caller.
func Normalize(raw RawPlay, pol Policy) (Play, bool) {
	m := clockRe.FindStringSubmatch(strings.TrimSpace(raw.TimeQuarter))
	if m == nil {
		return Play{}, false
	}

	p := Play{
		Quarter:       quarterByOrdinal[strings.ToLower(m[2])],
		TimeRemaining: m[1],
	}

	classifySummary(raw.Summary, &p)
	if pol.RequirePlayType && p.Type == PlayUnknown {
		return Play{}, false
	}

	if raw.Situation != "" {
		if sm := situationRe.FindStringSubmatch(raw.Situation); sm != nil {
			p.Down, _ = strconv.Atoi(sm[1])
			p.Distance, _ = strconv.Atoi(sm[3])
			if sm[4] != "" {
				p.FieldSide = sm[4]
				p.YardLine, _ = strconv.Atoi(sm[5])
			}
		}
	}

	desc := raw.Description
	if len(desc) > maxDescriptionLen {
		desc = desc[:maxDescriptionLen]
	}
	p.Description = desc
	p.Players = playerNames(raw.Description)
	if p.YardsGained == nil {
		p.YardsGained = descriptionYards(raw.Description)
	}

	upper := strings.ToUpper(raw.Description)
	p.Touchdown = strings.Contains(upper, "TOUCHDOWN") || strings.Contains(upper, " TD ")
	p.Penalty = strings.Contains(upper, "PENALTY")
	p.Turnover = strings.Contains(upper, "FUMBLE") || strings.Contains(upper, "INTERCEPTION")

	return p, true
}

// classifySummary applies the substring precedence order; anything
// unmatched becomes unknown with the lowercased summary retained.
func classifySummary(summary string, p *Play) {
	s := strings.ToLower(strings.TrimSpace(summary))

	if ym := summaryYardsRe.FindStringSubmatch(s); ym != nil {
		n, _ := strconv.Atoi(ym[1])
		p.YardsGained = &n
	}

	switch {
	case strings.Contains(s, "run"):
		p.Type = PlayRush
	case strings.Contains(s, "pass"):
		p.Type = PlayPass
	case strings.Contains(s, "kick"):
		p.Type = PlayKickoff
	case strings.Contains(s, "punt"):
		p.Type = PlayPunt
	case strings.Contains(s, "field goal"):
		p.Type = PlayFieldGoal
	case strings.Contains(s, "extra point"):
		p.Type = PlayExtraPoint
	case strings.Contains(s, "safety"):
		p.Type = PlaySafety
	case strings.Contains(s, "sack"):
		p.Type = PlaySack
	default:
		p.Type = PlayUnknown
		p.RawType = s
	}
}

// playerNames pulls initials-style names ("J.Smith") from the
// description, first occurrence order, capped at three.
func playerNames(desc string) []string {
	found := playerRe.FindAllString(desc, -1)
	if len(found) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(found))
	names := make([]string, 0, 3)
	for _, n := range found {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		names = append(names, n)
		if len(names) == 3 {
			break
		}
	}
	return names
}

func descriptionYards(desc string) *int {
	for _, re := range descYardsRes {
		if m := re.FindStringSubmatch(desc); m != nil {
			n, _ := strconv.Atoi(m[1])
			return &n
		}
	}
	return nil
}
