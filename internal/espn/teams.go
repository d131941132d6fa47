package espn

import "strings"

// Canonical codes follow the ESPN scoreboard (WSH for Washington, JAX for
// Jacksonville). Source pages and older data use several variants.
var canonicalTeams = map[string]struct{}{
	"ARI": {}, "ATL": {}, "BAL": {}, "BUF": {},
	"CAR": {}, "CHI": {}, "CIN": {}, "CLE": {},
	"DAL": {}, "DEN": {}, "DET": {}, "GB": {},
	"HOU": {}, "IND": {}, "JAX": {}, "KC": {},
	"LAC": {}, "LAR": {}, "LV": {}, "MIA": {},
	"MIN": {}, "NE": {}, "NO": {}, "NYG": {},
	"NYJ": {}, "PHI": {}, "PIT": {}, "SF": {},
	"SEA": {}, "TB": {}, "TEN": {}, "WSH": {},
}

// variant or legacy code -> canonical
var abbrAliases = map[string]string{
	"JAC": "JAX",
	"WAS": "WSH",
	"ARZ": "ARI",
	"LA":  "LAR",
	"STL": "LAR",
	"SD":  "LAC",
	"OAK": "LV",
	"GNB": "GB",
	"KAN": "KC",
	"NWE": "NE",
	"NOR": "NO",
	"SFO": "SF",
	"TAM": "TB",
	"LVR": "LV",
}

// NormalizeTeamAbbr maps a scraped team code onto the canonical set.
// Unknown codes pass through uppercased so nothing is silently dropped.
func NormalizeTeamAbbr(s string) string {
	c := strings.ToUpper(strings.TrimSpace(s))
	if a, ok := abbrAliases[c]; ok {
		return a
	}
	return c
}

// KnownTeam reports whether code is one of the 32 canonical abbreviations.
func KnownTeam(code string) bool {
	_, ok := canonicalTeams[code]
	return ok
}
