package pbp

// PlayType classifies the play-card header line.
type PlayType string

const (
	PlayKickoff    PlayType = "kickoff"
	PlayRush       PlayType = "rush"
	PlayPass       PlayType = "pass"
	PlayPunt       PlayType = "punt"
	PlayFieldGoal  PlayType = "field_goal"
	PlayExtraPoint PlayType = "extra_point"
	PlaySack       PlayType = "sack"
	PlaySafety     PlayType = "safety"
	PlayUnknown    PlayType = "unknown"
)

// Card is a short block of page lines (3 or 4) believed to hold one play.
type Card struct {
	Lines []string
}

// RawPlay is a card split into its labeled lines, before normalization.
type RawPlay struct {
	Summary     string // "13-yd Pass", "Kickoff"
	TimeQuarter string // "8:53 - 3rd"
	Description string // free-form play text
	Situation   string // "3rd & 2 at JAX 18"; empty when the card has no 4th line
}

// Play is the normalized record. Downstream storage keys it by
// (game id, Sequence), so Sequence must be stable across re-runs on
// identical input.
type Play struct {
	Sequence      int
	Quarter       int    // 1-4, 5 = overtime
	TimeRemaining string // MM:SS within the quarter
	Down          int    // 0 when absent
	Distance      int    // 0 when absent
	FieldSide     string // team code from the situation line, "" when absent
	YardLine      int    // 0 when absent
	YardsGained   *int   // nil when no yardage could be read
	Type          PlayType
	RawType       string // lowercased header kept for diagnostics when Type is unknown
	Description   string
	Players       []string
	Touchdown     bool
	Penalty       bool
	Turnover      bool
}
