package pbp

// Result carries accepted plays plus counts for observability. Dropped
// cards are expected on real pages (ads, score banners) and are surfaced
// as a count, not an error.
type Result struct {
	Plays   []Play
	Cards   int // candidate cards extracted
	Dropped int // cards rejected by the parser or the completeness gate
}

// Run executes extract -> parse -> normalize over page lines and assigns
// 1-based sequence numbers in page order. Deterministic: identical input
// yields identical output, so (game, sequence) keys are stable across
// re-scrapes.
func Run(lines []string, pol Policy) Result {
	var res Result
	for _, c := range ExtractCards(lines) {
		res.Cards++
		raw, ok := ParseCard(c)
		if !ok {
			res.Dropped++
			continue
		}
		play, ok := Normalize(raw, pol)
		if !ok {
			res.Dropped++
			continue
		}
		play.Sequence = len(res.Plays) + 1
		res.Plays = append(res.Plays, play)
	}
	return res
}
