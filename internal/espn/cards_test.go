package espn

import (
	"strings"
	"testing"
)

const cardHTML = `<html><body>
<nav>NFL Scores Schedule Standings</nav>
<section data-testid="prism-LayoutCard">
<div>Kickoff</div>
<div>15:00 - 1st</div>
<div>J.Bates kicks 63 yards from SF 35 to DET 2. K.Raymond to DET 25 for 23 yards.</div>
<div>1st &amp; 10 at DET 25</div>
</section>
<section data-testid="prism-LayoutCard">
<div>Advertisement</div>
</section>
<section data-testid="prism-LayoutCard">
<div>Punt</div>
<div>12:31 - 1st</div>
<div>J.Fox punts 48 yards to SF 9, center-G.Aboushi.</div>
</section>
</body></html>`

func TestPlayLines_CardSections(t *testing.T) {
	lines, err := PlayLines(cardHTML)
	if err != nil {
		t.Fatalf("PlayLines error: %v", err)
	}
	if len(lines) != 7 {
		t.Fatalf("expected 7 lines from the two play cards, got %d: %q", len(lines), lines)
	}
	if lines[0] != "Kickoff" || lines[1] != "15:00 - 1st" {
		t.Errorf("unexpected leading lines: %q", lines[:2])
	}
	for _, ln := range lines {
		if strings.Contains(ln, "Advertisement") || strings.Contains(ln, "Standings") {
			t.Errorf("non-card text leaked into lines: %q", ln)
		}
	}
}

func TestPlayLines_CommentedMarkup(t *testing.T) {
	html := "<html><body><!--" + strings.TrimPrefix(strings.TrimSuffix(cardHTML, "</body></html>"), "<html><body>") + "--></body></html>"
	lines, err := PlayLines(html)
	if err != nil {
		t.Fatalf("PlayLines error: %v", err)
	}
	if len(lines) != 7 {
		t.Fatalf("comment-wrapped cards should still parse, got %d lines", len(lines))
	}
}

func TestPlayLines_BodyFallback(t *testing.T) {
	html := `<html><body>
<p>Kickoff</p>
<p>15:00 - 1st</p>
<p>J.Bates kicks 63 yards from SF 35 to DET 2.</p>
</body></html>`
	lines, err := PlayLines(html)
	if err != nil {
		t.Fatalf("PlayLines error: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("expected body-text fallback with 3 lines, got %d: %q", len(lines), lines)
	}
}

func TestNormalizeTeamAbbr(t *testing.T) {
	cases := map[string]string{
		"JAC": "JAX",
		"was": "WSH",
		"GNB": "GB",
		"DET": "DET",
		"XXX": "XXX",
	}
	for in, want := range cases {
		if got := NormalizeTeamAbbr(in); got != want {
			t.Errorf("NormalizeTeamAbbr(%q) = %q, want %q", in, got, want)
		}
	}
	if !KnownTeam("DET") || KnownTeam("XXX") {
		t.Error("KnownTeam misclassified a code")
	}
}

func TestGameURL(t *testing.T) {
	if got := GameURL("401671698"); got != "https://www.espn.com/nfl/playbyplay/_/gameId/401671698" {
		t.Fatalf("GameURL = %q", got)
	}
}
