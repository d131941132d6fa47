package pbp

import (
	"reflect"
	"testing"
)

func TestVisibleLines(t *testing.T) {
	text := "Kickoff\n  15:00 - 1st  \n\n\nJ.Bates kicks 63 yards.\n   \n"
	got := VisibleLines(text)
	want := []string{"Kickoff", "15:00 - 1st", "J.Bates kicks 63 yards."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("VisibleLines = %q, want %q", got, want)
	}
}

func TestExtractCards_ThreeAndFourLine(t *testing.T) {
	lines := []string{
		"Subscribe now",
		"Kickoff",
		"15:00 - 1st",
		"J.Bates kicks 63 yards from SF 35 to DET 2.",
		"1st & 10 at DET 25",
		"Punt",
		"12:31 - 1st",
		"J.Fox punts 48 yards to SF 9, center-G.Aboushi.",
		"Random ad text",
	}
	cards := ExtractCards(lines)
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d: %v", len(cards), cards)
	}
	if len(cards[0].Lines) != 4 {
		t.Errorf("first card should keep its situation line, got %d lines", len(cards[0].Lines))
	}
	if len(cards[1].Lines) != 3 {
		t.Errorf("second card has no situation line, got %d lines", len(cards[1].Lines))
	}
	if cards[1].Lines[0] != "Punt" {
		t.Errorf("second card header = %q, want Punt", cards[1].Lines[0])
	}
}

func TestExtractCards_NoClockLine(t *testing.T) {
	lines := []string{"Random ad text", "Subscribe now"}
	if cards := ExtractCards(lines); len(cards) != 0 {
		t.Fatalf("expected no cards, got %d", len(cards))
	}
}

func TestExtractCards_ClockLineFirst(t *testing.T) {
	// a clock line with nothing before it cannot anchor a card
	lines := []string{"15:00 - 1st", "J.Bates kicks 63 yards.", "whatever"}
	if cards := ExtractCards(lines); len(cards) != 0 {
		t.Fatalf("expected no cards, got %d", len(cards))
	}
}

func TestParseCard_RejectsTwoLines(t *testing.T) {
	if _, ok := ParseCard(Card{Lines: []string{"Kickoff", "15:00 - 1st"}}); ok {
		t.Fatal("2-line block must not parse")
	}
}

func TestParseCard_LabelsLines(t *testing.T) {
	raw, ok := ParseCard(Card{Lines: []string{
		"13-yd Pass",
		"13:42 - 1st",
		"(Shotgun) J.Goff pass left to A.St. Brown to DET 41 for 13 yards.",
		"2nd & 7 at DET 28",
	}})
	if !ok {
		t.Fatal("expected card to parse")
	}
	if raw.Summary != "13-yd Pass" {
		t.Errorf("Summary = %q", raw.Summary)
	}
	if raw.TimeQuarter != "13:42 - 1st" {
		t.Errorf("TimeQuarter = %q", raw.TimeQuarter)
	}
	if raw.Situation != "2nd & 7 at DET 28" {
		t.Errorf("Situation = %q", raw.Situation)
	}
}
