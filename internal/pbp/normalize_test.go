package pbp

import (
	"strings"
	"testing"
)

func TestNormalize_PassCard(t *testing.T) {
	raw := RawPlay{
		Summary:     "13-yd Pass",
		TimeQuarter: "13:42 - 1st",
		Description: "(Shotgun) J.Goff pass left to A.St. Brown to DET 41 for 13 yards.",
		Situation:   "2nd & 7 at DET 28",
	}
	p, ok := Normalize(raw, Policy{})
	if !ok {
		t.Fatal("expected a record")
	}
	if p.Quarter != 1 || p.TimeRemaining != "13:42" {
		t.Errorf("quarter/time = %d/%q", p.Quarter, p.TimeRemaining)
	}
	if p.Type != PlayPass {
		t.Errorf("Type = %q, want pass", p.Type)
	}
	if p.YardsGained == nil || *p.YardsGained != 13 {
		t.Errorf("YardsGained = %v, want 13", p.YardsGained)
	}
	if p.Down != 2 || p.Distance != 7 {
		t.Errorf("down/distance = %d/%d, want 2/7", p.Down, p.Distance)
	}
	if p.FieldSide != "DET" || p.YardLine != 28 {
		t.Errorf("field position = %s %d, want DET 28", p.FieldSide, p.YardLine)
	}
	if len(p.Players) == 0 || p.Players[0] != "J.Goff" {
		t.Errorf("Players = %v", p.Players)
	}
}

func TestNormalize_RunRoundTrip(t *testing.T) {
	p, ok := Normalize(RawPlay{
		Summary:     "7-yd Run",
		TimeQuarter: "8:53 - 3rd",
		Description: "T.Spears left guard to JAX 16 for 7 yards (D.Lloyd).",
	}, Policy{})
	if !ok {
		t.Fatal("expected a record")
	}
	if p.Type != PlayRush {
		t.Errorf("Type = %q, want rush", p.Type)
	}
	if p.YardsGained == nil || *p.YardsGained != 7 {
		t.Errorf("YardsGained = %v, want 7", p.YardsGained)
	}
	if p.Quarter != 3 {
		t.Errorf("Quarter = %d, want 3", p.Quarter)
	}
}

func TestNormalize_OvertimeQuarter(t *testing.T) {
	p, ok := Normalize(RawPlay{
		Summary:     "Field Goal",
		TimeQuarter: "4:21 - OT",
		Description: "B.Aubrey 44 yard field goal is GOOD.",
	}, Policy{})
	if !ok {
		t.Fatal("expected a record")
	}
	if p.Quarter != 5 {
		t.Errorf("Quarter = %d, want 5 for OT", p.Quarter)
	}
	if p.Type != PlayFieldGoal {
		t.Errorf("Type = %q, want field_goal", p.Type)
	}
}

func TestNormalize_BadClockRejected(t *testing.T) {
	if _, ok := Normalize(RawPlay{
		Summary:     "Kickoff",
		TimeQuarter: "sometime in the 1st",
		Description: "J.Bates kicks 63 yards.",
	}, Policy{}); ok {
		t.Fatal("record without a parsed clock must be dropped")
	}
}

func TestNormalize_UnknownTypeKeepsRaw(t *testing.T) {
	p, ok := Normalize(RawPlay{
		Summary:     "Two-Minute Warning",
		TimeQuarter: "2:00 - 4th",
		Description: "Two minute warning.",
	}, Policy{})
	if !ok {
		t.Fatal("loose policy keeps unknown play types")
	}
	if p.Type != PlayUnknown {
		t.Errorf("Type = %q, want unknown", p.Type)
	}
	if p.RawType != "two-minute warning" {
		t.Errorf("RawType = %q", p.RawType)
	}

	if _, ok := Normalize(RawPlay{
		Summary:     "Two-Minute Warning",
		TimeQuarter: "2:00 - 4th",
		Description: "Two minute warning.",
	}, Policy{RequirePlayType: true}); ok {
		t.Fatal("strict policy must drop unknown play types")
	}
}

func TestNormalize_YardsFromDescriptionFallback(t *testing.T) {
	p, ok := Normalize(RawPlay{
		Summary:     "Sack",
		TimeQuarter: "9:05 - 2nd",
		Description: "J.Goff sacked at DET 24 for -8 yards (N.Bosa).",
	}, Policy{})
	if !ok {
		t.Fatal("expected a record")
	}
	if p.Type != PlaySack {
		t.Errorf("Type = %q, want sack", p.Type)
	}
	if p.YardsGained == nil || *p.YardsGained != -8 {
		t.Errorf("YardsGained = %v, want -8", p.YardsGained)
	}
}

func TestNormalize_Flags(t *testing.T) {
	p, ok := Normalize(RawPlay{
		Summary:     "38-yd Pass",
		TimeQuarter: "1:10 - 4th",
		Description: "J.Allen pass deep right to K.Shakir for 38 yards, TOUCHDOWN. PENALTY declined.",
	}, Policy{})
	if !ok {
		t.Fatal("expected a record")
	}
	if !p.Touchdown || !p.Penalty {
		t.Errorf("flags = td:%v penalty:%v, want both true", p.Touchdown, p.Penalty)
	}
	if p.Turnover {
		t.Error("no turnover in this description")
	}

	p, _ = Normalize(RawPlay{
		Summary:     "Pass",
		TimeQuarter: "5:44 - 2nd",
		Description: "J.Goff pass intended for S.LaPorta INTERCEPTED by F.Warner at SF 40.",
	}, Policy{})
	if !p.Turnover {
		t.Error("interception must set the turnover flag")
	}
}

func TestNormalize_PlayersDedupedAndCapped(t *testing.T) {
	p, _ := Normalize(RawPlay{
		Summary:     "5-yd Run",
		TimeQuarter: "3:30 - 2nd",
		Description: "D.Swift run (D.Swift). Tackled by A.First, B.Second and C.Third at CHI 40.",
	}, Policy{})
	if len(p.Players) != 3 {
		t.Fatalf("Players = %v, want 3 entries", p.Players)
	}
	if p.Players[0] != "D.Swift" || p.Players[1] != "A.First" {
		t.Errorf("Players = %v, want order of first appearance", p.Players)
	}
}

func TestNormalize_DescriptionCapped(t *testing.T) {
	p, _ := Normalize(RawPlay{
		Summary:     "Punt",
		TimeQuarter: "0:30 - 4th",
		Description: strings.Repeat("x", 800),
	}, Policy{})
	if len(p.Description) != 500 {
		t.Fatalf("Description length = %d, want 500", len(p.Description))
	}
}
