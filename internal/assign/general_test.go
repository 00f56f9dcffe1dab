package assign

import (
	"testing"

	"jumpcube/internal/card"
	"jumpcube/internal/theme"
)

func TestGeneralAssignPrefersBestScoringTheme(t *testing.T) {
	themes := []*theme.Theme{
		plainTheme("White Banners", "W", "banner"),
		plainTheme("White Shields", "W", "shield"),
	}
	cards := []*card.Card{
		creature("Shield Bearer", "W", 1, 0, 3, "shield"),
	}
	b, _ := newTestBuilder(t, DefaultConstraints(), themes, cards)
	b.generalAssign()

	// Both themes can take the card; the keyword match makes the
	// later-registered theme the strictly better home.
	if got := deckState(t, b, "White Shields").Size(); got != 1 {
		t.Errorf("White Shields size = %d, want 1", got)
	}
	if got := deckState(t, b, "White Banners").Size(); got != 0 {
		t.Errorf("White Banners size = %d, want 0", got)
	}
}

func TestGeneralAssignRespectsColorIdentity(t *testing.T) {
	themes := []*theme.Theme{
		plainTheme("White Banners", "W", "banner"),
	}
	cards := []*card.Card{
		creature("Swamp Stalker", "B", 2, 2, 2, "banner"),
	}
	b, _ := newTestBuilder(t, DefaultConstraints(), themes, cards)
	b.generalAssign()

	if got := deckState(t, b, "White Banners").Size(); got != 0 {
		t.Errorf("off-color card assigned; deck size = %d, want 0", got)
	}
	if len(b.alloc.pool) != 1 {
		t.Errorf("pool size = %d, want 1", len(b.alloc.pool))
	}
}

func TestGeneralAssignSkipsNonPositiveScores(t *testing.T) {
	themes := []*theme.Theme{
		{Name: "White Control", Colors: mustColors("W"), Archetype: theme.ArchetypeControl},
	}
	cards := []*card.Card{
		// Archetype penalties push this below zero: a cheap haste spell
		// in a control theme.
		spell("Reckless Jolt", "W", 1, "haste"),
	}
	b, _ := newTestBuilder(t, DefaultConstraints(), themes, cards)
	b.generalAssign()

	if got := deckState(t, b, "White Control").Size(); got != 0 {
		t.Errorf("non-positive pair assigned; deck size = %d, want 0", got)
	}
}

func TestGeneralAssignStopsAtQuota(t *testing.T) {
	cons := Constraints{
		TargetDeckSize: 2,
		MinCreatures:   0,
		MaxCreatures:   2,
		MaxNonLand:     2,
		MaxLandsMono:   1,
		MaxLandsDual:   2,
	}
	themes := []*theme.Theme{
		plainTheme("White Banners", "W", "banner"),
	}
	cards := []*card.Card{
		creature("Banner One", "W", 1, 1, 1, "banner"),
		creature("Banner Two", "W", 2, 2, 2, "banner"),
		spell("Banner Three", "W", 2, "banner"),
	}
	b, _ := newTestBuilder(t, cons, themes, cards)
	b.generalAssign()

	if got := deckState(t, b, "White Banners").Size(); got != 2 {
		t.Errorf("deck size = %d, want quota 2", got)
	}
	if len(b.alloc.pool) != 1 {
		t.Errorf("pool size = %d, want 1 leftover", len(b.alloc.pool))
	}
}

func TestPairPickOrdering(t *testing.T) {
	base := pairPick{score: 2.0, tier: 1, deckSize: 3, catalogIdx: 5, deckIdx: 2}

	cases := []struct {
		name string
		p, q pairPick
		want bool
	}{
		{"beats empty", base, pairPick{deckIdx: -1}, true},
		{"higher score wins", pairPick{score: 3.0, deckIdx: 9}, base, true},
		{"lower score loses", pairPick{score: 1.0, tier: 2}, base, false},
		{"tie: tighter color wins", pairPick{score: 2.0, tier: 2, deckSize: 9, deckIdx: 9}, base, true},
		{"tie: smaller deck wins", pairPick{score: 2.0, tier: 1, deckSize: 1, deckIdx: 9}, base, true},
		{"tie: earlier catalog wins", pairPick{score: 2.0, tier: 1, deckSize: 3, catalogIdx: 1, deckIdx: 9}, base, true},
		{"tie: earlier theme wins", pairPick{score: 2.0, tier: 1, deckSize: 3, catalogIdx: 5, deckIdx: 1}, base, true},
		{"full tie loses", base, base, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.beats(tc.q); got != tc.want {
				t.Errorf("beats = %v, want %v", got, tc.want)
			}
		})
	}
}
