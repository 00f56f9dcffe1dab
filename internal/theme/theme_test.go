package theme

import (
	"testing"

	"jumpcube/internal/card"
)

func TestParseArchetype(t *testing.T) {
	cases := []struct {
		in   string
		want Archetype
	}{
		{"aggro", ArchetypeAggro},
		{"Control", ArchetypeControl},
		{"TRIBAL", ArchetypeTribal},
		{"", ArchetypeNone},
		{"none", ArchetypeNone},
	}
	for _, tc := range cases {
		got, err := ParseArchetype(tc.in)
		if err != nil {
			t.Errorf("ParseArchetype(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseArchetype(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := ParseArchetype("combo"); err == nil {
		t.Error("unknown archetype accepted")
	}
}

func TestRegistryRejectsBadThemes(t *testing.T) {
	threeColor := &Theme{
		Name:   "Esper",
		Colors: card.NewColorSet(card.White, card.Blue, card.Black),
	}
	if _, err := NewRegistry([]*Theme{threeColor}); err == nil {
		t.Error("three-color theme accepted")
	}

	dup := func() *Theme {
		return &Theme{Name: "Twin", Colors: card.NewColorSet(card.White)}
	}
	if _, err := NewRegistry([]*Theme{dup(), dup()}); err == nil {
		t.Error("duplicate theme names accepted")
	}
}

func TestRegistryOrder(t *testing.T) {
	reg, err := NewRegistry([]*Theme{
		{Name: "First", Colors: card.NewColorSet(card.White)},
		{Name: "Second", Colors: card.NewColorSet(card.White, card.Blue)},
		{Name: "Third", Colors: card.NewColorSet(card.Blue)},
	})
	if err != nil {
		t.Fatal(err)
	}
	names := []string{}
	for _, tm := range reg.Themes() {
		names = append(names, tm.Name)
	}
	want := []string{"First", "Second", "Third"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("registration order = %v, want %v", names, want)
		}
	}

	duals := reg.DualThemes()
	if len(duals) != 1 || duals[0].Name != "Second" {
		t.Errorf("DualThemes = %v, want [Second]", duals)
	}
}

func TestThemeKeywordNormalization(t *testing.T) {
	reg, err := NewRegistry([]*Theme{
		{Name: "Fliers", Colors: card.NewColorSet(card.Blue), Keywords: []string{" Flying ", "BIRD"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	tm := reg.Lookup("Fliers")
	if !tm.HasKeyword("flying") || !tm.HasKeyword("bird") {
		t.Errorf("keywords not normalized: %v", tm.Keywords)
	}
}

func TestParseRegistry(t *testing.T) {
	data := []byte(`
themes:
  - name: Azorius Control
    colors: WU
    archetype: control
    keywords: [counter, draw]
    core_tags: [counter]
    core_reserve: 2
  - name: White Soldiers
    colors: W
    archetype: aggro
    keywords: [soldier]
    rule_weights:
      mana-curve: 2.0
`)
	reg, err := ParseRegistry(data)
	if err != nil {
		t.Fatalf("ParseRegistry: %v", err)
	}
	if reg.Len() != 2 {
		t.Fatalf("got %d themes, want 2", reg.Len())
	}

	azorius := reg.Lookup("Azorius Control")
	if !azorius.IsDual() || azorius.Archetype != ArchetypeControl || azorius.CoreReserve != 2 {
		t.Errorf("azorius parsed wrong: %+v", azorius)
	}
	soldiers := reg.Lookup("White Soldiers")
	if !soldiers.IsMono() || soldiers.RuleWeights["mana-curve"] != 2.0 {
		t.Errorf("soldiers parsed wrong: %+v", soldiers)
	}
	// Unset core_reserve falls back to the default.
	if soldiers.CoreReserve != DefaultCoreReserve {
		t.Errorf("core reserve = %d, want default %d", soldiers.CoreReserve, DefaultCoreReserve)
	}
}

func TestDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry()
	if reg.Len() != 30 {
		t.Fatalf("stock registry has %d themes, want 30", reg.Len())
	}

	mono, dual := 0, 0
	perColor := map[card.Color]int{}
	guilds := map[string]bool{}
	for _, tm := range reg.Themes() {
		switch {
		case tm.IsMono():
			mono++
			perColor[tm.Colors.Colors()[0]]++
		case tm.IsDual():
			dual++
			guilds[tm.Colors.String()] = true
		}
		if len(tm.Keywords) == 0 {
			t.Errorf("theme %q has no keywords", tm.Name)
		}
		if tm.CoreReserve <= 0 {
			t.Errorf("theme %q has no core reserve", tm.Name)
		}
	}
	if mono != 20 || dual != 10 {
		t.Errorf("mono/dual split = %d/%d, want 20/10", mono, dual)
	}
	for _, c := range card.AllColors {
		if perColor[c] != 4 {
			t.Errorf("%s has %d mono themes, want 4", c.Name(), perColor[c])
		}
	}
	if len(guilds) != 10 {
		t.Errorf("got %d distinct color pairs, want all 10", len(guilds))
	}
}
