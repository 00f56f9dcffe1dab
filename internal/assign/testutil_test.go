package assign

import (
	"testing"

	"jumpcube/internal/card"
	"jumpcube/internal/log"
	"jumpcube/internal/theme"
)

// --- Test card helpers ---

func mustColors(s string) card.ColorSet {
	cs, err := card.ParseColorSet(s)
	if err != nil {
		panic(err)
	}
	return cs
}

func creature(name, colors string, mv, pow, tgh int, tags ...string) *card.Card {
	return &card.Card{
		Name:      name,
		Colors:    mustColors(colors),
		ManaValue: mv,
		Power:     pow,
		Toughness: tgh,
		Creature:  true,
		Tags:      tags,
	}
}

func spell(name, colors string, mv int, tags ...string) *card.Card {
	return &card.Card{
		Name:           name,
		Colors:         mustColors(colors),
		ManaValue:      mv,
		InstantSorcery: true,
		Tags:           tags,
	}
}

func basicLand(name, produces string) *card.Card {
	return &card.Card{
		Name:     name,
		Land:     true,
		Produces: mustColors(produces),
	}
}

// --- Test theme helpers ---

// plainTheme has no archetype and no core reservation, so scoring reduces
// to keyword and synergy matching. Most phase tests want exactly that.
func plainTheme(name, colors string, keywords ...string) *theme.Theme {
	return &theme.Theme{
		Name:     name,
		Colors:   mustColors(colors),
		Keywords: keywords,
	}
}

func coreTheme(name, colors string, reserve int, coreTags []string, coreCards []string) *theme.Theme {
	return &theme.Theme{
		Name:        name,
		Colors:      mustColors(colors),
		CoreReserve: reserve,
		CoreTags:    coreTags,
		CoreCards:   coreCards,
	}
}

// --- Builder setup ---

func newTestBuilder(t *testing.T, cons Constraints, themes []*theme.Theme, cards []*card.Card) (*Builder, *log.MemoryLogger) {
	t.Helper()
	cat, err := card.NewCatalog(cards)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	reg, err := theme.NewRegistry(themes)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	logger := log.NewMemoryLogger()
	b, err := NewBuilder(Config{
		Catalog:     cat,
		Registry:    reg,
		Constraints: cons,
		Logger:      logger,
	})
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	return b, logger
}

func runBuilder(t *testing.T, cons Constraints, themes []*theme.Theme, cards []*card.Card) (*Result, *log.MemoryLogger) {
	t.Helper()
	b, logger := newTestBuilder(t, cons, themes, cards)
	res, err := b.Run()
	if err != nil {
		t.Logf("Event log:\n%s", log.FormatAll(logger.Events()))
		t.Fatalf("Run: %v", err)
	}
	return res, logger
}

// deckState returns the in-progress deck for a theme name. Only useful
// before buildResult freezes the allocation.
func deckState(t *testing.T, b *Builder, name string) *DeckState {
	t.Helper()
	for _, d := range b.alloc.decks {
		if d.Theme.Name == name {
			return d
		}
	}
	t.Fatalf("no deck for theme %q", name)
	return nil
}

func cardNames(cards []*card.Card) []string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.Name
	}
	return names
}

// assertDeckSet checks a report's card list against an expected set,
// ignoring assignment order.
func assertDeckSet(t *testing.T, r *Result, theme string, want ...string) {
	t.Helper()
	rep := r.Deck(theme)
	if rep == nil {
		t.Fatalf("no deck report for theme %q", theme)
	}
	got := make(map[string]bool, len(rep.Cards))
	for _, name := range rep.Cards {
		got[name] = true
	}
	if len(rep.Cards) != len(want) {
		t.Errorf("[%s] got %d cards %v, want %d", theme, len(rep.Cards), rep.Cards, len(want))
	}
	for _, name := range want {
		if !got[name] {
			t.Errorf("[%s] missing %q (have %v)", theme, name, rep.Cards)
		}
	}
}
