package assign

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"jumpcube/internal/card"
	"jumpcube/internal/log"
	"jumpcube/internal/theme"
)

func TestNewBuilderRejectsBadConfig(t *testing.T) {
	cat, err := card.NewCatalog([]*card.Card{spell("Alpha", "W", 1)})
	if err != nil {
		t.Fatal(err)
	}
	reg, err := theme.NewRegistry([]*theme.Theme{plainTheme("Mono", "W")})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := NewBuilder(Config{Registry: reg, Constraints: DefaultConstraints()}); err == nil {
		t.Error("nil catalog accepted")
	}
	if _, err := NewBuilder(Config{Catalog: cat, Constraints: DefaultConstraints()}); err == nil {
		t.Error("nil registry accepted")
	}
	bad := DefaultConstraints()
	bad.MinCreatures = 99
	if _, err := NewBuilder(Config{Catalog: cat, Registry: reg, Constraints: bad}); !errors.Is(err, ErrInvalidConstraints) {
		t.Errorf("got %v, want ErrInvalidConstraints", err)
	}
}

func TestRunIsSingleUse(t *testing.T) {
	cons := Constraints{TargetDeckSize: 1, MaxCreatures: 1, MaxNonLand: 1, MaxLandsMono: 1, MaxLandsDual: 1}
	b, _ := newTestBuilder(t, cons,
		[]*theme.Theme{plainTheme("Mono", "W")},
		[]*card.Card{spell("Alpha", "W", 1)})

	if b.State() != StateInit {
		t.Fatalf("initial state = %s, want INIT", b.State())
	}
	if _, err := b.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if b.State() != StateFinal {
		t.Errorf("state after run = %s, want FINAL", b.State())
	}
	if _, err := b.Run(); err == nil {
		t.Error("second Run succeeded, want error")
	}
}

func TestStateString(t *testing.T) {
	want := map[State]string{
		StateInit:            "INIT",
		StateReserved:        "RESERVED",
		StateColorAssigned:   "COLOR_ASSIGNED",
		StateGeneralAssigned: "GENERAL_ASSIGNED",
		StateCompleted:       "COMPLETED",
		StateValidating:      "VALIDATING",
		StateFinal:           "FINAL",
		State(99):            "UNKNOWN",
	}
	for s, name := range want {
		if got := s.String(); got != name {
			t.Errorf("State(%d).String() = %q, want %q", int(s), got, name)
		}
	}
}

// themedCards builds a six-card package that belongs unambiguously to one
// theme: three creatures, two spells, one land, all tagged with the
// theme's keyword.
func themedCards(prefix, colors, landName, produces, tag string) []*card.Card {
	return []*card.Card{
		creature(prefix+" Captain", colors, 2, 2, 2, tag),
		creature(prefix+" Sentry", colors, 2, 1, 3, tag),
		creature(prefix+" Herald", colors, 3, 2, 3, tag),
		spell(prefix+" Decree", colors, 2, tag),
		spell(prefix+" Rally", colors, 3, tag),
		basicLand(landName, produces),
	}
}

func TestRunEndToEnd(t *testing.T) {
	cons := Constraints{
		TargetDeckSize: 6,
		MinCreatures:   2,
		MaxCreatures:   4,
		MaxNonLand:     5,
		MaxLandsMono:   1,
		MaxLandsDual:   2,
	}
	themes := []*theme.Theme{
		plainTheme("White Banners", "W", "banner"),
		plainTheme("White Shields", "W", "shield"),
		plainTheme("Blue Scrolls", "U", "scroll"),
		plainTheme("Azorius Wings", "WU", "wing"),
	}
	var cards []*card.Card
	cards = append(cards, themedCards("Banner", "W", "Sunlit Plains", "W", "banner")...)
	cards = append(cards, themedCards("Shield", "W", "Gleaming Plains", "W", "shield")...)
	cards = append(cards, themedCards("Scroll", "U", "Misty Island", "U", "scroll")...)
	cards = append(cards, themedCards("Wing", "WU", "Azorius Outpost", "WU", "wing")...)

	res, logger := runBuilder(t, cons, themes, cards)

	if !res.AllComplete() {
		t.Errorf("decks incomplete:\n%s", log.FormatAll(logger.Events()))
	}
	if len(res.Leftover) != 0 {
		t.Errorf("leftover = %v, want empty", res.Leftover)
	}
	if res.TotalAssigned != 24 {
		t.Errorf("total assigned = %d, want 24", res.TotalAssigned)
	}
	if res.RunID == "" {
		t.Error("empty run ID")
	}

	assertDeckSet(t, res, "White Banners",
		"Banner Captain", "Banner Sentry", "Banner Herald", "Banner Decree", "Banner Rally", "Sunlit Plains")
	assertDeckSet(t, res, "White Shields",
		"Shield Captain", "Shield Sentry", "Shield Herald", "Shield Decree", "Shield Rally", "Gleaming Plains")
	assertDeckSet(t, res, "Blue Scrolls",
		"Scroll Captain", "Scroll Sentry", "Scroll Herald", "Scroll Decree", "Scroll Rally", "Misty Island")
	assertDeckSet(t, res, "Azorius Wings",
		"Wing Captain", "Wing Sentry", "Wing Herald", "Wing Decree", "Wing Rally", "Azorius Outpost")

	for _, d := range res.Decks {
		if d.CreatureCount < cons.MinCreatures || d.CreatureCount > cons.MaxCreatures {
			t.Errorf("[%s] creature count %d outside [%d,%d]", d.Theme, d.CreatureCount, cons.MinCreatures, cons.MaxCreatures)
		}
		if d.LandCount != 1 {
			t.Errorf("[%s] land count = %d, want 1", d.Theme, d.LandCount)
		}
	}

	last := logger.LastEvent()
	if last.Type != log.EventBuildDone {
		t.Errorf("last event = %s, want build done", last.Type)
	}
}

// fullQuotaPool builds 30 themes and a pool sized exactly to their total
// quota: every theme owns six creatures, six spells, and one land of its
// colors, each stamped with a keyword only that theme declares. Dual
// packages use two-color cards so the color phase routes them; every
// land name is unique and produces its theme's colors.
func fullQuotaPool() ([]*theme.Theme, []*card.Card) {
	monoNames := map[string]string{"W": "White", "U": "Blue", "B": "Black", "R": "Red", "G": "Green"}
	roles := []string{"Vanguard", "Wardens", "Mystics", "Raiders"}
	guildNames := map[string]string{
		"WU": "Azorius", "WB": "Orzhov", "WR": "Boros", "WG": "Selesnya",
		"UB": "Dimir", "UR": "Izzet", "UG": "Simic",
		"BR": "Rakdos", "BG": "Golgari", "RG": "Gruul",
	}

	var themes []*theme.Theme
	var cards []*card.Card
	mark := 0
	addPackage := func(name, colors string) {
		tag := fmt.Sprintf("mark%02d", mark)
		mark++
		themes = append(themes, plainTheme(name, colors, tag))
		for i := 0; i < 6; i++ {
			cards = append(cards, creature(fmt.Sprintf("%s Creature %d", name, i+1), colors, 2, 2, 2, tag))
		}
		for i := 0; i < 6; i++ {
			cards = append(cards, spell(fmt.Sprintf("%s Spell %d", name, i+1), colors, 2, tag))
		}
		cards = append(cards, basicLand(name+" Hold", colors))
	}

	for _, col := range []string{"W", "U", "B", "R", "G"} {
		for _, role := range roles {
			addPackage(monoNames[col]+" "+role, col)
		}
	}
	for _, pair := range []string{"WU", "WB", "WR", "WG", "UB", "UR", "UG", "BR", "BG", "RG"} {
		addPackage(guildNames[pair]+" Alliance", pair)
	}
	return themes, cards
}

// A pool sized exactly to the total quota must fill every deck to target
// with nothing left over.
func TestRunFullQuotaPool(t *testing.T) {
	themes, cards := fullQuotaPool()
	cons := DefaultConstraints()
	if want := len(themes) * cons.TargetDeckSize; len(cards) != want {
		t.Fatalf("pool size = %d, want %d", len(cards), want)
	}

	res, logger := runBuilder(t, cons, themes, cards)

	if res.TotalAssigned != 390 {
		t.Errorf("total assigned = %d, want 390", res.TotalAssigned)
	}
	if len(res.Leftover) != 0 {
		t.Errorf("leftover = %v, want empty", res.Leftover)
	}
	if got := len(res.Decks); got != 30 {
		t.Fatalf("got %d deck reports, want 30", got)
	}
	for _, d := range res.Decks {
		if len(d.Cards) != cons.TargetDeckSize {
			t.Errorf("[%s] size %d, want %d", d.Theme, len(d.Cards), cons.TargetDeckSize)
		}
		if d.CreatureCount != 6 {
			t.Errorf("[%s] creature count %d, want 6", d.Theme, d.CreatureCount)
		}
		if d.LandCount != 1 {
			t.Errorf("[%s] land count %d, want 1", d.Theme, d.LandCount)
		}
	}
	if !res.AllComplete() {
		t.Errorf("decks incomplete:\n%s", log.FormatAll(logger.EventsOfType(log.EventUnresolved)))
	}
}

// stockCards generates a deterministic synthetic pool broad enough to feed
// the full stock registry.
func stockCards() []*card.Card {
	colorTags := map[string][]string{
		"W": {"soldier", "equipment", "angel", "flying", "vigilance", "cheap", "attack"},
		"U": {"flying", "wizard", "draw", "counter", "merfolk", "scry", "bounce"},
		"B": {"zombie", "graveyard", "sacrifice", "vampire", "dies", "drain", "return"},
		"R": {"goblin", "burn", "dragon", "artifact", "haste", "damage", "aggressive"},
		"G": {"elf", "mana", "trample", "beast", "big", "token", "pump"},
	}
	guilds := []string{"WU", "WB", "UB", "UR", "BR", "BG", "RG", "RW", "GW", "GU"}

	var cards []*card.Card
	for _, col := range []string{"W", "U", "B", "R", "G"} {
		tags := colorTags[col]
		for i := 0; i < 20; i++ {
			mv := i%5 + 1
			cards = append(cards, creature(
				fmt.Sprintf("%s Creature %02d", col, i), col, mv, mv, i%3+1,
				tags[i%len(tags)], tags[(i+2)%len(tags)]))
		}
		for i := 0; i < 10; i++ {
			cards = append(cards, spell(
				fmt.Sprintf("%s Spell %02d", col, i), col, i%4+1,
				tags[i%len(tags)]))
		}
		for i := 0; i < 4; i++ {
			cards = append(cards, basicLand(fmt.Sprintf("%s Land %d", col, i), col))
		}
	}
	for _, pair := range guilds {
		for i := 0; i < 3; i++ {
			tags := colorTags[pair[:1]]
			cards = append(cards, creature(
				fmt.Sprintf("%s Guild %d", pair, i), pair, i+2, i+1, i+2,
				tags[i%len(tags)]))
		}
		cards = append(cards, basicLand(pair+" Hall", pair))
	}
	return cards
}

func runStock(t *testing.T) *Result {
	t.Helper()
	cat, err := card.NewCatalog(stockCards())
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	b, err := NewBuilder(Config{
		Catalog:     cat,
		Registry:    theme.DefaultRegistry(),
		Constraints: DefaultConstraints(),
	})
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	res, err := b.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return res
}

func TestRunDeterminism(t *testing.T) {
	first := runStock(t)
	second := runStock(t)

	if diff := cmp.Diff(first.Decks, second.Decks); diff != "" {
		t.Errorf("deck reports differ between identical runs (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(first.Leftover, second.Leftover); diff != "" {
		t.Errorf("leftovers differ between identical runs (-first +second):\n%s", diff)
	}
}

func TestRunCardConservation(t *testing.T) {
	res := runStock(t)

	if got := len(res.Decks); got != 30 {
		t.Fatalf("got %d deck reports, want 30", got)
	}

	seen := make(map[string]int)
	total := 0
	for _, d := range res.Decks {
		if len(d.Cards) > DefaultConstraints().TargetDeckSize {
			t.Errorf("[%s] size %d exceeds target", d.Theme, len(d.Cards))
		}
		for _, name := range d.Cards {
			seen[name]++
			total++
		}
	}
	for name, n := range seen {
		if n > 1 {
			t.Errorf("card %q assigned %d times", name, n)
		}
	}
	for _, name := range res.Leftover {
		if seen[name] > 0 {
			t.Errorf("card %q both assigned and leftover", name)
		}
		total++
	}
	if want := len(stockCards()); total != want {
		t.Errorf("cards accounted for = %d, want %d", total, want)
	}
	if res.TotalAssigned != total-len(res.Leftover) {
		t.Errorf("TotalAssigned = %d, inconsistent with reports", res.TotalAssigned)
	}
}
