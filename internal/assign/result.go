package assign

import (
	"jumpcube/internal/card"
	"jumpcube/internal/score"
)

// DeckReport is the final, read-only view of one theme's assignment plus
// its diagnostics.
type DeckReport struct {
	Theme string   `json:"theme"`
	Cards []string `json:"cards"` // assignment order

	CreatureCount int `json:"creatureCount"`
	LandCount     int `json:"landCount"`
	NonLandCount  int `json:"nonLandCount"`

	// Shortfall marks a deck that finished under quota because the pool
	// ran out of eligible cards. Unresolved marks a deck still violating
	// constraints after the repair cap; Violations lists them.
	Shortfall  bool     `json:"shortfall,omitempty"`
	Unresolved bool     `json:"unresolved,omitempty"`
	Violations []string `json:"violations,omitempty"`

	// CoreCoverage is the fraction of the theme's core expectation met:
	// explicit core cards present over declared, or reserved cards over
	// the reservation cap for predicate-based themes.
	CoreCoverage float64 `json:"coreCoverage"`
	MeanScore    float64 `json:"meanScore"`
}

// Complete reports whether the deck hit quota with no open diagnostics.
func (r DeckReport) Complete() bool {
	return !r.Shortfall && !r.Unresolved
}

// Result is the immutable outcome of a run.
type Result struct {
	RunID string       `json:"runId"`
	Decks []DeckReport `json:"decks"` // registration order

	TotalAssigned int      `json:"totalAssigned"`
	Leftover      []string `json:"leftover,omitempty"` // unassigned cards, catalog order

	byTheme map[string]int
}

// Deck returns the report for the named theme, or nil.
func (r *Result) Deck(name string) *DeckReport {
	i, ok := r.byTheme[name]
	if !ok {
		return nil
	}
	return &r.Decks[i]
}

// AllComplete reports whether every deck hit quota cleanly.
func (r *Result) AllComplete() bool {
	for _, d := range r.Decks {
		if !d.Complete() {
			return false
		}
	}
	return true
}

// buildResult freezes the allocation into a Result.
func (b *Builder) buildResult(runID string) *Result {
	a := b.alloc
	res := &Result{
		RunID:   runID,
		Decks:   make([]DeckReport, 0, len(a.decks)),
		byTheme: make(map[string]int, len(a.decks)),
	}

	for deckIdx, d := range a.decks {
		names := make([]string, len(d.Cards))
		for i, c := range d.Cards {
			names[i] = c.Name
		}
		rep := DeckReport{
			Theme:         d.Theme.Name,
			Cards:         names,
			CreatureCount: d.CreatureCount(),
			LandCount:     d.LandCount(),
			NonLandCount:  d.NonLandCount(),
			Shortfall:     d.shortfall,
			Unresolved:    d.unresolved,
			Violations:    d.violations,
			CoreCoverage:  coreCoverage(d),
			MeanScore:     score.MeanScore(b.scores.scorers[deckIdx], nonLands(d.Cards), d.Theme),
		}
		res.byTheme[d.Theme.Name] = len(res.Decks)
		res.Decks = append(res.Decks, rep)
		res.TotalAssigned += len(d.Cards)
	}

	for _, c := range a.pool {
		res.Leftover = append(res.Leftover, c.Name)
	}
	return res
}

// coreCoverage measures how much of the theme's core expectation the deck
// carries.
func coreCoverage(d *DeckState) float64 {
	t := d.Theme
	if len(t.CoreCards) > 0 {
		hits := 0
		for _, c := range d.Cards {
			if t.IsCoreCard(c.Name) {
				hits++
			}
		}
		return float64(hits) / float64(len(t.CoreCards))
	}
	if t.CoreReserve > 0 {
		return float64(d.reserved) / float64(t.CoreReserve)
	}
	return 1.0
}

func nonLands(cards []*card.Card) []*card.Card {
	var out []*card.Card
	for _, c := range cards {
		if !c.IsLand() {
			out = append(out, c)
		}
	}
	return out
}
