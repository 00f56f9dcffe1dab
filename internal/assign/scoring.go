package assign

import (
	"jumpcube/internal/card"
	"jumpcube/internal/score"
	"jumpcube/internal/theme"
)

// scoreSet holds one scorer per deck, built once per run. Scorers are
// indexed in registration order alongside Allocation.decks.
type scoreSet struct {
	scorers []*score.Scorer
}

func newScoreSet(reg *theme.Registry) *scoreSet {
	ss := &scoreSet{scorers: make([]*score.Scorer, 0, reg.Len())}
	for _, t := range reg.Themes() {
		ss.scorers = append(ss.scorers, score.ForTheme(t))
	}
	return ss
}

// Bonus values applied on top of the rule score. Color preference mirrors
// the tie-break tiers; the creature boost pulls decks up to MinCreatures
// before they fill with spells.
const (
	exactColorBonus   = 0.5
	subsetColorBonus  = 0.3
	colorlessBonus    = 0.1
	creatureNeedBoost = 2.0

	dualLandScore = 3.0
	monoLandScore = 1.0
)

// landScore rates a land for a theme by color production. Lands bypass the
// rule scorer entirely.
func landScore(c *card.Card, t *theme.Theme) float64 {
	if t.IsDual() {
		if c.CanProduce(t.Colors) {
			return dualLandScore
		}
		return 0.0
	}
	if c.CanProduce(t.Colors) {
		return monoLandScore
	}
	return 0.0
}

// pairScore computes the full assignment score for a (card, deck) pair:
// the theme's weighted rule score plus color preference and, when the deck
// is still below MinCreatures, a creature boost. Reads the current deck
// state, so scores shift between rounds as decks fill.
func (ss *scoreSet) pairScore(c *card.Card, deckIdx int, d *DeckState, cons Constraints) float64 {
	t := d.Theme
	if c.IsLand() {
		return landScore(c, t)
	}

	s := ss.scorers[deckIdx].Score(c, t)

	switch {
	case c.Colors == t.Colors:
		s += exactColorBonus
	case !c.Colors.IsColorless() && c.Colors.SubsetOf(t.Colors):
		s += subsetColorBonus
	case c.Colors.IsColorless():
		s += colorlessBonus
	}

	if c.IsCreature() && d.CreatureCount() < cons.MinCreatures {
		s += creatureNeedBoost
	}
	return s
}

// strategyOverlap counts theme keywords the card hits exactly. Used by the
// dual-color phase's composite score, where the full rule scorer would
// double-count color fit.
func strategyOverlap(c *card.Card, t *theme.Theme) float64 {
	overlap := 0.0
	for _, kw := range t.Keywords {
		if c.HasTag(kw) || c.HasSubtype(kw) {
			overlap += 1.0
		}
	}
	return overlap
}
