package assign

import (
	"fmt"

	"jumpcube/internal/card"
	"jumpcube/internal/log"
)

// maxRepairPasses bounds the remove→backfill loop per deck. Termination is
// guaranteed even when no compliant replacement exists; a deck still
// non-compliant past the cap is reported, not fatal.
const maxRepairPasses = 5

// repair runs Phase 4: constraint validation with a bounded remove-and-
// backfill loop per deck, in registration order.
func (b *Builder) repair() {
	b.logger.Log(log.NewPhaseStartEvent("repair"))
	for deckIdx := range b.alloc.decks {
		b.repairDeck(deckIdx)
	}
	b.logger.Log(log.NewPhaseEndEvent("repair", 0))
}

func (b *Builder) repairDeck(deckIdx int) {
	d := b.alloc.decks[deckIdx]

	for pass := 1; pass <= maxRepairPasses; pass++ {
		violations := b.deckViolations(d)
		if len(violations) == 0 {
			return
		}
		b.logger.Log(log.NewRepairPassEvent(d.Theme.Name, pass))
		for _, v := range violations {
			b.logger.Log(log.NewViolationEvent(d.Theme.Name, v))
		}
		if !b.repairStep(deckIdx) {
			break // no applicable fix; give up before the cap
		}
	}

	if violations := b.deckViolations(d); len(violations) > 0 {
		d.unresolved = true
		d.violations = violations
		b.logger.Log(log.NewUnresolvedEvent(d.Theme.Name, violations))
	}
}

// deckViolations lists a deck's constraint violations. A size deficit
// already attributed to pool exhaustion is not a violation.
func (b *Builder) deckViolations(d *DeckState) []string {
	cons := b.alloc.cons
	var out []string
	if d.Size() < cons.TargetDeckSize && !d.shortfall {
		out = append(out, fmt.Sprintf("size %d < target %d", d.Size(), cons.TargetDeckSize))
	}
	if d.Size() > cons.TargetDeckSize {
		out = append(out, fmt.Sprintf("size %d > target %d", d.Size(), cons.TargetDeckSize))
	}
	if d.CreatureCount() < cons.MinCreatures {
		out = append(out, fmt.Sprintf("creature count %d < min %d", d.CreatureCount(), cons.MinCreatures))
	}
	if d.CreatureCount() > cons.MaxCreatures {
		out = append(out, fmt.Sprintf("creature count %d > max %d", d.CreatureCount(), cons.MaxCreatures))
	}
	if d.NonLandCount() > cons.MaxNonLand {
		out = append(out, fmt.Sprintf("non-land count %d > max %d", d.NonLandCount(), cons.MaxNonLand))
	}
	if maxLands := cons.MaxLands(d.Theme.IsMono()); d.LandCount() > maxLands {
		out = append(out, fmt.Sprintf("land count %d > max %d", d.LandCount(), maxLands))
	}
	return out
}

// repairStep applies one fix for the deck's highest-priority violation:
// remove the worst offending card back into the pool, then backfill.
// Returns false when no applicable fix exists.
func (b *Builder) repairStep(deckIdx int) bool {
	a := b.alloc
	d := a.decks[deckIdx]
	cons := a.cons

	switch {
	case d.CreatureCount() > cons.MaxCreatures:
		b.removeWorst(deckIdx, func(c *card.Card) bool { return c.IsCreature() }, reasonCreatureLimit)
	case d.LandCount() > cons.MaxLands(d.Theme.IsMono()):
		b.removeWorst(deckIdx, func(c *card.Card) bool { return c.IsLand() }, reasonLandLimit)
	case d.NonLandCount() > cons.MaxNonLand:
		b.removeWorst(deckIdx, func(c *card.Card) bool { return !c.IsLand() }, reasonNonLandLimit)
	case d.CreatureCount() < cons.MinCreatures:
		// A swap only helps if a creature is actually available.
		if !b.poolHasEligibleCreature(d) {
			return false
		}
		if d.AtQuota(cons) {
			b.removeWorst(deckIdx, func(c *card.Card) bool { return !c.IsCreature() }, "creature minimum")
		}
	case d.Size() < cons.TargetDeckSize:
		// Pure size deficit: backfill only, no removal.
	default:
		return false
	}

	if b.completeDeck(deckIdx, true) == 0 && d.Size() < cons.TargetDeckSize {
		// Nothing eligible left for this theme; the shortfall is
		// pool-justified from here on.
		d.shortfall = true
		b.logger.Log(log.NewShortfallEvent(d.Theme.Name, d.Size(), cons.TargetDeckSize))
	}
	return true
}

// removeWorst removes the deck's lowest-scoring card matching the filter
// and returns it to the pool. Score ties remove the latest-added copy, so
// reserved core cards survive longest.
func (b *Builder) removeWorst(deckIdx int, match func(*card.Card) bool, reason string) {
	a := b.alloc
	d := a.decks[deckIdx]

	worstIdx := -1
	worstScore := 0.0
	for i, c := range d.Cards {
		if !match(c) {
			continue
		}
		var s float64
		if c.IsLand() {
			s = landScore(c, d.Theme)
		} else {
			s = b.scores.scorers[deckIdx].Score(c, d.Theme)
		}
		if worstIdx < 0 || s < worstScore || (s == worstScore && i > worstIdx) {
			worstIdx, worstScore = i, s
		}
	}
	if worstIdx < 0 {
		return
	}

	c := d.removeAt(worstIdx)
	a.giveBack(c)
	b.logger.Log(log.NewRemoveEvent(d.Theme.Name, c.Name, reason))
}

// poolHasEligibleCreature reports whether any pooled creature could join
// the deck.
func (b *Builder) poolHasEligibleCreature(d *DeckState) bool {
	for _, c := range b.alloc.pool {
		if c.IsCreature() && colorEligible(c, d.Theme) {
			return true
		}
	}
	return false
}
