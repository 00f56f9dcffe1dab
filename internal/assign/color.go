package assign

import (
	"jumpcube/internal/card"
	"jumpcube/internal/log"
)

// Composite score weights for the dual-color phase. Capacity pressure
// favors decks further from quota so one popular pairing cannot saturate
// early.
const (
	colorFitPoints         = 2.0
	capacityPressureWeight = 2.0
)

// colorAssign runs Phase 1: cards whose color identity exactly equals a
// dual theme's pair are routed to those themes before general competition.
// Cards with a unique home are assigned first in catalog order; contested
// cards then go round by round to the highest composite score.
func (b *Builder) colorAssign() {
	a := b.alloc
	b.logger.Log(log.NewPhaseStartEvent("color"))
	assigned := 0

	// Unique-fit pass: a card eligible for exactly one dual theme has no
	// competition to resolve. Each assignment restarts the scan, so a
	// rejected card is seen again every round; log its skip once.
	skipLogged := make(map[string]bool)
	for {
		moved := false
		for poolIdx, c := range a.pool {
			matches := b.exactDualMatches(c)
			if len(matches) != 1 {
				continue
			}
			d := a.decks[matches[0]]
			ok, reason := d.canAdd(c, a.cons)
			if !ok {
				if key := c.Name + "|" + reason; reason != reasonAtQuota && !skipLogged[key] {
					skipLogged[key] = true
					b.logger.Log(log.NewSkipEvent("color", d.Theme.Name, c.Name, reason))
				}
				continue
			}
			a.take(poolIdx, d)
			assigned++
			b.logger.Log(log.NewColorAssignEvent(d.Theme.Name, c.Name, b.dualComposite(c, matches[0])))
			moved = true
			break // pool mutated; restart the scan
		}
		if !moved {
			break
		}
	}

	// Contested pass: multi-theme cards, globally best composite first.
	// Capacity pressure changes as decks fill, so rescore each round.
	for {
		bestScore := 0.0
		bestDeck := -1
		bestPool := -1
		bestCatalog := 0
		for poolIdx, c := range a.pool {
			for _, deckIdx := range b.exactDualMatches(c) {
				d := a.decks[deckIdx]
				if ok, _ := d.canAdd(c, a.cons); !ok {
					continue
				}
				s := b.dualComposite(c, deckIdx)
				catIdx := a.index[c.Name]
				if betterColorPick(s, deckIdx, catIdx, bestScore, bestDeck, bestCatalog) {
					bestScore, bestDeck, bestPool, bestCatalog = s, deckIdx, poolIdx, catIdx
				}
			}
		}
		if bestDeck < 0 {
			break
		}
		d := a.decks[bestDeck]
		c := a.take(bestPool, d)
		assigned++
		b.logger.Log(log.NewColorAssignEvent(d.Theme.Name, c.Name, bestScore))
	}

	b.logger.Log(log.NewPhaseEndEvent("color", assigned))
}

// betterColorPick orders contested dual-color picks: higher composite
// score first, then earlier-registered theme, then catalog order.
func betterColorPick(s float64, deckIdx, catIdx int, bestS float64, bestDeck, bestCat int) bool {
	if bestDeck < 0 {
		return true
	}
	if s != bestS {
		return s > bestS
	}
	if deckIdx != bestDeck {
		return deckIdx < bestDeck
	}
	return catIdx < bestCat
}

// exactDualMatches returns deck indices of dual themes whose color pair
// exactly equals the card's identity, in registration order.
func (b *Builder) exactDualMatches(c *card.Card) []int {
	if c.Colors.Size() != 2 {
		return nil
	}
	var out []int
	for i, d := range b.alloc.decks {
		if d.Theme.IsDual() && d.Theme.Colors == c.Colors {
			out = append(out, i)
		}
	}
	return out
}

// dualComposite scores a dual-color pairing: exact color fit, strategy
// keyword overlap, and how far the deck is from quota.
func (b *Builder) dualComposite(c *card.Card, deckIdx int) float64 {
	d := b.alloc.decks[deckIdx]
	pressure := float64(b.alloc.cons.TargetDeckSize-d.Size()) / float64(b.alloc.cons.TargetDeckSize)
	return colorFitPoints + strategyOverlap(c, d.Theme) + pressure*capacityPressureWeight
}
