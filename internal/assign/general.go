package assign

import (
	"jumpcube/internal/log"
)

// generalAssign runs Phase 2, the core of the engine. Each round it scores
// every eligible (card, deck) pair and commits only the single globally
// best one, so an early theme can never claim a card that fits a later
// theme better. Rounds repeat until no positive-scoring pair remains, the
// pool is empty, or every deck is at quota.
//
// Cost is O(rounds × pool × decks), acceptable at cube scale (hundreds of
// cards, tens of themes).
func (b *Builder) generalAssign() {
	a := b.alloc
	b.logger.Log(log.NewPhaseStartEvent("general"))
	assigned := 0

	for len(a.pool) > 0 && !a.allAtQuota() {
		best := pairPick{deckIdx: -1}
		for poolIdx, c := range a.pool {
			for deckIdx, d := range a.decks {
				if !colorEligible(c, d.Theme) {
					continue
				}
				if ok, _ := d.canAdd(c, a.cons); !ok {
					continue
				}
				s := b.scores.pairScore(c, deckIdx, d, a.cons)
				if s <= 0 {
					continue
				}
				cand := pairPick{
					score:      s,
					tier:       colorTier(c, d.Theme),
					deckSize:   d.Size(),
					catalogIdx: a.index[c.Name],
					deckIdx:    deckIdx,
					poolIdx:    poolIdx,
				}
				if cand.beats(best) {
					best = cand
				}
			}
		}
		if best.deckIdx < 0 {
			break // no eligible pair with positive score
		}

		d := a.decks[best.deckIdx]
		c := a.take(best.poolIdx, d)
		assigned++
		b.logger.Log(log.NewAssignEvent(d.Theme.Name, c.Name, best.score))
	}

	b.logger.Log(log.NewPhaseEndEvent("general", assigned))
}

// pairPick is one candidate (card, deck) pair in a general round.
type pairPick struct {
	score      float64
	tier       int
	deckSize   int
	catalogIdx int
	deckIdx    int
	poolIdx    int
}

// beats implements the round ordering: highest score wins; ties go to the
// narrower color match, then the smaller deck (fill lagging themes), then
// stable catalog order, then theme registration order.
func (p pairPick) beats(q pairPick) bool {
	if q.deckIdx < 0 {
		return true
	}
	if p.score != q.score {
		return p.score > q.score
	}
	if p.tier != q.tier {
		return p.tier > q.tier
	}
	if p.deckSize != q.deckSize {
		return p.deckSize < q.deckSize
	}
	if p.catalogIdx != q.catalogIdx {
		return p.catalogIdx < q.catalogIdx
	}
	return p.deckIdx < q.deckIdx
}
