package assign

import (
	"sort"

	"jumpcube/internal/log"
)

// complete runs Phase 3: every deck still below quota is filled from the
// remaining pool under relaxed eligibility — the color-subset requirement
// stays, the scoring threshold and strategy fit go. The most incomplete
// deck goes first so no theme exhausts the pool before a lagging one
// reaches quota.
func (b *Builder) complete() {
	a := b.alloc
	b.logger.Log(log.NewPhaseStartEvent("completion"))
	assigned := 0

	order := make([]int, 0, len(a.decks))
	for i, d := range a.decks {
		if !d.AtQuota(a.cons) {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		di, dj := a.decks[order[i]], a.decks[order[j]]
		if di.Size() != dj.Size() {
			return di.Size() < dj.Size()
		}
		return order[i] < order[j]
	})

	for _, deckIdx := range order {
		assigned += b.completeDeck(deckIdx, false)
	}

	b.logger.Log(log.NewPhaseEndEvent("completion", assigned))
}

// completeDeck fills a single deck toward quota and returns the number of
// cards added. Candidate priority: creatures while the deck is below
// MinCreatures, then land presence if the deck has none, then highest raw
// score. With backfill set the additions are logged as repair backfills.
func (b *Builder) completeDeck(deckIdx int, backfill bool) int {
	a := b.alloc
	d := a.decks[deckIdx]
	added := 0

	for !d.AtQuota(a.cons) {
		poolIdx, s := b.pickCompletion(deckIdx)
		if poolIdx < 0 {
			if !backfill {
				d.shortfall = true
				b.logger.Log(log.NewShortfallEvent(d.Theme.Name, d.Size(), a.cons.TargetDeckSize))
			}
			break
		}
		c := a.take(poolIdx, d)
		added++
		if backfill {
			b.logger.Log(log.NewBackfillEvent(d.Theme.Name, c.Name, s))
		} else {
			b.logger.Log(log.NewCompleteEvent(d.Theme.Name, c.Name, s))
		}
	}
	return added
}

// pickCompletion selects the next completion candidate for a deck,
// returning its pool position and score, or -1 if nothing eligible
// remains.
func (b *Builder) pickCompletion(deckIdx int) (int, float64) {
	a := b.alloc
	d := a.decks[deckIdx]

	needCreatures := d.CreatureCount() < a.cons.MinCreatures
	needLand := d.LandCount() == 0 && a.cons.MaxLands(d.Theme.IsMono()) > 0

	bestIdx := -1
	bestScore := 0.0
	bestClass := -1 // 2 = needed creature, 1 = needed land, 0 = filler
	for poolIdx, c := range a.pool {
		if !colorEligible(c, d.Theme) {
			continue
		}
		if ok, _ := d.canAdd(c, a.cons); !ok {
			continue
		}

		class := 0
		switch {
		case needCreatures && c.IsCreature():
			class = 2
		case needLand && c.IsLand():
			class = 1
		}

		s := b.scores.pairScore(c, deckIdx, d, a.cons)
		if class > bestClass || (class == bestClass && s > bestScore) {
			bestIdx, bestScore, bestClass = poolIdx, s, class
		}
	}
	return bestIdx, bestScore
}
