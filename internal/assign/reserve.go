package assign

import (
	"sort"

	"jumpcube/internal/log"
	"jumpcube/internal/score"
)

// coreCandidate is one (deck, card) core pairing considered by Phase 0.
type coreCandidate struct {
	deckIdx    int
	catalogIdx int
	name       string
	affinity   float64
}

// reserve runs Phase 0: each theme claims up to CoreReserve of its
// defining cards before open competition. Contested cards go to the theme
// with the strictly higher core affinity; on an exact tie the
// earlier-registered theme wins. Both rules fall out of a single global
// ordering over all candidates, which makes the phase deterministic.
func (b *Builder) reserve() {
	a := b.alloc
	b.logger.Log(log.NewPhaseStartEvent("reservation"))

	// Core affinity is static, so rank every candidate once up front.
	var candidates []coreCandidate
	for deckIdx, d := range a.decks {
		if d.Theme.CoreReserve == 0 {
			continue
		}
		for _, c := range a.pool {
			if !colorEligible(c, d.Theme) {
				continue
			}
			aff := score.CoreAffinity(c, d.Theme)
			if aff <= 0 {
				continue
			}
			candidates = append(candidates, coreCandidate{
				deckIdx:    deckIdx,
				catalogIdx: a.index[c.Name],
				name:       c.Name,
				affinity:   aff,
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].affinity != candidates[j].affinity {
			return candidates[i].affinity > candidates[j].affinity
		}
		if candidates[i].deckIdx != candidates[j].deckIdx {
			return candidates[i].deckIdx < candidates[j].deckIdx
		}
		return candidates[i].catalogIdx < candidates[j].catalogIdx
	})

	claimed := make(map[string]bool, len(candidates))
	assigned := 0
	for _, cand := range candidates {
		if claimed[cand.name] {
			continue
		}
		d := a.decks[cand.deckIdx]
		if d.reserved >= d.Theme.CoreReserve {
			continue
		}

		poolIdx := poolPosition(a, cand.name)
		if poolIdx < 0 {
			continue
		}
		c := a.pool[poolIdx]
		if ok, reason := d.canAdd(c, a.cons); !ok {
			b.logger.Log(log.NewSkipEvent("reservation", d.Theme.Name, c.Name, reason))
			continue
		}

		a.take(poolIdx, d)
		d.reserved++
		claimed[cand.name] = true
		assigned++
		b.logger.Log(log.NewReserveEvent(d.Theme.Name, c.Name, cand.affinity))
	}

	b.logger.Log(log.NewPhaseEndEvent("reservation", assigned))
}

// poolPosition finds a card's current position in the pool, or -1.
func poolPosition(a *Allocation, name string) int {
	for i, c := range a.pool {
		if c.Name == name {
			return i
		}
	}
	return -1
}
