package assign

import (
	"fmt"

	"jumpcube/internal/card"
	"jumpcube/internal/theme"
)

// DeckState tracks one theme's in-progress assignment list and the counters
// the constraint checks need.
type DeckState struct {
	Theme *theme.Theme
	Cards []*card.Card

	creatures int
	lands     int
	landNames map[string]bool

	reserved   int  // cards claimed during the reservation phase
	shortfall  bool // finished under quota with the pool exhausted
	unresolved bool // constraint-non-compliant past the repair cap
	violations []string
}

func newDeckState(t *theme.Theme) *DeckState {
	return &DeckState{Theme: t, landNames: make(map[string]bool)}
}

// Size returns the current number of assigned cards.
func (d *DeckState) Size() int { return len(d.Cards) }

// CreatureCount returns the number of assigned creatures.
func (d *DeckState) CreatureCount() int { return d.creatures }

// LandCount returns the number of assigned lands.
func (d *DeckState) LandCount() int { return d.lands }

// NonLandCount returns the number of assigned non-land cards.
func (d *DeckState) NonLandCount() int { return len(d.Cards) - d.lands }

// AtQuota reports whether the deck has reached the target size.
func (d *DeckState) AtQuota(cons Constraints) bool {
	return len(d.Cards) >= cons.TargetDeckSize
}

// Skip reasons reported on rejected candidates.
const (
	reasonAtQuota       = "at quota"
	reasonCreatureLimit = "creature limit"
	reasonLandLimit     = "land limit"
	reasonDuplicateLand = "duplicate land"
	reasonLandColors    = "cannot produce required colors"
	reasonNonLandLimit  = "non-land limit"
)

// canAdd reports whether the card may be appended without breaking a hard
// constraint, returning the reason when it may not.
func (d *DeckState) canAdd(c *card.Card, cons Constraints) (bool, string) {
	if d.AtQuota(cons) {
		return false, reasonAtQuota
	}
	if c.IsCreature() && d.creatures >= cons.MaxCreatures {
		return false, reasonCreatureLimit
	}
	if c.IsLand() {
		if d.lands >= cons.MaxLands(d.Theme.IsMono()) {
			return false, reasonLandLimit
		}
		if d.landNames[c.Name] {
			return false, reasonDuplicateLand
		}
		if d.Theme.IsDual() && !c.CanProduce(d.Theme.Colors) {
			return false, reasonLandColors
		}
	} else if d.NonLandCount() >= cons.MaxNonLand {
		return false, reasonNonLandLimit
	}
	return true, ""
}

// add appends the card and updates counters. Callers must have checked
// canAdd; the pool bookkeeping lives in Allocation.
func (d *DeckState) add(c *card.Card) {
	d.Cards = append(d.Cards, c)
	if c.IsCreature() {
		d.creatures++
	}
	if c.IsLand() {
		d.lands++
		d.landNames[c.Name] = true
	}
}

// removeAt removes and returns the card at position i.
func (d *DeckState) removeAt(i int) *card.Card {
	c := d.Cards[i]
	d.Cards = append(d.Cards[:i], d.Cards[i+1:]...)
	if c.IsCreature() {
		d.creatures--
	}
	if c.IsLand() {
		d.lands--
		delete(d.landNames, c.Name)
	}
	return c
}

// Allocation is the mutable state threaded through the phases: the
// remaining pool in stable catalog order plus one DeckState per theme in
// registration order. Exactly one phase owns it at a time.
type Allocation struct {
	cons  Constraints
	pool  []*card.Card
	index map[string]int // card name → catalog position, for ordered re-insertion
	decks []*DeckState
}

func newAllocation(cat *card.Catalog, reg *theme.Registry, cons Constraints) *Allocation {
	a := &Allocation{
		cons:  cons,
		pool:  append([]*card.Card(nil), cat.Cards()...),
		index: make(map[string]int, cat.Len()),
		decks: make([]*DeckState, 0, reg.Len()),
	}
	for i, c := range cat.Cards() {
		a.index[c.Name] = i
	}
	for _, t := range reg.Themes() {
		a.decks = append(a.decks, newDeckState(t))
	}
	return a
}

// take removes the pool card at position i and appends it to the deck.
func (a *Allocation) take(i int, d *DeckState) *card.Card {
	c := a.pool[i]
	a.pool = append(a.pool[:i], a.pool[i+1:]...)
	d.add(c)
	return c
}

// giveBack reinserts a removed card into the pool at its catalog-order
// position, keeping pool scans deterministic.
func (a *Allocation) giveBack(c *card.Card) {
	pos := len(a.pool)
	for i, p := range a.pool {
		if a.index[p.Name] > a.index[c.Name] {
			pos = i
			break
		}
	}
	a.pool = append(a.pool, nil)
	copy(a.pool[pos+1:], a.pool[pos:])
	a.pool[pos] = c
}

// assignedCount returns the total number of cards across all decks.
func (a *Allocation) assignedCount() int {
	n := 0
	for _, d := range a.decks {
		n += len(d.Cards)
	}
	return n
}

// allAtQuota reports whether every deck has reached the target size.
func (a *Allocation) allAtQuota() bool {
	for _, d := range a.decks {
		if !d.AtQuota(a.cons) {
			return false
		}
	}
	return true
}

// checkUniqueness verifies that no card appears in two decks and that no
// assigned card is still in the pool. Enforced defensively after repair; a
// failure here is an engine defect.
func (a *Allocation) checkUniqueness() error {
	seen := make(map[string]string, a.assignedCount())
	for _, d := range a.decks {
		for _, c := range d.Cards {
			if prev, dup := seen[c.Name]; dup {
				return fmt.Errorf("%w: %q in both %q and %q", ErrUniquenessViolation, c.Name, prev, d.Theme.Name)
			}
			seen[c.Name] = d.Theme.Name
		}
	}
	for _, c := range a.pool {
		if owner, dup := seen[c.Name]; dup {
			return fmt.Errorf("%w: %q assigned to %q but still pooled", ErrUniquenessViolation, c.Name, owner)
		}
	}
	return nil
}

// colorEligible reports whether the card's color identity fits inside the
// theme's required colors. Colorless fits everything.
func colorEligible(c *card.Card, t *theme.Theme) bool {
	return c.Colors.SubsetOf(t.Colors)
}

// colorTier ranks how tightly a card's identity matches a theme's colors:
// exact match beats proper subset beats colorless. Used by tie-breaks.
func colorTier(c *card.Card, t *theme.Theme) int {
	switch {
	case c.Colors == t.Colors:
		return 2
	case !c.Colors.IsColorless():
		return 1
	default:
		return 0
	}
}
