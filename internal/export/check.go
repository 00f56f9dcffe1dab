package export

import (
	"fmt"

	"jumpcube/internal/assign"
	"jumpcube/internal/card"
	"jumpcube/internal/theme"
)

// Check audits a saved deck file against a catalog, registry, and
// constraint set: every card must exist, no card may appear twice across
// decks or in both a deck and the leftover list, and each deck must meet
// the numeric limits. Returns one finding per problem, in file order; an
// empty slice means the file is sound.
func (f *DeckFile) Check(cat *card.Catalog, reg *theme.Registry, cons assign.Constraints) []string {
	var out []string
	owner := make(map[string]string)

	for _, d := range f.Decks {
		t := reg.Lookup(d.Theme)
		if t == nil {
			out = append(out, fmt.Sprintf("[%s] unknown theme", d.Theme))
		}

		var creatures, lands int
		landNames := make(map[string]bool)
		for _, name := range d.Cards {
			if prev, dup := owner[name]; dup {
				out = append(out, fmt.Sprintf("[%s] card %q already in %q", d.Theme, name, prev))
				continue
			}
			owner[name] = d.Theme

			c := cat.Lookup(name)
			if c == nil {
				out = append(out, fmt.Sprintf("[%s] card %q not in catalog", d.Theme, name))
				continue
			}
			if c.IsCreature() {
				creatures++
			}
			if c.IsLand() {
				lands++
				if landNames[name] {
					out = append(out, fmt.Sprintf("[%s] duplicate land %q", d.Theme, name))
				}
				landNames[name] = true
			}
			if t != nil && !c.Colors.SubsetOf(t.Colors) {
				out = append(out, fmt.Sprintf("[%s] card %q colors %s outside theme colors %s",
					d.Theme, name, c.Colors, t.Colors))
			}
		}

		if len(d.Cards) > cons.TargetDeckSize {
			out = append(out, fmt.Sprintf("[%s] size %d > target %d", d.Theme, len(d.Cards), cons.TargetDeckSize))
		}
		if creatures < cons.MinCreatures {
			out = append(out, fmt.Sprintf("[%s] creature count %d < min %d", d.Theme, creatures, cons.MinCreatures))
		}
		if creatures > cons.MaxCreatures {
			out = append(out, fmt.Sprintf("[%s] creature count %d > max %d", d.Theme, creatures, cons.MaxCreatures))
		}
		if nonLand := len(d.Cards) - lands; nonLand > cons.MaxNonLand {
			out = append(out, fmt.Sprintf("[%s] non-land count %d > max %d", d.Theme, nonLand, cons.MaxNonLand))
		}
		if t != nil {
			if maxLands := cons.MaxLands(t.IsMono()); lands > maxLands {
				out = append(out, fmt.Sprintf("[%s] land count %d > max %d", d.Theme, lands, maxLands))
			}
		}
	}

	for _, name := range f.Leftover {
		if prev, dup := owner[name]; dup {
			out = append(out, fmt.Sprintf("leftover card %q also in %q", name, prev))
		}
		if cat.Lookup(name) == nil {
			out = append(out, fmt.Sprintf("leftover card %q not in catalog", name))
		}
	}

	return out
}
