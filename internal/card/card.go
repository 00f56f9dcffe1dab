package card

import (
	"fmt"
	"strings"
)

// Color is one of the five mana colors.
type Color int

const (
	White Color = iota
	Blue
	Black
	Red
	Green
)

// AllColors lists the five colors in canonical WUBRG order.
var AllColors = [5]Color{White, Blue, Black, Red, Green}

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Blue:
		return "U"
	case Black:
		return "B"
	case Red:
		return "R"
	case Green:
		return "G"
	default:
		return "?"
	}
}

// Name returns the full color name for display.
func (c Color) Name() string {
	switch c {
	case White:
		return "White"
	case Blue:
		return "Blue"
	case Black:
		return "Black"
	case Red:
		return "Red"
	case Green:
		return "Green"
	default:
		return "Unknown"
	}
}

// ParseColor parses a single color symbol ("W", "U", "B", "R", "G").
func ParseColor(s string) (Color, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "W":
		return White, nil
	case "U":
		return Blue, nil
	case "B":
		return Black, nil
	case "R":
		return Red, nil
	case "G":
		return Green, nil
	default:
		return 0, fmt.Errorf("unknown color symbol %q", s)
	}
}

// ColorSet is a set of colors packed into a bitmask.
// The zero value is the empty (colorless) set.
type ColorSet uint8

// NewColorSet builds a set from the given colors.
func NewColorSet(colors ...Color) ColorSet {
	var cs ColorSet
	for _, c := range colors {
		cs |= 1 << uint(c)
	}
	return cs
}

// ParseColorSet parses a compact color string like "WU" or "g".
// An empty string is the colorless set.
func ParseColorSet(s string) (ColorSet, error) {
	var cs ColorSet
	for _, r := range strings.TrimSpace(s) {
		c, err := ParseColor(string(r))
		if err != nil {
			return 0, err
		}
		cs |= 1 << uint(c)
	}
	return cs, nil
}

// Contains reports whether the set includes the given color.
func (cs ColorSet) Contains(c Color) bool {
	return cs&(1<<uint(c)) != 0
}

// Size returns the number of colors in the set.
func (cs ColorSet) Size() int {
	n := 0
	for _, c := range AllColors {
		if cs.Contains(c) {
			n++
		}
	}
	return n
}

// IsColorless reports whether the set is empty.
func (cs ColorSet) IsColorless() bool {
	return cs == 0
}

// SubsetOf reports whether every color in cs is also in other.
// The colorless set is a subset of everything.
func (cs ColorSet) SubsetOf(other ColorSet) bool {
	return cs&^other == 0
}

// Colors returns the member colors in canonical WUBRG order.
func (cs ColorSet) Colors() []Color {
	var out []Color
	for _, c := range AllColors {
		if cs.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

// String renders the set in canonical order, e.g. "WU". Colorless is "C".
func (cs ColorSet) String() string {
	if cs == 0 {
		return "C"
	}
	var sb strings.Builder
	for _, c := range AllColors {
		if cs.Contains(c) {
			sb.WriteString(c.String())
		}
	}
	return sb.String()
}

// Card is a single immutable pool record. Name doubles as the unique
// identifier; the catalog rejects duplicates at load time.
type Card struct {
	Name      string
	Colors    ColorSet
	ManaValue int // -1 for lands (no mana value)
	Power     int
	Toughness int

	Land           bool
	Creature       bool
	Artifact       bool
	InstantSorcery bool

	// Produces is the set of colors a land can produce. Empty for non-lands.
	Produces ColorSet

	Subtypes []string // e.g. "soldier", "equipment", lowercased
	Tags     []string // free-text keyword tags, lowercased

	tagSet     map[string]bool
	subtypeSet map[string]bool
}

func (c *Card) String() string {
	return c.Name
}

// IsLand reports whether the card is a land.
func (c *Card) IsLand() bool { return c.Land }

// IsCreature reports whether the card is a creature.
func (c *Card) IsCreature() bool { return c.Creature }

// IsArtifact reports whether the card is an artifact.
func (c *Card) IsArtifact() bool { return c.Artifact }

// IsInstantOrSorcery reports whether the card is an instant or sorcery.
func (c *Card) IsInstantOrSorcery() bool { return c.InstantSorcery }

// HasTag reports whether the card carries the given keyword tag.
// Tags are matched exactly after lowercasing at load time.
func (c *Card) HasTag(tag string) bool {
	return c.tagSet[tag]
}

// HasSubtype reports whether the card has the given subtype.
func (c *Card) HasSubtype(sub string) bool {
	return c.subtypeSet[sub]
}

// HasPartialTag reports whether any tag contains the given keyword as a
// substring. Used for the weaker partial-match scoring tier.
func (c *Card) HasPartialTag(keyword string) bool {
	for _, t := range c.Tags {
		if strings.Contains(t, keyword) {
			return true
		}
	}
	return false
}

// CanProduce reports whether a land can produce every color in want.
func (c *Card) CanProduce(want ColorSet) bool {
	return want.SubsetOf(c.Produces)
}

// finalize normalizes tags/subtypes and builds the lookup sets. Called once
// by the catalog; cards are treated as immutable afterwards.
func (c *Card) finalize() {
	c.tagSet = make(map[string]bool, len(c.Tags))
	for i, t := range c.Tags {
		t = strings.ToLower(strings.TrimSpace(t))
		c.Tags[i] = t
		c.tagSet[t] = true
	}
	c.subtypeSet = make(map[string]bool, len(c.Subtypes))
	for i, s := range c.Subtypes {
		s = strings.ToLower(strings.TrimSpace(s))
		c.Subtypes[i] = s
		c.subtypeSet[s] = true
	}
	if !c.Land {
		c.Produces = 0
	} else {
		c.ManaValue = -1
	}
}
