package theme

import (
	"fmt"
	"strings"

	"jumpcube/internal/card"
)

// Archetype is the strategy label attached to a theme.
type Archetype int

const (
	ArchetypeNone Archetype = iota
	ArchetypeAggro
	ArchetypeControl
	ArchetypeMidrange
	ArchetypeRamp
	ArchetypeTempo
	ArchetypeTribal
	ArchetypeStompy
	ArchetypeArtifacts
)

func (a Archetype) String() string {
	switch a {
	case ArchetypeAggro:
		return "Aggro"
	case ArchetypeControl:
		return "Control"
	case ArchetypeMidrange:
		return "Midrange"
	case ArchetypeRamp:
		return "Ramp"
	case ArchetypeTempo:
		return "Tempo"
	case ArchetypeTribal:
		return "Tribal"
	case ArchetypeStompy:
		return "Stompy"
	case ArchetypeArtifacts:
		return "Artifacts"
	default:
		return "None"
	}
}

// ParseArchetype parses an archetype label (case-insensitive).
func ParseArchetype(s string) (Archetype, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "aggro":
		return ArchetypeAggro, nil
	case "control":
		return ArchetypeControl, nil
	case "midrange":
		return ArchetypeMidrange, nil
	case "ramp":
		return ArchetypeRamp, nil
	case "tempo":
		return ArchetypeTempo, nil
	case "tribal":
		return ArchetypeTribal, nil
	case "stompy":
		return ArchetypeStompy, nil
	case "artifacts":
		return ArchetypeArtifacts, nil
	case "", "none":
		return ArchetypeNone, nil
	default:
		return 0, fmt.Errorf("unknown archetype %q", s)
	}
}

// Theme is a single target deck specification. Immutable once registered.
type Theme struct {
	Name      string
	Colors    card.ColorSet // size 1 (mono) or 2 (dual)
	Archetype Archetype

	// Keywords drive thematic scoring: matched against card tags and
	// subtypes. Lowercased at registration.
	Keywords []string

	// CoreCards is an explicit list of card names treated as definitional
	// for the theme. CoreTags is the predicate form: a card whose subtype
	// or tag set hits one of these is a core candidate.
	CoreCards []string
	CoreTags  []string

	// CoreReserve is the per-theme reservation cap K for the core phase.
	CoreReserve int

	// RuleWeights overrides scoring rule weights by rule name.
	RuleWeights map[string]float64

	keywordSet map[string]bool
	coreSet    map[string]bool
}

// IsMono reports whether the theme requires exactly one color.
func (t *Theme) IsMono() bool {
	return t.Colors.Size() == 1
}

// IsDual reports whether the theme requires exactly two colors.
func (t *Theme) IsDual() bool {
	return t.Colors.Size() == 2
}

// HasKeyword reports whether the theme declares the given keyword.
func (t *Theme) HasKeyword(kw string) bool {
	return t.keywordSet[kw]
}

// IsCoreCard reports whether the card name is in the explicit core list.
func (t *Theme) IsCoreCard(name string) bool {
	return t.coreSet[name]
}

func (t *Theme) validate() error {
	if t.Name == "" {
		return fmt.Errorf("theme with empty name")
	}
	if n := t.Colors.Size(); n != 1 && n != 2 {
		return fmt.Errorf("theme %q requires %d colors; must be 1 or 2", t.Name, n)
	}
	if t.CoreReserve < 0 {
		return fmt.Errorf("theme %q has negative core reserve", t.Name)
	}
	return nil
}

func (t *Theme) finalize() {
	t.keywordSet = make(map[string]bool, len(t.Keywords))
	for i, kw := range t.Keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		t.Keywords[i] = kw
		t.keywordSet[kw] = true
	}
	t.coreSet = make(map[string]bool, len(t.CoreCards))
	for _, name := range t.CoreCards {
		t.coreSet[name] = true
	}
	for i, tag := range t.CoreTags {
		t.CoreTags[i] = strings.ToLower(strings.TrimSpace(tag))
	}
}
