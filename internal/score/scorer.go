package score

import (
	"jumpcube/internal/card"
	"jumpcube/internal/theme"
)

// Default returns the standard rule set applied to every theme that has no
// archetype-specific configuration.
func Default() *Scorer {
	return New(
		KeywordMatchRule{},
		ManaCurveRule{},
		EfficiencyRule{},
		TypeAffinityRule{},
		ArtifactRule{},
		EquipmentCarrierRule{},
		CastingCostRule{},
		SynergyRule{},
		AntiSynergyRule{},
	)
}

// ForArchetype returns a scorer tuned for the given archetype: the default
// rules plus the specialist rules that matter for it, with adjusted weights.
func ForArchetype(a theme.Archetype) *Scorer {
	switch a {
	case theme.ArchetypeAggro, theme.ArchetypeTempo:
		s := New(
			KeywordMatchRule{},
			ManaCurveRule{},
			EfficiencyRule{},
			TypeAffinityRule{},
			StatEfficiencyRule{},
			SynergyRule{},
			AntiSynergyRule{},
		)
		s.SetWeight(RuleManaCurve, 1.5)
		return s

	case theme.ArchetypeTribal:
		s := New(
			KeywordMatchRule{},
			ManaCurveRule{},
			EfficiencyRule{},
			TypeAffinityRule{},
			TribalSynergyRule{},
			SynergyRule{},
			AntiSynergyRule{},
		)
		s.SetWeight(RuleTribalSynergy, 2.0)
		return s

	case theme.ArchetypeStompy:
		s := New(
			KeywordMatchRule{},
			ManaCurveRule{},
			EfficiencyRule{},
			TypeAffinityRule{},
			StatEfficiencyRule{},
			SynergyRule{},
			AntiSynergyRule{},
		)
		s.SetWeight(RuleStatEfficiency, 2.0)
		return s

	case theme.ArchetypeArtifacts:
		s := New(
			KeywordMatchRule{},
			ManaCurveRule{},
			EfficiencyRule{},
			TypeAffinityRule{},
			ArtifactRule{},
			EquipmentCarrierRule{},
			SynergyRule{},
			AntiSynergyRule{},
		)
		s.SetWeight(RuleArtifact, 1.5)
		s.SetWeight(RuleEquipmentCarrier, 1.3)
		return s

	default:
		return Default()
	}
}

// ForTheme returns the scorer for a theme: its archetype's rule set with
// the theme's own rule_weights overrides applied on top.
func ForTheme(t *theme.Theme) *Scorer {
	s := ForArchetype(t.Archetype)
	if len(t.RuleWeights) > 0 {
		s.ApplyWeights(t.RuleWeights)
	}
	return s
}

// Core-affinity point values. Explicit core listings dominate, exact
// subtype matches beat tag matches, partial matches trail far behind.
const (
	coreExplicitPoints = 10.0
	coreSubtypePoints  = 6.0
	coreTagPoints      = 5.0
	corePartialPoints  = 2.0
)

// CoreAffinity scores a card against a theme's core-item rule. Zero means
// the card is not a core candidate for the theme.
func CoreAffinity(c *card.Card, t *theme.Theme) float64 {
	if t.IsCoreCard(c.Name) {
		return coreExplicitPoints
	}
	score := 0.0
	for _, tag := range t.CoreTags {
		switch {
		case c.HasSubtype(tag):
			score += coreSubtypePoints
		case c.HasTag(tag):
			score += coreTagPoints
		case c.HasPartialTag(tag):
			score += corePartialPoints
		}
	}
	return score
}
