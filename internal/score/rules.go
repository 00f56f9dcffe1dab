package score

import (
	"jumpcube/internal/card"
	"jumpcube/internal/theme"
)

// Rule names, also the keys accepted in a theme's rule_weights map.
const (
	RuleKeywordMatch     = "keyword-match"
	RuleManaCurve        = "mana-curve"
	RuleEfficiency       = "efficiency"
	RuleTypeAffinity     = "type-affinity"
	RuleArtifact         = "artifact-equipment"
	RuleEquipmentCarrier = "equipment-carrier"
	RuleTribalSynergy    = "tribal-synergy"
	RuleStatEfficiency   = "stat-efficiency"
	RuleCastingCost      = "casting-cost"
	RuleSynergy          = "synergy"
	RuleAntiSynergy      = "anti-synergy"
)

// --- KeywordMatchRule ---

// KeywordMatchRule is the base thematic signal: theme keywords matched
// against the card's tag and subtype sets. Exact matches score 1.0,
// substring matches 0.5.
type KeywordMatchRule struct{}

func (KeywordMatchRule) Name() string                              { return RuleKeywordMatch }
func (KeywordMatchRule) Applies(c *card.Card, t *theme.Theme) bool { return true }

func (KeywordMatchRule) Score(c *card.Card, t *theme.Theme) float64 {
	score := 0.0
	for _, kw := range t.Keywords {
		switch {
		case c.HasTag(kw) || c.HasSubtype(kw):
			score += 1.0
		case c.HasPartialTag(kw):
			score += 0.5
		}
	}
	return score
}

// --- ManaCurveRule ---

// ManaCurveRule applies archetype-specific mana-value preferences: aggro
// wants a low curve, control tolerates a high one, midrange peaks at 2-4.
type ManaCurveRule struct{}

func (ManaCurveRule) Name() string { return RuleManaCurve }

func (ManaCurveRule) Applies(c *card.Card, t *theme.Theme) bool {
	if c.IsLand() {
		return false
	}
	switch t.Archetype {
	case theme.ArchetypeAggro, theme.ArchetypeControl, theme.ArchetypeMidrange,
		theme.ArchetypeRamp, theme.ArchetypeTempo, theme.ArchetypeStompy:
		return true
	}
	return false
}

func (ManaCurveRule) Score(c *card.Card, t *theme.Theme) float64 {
	mv := c.ManaValue
	switch t.Archetype {
	case theme.ArchetypeAggro, theme.ArchetypeTempo:
		switch {
		case mv == 1:
			return 2.0
		case mv == 2:
			return 1.0
		case mv >= 4:
			return -1.0
		}
	case theme.ArchetypeControl:
		switch {
		case mv >= 4:
			return 0.5
		case mv == 1:
			return -0.5
		}
	case theme.ArchetypeMidrange:
		switch {
		case mv >= 2 && mv <= 4:
			return 1.0
		case mv == 1:
			return -0.5
		case mv >= 5:
			return -1.0
		}
	case theme.ArchetypeRamp, theme.ArchetypeStompy:
		switch {
		case mv >= 5:
			return 1.0
		case mv <= 1 && !c.HasTag("mana"):
			return -0.5
		}
	}
	return 0.0
}

// --- EfficiencyRule ---

// EfficiencyRule rewards cheap or rate-efficient cards in themes that ask
// for them ("cheap", "efficient", "small" keywords).
type EfficiencyRule struct{}

func (EfficiencyRule) Name() string { return RuleEfficiency }

func (EfficiencyRule) Applies(c *card.Card, t *theme.Theme) bool {
	return t.HasKeyword("cheap") || t.HasKeyword("efficient") || t.HasKeyword("small")
}

func (EfficiencyRule) Score(c *card.Card, t *theme.Theme) float64 {
	if c.IsLand() {
		return 0.0
	}
	score := 0.0
	if t.HasKeyword("cheap") && c.ManaValue <= 2 {
		score += 1.0
	}
	if t.HasKeyword("efficient") && c.IsCreature() && c.Power > 0 && c.ManaValue > 0 {
		if c.Power >= c.ManaValue {
			score += 1.0
		} else if c.Power >= c.ManaValue-1 {
			score += 0.5
		}
	}
	if t.HasKeyword("small") && c.IsCreature() && c.Power <= 2 {
		score += 0.5
	}
	return score
}

// --- TypeAffinityRule ---

// TypeAffinityRule gives small bonuses when a card's structural type lines
// up with the theme's declared focus.
type TypeAffinityRule struct{}

func (TypeAffinityRule) Name() string                              { return RuleTypeAffinity }
func (TypeAffinityRule) Applies(c *card.Card, t *theme.Theme) bool { return true }

func (TypeAffinityRule) Score(c *card.Card, t *theme.Theme) float64 {
	score := 0.0
	if c.IsCreature() {
		if t.HasKeyword("creature") || t.HasKeyword("tribal") || t.HasKeyword("aggressive") {
			score += 0.3
		}
	}
	if c.IsInstantOrSorcery() {
		for _, kw := range [...]string{"instant", "sorcery", "spells", "burn", "counter"} {
			if t.HasKeyword(kw) {
				score += 0.3
				break
			}
		}
	}
	return score
}

// --- ArtifactRule ---

// ArtifactRule scores artifacts and equipment for artifact-minded themes.
type ArtifactRule struct{}

func (ArtifactRule) Name() string { return RuleArtifact }

func (ArtifactRule) Applies(c *card.Card, t *theme.Theme) bool {
	return c.IsArtifact()
}

func (ArtifactRule) Score(c *card.Card, t *theme.Theme) float64 {
	score := 0.0
	if t.HasKeyword("artifact") || t.HasKeyword("equipment") || t.HasKeyword("metalcraft") {
		score += 0.5
	}
	if c.HasSubtype("equipment") {
		score += 2.0
		if c.HasTag("living weapon") {
			score += 1.0
		}
	}
	return score
}

// --- EquipmentCarrierRule ---

// EquipmentCarrierRule evaluates creatures as equipment carriers in
// equipment themes: evasion and combat keywords up, non-attackers down.
type EquipmentCarrierRule struct{}

func (EquipmentCarrierRule) Name() string { return RuleEquipmentCarrier }

func (EquipmentCarrierRule) Applies(c *card.Card, t *theme.Theme) bool {
	return t.HasKeyword("equipment") && c.IsCreature()
}

func (EquipmentCarrierRule) Score(c *card.Card, t *theme.Theme) float64 {
	score := 0.0
	for _, kw := range [...]string{"flying", "shadow", "unblockable", "menace", "trample"} {
		if c.HasTag(kw) {
			score += 1.0
			break
		}
	}
	for _, kw := range [...]string{"first strike", "double strike", "vigilance", "lifelink"} {
		if c.HasTag(kw) {
			score += 0.5
			break
		}
	}
	if c.Power > 0 && c.Toughness > 0 && c.Toughness <= 3 {
		score += 0.5
	}
	if c.Power == 0 || c.HasTag("defender") {
		score -= 1.0
	}
	return score
}

// --- TribalSynergyRule ---

// tribalTypes are the creature types recognized as tribal markers.
var tribalTypes = [...]string{
	"soldier", "elf", "goblin", "zombie", "human", "wizard", "knight",
	"merfolk", "vampire", "angel", "dragon", "beast",
}

// TribalSynergyRule rewards cards that belong to, or pay off, the theme's
// tribe.
type TribalSynergyRule struct{}

func (TribalSynergyRule) Name() string { return RuleTribalSynergy }

func (TribalSynergyRule) Applies(c *card.Card, t *theme.Theme) bool {
	if !t.HasKeyword("tribal") {
		// Themes can also be tribal implicitly by naming a type.
		for _, tt := range tribalTypes {
			if t.HasKeyword(tt) {
				return true
			}
		}
		return false
	}
	return true
}

func (TribalSynergyRule) Score(c *card.Card, t *theme.Theme) float64 {
	score := 0.0
	for _, kw := range [...]string{"lord", "anthem", "pump"} {
		if c.HasTag(kw) {
			score += 0.5
		}
	}
	for _, tt := range tribalTypes {
		if t.HasKeyword(tt) && (c.HasSubtype(tt) || c.HasTag(tt)) {
			score += 1.0
		}
	}
	return score
}

// --- StatEfficiencyRule ---

// StatEfficiencyRule scores creature stats against mana value. A good
// creature carries power+toughness of at least twice its cost.
type StatEfficiencyRule struct{}

func (StatEfficiencyRule) Name() string { return RuleStatEfficiency }

func (StatEfficiencyRule) Applies(c *card.Card, t *theme.Theme) bool {
	return c.IsCreature() && c.Power > 0 && c.Toughness > 0 && c.ManaValue > 0
}

func (StatEfficiencyRule) Score(c *card.Card, t *theme.Theme) float64 {
	stats := c.Power + c.Toughness
	mv := c.ManaValue
	switch {
	case stats >= 2*mv+1:
		return 1.0
	case stats >= 2*mv:
		return 0.5
	case stats >= 2*mv-1:
		return 0.0
	default:
		return -0.5
	}
}

// --- CastingCostRule ---

// CastingCostRule penalizes very expensive cards in mono-color themes,
// which are meant to curve out rather than ramp.
type CastingCostRule struct{}

func (CastingCostRule) Name() string { return RuleCastingCost }

func (CastingCostRule) Applies(c *card.Card, t *theme.Theme) bool {
	return !c.IsLand()
}

func (CastingCostRule) Score(c *card.Card, t *theme.Theme) float64 {
	if t.IsMono() && c.ManaValue >= 6 && t.Archetype != theme.ArchetypeRamp {
		return -0.5
	}
	return 0.0
}

// --- SynergyRule ---

// SynergyRule adds a cluster bonus when a card hits several theme keywords
// at once: one matching tag is incidental, three are a package.
type SynergyRule struct{}

func (SynergyRule) Name() string                              { return RuleSynergy }
func (SynergyRule) Applies(c *card.Card, t *theme.Theme) bool { return true }

func (SynergyRule) Score(c *card.Card, t *theme.Theme) float64 {
	hits := 0
	for _, kw := range t.Keywords {
		if c.HasTag(kw) || c.HasSubtype(kw) {
			hits++
		}
	}
	switch {
	case hits >= 3:
		return 1.5
	case hits == 2:
		return 0.5
	default:
		return 0.0
	}
}

// --- AntiSynergyRule ---

// offStrategy maps an archetype to tags that actively fight its plan.
var offStrategy = map[theme.Archetype][]string{
	theme.ArchetypeAggro:   {"defender", "expensive", "lifegain"},
	theme.ArchetypeTempo:   {"defender", "expensive"},
	theme.ArchetypeStompy:  {"counter", "mill"},
	theme.ArchetypeControl: {"haste", "aggressive"},
}

// AntiSynergyRule penalizes cards whose tags fight the theme's archetype.
type AntiSynergyRule struct{}

func (AntiSynergyRule) Name() string { return RuleAntiSynergy }

func (AntiSynergyRule) Applies(c *card.Card, t *theme.Theme) bool {
	_, ok := offStrategy[t.Archetype]
	return ok
}

func (AntiSynergyRule) Score(c *card.Card, t *theme.Theme) float64 {
	score := 0.0
	for _, tag := range offStrategy[t.Archetype] {
		if c.HasTag(tag) {
			score -= 1.0
		}
	}
	return score
}
