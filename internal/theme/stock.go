package theme

import "jumpcube/internal/card"

// DefaultRegistry returns the stock cube configuration: four mono themes per
// color plus the ten two-color guild themes. Registration order here fixes
// the contested-card tie-break order.
func DefaultRegistry() *Registry {
	reg, err := NewRegistry(stockThemes())
	if err != nil {
		// The stock table is static; a validation failure is a programming error.
		panic(err)
	}
	return reg
}

func stockThemes() []*Theme {
	w := card.NewColorSet(card.White)
	u := card.NewColorSet(card.Blue)
	b := card.NewColorSet(card.Black)
	r := card.NewColorSet(card.Red)
	g := card.NewColorSet(card.Green)

	return []*Theme{
		// White
		{
			Name: "White Soldiers", Colors: w, Archetype: ArchetypeAggro,
			Keywords: []string{"soldier", "tribal", "anthem", "pump", "attack", "vigilance", "first strike"},
			CoreTags: []string{"soldier"}, CoreReserve: 3,
		},
		{
			Name: "White Equipment", Colors: w, Archetype: ArchetypeMidrange,
			Keywords: []string{"equipment", "attach", "equipped", "equip", "metalcraft", "artifact", "sword", "blade", "living weapon", "armor"},
			CoreTags: []string{"equipment"}, CoreReserve: 3,
		},
		{
			Name: "White Angels", Colors: w, Archetype: ArchetypeControl,
			Keywords: []string{"angel", "flying", "vigilance", "lifelink", "protection", "expensive"},
			CoreTags: []string{"angel"}, CoreReserve: 3,
		},
		{
			Name: "White Weenies", Colors: w, Archetype: ArchetypeAggro,
			Keywords: []string{"creature", "cheap", "aggressive", "attack", "first strike", "vigilance", "efficient", "small"},
			CoreTags: []string{"weenie"}, CoreReserve: 2,
		},

		// Blue
		{
			Name: "Blue Flying", Colors: u, Archetype: ArchetypeTempo,
			Keywords: []string{"flying", "bird", "drake", "spirit", "bounce", "counter", "draw"},
			CoreTags: []string{"bird", "drake", "spirit"}, CoreReserve: 3,
		},
		{
			Name: "Blue Wizards", Colors: u, Archetype: ArchetypeControl,
			Keywords: []string{"wizard", "instant", "sorcery", "prowess", "draw", "counter", "tribal"},
			CoreTags: []string{"wizard"}, CoreReserve: 3,
		},
		{
			Name: "Blue Card Draw", Colors: u, Archetype: ArchetypeControl,
			Keywords: []string{"draw", "card", "scry", "library", "hand", "cycling"},
			CoreTags: []string{"draw"}, CoreReserve: 3,
		},
		{
			Name: "Blue Merfolk", Colors: u, Archetype: ArchetypeAggro,
			Keywords: []string{"merfolk", "tribal", "islandwalk", "counter", "tap", "untap"},
			CoreTags: []string{"merfolk"}, CoreReserve: 3,
		},

		// Black
		{
			Name: "Black Zombies", Colors: b, Archetype: ArchetypeMidrange,
			Keywords: []string{"zombie", "tribal", "graveyard", "return", "sacrifice", "dies"},
			CoreTags: []string{"zombie"}, CoreReserve: 3,
		},
		{
			Name: "Black Graveyard", Colors: b, Archetype: ArchetypeControl,
			Keywords: []string{"graveyard", "return", "mill", "flashback", "unearth", "threshold"},
			CoreTags: []string{"graveyard"}, CoreReserve: 3,
		},
		{
			Name: "Black Sacrifice", Colors: b, Archetype: ArchetypeMidrange,
			Keywords: []string{"sacrifice", "dies", "death", "aristocrats", "token"},
			CoreTags: []string{"sacrifice"}, CoreReserve: 3,
		},
		{
			Name: "Black Vampires", Colors: b, Archetype: ArchetypeAggro,
			Keywords: []string{"vampire", "tribal", "lifelink", "counter", "drain", "aggressive"},
			CoreTags: []string{"vampire"}, CoreReserve: 3,
		},

		// Red
		{
			Name: "Red Goblins", Colors: r, Archetype: ArchetypeAggro,
			Keywords: []string{"goblin", "tribal", "haste", "sacrifice", "token", "aggressive"},
			CoreTags: []string{"goblin"}, CoreReserve: 3,
		},
		{
			Name: "Red Burn", Colors: r, Archetype: ArchetypeAggro,
			Keywords: []string{"damage", "burn", "lightning", "shock", "direct", "haste", "instant"},
			CoreTags: []string{"burn"}, CoreReserve: 3,
		},
		{
			Name: "Red Dragons", Colors: r, Archetype: ArchetypeRamp,
			Keywords: []string{"dragon", "flying", "expensive", "trample", "haste"},
			CoreTags: []string{"dragon"}, CoreReserve: 3,
		},
		{
			Name: "Red Artifacts", Colors: r, Archetype: ArchetypeArtifacts,
			Keywords: []string{"artifact", "improvise", "metalcraft", "construct", "servo", "energy", "equipment", "thopter"},
			CoreTags: []string{"construct", "thopter"}, CoreReserve: 3,
		},

		// Green
		{
			Name: "Green Elves", Colors: g, Archetype: ArchetypeTribal,
			Keywords: []string{"elf", "tribal", "mana", "tap", "forest", "token", "druid", "shaman", "lord"},
			CoreTags: []string{"elf"}, CoreReserve: 3,
		},
		{
			Name: "Green Ramp", Colors: g, Archetype: ArchetypeRamp,
			Keywords: []string{"mana", "land", "search", "expensive", "big", "ritual", "forest"},
			CoreTags: []string{"ramp"}, CoreReserve: 3,
		},
		{
			Name: "Green Stompy", Colors: g, Archetype: ArchetypeStompy,
			Keywords: []string{"trample", "pump", "overrun", "fight", "big", "large", "beast", "giant", "wurm", "elemental"},
			CoreTags: []string{"wurm", "giant"}, CoreReserve: 3,
		},
		{
			Name: "Green Beasts", Colors: g, Archetype: ArchetypeTribal,
			Keywords: []string{"beast", "tribal", "enters", "expensive", "bear", "wolf", "elephant", "rhino", "trample", "lord"},
			CoreTags: []string{"beast"}, CoreReserve: 3,
		},

		// Guilds
		{
			Name: "Azorius Control", Colors: w | u, Archetype: ArchetypeControl,
			Keywords: []string{"counter", "destroy", "exile", "draw", "instant", "sorcery", "board wipe"},
			CoreTags: []string{"counter", "board wipe"}, CoreReserve: 2,
		},
		{
			Name: "Dimir Mill", Colors: u | b, Archetype: ArchetypeControl,
			Keywords: []string{"mill", "graveyard", "library", "flashback", "threshold", "draw"},
			CoreTags: []string{"mill"}, CoreReserve: 2,
		},
		{
			Name: "Rakdos Aggro", Colors: b | r, Archetype: ArchetypeAggro,
			Keywords: []string{"haste", "damage", "aggressive", "sacrifice", "burn"},
			CoreTags: []string{"burn", "haste"}, CoreReserve: 2,
		},
		{
			Name: "Gruul Big Creatures", Colors: r | g, Archetype: ArchetypeMidrange,
			Keywords: []string{"haste", "trample", "big", "expensive", "ramp"},
			CoreTags: []string{"beast", "giant"}, CoreReserve: 2,
		},
		{
			Name: "Selesnya Tokens", Colors: g | w, Archetype: ArchetypeMidrange,
			Keywords: []string{"token", "create", "populate", "convoke", "anthem", "pump"},
			CoreTags: []string{"token"}, CoreReserve: 2,
		},
		{
			Name: "Orzhov Lifedrain", Colors: w | b, Archetype: ArchetypeMidrange,
			Keywords: []string{"lifegain", "drain", "life", "extort", "lifelink", "aristocrats"},
			CoreTags: []string{"lifelink", "drain"}, CoreReserve: 2,
		},
		{
			Name: "Izzet Spells Matter", Colors: u | r, Archetype: ArchetypeTempo,
			Keywords: []string{"instant", "sorcery", "prowess", "spells", "trigger", "burn"},
			CoreTags: []string{"prowess"}, CoreReserve: 2,
		},
		{
			Name: "Golgari Graveyard Value", Colors: b | g, Archetype: ArchetypeMidrange,
			Keywords: []string{"graveyard", "sacrifice", "return", "dredge", "undergrowth", "dies"},
			CoreTags: []string{"dredge", "graveyard"}, CoreReserve: 2,
		},
		{
			Name: "Boros Equipment Aggro", Colors: r | w, Archetype: ArchetypeAggro,
			Keywords: []string{"equipment", "haste", "first strike", "attack", "combat", "pump", "equip", "sword", "blade"},
			CoreTags: []string{"equipment"}, CoreReserve: 2,
		},
		{
			Name: "Simic Ramp Control", Colors: g | u, Archetype: ArchetypeRamp,
			Keywords: []string{"ramp", "mana", "draw", "expensive", "evolve", "counter", "adapt"},
			CoreTags: []string{"ramp", "evolve"}, CoreReserve: 2,
		},
	}
}
