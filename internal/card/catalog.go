package card

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog is the normalized, ordered view of the card pool. Order is load
// order and is the stable "catalog order" used by assignment tie-breaks.
type Catalog struct {
	cards  []*Card
	byName map[string]*Card
}

// NewCatalog builds a catalog from the given cards. Duplicate names are
// rejected since the name is the unique identifier.
func NewCatalog(cards []*Card) (*Catalog, error) {
	cat := &Catalog{
		cards:  make([]*Card, 0, len(cards)),
		byName: make(map[string]*Card, len(cards)),
	}
	for _, c := range cards {
		if c.Name == "" {
			return nil, fmt.Errorf("card with empty name at position %d", len(cat.cards))
		}
		if _, dup := cat.byName[c.Name]; dup {
			return nil, fmt.Errorf("duplicate card name %q", c.Name)
		}
		c.finalize()
		cat.cards = append(cat.cards, c)
		cat.byName[c.Name] = c
	}
	return cat, nil
}

// Cards returns the full card list in catalog order. Callers must not
// mutate the returned slice.
func (cat *Catalog) Cards() []*Card {
	return cat.cards
}

// Len returns the number of cards in the catalog.
func (cat *Catalog) Len() int {
	return len(cat.cards)
}

// Lookup returns the card with the given name, or nil.
func (cat *Catalog) Lookup(name string) *Card {
	return cat.byName[name]
}

// Index returns the catalog position of the given name, or -1.
func (cat *Catalog) Index(name string) int {
	for i, c := range cat.cards {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// --- YAML loading ---

// CatalogFile is the top-level YAML structure for a card pool file.
type CatalogFile struct {
	Cards []CardEntry `yaml:"cards"`
}

// CardEntry is a single card in the YAML file.
type CardEntry struct {
	Name      string   `yaml:"name"`
	Colors    string   `yaml:"colors"` // compact form, e.g. "WU"; empty = colorless
	ManaValue int      `yaml:"mana_value"`
	Power     int      `yaml:"power"`
	Toughness int      `yaml:"toughness"`
	Types     []string `yaml:"types"` // land, creature, artifact, instant, sorcery
	Produces  string   `yaml:"produces"`
	Subtypes  []string `yaml:"subtypes"`
	Tags      []string `yaml:"tags"`
}

// LoadCatalog parses a YAML card pool file into a catalog.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCatalog(data)
}

// ParseCatalog parses YAML card pool data into a catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var cf CatalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse catalog YAML: %w", err)
	}

	cards := make([]*Card, 0, len(cf.Cards))
	for _, entry := range cf.Cards {
		c, err := entry.toCard()
		if err != nil {
			return nil, fmt.Errorf("card %q: %w", entry.Name, err)
		}
		cards = append(cards, c)
	}
	return NewCatalog(cards)
}

func (e CardEntry) toCard() (*Card, error) {
	colors, err := ParseColorSet(e.Colors)
	if err != nil {
		return nil, err
	}
	produces, err := ParseColorSet(e.Produces)
	if err != nil {
		return nil, err
	}

	c := &Card{
		Name:      e.Name,
		Colors:    colors,
		ManaValue: e.ManaValue,
		Power:     e.Power,
		Toughness: e.Toughness,
		Produces:  produces,
		Subtypes:  e.Subtypes,
		Tags:      e.Tags,
	}
	for _, t := range e.Types {
		switch t {
		case "land":
			c.Land = true
		case "creature":
			c.Creature = true
		case "artifact":
			c.Artifact = true
		case "instant", "sorcery":
			c.InstantSorcery = true
		case "enchantment":
			// no dedicated flag; enchantments score through tags only
		default:
			return nil, fmt.Errorf("unknown card type %q", t)
		}
	}
	return c, nil
}
