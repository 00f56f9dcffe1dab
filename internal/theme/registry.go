package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"jumpcube/internal/card"
)

// Registry is the ordered list of themes. Registration order is load order
// and is the documented tie-break order for contested cards: when two themes
// score a card identically, the earlier-registered theme wins.
type Registry struct {
	themes []*Theme
	byName map[string]*Theme
}

// NewRegistry builds a registry from the given themes, validating each and
// rejecting duplicate names.
func NewRegistry(themes []*Theme) (*Registry, error) {
	reg := &Registry{
		themes: make([]*Theme, 0, len(themes)),
		byName: make(map[string]*Theme, len(themes)),
	}
	for _, t := range themes {
		if err := t.validate(); err != nil {
			return nil, err
		}
		if _, dup := reg.byName[t.Name]; dup {
			return nil, fmt.Errorf("duplicate theme name %q", t.Name)
		}
		t.finalize()
		reg.themes = append(reg.themes, t)
		reg.byName[t.Name] = t
	}
	return reg, nil
}

// Themes returns all themes in registration order. Callers must not mutate
// the returned slice.
func (r *Registry) Themes() []*Theme {
	return r.themes
}

// Len returns the number of registered themes.
func (r *Registry) Len() int {
	return len(r.themes)
}

// Lookup returns the theme with the given name, or nil.
func (r *Registry) Lookup(name string) *Theme {
	return r.byName[name]
}

// DualThemes returns the dual-color themes in registration order.
func (r *Registry) DualThemes() []*Theme {
	var out []*Theme
	for _, t := range r.themes {
		if t.IsDual() {
			out = append(out, t)
		}
	}
	return out
}

// --- YAML loading ---

// RegistryFile is the top-level YAML structure for a themes file.
type RegistryFile struct {
	Themes []ThemeEntry `yaml:"themes"`
}

// ThemeEntry is a single theme in the YAML file.
type ThemeEntry struct {
	Name        string             `yaml:"name"`
	Colors      string             `yaml:"colors"` // compact form, e.g. "WU"
	Archetype   string             `yaml:"archetype"`
	Keywords    []string           `yaml:"keywords"`
	CoreCards   []string           `yaml:"core_cards"`
	CoreTags    []string           `yaml:"core_tags"`
	CoreReserve int                `yaml:"core_reserve"`
	RuleWeights map[string]float64 `yaml:"rule_weights"`
}

// LoadRegistry parses a YAML themes file into a registry.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseRegistry(data)
}

// ParseRegistry parses YAML themes data into a registry.
func ParseRegistry(data []byte) (*Registry, error) {
	var rf RegistryFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parse themes YAML: %w", err)
	}

	themes := make([]*Theme, 0, len(rf.Themes))
	for _, entry := range rf.Themes {
		t, err := entry.toTheme()
		if err != nil {
			return nil, fmt.Errorf("theme %q: %w", entry.Name, err)
		}
		themes = append(themes, t)
	}
	return NewRegistry(themes)
}

func (e ThemeEntry) toTheme() (*Theme, error) {
	colors, err := card.ParseColorSet(e.Colors)
	if err != nil {
		return nil, err
	}
	arch, err := ParseArchetype(e.Archetype)
	if err != nil {
		return nil, err
	}

	reserve := e.CoreReserve
	if reserve == 0 {
		reserve = DefaultCoreReserve
	}

	return &Theme{
		Name:        e.Name,
		Colors:      colors,
		Archetype:   arch,
		Keywords:    e.Keywords,
		CoreCards:   e.CoreCards,
		CoreTags:    e.CoreTags,
		CoreReserve: reserve,
		RuleWeights: e.RuleWeights,
	}, nil
}

// DefaultCoreReserve is the core reservation cap used when a theme does not
// declare one.
const DefaultCoreReserve = 3
