package mcp

import (
	"encoding/json"
	"fmt"

	"jumpcube/internal/assign"
	"jumpcube/internal/card"
	buildlog "jumpcube/internal/log"
	"jumpcube/internal/theme"
)

// BuildSession holds the inputs and outputs of one deck build. The
// engine is deterministic, so the session is immutable once built and
// every tool handler reads from it without locking.
type BuildSession struct {
	catalog  *card.Catalog
	registry *theme.Registry
	result   *assign.Result
	logger   *buildlog.MemoryLogger
}

// NewBuildSession loads the configured inputs and runs a full build.
// An empty themes path falls back to the stock registry; an empty
// constraints path uses the defaults.
func NewBuildSession(cardsPath, themesPath, constraintsPath string) (*BuildSession, error) {
	if cardsPath == "" {
		return nil, fmt.Errorf("no cards file configured")
	}
	catalog, err := card.LoadCatalog(cardsPath)
	if err != nil {
		return nil, fmt.Errorf("load cards: %w", err)
	}

	registry := theme.DefaultRegistry()
	if themesPath != "" {
		registry, err = theme.LoadRegistry(themesPath)
		if err != nil {
			return nil, fmt.Errorf("load themes: %w", err)
		}
	}

	cons := assign.DefaultConstraints()
	if constraintsPath != "" {
		cons, err = assign.LoadConstraints(constraintsPath)
		if err != nil {
			return nil, fmt.Errorf("load constraints: %w", err)
		}
	}

	logger := buildlog.NewMemoryLogger()
	builder, err := assign.NewBuilder(assign.Config{
		Catalog:     catalog,
		Registry:    registry,
		Constraints: cons,
		Logger:      logger,
	})
	if err != nil {
		return nil, err
	}
	result, err := builder.Run()
	if err != nil {
		return nil, err
	}

	return &BuildSession{
		catalog:  catalog,
		registry: registry,
		result:   result,
		logger:   logger,
	}, nil
}

// BuildSummary is the JSON envelope returned by build_decks.
type BuildSummary struct {
	RunID         string   `json:"run_id"`
	Decks         int      `json:"decks"`
	PoolSize      int      `json:"pool_size"`
	TotalAssigned int      `json:"total_assigned"`
	LeftoverCount int      `json:"leftover_count"`
	Incomplete    []string `json:"incomplete,omitempty"`
	Unresolved    []string `json:"unresolved,omitempty"`
}

func (s *BuildSession) summary() *BuildSummary {
	sum := &BuildSummary{
		RunID:         s.result.RunID,
		Decks:         len(s.result.Decks),
		PoolSize:      s.catalog.Len(),
		TotalAssigned: s.result.TotalAssigned,
		LeftoverCount: len(s.result.Leftover),
	}
	for _, d := range s.result.Decks {
		if !d.Complete() {
			sum.Incomplete = append(sum.Incomplete, d.Theme)
		}
		if d.Unresolved {
			sum.Unresolved = append(sum.Unresolved, d.Theme)
		}
	}
	return sum
}

// ThemeView is the JSON form of a theme returned by list_themes.
type ThemeView struct {
	Name        string   `json:"name"`
	Colors      string   `json:"colors"`
	Archetype   string   `json:"archetype"`
	Keywords    []string `json:"keywords,omitempty"`
	CoreReserve int      `json:"core_reserve"`
}

// themeRegistry returns the registry of the current build, or the one
// the next build would use, so list_themes works before build_decks.
func themeRegistry() *theme.Registry {
	if activeBuild != nil {
		return activeBuild.registry
	}
	if themesFile != "" {
		if reg, err := theme.LoadRegistry(themesFile); err == nil {
			return reg
		}
	}
	return theme.DefaultRegistry()
}

func respondJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
