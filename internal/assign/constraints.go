// Package assign partitions a card catalog into themed decks through five
// sequential phases: core reservation, dual-color assignment, globally
// scored greedy assignment, quota completion, and constraint repair. The
// engine is a deterministic greedy heuristic: given identical inputs it
// produces identical results, element order included.
package assign

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConstraints is returned when a constraint set is internally
// inconsistent. This is fatal at construction time.
var ErrInvalidConstraints = errors.New("invalid constraints")

// ErrUniquenessViolation means the same card ended up in two decks. It
// signals an engine defect, never a data condition, and aborts the run.
var ErrUniquenessViolation = errors.New("card uniqueness violation")

// Constraints are the numeric limits a finished deck must satisfy.
type Constraints struct {
	TargetDeckSize int `yaml:"target_deck_size"`
	MinCreatures   int `yaml:"min_creatures"`
	MaxCreatures   int `yaml:"max_creatures"`
	MaxNonLand     int `yaml:"max_non_land"`
	MaxLandsMono   int `yaml:"max_lands_mono"`
	MaxLandsDual   int `yaml:"max_lands_dual"`
}

// DefaultConstraints returns the stock cube limits: 13-card decks with at
// most 9 creatures, 12 non-lands, one land in mono decks and three in duals.
func DefaultConstraints() Constraints {
	return Constraints{
		TargetDeckSize: 13,
		MinCreatures:   4,
		MaxCreatures:   9,
		MaxNonLand:     12,
		MaxLandsMono:   1,
		MaxLandsDual:   3,
	}
}

// Validate checks internal consistency. The required ordering is
// MinCreatures ≤ MaxCreatures ≤ MaxNonLand ≤ TargetDeckSize.
func (c Constraints) Validate() error {
	if c.TargetDeckSize <= 0 {
		return fmt.Errorf("%w: target deck size %d must be positive", ErrInvalidConstraints, c.TargetDeckSize)
	}
	if c.MinCreatures < 0 || c.MaxLandsMono < 0 || c.MaxLandsDual < 0 {
		return fmt.Errorf("%w: negative limit", ErrInvalidConstraints)
	}
	if c.MinCreatures > c.MaxCreatures {
		return fmt.Errorf("%w: min creatures %d > max creatures %d", ErrInvalidConstraints, c.MinCreatures, c.MaxCreatures)
	}
	if c.MaxCreatures > c.MaxNonLand {
		return fmt.Errorf("%w: max creatures %d > max non-land %d", ErrInvalidConstraints, c.MaxCreatures, c.MaxNonLand)
	}
	if c.MaxNonLand > c.TargetDeckSize {
		return fmt.Errorf("%w: max non-land %d > target deck size %d", ErrInvalidConstraints, c.MaxNonLand, c.TargetDeckSize)
	}
	return nil
}

// MaxLands returns the land cap for a mono or dual theme.
func (c Constraints) MaxLands(mono bool) int {
	if mono {
		return c.MaxLandsMono
	}
	return c.MaxLandsDual
}

// LoadConstraints parses a YAML constraints file and validates it.
func LoadConstraints(path string) (Constraints, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Constraints{}, err
	}
	return ParseConstraints(data)
}

// ParseConstraints parses YAML constraints data and validates it.
func ParseConstraints(data []byte) (Constraints, error) {
	c := DefaultConstraints()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Constraints{}, fmt.Errorf("parse constraints YAML: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Constraints{}, err
	}
	return c, nil
}
