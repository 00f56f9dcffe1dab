// Package score evaluates (card, theme) affinity as a sum of independent
// weighted rules. Each rule is pure: it reads the card's precomputed tag and
// type classification and the theme's declared keywords, never raw card text.
package score

import (
	"fmt"
	"sort"
	"strings"

	"jumpcube/internal/card"
	"jumpcube/internal/theme"
)

// Rule is a single scoring rule. Score is only consulted when Applies
// returns true; contributions may be negative (penalties).
type Rule interface {
	Name() string
	Applies(c *card.Card, t *theme.Theme) bool
	Score(c *card.Card, t *theme.Theme) float64
}

type weightedRule struct {
	rule   Rule
	weight float64
}

// Scorer composes an ordered list of weighted rules.
type Scorer struct {
	rules []weightedRule
}

// New builds a scorer over the given rules, each at weight 1.0.
func New(rules ...Rule) *Scorer {
	s := &Scorer{rules: make([]weightedRule, 0, len(rules))}
	for _, r := range rules {
		s.rules = append(s.rules, weightedRule{rule: r, weight: 1.0})
	}
	return s
}

// SetWeight sets the weight for the named rule. Returns false if the scorer
// has no rule with that name.
func (s *Scorer) SetWeight(name string, weight float64) bool {
	for i := range s.rules {
		if s.rules[i].rule.Name() == name {
			s.rules[i].weight = weight
			return true
		}
	}
	return false
}

// ApplyWeights applies a name→weight override map (a theme's RuleWeights).
// Unknown names are ignored; map order does not matter since each entry
// touches a distinct rule.
func (s *Scorer) ApplyWeights(weights map[string]float64) {
	for name, w := range weights {
		s.SetWeight(name, w)
	}
}

// RuleNames returns the active rule names in evaluation order.
func (s *Scorer) RuleNames() []string {
	names := make([]string, len(s.rules))
	for i, wr := range s.rules {
		names[i] = wr.rule.Name()
	}
	return names
}

// Score computes the total weighted score for a (card, theme) pair.
func (s *Scorer) Score(c *card.Card, t *theme.Theme) float64 {
	total := 0.0
	for _, wr := range s.rules {
		if wr.rule.Applies(c, t) {
			total += wr.rule.Score(c, t) * wr.weight
		}
	}
	return total
}

// Contribution is one rule's weighted share of a score.
type Contribution struct {
	Rule   string
	Points float64
}

// Breakdown is a per-rule decomposition of a score. Contributions preserve
// rule evaluation order.
type Breakdown struct {
	Total         float64
	Contributions []Contribution
}

func (b Breakdown) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "total %.2f", b.Total)
	for _, c := range b.Contributions {
		fmt.Fprintf(&sb, "\n  %s: %+.2f", c.Rule, c.Points)
	}
	return sb.String()
}

// Breakdown computes the score together with per-rule contributions.
// Rules contributing zero are omitted.
func (s *Scorer) Breakdown(c *card.Card, t *theme.Theme) Breakdown {
	var b Breakdown
	for _, wr := range s.rules {
		if !wr.rule.Applies(c, t) {
			continue
		}
		pts := wr.rule.Score(c, t) * wr.weight
		if pts == 0 {
			continue
		}
		b.Contributions = append(b.Contributions, Contribution{Rule: wr.rule.Name(), Points: pts})
		b.Total += pts
	}
	return b
}

// MeanScore computes the mean score of the given cards for a theme.
// Returns 0 for an empty list.
func MeanScore(s *Scorer, cards []*card.Card, t *theme.Theme) float64 {
	if len(cards) == 0 {
		return 0
	}
	total := 0.0
	for _, c := range cards {
		total += s.Score(c, t)
	}
	return total / float64(len(cards))
}

// SortContributions orders contributions by descending points, breaking
// ties by rule name. Used by reporting, never by the engine itself.
func SortContributions(cs []Contribution) {
	sort.SliceStable(cs, func(i, j int) bool {
		if cs[i].Points != cs[j].Points {
			return cs[i].Points > cs[j].Points
		}
		return cs[i].Rule < cs[j].Rule
	})
}
