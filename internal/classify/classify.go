// Package classify decides which columns of a raw results table hold
// per-sample abundance counts and which column holds species labels.
// Detection is an ordered rule list so precedence stays auditable;
// see rules.go for the individual strategies.
package classify

import (
	"mitoviz/domain/table"
	"mitoviz/internal/errors"
)

// speciesColumnPriority is checked in order with case-sensitive exact
// matching. The CJK entries cover the pipeline's Japanese and Chinese
// output variants.
var speciesColumnPriority = []string{"Species", "species", "SPECIES", "种名", "種名"}

// Classification is the result of classifying a raw table
type Classification struct {
	SpeciesColumn int   // index of the species-label column
	SampleColumns []int // ordered indices of sample-abundance columns
	RuleApplied   string
}

// Classifier runs the sample-column rule chain over a raw table.
// It is a pure function holder; no state survives a call.
type Classifier struct {
	rules []SampleColumnRule
}

// NewClassifier creates a classifier with the default rule chain
func NewClassifier() *Classifier {
	return &Classifier{
		rules: []SampleColumnRule{
			NewFastqNameRule(),
			NewNumericColumnRule(),
		},
	}
}

// ListRules returns the registered rule names in precedence order
func (c *Classifier) ListRules() []string {
	names := make([]string, len(c.rules))
	for i, rule := range c.rules {
		names[i] = rule.Name()
	}
	return names
}

// Classify returns the species column and sample columns for a table,
// or a no-sample-columns error when every rule comes up empty.
func (c *Classifier) Classify(t *table.RawTable) (Classification, error) {
	for _, rule := range c.rules {
		if selected := rule.Select(t); len(selected) > 0 {
			return Classification{
				SpeciesColumn: c.speciesColumn(t),
				SampleColumns: selected,
				RuleApplied:   rule.Name(),
			}, nil
		}
	}
	return Classification{}, errors.NoSampleColumns()
}

// speciesColumn picks the species-label column: first priority-name
// match, otherwise the second column (or the first for a one-column
// table).
func (c *Classifier) speciesColumn(t *table.RawTable) int {
	for _, name := range speciesColumnPriority {
		if idx := t.ColumnIndex(name); idx >= 0 {
			return idx
		}
	}
	if len(t.Columns) > 1 {
		return 1
	}
	return 0
}
