package classify

import (
	"strings"

	"mitoviz/domain/table"
)

// SampleColumnRule is one detection strategy for sample-abundance
// columns. Rules run in registration order; the first rule that
// returns a non-empty selection wins.
type SampleColumnRule interface {
	Name() string
	Description() string
	Select(t *table.RawTable) []int
}

// FastqNameRule selects every column whose name contains the
// case-insensitive substring "fastq". Pipeline output names the
// per-sample read files, so this is the strongest signal available.
type FastqNameRule struct{}

// NewFastqNameRule creates the fastq filename rule
func NewFastqNameRule() *FastqNameRule {
	return &FastqNameRule{}
}

// Name returns the rule name
func (r *FastqNameRule) Name() string {
	return "fastq_name"
}

// Description returns a human-readable description
func (r *FastqNameRule) Description() string {
	return "Columns named after per-sample .fastq read files"
}

// Select returns the indices of all fastq-named columns
func (r *FastqNameRule) Select(t *table.RawTable) []int {
	var selected []int
	for i, col := range t.Columns {
		if strings.Contains(strings.ToLower(col.Name), "fastq") {
			selected = append(selected, i)
		}
	}
	return selected
}

// reservedTokens are metadata column-name fragments that disqualify a
// numeric column from being a sample column
var reservedTokens = []string{"Identity", "Max", "Positive", "TaxonID"}

// NumericColumnRule selects numeric-typed columns, excluding any whose
// name contains a reserved metadata token (case-insensitive).
type NumericColumnRule struct{}

// NewNumericColumnRule creates the numeric fallback rule
func NewNumericColumnRule() *NumericColumnRule {
	return &NumericColumnRule{}
}

// Name returns the rule name
func (r *NumericColumnRule) Name() string {
	return "numeric_non_metadata"
}

// Description returns a human-readable description
func (r *NumericColumnRule) Description() string {
	return "Numeric columns minus known metadata columns"
}

// Select returns the indices of numeric, non-metadata columns
func (r *NumericColumnRule) Select(t *table.RawTable) []int {
	var selected []int
	for i, col := range t.Columns {
		if !col.IsNumeric() {
			continue
		}
		if isReservedName(col.Name) {
			continue
		}
		selected = append(selected, i)
	}
	return selected
}

func isReservedName(name string) bool {
	lower := strings.ToLower(name)
	for _, token := range reservedTokens {
		if strings.Contains(lower, strings.ToLower(token)) {
			return true
		}
	}
	return false
}
