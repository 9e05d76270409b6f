// Package matrix extracts the cleaned (species × sample) abundance
// matrix from a classified raw table. Every coercion degrades to a
// default instead of failing: the builder never returns an error.
package matrix

import (
	"fmt"
	"strings"

	"mitoviz/domain/abundance"
	"mitoviz/domain/table"
	"mitoviz/internal/classify"
)

// Builder turns classified raw tables into abundance tables
type Builder struct {
	normalizer NameNormalizer
}

// NewBuilder creates a builder with the default fastq-site normalizer
func NewBuilder() *Builder {
	return &Builder{normalizer: NewFastqSiteNormalizer()}
}

// NewBuilderWithNormalizer creates a builder with a custom sample-name
// normalization strategy
func NewBuilderWithNormalizer(normalizer NameNormalizer) *Builder {
	return &Builder{normalizer: normalizer}
}

// Build produces the abundance table for a classification result
func (b *Builder) Build(t *table.RawTable, cls classify.Classification) *abundance.Table {
	rows := t.RowCount()

	species := b.speciesLabels(t.Columns[cls.SpeciesColumn], rows)
	samples := b.sampleNames(t, cls.SampleColumns)

	m := make([][]float64, rows)
	for i := range m {
		row := make([]float64, len(cls.SampleColumns))
		for j, colIdx := range cls.SampleColumns {
			row[j] = numericCell(t.Columns[colIdx], i)
		}
		m[i] = row
	}

	return &abundance.Table{
		Species: species,
		Samples: samples,
		Matrix:  m,
	}
}

// speciesLabels coerces the species column to text, substituting the
// Unknown sentinel for empty or missing cells
func (b *Builder) speciesLabels(col table.Column, rows int) []string {
	labels := make([]string, rows)
	for i := range labels {
		labels[i] = abundance.UnknownSpecies
		if i >= len(col.Cells) {
			continue
		}
		cell := col.Cells[i]
		if cell.Missing || strings.TrimSpace(cell.Raw) == "" {
			continue
		}
		labels[i] = cell.Raw
	}
	return labels
}

// sampleNames normalizes raw column names and deduplicates the result
// by appending _2, _3, ... at the first free counter
func (b *Builder) sampleNames(t *table.RawTable, sampleCols []int) []string {
	names := make([]string, 0, len(sampleCols))
	seen := make(map[string]bool, len(sampleCols))

	for _, colIdx := range sampleCols {
		name := b.normalizer.Normalize(t.Columns[colIdx].Name)

		base := name
		for counter := 2; seen[name]; counter++ {
			name = fmt.Sprintf("%s_%d", base, counter)
		}

		seen[name] = true
		names = append(names, name)
	}
	return names
}

// numericCell reads one abundance value; missing or non-numeric cells
// coerce to 0, negative values pass through unclamped
func numericCell(col table.Column, row int) float64 {
	if row >= len(col.Cells) {
		return 0
	}
	cell := col.Cells[row]
	if cell.Missing || !cell.Numeric {
		return 0
	}
	return cell.Number
}
