// Package abundance holds the cleaned (species × sample) matrix that
// every view consumes. All entities here are recomputed from the
// uploaded file on each render and never mutated in place.
package abundance

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
)

// UnknownSpecies is the sentinel substituted for a missing species label
const UnknownSpecies = "Unknown"

// Table is the cleaned abundance matrix. Rows align positionally with
// Species, columns with Samples. Values are never NaN; missing or
// unparseable cells have already been coerced to 0. Negative values
// pass through unclamped.
type Table struct {
	Species []string    `json:"species"`
	Samples []string    `json:"samples"`
	Matrix  [][]float64 `json:"matrix"` // [species][sample]
}

// SpeciesCount returns the number of species rows
func (t *Table) SpeciesCount() int {
	return len(t.Species)
}

// SampleCount returns the number of sample columns
func (t *Table) SampleCount() int {
	return len(t.Samples)
}

// SpeciesTotals returns total abundance per species (row sums)
func (t *Table) SpeciesTotals() []float64 {
	totals := make([]float64, len(t.Matrix))
	for i, row := range t.Matrix {
		totals[i] = floats.Sum(row)
	}
	return totals
}

// SampleTotals returns total abundance per sample (column sums)
func (t *Table) SampleTotals() []float64 {
	totals := make([]float64, len(t.Samples))
	for _, row := range t.Matrix {
		for j, v := range row {
			totals[j] += v
		}
	}
	return totals
}

// SampleColumn returns a copy of one sample's column
func (t *Table) SampleColumn(j int) []float64 {
	col := make([]float64, len(t.Matrix))
	for i, row := range t.Matrix {
		col[i] = row[j]
	}
	return col
}

// TotalReads returns the grand total across the whole matrix
func (t *Table) TotalReads() float64 {
	return floats.Sum(t.SampleTotals())
}

// Summary holds the headline metrics shown above the charts
type Summary struct {
	SpeciesCount       int     `json:"species_count"`
	SampleCount        int     `json:"sample_count"`
	TotalReads         float64 `json:"total_reads"`
	MeanReadsPerSample float64 `json:"mean_reads_per_sample"`
}

// Summarize computes the headline metrics for a table
func Summarize(t *Table) Summary {
	mean := 0.0
	if t.SampleCount() > 0 {
		mean, _ = stats.Mean(t.SampleTotals())
	}
	return Summary{
		SpeciesCount:       t.SpeciesCount(),
		SampleCount:        t.SampleCount(),
		TotalReads:         t.TotalReads(),
		MeanReadsPerSample: mean,
	}
}
