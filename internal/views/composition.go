package views

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"mitoviz/domain/abundance"
	"mitoviz/domain/chart"
)

// OtherLabel names the synthetic bucket that absorbs species below the
// top-N cutoff. Kept distinct from any real species label.
const OtherLabel = "その他 (Other)"

// Axis labels for the two composition modes
const (
	yLabelPercentage = "relative abundance %"
	yLabelReads      = "read count"
)

// Composition builds the stacked-bar payload: species ranked by total
// abundance, optional top-N truncation into an Other bucket, optional
// per-sample percentage normalization, reshaped to long form.
func Composition(tbl *abundance.Table, opts Options) *chart.StackedBar {
	order := rankSpecies(tbl)

	species := make([]string, 0, len(order))
	m := make([][]float64, 0, len(order))

	if opts.TopN > 0 && opts.TopN < len(order) {
		for _, idx := range order[:opts.TopN] {
			species = append(species, tbl.Species[idx])
			m = append(m, append([]float64(nil), tbl.Matrix[idx]...))
		}
		// Fold everything below the cutoff into one synthetic row
		other := make([]float64, tbl.SampleCount())
		for _, idx := range order[opts.TopN:] {
			floats.Add(other, tbl.Matrix[idx])
		}
		species = append(species, OtherLabel)
		m = append(m, other)
	} else {
		for _, idx := range order {
			species = append(species, tbl.Species[idx])
			m = append(m, append([]float64(nil), tbl.Matrix[idx]...))
		}
	}

	yLabel := yLabelReads
	if opts.ShowPercentage {
		normalizeColumns(m)
		yLabel = yLabelPercentage
	}

	// Long form, species-major: one record per (sample, species) pair
	records := make([]chart.BarRecord, 0, len(species)*tbl.SampleCount())
	for i, sp := range species {
		for j, sample := range tbl.Samples {
			records = append(records, chart.BarRecord{
				Sample:    sample,
				Species:   sp,
				Abundance: m[i][j],
			})
		}
	}

	return &chart.StackedBar{
		Records:    records,
		Samples:    append([]string(nil), tbl.Samples...),
		Species:    species,
		YAxisLabel: yLabel,
		Percentage: opts.ShowPercentage,
		Palette:    palette(opts.ColorScheme),
	}
}

// rankSpecies returns species indices stably sorted by total abundance
// descending; ties keep original row order
func rankSpecies(tbl *abundance.Table) []int {
	totals := tbl.SpeciesTotals()
	order := make([]int, len(totals))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return totals[order[a]] > totals[order[b]]
	})
	return order
}

// normalizeColumns scales each column to percentages in place. A
// column summing to zero stays all-zero rather than going NaN.
func normalizeColumns(m [][]float64) {
	if len(m) == 0 {
		return
	}
	cols := len(m[0])
	for j := 0; j < cols; j++ {
		sum := 0.0
		for i := range m {
			sum += m[i][j]
		}
		if sum == 0 {
			continue
		}
		for i := range m {
			m[i][j] = m[i][j] / sum * 100
		}
	}
}
