package views

import (
	"math"

	"mitoviz/domain/abundance"
	"mitoviz/domain/chart"
)

// Colorbar titles for the two heatmap modes
const (
	colorbarReads = "read count"
	colorbarLog   = "log10(read count + 1)"
)

// Heatmap builds the species × sample matrix payload, species ranked
// by total abundance, optionally log-transformed as log10(v + 1).
func Heatmap(tbl *abundance.Table, opts Options) *chart.Heatmap {
	order := rankSpecies(tbl)

	species := make([]string, len(order))
	z := make([][]float64, len(order))
	for pos, idx := range order {
		species[pos] = tbl.Species[idx]
		row := append([]float64(nil), tbl.Matrix[idx]...)
		if opts.LogScale {
			for j, v := range row {
				row[j] = math.Log10(v + 1)
			}
		}
		z[pos] = row
	}

	title := colorbarReads
	if opts.LogScale {
		title = colorbarLog
	}

	return &chart.Heatmap{
		Z:             z,
		X:             append([]string(nil), tbl.Samples...),
		Y:             species,
		ColorbarTitle: title,
		LogScale:      opts.LogScale,
		HeightHint:    heatmapHeight(len(species)),
	}
}

// heatmapHeight gives the renderer enough vertical room for the
// species axis labels
func heatmapHeight(speciesCount int) int {
	h := speciesCount * 25
	if h < 400 {
		return 400
	}
	return h
}
