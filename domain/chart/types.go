// Package chart defines the chart-ready payloads produced by the three
// views. These are what the HTTP layer serializes for the charting
// surface; rendering itself happens client-side.
package chart

import "mitoviz/domain/diversity"

// Type enumerates the selectable chart kinds
type Type string

const (
	TypeComposition Type = "composition"
	TypeHeatmap     Type = "heatmap"
	TypeDiversity   Type = "diversity"
)

// Valid reports whether the chart type is one of the known kinds
func (t Type) Valid() bool {
	switch t {
	case TypeComposition, TypeHeatmap, TypeDiversity:
		return true
	}
	return false
}

// BarRecord is one long-form record for stacked-bar rendering:
// one record per (sample, species) pair
type BarRecord struct {
	Sample    string  `json:"sample"`
	Species   string  `json:"species"`
	Abundance float64 `json:"abundance"`
}

// StackedBar is the composition view payload
type StackedBar struct {
	Records    []BarRecord `json:"records"`
	Samples    []string    `json:"samples"`
	Species    []string    `json:"species"`
	YAxisLabel string      `json:"y_axis_label"`
	Percentage bool        `json:"percentage"`
	Palette    []string    `json:"palette"`
}

// Heatmap is the heatmap view payload. Z is species × sample, aligned
// with Y and X respectively.
type Heatmap struct {
	Z             [][]float64 `json:"z"`
	X             []string    `json:"x"`
	Y             []string    `json:"y"`
	ColorbarTitle string      `json:"colorbar_title"`
	LogScale      bool        `json:"log_scale"`
	HeightHint    int         `json:"height_hint"`
}

// Diversity is the diversity view payload: richness as bars with the
// Shannon index as an overlaid line on a secondary axis
type Diversity struct {
	Records       []diversity.Record `json:"records"`
	Samples       []string           `json:"samples"`
	BarSeries     string             `json:"bar_series"`
	LineSeries    string             `json:"line_series"`
	SecondaryAxis string             `json:"secondary_axis"`
}
