// Package views implements the three aggregations that turn an
// abundance table into chart-ready payloads: stacked composition,
// heatmap, and per-sample diversity indices. Each view is a pure
// function of (table, options); page-level configuration arrives as an
// immutable Options value, never as ambient state.
package views

import (
	"mitoviz/domain/chart"
	"mitoviz/internal/errors"
)

// TopN bounds exposed by the UI slider
const (
	MinTopN     = 5
	MaxTopN     = 30
	DefaultTopN = 15
)

// Options is the immutable per-render view configuration
type Options struct {
	ChartType      chart.Type `json:"chart_type"`
	ShowPercentage bool       `json:"show_percentage"`
	TopN           int        `json:"top_n"` // 0 means no truncation
	ColorScheme    string     `json:"color_scheme"`
	LogScale       bool       `json:"log_scale"`
}

// DefaultOptions mirrors the initial state of the UI controls
func DefaultOptions() Options {
	return Options{
		ChartType:      chart.TypeComposition,
		ShowPercentage: true,
		TopN:           DefaultTopN,
		ColorScheme:    SchemePlotly,
		LogScale:       true,
	}
}

// Validate checks option ranges and enum membership
func (o Options) Validate() error {
	if !o.ChartType.Valid() {
		return errors.InvalidInput("unknown chart type: " + string(o.ChartType))
	}
	if o.TopN != 0 && (o.TopN < MinTopN || o.TopN > MaxTopN) {
		return errors.InvalidInput("top_n must be between 5 and 30")
	}
	if o.ColorScheme != "" {
		if _, ok := Palettes[o.ColorScheme]; !ok {
			return errors.InvalidInput("unknown color scheme: " + o.ColorScheme)
		}
	}
	return nil
}
