package views

import (
	"testing"

	"mitoviz/domain/chart"
	"mitoviz/internal/errors"
)

// TestOptionsValidate covers the range and enum checks
func TestOptionsValidate(t *testing.T) {
	cases := []struct {
		name string
		opts Options
		ok   bool
	}{
		{"defaults", DefaultOptions(), true},
		{"zero top_n means no truncation", Options{ChartType: chart.TypeHeatmap}, true},
		{"top_n at lower bound", Options{ChartType: chart.TypeComposition, TopN: 5}, true},
		{"top_n at upper bound", Options{ChartType: chart.TypeComposition, TopN: 30}, true},
		{"top_n below range", Options{ChartType: chart.TypeComposition, TopN: 4}, false},
		{"top_n above range", Options{ChartType: chart.TypeComposition, TopN: 31}, false},
		{"unknown chart type", Options{ChartType: "pie"}, false},
		{"unknown scheme", Options{ChartType: chart.TypeComposition, ColorScheme: "Neon"}, false},
		{"empty scheme allowed", Options{ChartType: chart.TypeDiversity}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.opts.Validate()
			if tc.ok && err != nil {
				t.Errorf("Expected valid, got %v", err)
			}
			if !tc.ok {
				if err == nil {
					t.Fatal("Expected validation failure")
				}
				if errors.GetCode(err) != errors.CodeInvalidInput {
					t.Errorf("Expected code %s, got %s", errors.CodeInvalidInput, errors.GetCode(err))
				}
			}
		})
	}
}

// TestListSchemes verifies every listed scheme has a palette and
// Plotly leads the order
func TestListSchemes(t *testing.T) {
	schemes := ListSchemes()
	if len(schemes) != len(Palettes) {
		t.Errorf("Listed %d schemes, have %d palettes", len(schemes), len(Palettes))
	}
	if schemes[0] != SchemePlotly {
		t.Errorf("First scheme = %q, want %q", schemes[0], SchemePlotly)
	}
	for _, name := range schemes {
		if len(Palettes[name]) == 0 {
			t.Errorf("Scheme %q has no colors", name)
		}
	}
}

// TestPalette_UnknownFallsBack verifies unrecognized names resolve to
// the Plotly palette
func TestPalette_UnknownFallsBack(t *testing.T) {
	got := palette("does-not-exist")
	want := Palettes[SchemePlotly]
	if len(got) != len(want) || got[0] != want[0] {
		t.Errorf("Unexpected fallback palette %v", got)
	}
}
