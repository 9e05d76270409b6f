package views

import (
	"math"
	"testing"

	"mitoviz/domain/abundance"
	"mitoviz/domain/chart"
)

// TestHeatmap_LogTransform verifies each cell becomes log10(v + 1)
func TestHeatmap_LogTransform(t *testing.T) {
	tbl := &abundance.Table{
		Species: []string{"Carp"},
		Samples: []string{"s1", "s2", "s3"},
		Matrix:  [][]float64{{0, 9, 99}},
	}

	out := Heatmap(tbl, Options{ChartType: chart.TypeHeatmap, LogScale: true})

	want := []float64{0, 1, 2}
	for j := range want {
		if math.Abs(out.Z[0][j]-want[j]) > 1e-9 {
			t.Errorf("Z[0][%d] = %v, want %v", j, out.Z[0][j], want[j])
		}
	}
	if out.ColorbarTitle != "log10(read count + 1)" {
		t.Errorf("Unexpected colorbar title %q", out.ColorbarTitle)
	}
}

// TestHeatmap_RawCounts verifies values pass through untouched without
// the log option
func TestHeatmap_RawCounts(t *testing.T) {
	tbl := &abundance.Table{
		Species: []string{"Carp"},
		Samples: []string{"s1", "s2"},
		Matrix:  [][]float64{{7, 42}},
	}

	out := Heatmap(tbl, Options{ChartType: chart.TypeHeatmap})

	if out.Z[0][0] != 7 || out.Z[0][1] != 42 {
		t.Errorf("Unexpected Z: %v", out.Z)
	}
	if out.ColorbarTitle != "read count" {
		t.Errorf("Unexpected colorbar title %q", out.ColorbarTitle)
	}
	if out.LogScale {
		t.Error("LogScale flag should be off")
	}
}

// TestHeatmap_RowOrder verifies rows follow the descending-total
// species ranking
func TestHeatmap_RowOrder(t *testing.T) {
	tbl := &abundance.Table{
		Species: []string{"Minor", "Major"},
		Samples: []string{"s1"},
		Matrix:  [][]float64{{2}, {50}},
	}

	out := Heatmap(tbl, Options{ChartType: chart.TypeHeatmap})

	if out.Y[0] != "Major" || out.Y[1] != "Minor" {
		t.Errorf("Unexpected row order: %v", out.Y)
	}
	if out.Z[0][0] != 50 || out.Z[1][0] != 2 {
		t.Errorf("Z rows did not follow the ranking: %v", out.Z)
	}
}

// TestHeatmapHeight verifies the 400px floor and the 25px-per-species
// scaling above it
func TestHeatmapHeight(t *testing.T) {
	cases := []struct {
		species int
		want    int
	}{
		{1, 400},
		{16, 400},
		{17, 425},
		{40, 1000},
	}

	for _, tc := range cases {
		if got := heatmapHeight(tc.species); got != tc.want {
			t.Errorf("heatmapHeight(%d) = %d, want %d", tc.species, got, tc.want)
		}
	}
}
