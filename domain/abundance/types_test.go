package abundance

import (
	"math"
	"testing"
)

func sampleTable() *Table {
	return &Table{
		Species: []string{"Carp", "Goby", "Medaka"},
		Samples: []string{"s1", "s2"},
		Matrix: [][]float64{
			{10, 5},
			{0, 20},
			{2, 0},
		},
	}
}

// TestTotals verifies row, column and grand totals agree
func TestTotals(t *testing.T) {
	tbl := sampleTable()

	species := tbl.SpeciesTotals()
	wantSpecies := []float64{15, 20, 2}
	for i := range wantSpecies {
		if species[i] != wantSpecies[i] {
			t.Errorf("SpeciesTotals[%d] = %v, want %v", i, species[i], wantSpecies[i])
		}
	}

	samples := tbl.SampleTotals()
	wantSamples := []float64{12, 25}
	for j := range wantSamples {
		if samples[j] != wantSamples[j] {
			t.Errorf("SampleTotals[%d] = %v, want %v", j, samples[j], wantSamples[j])
		}
	}

	if tbl.TotalReads() != 37 {
		t.Errorf("TotalReads = %v, want 37", tbl.TotalReads())
	}
}

// TestSampleColumn verifies the column copy is detached from the
// matrix
func TestSampleColumn(t *testing.T) {
	tbl := sampleTable()

	col := tbl.SampleColumn(1)
	want := []float64{5, 20, 0}
	for i := range want {
		if col[i] != want[i] {
			t.Errorf("SampleColumn(1)[%d] = %v, want %v", i, col[i], want[i])
		}
	}

	col[0] = 999
	if tbl.Matrix[0][1] != 5 {
		t.Error("Mutating the returned column changed the matrix")
	}
}

// TestSummarize verifies the headline metrics
func TestSummarize(t *testing.T) {
	s := Summarize(sampleTable())

	if s.SpeciesCount != 3 || s.SampleCount != 2 {
		t.Errorf("Counts = %d species, %d samples", s.SpeciesCount, s.SampleCount)
	}
	if s.TotalReads != 37 {
		t.Errorf("TotalReads = %v, want 37", s.TotalReads)
	}
	if math.Abs(s.MeanReadsPerSample-18.5) > 1e-9 {
		t.Errorf("MeanReadsPerSample = %v, want 18.5", s.MeanReadsPerSample)
	}
}

// TestSummarize_EmptyTable keeps the mean defined with no samples
func TestSummarize_EmptyTable(t *testing.T) {
	s := Summarize(&Table{})
	if s.SpeciesCount != 0 || s.SampleCount != 0 || s.TotalReads != 0 || s.MeanReadsPerSample != 0 {
		t.Errorf("Expected zero summary, got %+v", s)
	}
}
