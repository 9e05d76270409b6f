package views

import (
	"math"
	"testing"

	"mitoviz/domain/abundance"
)

// TestDiversity_AllZeroSample verifies an empty sample gets zeroes
// across all three indices
func TestDiversity_AllZeroSample(t *testing.T) {
	tbl := &abundance.Table{
		Species: []string{"Carp", "Goby"},
		Samples: []string{"empty"},
		Matrix:  [][]float64{{0}, {0}},
	}

	out := Diversity(tbl)

	rec := out.Records[0]
	if rec.Richness != 0 || rec.Shannon != 0 || rec.Simpson != 0 {
		t.Errorf("Expected zero record, got %+v", rec)
	}
}

// TestDiversity_SinglePositive verifies one species gives richness 1
// and a Simpson of exactly 0
func TestDiversity_SinglePositive(t *testing.T) {
	tbl := &abundance.Table{
		Species: []string{"Carp", "Goby"},
		Samples: []string{"mono"},
		Matrix:  [][]float64{{100}, {0}},
	}

	out := Diversity(tbl)

	rec := out.Records[0]
	if rec.Richness != 1 {
		t.Errorf("Richness = %d, want 1", rec.Richness)
	}
	if rec.Simpson != 0 {
		t.Errorf("Simpson = %v, want 0", rec.Simpson)
	}
	// Shannon of a single proportion of 1 collapses to -ln(1 + eps)
	if math.Abs(rec.Shannon) > 1e-9 {
		t.Errorf("Shannon = %v, want ~0", rec.Shannon)
	}
}

// TestDiversity_KnownValues checks the indices against hand-computed
// numbers for a two-species sample
func TestDiversity_KnownValues(t *testing.T) {
	tbl := &abundance.Table{
		Species: []string{"Carp", "Goby"},
		Samples: []string{"s"},
		Matrix:  [][]float64{{30}, {70}},
	}

	out := Diversity(tbl)
	rec := out.Records[0]

	if rec.Richness != 2 {
		t.Errorf("Richness = %d, want 2", rec.Richness)
	}

	wantShannon := -(0.3*math.Log(0.3+epsilon) + 0.7*math.Log(0.7+epsilon))
	if math.Abs(rec.Shannon-wantShannon) > 1e-12 {
		t.Errorf("Shannon = %v, want %v", rec.Shannon, wantShannon)
	}

	wantSimpson := 1 - (30*29+70*69)/(100*99+epsilon)
	if math.Abs(rec.Simpson-wantSimpson) > 1e-12 {
		t.Errorf("Simpson = %v, want %v", rec.Simpson, wantSimpson)
	}
}

// TestDiversity_IgnoresZeroCounts verifies zeroes contribute nothing,
// matching richness over strictly positive counts
func TestDiversity_IgnoresZeroCounts(t *testing.T) {
	withZeros := &abundance.Table{
		Species: []string{"A", "B", "C", "D"},
		Samples: []string{"s"},
		Matrix:  [][]float64{{30}, {0}, {70}, {0}},
	}
	withoutZeros := &abundance.Table{
		Species: []string{"A", "C"},
		Samples: []string{"s"},
		Matrix:  [][]float64{{30}, {70}},
	}

	a := Diversity(withZeros).Records[0]
	b := Diversity(withoutZeros).Records[0]

	if a.Richness != 2 {
		t.Errorf("Richness = %d, want 2", a.Richness)
	}
	if a.Shannon != b.Shannon || a.Simpson != b.Simpson {
		t.Errorf("Zero counts changed the indices: %+v vs %+v", a, b)
	}
}

// TestDiversity_SeriesLabels verifies the bars-plus-line payload names
func TestDiversity_SeriesLabels(t *testing.T) {
	tbl := &abundance.Table{
		Species: []string{"Carp"},
		Samples: []string{"s1", "s2"},
		Matrix:  [][]float64{{1, 2}},
	}

	out := Diversity(tbl)

	if len(out.Records) != 2 {
		t.Fatalf("Expected one record per sample, got %d", len(out.Records))
	}
	if out.BarSeries != "Species Richness" || out.LineSeries != "Shannon Index" {
		t.Errorf("Unexpected series labels: %q / %q", out.BarSeries, out.LineSeries)
	}
	if out.SecondaryAxis != "Shannon Index" {
		t.Errorf("Unexpected secondary axis %q", out.SecondaryAxis)
	}
}
