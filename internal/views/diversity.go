package views

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"mitoviz/domain/abundance"
	"mitoviz/domain/chart"
	"mitoviz/domain/diversity"
)

// epsilon guards the log and the Simpson denominator. The Shannon term
// applies it to already-positive proportions, so every index carries a
// tiny negative bias; downstream numbers expect exactly these values.
const epsilon = 1e-10

// Diversity computes richness, Shannon and Simpson indices per sample
// and pairs them into the bars-plus-line payload.
func Diversity(tbl *abundance.Table) *chart.Diversity {
	records := make([]diversity.Record, tbl.SampleCount())
	for j, sample := range tbl.Samples {
		records[j] = sampleDiversity(sample, tbl.SampleColumn(j))
	}

	return &chart.Diversity{
		Records:       records,
		Samples:       append([]string(nil), tbl.Samples...),
		BarSeries:     "Species Richness",
		LineSeries:    "Shannon Index",
		SecondaryAxis: "Shannon Index",
	}
}

// sampleDiversity computes the three indices over one sample's
// strictly-positive counts
func sampleDiversity(sample string, column []float64) diversity.Record {
	var counts []float64
	for _, v := range column {
		if v > 0 {
			counts = append(counts, v)
		}
	}

	rec := diversity.Record{Sample: sample, Richness: len(counts)}
	if len(counts) == 0 {
		return rec
	}

	total := floats.Sum(counts)

	shannon := 0.0
	for _, c := range counts {
		p := c / total
		shannon -= p * math.Log(p+epsilon)
	}
	rec.Shannon = shannon

	if len(counts) > 1 {
		sumPairs := 0.0
		for _, c := range counts {
			sumPairs += c * (c - 1)
		}
		rec.Simpson = 1 - sumPairs/(total*(total-1)+epsilon)
	}

	return rec
}
