// Package diversity defines per-sample diversity index records.
package diversity

// Record holds the three diversity indices for one sample.
// Richness is a count; Simpson lands in [0,1] by construction.
type Record struct {
	Sample   string  `json:"sample"`
	Richness int     `json:"richness"`
	Shannon  float64 `json:"shannon"`
	Simpson  float64 `json:"simpson"`
}
