package utils

import (
	"math"
	"sort"
)

// Percentile returns the nearest-rank percentile of values for p in (0,1]:
// index = ceil(n*p) - 1, clamped to the valid range. The input does not need
// to be sorted; a copy is sorted internally so callers keep their order.
// Returns 0 for an empty slice.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	index := int(math.Ceil(float64(len(sorted))*p)) - 1
	if index < 0 {
		index = 0
	}
	if index >= len(sorted) {
		index = len(sorted) - 1
	}
	return sorted[index]
}
