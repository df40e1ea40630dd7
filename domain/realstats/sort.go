package realstats

import (
	"sort"
)

// Sort returns a new ascending copy of the series; the input is never
// mutated. The sort is stable, so equal elements keep their relative
// input order, the same comparison contract session-list sorting uses.
// NaN ordering is unspecified; validate inputs with New first.
func Sort(series []float64) []float64 {
	sorted := make([]float64, len(series))
	copy(sorted, series)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	return sorted
}
