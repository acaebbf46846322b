package ensemble

import (
	"math"
	"sort"
)

// quantile returns the p-quantile of values by linear interpolation
// between order statistics at rank p*(n-1), the convention the
// reference figure's percentile bands were produced with. Ensemble
// sizes are small (~100 members), so the interpolation scheme
// materially shifts the 2.5/97.5 boundary values and is fixed here
// rather than left to a library default.
func quantile(p float64, values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0]
	}
	h := p * float64(len(sorted)-1)
	lo := int(math.Floor(h))
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
