// Package compare places the observed trend series against the
// ensemble percentile bands, length by length.
package compare

import (
	"fmt"
	"sort"

	"github.com/de-tools/trend-atlas/pkg/models/domain"
)

// MisalignedLengthError means the observed trend lengths and the
// ensemble band lengths share no common value, so there is nothing to
// classify.
type MisalignedLengthError struct {
	ObservedLengths int
	BandLengths     int
}

func (e *MisalignedLengthError) Error() string {
	return fmt.Sprintf("no shared window lengths between %d observed trends and %d ensemble bands",
		e.ObservedLengths, e.BandLengths)
}

// Classify evaluates every length present in both inputs, most extreme
// threshold first: below the 2.5th percentile, below the 5th, else
// consistent. The classification is a percentile rank of point
// estimates used for color coding; it is not a hypothesis test. The
// statistically meaningful comparison is the separate CIOverlaps flag,
// set when the observed confidence interval intersects the ensemble's
// 2.5-97.5 envelope. Output is ordered by decreasing length.
func Classify(observed []domain.TrendPoint, bands []domain.EnsembleBand) ([]domain.ComparisonPoint, error) {
	bandByLength := make(map[int]domain.EnsembleBand, len(bands))
	for _, b := range bands {
		bandByLength[b.Length] = b
	}

	points := make([]domain.ComparisonPoint, 0, len(observed))
	for _, obs := range observed {
		band, ok := bandByLength[obs.Length]
		if !ok {
			continue
		}
		points = append(points, domain.ComparisonPoint{
			Length:     obs.Length,
			Observed:   obs,
			Band:       band,
			Class:      classify(obs.Slope, band),
			CIOverlaps: ciOverlaps(obs, band),
		})
	}
	if len(points) == 0 {
		return nil, &MisalignedLengthError{ObservedLengths: len(observed), BandLengths: len(bands)}
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Length > points[j].Length })
	return points, nil
}

func classify(slope float64, band domain.EnsembleBand) domain.Classification {
	switch {
	case slope < band.P2_5:
		return domain.ClassBelow97_5
	case slope < band.P5:
		return domain.ClassBelow95
	default:
		return domain.ClassConsistent
	}
}

// ciOverlaps reports whether the observed interval intersects the
// ensemble spread. Without an interval the point estimate stands in
// for both bounds.
func ciOverlaps(obs domain.TrendPoint, band domain.EnsembleBand) bool {
	lo, hi := obs.Slope, obs.Slope
	if obs.HasCI {
		lo, hi = obs.CILow, obs.CIHigh
	}
	return lo <= band.P97_5 && hi >= band.P2_5
}
