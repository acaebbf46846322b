// Package ensemble aggregates per-model trend series into percentile
// bands, one band per shared window length.
package ensemble

import (
	"sort"

	"github.com/de-tools/trend-atlas/pkg/models/domain"
	"github.com/de-tools/trend-atlas/pkg/services/trend"
	"gonum.org/v1/gonum/stat"
)

// EmptyEnsembleError means no model trend series were supplied.
type EmptyEnsembleError struct{}

func (e *EmptyEnsembleError) Error() string {
	return "ensemble summary requested with no model series"
}

// Summarize groups the models' trend points by window length and
// produces mean and 2.5/5/95/97.5 percentile bands per length,
// ordered by decreasing length. A length contributed by a single
// model is legal: its mean and every percentile equal that one slope.
// Lengths below the minimum window length are dropped, mirroring the
// guard the trend builder already applies.
func Summarize(models map[domain.SeriesID][]domain.TrendPoint) ([]domain.EnsembleBand, error) {
	if len(models) == 0 {
		return nil, &EmptyEnsembleError{}
	}

	byLength := make(map[int][]float64)
	for _, points := range models {
		for _, p := range points {
			if p.Length < trend.MinWindowLength {
				continue
			}
			byLength[p.Length] = append(byLength[p.Length], p.Slope)
		}
	}

	lengths := make([]int, 0, len(byLength))
	for l := range byLength {
		lengths = append(lengths, l)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))

	bands := make([]domain.EnsembleBand, 0, len(lengths))
	for _, l := range lengths {
		slopes := byLength[l]
		bands = append(bands, domain.EnsembleBand{
			Length: l,
			Mean:   stat.Mean(slopes, nil),
			P2_5:   quantile(0.025, slopes),
			P5:     quantile(0.05, slopes),
			P95:    quantile(0.95, slopes),
			P97_5:  quantile(0.975, slopes),
		})
	}
	return bands, nil
}
