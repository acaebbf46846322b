// Package trend fits ordinary least squares trends to nested trailing
// windows of an annual series, all anchored at one fixed end year.
package trend

import (
	"math"

	"github.com/de-tools/trend-atlas/pkg/models/domain"
	"gonum.org/v1/gonum/stat/distuv"
)

// MinWindowLength is the shortest trailing window a trend is fitted to.
const MinWindowLength = 10

const ciConfidence = 0.95

type options struct {
	withCI  bool
	maxSpan int
}

// Option configures a Build call.
type Option func(*options)

// WithConfidenceIntervals requests a two-sided 95% t-interval for the
// slope of every window. Used for the observational series; the
// ensemble members only need point estimates.
func WithConfidenceIntervals() Option {
	return func(o *options) { o.withCI = true }
}

// WithMaxSpan caps the longest window length. Zero means the full
// contiguous span of the series is used.
func WithMaxSpan(span int) Option {
	return func(o *options) { o.maxSpan = span }
}

// Build produces one TrendPoint per valid trailing window length,
// ordered by decreasing length. The window of length L covers the
// inclusive year range [endYear-L+1, endYear] and is only valid when
// every year in that range is present; the first gap walking back
// from endYear ends the set of candidate lengths.
//
// The slope at length L reuses the sample at length L-1 plus one older
// observation, so the fit is updated from running sums in O(1) per
// length rather than refit from scratch. The time index is taken as
// year-endYear, a shift of the per-window zero-based index that leaves
// the slope and its standard error unchanged.
func Build(id domain.SeriesID, obs []domain.Observation, endYear int, opts ...Option) ([]domain.TrendPoint, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	// Index by year; input order is irrelevant from here on.
	byYear := make(map[int]float64, len(obs))
	for _, ob := range obs {
		if ob.Year <= endYear {
			byYear[ob.Year] = ob.Value
		}
	}

	// Contiguous run of years ending exactly at endYear.
	span := 0
	for {
		if _, ok := byYear[endYear-span]; !ok {
			break
		}
		span++
	}
	if o.maxSpan > 0 && span > o.maxSpan {
		span = o.maxSpan
	}
	if span < MinWindowLength {
		return nil, &InsufficientDataError{
			SeriesID:  id,
			EndYear:   endYear,
			Available: span,
			Minimum:   MinWindowLength,
		}
	}

	// Running sums over the window, with t = year - endYear.
	var n, st, sy, stt, sty, syy float64

	points := make([]domain.TrendPoint, 0, span-MinWindowLength+1)
	for length := 1; length <= span; length++ {
		year := endYear - length + 1
		t := float64(year - endYear)
		y := byYear[year]
		n++
		st += t
		sy += y
		stt += t * t
		sty += t * y
		syy += y * y

		if length < MinWindowLength {
			continue
		}

		sxx := stt - st*st/n
		sxy := sty - st*sy/n
		if sxx <= 0 {
			return nil, &DegenerateFitError{SeriesID: id, Length: length}
		}
		beta := sxy / sxx
		if math.IsNaN(beta) || math.IsInf(beta, 0) {
			return nil, &DegenerateFitError{SeriesID: id, Length: length}
		}

		p := domain.TrendPoint{
			SeriesID: id,
			Length:   length,
			Slope:    beta * 10, // per year -> per decade
		}
		if o.withCI {
			syc := syy - sy*sy/n
			sse := syc - beta*sxy
			if sse < 0 {
				sse = 0 // rounding on an exact fit
			}
			se := math.Sqrt(sse / (n - 2) / sxx)
			dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: n - 2}
			half := dist.Quantile(0.5+ciConfidence/2) * se * 10
			p.CILow = p.Slope - half
			p.CIHigh = p.Slope + half
			p.HasCI = true
		}
		points = append(points, p)
	}

	// Longest window first.
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
	return points, nil
}
