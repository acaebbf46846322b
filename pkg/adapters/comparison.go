package adapters

import (
	"github.com/de-tools/trend-atlas/pkg/models/api"
	"github.com/de-tools/trend-atlas/pkg/models/domain"
)

func MapBandDomainToApi(b domain.EnsembleBand) api.Band {
	return api.Band{
		Length: b.Length,
		Mean:   b.Mean,
		P2_5:   b.P2_5,
		P5:     b.P5,
		P95:    b.P95,
		P97_5:  b.P97_5,
	}
}

func MapTrendDomainToApi(p domain.TrendPoint) api.Trend {
	t := api.Trend{
		Length: p.Length,
		Slope:  p.Slope,
	}
	if p.HasCI {
		lo, hi := p.CILow, p.CIHigh
		t.CILow = &lo
		t.CIHigh = &hi
	}
	return t
}

func MapComparisonReportDomainToApi(r *domain.ComparisonReport) api.ComparisonReport {
	res := api.ComparisonReport{
		Title:       r.Title,
		EndYear:     r.Run.EndYear,
		MinLength:   r.Run.MinLength,
		MaxSpan:     r.Run.MaxSpan,
		ModelCount:  r.ModelCount,
		Bands:       make([]api.Band, 0, len(r.Bands)),
		Observed:    make([]api.Trend, 0, len(r.Observed)),
		Comparisons: make([]api.Comparison, 0, len(r.Comparisons)),
	}
	for _, b := range r.Bands {
		res.Bands = append(res.Bands, MapBandDomainToApi(b))
	}
	for _, p := range r.Observed {
		res.Observed = append(res.Observed, MapTrendDomainToApi(p))
	}
	for _, c := range r.Comparisons {
		res.Comparisons = append(res.Comparisons, api.Comparison{
			Length:         c.Length,
			Classification: string(c.Class),
			CIOverlaps:     c.CIOverlaps,
		})
	}
	if len(r.Skipped) > 0 {
		res.Skipped = make(map[string]string, len(r.Skipped))
		for id, reason := range r.Skipped {
			res.Skipped[string(id)] = reason
		}
	}
	return res
}
