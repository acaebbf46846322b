// Package analysis runs one full comparison: per-model recursive
// trends, ensemble bands, observed trends with intervals, and the
// classification of the observation against the bands.
package analysis

import (
	"context"
	"fmt"
	"sort"

	"github.com/de-tools/trend-atlas/pkg/models/domain"
	"github.com/de-tools/trend-atlas/pkg/services/compare"
	"github.com/de-tools/trend-atlas/pkg/services/ensemble"
	"github.com/de-tools/trend-atlas/pkg/services/trend"
	"github.com/rs/zerolog"
)

// Params configures one run. EndYear anchors every window; MaxSpan
// caps the longest window (0 = full series). With SkipFailedModels a
// member that cannot produce trends is excluded with a warning instead
// of aborting the run.
type Params struct {
	EndYear          int
	MaxSpan          int
	SkipFailedModels bool
}

// Run executes the whole pipeline for one end year. Each call is an
// independent, side-effect-free run context; nothing is shared or
// mutated between calls with different parameters.
func Run(ctx context.Context, observed domain.Series, models domain.Ensemble, params Params) (*domain.ComparisonReport, error) {
	logger := zerolog.Ctx(ctx)

	ids := make([]domain.SeriesID, 0, len(models))
	for id := range models {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	modelTrends := make(map[domain.SeriesID][]domain.TrendPoint, len(ids))
	skipped := make(map[domain.SeriesID]string)
	for _, id := range ids {
		points, err := trend.Build(id, models[id], params.EndYear, trend.WithMaxSpan(params.MaxSpan))
		if err != nil {
			if !params.SkipFailedModels {
				return nil, fmt.Errorf("model %q: %w", id, err)
			}
			logger.Warn().
				Str("model", string(id)).
				Int("end_year", params.EndYear).
				Err(err).
				Msg("excluding model from ensemble")
			skipped[id] = err.Error()
			continue
		}
		modelTrends[id] = points
	}

	bands, err := ensemble.Summarize(modelTrends)
	if err != nil {
		return nil, fmt.Errorf("summarizing ensemble: %w", err)
	}

	obsTrends, err := trend.Build(observed.ID, observed.Observations, params.EndYear,
		trend.WithConfidenceIntervals(), trend.WithMaxSpan(params.MaxSpan))
	if err != nil {
		return nil, fmt.Errorf("observed series %q: %w", observed.ID, err)
	}

	comparisons, err := compare.Classify(obsTrends, bands)
	if err != nil {
		return nil, fmt.Errorf("classifying observed trends: %w", err)
	}

	logger.Info().
		Int("end_year", params.EndYear).
		Int("models", len(modelTrends)).
		Int("bands", len(bands)).
		Int("comparisons", len(comparisons)).
		Msg("run complete")

	return &domain.ComparisonReport{
		Title:       fmt.Sprintf("Observed vs ensemble decadal trends, windows ending %d", params.EndYear),
		Run:         domain.RunSpec{EndYear: params.EndYear, MinLength: trend.MinWindowLength, MaxSpan: params.MaxSpan},
		ModelCount:  len(modelTrends),
		Bands:       bands,
		Observed:    obsTrends,
		Comparisons: comparisons,
		Skipped:     skipped,
	}, nil
}
