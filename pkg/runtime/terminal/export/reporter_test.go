package export

import (
	"bytes"
	"context"
	"testing"

	"github.com/de-tools/trend-atlas/pkg/models/domain"
	"github.com/de-tools/trend-atlas/pkg/services/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linearObs(startYear, endYear int, perDecade float64) []domain.Observation {
	obs := make([]domain.Observation, 0, endYear-startYear+1)
	for y := startYear; y <= endYear; y++ {
		obs = append(obs, domain.Observation{Year: y, Value: perDecade / 10 * float64(y-startYear)})
	}
	return obs
}

func TestReporter_Handle(t *testing.T) {
	models := domain.Ensemble{
		"m1": linearObs(1951, 2014, 0.1),
		"m2": linearObs(1951, 2014, 0.2),
		"m3": linearObs(1951, 2014, 0.3),
	}
	obs := linearObs(1951, 2014, 0.2)
	obs[len(obs)-1].Value -= 0.5

	report, err := analysis.Run(context.Background(),
		domain.Series{ID: "obs", Observations: obs}, models, analysis.Params{EndYear: 2014})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).Handle(report))

	out := buf.String()
	assert.Contains(t, out, "End year: 2014")
	assert.Contains(t, out, "Models: 3")
	assert.Contains(t, out, "Ensemble bands")
	assert.Contains(t, out, "Observed trend vs ensemble")
	assert.Contains(t, out, string(domain.ClassConsistent))
	assert.Contains(t, out, string(domain.ClassBelow97_5))
}

func TestReporter_SkippedModelsListed(t *testing.T) {
	models := domain.Ensemble{
		"m1":    linearObs(1951, 2014, 0.1),
		"m2":    linearObs(1951, 2014, 0.2),
		"short": linearObs(2010, 2014, 0.2),
	}
	observed := domain.Series{ID: "obs", Observations: linearObs(1951, 2014, 0.2)}

	report, err := analysis.Run(context.Background(), observed, models,
		analysis.Params{EndYear: 2014, SkipFailedModels: true})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).Handle(report))
	assert.Contains(t, buf.String(), "Excluded models:")
	assert.Contains(t, buf.String(), "short")
}
