package chart

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

func TestRender_ProducesPNG(t *testing.T) {
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
	require.NoError(t, Render(&buf, report))
	require.Greater(t, buf.Len(), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, buf.Bytes()[:4])
}

func TestRender_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, &domain.ComparisonReport{})
	require.Error(t, err)
}
