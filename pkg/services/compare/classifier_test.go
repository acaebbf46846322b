package compare

import (
	"testing"

	"github.com/de-tools/trend-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func band(length int) domain.EnsembleBand {
	return domain.EnsembleBand{
		Length: length,
		Mean:   0.2,
		P2_5:   0.05,
		P5:     0.08,
		P95:    0.32,
		P97_5:  0.35,
	}
}

func TestClassify_ThresholdPrecedence(t *testing.T) {
	cases := []struct {
		name  string
		slope float64
		want  domain.Classification
	}{
		{"far below envelope", 0.0, domain.ClassBelow97_5},
		{"just below p2_5", 0.049, domain.ClassBelow97_5},
		{"at p2_5", 0.05, domain.ClassBelow95},
		{"between p2_5 and p5", 0.07, domain.ClassBelow95},
		{"at p5", 0.08, domain.ClassConsistent},
		{"at mean", 0.2, domain.ClassConsistent},
		{"above envelope", 0.5, domain.ClassConsistent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			obs := []domain.TrendPoint{{SeriesID: "obs", Length: 30, Slope: tc.slope}}
			points, err := Classify(obs, []domain.EnsembleBand{band(30)})
			require.NoError(t, err)
			require.Len(t, points, 1)
			assert.Equal(t, tc.want, points[0].Class)
		})
	}
}

func TestClassify_ExactlyOneClassPerPoint(t *testing.T) {
	slopes := []float64{-0.3, 0.04, 0.05, 0.06, 0.08, 0.1, 0.6}
	for _, s := range slopes {
		obs := []domain.TrendPoint{{SeriesID: "obs", Length: 20, Slope: s}}
		points, err := Classify(obs, []domain.EnsembleBand{band(20)})
		require.NoError(t, err)
		c := points[0].Class
		valid := c == domain.ClassConsistent || c == domain.ClassBelow95 || c == domain.ClassBelow97_5
		assert.True(t, valid, "slope %v produced %q", s, c)
		// Nested severity: the extreme class implies the milder one.
		if c == domain.ClassBelow97_5 {
			assert.Less(t, s, band(20).P5)
		}
		if c == domain.ClassBelow95 || c == domain.ClassBelow97_5 {
			assert.NotEqual(t, domain.ClassConsistent, c)
		}
	}
}

func TestClassify_CIOverlapIndependentOfClass(t *testing.T) {
	b := band(40)

	// Point estimate below the envelope, interval still reaching it.
	obs := []domain.TrendPoint{{
		SeriesID: "obs", Length: 40, Slope: 0.02,
		CILow: -0.05, CIHigh: 0.09, HasCI: true,
	}}
	points, err := Classify(obs, []domain.EnsembleBand{b})
	require.NoError(t, err)
	assert.Equal(t, domain.ClassBelow97_5, points[0].Class)
	assert.True(t, points[0].CIOverlaps)

	// Interval entirely below the envelope.
	obs[0].CILow, obs[0].CIHigh = -0.1, 0.01
	points, err = Classify(obs, []domain.EnsembleBand{b})
	require.NoError(t, err)
	assert.False(t, points[0].CIOverlaps)
}

func TestClassify_NoCIFallsBackToPointEstimate(t *testing.T) {
	obs := []domain.TrendPoint{{SeriesID: "obs", Length: 40, Slope: 0.2}}
	points, err := Classify(obs, []domain.EnsembleBand{band(40)})
	require.NoError(t, err)
	assert.True(t, points[0].CIOverlaps)
}

func TestClassify_SharedLengthsOnlyOrderedDescending(t *testing.T) {
	obs := []domain.TrendPoint{
		{SeriesID: "obs", Length: 12, Slope: 0.2},
		{SeriesID: "obs", Length: 25, Slope: 0.2},
		{SeriesID: "obs", Length: 60, Slope: 0.2},
	}
	bands := []domain.EnsembleBand{band(25), band(12)}

	points, err := Classify(obs, bands)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, 25, points[0].Length)
	assert.Equal(t, 12, points[1].Length)
}

func TestClassify_MisalignedLengths(t *testing.T) {
	obs := []domain.TrendPoint{{SeriesID: "obs", Length: 15, Slope: 0.2}}
	_, err := Classify(obs, []domain.EnsembleBand{band(40)})
	var misaligned *MisalignedLengthError
	require.ErrorAs(t, err, &misaligned)
}
