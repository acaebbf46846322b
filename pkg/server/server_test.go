package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/de-tools/trend-atlas/pkg/handlers/comparison"
	"github.com/de-tools/trend-atlas/pkg/models/api"
	"github.com/de-tools/trend-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
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

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	observed := domain.Series{ID: "observed", Observations: linearObs(1951, 2014, 0.2)}
	models := domain.Ensemble{
		"m1": linearObs(1951, 2014, 0.1),
		"m2": linearObs(1951, 2014, 0.2),
		"m3": linearObs(1951, 2014, 0.3),
	}

	webAPI := NewWebAPI(logger, Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Comparison: comparison.NewHandler(observed, models, 64, false),
		},
	})
	testServer := httptest.NewServer(webAPI.Router())
	defer testServer.Close()

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		check          func(t *testing.T, body []byte)
	}{
		{
			name:           "GetRun",
			path:           "/api/v1/runs/2014",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				report, err := unmarshalResponse[api.ComparisonReport](body)
				require.NoError(t, err)
				assert.Equal(t, 2014, report.EndYear)
				assert.Equal(t, 3, report.ModelCount)
				assert.Len(t, report.Bands, 55)
				assert.Len(t, report.Observed, 55)
				assert.Len(t, report.Comparisons, 55)
			},
		},
		{
			name:           "GetBands",
			path:           "/api/v1/runs/2014/bands",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				bands, err := unmarshalResponse[[]api.Band](body)
				require.NoError(t, err)
				require.Len(t, bands, 55)
				assert.Equal(t, 64, bands[0].Length)
				assert.InDelta(t, 0.2, bands[0].Mean, 1e-9)
			},
		},
		{
			name:           "GetTrends",
			path:           "/api/v1/runs/2014/trends",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				trends, err := unmarshalResponse[[]api.Trend](body)
				require.NoError(t, err)
				require.Len(t, trends, 55)
				require.NotNil(t, trends[0].CILow)
				require.NotNil(t, trends[0].CIHigh)
			},
		},
		{
			name:           "GetClassification",
			path:           "/api/v1/runs/2014/classification",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				comparisons, err := unmarshalResponse[[]api.Comparison](body)
				require.NoError(t, err)
				require.Len(t, comparisons, 55)
				assert.Equal(t, "consistent", comparisons[0].Classification)
			},
		},
		{
			name:           "GetChart",
			path:           "/api/v1/runs/2014/chart.png",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				require.Greater(t, len(body), 8)
				assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, body[:4])
			},
		},
		{
			name:           "GetRun_SpanOverride",
			path:           "/api/v1/runs/2014/bands?span=20",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				bands, err := unmarshalResponse[[]api.Band](body)
				require.NoError(t, err)
				assert.Equal(t, 20, bands[0].Length)
			},
		},
		{
			name:           "GetRun_BadEndYear",
			path:           "/api/v1/runs/notayear",
			expectedStatus: http.StatusBadRequest,
			check:          func(t *testing.T, body []byte) {},
		},
		{
			name:           "GetRun_TooEarlyEndYear",
			path:           "/api/v1/runs/1953",
			expectedStatus: http.StatusUnprocessableEntity,
			check:          func(t *testing.T, body []byte) {},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Get(testServer.URL + tc.path)
			require.NoError(t, err, "Failed to send request")
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "Failed to read response body")

			tc.check(t, body)
		})
	}
}

func unmarshalResponse[T any](data []byte) (T, error) {
	var response T
	err := json.Unmarshal(data, &response)
	return response, err
}
