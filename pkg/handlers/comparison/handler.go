package comparison

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/de-tools/trend-atlas/pkg/adapters"
	"github.com/de-tools/trend-atlas/pkg/models/domain"
	"github.com/de-tools/trend-atlas/pkg/render/chart"
	"github.com/de-tools/trend-atlas/pkg/services/analysis"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler exposes comparison runs over HTTP. The inputs are loaded
// once at startup and shared read-only; every request is an
// independent run for its end year.
type Handler struct {
	observed   domain.Series
	models     domain.Ensemble
	span       int
	skipFailed bool
}

func NewHandler(observed domain.Series, models domain.Ensemble, span int, skipFailed bool) *Handler {
	return &Handler{
		observed:   observed,
		models:     models,
		span:       span,
		skipFailed: skipFailed,
	}
}

func (h *Handler) run(r *http.Request) (*domain.ComparisonReport, int, error) {
	ctx := r.Context()

	endYear, err := strconv.Atoi(chi.URLParam(r, "endYear"))
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	span := h.span
	if raw := r.URL.Query().Get("span"); raw != "" {
		span, err = strconv.Atoi(raw)
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
	}

	report, err := analysis.Run(ctx, h.observed, h.models, analysis.Params{
		EndYear:          endYear,
		MaxSpan:          span,
		SkipFailedModels: h.skipFailed,
	})
	if err != nil {
		return nil, http.StatusUnprocessableEntity, err
	}
	return report, http.StatusOK, nil
}

func (h *Handler) GetRun(w http.ResponseWriter, r *http.Request) {
	report, status, err := h.run(r)
	if err != nil {
		http.Error(w, err.Error(), status)
		return
	}
	h.writeJSON(r, w, adapters.MapComparisonReportDomainToApi(report))
}

func (h *Handler) GetBands(w http.ResponseWriter, r *http.Request) {
	report, status, err := h.run(r)
	if err != nil {
		http.Error(w, err.Error(), status)
		return
	}
	h.writeJSON(r, w, adapters.MapComparisonReportDomainToApi(report).Bands)
}

func (h *Handler) GetTrends(w http.ResponseWriter, r *http.Request) {
	report, status, err := h.run(r)
	if err != nil {
		http.Error(w, err.Error(), status)
		return
	}
	h.writeJSON(r, w, adapters.MapComparisonReportDomainToApi(report).Observed)
}

func (h *Handler) GetClassification(w http.ResponseWriter, r *http.Request) {
	report, status, err := h.run(r)
	if err != nil {
		http.Error(w, err.Error(), status)
		return
	}
	h.writeJSON(r, w, adapters.MapComparisonReportDomainToApi(report).Comparisons)
}

func (h *Handler) GetChart(w http.ResponseWriter, r *http.Request) {
	report, status, err := h.run(r)
	if err != nil {
		http.Error(w, err.Error(), status)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if err := chart.Render(w, report); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to render chart")
	}
}

func (h *Handler) writeJSON(r *http.Request, w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}
