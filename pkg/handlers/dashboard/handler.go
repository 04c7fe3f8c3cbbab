package dashboard

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/de-tools/bureau-dashboard/pkg/metrics"
	"github.com/de-tools/bureau-dashboard/pkg/models/api"
	"github.com/de-tools/bureau-dashboard/pkg/render/charts"
	"github.com/de-tools/bureau-dashboard/pkg/services/dashboard"
	"github.com/de-tools/bureau-dashboard/pkg/store/fixtures"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// StatusReader reports where the fixture snapshot is in its lifecycle.
type StatusReader interface {
	Status() (fixtures.State, error)
}

type Handler struct {
	status     StatusReader
	controller dashboard.Controller
	basePath   string
}

func NewHandler(status StatusReader, controller dashboard.Controller, basePath string) *Handler {
	return &Handler{
		status:     status,
		controller: controller,
		basePath:   basePath,
	}
}

func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	state, err := h.status.Status()
	resp := api.Status{State: state.String()}
	if err != nil {
		resp.Error = err.Error()
	}
	writeJSON(w, r, http.StatusOK, resp)
}

// Ready answers 200 only once every fixture is loaded.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	state, err := h.status.Status()
	resp := api.Status{State: state.String()}
	if err != nil {
		resp.Error = err.Error()
	}

	code := http.StatusOK
	if state != fixtures.StateReady {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, r, code, resp)
}

func (h *Handler) ListTabs(w http.ResponseWriter, r *http.Request) {
	active := dashboard.Select(dashboard.DefaultTab, r.URL.Query().Get("tab"))
	writeJSON(w, r, http.StatusOK, h.controller.Tabs(active))
}

func (h *Handler) GetTab(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	tab, err := dashboard.ParseTab(chi.URLParam(r, "tab"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	view, err := h.controller.Render(tab)
	if err != nil {
		logger.Error().Err(err).Str("tab", string(tab)).Msg("failed to render tab")
		http.Error(w, err.Error(), renderStatus(err))
		return
	}

	metrics.ViewRenderTotal.WithLabelValues(string(tab), "json").Inc()
	writeJSON(w, r, http.StatusOK, view)
}

func (h *Handler) GetChart(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	id := strings.TrimSuffix(chi.URLParam(r, "chart"), ".png")

	tab, err := dashboard.ParseTab(chi.URLParam(r, "tab"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	view, err := h.controller.Render(tab)
	if err != nil {
		http.Error(w, err.Error(), renderStatus(err))
		return
	}

	var buf bytes.Buffer
	if err := charts.Render(&buf, view, id); err != nil {
		status, label := http.StatusInternalServerError, id
		switch {
		case errors.Is(err, charts.ErrUnknownChart):
			// the id comes from the url, keep it out of the metric labels
			status, label = http.StatusNotFound, "unknown"
		case errors.Is(err, charts.ErrNoData):
			status = http.StatusNotFound
		default:
			logger.Error().Err(err).Str("tab", string(tab)).Str("chart", id).Msg("failed to render chart")
		}
		metrics.ChartRenderTotal.WithLabelValues(label, "error").Inc()
		http.Error(w, err.Error(), status)
		return
	}

	metrics.ChartRenderTotal.WithLabelValues(id, "ok").Inc()
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=300")
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.Error().Err(err).Msg("failed to write chart")
	}
}

func renderStatus(err error) int {
	if errors.Is(err, fixtures.ErrNotReady) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}
