package dashboard

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/de-tools/bureau-dashboard/pkg/metrics"
	"github.com/de-tools/bureau-dashboard/pkg/models/api"
	"github.com/de-tools/bureau-dashboard/pkg/render/charts"
	"github.com/de-tools/bureau-dashboard/pkg/render/report"
	"github.com/de-tools/bureau-dashboard/pkg/services/dashboard"
	"github.com/de-tools/bureau-dashboard/pkg/store/fixtures"
	"github.com/rs/zerolog"
)

//go:embed templates/page.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html"))

const loadingRefreshSeconds = 2

type pageData struct {
	BasePath string
	Refresh  int
	Error    string
	Tabs     []api.TabInfo
	Report   report.Report
	Charts   []string
}

// Page serves the dashboard. While fixtures load it serves a self-refreshing
// loading page; a failed load replaces every tab with one error page.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	data := pageData{BasePath: h.basePath}

	state, loadErr := h.status.Status()
	switch state {
	case fixtures.StateLoading:
		data.Refresh = loadingRefreshSeconds
		h.renderPage(w, r, http.StatusOK, "loading", data)
		return
	case fixtures.StateError:
		data.Error = loadErr.Error()
		h.renderPage(w, r, http.StatusInternalServerError, "error", data)
		return
	}

	tab := dashboard.Select(dashboard.DefaultTab, r.URL.Query().Get("tab"))
	view, err := h.controller.Render(tab)
	if err != nil {
		logger.Error().Err(err).Str("tab", string(tab)).Msg("failed to render tab")
		data.Error = err.Error()
		h.renderPage(w, r, http.StatusInternalServerError, "error", data)
		return
	}

	data.Tabs = h.controller.Tabs(tab)
	data.Report = report.Build(view)
	for _, id := range charts.IDs(view.Tab) {
		if charts.Available(view, id) {
			data.Charts = append(data.Charts, h.basePath+"/api/v1/charts/"+view.Tab+"/"+id+".png")
		}
	}

	metrics.ViewRenderTotal.WithLabelValues(string(tab), "html").Inc()
	h.renderPage(w, r, http.StatusOK, "page", data)
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, status int, name string, data pageData) {
	var buf bytes.Buffer
	if err := pageTemplate.ExecuteTemplate(&buf, name, data); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("template", name).Msg("failed to render page")
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
