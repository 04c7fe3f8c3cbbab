package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FixtureFetchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_fixture_fetch_total",
			Help: "Fixture fetches by resource and outcome",
		},
		[]string{"resource", "status"},
	)

	SnapshotLoadDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_snapshot_load_duration_seconds",
			Help:    "Time taken to load the full fixture snapshot",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"status"},
	)

	SnapshotReady = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "dashboard_snapshot_ready",
			Help: "1 once every fixture is loaded, 0 while loading or failed",
		},
	)

	ViewRenderTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_view_render_total",
			Help: "Tab views rendered by tab and output format",
		},
		[]string{"tab", "format"},
	)

	ChartRenderTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_chart_render_total",
			Help: "PNG charts rendered by chart id and outcome",
		},
		[]string{"chart", "status"},
	)
)

var registerOnce sync.Once

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(FixtureFetchTotal)
		prometheus.MustRegister(SnapshotLoadDuration)
		prometheus.MustRegister(SnapshotReady)
		prometheus.MustRegister(ViewRenderTotal)
		prometheus.MustRegister(ChartRenderTotal)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}
