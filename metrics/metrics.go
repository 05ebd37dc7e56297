// Package metrics provides Prometheus metrics for the wellness API: the
// standard HTTP request metrics plus domain counters for priced offers,
// exported reports and live sessions. Everything registers with the default
// registry at package initialization.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestTotals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_request_in_flight",
			Help: "Current in-flight requests",
		},
	)

	SessionsCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sessions_created_total",
			Help: "Total assessment sessions created",
		},
	)

	SessionsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "sessions_active",
			Help: "Live sessions currently held in memory",
		},
	)

	OffersPricedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "offers_priced_total",
			Help: "Offers priced by the engine",
		},
		[]string{"kind"}, // shake, combo, custom
	)

	OffersSelectedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "offers_selected_total",
			Help: "Offers chosen by clients",
		},
	)

	ReportsExportedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "reports_exported_total",
			Help: "Assessment spreadsheets generated",
		},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestTotals)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(HTTPRequestInFlight)
	prometheus.MustRegister(SessionsCreatedTotal)
	prometheus.MustRegister(SessionsActive)
	prometheus.MustRegister(OffersPricedTotal)
	prometheus.MustRegister(OffersSelectedTotal)
	prometheus.MustRegister(ReportsExportedTotal)
}
