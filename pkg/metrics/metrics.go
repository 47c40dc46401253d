// Package metrics exposes Prometheus instrumentation for the lab service.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metrics for the lab service
type Registry struct {
	// HTTP metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Lab metrics
	SessionsActive      prometheus.Gauge
	SessionsTotal       *prometheus.CounterVec
	AssignmentsTotal    *prometheus.CounterVec
	ConnectionsTotal    *prometheus.CounterVec
	ValidationsTotal    *prometheus.CounterVec
	ValidationScore     *prometheus.HistogramVec
	MutationErrorsTotal *prometheus.CounterVec

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{registry: reg}
	r.initHTTPMetrics()
	r.initLabMetrics()
	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

func (r *Registry) initHTTPMetrics() {
	r.HTTPRequestsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "labs_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	r.HTTPRequestDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "labs_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	r.HTTPRequestsInFlight = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "labs_http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
	)
}

func (r *Registry) initLabMetrics() {
	r.SessionsActive = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "labs_sessions_active",
			Help: "Current number of active lab sessions",
		},
	)

	r.SessionsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "labs_sessions_total",
			Help: "Total number of lab sessions created",
		},
		[]string{"lab"},
	)

	r.AssignmentsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "labs_assignments_total",
			Help: "Total number of classification assignments recorded",
		},
		[]string{"lab", "axis"},
	)

	r.ConnectionsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "labs_connections_total",
			Help: "Total number of user connections created",
		},
		[]string{"lab", "type"},
	)

	r.ValidationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "labs_validations_total",
			Help: "Total number of validation runs",
		},
		[]string{"lab"},
	)

	r.ValidationScore = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "labs_validation_score",
			Help:    "Distribution of validation scores (percent)",
			Buckets: []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
		[]string{"lab", "axis"},
	)

	r.MutationErrorsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "labs_mutation_errors_total",
			Help: "Total number of rejected session mutations",
		},
		[]string{"lab", "reason"},
	)
}

// RecordHTTPRequest records an HTTP request with its duration
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordValidation records one validation run and its scores
func (r *Registry) RecordValidation(lab string, elementScore, connectionScore int) {
	r.ValidationsTotal.WithLabelValues(lab).Inc()
	r.ValidationScore.WithLabelValues(lab, "elements").Observe(float64(elementScore))
	r.ValidationScore.WithLabelValues(lab, "connections").Observe(float64(connectionScore))
}
