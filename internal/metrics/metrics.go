package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Scoutline
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Store Metrics
	StoreOpsTotal    prometheus.CounterVec
	StoreOpDuration  prometheus.HistogramVec

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Business Metrics
	CascadeRunsTotal      prometheus.CounterVec
	CascadeStepsTotal     prometheus.CounterVec
	OfferTransitionsTotal prometheus.CounterVec
	ActiveAdvertisements  prometheus.GaugeVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scoutline_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "scoutline_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "scoutline_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Store Metrics
		StoreOpsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scoutline_store_ops_total",
				Help: "Total document store operations by collection and operation type",
			},
			[]string{"collection", "op"},
		),
		StoreOpDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "scoutline_store_op_duration_seconds",
				Help:    "Document store operation time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"collection", "op"},
		),

		// Cache Metrics
		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scoutline_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scoutline_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		// Business Metrics
		CascadeRunsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scoutline_cascade_runs_total",
				Help: "Total reassignment cascade runs by mode and outcome",
			},
			[]string{"mode", "outcome"},
		),
		CascadeStepsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scoutline_cascade_steps_total",
				Help: "Total reassignment cascade steps applied by step name",
			},
			[]string{"step"},
		),
		OfferTransitionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scoutline_offer_transitions_total",
				Help: "Total offer state machine transitions by side and target status",
			},
			[]string{"side", "status"},
		),
		ActiveAdvertisements: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "scoutline_active_advertisements",
				Help: "Current number of active advertisements by side",
			},
			[]string{"side"},
		),
	}
}
