package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Traversal Metrics
	TraversalsTotal       *prometheus.CounterVec
	TraversalDuration     *prometheus.HistogramVec
	TraversalSteps        *prometheus.HistogramVec
	TraversalVisitedNodes *prometheus.HistogramVec
	TraversalPathWeight   *prometheus.HistogramVec

	// Race Metrics
	RacesTotal   *prometheus.CounterVec
	RaceVerdicts *prometheus.CounterVec
	RaceDuration prometheus.Histogram

	registry *prometheus.Registry
}

var (
	// Global registry instance
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

	r := &Registry{
		registry: reg,
	}

	r.initHTTPMetrics()
	r.initTraversalMetrics()
	r.initRaceMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
