package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initTraversalMetrics() {
	r.TraversalsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathrace_traversals_total",
			Help: "Total number of traversal runs by strategy and outcome",
		},
		[]string{"strategy", "outcome"},
	)

	r.TraversalDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pathrace_traversal_duration_seconds",
			Help:    "Traversal run latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"strategy"},
	)

	r.TraversalSteps = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pathrace_traversal_steps",
			Help:    "Number of finalization steps per traversal run",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
		[]string{"strategy"},
	)

	r.TraversalVisitedNodes = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pathrace_traversal_visited_nodes",
			Help:    "Size of the final visited set per traversal run",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
		[]string{"strategy"},
	)

	r.TraversalPathWeight = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pathrace_traversal_path_weight",
			Help:    "Total edge weight of the final path per traversal run",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		},
		[]string{"strategy"},
	)
}
