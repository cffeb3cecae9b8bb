package metrics

import (
	"time"
)

// RecordHTTPRequest records an HTTP request with its duration
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordTraversal records one completed traversal run
func (r *Registry) RecordTraversal(strategy string, found bool, duration time.Duration, steps, visited, weight int) {
	outcome := "unreachable"
	if found {
		outcome = "found"
	}
	r.TraversalsTotal.WithLabelValues(strategy, outcome).Inc()
	r.TraversalDuration.WithLabelValues(strategy).Observe(duration.Seconds())
	r.TraversalSteps.WithLabelValues(strategy).Observe(float64(steps))
	r.TraversalVisitedNodes.WithLabelValues(strategy).Observe(float64(visited))
	if found {
		r.TraversalPathWeight.WithLabelValues(strategy).Observe(float64(weight))
	}
}

// RecordRace records one completed race and its verdict
func (r *Registry) RecordRace(left, right, verdict string, duration time.Duration) {
	r.RacesTotal.WithLabelValues(left, right).Inc()
	r.RaceVerdicts.WithLabelValues(verdict).Inc()
	r.RaceDuration.Observe(duration.Seconds())
}
