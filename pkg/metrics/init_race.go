package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initRaceMetrics() {
	r.RacesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathrace_races_total",
			Help: "Total number of races by strategy pairing",
		},
		[]string{"left", "right"},
	)

	r.RaceVerdicts = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathrace_race_verdicts_total",
			Help: "Race verdict counts",
		},
		[]string{"verdict"},
	)

	r.RaceDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pathrace_race_duration_seconds",
			Help:    "Race latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
}
