package recommend

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendationsServedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_served_total",
			Help: "Count of recommendation responses by pipeline mode.",
		},
		[]string{"mode"},
	)

	ScoringFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "scoring_failures_total",
			Help: "Records that fell back to the neutral score after a scoring failure.",
		},
	)

	EmptyResultsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendations_empty_total",
			Help: "Requests where no catalog record survived filtering.",
		},
	)
)

func init() {
	prometheus.MustRegister(RecommendationsServedTotal, ScoringFailuresTotal, EmptyResultsTotal)
}
