package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of narrative backend calls, by call kind
	NarrativeLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "narrative_latency_seconds",
		Help:    "Latency of narrative generation calls",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind"})

	// Calls that degraded to fallback text, by call kind
	NarrativeFallbacksTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "narrative_fallbacks_total",
		Help: "Narrative calls that returned fallback text",
	}, []string{"kind"})
)
