package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Retrieval metrics, labelled by method.
var (
	SearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Duration of one retrieval method run, embeddings included",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method"},
	)

	SearchResults = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_results",
			Help:      "Number of results returned per method run",
			Buckets:   prometheus.LinearBuckets(0, 1, 11),
		},
		[]string{"method"},
	)

	SearchFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_failures_total",
			Help:      "Retrieval method runs that failed",
		},
		[]string{"method"},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers retrieval metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchDuration, SearchResults, SearchFailuresTotal)
	searchMetricsRegistered = true
}

// ObserveSearch records a completed method run.
func ObserveSearch(method string, elapsed time.Duration, results int) {
	SearchDuration.WithLabelValues(method).Observe(elapsed.Seconds())
	SearchResults.WithLabelValues(method).Observe(float64(results))
}
