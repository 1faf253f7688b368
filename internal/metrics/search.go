package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search engine Prometheus metrics.
var (
	SearchQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "minutesearch",
			Name:      "search_queries_total",
			Help:      "Total number of executed search queries",
		},
		[]string{"sort_by"},
	)

	SearchQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "minutesearch",
			Name:      "search_query_duration_seconds",
			Help:      "Search query execution time in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"sort_by"},
	)

	SearchResultCount = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "minutesearch",
			Name:      "search_result_count",
			Help:      "Pre-pagination result count per query",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchQueriesTotal)
	prometheus.MustRegister(SearchQueryDuration)
	prometheus.MustRegister(SearchResultCount)
	searchMetricsRegistered = true
}
