package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	searchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "recherche",
			Name:      "searches_total",
			Help:      "Total number of search executions by retrieval mode",
		},
		[]string{"mode"},
	)

	searchResults = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "recherche",
			Name:      "search_results",
			Help:      "Number of items returned per search page",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
		},
		[]string{"mode"},
	)
)

func init() {
	prometheus.MustRegister(searchesTotal)
	prometheus.MustRegister(searchResults)
}

// RecordSearch counts one search execution and its page size.
func RecordSearch(mode string, resultCount int) {
	searchesTotal.WithLabelValues(mode).Inc()
	searchResults.WithLabelValues(mode).Observe(float64(resultCount))
}
