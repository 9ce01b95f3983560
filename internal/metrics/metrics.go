package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymfinder_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gymfinder_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymfinder_searches_total",
			Help: "Total number of gym searches",
		},
		[]string{"sort_by"},
	)

	SearchResultCount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gymfinder_search_result_count",
			Help:    "Number of gyms returned per search page",
			Buckets: []float64{0, 1, 5, 10, 20, 50, 100},
		},
	)

	CacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymfinder_cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"key"},
	)

	CacheMissesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymfinder_cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"key"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordSearch(sortBy string, results int) {
	SearchesTotal.WithLabelValues(sortBy).Inc()
	SearchResultCount.Observe(float64(results))
}

func RecordCacheHit(key string) {
	CacheHitsTotal.WithLabelValues(key).Inc()
}

func RecordCacheMiss(key string) {
	CacheMissesTotal.WithLabelValues(key).Inc()
}
