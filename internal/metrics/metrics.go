// Package metrics holds the service's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestsTotal counts HTTP requests by endpoint and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "riskmap_http_requests_total",
		Help: "HTTP requests served, by endpoint and status code.",
	}, []string{"endpoint", "status"})

	// ComputeDuration observes full pipeline runs.
	ComputeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "riskmap_compute_duration_seconds",
		Help:    "Time spent computing a full view set.",
		Buckets: prometheus.DefBuckets,
	})

	// RowsLoaded reports the size of the loaded incident table.
	RowsLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "riskmap_incident_rows_loaded",
		Help: "Incident rows in the current dataset snapshot.",
	})

	// CacheHits counts view-cache hits.
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "riskmap_view_cache_hits_total",
		Help: "View cache hits.",
	})

	// CacheMisses counts view-cache misses.
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "riskmap_view_cache_misses_total",
		Help: "View cache misses.",
	})
)

// Handler exposes the default registry for /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
