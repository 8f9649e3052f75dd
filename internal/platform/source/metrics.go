package source

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles Prometheus collectors for upstream fetches and the
// per-source caches sitting in front of them.
type Metrics struct {
	Registry      *prometheus.Registry
	FetchesTotal  *prometheus.CounterVec
	FetchDuration prometheus.Histogram
	CacheReads    *prometheus.CounterVec
}

// NewMetrics constructs and registers all collectors on a dedicated registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	fetches := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "source_fetches_total",
			Help: "Upstream document fetches by outcome.",
		},
		[]string{"outcome"},
	)
	fetchDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "source_fetch_duration_seconds",
			Help:    "Latency of upstream document fetches.",
			Buckets: prometheus.DefBuckets,
		},
	)
	cacheReads := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "source_cache_reads_total",
			Help: "Cache reads by source and result.",
		},
		[]string{"source", "result"},
	)

	registry.MustRegister(fetches, fetchDuration, cacheReads)

	return &Metrics{
		Registry:      registry,
		FetchesTotal:  fetches,
		FetchDuration: fetchDuration,
		CacheReads:    cacheReads,
	}
}

// IncFetch counts one upstream fetch with the given outcome label.
func (m *Metrics) IncFetch(outcome string) {
	if m == nil {
		return
	}
	m.FetchesTotal.WithLabelValues(outcome).Inc()
}

// ObserveFetchDuration records the latency of one upstream fetch.
func (m *Metrics) ObserveFetchDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.FetchDuration.Observe(d.Seconds())
}

// IncCacheRead counts one cache read for a source slot.
func (m *Metrics) IncCacheRead(source, result string) {
	if m == nil {
		return
	}
	m.CacheReads.WithLabelValues(source, result).Inc()
}
