// Package metrics exposes Prometheus instrumentation for the core engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus collectors for the application. A nil
// *Metrics is valid and records nothing, so the core can run uninstrumented.
type Metrics struct {
	CacheHits    *prometheus.CounterVec
	CacheMisses  *prometheus.CounterVec
	CacheErrors  prometheus.Counter
	ProbeResults *prometheus.CounterVec
	ChecksTotal  *prometheus.CounterVec
	BatchSize    prometheus.Histogram
}

// New creates and registers all collectors on the default registry.
func New() *Metrics {
	return NewWith(nil)
}

// NewWith creates collectors on the given registerer. A nil registerer uses
// the default registry.
func NewWith(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		CacheHits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "domainforge_cache_hits_total",
			Help: "Cache hits by namespace.",
		}, []string{"namespace"}),
		CacheMisses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "domainforge_cache_misses_total",
			Help: "Cache misses by namespace, including degraded-mode misses.",
		}, []string{"namespace"}),
		CacheErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "domainforge_cache_errors_total",
			Help: "Cache backend errors swallowed by the pass-through policy.",
		}),
		ProbeResults: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "domainforge_probe_results_total",
			Help: "Probe outcomes by probe type and outcome.",
		}, []string{"probe", "outcome"}),
		ChecksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "domainforge_checks_total",
			Help: "Completed availability checks by resolution method.",
		}, []string{"method"}),
		BatchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "domainforge_batch_candidates",
			Help:    "Number of candidates per resolved batch.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 8),
		}),
	}
}

// RecordCacheHit counts a cache hit in the given namespace.
func (m *Metrics) RecordCacheHit(namespace string) {
	if m == nil {
		return
	}
	m.CacheHits.WithLabelValues(namespace).Inc()
}

// RecordCacheMiss counts a cache miss in the given namespace.
func (m *Metrics) RecordCacheMiss(namespace string) {
	if m == nil {
		return
	}
	m.CacheMisses.WithLabelValues(namespace).Inc()
}

// RecordCacheError counts a swallowed cache backend error.
func (m *Metrics) RecordCacheError() {
	if m == nil {
		return
	}
	m.CacheErrors.Inc()
}

// RecordProbe counts a probe outcome.
func (m *Metrics) RecordProbe(probe, outcome string) {
	if m == nil {
		return
	}
	m.ProbeResults.WithLabelValues(probe, outcome).Inc()
}

// RecordCheck counts a completed availability check.
func (m *Metrics) RecordCheck(method string) {
	if m == nil {
		return
	}
	m.ChecksTotal.WithLabelValues(method).Inc()
}

// RecordBatch observes the size of a resolved batch.
func (m *Metrics) RecordBatch(size int) {
	if m == nil {
		return
	}
	m.BatchSize.Observe(float64(size))
}
