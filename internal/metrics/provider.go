package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cache layers
const (
	LayerMemory = "memory"
	LayerRedis  = "redis"
)

// ProviderMetrics collects data provider cache and request metrics.
// A nil *ProviderMetrics records nothing.
type ProviderMetrics struct {
	CacheLookups    *prometheus.CounterVec
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewProviderMetrics registers provider collectors with registerer
func NewProviderMetrics(namespace string, registerer prometheus.Registerer) *ProviderMetrics {
	factory := promauto.With(registerer)

	return &ProviderMetrics{
		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pokeapi",
			Name:      "cache_lookups_total",
			Help:      "Record cache lookups by kind, layer and result (hit/miss)",
		}, []string{"kind", "layer", "result"}),
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pokeapi",
			Name:      "requests_total",
			Help:      "HTTP requests to the data provider by kind and status",
		}, []string{"kind", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pokeapi",
			Name:      "request_duration_seconds",
			Help:      "Data provider request latency including retries",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
	}
}

// CacheHit records a cache hit
func (m *ProviderMetrics) CacheHit(kind, layer string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(kind, layer, "hit").Inc()
}

// CacheMiss records a cache miss
func (m *ProviderMetrics) CacheMiss(kind, layer string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(kind, layer, "miss").Inc()
}

// RequestCompleted records one logical fetch, retries included
func (m *ProviderMetrics) RequestCompleted(kind, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(kind, status).Inc()
	m.RequestDuration.WithLabelValues(kind).Observe(duration.Seconds())
}
