// Package metrics provides the Prometheus collectors for battles and the
// data provider.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultNamespace prefixes every collector
const DefaultNamespace = "gym_battle"

// BattleBuckets covers battles from a few seconds to several minutes
var BattleBuckets = []float64{5, 15, 30, 60, 120, 300, 600}

// DamageBuckets covers single-hit damage against a 100 HP pool
var DamageBuckets = []float64{1, 5, 10, 20, 35, 50, 75, 100}

// BattleMetrics collects battle lifecycle and action counters.
// A nil *BattleMetrics records nothing.
type BattleMetrics struct {
	BattlesStarted prometheus.Counter
	BattlesEnded   *prometheus.CounterVec
	BattlesActive  prometheus.Gauge
	BattleDuration prometheus.Histogram
	Actions        *prometheus.CounterVec
	Damage         prometheus.Histogram
}

// NewBattleMetrics registers battle collectors with registerer
func NewBattleMetrics(namespace string, registerer prometheus.Registerer) *BattleMetrics {
	factory := promauto.With(registerer)

	return &BattleMetrics{
		BattlesStarted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "battle",
			Name:      "started_total",
			Help:      "Total number of battles started",
		}),
		BattlesEnded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "battle",
			Name:      "ended_total",
			Help:      "Total number of battles ended by winner (player/ai/abandoned)",
		}, []string{"winner"}),
		BattlesActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "battle",
			Name:      "active",
			Help:      "Battles currently held in memory",
		}),
		BattleDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "battle",
			Name:      "duration_seconds",
			Help:      "Wall time from battle start to the terminal phase",
			Buckets:   BattleBuckets,
		}),
		Actions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "battle",
			Name:      "actions_total",
			Help:      "Resolved actions by side, action and outcome",
		}, []string{"side", "action", "outcome"}),
		Damage: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "battle",
			Name:      "damage",
			Help:      "HP removed per landed attack",
			Buckets:   DamageBuckets,
		}),
	}
}

// BattleStarted records a new battle
func (m *BattleMetrics) BattleStarted() {
	if m == nil {
		return
	}
	m.BattlesStarted.Inc()
	m.BattlesActive.Inc()
}

// BattleEnded records a battle leaving memory. A zero duration skips the histogram.
func (m *BattleMetrics) BattleEnded(winner string, duration time.Duration) {
	if m == nil {
		return
	}
	m.BattlesEnded.WithLabelValues(winner).Inc()
	m.BattlesActive.Dec()
	if duration > 0 {
		m.BattleDuration.Observe(duration.Seconds())
	}
}

// ActionResolved records one resolved action
func (m *BattleMetrics) ActionResolved(side, action, outcome string) {
	if m == nil {
		return
	}
	m.Actions.WithLabelValues(side, action, outcome).Inc()
}

// DamageDealt records HP removed by a landed attack
func (m *BattleMetrics) DamageDealt(damage int) {
	if m == nil {
		return
	}
	m.Damage.Observe(float64(damage))
}
