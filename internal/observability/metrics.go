package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/five82/clockwall/internal/state"
)

// Metrics holds the Prometheus collectors for the clock wall.
type Metrics struct {
	Clocks         prometheus.Gauge
	Editing        prometheus.Gauge
	Ticks          prometheus.Counter
	RecordsChanged prometheus.Counter
	Operations     *prometheus.CounterVec // labels: op={add,update,delete,adjust,reset,preset}
}

func newMetrics() *Metrics {
	return &Metrics{
		Clocks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "clockwall",
			Name:      "clocks",
			Help:      "Number of clocks currently managed.",
		}),
		Editing: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "clockwall",
			Name:      "editing",
			Help:      "1 while a clock is open in the edit form, 0 otherwise.",
		}),
		Ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "clockwall",
			Name:      "ticks_total",
			Help:      "Timer ticks delivered to the clock wall.",
		}),
		RecordsChanged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "clockwall",
			Name:      "records_changed_total",
			Help:      "Record snapshots published by the store.",
		}),
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clockwall",
			Name:      "operations_total",
			Help:      "User-initiated clock operations by kind.",
		}, []string{"op"}),
	}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.Clocks, m.Editing, m.Ticks, m.RecordsChanged, m.Operations)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, so tests can
// build as many as they like.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

// Observe subscribes the gauges to store changes. The returned function
// releases both subscriptions and must be called on teardown.
func (m *Metrics) Observe(store *state.Store) (release func()) {
	primed := false
	records := store.SubscribeRecords(func(recs []state.Record) {
		m.Clocks.Set(float64(len(recs)))
		if primed {
			m.RecordsChanged.Inc()
		}
		primed = true
	})
	editing := store.SubscribeEditing(func(target *state.Record) {
		if target == nil {
			m.Editing.Set(0)
			return
		}
		m.Editing.Set(1)
	})
	return func() {
		records.Unsubscribe()
		editing.Unsubscribe()
	}
}

// CountOperation records a user operation. A nil receiver is a no-op so
// callers can run without metrics.
func (m *Metrics) CountOperation(op string) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(op).Inc()
}

// CountTick records one timer tick. A nil receiver is a no-op.
func (m *Metrics) CountTick() {
	if m == nil {
		return
	}
	m.Ticks.Inc()
}
