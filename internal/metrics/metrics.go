// Package metrics defines the Prometheus collectors for the collector
// process. The Metrics struct is injected into components that record
// observations; nothing registers against a global by accident.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus collectors for the application.
type Metrics struct {
	cyclesTotal      *prometheus.CounterVec
	newOrdersTotal   prometheus.Counter
	insertsTotal     *prometheus.CounterVec
	missedWarnsTotal prometheus.Counter
	fetchDuration    prometheus.Histogram
	baselineSize     prometheus.Gauge
}

// New creates a Metrics instance and registers all collectors.
// If registry is nil, prometheus.DefaultRegisterer is used.
func New(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(registry)

	return &Metrics{
		cyclesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orderwatch_cycles_total",
				Help: "Total number of poll cycles by outcome",
			},
			[]string{"outcome"},
		),
		newOrdersTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "orderwatch_new_orders_total",
				Help: "Total number of orders observed as new",
			},
		),
		insertsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orderwatch_inserts_total",
				Help: "Total number of order insert attempts by status",
			},
			[]string{"status"},
		),
		missedWarnsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "orderwatch_missed_order_warnings_total",
				Help: "Times an entire batch was new, suggesting orders were missed between cycles",
			},
		),
		fetchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "orderwatch_fetch_duration_seconds",
				Help:    "Duration of upstream fetches in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
			},
		),
		baselineSize: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "orderwatch_baseline_size",
				Help: "Number of orders in the current baseline set",
			},
		),
	}
}

// RecordCycle records the outcome of one poll cycle ("ok" or "error").
func (m *Metrics) RecordCycle(outcome string) {
	if m == nil {
		return
	}
	m.cyclesTotal.WithLabelValues(outcome).Inc()
}

// RecordNewOrders records how many new orders a cycle produced.
func (m *Metrics) RecordNewOrders(n int) {
	if m == nil {
		return
	}
	m.newOrdersTotal.Add(float64(n))
}

// RecordInsert records one insert attempt ("ok" or "error").
func (m *Metrics) RecordInsert(status string) {
	if m == nil {
		return
	}
	m.insertsTotal.WithLabelValues(status).Inc()
}

// RecordMissedWarning records one full-replacement anomaly warning.
func (m *Metrics) RecordMissedWarning() {
	if m == nil {
		return
	}
	m.missedWarnsTotal.Inc()
}

// RecordFetchDuration records how long an upstream fetch took.
func (m *Metrics) RecordFetchDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.fetchDuration.Observe(d.Seconds())
}

// SetBaselineSize records the size of the baseline after a cycle.
func (m *Metrics) SetBaselineSize(n int) {
	if m == nil {
		return
	}
	m.baselineSize.Set(float64(n))
}
