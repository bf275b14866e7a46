// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "foodorder"

// Sweep outcomes.
const (
	OutcomeApplied = "applied"
	OutcomeSkipped = "skipped"
	OutcomeFailed  = "failed"
)

type Metrics struct {
	registry *prometheus.Registry

	sweepRuns     *prometheus.CounterVec
	sweepOrders   *prometheus.CounterVec
	notifications *prometheus.CounterVec
	sessions      prometheus.Gauge
}

// New registers all collectors, including the Go and process collectors, on a
// dedicated registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		sweepRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_runs_total",
			Help:      "Reaper sweep executions by sweep and result.",
		}, []string{"sweep", "result"}),
		sweepOrders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_orders_total",
			Help:      "Orders handled by reaper sweeps by outcome.",
		}, []string{"sweep", "outcome"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Staff notification deliveries per session by outcome.",
		}, []string{"type", "outcome"}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "staff_sessions",
			Help:      "Currently connected staff sessions.",
		}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.sweepRuns,
		m.sweepOrders,
		m.notifications,
		m.sessions,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// SweepFinished records one sweep run. A run that failed before processing
// candidates is reported with err set and zero counts.
func (m *Metrics) SweepFinished(sweep string, applied, skipped, failed int, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.sweepRuns.WithLabelValues(sweep, result).Inc()
	m.sweepOrders.WithLabelValues(sweep, OutcomeApplied).Add(float64(applied))
	m.sweepOrders.WithLabelValues(sweep, OutcomeSkipped).Add(float64(skipped))
	m.sweepOrders.WithLabelValues(sweep, OutcomeFailed).Add(float64(failed))
}

func (m *Metrics) NotificationDelivered(kind string) {
	m.notifications.WithLabelValues(kind, "delivered").Inc()
}

func (m *Metrics) NotificationDropped(kind string) {
	m.notifications.WithLabelValues(kind, "dropped").Inc()
}

func (m *Metrics) SessionOpened() { m.sessions.Inc() }
func (m *Metrics) SessionClosed() { m.sessions.Dec() }
