// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "monopoly_sim"

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	ComputationsTotal  *prometheus.CounterVec
	ComputeDuration    *prometheus.HistogramVec
	SweepStepsTotal    prometheus.Counter
	RequestErrorsTotal *prometheus.CounterVec
	LiveSessions       prometheus.Gauge
	LiveMessagesTotal  prometheus.Counter

	gatherer prometheus.Gatherer
}

// NewMetrics registers every metric on reg. Pass a fresh registry in tests so
// repeated construction does not collide with the default one.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		ComputationsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "model",
			Name:      "computations_total",
			Help:      "Total number of outcome computations by monopoly mode",
		}, []string{"mode"}),
		ComputeDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "model",
			Name:      "compute_duration_seconds",
			Help:      "Time to compute outcomes including curve sampling",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		}, []string{"mode"}),
		SweepStepsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sweep",
			Name:      "steps_total",
			Help:      "Total number of sweep steps computed",
		}),
		RequestErrorsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "request_errors_total",
			Help:      "Total number of rejected requests by error code",
		}, []string{"code"}),
		LiveSessions: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "live",
			Name:      "sessions",
			Help:      "Number of open live recompute sessions",
		}),
		LiveMessagesTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "live",
			Name:      "messages_total",
			Help:      "Total number of parameter snapshots received over live sessions",
		}),
		gatherer: reg,
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// The recorders below are no-ops on a nil *Metrics so callers can run without a registry.

func (m *Metrics) ObserveCompute(mode string, d time.Duration) {
	if m == nil {
		return
	}
	m.ComputationsTotal.WithLabelValues(mode).Inc()
	m.ComputeDuration.WithLabelValues(mode).Observe(d.Seconds())
}

func (m *Metrics) ObserveSweep(steps int) {
	if m == nil {
		return
	}
	m.SweepStepsTotal.Add(float64(steps))
}

func (m *Metrics) RecordError(code string) {
	if m == nil {
		return
	}
	m.RequestErrorsTotal.WithLabelValues(code).Inc()
}

func (m *Metrics) LiveOpened() {
	if m == nil {
		return
	}
	m.LiveSessions.Inc()
}

func (m *Metrics) LiveClosed() {
	if m == nil {
		return
	}
	m.LiveSessions.Dec()
}

func (m *Metrics) LiveMessage() {
	if m == nil {
		return
	}
	m.LiveMessagesTotal.Inc()
}
