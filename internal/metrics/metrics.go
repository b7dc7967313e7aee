// Package metrics defines the prometheus collectors of the custodian.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operation result labels.
const (
	ResultOK          = "ok"
	ResultNotFound    = "not_found"
	ResultRejected    = "rejected"
	ResultRateLimited = "rate_limited"
	ResultError       = "error"
)

// Metrics holds the custodian collectors and the registry they live in.
// A private registry keeps tests from colliding on the global one.
type Metrics struct {
	registry *prometheus.Registry

	OperationsTotal   *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	RateLimitedTotal  prometheus.Counter
	RecoverAttempts   prometheus.Histogram
}

// New creates and registers every collector, plus the Go runtime and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		OperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "keyplace_custodian_operations_total",
				Help: "Custodian operations by result",
			},
			[]string{"operation", "result"},
		),

		OperationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "keyplace_custodian_operation_duration_seconds",
				Help:    "Custodian operation latency",
				Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
			},
			[]string{"operation"},
		),

		RateLimitedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "keyplace_rate_limited_total",
				Help: "Authenticate and recover calls rejected by the rate limiter",
			},
		),

		RecoverAttempts: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "keyplace_custodian_recover_attempts",
				Help:    "Number of (label, auth key) attempts per recover call",
				Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
			},
		),
	}
}

// Observe records one finished operation. A nil *Metrics is a no-op.
func (m *Metrics) Observe(operation, result string, started time.Time) {
	if m == nil {
		return
	}
	m.OperationsTotal.WithLabelValues(operation, result).Inc()
	m.OperationDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
	if result == ResultRateLimited {
		m.RateLimitedTotal.Inc()
	}
}

// ObserveRecoverAttempts records the size of one recover request.
func (m *Metrics) ObserveRecoverAttempts(n int) {
	if m == nil {
		return
	}
	m.RecoverAttempts.Observe(float64(n))
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
