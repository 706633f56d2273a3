// Package monitoring exposes prometheus metrics for the shell backend:
// HTTP traffic, dispatch calls, and kernel launch outcomes.
package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Launch outcome label values.
const (
	OutcomeSpawned = "spawned"
	OutcomeFailed  = "spawn_failed"
)

// Metrics holds all prometheus metrics. Each instance owns its registry so
// tests can build throwaway collectors without collisions.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Dispatch metrics
	ServiceCalls *prometheus.CounterVec

	// Kernel launch metrics. Counters only: the supervisor keeps no process
	// references, so there is nothing to gauge.
	LaunchAttempts prometheus.Counter
	LaunchResults  *prometheus.CounterVec

	Uptime    prometheus.GaugeFunc
	startTime time.Time
}

// NewMetrics creates a new metrics collector with its own registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	m := &Metrics{
		registry:  registry,
		startTime: time.Now(),

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shell_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "shell_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),
		ServiceCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shell_service_calls_total",
				Help: "Total number of dispatched tool calls",
			},
			[]string{"service", "tool", "status"},
		),
		LaunchAttempts: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "shell_kernel_launch_attempts_total",
				Help: "Total number of kernel launch attempts",
			},
		),
		LaunchResults: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shell_kernel_launch_results_total",
				Help: "Kernel launch outcomes by result",
			},
			[]string{"outcome"},
		),
	}

	m.Uptime = factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "shell_uptime_seconds",
			Help: "Backend uptime in seconds",
		},
		func() float64 { return time.Since(m.startTime).Seconds() },
	)

	return m
}

// RecordHTTPRequest records one completed HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordServiceCall records one dispatched tool call.
func (m *Metrics) RecordServiceCall(service, tool, status string) {
	m.ServiceCalls.WithLabelValues(service, tool, status).Inc()
}

// RecordLaunch records one kernel launch attempt and its outcome.
func (m *Metrics) RecordLaunch(outcome string) {
	m.LaunchAttempts.Inc()
	m.LaunchResults.WithLabelValues(outcome).Inc()
}

// Handler returns the prometheus exposition handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
