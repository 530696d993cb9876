// Package metrics exposes TaskKeeper's Prometheus metrics and the HTTP
// endpoint that serves them together with liveness and readiness probes.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Auth failure reasons.
const (
	ReasonMissingToken = "missing_token"
	ReasonInvalidToken = "invalid_token"
	ReasonUnknownUser  = "unknown_user"
)

// Metrics holds the request and authentication collectors. A nil *Metrics
// records nothing.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	AuthFailures    *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// It panics if a collector is already registered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "taskkeeper_grpc_requests_total",
				Help: "Total number of gRPC requests by method and status code",
			},
			[]string{"method", "code"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "taskkeeper_grpc_request_duration_seconds",
				Help:    "gRPC request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		AuthFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "taskkeeper_auth_failures_total",
				Help: "Rejected authenticated calls by reason",
			},
			[]string{"reason"},
		),
	}

	reg.MustRegister(m.RequestsTotal, m.RequestDuration, m.AuthFailures)
	return m
}

func (m *Metrics) ObserveRequest(method, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, code).Inc()
	m.RequestDuration.WithLabelValues(method).Observe(d.Seconds())
}

func (m *Metrics) AuthFailure(reason string) {
	if m == nil {
		return
	}
	m.AuthFailures.WithLabelValues(reason).Inc()
}
