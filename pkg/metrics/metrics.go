// Package metrics exposes Prometheus collectors for the HTTP surface.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector registers and records the service's request metrics on its own
// registry, keeping the default registry out of the picture.
type Collector struct {
	registry *prometheus.Registry

	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
}

// New creates a collector under the given namespace.
func New(namespace string) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Number of HTTP requests handled, by method, route, and status.",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency, by method and route.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		requestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_in_flight",
				Help:      "Number of HTTP requests currently being served.",
			},
		),
	}

	c.registry.MustRegister(c.requestsTotal, c.requestDuration, c.requestsInFlight)
	return c
}

// RecordRequest counts one finished request and observes its latency.
func (c *Collector) RecordRequest(method, route, status string, duration time.Duration) {
	c.requestsTotal.WithLabelValues(method, route, status).Inc()
	c.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// IncInFlight marks a request as started.
func (c *Collector) IncInFlight() { c.requestsInFlight.Inc() }

// DecInFlight marks a request as finished.
func (c *Collector) DecInFlight() { c.requestsInFlight.Dec() }

// Handler serves the collected metrics in Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
