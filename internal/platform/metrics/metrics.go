package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the HTTP level Prometheus metrics.
type Metrics struct {
	RequestDuration *prometheus.HistogramVec
	RateLimited     *prometheus.CounterVec
	Panics          prometheus.Counter
}

// New creates and registers the HTTP metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "landscape_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method, route pattern and status",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route", "status"}),

		RateLimited: f.NewCounterVec(prometheus.CounterOpts{
			Name: "landscape_http_rate_limited_total",
			Help: "Requests rejected by the write rate limiter",
		}, []string{"route"}),

		Panics: f.NewCounter(prometheus.CounterOpts{
			Name: "landscape_http_panics_total",
			Help: "Handler panics recovered by middleware",
		}),
	}
}

// ObserveRequest records the duration of a completed request.
func (m *Metrics) ObserveRequest(method, route, status string, d time.Duration) {
	if m != nil {
		m.RequestDuration.WithLabelValues(method, route, status).Observe(d.Seconds())
	}
}

// IncrementRateLimited records a rejected request.
func (m *Metrics) IncrementRateLimited(route string) {
	if m != nil {
		m.RateLimited.WithLabelValues(route).Inc()
	}
}

// IncrementPanics records a recovered panic.
func (m *Metrics) IncrementPanics() {
	if m != nil {
		m.Panics.Inc()
	}
}
