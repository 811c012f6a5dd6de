package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for selector compilation.
type Metrics struct {
	CompileLatency *prometheus.HistogramVec
	FilterSize     *prometheus.HistogramVec
}

// New creates the selector metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		CompileLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "landscape_selector_compile_duration_seconds",
			Help:    "Duration of selector compilation by root kind and breadth",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"kind", "breadth"}),

		FilterSize: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "landscape_selector_filter_size",
			Help:    "Number of ids in compiled filters",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"kind", "breadth"}),
	}
}

// ObserveCompile records one compilation.
func (m *Metrics) ObserveCompile(kind, breadth string, size int, d time.Duration) {
	if m != nil {
		m.CompileLatency.WithLabelValues(kind, breadth).Observe(d.Seconds())
		m.FilterSize.WithLabelValues(kind, breadth).Observe(float64(size))
	}
}
