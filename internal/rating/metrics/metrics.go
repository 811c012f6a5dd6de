package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for rating permission checks and writes.
type Metrics struct {
	PermissionChecks *prometheus.CounterVec
	RatingsChanged   *prometheus.CounterVec
	NoOpWrites       *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		PermissionChecks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "landscape_rating_permission_checks_total",
			Help: "Rating permission checks by outcome",
		}, []string{"outcome"}),
		RatingsChanged: f.NewCounterVec(prometheus.CounterOpts{
			Name: "landscape_ratings_changed_total",
			Help: "Measurable ratings written by operation",
		}, []string{"operation"}),
		NoOpWrites: f.NewCounterVec(prometheus.CounterOpts{
			Name: "landscape_rating_noop_writes_total",
			Help: "Rating writes that changed nothing, either read-only or absent",
		}, []string{"operation"}),
	}
}

func (m *Metrics) IncrementPermissionCheck(granted bool) {
	if m == nil {
		return
	}
	outcome := "denied"
	if granted {
		outcome = "granted"
	}
	m.PermissionChecks.WithLabelValues(outcome).Inc()
}

func (m *Metrics) AddChanged(operation string, n int) {
	if m == nil {
		return
	}
	if n > 0 {
		m.RatingsChanged.WithLabelValues(operation).Add(float64(n))
		return
	}
	m.NoOpWrites.WithLabelValues(operation).Inc()
}
