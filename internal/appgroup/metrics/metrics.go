package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for application group membership.
type Metrics struct {
	EntriesChanged  *prometheus.CounterVec
	RemovalsSkipped *prometheus.CounterVec
	AddFailures     *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		EntriesChanged: f.NewCounterVec(prometheus.CounterOpts{
			Name: "landscape_app_group_entries_changed_total",
			Help: "Group entries added or removed by member kind and operation",
		}, []string{"member_kind", "operation"}),
		RemovalsSkipped: f.NewCounterVec(prometheus.CounterOpts{
			Name: "landscape_app_group_removals_skipped_total",
			Help: "Requested removals that deleted nothing, either read-only or absent",
		}, []string{"member_kind"}),
		AddFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "landscape_app_group_add_failures_total",
			Help: "Batch add entries that failed",
		}, []string{"member_kind"}),
	}
}

func (m *Metrics) AddChanged(memberKind, operation string, n int) {
	if m != nil && n > 0 {
		m.EntriesChanged.WithLabelValues(memberKind, operation).Add(float64(n))
	}
}

func (m *Metrics) AddRemovalsSkipped(memberKind string, n int) {
	if m != nil && n > 0 {
		m.RemovalsSkipped.WithLabelValues(memberKind).Add(float64(n))
	}
}

func (m *Metrics) IncrementAddFailures(memberKind string) {
	if m != nil {
		m.AddFailures.WithLabelValues(memberKind).Inc()
	}
}
