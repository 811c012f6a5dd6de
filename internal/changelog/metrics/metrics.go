package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the change log.
type Metrics struct {
	EntriesWritten  *prometheus.CounterVec
	PublishFailures prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		EntriesWritten: f.NewCounterVec(prometheus.CounterOpts{
			Name: "landscape_change_log_entries_total",
			Help: "Change log entries written by parent kind",
		}, []string{"parent_kind"}),
		PublishFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "landscape_change_log_publish_failures_total",
			Help: "Change log entries that could not be published downstream",
		}),
	}
}

func (m *Metrics) IncrementWritten(parentKind string) {
	if m != nil {
		m.EntriesWritten.WithLabelValues(parentKind).Inc()
	}
}

func (m *Metrics) IncrementPublishFailures() {
	if m != nil {
		m.PublishFailures.Inc()
	}
}
