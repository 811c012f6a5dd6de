package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRecordOnOwnRegistry(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveRequest("GET", "/api/app/id/{id}", "200", 10*time.Millisecond)
	m.IncrementRateLimited("/api/app-group/{id}/applications")
	m.IncrementPanics()

	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))
	assert.InDelta(t, 1, testutil.ToFloat64(m.RateLimited.WithLabelValues("/api/app-group/{id}/applications")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Panics), 0)
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("GET", "/", "200", time.Second)
		m.IncrementRateLimited("/")
		m.IncrementPanics()
	})
}
