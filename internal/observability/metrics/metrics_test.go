package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestBackendMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBackendMetrics(reg)
	m.ObserveRequest("artists", "GET", "200", 0.05)
	m.ObserveRequest("artists", "GET", "200", 0.07)
	m.ObserveRequest("bookings", "POST", "error", 1.2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("artists", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("bookings", "POST", "error")))
}

func TestLiveMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewLiveMetrics(reg)
	m.ConnectionOpened()
	m.ConnectionOpened()
	m.ConnectionClosed()
	m.ObserveSearch("artists", "delivered")
	m.ObserveEvent("booking", "created")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.connections))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues("artists", "delivered")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.events.WithLabelValues("booking", "created")))
}

func TestMetricsNilSafe(t *testing.T) {
	var b *BackendMetrics
	b.ObserveRequest("artists", "GET", "200", 0.1)

	var l *LiveMetrics
	l.ConnectionOpened()
	l.ConnectionClosed()
	l.ObserveSearch("gallery", "stale")
	l.ObserveEvent("piercing", "deleted")
}
