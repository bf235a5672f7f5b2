package metrics

import "github.com/prometheus/client_golang/prometheus"

// BackendMetrics counts and times calls to the parlor backend.
type BackendMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func NewBackendMetrics(reg prometheus.Registerer) *BackendMetrics {
	m := &BackendMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tattooparlor",
			Subsystem: "backend",
			Name:      "requests_total",
			Help:      "Total requests sent to the parlor backend",
		}, []string{"resource", "method", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tattooparlor",
			Subsystem: "backend",
			Name:      "request_duration_seconds",
			Help:      "Latency of parlor backend requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"resource", "method"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.requestDuration)
	return m
}

// ObserveRequest records one backend call. status is the HTTP code as text,
// or "error" when no response was received.
func (m *BackendMetrics) ObserveRequest(resource, method, status string, seconds float64) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(resource, method, status).Inc()
	m.requestDuration.WithLabelValues(resource, method).Observe(seconds)
}

// LiveMetrics tracks the websocket hub.
type LiveMetrics struct {
	connections prometheus.Gauge
	searches    *prometheus.CounterVec
	events      *prometheus.CounterVec
}

func NewLiveMetrics(reg prometheus.Registerer) *LiveMetrics {
	m := &LiveMetrics{
		connections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tattooparlor",
			Subsystem: "live",
			Name:      "connections",
			Help:      "Open websocket connections",
		}),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tattooparlor",
			Subsystem: "live",
			Name:      "searches_total",
			Help:      "Debounced searches by outcome",
		}, []string{"resource", "outcome"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tattooparlor",
			Subsystem: "live",
			Name:      "events_total",
			Help:      "Booking change events broadcast",
		}, []string{"kind", "action"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.connections, m.searches, m.events)
	return m
}

func (m *LiveMetrics) ConnectionOpened() {
	if m == nil {
		return
	}
	m.connections.Inc()
}

func (m *LiveMetrics) ConnectionClosed() {
	if m == nil {
		return
	}
	m.connections.Dec()
}

func (m *LiveMetrics) ObserveSearch(resource, outcome string) {
	if m == nil {
		return
	}
	m.searches.WithLabelValues(resource, outcome).Inc()
}

func (m *LiveMetrics) ObserveEvent(kind, action string) {
	if m == nil {
		return
	}
	m.events.WithLabelValues(kind, action).Inc()
}
