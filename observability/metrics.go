// Package observability wires Prometheus metrics and OpenTelemetry
// tracing around the connection, frame, and parser lifecycle.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is the set of counters and the gauge recorded as
// connections are accepted, frames move, and command lines are
// parsed. A nil *Metrics is valid everywhere it's used: every method
// below is a no-op on a nil receiver, so callers that don't want
// metrics can simply not construct one.
type Metrics struct {
	connectionsTotal  *prometheus.CounterVec
	connectionsActive prometheus.Gauge
	framesTotal       *prometheus.CounterVec
	frameBytesTotal   *prometheus.CounterVec
	parseOutcomes     *prometheus.CounterVec
}

// NewMetrics registers the console's metrics on reg. Pass
// prometheus.DefaultRegisterer for the global registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		connectionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "appconsole",
			Name:      "connections_total",
			Help:      "Connections accepted or dialed, by role and outcome.",
		}, []string{"role", "outcome"}),
		connectionsActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "appconsole",
			Name:      "connections_active",
			Help:      "Connections currently established.",
		}),
		framesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "appconsole",
			Name:      "frames_total",
			Help:      "Frames sent or received, by direction and message type.",
		}, []string{"direction", "messageType"}),
		frameBytesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "appconsole",
			Name:      "frame_bytes_total",
			Help:      "Payload bytes sent or received, by direction.",
		}, []string{"direction"}),
		parseOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "appconsole",
			Name:      "parse_outcomes_total",
			Help:      "Command-line parse outcomes, by error kind (empty for success).",
		}, []string{"kind"}),
	}
}

func (m *Metrics) RecordConnection(role, outcome string) {
	if m == nil {
		return
	}
	m.connectionsTotal.WithLabelValues(role, outcome).Inc()
}

func (m *Metrics) ConnectionOpened() {
	if m == nil {
		return
	}
	m.connectionsActive.Inc()
}

func (m *Metrics) ConnectionClosed() {
	if m == nil {
		return
	}
	m.connectionsActive.Dec()
}

func (m *Metrics) RecordFrame(direction, messageType string, payloadBytes int) {
	if m == nil {
		return
	}
	m.framesTotal.WithLabelValues(direction, messageType).Inc()
	m.frameBytesTotal.WithLabelValues(direction).Add(float64(payloadBytes))
}

func (m *Metrics) RecordParseOutcome(kind string) {
	if m == nil {
		return
	}
	m.parseOutcomes.WithLabelValues(kind).Inc()
}
