package airmash

import (
	"errors"

	"github.com/gstoney/airmash/packet"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts the traffic going through transports. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	packets  *prometheus.CounterVec
	bytes    *prometheus.CounterVec
	errors   *prometheus.CounterVec
	sessions prometheus.Gauge
}

// NewMetrics registers the airmash collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		packets: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "airmash",
			Name:      "packets_total",
			Help:      "Packets transferred, by direction and packet name.",
		}, []string{"direction", "packet"}),

		bytes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "airmash",
			Name:      "bytes_total",
			Help:      "Packet bytes transferred, by direction.",
		}, []string{"direction"}),

		errors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "airmash",
			Name:      "codec_errors_total",
			Help:      "Packets that failed to encode or decode, by error kind.",
		}, []string{"direction", "kind"}),

		sessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "airmash",
			Name:      "active_sessions",
			Help:      "Websocket sessions currently open.",
		}),
	}
}

func (m *Metrics) packet(dir Direction, p packet.Packet, n int) {
	if m == nil {
		return
	}
	m.packets.WithLabelValues(dir.String(), packet.Name(p)).Inc()
	m.bytes.WithLabelValues(dir.String()).Add(float64(n))
}

func (m *Metrics) codecError(dir Direction, err error) {
	if m == nil {
		return
	}
	kind := "other"
	var e *packet.Error
	if errors.As(err, &e) {
		kind = e.Kind.String()
	}
	m.errors.WithLabelValues(dir.String(), kind).Inc()
}

func (m *Metrics) sessionOpened() {
	if m != nil {
		m.sessions.Inc()
	}
}

func (m *Metrics) sessionClosed() {
	if m != nil {
		m.sessions.Dec()
	}
}
