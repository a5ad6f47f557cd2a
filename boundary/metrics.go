package boundary

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	directionSend    = "send"
	directionReceive = "receive"
)

// metrics counts boundary traffic. A nil registerer leaves the collectors
// unregistered but still usable.
type metrics struct {
	calls      *prometheus.CounterVec
	bytes      *prometheus.CounterVec
	violations *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bridge",
			Subsystem: "boundary",
			Name:      "calls_total",
			Help:      "Calls made across the boundary, by function.",
		}, []string{"function"}),
		bytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bridge",
			Subsystem: "boundary",
			Name:      "bytes_total",
			Help:      "Encoded buffer bytes moved across the boundary, by direction.",
		}, []string{"direction"}),
		violations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bridge",
			Subsystem: "boundary",
			Name:      "violations_total",
			Help:      "Codec contract violations raised by host functions, by kind.",
		}, []string{"kind"}),
	}
	if reg != nil {
		m.calls = register(reg, m.calls)
		m.bytes = register(reg, m.bytes)
		m.violations = register(reg, m.violations)
	}
	return m
}

// register registers c, reusing an identical collector that is already
// registered so several endpoints can share one registry.
func register(reg prometheus.Registerer, c *prometheus.CounterVec) *prometheus.CounterVec {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.CounterVec)
		}
		reg.MustRegister(c) // panics on anything but AlreadyRegisteredError
	}
	return c
}

func (m *metrics) call(function string, sent int) {
	m.calls.WithLabelValues(function).Inc()
	m.bytes.WithLabelValues(directionSend).Add(float64(sent))
}

func (m *metrics) received(n int) {
	m.bytes.WithLabelValues(directionReceive).Add(float64(n))
}

func (m *metrics) violation(kind string) {
	m.violations.WithLabelValues(kind).Inc()
}
