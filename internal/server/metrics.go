package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the generate endpoint.
type Metrics struct {
	// Generate outcomes by result ("ok", "invalid_order", "bad_request", "internal_error")
	GenerateOutcome *prometheus.CounterVec

	// Synthesis latency by order
	GenerateLatency *prometheus.HistogramVec
}

// NewMetrics registers the server metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		GenerateOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "loshu_generate_requests_total",
			Help: "Total generate requests by outcome",
		}, []string{"outcome"}),

		GenerateLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "loshu_generate_duration_seconds",
			Help:    "Duration of square synthesis by order",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"order"}),
	}
}

// IncrementOutcome records a request outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.GenerateOutcome.WithLabelValues(outcome).Inc()
	}
}

// ObserveGenerateLatency records how long one synthesis took.
func (m *Metrics) ObserveGenerateLatency(order string, d time.Duration) {
	if m != nil {
		m.GenerateLatency.WithLabelValues(order).Observe(d.Seconds())
	}
}
