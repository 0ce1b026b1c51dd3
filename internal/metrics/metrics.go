package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder receives one observation per mock API call.
type Recorder interface {
	RecordCall(operation string, status string, latency time.Duration)
}

// NoOpRecorder is used when metrics are not wired.
type NoOpRecorder struct{}

// RecordCall does nothing.
func (NoOpRecorder) RecordCall(operation string, status string, latency time.Duration) {}

// PrometheusRecorder exports mock API call counts and simulated latency.
type PrometheusRecorder struct {
	calls   *prometheus.CounterVec
	latency *prometheus.HistogramVec
}

// NewPrometheusRecorder creates the collectors and registers them with reg.
func NewPrometheusRecorder(namespace string, reg prometheus.Registerer) (*PrometheusRecorder, error) {
	pr := &PrometheusRecorder{
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "mock_api_calls_total",
				Help:      "Total number of mock API calls per operation and envelope status",
			},
			[]string{"operation", "status"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "mock_api_latency_seconds",
				Help:      "Simulated latency of mock API calls",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 0.75, 1, 2},
			},
			[]string{"operation"},
		),
	}

	for _, c := range []prometheus.Collector{pr.calls, pr.latency} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return pr, nil
}

func (p *PrometheusRecorder) RecordCall(operation string, status string, latency time.Duration) {
	p.calls.WithLabelValues(operation, status).Inc()
	p.latency.WithLabelValues(operation).Observe(latency.Seconds())
}
