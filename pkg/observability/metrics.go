package observability

import (
	"context"
	"net/http"

	"github.com/aretw0/algotrace/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the trace collectors. All are labelled by operation.
type Metrics struct {
	Traces      *prometheus.CounterVec
	Steps       *prometheus.CounterVec
	Comparisons *prometheus.CounterVec
	Swaps       *prometheus.CounterVec
	InputSize   *prometheus.HistogramVec
	Duration    *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	labels := []string{"operation"}
	m := &Metrics{
		Traces: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "algotrace_traces_total",
			Help: "Total number of generated traces",
		}, labels),
		Steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "algotrace_steps_total",
			Help: "Total number of recorded steps",
		}, labels),
		Comparisons: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "algotrace_comparisons_total",
			Help: "Total number of recorded comparisons",
		}, labels),
		Swaps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "algotrace_swaps_total",
			Help: "Total number of recorded swaps and writes",
		}, labels),
		InputSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "algotrace_input_size",
			Help:    "Size of traced inputs",
			Buckets: prometheus.ExponentialBuckets(2, 2, 8),
		}, labels),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "algotrace_trace_duration_seconds",
			Help:    "Duration of trace generation",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, labels),
	}
	if reg != nil {
		reg.MustRegister(m.Traces, m.Steps, m.Comparisons, m.Swaps, m.InputSize, m.Duration)
	}
	return m
}

// Hooks records every completed trace.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTraceComplete: func(_ context.Context, e *domain.TraceEvent) {
			m.Traces.WithLabelValues(e.Operation).Inc()
			m.Steps.WithLabelValues(e.Operation).Add(float64(e.Steps))
			m.Comparisons.WithLabelValues(e.Operation).Add(float64(e.Counters.Comparisons))
			m.Swaps.WithLabelValues(e.Operation).Add(float64(e.Counters.Swaps))
			m.InputSize.WithLabelValues(e.Operation).Observe(float64(e.InputSize))
			m.Duration.WithLabelValues(e.Operation).Observe(e.Duration.Seconds())
		},
	}
}

// Handler exposes g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
