package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus metrics for the notes analyzer.
//
// Every instance owns its registry so tests can create as many as they need.
// A nil *Metrics is valid and records nothing.
//
// Metrics:
//   - notes_analyses_total{status,reason} - Count of analyses by outcome
//   - notes_inference_duration_seconds{status} - Histogram of inference call latency
//   - notes_meetings_created_total - Count of persisted meetings
//   - notes_action_items_completed_total - Count of completion requests that succeeded
type Metrics struct {
	registry *prometheus.Registry

	AnalysesTotal        *prometheus.CounterVec
	InferenceDuration    *prometheus.HistogramVec
	MeetingsCreatedTotal prometheus.Counter
	ActionItemsCompleted prometheus.Counter
}

// New creates and registers the metrics on a fresh registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		AnalysesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notes_analyses_total",
				Help: "Total number of meeting note analyses",
			},
			[]string{"status", "reason"}, // reason is empty for completed analyses
		),
		InferenceDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "notes_inference_duration_seconds",
				Help:    "Duration of the remote inference call in seconds",
				Buckets: prometheus.ExponentialBuckets(0.25, 2, 9), // 250ms to ~64s
			},
			[]string{"status"},
		),
		MeetingsCreatedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "notes_meetings_created_total",
				Help: "Total number of meetings persisted",
			},
		),
		ActionItemsCompleted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "notes_action_items_completed_total",
				Help: "Total number of action item completion requests that succeeded",
			},
		),
	}
}

// ObserveAnalysis records one analysis outcome and its inference latency
func (m *Metrics) ObserveAnalysis(status, reason string, latency time.Duration) {
	if m == nil {
		return
	}
	m.AnalysesTotal.WithLabelValues(status, reason).Inc()
	m.InferenceDuration.WithLabelValues(status).Observe(latency.Seconds())
}

// MeetingCreated increments the meetings counter
func (m *Metrics) MeetingCreated() {
	if m == nil {
		return
	}
	m.MeetingsCreatedTotal.Inc()
}

// ActionItemCompleted increments the completed action items counter
func (m *Metrics) ActionItemCompleted() {
	if m == nil {
		return
	}
	m.ActionItemsCompleted.Inc()
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
