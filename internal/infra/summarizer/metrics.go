package summarizer

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus collectors are package-level so every provider instance shares
// the same series, keyed by provider label.
var (
	summaryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "summarizer_request_duration_seconds",
			Help:    "Duration of summarization provider calls in seconds",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"provider"},
	)

	summaryLength = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "summarizer_summary_length_runes",
			Help:    "Length of generated summaries in runes",
			Buckets: prometheus.ExponentialBuckets(50, 2, 8),
		},
		[]string{"provider"},
	)

	summaryFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "summarizer_failures_total",
			Help: "Total number of failed summarization provider calls",
		},
		[]string{"provider"},
	)
)

// MetricsRecorder records observability data for summarization calls.
// It is an interface so tests can substitute a no-op implementation.
type MetricsRecorder interface {
	RecordDuration(provider string, d time.Duration)
	RecordLength(provider string, runes int)
	RecordFailure(provider string)
}

// PrometheusMetrics records summarization metrics to the default registry.
type PrometheusMetrics struct{}

// NewPrometheusMetrics returns the Prometheus-backed recorder.
func NewPrometheusMetrics() *PrometheusMetrics { return &PrometheusMetrics{} }

func (*PrometheusMetrics) RecordDuration(provider string, d time.Duration) {
	summaryDuration.WithLabelValues(provider).Observe(d.Seconds())
}

func (*PrometheusMetrics) RecordLength(provider string, runes int) {
	summaryLength.WithLabelValues(provider).Observe(float64(runes))
}

func (*PrometheusMetrics) RecordFailure(provider string) {
	summaryFailures.WithLabelValues(provider).Inc()
}

// NopMetrics discards all recordings. Used in tests.
type NopMetrics struct{}

func (NopMetrics) RecordDuration(string, time.Duration) {}
func (NopMetrics) RecordLength(string, int)             {}
func (NopMetrics) RecordFailure(string)                 {}
