package metrics

import (
	"time"

	"github.com/lomasaltas/boxcode/internal/boxcode"
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder exposes validation counters to Prometheus. A nil Recorder is a no-op.
type Recorder struct {
	validations   *prometheus.CounterVec
	findings      *prometheus.CounterVec
	mismatches    *prometheus.CounterVec
	batchDuration prometheus.Histogram
	batchSize     prometheus.Histogram
}

// NewRecorder creates the collectors and registers them with reg
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "boxcode",
			Name:      "validations_total",
			Help:      "Validated box codes by station and outcome.",
		}, []string{"station", "outcome"}),
		findings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "boxcode",
			Name:      "findings_total",
			Help:      "Validation findings by field and severity.",
		}, []string{"field", "severity"}),
		mismatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "boxcode",
			Name:      "expected_mismatches_total",
			Help:      "Valid codes whose shift, format or company differs from the expected value.",
		}, []string{"station", "field"}),
		batchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "boxcode",
			Name:      "batch_duration_seconds",
			Help:      "Time spent validating a batch.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
		batchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "boxcode",
			Name:      "batch_size",
			Help:      "Number of codes per batch.",
			Buckets:   []float64{1, 10, 50, 100, 250, 500, 1000},
		}),
	}
	reg.MustRegister(r.validations, r.findings, r.mismatches, r.batchDuration, r.batchSize)
	return r
}

// ObserveValidation counts one validated code and its findings
func (r *Recorder) ObserveValidation(station string, res boxcode.ValidationResult, comparisons []boxcode.ComparisonResult) {
	if r == nil {
		return
	}
	outcome := "valid"
	if !res.IsValid {
		outcome = "invalid"
	}
	r.validations.WithLabelValues(station, outcome).Inc()

	for _, f := range res.Errors {
		r.findings.WithLabelValues(f.Field, string(f.Severity)).Inc()
	}
	for _, f := range res.Warnings {
		r.findings.WithLabelValues(f.Field, string(f.Severity)).Inc()
	}
	for _, c := range comparisons {
		if !c.Matches {
			r.mismatches.WithLabelValues(station, c.Field).Inc()
		}
	}
}

// ObserveBatch records the size and duration of a batch
func (r *Recorder) ObserveBatch(size int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.batchSize.Observe(float64(size))
	r.batchDuration.Observe(elapsed.Seconds())
}
