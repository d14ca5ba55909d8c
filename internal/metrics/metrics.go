// Package metrics exposes Prometheus instrumentation for validation runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder holds the collectors observed on every engine evaluation.
type Recorder struct {
	runs     prometheus.Counter
	errors   prometheus.Gauge
	warnings prometheus.Gauge
	duration prometheus.Histogram
}

// NewRecorder creates and registers the validation collectors. Pass
// prometheus.DefaultRegisterer for the process-wide registry, or a private
// registry in tests.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "canopy_validation_runs_total",
			Help: "Total number of full validation runs.",
		}),
		errors: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "canopy_validation_errors",
			Help: "Error count of the most recent validation run.",
		}),
		warnings: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "canopy_validation_warnings",
			Help: "Warning count of the most recent validation run.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "canopy_validation_duration_seconds",
			Help:    "Wall time of full validation runs.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(r.runs, r.errors, r.warnings, r.duration)
	return r
}

// ObserveRun records the outcome of one evaluation.
func (r *Recorder) ObserveRun(elapsed time.Duration, errors, warnings int) {
	r.runs.Inc()
	r.errors.Set(float64(errors))
	r.warnings.Set(float64(warnings))
	r.duration.Observe(elapsed.Seconds())
}
