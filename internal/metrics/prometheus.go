// Package metrics holds the Prometheus collectors of the clip pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "spectrogram"

// Metrics contains all Prometheus metrics of a pipeline. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	// Extraction metrics
	ClipsProcessed     prometheus.Counter
	ExtractionFailures prometheus.Counter
	ExtractionDuration prometheus.Histogram
	NoiseFloor         prometheus.Gauge

	// Gate metrics
	ClipsGated prometheus.Counter

	// Classification metrics
	Classifications  *prometheus.CounterVec
	ClassifyFailures prometheus.Counter
	ExportFailures   prometheus.Counter
	NoiseFloorResets prometheus.Counter
}

// New creates all metrics and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		ClipsProcessed: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clips_processed_total",
			Help:      "Total number of clips turned into spectrograms",
		}),
		ExtractionFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extraction_failures_total",
			Help:      "Total number of clips whose extraction failed",
		}),
		ExtractionDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "extraction_duration_seconds",
			Help:      "Time spent extracting one spectrogram",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12), // 100us to ~200ms
		}),
		NoiseFloor: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "noise_floor",
			Help:      "Smoothed noise floor after the last clip",
		}),
		ClipsGated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clips_gated_total",
			Help:      "Total number of clips skipped by the activity gate",
		}),
		Classifications: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classifications_total",
			Help:      "Total number of classifications by winning label",
		}, []string{"label"}),
		ClassifyFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classify_failures_total",
			Help:      "Total number of classifier errors",
		}),
		ExportFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "export_failures_total",
			Help:      "Total number of spectrogram export errors",
		}),
		NoiseFloorResets: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "noise_floor_resets_total",
			Help:      "Total number of noise floor resets after a classification cycle",
		}),
	}
}

// RecordExtraction counts a successful extraction and its duration.
func (m *Metrics) RecordExtraction(d time.Duration, floor float64) {
	if m == nil {
		return
	}
	m.ClipsProcessed.Inc()
	m.ExtractionDuration.Observe(d.Seconds())
	m.NoiseFloor.Set(floor)
}

// RecordExtractionFailure increments the extraction failures counter
func (m *Metrics) RecordExtractionFailure() {
	if m == nil {
		return
	}
	m.ExtractionFailures.Inc()
}

// RecordGated increments the gated clips counter
func (m *Metrics) RecordGated() {
	if m == nil {
		return
	}
	m.ClipsGated.Inc()
}

// RecordClassification counts a classification under its winning label.
func (m *Metrics) RecordClassification(label string) {
	if m == nil {
		return
	}
	m.Classifications.WithLabelValues(label).Inc()
}

// RecordClassifyFailure increments the classifier errors counter
func (m *Metrics) RecordClassifyFailure() {
	if m == nil {
		return
	}
	m.ClassifyFailures.Inc()
}

// RecordExportFailure increments the export errors counter
func (m *Metrics) RecordExportFailure() {
	if m == nil {
		return
	}
	m.ExportFailures.Inc()
}

// RecordNoiseFloorReset counts a reset and zeroes the floor gauge.
func (m *Metrics) RecordNoiseFloorReset() {
	if m == nil {
		return
	}
	m.NoiseFloorResets.Inc()
	m.NoiseFloor.Set(0)
}
