package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/cwbudde/algo-spectrogram/dsp/spectrogram"
	"github.com/cwbudde/algo-spectrogram/internal/metrics"
)

// ErrNilDependency is returned by New when the extractor or classifier is
// missing.
var ErrNilDependency = errors.New("pipeline: nil extractor or classifier")

// Outcome describes one processed clip.
type Outcome struct {
	Rows, Cols int
	AboveNoise bool
	NoiseFloor float64
	// Classified is false when the gate rejected the clip.
	Classified bool
	Prediction Prediction
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithGate selects the gate.
func WithGate(g Gate) Option {
	return func(p *Pipeline) {
		p.gate = g
	}
}

// WithFloorThreshold sets the GateNoiseFloor threshold. Negative values are
// ignored.
func WithFloorThreshold(v float64) Option {
	return func(p *Pipeline) {
		if v >= 0 {
			p.floorThreshold = v
		}
	}
}

// WithResetAfterCycle controls whether the noise floor is zeroed after
// every processed clip.
func WithResetAfterCycle(reset bool) Option {
	return func(p *Pipeline) {
		p.resetAfterCycle = reset
	}
}

// WithExporter installs an exporter.
func WithExporter(e Exporter) Option {
	return func(p *Pipeline) {
		p.exporter = e
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Pipeline) {
		p.metrics = m
	}
}

// Pipeline couples an extractor with a classifier.
type Pipeline struct {
	mu sync.Mutex

	extractor  *spectrogram.Extractor
	classifier Classifier
	exporter   Exporter

	gate            Gate
	floorThreshold  float64
	resetAfterCycle bool

	logger  *slog.Logger
	metrics *metrics.Metrics

	input []float32
}

// New creates a pipeline. It takes ownership of ex.
func New(ex *spectrogram.Extractor, c Classifier, opts ...Option) (*Pipeline, error) {
	if ex == nil || c == nil {
		return nil, ErrNilDependency
	}

	p := &Pipeline{
		extractor:       ex,
		classifier:      c,
		gate:            GateActivity,
		floorThreshold:  DefaultFloorThreshold,
		resetAfterCycle: true,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	if !p.gate.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownGate, p.gate)
	}

	return p, nil
}

// Process runs one cycle on pcm. The spectrogram is released before Process
// returns on every path. A classifier error is returned after the noise
// floor has been reset; an extraction error leaves the floor untouched.
func (p *Pipeline) Process(ctx context.Context, pcm []int16) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	start := time.Now()

	res, err := p.extractor.Extract(pcm)
	if err != nil {
		p.metrics.RecordExtractionFailure()
		p.logger.Warn("extraction failed", "samples", len(pcm), "error", err)
		return Outcome{}, fmt.Errorf("pipeline: extract: %w", err)
	}
	defer res.Release()

	p.metrics.RecordExtraction(time.Since(start), res.NoiseFloor)

	out := Outcome{
		Rows:       res.Matrix.Rows(),
		Cols:       res.Matrix.Cols(),
		AboveNoise: res.AboveNoise,
		NoiseFloor: res.NoiseFloor,
	}

	if p.resetAfterCycle {
		defer p.resetFloor()
	}

	if !p.gate.admits(res.AboveNoise, res.NoiseFloor, p.floorThreshold) {
		p.metrics.RecordGated()
		p.logger.Debug("clip gated out",
			"gate", p.gate.String(), "above_noise", res.AboveNoise, "noise_floor", res.NoiseFloor)
		return out, nil
	}

	if p.exporter != nil {
		if err := p.exporter.Export(ctx, res.Matrix); err != nil {
			p.metrics.RecordExportFailure()
			p.logger.Warn("spectrogram export failed", "error", err)
		}
	}

	if n := res.Matrix.Len(); cap(p.input) < n {
		p.input = make([]float32, n)
	} else {
		p.input = p.input[:n]
	}
	if _, err := res.Matrix.CopyToFloat32(p.input); err != nil {
		return out, fmt.Errorf("pipeline: %w", err)
	}

	pred, err := p.classifier.Classify(ctx, p.input, out.Rows, out.Cols)
	if err != nil {
		p.metrics.RecordClassifyFailure()
		p.logger.Error("classification failed", "error", err)
		return out, fmt.Errorf("pipeline: classify: %w", err)
	}

	out.Classified = true
	out.Prediction = pred
	p.metrics.RecordClassification(pred.Label)
	p.logger.Info("clip classified",
		"label", pred.Label, "index", pred.Index, "noise_floor", res.NoiseFloor)

	return out, nil
}

// NoiseFloor returns the current smoothed noise floor.
func (p *Pipeline) NoiseFloor() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.extractor.Tracker().Floor()
}

// Reset zeroes the noise floor.
func (p *Pipeline) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.resetFloor()
}

func (p *Pipeline) resetFloor() {
	p.extractor.Tracker().Reset()
	p.metrics.RecordNoiseFloorReset()
}
