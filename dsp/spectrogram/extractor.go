package spectrogram

import (
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spectrogram/dsp/activity"
	"github.com/cwbudde/algo-spectrogram/dsp/buffer"
	"github.com/cwbudde/algo-spectrogram/dsp/core"
	"github.com/cwbudde/algo-spectrogram/dsp/spectrum"
	"github.com/cwbudde/algo-spectrogram/dsp/window"
	"github.com/cwbudde/algo-spectrogram/stats/clip"
)

// Result is the outcome of one extraction.
type Result struct {
	// Matrix is owned by the caller and must be released.
	Matrix *Matrix
	// AboveNoise reports whether the clip should be classified.
	AboveNoise bool
	// NoiseFloor is the smoothed noise floor after this clip.
	NoiseFloor float64
	Stats      clip.Stats
	Activity   activity.Decision
}

// Release releases the matrix.
func (r *Result) Release() {
	if r != nil {
		r.Matrix.Release()
	}
}

// Extractor turns clips into spectrograms. It owns frame scratch memory and
// the noise-floor tracker, so one Extractor must only be used by one
// goroutine at a time.
type Extractor struct {
	cfg      core.FeatureConfig
	window   *window.Table
	engine   *spectrum.Engine
	pooler   spectrum.Pooler
	tracker  *activity.Tracker
	pool     *buffer.Pool
	maxCells int
	logger   *slog.Logger

	frame []float64
	power []float64
}

// NewExtractor validates the configuration and constructs the window table
// and spectrum engine up front. Failures wrap ErrInitialization.
func NewExtractor(opts ...Option) (*Extractor, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = discardLogger()
	}
	if o.pool == nil {
		o.pool = buffer.NewPool()
	}

	cfg := o.features
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitialization, err)
	}

	win, err := window.Shared(o.window, cfg.FrameSize)
	if err != nil {
		return nil, fmt.Errorf("%w: window: %w", ErrInitialization, err)
	}

	engineOpts := []spectrum.EngineOption{spectrum.WithBackend(o.backend)}
	if o.transformer != nil {
		engineOpts = append(engineOpts, spectrum.WithTransformer(o.transformer))
	}
	engine, err := spectrum.NewEngine(cfg.FrameSize, engineOpts...)
	if err != nil {
		o.logger.Error("spectrum engine initialization failed",
			"frame_size", cfg.FrameSize, "backend", o.backend.String(), "error", err)
		return nil, err
	}

	tracker, err := activity.NewTracker(o.tracker)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitialization, err)
	}

	return &Extractor{
		cfg:      cfg,
		window:   win,
		engine:   engine,
		pooler:   spectrum.NewPooler(cfg.PoolingFactor, cfg.Epsilon),
		tracker:  tracker,
		pool:     o.pool,
		maxCells: o.maxCells,
		logger:   o.logger,
		frame:    make([]float64, cfg.FrameSize),
		power:    make([]float64, engine.Bins()),
	}, nil
}

// Config returns the feature configuration.
func (e *Extractor) Config() core.FeatureConfig { return e.cfg }

// Tracker returns the noise-floor tracker so the orchestrating caller can
// reset it after a classification cycle.
func (e *Extractor) Tracker() *activity.Tracker { return e.tracker }

// Pool returns the pool backing extracted matrices.
func (e *Extractor) Pool() *buffer.Pool { return e.pool }

// Extract computes the spectrogram and activity decision of pcm. On error no
// matrix is returned and the noise floor is left untouched.
func (e *Extractor) Extract(pcm []int16) (*Result, error) {
	if want := e.cfg.SampleCount(); len(pcm) != want {
		return nil, fmt.Errorf("%w: got %d samples, want %d", ErrClipLength, len(pcm), want)
	}

	st := clip.Calculate(pcm)
	invScale := 1 / st.Scale(e.cfg.Epsilon)

	rows := e.cfg.FrameCount(len(pcm))
	cols := e.cfg.PooledBins()
	if rows <= 0 || rows*cols > e.maxCells {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrAllocation, rows, cols, e.maxCells)
	}

	m := newPooledMatrix(e.pool, rows, cols)

	n := e.cfg.FrameSize
	row := 0
	for start := 0; start+n <= len(pcm) && row < rows; start += e.cfg.HopSize {
		for i := range e.frame {
			e.frame[i] = float64(pcm[start+i]) - st.Mean
		}
		vecmath.ScaleBlock(e.frame, e.frame, invScale)

		if err := e.window.Apply(e.frame); err != nil {
			m.Release()
			return nil, fmt.Errorf("spectrogram: frame %d: %w", row, err)
		}

		if err := e.engine.PowerSpectrum(e.power, e.frame); err != nil {
			m.Release()
			e.logger.Warn("spectrogram extraction aborted", "frame", row, "error", err)
			return nil, fmt.Errorf("spectrogram: frame %d: %w", row, err)
		}

		e.pooler.Pool(m.Row(row)[:0], e.power)
		row++
	}

	decision := e.tracker.Observe(pcm, st)

	e.logger.Debug("spectrogram extracted",
		"frames", rows,
		"bands", cols,
		"mean", st.Mean,
		"peak", st.Peak,
		"active_samples", decision.Count,
		"above_noise", decision.Active,
		"noise_floor", decision.Smoothed,
	)

	return &Result{
		Matrix:     m,
		AboveNoise: decision.Active,
		NoiseFloor: decision.Smoothed,
		Stats:      st,
		Activity:   decision,
	}, nil
}
