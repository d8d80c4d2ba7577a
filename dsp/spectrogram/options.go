package spectrogram

import (
	"io"
	"log/slog"

	"github.com/cwbudde/algo-spectrogram/dsp/activity"
	"github.com/cwbudde/algo-spectrogram/dsp/buffer"
	"github.com/cwbudde/algo-spectrogram/dsp/core"
	"github.com/cwbudde/algo-spectrogram/dsp/spectrum"
	"github.com/cwbudde/algo-spectrogram/dsp/window"
)

// defaultMaxCells bounds a single matrix to 8 MiB of float64 cells.
const defaultMaxCells = 1 << 20

// Option configures NewExtractor.
type Option func(*options)

type options struct {
	features    core.FeatureConfig
	backend     spectrum.Backend
	transformer spectrum.Transformer
	window      window.Type
	tracker     activity.Config
	maxCells    int
	pool        *buffer.Pool
	logger      *slog.Logger
}

func defaultOptions() options {
	return options{
		features: core.DefaultFeatureConfig(),
		backend:  spectrum.BackendGonum,
		window:   window.TypeShiftedHann,
		tracker:  activity.DefaultConfig(),
		maxCells: defaultMaxCells,
	}
}

// WithFeatureConfig sets clip framing and pooling.
func WithFeatureConfig(cfg core.FeatureConfig) Option {
	return func(o *options) {
		o.features = cfg
	}
}

// WithBackend selects the transform backend.
func WithBackend(b spectrum.Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithTransformer installs a caller-supplied transform.
func WithTransformer(t spectrum.Transformer) Option {
	return func(o *options) {
		o.transformer = t
	}
}

// WithWindow selects the analysis window.
func WithWindow(t window.Type) Option {
	return func(o *options) {
		o.window = t
	}
}

// WithTrackerConfig sets the activity detector constants.
func WithTrackerConfig(cfg activity.Config) Option {
	return func(o *options) {
		o.tracker = cfg
	}
}

// WithMaxCells bounds rows*cols of a single matrix. Values <= 0 are ignored.
func WithMaxCells(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxCells = n
		}
	}
}

// WithPool shares matrix storage between extractors.
func WithPool(p *buffer.Pool) Option {
	return func(o *options) {
		o.pool = p
	}
}

// WithLogger sets the logger. Nil keeps the default, which discards.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
