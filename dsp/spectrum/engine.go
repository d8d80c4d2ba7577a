package spectrum

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// EngineOption configures NewEngine.
type EngineOption func(*engineConfig)

type engineConfig struct {
	backend     Backend
	transformer Transformer
}

// WithBackend selects one of the built-in transform backends.
func WithBackend(b Backend) EngineOption {
	return func(c *engineConfig) {
		c.backend = b
	}
}

// WithTransformer installs a caller-supplied transform. It takes precedence
// over WithBackend and must match the engine size.
func WithTransformer(t Transformer) EngineOption {
	return func(c *engineConfig) {
		c.transformer = t
	}
}

// Engine computes power spectra of fixed-size frames. An Engine owns scratch
// memory and must not be used from more than one goroutine at a time.
type Engine struct {
	transformer Transformer
	bins        []complex128
	re          []float64
	im          []float64
}

// NewEngine constructs an engine for frames of size samples. Any failure is
// wrapped in ErrInitialization and no engine is returned.
func NewEngine(size int, opts ...EngineOption) (*Engine, error) {
	cfg := engineConfig{backend: BackendGonum}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	tr := cfg.transformer
	if tr == nil {
		var err error
		tr, err = NewTransformer(cfg.backend, size)
		if err != nil {
			if !errors.Is(err, ErrInitialization) {
				err = fmt.Errorf("%w: %w", ErrInitialization, err)
			}
			return nil, err
		}
	}

	if tr.Size() != size {
		return nil, fmt.Errorf("%w: transformer size %d, want %d", ErrInitialization, tr.Size(), size)
	}

	bins := size/2 + 1

	return &Engine{
		transformer: tr,
		bins:        make([]complex128, bins),
		re:          make([]float64, bins),
		im:          make([]float64, bins),
	}, nil
}

// Size returns the frame length.
func (e *Engine) Size() int { return e.transformer.Size() }

// Bins returns the number of power values per frame (Size/2+1).
func (e *Engine) Bins() int { return len(e.bins) }

// PowerSpectrum writes |X[k]|^2 of frame into dst. frame must hold Size()
// samples and dst Bins() values.
func (e *Engine) PowerSpectrum(dst, frame []float64) error {
	if len(dst) != len(e.bins) {
		return fmt.Errorf("%w: power %d, want %d", ErrLengthMismatch, len(dst), len(e.bins))
	}

	if err := e.transformer.Forward(e.bins, frame); err != nil {
		if errors.Is(err, ErrLengthMismatch) || errors.Is(err, ErrTransform) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrTransform, err)
	}

	for i, c := range e.bins {
		e.re[i] = real(c)
		e.im[i] = imag(c)
	}

	vecmath.Power(dst, e.re, e.im)

	return nil
}
