package core

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig reports a feature configuration that cannot describe a
// spectrogram.
var ErrInvalidConfig = errors.New("invalid feature config")

// FeatureConfig defines the framing and pooling of a clip spectrogram.
type FeatureConfig struct {
	SampleRate    int
	ClipSeconds   int
	FrameSize     int
	HopSize       int
	PoolingFactor int
	// Epsilon floors the pooled power before the logarithm and decides when a
	// clip peak is too small to normalize by.
	Epsilon float64
}

// FeatureOption mutates a FeatureConfig.
type FeatureOption func(*FeatureConfig)

// DefaultFeatureConfig returns the 16 kHz, one second, 320/160 framing with
// four-bin pooling used by the keyword model.
func DefaultFeatureConfig() FeatureConfig {
	return FeatureConfig{
		SampleRate:    16000,
		ClipSeconds:   1,
		FrameSize:     320,
		HopSize:       160,
		PoolingFactor: 4,
		Epsilon:       1e-6,
	}
}

// WithSampleRate sets the clip sample rate in Hz.
func WithSampleRate(sampleRate int) FeatureOption {
	return func(cfg *FeatureConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithClipSeconds sets the clip duration.
func WithClipSeconds(seconds int) FeatureOption {
	return func(cfg *FeatureConfig) {
		if seconds > 0 {
			cfg.ClipSeconds = seconds
		}
	}
}

// WithFrameSize sets the analysis frame length in samples.
func WithFrameSize(frameSize int) FeatureOption {
	return func(cfg *FeatureConfig) {
		if frameSize > 0 {
			cfg.FrameSize = frameSize
		}
	}
}

// WithHopSize sets the offset between consecutive frames.
func WithHopSize(hopSize int) FeatureOption {
	return func(cfg *FeatureConfig) {
		if hopSize > 0 {
			cfg.HopSize = hopSize
		}
	}
}

// WithPoolingFactor sets how many spectrum bins are averaged per column.
func WithPoolingFactor(factor int) FeatureOption {
	return func(cfg *FeatureConfig) {
		if factor > 0 {
			cfg.PoolingFactor = factor
		}
	}
}

// WithEpsilon sets the numeric floor.
func WithEpsilon(eps float64) FeatureOption {
	return func(cfg *FeatureConfig) {
		if eps > 0 {
			cfg.Epsilon = eps
		}
	}
}

// ApplyFeatureOptions applies zero or more options to the default config.
func ApplyFeatureOptions(opts ...FeatureOption) FeatureConfig {
	cfg := DefaultFeatureConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate reports whether the config describes at least one frame per clip.
func (c FeatureConfig) Validate() error {
	switch {
	case c.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate must be > 0: %d", ErrInvalidConfig, c.SampleRate)
	case c.ClipSeconds <= 0:
		return fmt.Errorf("%w: clip seconds must be > 0: %d", ErrInvalidConfig, c.ClipSeconds)
	case c.FrameSize < 2 || c.FrameSize%2 != 0:
		return fmt.Errorf("%w: frame size must be even and >= 2: %d", ErrInvalidConfig, c.FrameSize)
	case c.HopSize <= 0 || c.HopSize > c.FrameSize:
		return fmt.Errorf("%w: hop size must be in [1,%d]: %d", ErrInvalidConfig, c.FrameSize, c.HopSize)
	case c.PoolingFactor <= 0:
		return fmt.Errorf("%w: pooling factor must be > 0: %d", ErrInvalidConfig, c.PoolingFactor)
	case !(c.Epsilon > 0):
		return fmt.Errorf("%w: epsilon must be > 0: %g", ErrInvalidConfig, c.Epsilon)
	case c.SampleCount() < c.FrameSize:
		return fmt.Errorf("%w: clip of %d samples is shorter than one frame (%d)",
			ErrInvalidConfig, c.SampleCount(), c.FrameSize)
	}
	return nil
}

// SampleCount is the number of samples in one clip.
func (c FeatureConfig) SampleCount() int {
	return c.SampleRate * c.ClipSeconds
}

// SpectrumBins is the number of unique bins of a real transform of FrameSize.
func (c FeatureConfig) SpectrumBins() int {
	return c.FrameSize/2 + 1
}

// PooledBins is the column count of the spectrogram.
func (c FeatureConfig) PooledBins() int {
	return CeilDiv(c.SpectrumBins(), c.PoolingFactor)
}

// FrameCount returns the number of full frames in a clip of sampleCount
// samples, or 0 when not even one frame fits.
func (c FeatureConfig) FrameCount(sampleCount int) int {
	if c.HopSize <= 0 || sampleCount < c.FrameSize {
		return 0
	}
	return (sampleCount-c.FrameSize)/c.HopSize + 1
}
