package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-spectrogram/dsp/activity"
	"github.com/cwbudde/algo-spectrogram/dsp/core"
	"github.com/cwbudde/algo-spectrogram/dsp/spectrogram"
	"github.com/cwbudde/algo-spectrogram/dsp/spectrum"
	"github.com/cwbudde/algo-spectrogram/dsp/window"
	"github.com/cwbudde/algo-spectrogram/pipeline"
)

// Config represents the complete configuration
type Config struct {
	Features FeaturesConfig `yaml:"features"`
	Tracker  TrackerConfig  `yaml:"tracker"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Backend  string         `yaml:"backend"`
	Window   string         `yaml:"window"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// FeaturesConfig contains clip framing and pooling
type FeaturesConfig struct {
	SampleRate    int     `yaml:"sample_rate"`
	ClipSeconds   int     `yaml:"clip_seconds"`
	FrameSize     int     `yaml:"frame_size"`
	HopSize       int     `yaml:"hop_size"`
	PoolingFactor int     `yaml:"pooling_factor"`
	Epsilon       float64 `yaml:"epsilon"`
	MaxCells      int     `yaml:"max_cells"`
}

// TrackerConfig contains the activity detector constants
type TrackerConfig struct {
	ThresholdFactor float64 `yaml:"threshold_factor"`
	FallWeight      float64 `yaml:"fall_weight"`
	RiseWeight      float64 `yaml:"rise_weight"`
	ActiveDivisor   int     `yaml:"active_divisor"`
}

// PipelineConfig contains gating behaviour
type PipelineConfig struct {
	Gate            string  `yaml:"gate"`
	FloorThreshold  float64 `yaml:"floor_threshold"`
	ResetAfterCycle bool    `yaml:"reset_after_cycle"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the nominal configuration: 1 s clips at 16 kHz, 320-point
// frames with 160 hop, pooling by 4.
func Default() Config {
	fc := core.DefaultFeatureConfig()
	tc := activity.DefaultConfig()

	return Config{
		Features: FeaturesConfig{
			SampleRate:    fc.SampleRate,
			ClipSeconds:   fc.ClipSeconds,
			FrameSize:     fc.FrameSize,
			HopSize:       fc.HopSize,
			PoolingFactor: fc.PoolingFactor,
			Epsilon:       fc.Epsilon,
			MaxCells:      1 << 20,
		},
		Tracker: TrackerConfig{
			ThresholdFactor: tc.ThresholdFactor,
			FallWeight:      tc.FallWeight,
			RiseWeight:      tc.RiseWeight,
			ActiveDivisor:   tc.ActiveDivisor,
		},
		Pipeline: PipelineConfig{
			Gate:            pipeline.GateActivity.String(),
			FloorThreshold:  pipeline.DefaultFloorThreshold,
			ResetAfterCycle: true,
		},
		Backend: spectrum.BackendGonum.String(),
		Window:  window.TypeShiftedHann.String(),
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load reads and parses the configuration file. Keys missing from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.FeatureConfig().Validate(); err != nil {
		return fmt.Errorf("features config: %w", err)
	}

	if c.Features.MaxCells <= 0 {
		return fmt.Errorf("features config: max_cells must be positive, got %d", c.Features.MaxCells)
	}

	if err := c.TrackerConfig().Validate(); err != nil {
		return fmt.Errorf("tracker config: %w", err)
	}

	if _, err := pipeline.ParseGate(c.Pipeline.Gate); err != nil {
		return fmt.Errorf("pipeline config: %w", err)
	}

	if c.Pipeline.FloorThreshold < 0 {
		return fmt.Errorf("pipeline config: floor_threshold cannot be negative, got %f", c.Pipeline.FloorThreshold)
	}

	if _, err := spectrum.ParseBackend(c.Backend); err != nil {
		return fmt.Errorf("backend: %w", err)
	}

	if _, err := window.ParseType(c.Window); err != nil {
		return fmt.Errorf("window: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

// FeatureConfig converts the features section.
func (c *Config) FeatureConfig() core.FeatureConfig {
	return core.FeatureConfig{
		SampleRate:    c.Features.SampleRate,
		ClipSeconds:   c.Features.ClipSeconds,
		FrameSize:     c.Features.FrameSize,
		HopSize:       c.Features.HopSize,
		PoolingFactor: c.Features.PoolingFactor,
		Epsilon:       c.Features.Epsilon,
	}
}

// TrackerConfig converts the tracker section.
func (c *Config) TrackerConfig() activity.Config {
	return activity.Config{
		ThresholdFactor: c.Tracker.ThresholdFactor,
		FallWeight:      c.Tracker.FallWeight,
		RiseWeight:      c.Tracker.RiseWeight,
		ActiveDivisor:   c.Tracker.ActiveDivisor,
	}
}

// ExtractorOptions returns the options for spectrogram.NewExtractor.
func (c *Config) ExtractorOptions(logger *slog.Logger) ([]spectrogram.Option, error) {
	backend, err := spectrum.ParseBackend(c.Backend)
	if err != nil {
		return nil, err
	}

	win, err := window.ParseType(c.Window)
	if err != nil {
		return nil, err
	}

	return []spectrogram.Option{
		spectrogram.WithFeatureConfig(c.FeatureConfig()),
		spectrogram.WithTrackerConfig(c.TrackerConfig()),
		spectrogram.WithBackend(backend),
		spectrogram.WithWindow(win),
		spectrogram.WithMaxCells(c.Features.MaxCells),
		spectrogram.WithLogger(logger),
	}, nil
}

// PipelineOptions returns the gating options for pipeline.New.
func (c *Config) PipelineOptions(logger *slog.Logger) ([]pipeline.Option, error) {
	gate, err := pipeline.ParseGate(c.Pipeline.Gate)
	if err != nil {
		return nil, err
	}

	return []pipeline.Option{
		pipeline.WithGate(gate),
		pipeline.WithFloorThreshold(c.Pipeline.FloorThreshold),
		pipeline.WithResetAfterCycle(c.Pipeline.ResetAfterCycle),
		pipeline.WithLogger(logger),
	}, nil
}

// Validate validates logging configuration
func (l *LoggingConfig) Validate() error {
	if _, err := l.SlogLevel(); err != nil {
		return err
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("format must be 'json' or 'text', got '%s'", l.Format)
	}

	return nil
}

// SlogLevel maps the level name to a slog.Level.
func (l *LoggingConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(l.Level))); err != nil {
		return 0, fmt.Errorf("level must be one of [debug, info, warn, error], got '%s'", l.Level)
	}
	return level, nil
}

// NewLogger builds a logger writing to w in the configured format.
func (l *LoggingConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := l.SlogLevel()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}
