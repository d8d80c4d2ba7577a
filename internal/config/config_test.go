package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-spectrogram/dsp/spectrogram"
	"github.com/cwbudde/algo-spectrogram/pipeline"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	fc := cfg.FeatureConfig()
	if fc.FrameCount(fc.SampleCount()) != 99 || fc.PooledBins() != 41 {
		t.Fatalf("default geometry = %dx%d", fc.FrameCount(fc.SampleCount()), fc.PooledBins())
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		errorMsg string
	}{
		{"valid configuration", func(*Config) {}, ""},
		{"odd frame size", func(c *Config) { c.Features.FrameSize = 321 }, "features config"},
		{"zero max cells", func(c *Config) { c.Features.MaxCells = 0 }, "max_cells"},
		{"bad divisor", func(c *Config) { c.Tracker.ActiveDivisor = 0 }, "tracker config"},
		{"unknown gate", func(c *Config) { c.Pipeline.Gate = "sometimes" }, "pipeline config"},
		{"negative threshold", func(c *Config) { c.Pipeline.FloorThreshold = -1 }, "floor_threshold"},
		{"unknown backend", func(c *Config) { c.Backend = "fftw" }, "backend"},
		{"unknown window", func(c *Config) { c.Window = "kaiser" }, "window"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "level must be"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "format must be"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.errorMsg == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			if err == nil {
				t.Fatalf("expected error containing %q", tt.errorMsg)
			}

			if !strings.Contains(err.Error(), tt.errorMsg) {
				t.Fatalf("error %q does not contain %q", err.Error(), tt.errorMsg)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	yaml := `
backend: godsp
features:
  hop_size: 80
tracker:
  threshold_factor: 4
pipeline:
  gate: noise-floor
  reset_after_cycle: false
logging:
  level: debug
  format: json
`
	path := filepath.Join(t.TempDir(), "clipinfo.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Features.HopSize != 80 || cfg.Features.FrameSize != 320 {
		t.Fatalf("features = %+v", cfg.Features)
	}

	if cfg.Tracker.ThresholdFactor != 4 || cfg.Tracker.RiseWeight != 0.01 {
		t.Fatalf("tracker = %+v", cfg.Tracker)
	}

	if cfg.Pipeline.Gate != "noise-floor" || cfg.Pipeline.ResetAfterCycle {
		t.Fatalf("pipeline = %+v", cfg.Pipeline)
	}

	if cfg.Pipeline.FloorThreshold != pipeline.DefaultFloorThreshold {
		t.Fatalf("floor threshold = %v", cfg.Pipeline.FloorThreshold)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}

	if _, err := Parse([]byte("features: [1, 2")); err == nil {
		t.Fatal("expected parse error")
	}

	if _, err := Parse([]byte("features:\n  hop_size: 400\n")); err == nil {
		t.Fatal("expected validation error for hop larger than frame")
	}
}

func TestExtractorOptionsBuildExtractor(t *testing.T) {
	cfg, err := Parse([]byte("features:\n  hop_size: 320\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	opts, err := cfg.ExtractorOptions(nil)
	if err != nil {
		t.Fatalf("ExtractorOptions: %v", err)
	}

	ex, err := spectrogram.NewExtractor(opts...)
	if err != nil {
		t.Fatalf("NewExtractor: %v", err)
	}

	res, err := ex.Extract(make([]int16, 16000))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	defer res.Release()

	if res.Matrix.Rows() != 50 {
		t.Fatalf("rows = %d, want 50", res.Matrix.Rows())
	}

	popts, err := cfg.PipelineOptions(nil)
	if err != nil {
		t.Fatalf("PipelineOptions: %v", err)
	}

	if len(popts) != 4 {
		t.Fatalf("pipeline options = %d", len(popts))
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	l := LoggingConfig{Level: "warn", Format: "json"}

	logger, err := l.NewLogger(&buf)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown", "k", 1)

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, `"msg":"shown"`) {
		t.Fatalf("unexpected log output %q", out)
	}
}
