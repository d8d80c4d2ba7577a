package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-spectrogram/dsp/spectrogram"
	"github.com/cwbudde/algo-spectrogram/internal/config"
)

type globalFlags struct {
	configFile string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "clipinfo",
		Short: "Inspect clip spectrograms and activity decisions",
		Long: `clipinfo turns 1 s, 16 kHz, 16-bit mono clips into pooled log-power
spectrograms and reports the activity gate decision for each clip.

Input is a WAV file, raw little-endian s16 PCM, or a synthesized tone.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flags.configFile, "config", "", "YAML config file (default: built-in defaults)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "override logging level (debug, info, warn, error)")

	root.AddCommand(newExtractCmd(flags))
	root.AddCommand(newRunCmd(flags))
	root.AddCommand(newWindowCmd())

	return root
}

// load resolves the configuration and a logger writing to the command's
// error stream.
func (g *globalFlags) load(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg := config.Default()
	if g.configFile != "" {
		loaded, err := config.Load(g.configFile)
		if err != nil {
			return nil, nil, err
		}
		cfg = *loaded
	}

	if g.logLevel != "" {
		cfg.Logging.Level = g.logLevel
	}

	logger, err := cfg.Logging.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}

	return &cfg, logger, nil
}

func newExtractor(cfg *config.Config, logger *slog.Logger) (*spectrogram.Extractor, error) {
	opts, err := cfg.ExtractorOptions(logger)
	if err != nil {
		return nil, err
	}

	return spectrogram.NewExtractor(opts...)
}
