package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-spectrogram/internal/metrics"
	"github.com/cwbudde/algo-spectrogram/pipeline"
)

type runFlags struct {
	gate    string
	metrics bool
	noReset bool
}

func newRunCmd(g *globalFlags) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Run a recording through the classification pipeline",
		Long: `Split a recording into consecutive clips and run each through the
pipeline. The built-in classifier labels a clip with the pooled band that
carries the most energy in its first frame.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, g, flags, args[0])
		},
	}

	cmd.Flags().StringVar(&flags.gate, "gate", "", "override the gate (activity, noise-floor, open)")
	cmd.Flags().BoolVar(&flags.metrics, "metrics", false, "print Prometheus metrics after the run")
	cmd.Flags().BoolVar(&flags.noReset, "no-reset", false, "keep the noise floor between clips")

	return cmd
}

// peakBandClassifier labels a clip by the loudest band of its first frame.
func peakBandClassifier(_ context.Context, input []float32, _, cols int) (pipeline.Prediction, error) {
	p := pipeline.NewPrediction(input[:cols], nil)
	p.Label = fmt.Sprintf("band-%d", p.Index)
	return p, nil
}

func runPipeline(cmd *cobra.Command, g *globalFlags, flags *runFlags, path string) error {
	cfg, logger, err := g.load(cmd)
	if err != nil {
		return err
	}

	if flags.gate != "" {
		cfg.Pipeline.Gate = flags.gate
	}
	if flags.noReset {
		cfg.Pipeline.ResetAfterCycle = false
	}

	pcm, err := loadClip(path, cfg.FeatureConfig().SampleRate, logger)
	if err != nil {
		return err
	}

	ex, err := newExtractor(cfg, logger)
	if err != nil {
		return err
	}

	popts, err := cfg.PipelineOptions(logger)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	popts = append(popts, pipeline.WithMetrics(metrics.New(reg)))

	p, err := pipeline.New(ex, pipeline.ClassifierFunc(peakBandClassifier), popts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Clip\tAbove Noise\tNoise Floor\tClassified\tLabel\n")
	fmt.Fprintf(tw, "----\t-----------\t-----------\t----------\t-----\n")

	for i, clip := range splitClips(pcm, cfg.FeatureConfig().SampleCount()) {
		o, err := p.Process(cmd.Context(), clip)
		if err != nil {
			return fmt.Errorf("clip %d: %w", i, err)
		}
		fmt.Fprintf(tw, "%d\t%t\t%.4f\t%t\t%s\n", i, o.AboveNoise, o.NoiseFloor, o.Classified, o.Prediction.Label)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	if !flags.metrics {
		return nil
	}

	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	fmt.Fprintln(out)
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return err
		}
	}

	return nil
}
