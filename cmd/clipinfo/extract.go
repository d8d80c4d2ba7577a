package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-spectrogram/stats/frequency"
)

type extractFlags struct {
	toneHz    float64
	amplitude float64
	rows      int
}

func newExtractCmd(g *globalFlags) *cobra.Command {
	flags := &extractFlags{}

	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Extract one clip and print its spectrogram summary",
		Long: `Extract the pooled log-power spectrogram of one clip.

The clip is read from a WAV or raw s16le file, or synthesized with --tone-hz.
Inputs are truncated or zero-padded to the configured clip length.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, g, flags, args)
		},
	}

	cmd.Flags().Float64Var(&flags.toneHz, "tone-hz", 0, "synthesize a sine tone at this frequency instead of reading a file")
	cmd.Flags().Float64Var(&flags.amplitude, "amplitude", 8000, "amplitude of the synthesized tone")
	cmd.Flags().IntVar(&flags.rows, "rows", 5, "number of frames to list (0 for all)")

	return cmd
}

func runExtract(cmd *cobra.Command, g *globalFlags, flags *extractFlags, args []string) error {
	cfg, logger, err := g.load(cmd)
	if err != nil {
		return err
	}

	fc := cfg.FeatureConfig()

	var pcm []int16
	switch {
	case len(args) == 1:
		pcm, err = loadClip(args[0], fc.SampleRate, logger)
		if err != nil {
			return err
		}
	case flags.toneHz > 0:
		pcm = synthTone(flags.toneHz, flags.amplitude, fc.SampleRate, fc.SampleCount())
	default:
		return fmt.Errorf("either a file or --tone-hz is required")
	}

	ex, err := newExtractor(cfg, logger)
	if err != nil {
		return err
	}

	res, err := ex.Extract(fitClip(pcm, fc.SampleCount()))
	if err != nil {
		return err
	}
	defer res.Release()

	out := cmd.OutOrStdout()
	m := res.Matrix

	fmt.Fprintf(out, "shape:        %d x %d\n", m.Rows(), m.Cols())
	fmt.Fprintf(out, "above noise:  %t (%d samples over threshold)\n", res.AboveNoise, res.Activity.Count)
	fmt.Fprintf(out, "noise floor:  %.4f -> %.4f\n", res.Activity.Previous, res.NoiseFloor)
	fmt.Fprintf(out, "clip mean:    %.2f\n", res.Stats.Mean)
	fmt.Fprintf(out, "clip peak:    %.2f\n\n", res.Stats.Peak)

	rows := m.Rows()
	if flags.rows > 0 {
		rows = min(rows, flags.rows)
	}

	bandHz := float64(fc.SampleRate) / float64(fc.FrameSize) * float64(fc.PoolingFactor)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Frame\tPeak Band\tBand Start [Hz]\tLevel [log10]\tCentroid [Hz]\tFlatness\n")
	fmt.Fprintf(tw, "-----\t---------\t---------------\t-------------\t-------------\t--------\n")

	var power []float64
	for r := range rows {
		c := m.ArgMaxRow(r)
		power = frequency.LinearPower(power, m.Row(r), fc.Epsilon)
		d := frequency.Calculate(power, bandHz)
		fmt.Fprintf(tw, "%d\t%d\t%.0f\t%.3f\t%.0f\t%.4f\n",
			r, c, float64(c)*bandHz, m.At(r, c), d.Centroid, d.Flatness)
	}

	return tw.Flush()
}
