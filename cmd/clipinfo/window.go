package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-spectrogram/dsp/window"
)

func newWindowCmd() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "window [type ...]",
		Short: "Print spectral properties of the analysis windows",
		Long: `Print coherent gain, equivalent noise bandwidth and scalloping loss.

Without arguments all window types are listed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			types := []window.Type{window.TypeShiftedHann, window.TypeHann, window.TypeHamming}
			if len(args) > 0 {
				types = types[:0]
				for _, name := range args {
					t, err := window.ParseType(name)
					if err != nil {
						return err
					}
					types = append(types, t)
				}
			}
			return printWindows(cmd, types, size)
		},
	}

	cmd.Flags().IntVar(&size, "size", 320, "window length in samples")

	return cmd
}

func printWindows(cmd *cobra.Command, types []window.Type, size int) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Window\tSize\tFirst\tCoherent Gain\tENBW [bins]\tScallop [dB]\n")
	fmt.Fprintf(tw, "------\t----\t-----\t-------------\t-----------\t------------\n")

	for _, t := range types {
		w, err := window.Shared(t, size)
		if err != nil {
			return err
		}

		a := window.Analyze(w.Coefficients())
		fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.6f\t%.4f\t%.4f\n",
			t, size, w.At(0), a.CoherentGain, a.ENBW, a.ScallopLossdB)
	}

	return tw.Flush()
}
