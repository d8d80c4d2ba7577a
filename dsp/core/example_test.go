package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectrogram/dsp/core"
)

func ExampleApplyFeatureOptions() {
	cfg := core.ApplyFeatureOptions(
		core.WithFrameSize(512),
		core.WithHopSize(256),
	)

	fmt.Printf("bins=%d pooled=%d frames=%d\n",
		cfg.SpectrumBins(), cfg.PooledBins(), cfg.FrameCount(cfg.SampleCount()))

	// Output:
	// bins=257 pooled=65 frames=61
}
