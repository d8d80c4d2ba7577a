package pipeline_test

import (
	"context"
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectrogram/dsp/spectrogram"
	"github.com/cwbudde/algo-spectrogram/pipeline"
)

func ExamplePipeline_Process() {
	ex, err := spectrogram.NewExtractor()
	if err != nil {
		panic(err)
	}

	// Pick the label of the loudest pooled band of the first frame.
	classify := pipeline.ClassifierFunc(func(_ context.Context, input []float32, _, cols int) (pipeline.Prediction, error) {
		return pipeline.NewPrediction(input[:cols], nil), nil
	})

	p, err := pipeline.New(ex, classify)
	if err != nil {
		panic(err)
	}

	pcm := make([]int16, 16000)
	for i := range pcm {
		pcm[i] = int16(8000 * math.Sin(2*math.Pi*1100*float64(i)/16000))
	}

	out, err := p.Process(context.Background(), pcm)
	if err != nil {
		panic(err)
	}

	fmt.Println(out.Classified, out.Prediction.Index, p.NoiseFloor())
	// Output: true 5 0
}
