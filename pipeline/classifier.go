package pipeline

import (
	"context"

	"github.com/cwbudde/algo-spectrogram/dsp/spectrogram"
)

// Prediction is a classifier result.
type Prediction struct {
	Label  string
	Index  int
	Scores []float32
}

// NewPrediction picks the highest score. Ties resolve to the lowest index.
// Label is empty when labels has no entry for the winner.
func NewPrediction(scores []float32, labels []string) Prediction {
	if len(scores) == 0 {
		return Prediction{Index: -1}
	}

	best := 0
	for i, s := range scores[1:] {
		if s > scores[best] {
			best = i + 1
		}
	}

	p := Prediction{Index: best, Scores: scores}
	if best < len(labels) {
		p.Label = labels[best]
	}

	return p
}

// Classifier consumes a row-major rows x cols spectrogram. input is only
// valid for the duration of the call.
type Classifier interface {
	Classify(ctx context.Context, input []float32, rows, cols int) (Prediction, error)
}

// ClassifierFunc adapts a function to Classifier.
type ClassifierFunc func(ctx context.Context, input []float32, rows, cols int) (Prediction, error)

// Classify calls f.
func (f ClassifierFunc) Classify(ctx context.Context, input []float32, rows, cols int) (Prediction, error) {
	return f(ctx, input, rows, cols)
}

// Exporter receives the matrix of every gated-in clip before it is
// released, for streaming or dataset capture. It must not retain m.
type Exporter interface {
	Export(ctx context.Context, m *spectrogram.Matrix) error
}
