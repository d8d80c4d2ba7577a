package spectrum

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// errSelfCheck reports a transform whose output disagrees with a direct DFT.
var errSelfCheck = errors.New("transform self-check failed")

// maxCheckedBins bounds the cost of verifyTransformer on large frames.
const maxCheckedBins = 64

// verifyTransformer runs t on a fixed test frame and compares a spread of
// bins against a direct DFT.
func verifyTransformer(t Transformer) error {
	n := t.Size()
	frame := make([]float64, n)
	var l1 float64
	for i := range frame {
		x := float64(i)
		frame[i] = math.Sin(1.3*x) + 0.25*math.Cos(0.7*x) + float64(i%3) - 1
		l1 += math.Abs(frame[i])
	}

	bins := n/2 + 1
	got := make([]complex128, bins)
	if err := t.Forward(got, frame); err != nil {
		return fmt.Errorf("%w: %w", errSelfCheck, err)
	}

	step := max(1, bins/maxCheckedBins)
	tol := 1e-9*l1 + 1e-12
	for k := 0; k < bins; k += step {
		if err := checkBin(got[k], frame, k, tol); err != nil {
			return err
		}
	}
	// Always include the Nyquist bin.
	return checkBin(got[bins-1], frame, bins-1, tol)
}

func checkBin(got complex128, frame []float64, k int, tol float64) error {
	want := directBin(frame, k)
	if d := cmplx.Abs(got - want); d > tol || math.IsNaN(d) {
		return fmt.Errorf("%w: bin %d is %v, want %v", errSelfCheck, k, got, want)
	}
	return nil
}

func directBin(frame []float64, k int) complex128 {
	n := len(frame)
	var re, im float64
	for i, v := range frame {
		// Reduce the phase index first to keep the angle small.
		phase := -2 * math.Pi * float64((i*k)%n) / float64(n)
		s, c := math.Sincos(phase)
		re += v * c
		im += v * s
	}
	return complex(re, im)
}
