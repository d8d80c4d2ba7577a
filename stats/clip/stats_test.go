package clip

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-spectrogram/internal/testutil"
)

const tolerance = 1e-9

func TestCalculateEmpty(t *testing.T) {
	if got := Calculate(nil); got != (Stats{}) {
		t.Fatalf("Calculate(nil) = %#v, want zero", got)
	}
}

func TestCalculateSilence(t *testing.T) {
	s := Calculate(make([]int16, 16000))
	if s.Length != 16000 || s.Mean != 0 || s.Peak != 0 || s.MeanAbsDev != 0 {
		t.Fatalf("Calculate(silence) = %#v", s)
	}
	if got := s.Scale(1e-6); got != 1 {
		t.Fatalf("Scale() = %v, want 1", got)
	}
}

func TestCalculateConstantRemovesDC(t *testing.T) {
	s := Calculate(testutil.ConstantInt16(-300, 1000))
	if math.Abs(s.Mean+300) > tolerance {
		t.Fatalf("Mean = %v, want -300", s.Mean)
	}
	if s.Peak > tolerance || s.MeanAbsDev > tolerance {
		t.Fatalf("Peak=%v MeanAbsDev=%v, want 0", s.Peak, s.MeanAbsDev)
	}
	if got := s.Scale(1e-6); got != 1 {
		t.Fatalf("Scale() = %v, want 1", got)
	}
}

func TestCalculateKnownValues(t *testing.T) {
	// mean 2, deviations 2, 1, 0, 3, 0, 0 -> peak 3, mean abs dev 1.
	s := Calculate([]int16{0, 1, 2, 5, 2, 2})
	if math.Abs(s.Mean-2) > tolerance {
		t.Fatalf("Mean = %v, want 2", s.Mean)
	}
	if math.Abs(s.Peak-3) > tolerance {
		t.Fatalf("Peak = %v, want 3", s.Peak)
	}
	if math.Abs(s.MeanAbsDev-1) > tolerance {
		t.Fatalf("MeanAbsDev = %v, want 1", s.MeanAbsDev)
	}
	if got := s.Scale(1e-6); got != 3 {
		t.Fatalf("Scale() = %v, want 3", got)
	}
}

func TestCalculateTone(t *testing.T) {
	// 1000 full cycles, so the mean is zero.
	pcm := testutil.ToneInt16(1000, 16000, 10000, 16000)
	s := Calculate(pcm)
	if math.Abs(s.Mean) > 1e-6 {
		t.Fatalf("Mean = %v, want 0", s.Mean)
	}
	if math.Abs(s.Peak-10000) > tolerance {
		t.Fatalf("Peak = %v, want 10000", s.Peak)
	}

	want := 0.0
	for _, v := range testutil.DeterministicSine(1000, 16000, 10000, 16000) {
		want += math.Abs(v)
	}
	want /= 16000
	if math.Abs(s.MeanAbsDev-want) > 0.5 {
		t.Fatalf("MeanAbsDev = %v, want about %v", s.MeanAbsDev, want)
	}
}

func TestCountAbove(t *testing.T) {
	pcm := []int16{0, 10, -10, 11, -11, 50}
	if got := CountAbove(pcm, 0, 10); got != 3 {
		t.Fatalf("CountAbove(>10) = %d, want 3", got)
	}
	if got := CountAbove(pcm, 0, 0); got != 5 {
		t.Fatalf("CountAbove(>0) = %d, want 5", got)
	}
	if got := CountAbove(pcm, 50, 0); got != 5 {
		t.Fatalf("CountAbove(mean 50) = %d, want 5", got)
	}
}
