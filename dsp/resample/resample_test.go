package resample

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-spectrogram/internal/testutil"
)

func TestNewValidation(t *testing.T) {
	for _, rates := range [][2]int{{0, 16000}, {16000, 0}, {-1, 8000}} {
		if _, err := New(rates[0], rates[1]); !errors.Is(err, ErrInvalidRate) {
			t.Fatalf("New(%d, %d) err = %v, want ErrInvalidRate", rates[0], rates[1], err)
		}
	}
}

func TestRatioReduction(t *testing.T) {
	tests := []struct {
		in, out  int
		up, down int
	}{
		{48000, 16000, 1, 3},
		{44100, 16000, 160, 441},
		{8000, 16000, 2, 1},
		{16000, 16000, 1, 1},
	}

	for _, tc := range tests {
		c, err := New(tc.in, tc.out)
		if err != nil {
			t.Fatalf("New(%d, %d): %v", tc.in, tc.out, err)
		}

		up, down := c.Ratio()
		if up != tc.up || down != tc.down {
			t.Fatalf("%d->%d ratio = %d/%d, want %d/%d", tc.in, tc.out, up, down, tc.up, tc.down)
		}

		if got, want := c.OutputLen(tc.in), tc.out; got != want {
			t.Fatalf("%d->%d OutputLen(1s) = %d, want %d", tc.in, tc.out, got, want)
		}
	}
}

func TestIdentityCopies(t *testing.T) {
	in := []int16{1, -2, 3}

	out, err := Clip(in, 16000, 16000)
	if err != nil {
		t.Fatalf("Clip: %v", err)
	}

	out[0] = 99
	if in[0] != 1 {
		t.Fatal("identity conversion aliases its input")
	}
}

func TestTonePreserved(t *testing.T) {
	const (
		freq = 1000.0
		amp  = 10000.0
	)

	for _, inRate := range []int{48000, 44100, 8000} {
		in := testutil.ToneInt16(freq, float64(inRate), amp, inRate)

		out, err := Clip(in, inRate, 16000)
		if err != nil {
			t.Fatalf("Clip(%d): %v", inRate, err)
		}

		want := testutil.DeterministicSine(freq, 16000, amp, len(out))

		// Skip the edges where the filter runs off the recording.
		tol := 0.01*amp + 1
		for i := 200; i < len(out)-200; i++ {
			if d := math.Abs(float64(out[i]) - want[i]); d > tol {
				t.Fatalf("%d Hz input: sample %d = %d, want %.1f (diff %.1f)", inRate, i, out[i], want[i], d)
			}
		}
	}
}

func TestDownsamplingRejectsAliases(t *testing.T) {
	// 20 kHz is above the 8 kHz output Nyquist and must be filtered out.
	in := testutil.ToneInt16(20000, 48000, 10000, 48000)

	out, err := Clip(in, 48000, 16000)
	if err != nil {
		t.Fatalf("Clip: %v", err)
	}

	peak := 0.0
	for _, v := range out[200 : len(out)-200] {
		peak = math.Max(peak, math.Abs(float64(v)))
	}

	if peak > 100 {
		t.Fatalf("alias peak = %v, want < 100", peak)
	}
}

func TestQualityOptions(t *testing.T) {
	fast, err := New(48000, 16000, WithQuality(QualityFast))
	if err != nil {
		t.Fatalf("New fast: %v", err)
	}

	best, err := New(48000, 16000, WithQuality(QualityBest), WithTapsPerPhase(33), WithKaiserBeta(10))
	if err != nil {
		t.Fatalf("New best: %v", err)
	}

	if len(fast.phases[0]) != 17 || len(best.phases[0]) != 35 {
		t.Fatalf("phase lengths = %d, %d", len(fast.phases[0]), len(best.phases[0]))
	}
}
