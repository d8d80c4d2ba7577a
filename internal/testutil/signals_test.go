package testutil

import (
	"math"
	"testing"
)

func TestToneInt16(t *testing.T) {
	tone := ToneInt16(1000, 16000, 1000, 16)
	if len(tone) != 16 {
		t.Fatalf("len = %d, want 16", len(tone))
	}
	if tone[0] != 0 {
		t.Fatalf("tone[0] = %d, want 0", tone[0])
	}
	// 1 kHz at 16 kHz peaks at sample 4.
	if tone[4] != 1000 {
		t.Fatalf("tone[4] = %d, want 1000", tone[4])
	}
}

func TestToneInt16Saturates(t *testing.T) {
	tone := ToneInt16(1000, 16000, 1e6, 16)
	if tone[4] != math.MaxInt16 || tone[12] != math.MinInt16 {
		t.Fatalf("expected saturation, got %d and %d", tone[4], tone[12])
	}
}

func TestNoiseInt16Deterministic(t *testing.T) {
	a := NoiseInt16(7, 500, 64)
	b := NoiseInt16(7, 500, 64)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: %d != %d", i, a[i], b[i])
		}
		if a[i] > 500 || a[i] < -500 {
			t.Fatalf("index %d: %d outside amplitude", i, a[i])
		}
	}
}

func TestMix(t *testing.T) {
	got := Mix([]int16{1, 32000, -3}, []int16{2, 32000})
	want := []int16{3, math.MaxInt16, -3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Mix()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestConstantAndFloat64(t *testing.T) {
	f := Float64(ConstantInt16(-4, 3))
	RequireSliceNearlyEqual(t, f, []float64{-4, -4, -4}, 0)
}
