package spectrum

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-spectrogram/internal/testutil"
)

func TestPooledBinCount(t *testing.T) {
	tests := []struct {
		bins, factor, want int
	}{
		{161, 4, 41},
		{160, 4, 40},
		{129, 4, 33},
		{5, 0, 5},
		{0, 4, 0},
	}
	for _, tt := range tests {
		if got := PooledBinCount(tt.bins, tt.factor); got != tt.want {
			t.Fatalf("PooledBinCount(%d, %d) = %d, want %d", tt.bins, tt.factor, got, tt.want)
		}
	}
}

func TestPoolLog10Groups(t *testing.T) {
	power := []float64{1, 3, 5, 7, 10, 10, 10, 10, 99}

	got := PoolLog10(nil, power, 4, 1e-6)
	want := []float64{
		math.Log10(4 + 1e-6),
		math.Log10(10 + 1e-6),
		math.Log10(99 + 1e-6),
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestPoolLog10PartialLastGroup(t *testing.T) {
	power := make([]float64, 161)
	for i := range power {
		power[i] = 1
	}
	power[160] = 1000

	got := PoolLog10(nil, power, 4, 1e-6)
	if len(got) != 41 {
		t.Fatalf("len=%d, want 41", len(got))
	}
	// The final group holds only bin 160 and must not be diluted by the
	// missing three bins.
	if math.Abs(got[40]-math.Log10(1000+1e-6)) > 1e-12 {
		t.Fatalf("last band=%v, want %v", got[40], math.Log10(1000+1e-6))
	}
}

func TestPoolLog10ZeroPowerIsFinite(t *testing.T) {
	got := PoolLog10(nil, make([]float64, 161), 4, 1e-6)
	testutil.RequireFinite(t, got)
	for i, v := range got {
		if math.Abs(v+6) > 1e-9 {
			t.Fatalf("band %d = %v, want -6", i, v)
		}
	}
}

func TestPoolLog10ReusesDst(t *testing.T) {
	dst := make([]float64, 0, 64)
	got := PoolLog10(dst, make([]float64, 161), 4, 1e-6)
	if &got[0] != &dst[:1][0] {
		t.Fatal("PoolLog10 did not reuse dst capacity")
	}
}

func TestPoolerMatchesFunction(t *testing.T) {
	power := testutil.Float64(testutil.NoiseInt16(3, 1000, 161))
	for i := range power {
		power[i] = math.Abs(power[i])
	}

	p := NewPooler(4, 1e-6)
	testutil.RequireSliceNearlyEqual(t, p.Pool(nil, power), PoolLog10(nil, power, 4, 1e-6), 0)
}
