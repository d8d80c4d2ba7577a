package testutil

import (
	"math"
	"math/rand"
)

// ToneInt16 generates a deterministic 16-bit sine tone. Values are rounded
// and clamped to the int16 range.
func ToneInt16(freqHz, sampleRate, amplitude float64, length int) []int16 {
	out := make([]int16, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = clampInt16(amplitude * math.Sin(step*float64(i)))
	}
	return out
}

// NoiseInt16 generates uniform white noise in [-amplitude, amplitude] with a
// fixed seed for reproducibility.
func NoiseInt16(seed int64, amplitude float64, length int) []int16 {
	out := make([]int16, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = clampInt16((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// ConstantInt16 generates a clip holding a single value.
func ConstantInt16(value int16, length int) []int16 {
	out := make([]int16, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Mix adds b into a sample-wise with saturation and returns a new clip of
// len(a) samples.
func Mix(a, b []int16) []int16 {
	out := make([]int16, len(a))
	for i := range a {
		v := float64(a[i])
		if i < len(b) {
			v += float64(b[i])
		}
		out[i] = clampInt16(v)
	}
	return out
}

// Float64 converts a 16-bit clip to float64 without scaling.
func Float64(pcm []int16) []float64 {
	out := make([]float64, len(pcm))
	for i, v := range pcm {
		out[i] = float64(v)
	}
	return out
}

// DeterministicSine generates a deterministic float sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

func clampInt16(v float64) int16 {
	v = math.Round(v)
	switch {
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	default:
		return int16(v)
	}
}
