// Package clip computes whole-clip statistics of 16-bit PCM used for
// normalization and activity detection.
package clip

import "math"

// Stats holds deviation statistics of one clip.
type Stats struct {
	Length int
	// Mean is the DC offset.
	Mean float64
	// Peak is max(|x - Mean|).
	Peak float64
	// MeanAbsDev is mean(|x - Mean|), the instantaneous noise estimate.
	MeanAbsDev float64
}

// Calculate computes the clip mean in a first pass and the deviation
// statistics in a second. An empty clip yields zero Stats.
func Calculate(pcm []int16) Stats {
	n := len(pcm)
	if n == 0 {
		return Stats{}
	}

	sum := 0.0
	for _, x := range pcm {
		sum += float64(x)
	}
	mean := sum / float64(n)

	var peak, absSum float64
	for _, x := range pcm {
		d := math.Abs(float64(x) - mean)
		if d > peak {
			peak = d
		}
		absSum += d
	}

	return Stats{
		Length:     n,
		Mean:       mean,
		Peak:       peak,
		MeanAbsDev: absSum / float64(n),
	}
}

// Scale returns the normalization divisor: Peak, or 1 when Peak < eps so
// silent and constant clips are not divided by zero.
func (s Stats) Scale(eps float64) float64 {
	if s.Peak < eps {
		return 1
	}
	return s.Peak
}

// CountAbove returns how many samples deviate from mean by strictly more than
// threshold.
func CountAbove(pcm []int16, mean, threshold float64) int {
	count := 0
	for _, x := range pcm {
		if math.Abs(float64(x)-mean) > threshold {
			count++
		}
	}
	return count
}
