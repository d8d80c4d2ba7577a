// Package frequency computes shape descriptors of one spectrogram frame.
//
// Descriptors work on linear band powers. A frame row holds
// log10(power+eps), so rows are converted back with [LinearPower] first.
package frequency

import "math"

// Descriptors summarizes the power distribution across bands.
type Descriptors struct {
	BandCount int
	PeakBand  int
	Energy    float64 // sum of band powers
	// Frequencies are band midpoints in Hz.
	Centroid float64
	Spread   float64
	Rolloff  float64 // frequency below which RolloffFraction of energy lies
	Flatness float64 // Wiener entropy, 0..1
}

// RolloffFraction is the energy fraction used by Calculate.
const RolloffFraction = 0.85

// LinearPower inverts log10(p+eps) into dst, clamping at 0, and returns it.
// dst is reused when it has enough capacity.
func LinearPower(dst, row []float64, eps float64) []float64 {
	if cap(dst) >= len(row) {
		dst = dst[:len(row)]
	} else {
		dst = make([]float64, len(row))
	}

	for i, v := range row {
		dst[i] = math.Max(0, math.Pow(10, v)-eps)
	}

	return dst
}

func bandFreq(i int, bandHz float64) float64 {
	return (float64(i) + 0.5) * bandHz
}

// Calculate computes all descriptors for band powers spaced bandHz apart.
func Calculate(power []float64, bandHz float64) Descriptors {
	d := Descriptors{BandCount: len(power)}
	if len(power) == 0 {
		return d
	}

	for i, v := range power {
		d.Energy += v
		if v > power[d.PeakBand] {
			d.PeakBand = i
		}
	}

	d.Centroid = centroid(power, bandHz, d.Energy)
	d.Spread = spread(power, bandHz, d.Centroid, d.Energy)
	d.Rolloff = rolloff(power, bandHz, RolloffFraction, d.Energy)
	d.Flatness = Flatness(power)

	return d
}

// Centroid returns the power-weighted mean band frequency in Hz.
func Centroid(power []float64, bandHz float64) float64 {
	sum := 0.0
	for _, v := range power {
		sum += v
	}
	return centroid(power, bandHz, sum)
}

func centroid(power []float64, bandHz, sum float64) float64 {
	if sum <= 0 {
		return 0
	}

	weighted := 0.0
	for i, v := range power {
		weighted += bandFreq(i, bandHz) * v
	}

	return weighted / sum
}

func spread(power []float64, bandHz, cent, sum float64) float64 {
	if sum <= 0 {
		return 0
	}

	acc := 0.0
	for i, v := range power {
		d := bandFreq(i, bandHz) - cent
		acc += d * d * v
	}

	return math.Sqrt(acc / sum)
}

// Rolloff returns the midpoint of the first band at which the cumulative
// power reaches fraction of the total.
func Rolloff(power []float64, bandHz, fraction float64) float64 {
	sum := 0.0
	for _, v := range power {
		sum += v
	}
	return rolloff(power, bandHz, fraction, sum)
}

func rolloff(power []float64, bandHz, fraction, sum float64) float64 {
	if len(power) == 0 || sum <= 0 {
		return 0
	}

	threshold := fraction * sum
	acc := 0.0
	for i, v := range power {
		acc += v
		if acc >= threshold {
			return bandFreq(i, bandHz)
		}
	}

	return bandFreq(len(power)-1, bandHz)
}

// Flatness returns geometric mean over arithmetic mean of the band powers.
// A zero band makes the geometric mean, and so the flatness, zero.
func Flatness(power []float64) float64 {
	if len(power) == 0 {
		return 0
	}

	sumLin, sumLog := 0.0, 0.0
	for _, v := range power {
		if v <= 0 {
			return 0
		}
		sumLin += v
		sumLog += math.Log(v)
	}

	n := float64(len(power))

	return math.Exp(sumLog/n) / (sumLin / n)
}
