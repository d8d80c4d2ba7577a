package resample

import "math"

// designLowpass returns an odd-length Kaiser-windowed sinc at the upsampled
// rate with DC gain up, so each polyphase branch has unity gain.
func designLowpass(up, down int, cfg config) []float64 {
	n := cfg.tapsPerPhase*up + 1
	center := float64(n-1) / 2
	fc := 0.5 / float64(max(up, down)) * cfg.cutoffScale

	taps := make([]float64, n)
	sum := 0.0
	for i := range taps {
		x := 2 * fc * (float64(i) - center)
		taps[i] = 2 * fc * sinc(x) * kaiser(float64(i)-center, center, cfg.kaiserBeta)
		sum += taps[i]
	}

	scale := float64(up) / sum
	for i := range taps {
		taps[i] *= scale
	}

	return taps
}

func sinc(x float64) float64 {
	if math.Abs(x) < 1e-12 {
		return 1
	}
	return math.Sin(math.Pi*x) / (math.Pi * x)
}

// kaiser evaluates the window at offset t from the center of a window with
// half-width half.
func kaiser(t, half, beta float64) float64 {
	if half == 0 {
		return 1
	}
	r := t / half
	return besselI0(beta*math.Sqrt(math.Max(0, 1-r*r))) / besselI0(beta)
}

func besselI0(x float64) float64 {
	sum, term := 1.0, 1.0
	q := x * x / 4
	for k := 1; k < 64; k++ {
		term *= q / float64(k*k)
		sum += term
		if term < 1e-16*sum {
			break
		}
	}
	return sum
}
