package spectrum

import "github.com/cwbudde/algo-spectrogram/dsp/core"

// PooledBinCount returns how many bands PoolLog10 produces for bins power
// values pooled by factor.
func PooledBinCount(bins, factor int) int {
	if factor <= 0 {
		factor = 1
	}
	return core.CeilDiv(bins, factor)
}

// Pooler averages consecutive groups of power bins and log-compresses each
// group mean. The zero value pools by one with no floor; use NewPooler.
type Pooler struct {
	Factor  int
	Epsilon float64
}

// NewPooler returns a pooler for the given group size and log floor.
func NewPooler(factor int, eps float64) Pooler {
	return Pooler{Factor: factor, Epsilon: eps}
}

// Pool writes log10(mean(group)+eps) for every group of power into dst and
// returns it. dst is reused when it has enough capacity.
func (p Pooler) Pool(dst, power []float64) []float64 {
	return PoolLog10(dst, power, p.Factor, p.Epsilon)
}

// PoolLog10 partitions power into groups of factor bins, averages each group
// and writes log10(mean+eps). The last group averages only the bins it has.
func PoolLog10(dst, power []float64, factor int, eps float64) []float64 {
	if factor <= 0 {
		factor = 1
	}

	n := PooledBinCount(len(power), factor)
	if cap(dst) >= n {
		dst = dst[:n]
	} else {
		dst = make([]float64, n)
	}

	for band := range dst {
		start := band * factor
		end := min(start+factor, len(power))

		sum := 0.0
		for _, v := range power[start:end] {
			sum += v
		}

		dst[band] = core.FloorLog10(sum/float64(end-start), eps)
	}

	return dst
}
