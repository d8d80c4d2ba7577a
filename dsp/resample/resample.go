package resample

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidRate indicates a non-positive sample rate.
var ErrInvalidRate = errors.New("resample: invalid sample rate")

// Quality selects the anti-aliasing filter.
type Quality int

const (
	// QualityFast uses short filters.
	QualityFast Quality = iota
	// QualityBalanced is the default.
	QualityBalanced
	// QualityBest uses long filters with high stopband attenuation.
	QualityBest
)

type config struct {
	tapsPerPhase int
	kaiserBeta   float64
	cutoffScale  float64
}

func qualityConfig(q Quality) config {
	switch q {
	case QualityFast:
		return config{tapsPerPhase: 16, kaiserBeta: 5.0, cutoffScale: 0.88}
	case QualityBest:
		return config{tapsPerPhase: 64, kaiserBeta: 9.0, cutoffScale: 0.96}
	default:
		return config{tapsPerPhase: 32, kaiserBeta: 7.5, cutoffScale: 0.92}
	}
}

// Option configures a Converter.
type Option func(*config)

// WithQuality selects a quality mode. Later options override its values.
func WithQuality(q Quality) Option {
	return func(c *config) {
		*c = qualityConfig(q)
	}
}

// WithTapsPerPhase overrides taps per polyphase branch. Odd values are
// rounded up so the prototype filter has an integer center.
func WithTapsPerPhase(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.tapsPerPhase = n + n%2
		}
	}
}

// WithKaiserBeta overrides the Kaiser window beta.
func WithKaiserBeta(beta float64) Option {
	return func(c *config) {
		if beta > 0 {
			c.kaiserBeta = beta
		}
	}
}

// Converter resamples by the reduced ratio outRate/inRate.
type Converter struct {
	up, down int
	delay    int
	phases   [][]float64
}

// New designs a converter from inRate to outRate.
func New(inRate, outRate int, opts ...Option) (*Converter, error) {
	if inRate <= 0 || outRate <= 0 {
		return nil, fmt.Errorf("%w: %d -> %d", ErrInvalidRate, inRate, outRate)
	}

	cfg := qualityConfig(QualityBalanced)
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	g := gcd(inRate, outRate)
	c := &Converter{up: outRate / g, down: inRate / g}

	if c.up == c.down {
		return c, nil
	}

	taps := designLowpass(c.up, c.down, cfg)
	c.delay = (len(taps) - 1) / 2
	c.phases = make([][]float64, c.up)
	for i, h := range taps {
		p := i % c.up
		c.phases[p] = append(c.phases[p], h)
	}

	return c, nil
}

// Ratio returns the reduced up/down factors.
func (c *Converter) Ratio() (up, down int) { return c.up, c.down }

// OutputLen returns the number of samples Convert produces for n inputs.
func (c *Converter) OutputLen(n int) int {
	if n <= 0 {
		return 0
	}
	return (n*c.up + c.down - 1) / c.down
}

// Convert returns pcm at the output rate. Samples outside pcm are treated as
// silence; results saturate to the int16 range.
func (c *Converter) Convert(pcm []int16) []int16 {
	out := make([]int16, c.OutputLen(len(pcm)))
	if c.up == c.down {
		copy(out, pcm)
		return out
	}

	for m := range out {
		t := m*c.down + c.delay
		base, phase := t/c.up, t%c.up

		var y float64
		for k, h := range c.phases[phase] {
			idx := base - k
			if idx < 0 {
				break
			}
			if idx < len(pcm) {
				y += h * float64(pcm[idx])
			}
		}

		out[m] = saturate(y)
	}

	return out
}

// Clip converts pcm from inRate to outRate with default quality.
func Clip(pcm []int16, inRate, outRate int) ([]int16, error) {
	c, err := New(inRate, outRate)
	if err != nil {
		return nil, err
	}
	return c.Convert(pcm), nil
}

func saturate(v float64) int16 {
	return int16(math.Max(math.MinInt16, math.Min(math.MaxInt16, math.Round(v))))
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
