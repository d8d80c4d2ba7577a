package activity

import (
	"fmt"

	"github.com/cwbudde/algo-spectrogram/stats/clip"
)

// Config holds the detector constants.
type Config struct {
	// ThresholdFactor scales the smoothed floor into the per-sample
	// deviation threshold.
	ThresholdFactor float64
	// FallWeight is the weight of a new estimate below the smoothed floor.
	FallWeight float64
	// RiseWeight is the weight of a new estimate at or above the floor.
	RiseWeight float64
	// ActiveDivisor sets the activity quota: a clip is active when more than
	// len(clip)/ActiveDivisor samples exceed the threshold.
	ActiveDivisor int
}

// DefaultConfig returns the detector constants of the keyword firmware.
func DefaultConfig() Config {
	return Config{
		ThresholdFactor: 5,
		FallWeight:      0.3,
		RiseWeight:      0.01,
		ActiveDivisor:   20,
	}
}

// Validate checks that weights are in (0,1] and the divisor is positive.
func (c Config) Validate() error {
	switch {
	case !(c.ThresholdFactor >= 0):
		return fmt.Errorf("activity threshold factor must be >= 0: %v", c.ThresholdFactor)
	case !(c.FallWeight > 0 && c.FallWeight <= 1):
		return fmt.Errorf("activity fall weight must be in (0,1]: %v", c.FallWeight)
	case !(c.RiseWeight > 0 && c.RiseWeight <= 1):
		return fmt.Errorf("activity rise weight must be in (0,1]: %v", c.RiseWeight)
	case c.ActiveDivisor <= 0:
		return fmt.Errorf("activity divisor must be > 0: %d", c.ActiveDivisor)
	}
	return nil
}

// Decision is the outcome of observing one clip.
type Decision struct {
	// Active reports Count > len(clip)/ActiveDivisor.
	Active bool
	// Count is the number of samples above the pre-update threshold.
	Count int
	// Instant is the clip's mean absolute deviation.
	Instant float64
	// Previous is the smoothed floor the clip was judged against.
	Previous float64
	// Smoothed is the floor after this clip.
	Smoothed float64
}

// Tracker holds the smoothed noise floor. The zero value is not usable; use
// NewTracker. A Tracker is not safe for concurrent use; callers that share
// one across goroutines must serialize Observe and Reset.
type Tracker struct {
	cfg   Config
	floor float64
}

// NewTracker returns a tracker with a zero floor.
func NewTracker(cfg Config) (*Tracker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Tracker{cfg: cfg}, nil
}

// Config returns the tracker constants.
func (t *Tracker) Config() Config { return t.cfg }

// Floor returns the current smoothed noise floor.
func (t *Tracker) Floor() float64 { return t.floor }

// SetFloor overrides the smoothed noise floor. Negative values are clamped
// to zero.
func (t *Tracker) SetFloor(v float64) { t.floor = max(v, 0) }

// Reset returns the floor to zero.
func (t *Tracker) Reset() { t.floor = 0 }

// Smooth applies one asymmetric update step to prev.
func (c Config) Smooth(prev, instant float64) float64 {
	if instant < prev {
		return (1-c.FallWeight)*prev + c.FallWeight*instant
	}
	return (1-c.RiseWeight)*prev + c.RiseWeight*instant
}

// Observe judges pcm against the current floor and then updates the floor.
// st must be clip.Calculate(pcm); it is passed in so the caller can share
// one statistics pass with normalization.
//
// While the floor is zero every non-silent sample counts, so the first clip
// after a reset is judged active unless it is almost entirely silent.
func (t *Tracker) Observe(pcm []int16, st clip.Stats) Decision {
	prev := t.floor
	count := clip.CountAbove(pcm, st.Mean, t.cfg.ThresholdFactor*prev)

	t.floor = t.cfg.Smooth(prev, st.MeanAbsDev)

	return Decision{
		Active:   count > len(pcm)/t.cfg.ActiveDivisor,
		Count:    count,
		Instant:  st.MeanAbsDev,
		Previous: prev,
		Smoothed: t.floor,
	}
}
