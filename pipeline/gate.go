package pipeline

import (
	"errors"
	"fmt"
)

// ErrUnknownGate is returned for a Gate value outside the defined set.
var ErrUnknownGate = errors.New("pipeline: unknown gate")

// DefaultFloorThreshold is the smoothed noise floor above which
// GateNoiseFloor lets a clip through.
const DefaultFloorThreshold = 2.2

// Gate decides which clips reach the classifier.
type Gate int

const (
	// GateActivity classifies clips the activity detector marks above noise.
	GateActivity Gate = iota
	// GateNoiseFloor classifies clips whose updated noise floor exceeds the
	// floor threshold.
	GateNoiseFloor
	// GateOpen classifies every clip.
	GateOpen
)

// String returns the gate name.
func (g Gate) String() string {
	switch g {
	case GateActivity:
		return "activity"
	case GateNoiseFloor:
		return "noise-floor"
	case GateOpen:
		return "open"
	default:
		return fmt.Sprintf("Gate(%d)", int(g))
	}
}

// ParseGate maps a gate name back to its Gate.
func ParseGate(name string) (Gate, error) {
	for _, g := range []Gate{GateActivity, GateNoiseFloor, GateOpen} {
		if g.String() == name {
			return g, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownGate, name)
}

// Valid reports whether g is one of the defined gates.
func (g Gate) Valid() bool {
	return g >= GateActivity && g <= GateOpen
}

func (g Gate) admits(aboveNoise bool, floor, threshold float64) bool {
	switch g {
	case GateNoiseFloor:
		return floor > threshold
	case GateOpen:
		return true
	case GateActivity:
		return aboveNoise
	default:
		return false
	}
}
