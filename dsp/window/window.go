package window

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	// TypeShiftedHann is a Hann window sampled at half-sample offsets:
	// w[i] = 0.5 - 0.5*cos(2*pi/N*(i+0.5)). Neither end reaches zero.
	TypeShiftedHann Type = iota
	// TypeHann is the periodic Hann window: w[i] = 0.5 - 0.5*cos(2*pi*i/N).
	TypeHann
	// TypeHamming is a Hamming window sampled at half-sample offsets.
	TypeHamming
)

var (
	hannCoeffs    = []float64{0.5, -0.5}
	hammingCoeffs = []float64{0.54, -0.46}
)

// String returns the window name.
func (t Type) String() string {
	switch t {
	case TypeShiftedHann:
		return "shifted-hann"
	case TypeHann:
		return "hann"
	case TypeHamming:
		return "hamming"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType maps a window name back to its Type.
func ParseType(name string) (Type, error) {
	for _, t := range []Type{TypeShiftedHann, TypeHann, TypeHamming} {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown window type %q", name)
}

// Generate returns window coefficients of the given length, or nil when
// length <= 0.
func Generate(t Type, length int) []float64 {
	if length <= 0 {
		return nil
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = evalWindow(t, samplePosition(t, i, length))
	}

	return out
}

// Table is a precomputed, read-only window. It is safe for concurrent use.
type Table struct {
	typ    Type
	coeffs []float64
}

// New precomputes a window table.
func New(t Type, size int) (*Table, error) {
	if err := validateLength(size); err != nil {
		return nil, err
	}
	if t < TypeShiftedHann || t > TypeHamming {
		return nil, fmt.Errorf("unknown window type %v", t)
	}
	return &Table{typ: t, coeffs: Generate(t, size)}, nil
}

// Type returns the window type.
func (w *Table) Type() Type { return w.typ }

// Len returns the window length.
func (w *Table) Len() int { return len(w.coeffs) }

// At returns coefficient i.
func (w *Table) At(i int) float64 { return w.coeffs[i] }

// Coefficients returns a copy of the window coefficients.
func (w *Table) Coefficients() []float64 {
	return append([]float64(nil), w.coeffs...)
}

// Apply multiplies frame in place by the window.
func (w *Table) Apply(frame []float64) error {
	if len(frame) != len(w.coeffs) {
		return fmt.Errorf("%w: frame %d, window %d", ErrLengthMismatch, len(frame), len(w.coeffs))
	}

	vecmath.MulBlockInPlace(frame, w.coeffs)

	return nil
}

func evalWindow(t Type, x float64) float64 {
	switch t {
	case TypeShiftedHann, TypeHann:
		return cosineFromCoeffs(x, hannCoeffs)
	case TypeHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	default:
		return 1
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

// samplePosition maps index n to a normalized position in [0,1).
func samplePosition(t Type, n, size int) float64 {
	if t == TypeHann {
		return float64(n) / float64(size)
	}
	return (float64(n) + 0.5) / float64(size)
}
