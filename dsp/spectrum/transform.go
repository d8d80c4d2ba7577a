package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	godspfft "github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Transformer computes the non-negative-frequency half of the DFT of a real
// frame.
type Transformer interface {
	// Size returns the frame length N.
	Size() int
	// Forward writes the N/2+1 unique bins of frame into dst.
	Forward(dst []complex128, frame []float64) error
}

// Backend selects a Transformer implementation.
type Backend int

const (
	// BackendGonum uses gonum's real FFT. It supports any even size.
	BackendGonum Backend = iota
	// BackendPlan uses an algo-fft complex plan. The plan is checked against a
	// direct DFT at construction; sizes it cannot transform correctly fail
	// with ErrInitialization.
	BackendPlan
	// BackendReference uses go-dsp's FFTReal. It allocates per frame.
	BackendReference
)

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case BackendGonum:
		return "gonum"
	case BackendPlan:
		return "algofft"
	case BackendReference:
		return "godsp"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// ParseBackend maps a backend name back to its Backend.
func ParseBackend(name string) (Backend, error) {
	for _, b := range []Backend{BackendGonum, BackendPlan, BackendReference} {
		if b.String() == name {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown spectrum backend %q", name)
}

// NewTransformer constructs the backend for frames of size samples.
func NewTransformer(b Backend, size int) (Transformer, error) {
	if size < 2 || size%2 != 0 {
		return nil, fmt.Errorf("%w: frame size must be even and >= 2: %d", ErrInitialization, size)
	}

	switch b {
	case BackendGonum:
		return &gonumTransformer{fft: fourier.NewFFT(size), size: size}, nil
	case BackendPlan:
		return newPlanTransformer(size)
	case BackendReference:
		return referenceTransformer{size: size}, nil
	default:
		return nil, fmt.Errorf("%w: unknown backend %v", ErrInitialization, b)
	}
}

func checkForward(dst []complex128, frame []float64, size int) error {
	if len(frame) != size {
		return fmt.Errorf("%w: frame %d, want %d", ErrLengthMismatch, len(frame), size)
	}
	if len(dst) != size/2+1 {
		return fmt.Errorf("%w: bins %d, want %d", ErrLengthMismatch, len(dst), size/2+1)
	}
	return nil
}

type gonumTransformer struct {
	fft  *fourier.FFT
	size int
}

func (g *gonumTransformer) Size() int { return g.size }

func (g *gonumTransformer) Forward(dst []complex128, frame []float64) error {
	if err := checkForward(dst, frame, g.size); err != nil {
		return err
	}
	g.fft.Coefficients(dst, frame)
	return nil
}

type planTransformer struct {
	plan *algofft.Plan[complex128]
	in   []complex128
	out  []complex128
}

func newPlanTransformer(size int) (*planTransformer, error) {
	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("%w: fft plan: %w", ErrInitialization, err)
	}

	p := &planTransformer{
		plan: plan,
		in:   make([]complex128, size),
		out:  make([]complex128, size),
	}
	if verifyTransformer(p) == nil {
		return p, nil
	}

	// The default kernels are wrong at some mixed-radix sizes (160, 320, 640).
	plan, err = algofft.NewPlanWithOptions[complex128](size, algofft.PlanOptions{
		Strategy: algofft.KernelBluestein,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: fft plan: %w", ErrInitialization, err)
	}
	p.plan = plan
	if err := verifyTransformer(p); err != nil {
		return nil, fmt.Errorf("%w: fft plan size %d: %w", ErrInitialization, size, err)
	}
	return p, nil
}

func (p *planTransformer) Size() int { return len(p.in) }

func (p *planTransformer) Forward(dst []complex128, frame []float64) error {
	if err := checkForward(dst, frame, len(p.in)); err != nil {
		return err
	}
	for i, v := range frame {
		p.in[i] = complex(v, 0)
	}
	if err := p.plan.Forward(p.out, p.in); err != nil {
		return fmt.Errorf("%w: %w", ErrTransform, err)
	}
	copy(dst, p.out[:len(dst)])
	return nil
}

type referenceTransformer struct {
	size int
}

func (r referenceTransformer) Size() int { return r.size }

func (r referenceTransformer) Forward(dst []complex128, frame []float64) error {
	if err := checkForward(dst, frame, r.size); err != nil {
		return err
	}
	copy(dst, godspfft.FFTReal(frame)[:len(dst)])
	return nil
}
