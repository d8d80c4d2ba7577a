package spectrogram

import (
	"errors"

	"github.com/cwbudde/algo-spectrogram/dsp/spectrum"
)

var (
	// ErrInitialization is returned by NewExtractor when the window or the
	// spectrum engine cannot be constructed. No extractor is returned; the
	// caller must construct a new one before extracting.
	ErrInitialization = spectrum.ErrInitialization
	// ErrAllocation is returned when the matrix for a clip would exceed the
	// configured cell budget.
	ErrAllocation = errors.New("spectrogram allocation failed")
	// ErrClipLength is returned when a clip does not hold exactly the
	// configured number of samples.
	ErrClipLength = errors.New("clip length mismatch")
	// ErrReleased is returned when a released matrix is read.
	ErrReleased = errors.New("spectrogram matrix already released")
)
