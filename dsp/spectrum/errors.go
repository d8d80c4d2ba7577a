package spectrum

import "errors"

var (
	// ErrInitialization is returned when a transform cannot be constructed.
	// The failed engine is never returned; callers construct a new one.
	ErrInitialization = errors.New("spectrum engine initialization failed")
	// ErrTransform is returned when a constructed transform fails on a frame.
	ErrTransform = errors.New("spectrum transform failed")
	// ErrLengthMismatch is returned when a frame or destination slice does not
	// match the engine size.
	ErrLengthMismatch = errors.New("spectrum length mismatch")
)
