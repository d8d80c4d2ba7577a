package window

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch is returned when a frame and a window table differ in
// length.
var ErrLengthMismatch = errors.New("frame and window must have same length")

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window size must be > 0: %d", size)
	}
	return nil
}
