package rawbuf

import (
	"errors"
	"fmt"
)

// ErrTooLarge reports a slot count whose byte size cannot be
// represented on this platform.
var ErrTooLarge = errors.New("rawbuf: requested block size is too large")

// ErrNegativeCount reports a negative slot count.
var ErrNegativeCount = errors.New("rawbuf: requested slot count is negative")

// AllocError reports that a storage request could not be satisfied.
// No allocation takes place before the error is returned.
type AllocError struct {
	// Slots is the requested slot count.
	Slots int

	// Err is the underlying cause.
	Err error
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("rawbuf: cannot allocate %d slots: %v", e.Slots, e.Err)
}

func (e *AllocError) Unwrap() error {
	return e.Err
}

// IsAllocError reports whether err (or any error in its chain) is a
// [*AllocError].
func IsAllocError(err error) bool {
	if err == nil {
		return false
	}
	var ae *AllocError
	return errors.As(err, &ae)
}
