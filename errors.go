package vec

import (
	"errors"
	"fmt"
)

// ElemError wraps a failure raised by an element capability hook
// (construction or [Cloner.Clone]) during a vector operation, together
// with the operation name and the element index it failed at.
//
// Whether the vector rolled back partial work before propagating the
// error depends on the guarantee documented on the failing operation.
type ElemError struct {
	// Op names the failing step: "construct", "clone", or "copy-assign".
	Op string

	// Index is the index of the element whose hook failed: the source
	// index for clones and copy-assignments, the insertion position
	// for constructions.
	Index int

	// Err is the error returned by the element hook.
	Err error
}

func (e *ElemError) Error() string {
	return fmt.Sprintf("vec: %s of element %d failed: %v", e.Op, e.Index, e.Err)
}

func (e *ElemError) Unwrap() error {
	return e.Err
}

// IsElemError reports whether err (or any error in its chain) is a
// [*ElemError].
func IsElemError(err error) bool {
	if err == nil {
		return false
	}
	var ee *ElemError
	return errors.As(err, &ee)
}

// CauseOf unwraps the first [*ElemError] in err's chain and returns
// the underlying element failure. If err is not an ElemError it is
// returned as-is. Returns nil if err is nil.
func CauseOf(err error) error {
	if err == nil {
		return nil
	}

	var ee *ElemError
	if errors.As(err, &ee) {
		return ee.Err
	}
	return err
}
