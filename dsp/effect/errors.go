package effect

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when an input slot index does not exist.
var ErrOutOfBounds = errors.New("effect: input index out of bounds")

// OutOfBoundsError reports the offending slot index and the arity of the
// node it was used on.
type OutOfBoundsError struct {
	Index  int
	Inputs int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("effect: input index %d out of bounds (node has %d inputs)", e.Index, e.Inputs)
}

// Unwrap returns [ErrOutOfBounds].
func (e *OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}
