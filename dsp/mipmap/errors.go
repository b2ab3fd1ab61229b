package mipmap

import "errors"

var (
	// ErrStepNotPowerOfTwo is returned when a query step is not a power of two.
	ErrStepNotPowerOfTwo = errors.New("mipmap: step must be a power of two")
	// ErrStepTooLarge is returned when log2(step) is not below the pyramid height.
	ErrStepTooLarge = errors.New("mipmap: step exceeds pyramid height")
)
