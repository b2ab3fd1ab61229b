package window

import "errors"

// ErrUnknownType is returned by [Parse] for unrecognized names.
var ErrUnknownType = errors.New("window: unknown type")

var (
	errEmptyCoeffs      = errors.New("window coefficients must not be empty")
	errZeroCoherentGain = errors.New("window coherent gain is zero")
)
