package fft

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// ErrNotPowerOfTwo is returned for inputs whose length is not a positive
// power of two.
var ErrNotPowerOfTwo = errors.New("fft: length must be a power of two")

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Complex returns the discrete Fourier transform of x, or the unnormalized
// inverse transform when inverse is set. x is not modified.
func Complex(x []complex128, inverse bool) ([]complex128, error) {
	if !IsPowerOfTwo(len(x)) {
		return nil, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, len(x))
	}

	sign := -1.0
	if inverse {
		sign = 1.0
	}

	return transform(x, sign), nil
}

func transform(x []complex128, sign float64) []complex128 {
	n := len(x)
	if n == 1 {
		return []complex128{x[0]}
	}

	half := n / 2
	even := make([]complex128, half)
	odd := make([]complex128, half)
	for i := 0; i < half; i++ {
		even[i] = x[2*i]
		odd[i] = x[2*i+1]
	}

	e := transform(even, sign)
	o := transform(odd, sign)

	out := make([]complex128, n)
	step := cmplx.Rect(1, sign*2*math.Pi/float64(n))
	w := complex(1, 0)
	for k := 0; k < half; k++ {
		t := w * o[k]
		out[k] = e[k] + t
		out[k+half] = e[k] - t
		w *= step
	}

	return out
}

// Spectrum returns |X[k]|/sqrt(N) for every bin of the transform of the real
// signal x.
func Spectrum(x []float64) ([]float64, error) {
	if !IsPowerOfTwo(len(x)) {
		return nil, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, len(x))
	}

	in := make([]complex128, len(x))
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	bins := transform(in, -1)
	scale := 1 / math.Sqrt(float64(len(x)))

	out := make([]float64, len(bins))
	for i, b := range bins {
		out[i] = cmplx.Abs(b) * scale
	}

	return out, nil
}
