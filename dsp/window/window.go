package window

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeBlackmanHarris
	TypeFlatTop
)

// Metadata holds spectral properties of a window type.
type Metadata struct {
	Name string
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW         float64
	CoherentGain float64
}

// Cosine-sum coefficients a0..aK of w(x) = sum (-1)^k a_k cos(2 pi k x).
var cosineTerms = map[Type][]float64{
	TypeRectangular:    {1},
	TypeHann:           {0.5, 0.5},
	TypeHamming:        {0.54, 0.46},
	TypeBlackman:       {0.42, 0.5, 0.08},
	TypeBlackmanHarris: {0.35875, 0.48829, 0.14128, 0.01168},
	TypeFlatTop:        {0.21557895, 0.41663158, 0.277263158, 0.083578947, 0.006947368},
}

var metadataByType = map[Type]Metadata{
	TypeRectangular:    {Name: "rectangular", ENBW: 1, CoherentGain: 1},
	TypeHann:           {Name: "hann", ENBW: 1.5, CoherentGain: 0.5},
	TypeHamming:        {Name: "hamming", ENBW: 1.3628, CoherentGain: 0.54},
	TypeBlackman:       {Name: "blackman", ENBW: 1.7268, CoherentGain: 0.42},
	TypeBlackmanHarris: {Name: "blackman-harris", ENBW: 2.0044, CoherentGain: 0.35875},
	TypeFlatTop:        {Name: "flattop", ENBW: 3.7702, CoherentGain: 0.21557895},
}

// Types lists the supported window types.
func Types() []Type {
	return []Type{TypeRectangular, TypeHann, TypeHamming, TypeBlackman, TypeBlackmanHarris, TypeFlatTop}
}

// String returns the window name as accepted by [Parse].
func (t Type) String() string {
	if m, ok := metadataByType[t]; ok {
		return m.Name
	}
	return fmt.Sprintf("window(%d)", int(t))
}

// Parse looks a window type up by name, ignoring case.
func Parse(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range Types() {
		if metadataByType[t].Name == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic bool
}

// WithPeriodic configures periodic form (FFT framing) instead of symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generate returns window coefficients of the given length. Unknown types
// yield nil.
func Generate(t Type, length int, opts ...Option) []float64 {
	terms, ok := cosineTerms[t]
	if !ok || length <= 0 {
		return nil
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	den := float64(length - 1)
	if cfg.periodic || length == 1 {
		den = float64(length)
	}

	out := make([]float64, length)
	for i := range out {
		x := float64(i) / den
		sign := 1.0
		for k, a := range terms {
			out[i] += sign * a * math.Cos(2*math.Pi*float64(k)*x)
			sign = -sign
		}
	}

	return out
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) {
	coeffs := Generate(t, len(buf), opts...)
	if len(coeffs) != len(buf) {
		return
	}

	vecmath.MulBlockInPlace(buf, coeffs)
}

// Info returns static metadata for a window type.
func Info(t Type) Metadata {
	return metadataByType[t]
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	sumSquares := 0.0

	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}

	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}
