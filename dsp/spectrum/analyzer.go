package spectrum

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/Zahr1729/Iron/dsp/core"
	"github.com/Zahr1729/Iron/dsp/effect"
	"github.com/Zahr1729/Iron/dsp/window"
)

// FloorDB is the level reported for silent bins by [Analyzer.CurveDB].
const FloorDB = -130.0

// ErrInvalidSize is returned for analyzer sizes that are not a power of two.
var ErrInvalidSize = errors.New("spectrum: size must be a power of two")

// Option configures an Analyzer.
type Option func(*config)

type config struct {
	window   *window.Type
	channels int
}

// WithWindow applies a periodic window of type t before the transform.
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.window = &t
	}
}

// WithHann is shorthand for WithWindow(window.TypeHann).
func WithHann() Option {
	return WithWindow(window.TypeHann)
}

// WithChannels sets the channel count frames are rendered with before
// being mixed to mono. The default is 2.
func WithChannels(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.channels = n
		}
	}
}

// Analyzer computes magnitude spectra of fixed-size frames.
type Analyzer struct {
	size     int
	channels int
	plan     *algofft.Plan[complex128]
	window   []float64

	render []float64
	mono   []float64
	in     []complex128
	out    []complex128
}

// NewAnalyzer prepares an analyzer for frames of size samples.
func NewAnalyzer(size int, opts ...Option) (*Analyzer, error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	cfg := config{channels: 2}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("spectrum: init fft plan: %w", err)
	}

	a := &Analyzer{
		size:     size,
		channels: cfg.channels,
		plan:     plan,
		render:   make([]float64, size*cfg.channels),
		mono:     make([]float64, size),
		in:       make([]complex128, size),
		out:      make([]complex128, size),
	}
	if cfg.window != nil {
		a.window = window.Generate(*cfg.window, size, window.WithPeriodic())
		if a.window == nil {
			return nil, fmt.Errorf("spectrum: %w: %v", window.ErrUnknownType, *cfg.window)
		}
	}

	return a, nil
}

// Size returns the frame length.
func (a *Analyzer) Size() int { return a.size }

// Frame renders size frames of src centered on center (clamped so the
// window never starts before frame 0), mixes them to mono and returns the
// magnitude of every bin divided by sqrt(size).
func (a *Analyzer) Frame(src effect.Effect, center int) ([]float64, error) {
	start := max(0, center-a.size/2)
	effect.Render(src, a.render, start, a.channels)
	core.Mono(a.mono, a.render, a.channels)
	return a.Samples(a.mono)
}

// Samples returns the scaled magnitude spectrum of x, which must hold
// exactly size samples.
func (a *Analyzer) Samples(x []float64) ([]float64, error) {
	if len(x) != a.size {
		return nil, fmt.Errorf("%w: got %d samples, analyzer size %d", ErrInvalidSize, len(x), a.size)
	}

	if a.window != nil {
		if &a.mono[0] != &x[0] {
			copy(a.mono, x)
		}
		vecmath.MulBlockInPlace(a.mono, a.window)
		x = a.mono
	}

	for i, v := range x {
		a.in[i] = complex(v, 0)
	}

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return nil, fmt.Errorf("spectrum: forward fft: %w", err)
	}

	mag := make([]float64, a.size)
	Magnitude(mag, a.out)
	vecmath.ScaleBlockInPlace(mag, 1/math.Sqrt(float64(a.size)))

	return mag, nil
}

// CurveDB converts the first half of a magnitude frame (bins 0..size/2)
// to decibels, clamped at [FloorDB].
func CurveDB(mag []float64) []float64 {
	n := len(mag)/2 + 1
	if len(mag) == 0 {
		return nil
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = math.Max(core.LinearToDB(mag[i]), FloorDB)
	}
	return out
}

// BinFrequency returns the center frequency in Hz of bin k.
func (a *Analyzer) BinFrequency(k int, sampleRate float64) float64 {
	return float64(k) * sampleRate / float64(a.size)
}
