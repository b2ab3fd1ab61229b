package resample

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidRate indicates a non-positive sample rate.
var ErrInvalidRate = errors.New("resample: invalid sample rate")

// Quality controls the anti-aliasing filter.
type Quality int

const (
	QualityFast Quality = iota
	QualityBalanced
	QualityBest
)

type profile struct {
	tapsPerPhase int
	cutoffScale  float64
	kaiserBeta   float64
}

func qualityProfile(q Quality) profile {
	switch q {
	case QualityFast:
		return profile{tapsPerPhase: 16, cutoffScale: 0.88, kaiserBeta: 5.0}
	case QualityBest:
		return profile{tapsPerPhase: 64, cutoffScale: 0.96, kaiserBeta: 9.0}
	default:
		return profile{tapsPerPhase: 32, cutoffScale: 0.92, kaiserBeta: 7.5}
	}
}

// Option configures a Converter.
type Option func(*profile)

// WithQuality selects a predefined filter profile.
func WithQuality(q Quality) Option {
	return func(p *profile) {
		*p = qualityProfile(q)
	}
}

// Converter resamples buffers from one rate to another. It holds no
// streaming state and is safe for concurrent use.
type Converter struct {
	up, down int
	phases   [][]float64
	delay    int
}

// New designs a converter from inRate to outRate.
func New(inRate, outRate int, opts ...Option) (*Converter, error) {
	if inRate <= 0 || outRate <= 0 {
		return nil, fmt.Errorf("%w: %d -> %d", ErrInvalidRate, inRate, outRate)
	}

	p := qualityProfile(QualityBalanced)
	for _, opt := range opts {
		if opt != nil {
			opt(&p)
		}
	}

	g := gcd(inRate, outRate)
	c := &Converter{up: outRate / g, down: inRate / g}
	c.design(p)

	return c, nil
}

// design builds the prototype lowpass at the upsampled rate and splits it
// into up phases. The odd tap count keeps the group delay integral.
func (c *Converter) design(p profile) {
	n := p.tapsPerPhase*c.up + 1
	c.delay = (n - 1) / 2

	fc := 0.5 / float64(max(c.up, c.down)) * p.cutoffScale
	i0Beta := besselI0(p.kaiserBeta)

	h := make([]float64, n)
	sum := 0.0
	for i := range h {
		t := float64(i - c.delay)
		r := 2*float64(i)/float64(n-1) - 1
		w := besselI0(p.kaiserBeta*math.Sqrt(max(0, 1-r*r))) / i0Beta
		h[i] = 2 * fc * sinc(2*fc*t) * w
		sum += h[i]
	}

	// Unity passband gain after zero stuffing.
	scale := float64(c.up) / sum

	c.phases = make([][]float64, c.up)
	for ph := range c.phases {
		for i := ph; i < n; i += c.up {
			c.phases[ph] = append(c.phases[ph], h[i]*scale)
		}
	}
}

// Ratio returns the reduced up/down factors.
func (c *Converter) Ratio() (up, down int) {
	return c.up, c.down
}

// OutputLen returns the number of frames Convert produces for n input
// frames.
func (c *Converter) OutputLen(n int) int {
	if n <= 0 {
		return 0
	}
	return (n*c.up + c.down - 1) / c.down
}

// Convert resamples x. Samples outside x are treated as silence.
func (c *Converter) Convert(x []float64) []float64 {
	out := make([]float64, c.OutputLen(len(x)))

	for m := range out {
		t := m*c.down + c.delay
		base := t / c.up

		var y float64
		for k, h := range c.phases[t%c.up] {
			i := base - k
			if i < 0 {
				break
			}
			if i < len(x) {
				y += h * x[i]
			}
		}
		out[m] = y
	}

	return out
}

// Planar converts every channel from inRate to outRate. Equal rates
// return channels unchanged.
func Planar(channels [][]float64, inRate, outRate int, opts ...Option) ([][]float64, error) {
	if inRate == outRate && inRate > 0 {
		return channels, nil
	}

	c, err := New(inRate, outRate, opts...)
	if err != nil {
		return nil, err
	}

	out := make([][]float64, len(channels))
	for i, ch := range channels {
		out[i] = c.Convert(ch)
	}
	return out, nil
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}

// besselI0 evaluates the zeroth-order modified Bessel function by its
// power series.
func besselI0(x float64) float64 {
	sum, term := 1.0, 1.0
	q := x * x / 4
	for k := 1; k < 64; k++ {
		term *= q / float64(k*k)
		sum += term
		if term < sum*1e-16 {
			break
		}
	}
	return sum
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
