package mipmap

import (
	"fmt"
	"math"
	"math/bits"
)

const (
	// DefaultCutoff is the pyramid level from which queries switch to
	// min/max envelope data.
	DefaultCutoff = 10
	// DefaultMinLength stops level construction once a level would halve
	// to this many samples or fewer.
	DefaultMinLength = 1000
)

// Option configures a Channel.
type Option func(*config)

type config struct {
	cutoff    int
	minLength int
}

// WithCutoff sets the level at which queries return min/max pairs instead
// of the representative line.
func WithCutoff(level int) Option {
	return func(c *config) {
		if level >= 0 {
			c.cutoff = level
		}
	}
}

// WithMinLength sets the length at which pyramid construction stops.
func WithMinLength(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.minLength = n
		}
	}
}

// Channel is an immutable peak pyramid over one channel of samples.
type Channel struct {
	representative [][]float64
	min            [][]float64
	max            [][]float64
	cutoff         int
}

// New builds the pyramids for data. Level 0 aliases data; callers must not
// mutate it afterwards.
func New(data []float64, opts ...Option) *Channel {
	cfg := config{cutoff: DefaultCutoff, minLength: DefaultMinLength}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	m := &Channel{
		representative: [][]float64{data},
		min:            [][]float64{data},
		max:            [][]float64{data},
		cutoff:         cfg.cutoff,
	}

	for size := len(data) / 2; size > cfg.minLength; size /= 2 {
		top := len(m.representative) - 1
		m.representative = append(m.representative, reduce(m.representative[top], pickAbsMax))
		m.min = append(m.min, reduce(m.min[top], math.Min))
		m.max = append(m.max, reduce(m.max[top], math.Max))
	}

	return m
}

// pickAbsMax keeps the value with the larger magnitude; ties keep b.
func pickAbsMax(a, b float64) float64 {
	if math.Abs(b) >= math.Abs(a) {
		return b
	}
	return a
}

func reduce(src []float64, pick func(a, b float64) float64) []float64 {
	out := make([]float64, (len(src)+1)/2)
	for i := range out {
		j := 2 * i
		if j+1 < len(src) {
			out[i] = pick(src[j], src[j+1])
		} else {
			out[i] = src[j]
		}
	}
	return out
}

// Full returns the original sample data.
func (m *Channel) Full() []float64 {
	return m.representative[0]
}

// Len returns the number of samples at level 0.
func (m *Channel) Len() int {
	return len(m.representative[0])
}

// Height returns the number of pyramid levels, including level 0.
func (m *Channel) Height() int {
	return len(m.representative)
}

// Cutoff returns the level from which min/max data is returned.
func (m *Channel) Cutoff() int {
	return m.cutoff
}

// Level returns the representative, min and max arrays at level n.
func (m *Channel) Level(n int) (representative, lo, hi []float64, err error) {
	if n < 0 || n >= m.Height() {
		return nil, nil, nil, fmt.Errorf("mipmap: level %d out of range [0,%d)", n, m.Height())
	}
	return m.representative[n], m.min[n], m.max[n], nil
}

// Presampled fills pd with len(pd.Data[0]) consecutive values from the level
// matching pd.Step, starting at pd.Start/pd.Step. Entries past the end of
// the data are zero. It reports whether min/max arrays were produced, in
// which case Data[0] holds minima and Data[1] maxima.
//
// pd is left untouched when the step is invalid.
func (m *Channel) Presampled(pd *PlotData) (bool, error) {
	if pd.Step <= 0 || pd.Step&(pd.Step-1) != 0 {
		return false, fmt.Errorf("%w: %d", ErrStepNotPowerOfTwo, pd.Step)
	}

	n := bits.TrailingZeros(uint(pd.Step))
	if n >= m.Height() {
		return false, fmt.Errorf("%w: log2(%d) >= %d", ErrStepTooLarge, pd.Step, m.Height())
	}

	pd.MinMax = n >= m.cutoff
	if pd.MinMax && len(pd.Data[1]) < len(pd.Data[0]) {
		pd.Data[1] = make([]float64, len(pd.Data[0]))
	}

	first, second := m.representative[n], []float64(nil)
	if pd.MinMax {
		first, second = m.min[n], m.max[n]
	}

	offset := 0
	if pd.Start > 0 {
		offset = pd.Start / pd.Step
	}

	fill(pd.Data[0], first, offset)
	if pd.MinMax {
		fill(pd.Data[1][:len(pd.Data[0])], second, offset)
	}

	return pd.MinMax, nil
}

func fill(dst, level []float64, offset int) {
	n := 0
	if offset < len(level) {
		n = copy(dst, level[offset:])
	}
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}

// ForRange picks the pyramid level suited to displaying sampleRange samples
// and returns its arrays (one representative array, or min then max), the
// step between consecutive entries and the fractional level it was derived
// from.
func (m *Channel) ForRange(sampleRange int) ([][]float64, int, float64) {
	height := float64(m.Height())
	depth := math.Log2(float64(m.Len())+0.1) - math.Log2(float64(sampleRange)+0.1) + 1
	f := height - math.Max(0, math.Min(depth, height))

	n := int(f)
	if n >= m.Height() {
		n = m.Height() - 1
	}

	if n < m.cutoff {
		return [][]float64{m.representative[n]}, 1 << n, f
	}
	return [][]float64{m.min[n], m.max[n]}, 1 << n, f
}
