package effect

import "github.com/Zahr1729/Iron/dsp/mipmap"

// Zero renders silence.
type Zero struct {
	Source
}

// NewZero returns a silent source.
func NewZero() *Zero {
	return &Zero{}
}

// Apply writes 0 to every sample of out.
func (z *Zero) Apply(out []float64, _, _ int) {
	clear(out)
}

// Name returns "Zero".
func (z *Zero) Name() string { return "Zero" }

// WaveformPlotData zero-fills pd.
func (z *Zero) WaveformPlotData(pd *mipmap.PlotData, _ int) (bool, error) {
	pd.MinMax = false
	pd.Zero()
	return false, nil
}
