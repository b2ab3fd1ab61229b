package tui

import (
	"errors"

	"github.com/Zahr1729/Iron/dsp/effect"
	"github.com/Zahr1729/Iron/dsp/mipmap"
)

// waveform returns width peak amplitudes covering frames samples of
// channel 0 of p, or nil when there is nothing to plot.
func waveform(p effect.Plotter, frames, width int) []float64 {
	if p == nil || frames <= 0 || width <= 0 {
		return nil
	}

	step := 1
	for step*width < frames {
		step <<= 1
	}

	// Short pyramids cannot serve every step; fall back to finer levels
	// and merge the surplus points.
	for ; step >= 1; step >>= 1 {
		pd := mipmap.NewPlotData(step, 0, (frames+step-1)/step)
		minMax, err := p.WaveformPlotData(pd, 0)
		if errors.Is(err, mipmap.ErrStepTooLarge) {
			continue
		}
		if err != nil {
			return nil
		}
		return peaks(pd, minMax, width)
	}
	return nil
}

func peaks(pd *mipmap.PlotData, minMax bool, width int) []float64 {
	n := pd.Width()
	out := make([]float64, width)
	for c := range out {
		lo := c * n / width
		hi := max((c+1)*n/width, lo+1)
		for i := lo; i < hi && i < n; i++ {
			out[c] = max(out[c], abs(pd.Data[0][i]))
			if minMax {
				out[c] = max(out[c], abs(pd.Data[1][i]))
			}
		}
	}
	return out
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
