package effect

import "github.com/Zahr1729/Iron/dsp/mipmap"

// Effect is a node of the processing graph.
//
// Apply fills out with interleaved frames beginning at the absolute frame
// index start. It must never touch memory outside out. channels <= 0 is
// treated as 1, and a trailing partial frame is filled only as far as out
// reaches.
type Effect interface {
	Apply(out []float64, start, channels int)
	InputCount() int
	OutputCount() int
	SetInput(index int, input Effect) error
	Input(index int) (Effect, error)
	Name() string
}

// Plotter is implemented by nodes that can answer waveform queries for a
// visualization.
type Plotter interface {
	WaveformPlotData(pd *mipmap.PlotData, channel int) (bool, error)
}

// Channels normalizes a channel count as used by Apply.
func Channels(channels int) int {
	if channels <= 0 {
		return 1
	}
	return channels
}

// Render applies e to out, or writes silence when e is nil.
func Render(e Effect, out []float64, start, channels int) {
	if e == nil {
		clear(out)
		return
	}
	e.Apply(out, start, channels)
}

// PlotInput forwards a waveform query to in, zero-filling the request when
// in is nil or cannot plot.
func PlotInput(in Effect, pd *mipmap.PlotData, channel int) (bool, error) {
	if p, ok := in.(Plotter); ok {
		return p.WaveformPlotData(pd, channel)
	}
	pd.MinMax = false
	pd.Zero()
	return false, nil
}
