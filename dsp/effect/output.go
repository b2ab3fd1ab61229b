package effect

import "github.com/Zahr1729/Iron/dsp/mipmap"

// Output is the graph's sink. It passes its input through unchanged and is
// what the render thread pulls from.
type Output struct {
	in inputs
}

// NewOutput returns a sink with no input connected.
func NewOutput() *Output {
	return &Output{in: newInputs(1)}
}

// Apply renders the input into out.
func (o *Output) Apply(out []float64, start, channels int) {
	in, _ := o.in.get(0)
	Render(in, out, start, channels)
}

func (o *Output) InputCount() int  { return 1 }
func (o *Output) OutputCount() int { return 0 }

func (o *Output) SetInput(index int, input Effect) error { return o.in.set(index, input) }

func (o *Output) Input(index int) (Effect, error) { return o.in.get(index) }

// Name returns "Output".
func (o *Output) Name() string { return "Output" }

// WaveformPlotData forwards the query to the connected input.
func (o *Output) WaveformPlotData(pd *mipmap.PlotData, channel int) (bool, error) {
	in, _ := o.in.get(0)
	return PlotInput(in, pd, channel)
}
