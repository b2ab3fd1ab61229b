package effect

import "github.com/cwbudde/algo-vecmath"

// Add sums two inputs sample by sample.
type Add struct {
	in inputs
}

// NewAdd returns a mixer with both inputs unconnected.
func NewAdd() *Add {
	return &Add{in: newInputs(2)}
}

// Apply renders input 0 into out and input 1 into a scratch buffer of the
// same length, then adds them.
func (a *Add) Apply(out []float64, start, channels int) {
	first, _ := a.in.get(0)
	second, _ := a.in.get(1)

	Render(first, out, start, channels)

	tmp, buf := getScratch(len(out))
	Render(second, tmp, start, channels)
	vecmath.AddBlockInPlace(out, tmp)
	putScratch(buf)
}

func (a *Add) InputCount() int  { return 2 }
func (a *Add) OutputCount() int { return 1 }

func (a *Add) SetInput(index int, input Effect) error { return a.in.set(index, input) }

func (a *Add) Input(index int) (Effect, error) { return a.in.get(index) }

// Name returns "Add".
func (a *Add) Name() string { return "Add" }
