package effect

import (
	"fmt"

	"github.com/Zahr1729/Iron/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Gain scales its input by a level given in decibels.
type Gain struct {
	in       inputs
	decibels cell[float64]
}

// NewGain returns a gain stage with no input connected.
func NewGain(db float64) *Gain {
	g := &Gain{in: newInputs(1)}
	g.decibels.store(db)
	return g
}

// Apply renders the input and multiplies by 10^(dB/20).
func (g *Gain) Apply(out []float64, start, channels int) {
	in, _ := g.in.get(0)
	Render(in, out, start, channels)
	vecmath.ScaleBlockInPlace(out, core.DBToLinear(g.decibels.load()))
}

// Decibels returns the current level.
func (g *Gain) Decibels() float64 { return g.decibels.load() }

// SetDecibels changes the level; it takes effect on the next Apply.
func (g *Gain) SetDecibels(db float64) { g.decibels.store(db) }

func (g *Gain) InputCount() int  { return 1 }
func (g *Gain) OutputCount() int { return 1 }

func (g *Gain) SetInput(index int, input Effect) error { return g.in.set(index, input) }

func (g *Gain) Input(index int) (Effect, error) { return g.in.get(index) }

// Name returns "Gain" with the current level.
func (g *Gain) Name() string {
	return fmt.Sprintf("Gain %+.1f dB", g.decibels.load())
}
