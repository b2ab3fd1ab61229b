package scene

import (
	"fmt"

	"github.com/Zahr1729/Iron/dsp/effect"
	"github.com/Zahr1729/Iron/dsp/graph"
	"github.com/Zahr1729/Iron/dsp/track"
)

// FromGraph describes the part of g that feeds its output. Nodes appear
// after all of their inputs; unconnected input slots become zero nodes.
func FromGraph(g *graph.Graph) (*Scene, error) {
	w := &writer{index: make(map[effect.Effect]int)}

	root, err := g.Output().Input(0)
	if err != nil {
		return nil, err
	}

	start, err := w.visit(root)
	if err != nil {
		return nil, err
	}

	return &Scene{Start: intPtr(start), Nodes: w.nodes}, nil
}

type writer struct {
	nodes []Node
	index map[effect.Effect]int
	zero  *int
}

func (w *writer) visit(e effect.Effect) (int, error) {
	if e == nil {
		if w.zero == nil {
			w.zero = intPtr(w.add(Node{Type: TypeZero}))
		}
		return *w.zero, nil
	}
	if i, ok := w.index[e]; ok {
		return i, nil
	}

	inputs := make([]int, e.InputCount())
	for slot := range inputs {
		in, err := e.Input(slot)
		if err != nil {
			return 0, err
		}
		if inputs[slot], err = w.visit(in); err != nil {
			return 0, err
		}
	}

	var n Node
	switch v := e.(type) {
	case *effect.Zero:
		n = Node{Type: TypeZero}
	case *effect.SineWave:
		n = Node{Type: TypeSine, Amplitude: v.Amplitude(), Frequency: v.Frequency(), Phase: v.Phase()}
	case *effect.Gain:
		n = Node{Type: TypeGain, DB: v.Decibels(), Input: intPtr(inputs[0])}
	case *effect.Add:
		n = Node{Type: TypeAdd, Inputs: inputs}
	case *track.Track:
		n = Node{Type: TypeTrack, Path: v.Path()}
	default:
		return 0, fmt.Errorf("%w: %s (%T)", ErrUnsupportedNode, e.Name(), e)
	}

	i := w.add(n)
	w.index[e] = i
	return i, nil
}

func (w *writer) add(n Node) int {
	w.nodes = append(w.nodes, n)
	return len(w.nodes) - 1
}
