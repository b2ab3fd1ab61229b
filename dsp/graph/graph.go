package graph

import (
	"fmt"

	"github.com/Zahr1729/Iron/dsp/effect"
)

// NodeID addresses a node by insertion order.
type NodeID int

const (
	// PlaceholderID is the silent node unconnected inputs point at.
	PlaceholderID NodeID = 0
	// OutputID is the node the render thread pulls from.
	OutputID NodeID = 1
)

// Edge is one input connection: From feeds slot Slot of To.
type Edge struct {
	From NodeID
	To   NodeID
	Slot int
}

// Graph is a cycle-free set of nodes.
type Graph struct {
	nodes     []effect.Effect
	index     map[effect.Effect]NodeID
	connected []bool
	output    *effect.Output
}

// New returns a graph holding the placeholder and the output, with the
// output fed by the placeholder.
func New() *Graph {
	zero := effect.NewZero()
	out := effect.NewOutput()
	_ = out.SetInput(0, zero)

	g := &Graph{
		nodes:  []effect.Effect{zero, out},
		index:  map[effect.Effect]NodeID{zero: PlaceholderID, out: OutputID},
		output: out,
	}
	g.recompute()

	return g
}

// AddNode appends e and returns its ID. Inputs e already has are kept,
// unless one of them leads back to e.
func (g *Graph) AddNode(e effect.Effect) (NodeID, error) {
	if e == nil {
		return 0, ErrNilEffect
	}
	if id, ok := g.index[e]; ok {
		return id, fmt.Errorf("%w: %s is node %d", ErrDuplicateNode, e.Name(), id)
	}
	for i := 0; i < e.InputCount(); i++ {
		if in, err := e.Input(i); err == nil && in != nil && reaches(in, e) {
			return 0, fmt.Errorf("%w: %s feeds itself through input %d", ErrCycle, e.Name(), i)
		}
	}

	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, e)
	g.index[e] = id
	g.recompute()

	return id, nil
}

// Connect makes node from the input of slot on node to. The graph is left
// unchanged when from has no output, when slot is out of range for to,
// when the edge already exists, or when it would close a cycle.
func (g *Graph) Connect(to NodeID, slot int, from NodeID) error {
	down, err := g.Node(to)
	if err != nil {
		return err
	}
	up, err := g.Node(from)
	if err != nil {
		return err
	}

	if up.OutputCount() == 0 {
		return fmt.Errorf("%w: node %d (%s)", ErrNoOutput, from, up.Name())
	}
	if n := down.InputCount(); slot < 0 || slot >= n {
		return fmt.Errorf("graph: connect %d -> %d: %w", from, to, &effect.OutOfBoundsError{Index: slot, Inputs: n})
	}

	if cur, err := down.Input(slot); err == nil && cur == up {
		return fmt.Errorf("%w: %d -> %d[%d]", ErrDuplicateEdge, from, to, slot)
	}

	if reaches(up, down) {
		return fmt.Errorf("%w: %d -> %d[%d]", ErrCycle, from, to, slot)
	}

	if err := down.SetInput(slot, up); err != nil {
		return fmt.Errorf("graph: connect %d -> %d: %w", from, to, err)
	}

	g.recompute()
	return nil
}

// Disconnect points slot of node to back at the placeholder.
func (g *Graph) Disconnect(to NodeID, slot int) error {
	down, err := g.Node(to)
	if err != nil {
		return err
	}
	if err := down.SetInput(slot, g.nodes[PlaceholderID]); err != nil {
		return fmt.Errorf("graph: disconnect %d: %w", to, err)
	}

	g.recompute()
	return nil
}

// reaches reports whether target is start or lies upstream of it.
func reaches(start, target effect.Effect) bool {
	visited := make(map[effect.Effect]bool)

	var walk func(e effect.Effect) bool
	walk = func(e effect.Effect) bool {
		if e == target {
			return true
		}
		if visited[e] {
			return false
		}
		visited[e] = true

		for i := 0; i < e.InputCount(); i++ {
			in, err := e.Input(i)
			if err != nil || in == nil {
				continue
			}
			if walk(in) {
				return true
			}
		}
		return false
	}

	return walk(start)
}

// recompute marks every node upstream of the output.
func (g *Graph) recompute() {
	g.connected = make([]bool, len(g.nodes))

	visited := make(map[effect.Effect]bool)
	var walk func(e effect.Effect)
	walk = func(e effect.Effect) {
		if visited[e] {
			return
		}
		visited[e] = true
		if id, ok := g.index[e]; ok {
			g.connected[id] = true
		}

		for i := 0; i < e.InputCount(); i++ {
			if in, err := e.Input(i); err == nil && in != nil {
				walk(in)
			}
		}
	}

	walk(g.output)
}

// Connected reports whether id feeds the output, directly or indirectly.
func (g *Graph) Connected(id NodeID) bool {
	if id < 0 || int(id) >= len(g.connected) {
		return false
	}
	return g.connected[id]
}

// Node returns the effect with the given ID.
func (g *Graph) Node(id NodeID) (effect.Effect, error) {
	if id < 0 || int(id) >= len(g.nodes) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	return g.nodes[id], nil
}

// Lookup returns the ID of e.
func (g *Graph) Lookup(e effect.Effect) (NodeID, bool) {
	id, ok := g.index[e]
	return id, ok
}

// Nodes returns the nodes in ID order.
func (g *Graph) Nodes() []effect.Effect {
	return append([]effect.Effect(nil), g.nodes...)
}

// Edges lists every input connection between graph nodes, ordered by the
// downstream node, except those from the placeholder.
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for to, e := range g.nodes {
		for slot := 0; slot < e.InputCount(); slot++ {
			in, err := e.Input(slot)
			if err != nil || in == nil {
				continue
			}
			from, ok := g.index[in]
			if !ok || from == PlaceholderID {
				continue
			}
			edges = append(edges, Edge{From: from, To: NodeID(to), Slot: slot})
		}
	}
	return edges
}

// Output returns the designated sink.
func (g *Graph) Output() *effect.Output { return g.output }

// Root returns the node the render thread should pull from.
func (g *Graph) Root() effect.Effect { return g.output }

// Len returns the number of nodes, including the placeholder and output.
func (g *Graph) Len() int { return len(g.nodes) }
