package graph

import "errors"

var (
	// ErrCycle is returned when a connection would make a node its own
	// upstream.
	ErrCycle = errors.New("graph: connection would create a cycle")
	// ErrDuplicateEdge is returned when the requested connection already
	// exists.
	ErrDuplicateEdge = errors.New("graph: edge already exists")
	// ErrUnknownNode is returned for node IDs not in the graph.
	ErrUnknownNode = errors.New("graph: unknown node")
	// ErrDuplicateNode is returned when an effect is added twice.
	ErrDuplicateNode = errors.New("graph: effect already in graph")
	// ErrNoOutput is returned when the upstream side of a connection has
	// no output, such as the graph's Output node.
	ErrNoOutput = errors.New("graph: node has no output")
	// ErrNilEffect is returned when adding a nil effect.
	ErrNilEffect = errors.New("graph: nil effect")
)
