package scene

import (
	"errors"
	"fmt"
)

var (
	// ErrBadIndex is returned for start or input indices that are out of
	// range or that refer back to a node being expanded.
	ErrBadIndex = errors.New("scene: bad node index")
	// ErrUnknownType is returned for node types without a factory.
	ErrUnknownType = errors.New("scene: unknown node type")
	// ErrUnsupportedNode is returned when a graph node cannot be written
	// to a scene.
	ErrUnsupportedNode = errors.New("scene: node cannot be saved")
)

// IndexError describes an invalid node reference.
type IndexError struct {
	// Node is the referring node, or -1 for the start index.
	Node   int
	Index  int
	Reason string
}

func (e *IndexError) Error() string {
	if e.Node < 0 {
		return fmt.Sprintf("scene: start index %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("scene: node %d input %d: %s", e.Node, e.Index, e.Reason)
}

// Unwrap returns [ErrBadIndex].
func (e *IndexError) Unwrap() error {
	return ErrBadIndex
}
