package effect

import "sync"

// cell holds one value shared between the control and audio goroutines.
type cell[T any] struct {
	mu sync.Mutex
	v  T
}

func (c *cell[T]) load() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.v
}

func (c *cell[T]) store(v T) {
	c.mu.Lock()
	c.v = v
	c.mu.Unlock()
}

// inputs is a fixed-arity list of input slots.
type inputs []cell[Effect]

func newInputs(n int) inputs {
	return make(inputs, n)
}

func (in inputs) get(index int) (Effect, error) {
	if index < 0 || index >= len(in) {
		return nil, &OutOfBoundsError{Index: index, Inputs: len(in)}
	}
	return in[index].load(), nil
}

func (in inputs) set(index int, e Effect) error {
	if index < 0 || index >= len(in) {
		return &OutOfBoundsError{Index: index, Inputs: len(in)}
	}
	in[index].store(e)
	return nil
}

// Source can be embedded by nodes without inputs.
type Source struct{}

// InputCount returns 0.
func (Source) InputCount() int { return 0 }

// OutputCount returns 1.
func (Source) OutputCount() int { return 1 }

// SetInput always fails with [ErrOutOfBounds].
func (Source) SetInput(index int, _ Effect) error {
	return &OutOfBoundsError{Index: index}
}

// Input always fails with [ErrOutOfBounds].
func (Source) Input(index int) (Effect, error) {
	return nil, &OutOfBoundsError{Index: index}
}
