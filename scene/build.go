package scene

import (
	"fmt"
	"log/slog"

	"github.com/Zahr1729/Iron/dsp/effect"
	"github.com/Zahr1729/Iron/dsp/graph"
)

// BuildOption configures Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	registry   *Registry
	load       Loader
	sampleRate float64
	logger     *slog.Logger
}

// WithRegistry replaces the default node registry.
func WithRegistry(r *Registry) BuildOption {
	return func(c *buildConfig) {
		if r != nil {
			c.registry = r
		}
	}
}

// WithLoader replaces the track loader. Paths passed to it are already
// resolved against the scene directory.
func WithLoader(l Loader) BuildOption {
	return func(c *buildConfig) {
		if l != nil {
			c.load = l
		}
	}
}

// WithSampleRate sets the rate generators render at.
func WithSampleRate(rate float64) BuildOption {
	return func(c *buildConfig) {
		if rate > 0 {
			c.sampleRate = rate
		}
	}
}

// WithLogger sets the logger for build progress.
func WithLogger(l *slog.Logger) BuildOption {
	return func(c *buildConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

const (
	unvisited = iota
	expanding
	expanded
)

type builder struct {
	scene *Scene
	cfg   buildConfig
	env   Env
	g     *graph.Graph
	ids   map[int]graph.NodeID
	state []int
}

// Build expands the scene into a new graph whose output is fed by the
// start node.
func (s *Scene) Build(opts ...BuildOption) (*graph.Graph, error) {
	cfg := buildConfig{
		registry:   DefaultRegistry(),
		load:       TrackLoader(),
		sampleRate: effect.DefaultSampleRate,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if s.Start == nil {
		return nil, &IndexError{Node: -1, Index: -1, Reason: "missing"}
	}

	b := &builder{
		scene: s,
		cfg:   cfg,
		g:     graph.New(),
		ids:   make(map[int]graph.NodeID, len(s.Nodes)),
		state: make([]int, len(s.Nodes)),
	}
	b.env = Env{
		Load: func(path string) (effect.Effect, error) {
			return cfg.load(s.resolve(path))
		},
		SampleRate: cfg.sampleRate,
	}

	root, err := b.expand(-1, *s.Start)
	if err != nil {
		return nil, err
	}
	if err := b.g.Connect(graph.OutputID, 0, root); err != nil {
		return nil, fmt.Errorf("scene: connect output: %w", err)
	}

	cfg.logger.Debug("scene built", "nodes", b.g.Len(), "edges", len(b.g.Edges()))

	return b.g, nil
}

func (b *builder) expand(parent, index int) (graph.NodeID, error) {
	if index < 0 || index >= len(b.scene.Nodes) {
		return 0, &IndexError{Node: parent, Index: index, Reason: fmt.Sprintf("out of range [0,%d)", len(b.scene.Nodes))}
	}

	switch b.state[index] {
	case expanded:
		return b.ids[index], nil
	case expanding:
		reason := "refers back to a node being expanded"
		if index == parent {
			reason = "refers to itself"
		}
		return 0, &IndexError{Node: parent, Index: index, Reason: reason}
	}
	b.state[index] = expanding

	n := b.scene.Nodes[index]
	factory := b.cfg.registry.Lookup(n.Type)
	if factory == nil {
		return 0, fmt.Errorf("scene: node %d: %w: %q", index, ErrUnknownType, n.Type)
	}

	e, err := factory(n, b.env)
	if err != nil {
		return 0, fmt.Errorf("scene: node %d (%s): %w", index, n.Type, err)
	}

	id, err := b.g.AddNode(e)
	if err != nil {
		return 0, fmt.Errorf("scene: node %d (%s): %w", index, n.Type, err)
	}

	for slot, in := range n.InputIndices() {
		up, err := b.expand(index, in)
		if err != nil {
			return 0, err
		}
		if err := b.g.Connect(id, slot, up); err != nil {
			return 0, fmt.Errorf("scene: node %d input %d: %w", index, slot, err)
		}
	}

	b.state[index] = expanded
	b.ids[index] = id
	b.cfg.logger.Debug("scene node", "index", index, "type", n.Type, "name", e.Name(), "id", id)

	return id, nil
}
