package scene

import (
	"errors"
	"fmt"

	"github.com/Zahr1729/Iron/dsp/effect"
	"github.com/Zahr1729/Iron/dsp/track"
	"github.com/Zahr1729/Iron/internal/decode"
)

// Node type names understood by the default registry.
const (
	TypeZero  = "zero"
	TypeSine  = "sine"
	TypeGain  = "gain"
	TypeAdd   = "add"
	TypeTrack = "track"
)

// Loader turns a track path into a node.
type Loader func(path string) (effect.Effect, error)

// TrackLoader decodes files with [track.Load].
func TrackLoader(opts ...decode.Option) Loader {
	return func(path string) (effect.Effect, error) {
		return track.Load(path, opts...)
	}
}

// Env is passed to factories while a scene is built.
type Env struct {
	Load Loader
	// SampleRate is used by generators such as sine nodes.
	SampleRate float64
}

// Factory builds the node for one scene entry. Inputs are wired afterwards.
type Factory func(n Node, env Env) (effect.Effect, error)

// Registry maps node type names to factories.
type Registry struct {
	factories map[string]Factory
}

var errDuplicateType = errors.New("duplicate node type")

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry returns a registry with the built-in node types.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(TypeZero, func(Node, Env) (effect.Effect, error) {
		return effect.NewZero(), nil
	})
	r.MustRegister(TypeSine, func(n Node, env Env) (effect.Effect, error) {
		return effect.NewSineWaveAt(n.Amplitude, n.Frequency, n.Phase, env.SampleRate), nil
	})
	r.MustRegister(TypeGain, func(n Node, _ Env) (effect.Effect, error) {
		return effect.NewGain(n.DB), nil
	})
	r.MustRegister(TypeAdd, func(Node, Env) (effect.Effect, error) {
		return effect.NewAdd(), nil
	})
	r.MustRegister(TypeTrack, func(n Node, env Env) (effect.Effect, error) {
		if n.Path == "" {
			return nil, errors.New("track node without path")
		}
		return env.Load(n.Path)
	})
	return r
}

// Register adds a factory for the given node type.
func (r *Registry) Register(nodeType string, factory Factory) error {
	if nodeType == "" {
		return errors.New("empty node type")
	}

	if factory == nil {
		return errors.New("nil factory")
	}

	if _, exists := r.factories[nodeType]; exists {
		return fmt.Errorf("%w: %s", errDuplicateType, nodeType)
	}

	r.factories[nodeType] = factory

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(nodeType string, factory Factory) {
	if err := r.Register(nodeType, factory); err != nil {
		panic("scene registry: " + err.Error())
	}
}

// Lookup returns the factory for the given node type, or nil.
func (r *Registry) Lookup(nodeType string) Factory {
	return r.factories[nodeType]
}
