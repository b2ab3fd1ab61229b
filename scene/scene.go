package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Node is one entry of a scene. Which fields apply depends on Type.
type Node struct {
	Type      string  `json:"type"`
	Path      string  `json:"path,omitempty"`
	DB        float64 `json:"db,omitempty"`
	Amplitude float64 `json:"amplitude,omitempty"`
	Frequency float64 `json:"frequency,omitempty"`
	Phase     float64 `json:"phase,omitempty"`
	Input     *int    `json:"input,omitempty"`
	Inputs    []int   `json:"inputs,omitempty"`
}

// InputIndices returns the node's input references in slot order.
func (n Node) InputIndices() []int {
	if len(n.Inputs) > 0 {
		return n.Inputs
	}
	if n.Input != nil {
		return []int{*n.Input}
	}
	return nil
}

// Scene is a serializable graph description.
type Scene struct {
	Start *int   `json:"start,omitempty"`
	Nodes []Node `json:"nodes"`

	// Dir resolves relative track paths. Load sets it to the directory of
	// the scene file.
	Dir string `json:"-"`
}

// FromTrack returns a scene playing the file at path directly.
func FromTrack(path string) *Scene {
	start := 0
	return &Scene{
		Start: &start,
		Nodes: []Node{{Type: TypeTrack, Path: path}},
	}
}

// Parse decodes a scene from JSON.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scene: invalid json: %w", err)
	}
	return &s, nil
}

// Load reads the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Dir = filepath.Dir(path)

	return s, nil
}

// Marshal encodes s as indented JSON.
func (s *Scene) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("scene: encode: %w", err)
	}
	return append(data, '\n'), nil
}

// Save writes s to path.
func (s *Scene) Save(path string) error {
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	return nil
}

func (s *Scene) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || s.Dir == "" {
		return path
	}
	return filepath.Join(s.Dir, path)
}

func intPtr(v int) *int {
	return &v
}
