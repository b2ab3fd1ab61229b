package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/Zahr1729/Iron/dsp/effect"
	"github.com/Zahr1729/Iron/dsp/graph"
	"github.com/Zahr1729/Iron/dsp/track"
	"github.com/Zahr1729/Iron/internal/decode"
	"github.com/Zahr1729/Iron/scene"
)

// session is a built graph plus what the commands need to know about it.
type session struct {
	scene  *scene.Scene
	graph  *graph.Graph
	tracks []*track.Track
	rate   float64
}

// openSession builds the graph described by path, a scene file (.json) or
// any decodable audio file. rate 0 picks the first track's rate, or the
// default generator rate when the graph has no tracks. Tracks at other
// rates are resampled.
func openSession(path string, rate float64, logger *slog.Logger) (*session, error) {
	sc, err := loadScene(path)
	if err != nil {
		return nil, err
	}

	s := &session{scene: sc, rate: rate}
	decoded := make(map[string]*decode.Decoded)
	loader := func(p string) (effect.Effect, error) {
		d, ok := decoded[p]
		if !ok {
			var err error
			if d, err = decode.File(p, decode.WithLogger(logger)); err != nil {
				return nil, err
			}
			decoded[p] = d
		}
		if s.rate > 0 && float64(d.SampleRate) != s.rate {
			logger.Debug("resampling track", "path", p, "from", d.SampleRate, "to", s.rate)
			converted, err := d.Resample(int(s.rate))
			if err != nil {
				return nil, err
			}
			d = converted
		}
		return track.FromDecoded(p, d)
	}

	if err := s.build(loader, logger); err != nil {
		return nil, err
	}
	if s.rate > 0 {
		return s, nil
	}

	// Without an explicit rate the first track sets it. Generators and
	// the remaining tracks must follow, so build again; decoded files are
	// cached.
	s.rate = effect.DefaultSampleRate
	if len(s.tracks) == 0 {
		return s, nil
	}
	s.rate = float64(s.tracks[0].SampleRate())
	if err := s.build(loader, logger); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *session) build(load scene.Loader, logger *slog.Logger) error {
	g, err := s.scene.Build(
		scene.WithLoader(load),
		scene.WithSampleRate(s.rate),
		scene.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	s.graph = g
	s.tracks = s.tracks[:0]
	for _, e := range g.Nodes() {
		if tr, ok := e.(*track.Track); ok {
			s.tracks = append(s.tracks, tr)
		}
	}
	return nil
}

// frames returns the length of the longest track, or 0.
func (s *session) frames() int {
	n := 0
	for _, tr := range s.tracks {
		n = max(n, tr.Frames())
	}
	return n
}

// wave returns the node used for the waveform overview.
func (s *session) wave() effect.Plotter {
	if len(s.tracks) > 0 {
		return s.tracks[0]
	}
	return s.graph.Output()
}

func loadScene(path string) (*scene.Scene, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return scene.Load(path)
	}
	if !decode.Supported(path) {
		return nil, fmt.Errorf("%s: %w", path, decode.ErrUnsupportedFormat)
	}
	return scene.FromTrack(path), nil
}
