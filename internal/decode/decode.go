package decode

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Decoded is a fully decoded file in planar layout.
type Decoded struct {
	SampleRate int
	Channels   int
	Frames     int
	Samples    [][]float64
}

// Option configures a decode call.
type Option func(*config)

type config struct {
	progress func(float64)
	logger   *slog.Logger
}

// WithProgress registers fn to receive the decoded fraction in [0, 1].
// The last call always reports 1.
func WithProgress(fn func(float64)) Option {
	return func(c *config) {
		c.progress = fn
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func (c *config) report(f float64) {
	if c.progress == nil {
		return
	}
	c.progress(min(max(f, 0), 1))
}

type decoderFunc func(r io.ReadSeeker, cfg *config) (*Decoded, error)

var decoders = map[string]decoderFunc{
	".wav":  decodeWAV,
	".wave": decodeWAV,
	".aif":  decodeAIFF,
	".aiff": decodeAIFF,
	".mp3":  decodeMP3,
	".ogg":  decodeVorbis,
	".oga":  decodeVorbis,
}

// Supported reports whether path has an extension that can be decoded.
func Supported(path string) bool {
	_, ok := decoders[strings.ToLower(filepath.Ext(path))]
	return ok
}

// File decodes the audio file at path.
func File(path string, opts ...Option) (*Decoded, error) {
	dec, ok := decoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, &Error{Path: path, Err: fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	defer f.Close()

	return run(path, dec, f, opts)
}

// Reader decodes r as the format implied by ext (".wav", ".mp3", ...).
// name is used for error reporting only.
func Reader(name, ext string, r io.ReadSeeker, opts ...Option) (*Decoded, error) {
	dec, ok := decoders[strings.ToLower(ext)]
	if !ok {
		return nil, &Error{Path: name, Err: fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)}
	}
	return run(name, dec, r, opts)
}

func run(name string, dec decoderFunc, r io.ReadSeeker, opts []Option) (*Decoded, error) {
	cfg := config{logger: slog.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out, err := dec(r, &cfg)
	if err != nil {
		return nil, &Error{Path: name, Err: err}
	}

	cfg.report(1)
	cfg.logger.Debug("decoded audio file",
		"path", name,
		"sampleRate", out.SampleRate,
		"channels", out.Channels,
		"frames", out.Frames,
	)

	return out, nil
}

// planar accumulates interleaved samples into per-channel slices.
type planar struct {
	channels [][]float64
	next     int
}

func newPlanar(channels, capacity int) *planar {
	p := &planar{channels: make([][]float64, channels)}
	for c := range p.channels {
		p.channels[c] = make([]float64, 0, capacity)
	}
	return p
}

func (p *planar) push(v float64) {
	p.channels[p.next] = append(p.channels[p.next], v)
	p.next++
	if p.next == len(p.channels) {
		p.next = 0
	}
}

func (p *planar) decoded(sampleRate int) *Decoded {
	// Drop a trailing partial frame.
	frames := len(p.channels[len(p.channels)-1])
	for c := range p.channels {
		p.channels[c] = p.channels[c][:frames]
	}
	return &Decoded{
		SampleRate: sampleRate,
		Channels:   len(p.channels),
		Frames:     frames,
		Samples:    p.channels,
	}
}

func pcmScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case 8, 16, 24, 32:
		return float64(uint64(1) << (bitDepth - 1)), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
}
