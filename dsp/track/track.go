package track

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/Zahr1729/Iron/dsp/effect"
	"github.com/Zahr1729/Iron/dsp/mipmap"
	"github.com/Zahr1729/Iron/internal/decode"
)

var (
	// ErrNoChannels is returned when a track would have no channel data.
	ErrNoChannels = errors.New("track: no channels")
	// ErrChannelLength is returned when channels differ in length.
	ErrChannelLength = errors.New("track: channels differ in length")
	// ErrNoSuchChannel is returned by waveform queries for a channel the
	// track does not have.
	ErrNoSuchChannel = errors.New("track: no such channel")
)

// Track is a 0-input node rendering decoded audio.
type Track struct {
	effect.Source

	path       string
	sampleRate int
	frames     int
	samples    [][]float64
	mipmaps    []*mipmap.Channel
}

// New builds a track from planar samples. The slices are retained and must
// not be modified afterwards.
func New(path string, sampleRate int, samples [][]float64, opts ...mipmap.Option) (*Track, error) {
	if len(samples) == 0 {
		return nil, ErrNoChannels
	}

	frames := len(samples[0])
	for c, ch := range samples {
		if len(ch) != frames {
			return nil, fmt.Errorf("%w: channel %d has %d frames, want %d", ErrChannelLength, c, len(ch), frames)
		}
	}

	t := &Track{
		path:       path,
		sampleRate: sampleRate,
		frames:     frames,
		samples:    samples,
		mipmaps:    make([]*mipmap.Channel, len(samples)),
	}
	for c, ch := range samples {
		t.mipmaps[c] = mipmap.New(ch, opts...)
	}

	return t, nil
}

// Load decodes the file at path into a track.
func Load(path string, opts ...decode.Option) (*Track, error) {
	d, err := decode.File(path, opts...)
	if err != nil {
		return nil, err
	}
	return FromDecoded(path, d)
}

// FromDecoded wraps already decoded data.
func FromDecoded(path string, d *decode.Decoded) (*Track, error) {
	return New(path, d.SampleRate, d.Samples)
}

// Apply copies frames [start, start+len(out)/channels) into out. Frames
// outside the track are silent. Output channel 0 is the left channel and
// output channel 1 the right one; a mono track feeds both, and further
// output channels are silent.
func (t *Track) Apply(out []float64, start, channels int) {
	channels = effect.Channels(channels)

	for c := 0; c < channels && c < len(out); c++ {
		src := t.source(c)
		frame := start
		for i := c; i < len(out); i += channels {
			if src == nil || frame < 0 || frame >= t.frames {
				out[i] = 0
			} else {
				out[i] = src[frame]
			}
			frame++
		}
	}
}

// source returns the track channel feeding output channel c, or nil.
func (t *Track) source(c int) []float64 {
	if c > 1 {
		return nil
	}
	return t.samples[min(c, len(t.samples)-1)]
}

// Name returns the file name of the track.
func (t *Track) Name() string {
	if t.path == "" {
		return "Track"
	}
	return filepath.Base(t.path)
}

// WaveformPlotData answers pd from the pyramid of the given channel.
func (t *Track) WaveformPlotData(pd *mipmap.PlotData, channel int) (bool, error) {
	if channel < 0 || channel >= len(t.mipmaps) {
		return false, fmt.Errorf("%w: %d of %d", ErrNoSuchChannel, channel, len(t.mipmaps))
	}
	return t.mipmaps[channel].Presampled(pd)
}

// Path returns the source file path.
func (t *Track) Path() string { return t.path }

// SampleRate returns the native sample rate.
func (t *Track) SampleRate() int { return t.sampleRate }

// Frames returns the length in frames.
func (t *Track) Frames() int { return t.frames }

// ChannelCount returns the number of stored channels.
func (t *Track) ChannelCount() int { return len(t.samples) }

// Samples returns channel c, or nil if it does not exist.
func (t *Track) Samples(c int) []float64 {
	if c < 0 || c >= len(t.samples) {
		return nil
	}
	return t.samples[c]
}

// MipMap returns the pyramid of channel c, or nil if it does not exist.
func (t *Track) MipMap(c int) *mipmap.Channel {
	if c < 0 || c >= len(t.mipmaps) {
		return nil
	}
	return t.mipmaps[c]
}

// Duration returns the playing time at the native sample rate.
func (t *Track) Duration() time.Duration {
	if t.sampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(t.frames) / float64(t.sampleRate) * float64(time.Second))
}
