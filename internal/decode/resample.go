package decode

import (
	"fmt"

	"github.com/Zahr1729/Iron/dsp/resample"
)

// Resample returns d converted to rate. d is returned as is when it
// already has that rate.
func (d *Decoded) Resample(rate int, opts ...resample.Option) (*Decoded, error) {
	if rate == d.SampleRate {
		return d, nil
	}

	samples, err := resample.Planar(d.Samples, d.SampleRate, rate, opts...)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	frames := 0
	if len(samples) > 0 {
		frames = len(samples[0])
	}

	return &Decoded{
		SampleRate: rate,
		Channels:   d.Channels,
		Frames:     frames,
		Samples:    samples,
	}, nil
}
