package decode

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"
)

func decodeVorbis(r io.ReadSeeker, cfg *config) (*Decoded, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	channels := dec.Channels()
	if channels <= 0 {
		return nil, fmt.Errorf("%w: no channels", ErrInvalidFile)
	}

	frames := max(int(dec.Length()), 0)
	acc := newPlanar(channels, frames)
	buf := make([]float32, pcmChunkFrames*channels)
	done := 0

	for {
		n, err := dec.Read(buf)
		for _, v := range buf[:n] {
			acc.push(float64(v))
		}

		done += n
		if frames > 0 {
			cfg.report(float64(done) / float64(frames*channels))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if n == 0 {
			break
		}
	}

	return acc.decoded(dec.SampleRate()), nil
}
