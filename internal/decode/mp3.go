package decode

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
)

// go-mp3 always produces signed 16-bit little-endian stereo.
const (
	mp3Channels       = 2
	mp3BytesPerSample = 2
)

func decodeMP3(r io.ReadSeeker, cfg *config) (*Decoded, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	total := dec.Length()
	frames := 0
	if total > 0 {
		frames = int(total / (mp3Channels * mp3BytesPerSample))
	}

	acc := newPlanar(mp3Channels, frames)
	buf := make([]byte, 8192)
	var done int64

	for {
		n, err := dec.Read(buf)
		n -= n % mp3BytesPerSample
		for i := 0; i < n; i += mp3BytesPerSample {
			v := int16(binary.LittleEndian.Uint16(buf[i:]))
			acc.push(float64(v) / 32768)
		}

		done += int64(n)
		if total > 0 {
			cfg.report(float64(done) / float64(total))
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
