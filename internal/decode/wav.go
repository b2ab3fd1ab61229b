package decode

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const pcmChunkFrames = 4096

func decodeWAV(r io.ReadSeeker, cfg *config) (*Decoded, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: not a RIFF/WAVE file", ErrInvalidFile)
	}
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	format := dec.Format()
	if format == nil || format.NumChannels <= 0 || format.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: missing format chunk", ErrInvalidFile)
	}

	bitDepth := int(dec.SampleBitDepth())
	scale, err := pcmScale(bitDepth)
	if err != nil {
		return nil, err
	}

	bytesPerSample := (bitDepth-1)/8 + 1
	total := int(dec.PCMLen()) / bytesPerSample
	// 8-bit WAV is unsigned.
	offset := 0.0
	if bitDepth == 8 {
		offset = scale
	}

	return readPCM(cfg, format, total, scale, offset, dec.PCMBuffer)
}

func readPCM(
	cfg *config,
	format *audio.Format,
	total int,
	scale, offset float64,
	read func(*audio.IntBuffer) (int, error),
) (*Decoded, error) {
	channels := format.NumChannels
	acc := newPlanar(channels, max(total/channels, 0))
	buf := &audio.IntBuffer{
		Format: format,
		Data:   make([]int, pcmChunkFrames*channels),
	}

	done := 0
	for {
		n, err := read(buf)
		for _, v := range buf.Data[:n] {
			acc.push((float64(v) - offset) / scale)
		}
		done += n
		if total > 0 {
			cfg.report(float64(done) / float64(total))
		}

		if err == io.EOF || (err == nil && n == 0) {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	return acc.decoded(format.SampleRate), nil
}
