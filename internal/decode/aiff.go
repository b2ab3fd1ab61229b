package decode

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
)

func decodeAIFF(r io.ReadSeeker, cfg *config) (*Decoded, error) {
	dec := aiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: not a FORM/AIFF file", ErrInvalidFile)
	}
	dec.ReadInfo()

	format := dec.Format()
	if format == nil || format.NumChannels <= 0 || format.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: missing COMM chunk", ErrInvalidFile)
	}

	scale, err := pcmScale(int(dec.BitDepth))
	if err != nil {
		return nil, err
	}

	// AIFF is signed at every depth.
	return readPCM(cfg, format, 0, scale, 0, dec.PCMBuffer)
}
