package decode

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is returned for extensions without a decoder.
	ErrUnsupportedFormat = errors.New("decode: unsupported format")
	// ErrInvalidFile is returned when a file does not match its container.
	ErrInvalidFile = errors.New("decode: invalid file")
	// ErrUnsupportedBitDepth is returned for PCM depths other than 8, 16,
	// 24 or 32 bits.
	ErrUnsupportedBitDepth = errors.New("decode: unsupported bit depth")
)

// Error reports a failed decode of one file.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}
