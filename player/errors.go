package player

import (
	"errors"
	"fmt"
)

// ErrClosed is returned for commands sent after Close.
var ErrClosed = errors.New("player: closed")

// DeviceError reports a failed stream operation.
type DeviceError struct {
	Op  string
	Err error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("player: %s stream: %v", e.Op, e.Err)
}

// Unwrap returns the device's error.
func (e *DeviceError) Unwrap() error {
	return e.Err
}
