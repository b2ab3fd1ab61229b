package player

import "github.com/Zahr1729/Iron/dsp/effect"

// Command is a request for the render thread.
type Command interface {
	command()
}

// PlayFrom starts rendering Root at frame Start, replacing any open stream.
type PlayFrom struct {
	Root  effect.Effect
	Start int
}

// Stop closes the stream. No update is published once it has been handled.
type Stop struct{}

// RelocateTo moves the playhead. While playing, the stream is reopened at
// Sample rendering Root; while idle, Sample is published as the current
// position.
type RelocateTo struct {
	Root   effect.Effect
	Sample int
}

func (PlayFrom) command()   {}
func (Stop) command()       {}
func (RelocateTo) command() {}

// Update is a message from the render thread.
type Update interface {
	update()
}

// CurrentSample reports the frame the next buffer will start at.
type CurrentSample struct {
	Sample int
}

// DeviceFailure reports a stream operation that failed.
type DeviceFailure struct {
	Err error
}

func (CurrentSample) update() {}
func (DeviceFailure) update() {}
