package player

// StreamConfig describes the output stream requested from a Device.
type StreamConfig struct {
	SampleRate      float64
	Channels        int
	FramesPerBuffer int
}

// RenderFunc fills one interleaved hardware buffer.
type RenderFunc func(out []float32)

// Device opens output streams.
type Device interface {
	OpenStream(cfg StreamConfig, render RenderFunc) (Stream, error)
}

// Stream is an open output stream. After Close returns, the render
// function must not be running and must never be called again.
type Stream interface {
	Start() error
	Close() error
}
