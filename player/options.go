package player

import "log/slog"

const (
	defaultSampleRate      = 48000
	defaultChannels        = 2
	defaultFramesPerBuffer = 1024
	defaultUpdateBuffer    = 64
	commandBuffer          = 16
)

// Option configures a Player.
type Option func(*config)

type config struct {
	logger       *slog.Logger
	stream       StreamConfig
	updateBuffer int
}

func defaultConfig() config {
	return config{
		logger: slog.Default(),
		stream: StreamConfig{
			SampleRate:      defaultSampleRate,
			Channels:        defaultChannels,
			FramesPerBuffer: defaultFramesPerBuffer,
		},
		updateBuffer: defaultUpdateBuffer,
	}
}

// WithLogger sets the logger for stream lifecycle and failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSampleRate sets the stream sample rate.
func WithSampleRate(rate float64) Option {
	return func(c *config) {
		if rate > 0 {
			c.stream.SampleRate = rate
		}
	}
}

// WithChannels sets the number of interleaved output channels.
func WithChannels(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.stream.Channels = n
		}
	}
}

// WithFramesPerBuffer sets the hardware buffer size in frames.
func WithFramesPerBuffer(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.stream.FramesPerBuffer = n
		}
	}
}

// WithUpdateBuffer sets how many updates may be pending before the oldest
// is dropped.
func WithUpdateBuffer(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.updateBuffer = n
		}
	}
}
