// Package portaudio provides a [player.Device] backed by the system's
// default PortAudio output device.
package portaudio

import (
	"fmt"
	"log/slog"
	"sync"

	pa "github.com/gordonklaus/portaudio"

	"github.com/Zahr1729/Iron/player"
)

// Device opens streams on the default output device. Open must be called
// before use and Close once no streams remain.
type Device struct {
	logger *slog.Logger

	mu   sync.Mutex
	open bool
	info *pa.DeviceInfo
}

// New returns an unopened device.
func New(logger *slog.Logger) *Device {
	if logger == nil {
		logger = slog.Default()
	}
	return &Device{logger: logger}
}

// Open initializes PortAudio and resolves the default output device.
func (d *Device) Open() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.open {
		return nil
	}

	if err := pa.Initialize(); err != nil {
		return fmt.Errorf("portaudio: initialize: %w", err)
	}

	info, err := pa.DefaultOutputDevice()
	if err != nil {
		_ = pa.Terminate()
		return fmt.Errorf("portaudio: default output device: %w", err)
	}

	d.info = info
	d.open = true
	d.logger.Info("audio output",
		"version", pa.VersionText(),
		"device", info.Name,
		"maxChannels", info.MaxOutputChannels,
		"defaultSampleRate", info.DefaultSampleRate,
	)

	return nil
}

// Name returns the output device name, or "" before Open.
func (d *Device) Name() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.info == nil {
		return ""
	}
	return d.info.Name
}

// DefaultSampleRate returns the device's preferred rate, or 0 before Open.
func (d *Device) DefaultSampleRate() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.info == nil {
		return 0
	}
	return d.info.DefaultSampleRate
}

// OpenStream opens an interleaved float32 output stream.
func (d *Device) OpenStream(cfg player.StreamConfig, render player.RenderFunc) (player.Stream, error) {
	d.mu.Lock()
	info := d.info
	d.mu.Unlock()

	if info == nil {
		return nil, fmt.Errorf("portaudio: device not open")
	}
	if cfg.Channels > info.MaxOutputChannels {
		return nil, fmt.Errorf("portaudio: %s supports %d channels, want %d", info.Name, info.MaxOutputChannels, cfg.Channels)
	}

	params := pa.LowLatencyParameters(nil, info)
	params.Output.Channels = cfg.Channels
	params.SampleRate = cfg.SampleRate
	params.FramesPerBuffer = cfg.FramesPerBuffer

	s, err := pa.OpenStream(params, func(out []float32) {
		render(out)
	})
	if err != nil {
		return nil, fmt.Errorf("portaudio: open stream: %w", err)
	}

	return &stream{s: s}, nil
}

// Close terminates PortAudio.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.open {
		return nil
	}
	d.open = false
	d.info = nil

	if err := pa.Terminate(); err != nil {
		return fmt.Errorf("portaudio: terminate: %w", err)
	}
	return nil
}

type stream struct {
	s *pa.Stream
}

func (s *stream) Start() error {
	return s.s.Start()
}

// Close stops the stream, which waits for a running callback to return,
// then releases it.
func (s *stream) Close() error {
	stopErr := s.s.Stop()
	closeErr := s.s.Close()
	if stopErr != nil {
		return stopErr
	}
	return closeErr
}
