package player

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/Zahr1729/Iron/dsp/core"
	"github.com/Zahr1729/Iron/dsp/effect"
)

type request struct {
	cmd   Command
	reply chan error
}

// Player is the audio render thread and its control handle.
type Player struct {
	cfg    config
	device Device
	logger *slog.Logger

	cmds    chan request
	updates chan Update
	quit    chan struct{}
	done    chan struct{}

	closeOnce sync.Once
	playing   atomic.Bool

	// Owned by the loop goroutine.
	stream Stream
}

// New starts a render thread that opens streams on device.
func New(device Device, opts ...Option) *Player {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	p := &Player{
		cfg:     cfg,
		device:  device,
		logger:  cfg.logger.With("component", "player"),
		cmds:    make(chan request, commandBuffer),
		updates: make(chan Update, cfg.updateBuffer),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}

	go p.loop()

	return p
}

// Send queues cmd without waiting for it to be handled. Failures are
// reported through Updates.
func (p *Player) Send(cmd Command) error {
	select {
	case <-p.quit:
		return ErrClosed
	default:
	}

	select {
	case p.cmds <- request{cmd: cmd}:
		return nil
	case <-p.quit:
		return ErrClosed
	}
}

// Exec queues cmd and waits until the render thread has handled it.
func (p *Player) Exec(ctx context.Context, cmd Command) error {
	req := request{cmd: cmd, reply: make(chan error, 1)}

	select {
	case <-p.quit:
		return ErrClosed
	default:
	}

	select {
	case p.cmds <- req:
	case <-p.quit:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-req.reply:
		return err
	case <-p.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Updates returns the receive side of the update channel.
func (p *Player) Updates() <-chan Update {
	return p.updates
}

// Latest drains pending updates without blocking and returns the last
// sample position among them. Other updates are discarded.
func (p *Player) Latest() (sample int, ok bool) {
	for {
		select {
		case u := <-p.updates:
			if cs, isSample := u.(CurrentSample); isSample {
				sample, ok = cs.Sample, true
			}
		default:
			return sample, ok
		}
	}
}

// Playing reports whether a stream is open.
func (p *Player) Playing() bool {
	return p.playing.Load()
}

// Config returns the stream configuration used for new streams.
func (p *Player) Config() StreamConfig {
	return p.cfg.stream
}

// Close stops playback and ends the render thread.
func (p *Player) Close() error {
	p.closeOnce.Do(func() {
		close(p.quit)
	})
	<-p.done
	return nil
}

func (p *Player) loop() {
	defer close(p.done)

	for {
		select {
		case <-p.quit:
			if err := p.closeStream(); err != nil {
				p.logger.Warn("close on shutdown failed", "err", err)
			}
			return
		case req := <-p.cmds:
			err := p.handle(req.cmd)
			if err != nil {
				p.logger.Error("command failed", "err", err)
				p.publish(DeviceFailure{Err: err})
			}
			if req.reply != nil {
				req.reply <- err
			}
		}
	}
}

func (p *Player) handle(cmd Command) error {
	switch c := cmd.(type) {
	case PlayFrom:
		if err := p.closeStream(); err != nil {
			return err
		}
		return p.openStream(c.Root, c.Start)

	case Stop:
		return p.closeStream()

	case RelocateTo:
		if !p.playing.Load() {
			p.publish(CurrentSample{Sample: c.Sample})
			return nil
		}
		if err := p.closeStream(); err != nil {
			return err
		}
		return p.openStream(c.Root, c.Sample)

	default:
		p.logger.Warn("ignoring unknown command", "type", fmt.Sprintf("%T", cmd))
		return nil
	}
}

func (p *Player) openStream(root effect.Effect, start int) error {
	stream, err := p.device.OpenStream(p.cfg.stream, p.renderer(root, start))
	if err != nil {
		return &DeviceError{Op: "open", Err: err}
	}

	if err := stream.Start(); err != nil {
		if cerr := stream.Close(); cerr != nil {
			p.logger.Warn("close after failed start", "err", cerr)
		}
		return &DeviceError{Op: "start", Err: err}
	}

	p.stream = stream
	p.playing.Store(true)
	p.logger.Debug("stream opened",
		"start", start,
		"sampleRate", p.cfg.stream.SampleRate,
		"channels", p.cfg.stream.Channels,
		"framesPerBuffer", p.cfg.stream.FramesPerBuffer,
	)

	return nil
}

func (p *Player) closeStream() error {
	if p.stream == nil {
		return nil
	}

	stream := p.stream
	p.stream = nil
	p.playing.Store(false)

	if err := stream.Close(); err != nil {
		return &DeviceError{Op: "close", Err: err}
	}
	p.logger.Debug("stream closed")

	return nil
}

// renderer returns the device callback for one stream. Its clock and
// scratch buffer belong to the device goroutine.
func (p *Player) renderer(root effect.Effect, start int) RenderFunc {
	channels := p.cfg.stream.Channels
	clock := start
	var buf []float64

	return func(out []float32) {
		if cap(buf) < len(out) {
			buf = make([]float64, len(out))
		}
		buf = buf[:len(out)]

		effect.Render(root, buf, clock, channels)
		core.ToFloat32(out, buf)

		clock += len(out) / channels
		p.publish(CurrentSample{Sample: clock})
	}
}

// publish delivers u without blocking, discarding the oldest pending
// updates until it fits.
func (p *Player) publish(u Update) {
	for {
		select {
		case p.updates <- u:
			return
		default:
		}

		select {
		case <-p.updates:
		default:
		}
	}
}
