package player

import (
	"sync"
	"time"
)

// NullDevice renders in real time without audio hardware. Each stream
// calls its render function from a ticker at the configured buffer period.
type NullDevice struct {
	// Tap, when set, receives every rendered buffer. The slice is reused
	// after Tap returns.
	Tap func(out []float32)
}

// OpenStream returns a stream that starts ticking once Start is called.
func (d *NullDevice) OpenStream(cfg StreamConfig, render RenderFunc) (Stream, error) {
	frames := max(cfg.FramesPerBuffer, 1)
	period := time.Duration(float64(frames) / cfg.SampleRate * float64(time.Second))
	if cfg.SampleRate <= 0 || period <= 0 {
		period = time.Millisecond
	}

	return &nullStream{
		render: render,
		tap:    d.Tap,
		period: period,
		buf:    make([]float32, frames*max(cfg.Channels, 1)),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}, nil
}

type nullStream struct {
	render RenderFunc
	tap    func([]float32)
	period time.Duration
	buf    []float32

	startOnce sync.Once
	closeOnce sync.Once
	started   bool
	quit      chan struct{}
	done      chan struct{}
}

func (s *nullStream) Start() error {
	s.startOnce.Do(func() {
		s.started = true
		go s.run()
	})
	return nil
}

func (s *nullStream) run() {
	defer close(s.done)

	ticker := time.NewTicker(s.period)
	defer ticker.Stop()

	for {
		select {
		case <-s.quit:
			return
		case <-ticker.C:
			s.render(s.buf)
			if s.tap != nil {
				s.tap(s.buf)
			}
		}
	}
}

func (s *nullStream) Close() error {
	s.closeOnce.Do(func() {
		close(s.quit)
		s.startOnce.Do(func() {})
		if s.started {
			<-s.done
		}
	})
	return nil
}
