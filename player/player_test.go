package player_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Zahr1729/Iron/dsp/effect"
	"github.com/Zahr1729/Iron/player"
)

var errNoDevice = errors.New("no output device")

// fakeDevice hands out streams whose callbacks run only when the test
// calls Tick.
type fakeDevice struct {
	mu        sync.Mutex
	failOpen  int
	failStart int
	streams   []*fakeStream
}

func (d *fakeDevice) OpenStream(cfg player.StreamConfig, render player.RenderFunc) (player.Stream, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.failOpen > 0 {
		d.failOpen--
		return nil, errNoDevice
	}

	s := &fakeStream{
		render: render,
		buf:    make([]float32, cfg.FramesPerBuffer*cfg.Channels),
	}
	if d.failStart > 0 {
		d.failStart--
		s.startErr = errNoDevice
	}
	d.streams = append(d.streams, s)

	return s, nil
}

func (d *fakeDevice) opened() []*fakeStream {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]*fakeStream(nil), d.streams...)
}

func (d *fakeDevice) last(t *testing.T) *fakeStream {
	t.Helper()

	s := d.opened()
	if len(s) == 0 {
		t.Fatal("no stream opened")
	}
	return s[len(s)-1]
}

type fakeStream struct {
	mu       sync.Mutex
	render   player.RenderFunc
	buf      []float32
	startErr error
	started  bool
	closed   bool
}

func (s *fakeStream) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.startErr != nil {
		return s.startErr
	}
	s.started = true
	return nil
}

func (s *fakeStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Tick runs one callback if the stream is running.
func (s *fakeStream) Tick() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started || s.closed {
		return false
	}
	s.render(s.buf)
	return true
}

func (s *fakeStream) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func newPlayer(t *testing.T, dev player.Device, opts ...player.Option) *player.Player {
	t.Helper()

	opts = append([]player.Option{
		player.WithLogger(slog.New(slog.DiscardHandler)),
		player.WithFramesPerBuffer(128),
		player.WithChannels(2),
	}, opts...)

	p := player.New(dev, opts...)
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func exec(t *testing.T, p *player.Player, cmd player.Command) {
	t.Helper()

	if err := p.Exec(context.Background(), cmd); err != nil {
		t.Fatalf("Exec(%T): %v", cmd, err)
	}
}

func drain(p *player.Player) []player.Update {
	var out []player.Update
	for {
		select {
		case u := <-p.Updates():
			out = append(out, u)
		default:
			return out
		}
	}
}

func TestPlayFromRendersAndAdvances(t *testing.T) {
	t.Parallel()

	dev := &fakeDevice{}
	p := newPlayer(t, dev)
	sine := effect.NewSineWave(0.5, 440, 0)

	exec(t, p, player.PlayFrom{Root: sine, Start: 1000})
	if !p.Playing() {
		t.Fatal("expected playing after PlayFrom")
	}

	s := dev.last(t)
	for i := 0; i < 3; i++ {
		if !s.Tick() {
			t.Fatal("stream not running")
		}
	}

	want := []player.Update{
		player.CurrentSample{Sample: 1128},
		player.CurrentSample{Sample: 1256},
		player.CurrentSample{Sample: 1384},
	}
	got := drain(p)
	if len(got) != len(want) {
		t.Fatalf("updates = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("update %d = %v, want %v", i, got[i], want[i])
		}
	}

	// The last buffer started at frame 1256.
	ref := make([]float64, 256)
	sine.Apply(ref, 1256, 2)
	for i, v := range ref {
		if s.buf[i] != float32(v) {
			t.Fatalf("sample %d = %v, want %v", i, s.buf[i], float32(v))
		}
	}
}

func TestStopHaltsUpdates(t *testing.T) {
	t.Parallel()

	dev := &fakeDevice{}
	p := newPlayer(t, dev)

	exec(t, p, player.PlayFrom{Root: effect.NewZero()})
	s := dev.last(t)
	s.Tick()

	exec(t, p, player.Stop{})
	if p.Playing() {
		t.Fatal("still playing after Stop")
	}
	if !s.isClosed() {
		t.Fatal("stream not closed by Stop")
	}

	if got := drain(p); len(got) > 1 {
		t.Fatalf("at most one update may remain after Stop, got %v", got)
	}
	if s.Tick() {
		t.Fatal("callback ran after Stop")
	}
	if got := drain(p); len(got) != 0 {
		t.Fatalf("updates after Stop: %v", got)
	}

	exec(t, p, player.Stop{})
}

func TestRelocateWhileIdlePublishes(t *testing.T) {
	t.Parallel()

	dev := &fakeDevice{}
	p := newPlayer(t, dev)

	exec(t, p, player.RelocateTo{Sample: 4800})

	got := drain(p)
	if len(got) != 1 || got[0] != (player.CurrentSample{Sample: 4800}) {
		t.Fatalf("updates = %v, want [CurrentSample{4800}]", got)
	}
	if len(dev.opened()) != 0 {
		t.Fatal("relocate while idle must not open a stream")
	}
}

func TestRelocateWhilePlayingReopens(t *testing.T) {
	t.Parallel()

	dev := &fakeDevice{}
	p := newPlayer(t, dev)
	root := effect.NewZero()

	exec(t, p, player.PlayFrom{Root: root, Start: 0})
	first := dev.last(t)
	first.Tick()

	exec(t, p, player.RelocateTo{Root: root, Sample: 96000})
	if !first.isClosed() {
		t.Fatal("old stream still open")
	}

	second := dev.last(t)
	if second == first {
		t.Fatal("relocate did not open a new stream")
	}

	drain(p)
	second.Tick()

	got := drain(p)
	if len(got) != 1 || got[0] != (player.CurrentSample{Sample: 96128}) {
		t.Fatalf("updates = %v, want [CurrentSample{96128}]", got)
	}
}

func TestDeviceFailureIsRecoverable(t *testing.T) {
	t.Parallel()

	dev := &fakeDevice{failOpen: 1, failStart: 1}
	p := newPlayer(t, dev)

	tests := []struct {
		op string
	}{
		{"open"},
		{"start"},
	}

	for _, tt := range tests {
		err := p.Exec(context.Background(), player.PlayFrom{Root: effect.NewZero()})

		var de *player.DeviceError
		if !errors.As(err, &de) || de.Op != tt.op || !errors.Is(err, errNoDevice) {
			t.Fatalf("err = %v, want DeviceError{Op: %q}", err, tt.op)
		}
		if p.Playing() {
			t.Fatal("playing after failed open")
		}

		got := drain(p)
		if len(got) != 1 {
			t.Fatalf("updates = %v, want one DeviceFailure", got)
		}
		if f, ok := got[0].(player.DeviceFailure); !ok || !errors.Is(f.Err, errNoDevice) {
			t.Fatalf("update = %v, want DeviceFailure", got[0])
		}
	}

	if s := dev.last(t); !s.isClosed() {
		t.Fatal("stream that failed to start must be closed")
	}

	exec(t, p, player.PlayFrom{Root: effect.NewZero()})
	if !p.Playing() || !dev.last(t).Tick() {
		t.Fatal("player did not recover after device failures")
	}
}

func TestUpdatesDropOldest(t *testing.T) {
	t.Parallel()

	dev := &fakeDevice{}
	p := newPlayer(t, dev, player.WithUpdateBuffer(2))

	exec(t, p, player.PlayFrom{Root: effect.NewZero()})
	s := dev.last(t)
	for i := 0; i < 5; i++ {
		s.Tick()
	}

	got := drain(p)
	want := []player.Update{
		player.CurrentSample{Sample: 512},
		player.CurrentSample{Sample: 640},
	}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("updates = %v, want %v", got, want)
	}
}

func TestLatest(t *testing.T) {
	t.Parallel()

	dev := &fakeDevice{}
	p := newPlayer(t, dev)

	if _, ok := p.Latest(); ok {
		t.Fatal("Latest reported a sample before any update")
	}

	exec(t, p, player.PlayFrom{Root: effect.NewZero(), Start: 10})
	s := dev.last(t)
	s.Tick()
	s.Tick()

	sample, ok := p.Latest()
	if !ok || sample != 266 {
		t.Fatalf("Latest() = %d, %v; want 266, true", sample, ok)
	}
}

func TestCommandsAreFIFO(t *testing.T) {
	t.Parallel()

	dev := &fakeDevice{}
	p := newPlayer(t, dev)
	root := effect.NewZero()

	if err := p.Send(player.PlayFrom{Root: root}); err != nil {
		t.Fatal(err)
	}
	if err := p.Send(player.RelocateTo{Root: root, Sample: 100}); err != nil {
		t.Fatal(err)
	}
	exec(t, p, player.Stop{})

	streams := dev.opened()
	if len(streams) != 2 {
		t.Fatalf("opened %d streams, want 2", len(streams))
	}
	for i, s := range streams {
		if !s.isClosed() {
			t.Fatalf("stream %d left open", i)
		}
	}
}

func TestClose(t *testing.T) {
	t.Parallel()

	dev := &fakeDevice{}
	p := player.New(dev, player.WithLogger(slog.New(slog.DiscardHandler)))

	exec(t, p, player.PlayFrom{Root: effect.NewZero()})
	s := dev.last(t)

	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
	if !s.isClosed() {
		t.Fatal("Close must close the open stream")
	}

	if err := p.Send(player.Stop{}); !errors.Is(err, player.ErrClosed) {
		t.Fatalf("Send err = %v, want ErrClosed", err)
	}
	if err := p.Exec(context.Background(), player.Stop{}); !errors.Is(err, player.ErrClosed) {
		t.Fatalf("Exec err = %v, want ErrClosed", err)
	}
}

func TestNullDevice(t *testing.T) {
	t.Parallel()

	var buffers atomic.Int64
	dev := &player.NullDevice{Tap: func(out []float32) {
		if len(out) == 64*2 {
			buffers.Add(1)
		}
	}}
	p := newPlayer(t, dev, player.WithFramesPerBuffer(64))

	exec(t, p, player.PlayFrom{Root: effect.NewSineWave(0.1, 440, 0)})

	deadline := time.After(5 * time.Second)
	for buffers.Load() < 3 {
		select {
		case <-deadline:
			t.Fatal("null device did not render")
		case <-time.After(5 * time.Millisecond):
		}
	}

	exec(t, p, player.Stop{})
	drain(p)

	n := buffers.Load()
	time.Sleep(20 * time.Millisecond)
	if buffers.Load() != n {
		t.Fatal("null device kept rendering after Stop")
	}
	if got := drain(p); len(got) != 0 {
		t.Fatalf("updates after Stop: %v", got)
	}
}
