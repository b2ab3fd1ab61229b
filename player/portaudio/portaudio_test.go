package portaudio

import (
	"testing"

	"github.com/Zahr1729/Iron/player"
)

func TestOpenStreamRequiresOpen(t *testing.T) {
	t.Parallel()

	d := New(nil)
	if d.Name() != "" || d.DefaultSampleRate() != 0 {
		t.Fatal("unopened device must not report device info")
	}

	_, err := d.OpenStream(player.StreamConfig{SampleRate: 48000, Channels: 2, FramesPerBuffer: 256}, func([]float32) {})
	if err == nil {
		t.Fatal("expected error before Open")
	}

	if err := d.Close(); err != nil {
		t.Fatalf("Close on unopened device: %v", err)
	}
}
