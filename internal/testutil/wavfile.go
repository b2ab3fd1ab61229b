package testutil

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteWAV writes planar channels as a 16-bit PCM WAV file named name in a
// fresh temporary directory and returns its path.
func WriteWAV(t testing.TB, name string, sampleRate int, channels ...[]float64) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, len(channels), 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: len(channels),
			SampleRate:  sampleRate,
		},
		Data:           QuantizePCM16(Interleave(channels...)),
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close encoder %s: %v", path, err)
	}

	return path
}

// QuantizePCM16 converts samples in [-1, 1] to signed 16-bit integers.
func QuantizePCM16(samples []float64) []int {
	out := make([]int, len(samples))
	for i, v := range samples {
		v = math.Max(-1, math.Min(1, v))
		out[i] = int(math.Round(v * 32767))
	}
	return out
}
