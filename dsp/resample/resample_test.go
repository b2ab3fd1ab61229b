package resample

import (
	"errors"
	"math"
	"testing"

	"github.com/Zahr1729/Iron/internal/testutil"
)

func rms(x []float64) float64 {
	sum := 0.0
	for _, v := range x {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(x)))
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	for _, rates := range [][2]int{{0, 48000}, {44100, 0}, {-1, 1}} {
		if _, err := New(rates[0], rates[1]); !errors.Is(err, ErrInvalidRate) {
			t.Errorf("New(%d, %d) err = %v, want ErrInvalidRate", rates[0], rates[1], err)
		}
	}
}

func TestRatioReduction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, out  int
		up, down int
	}{
		{44100, 48000, 160, 147},
		{48000, 44100, 147, 160},
		{48000, 24000, 1, 2},
		{22050, 44100, 2, 1},
		{8000, 8000, 1, 1},
	}

	for _, tt := range tests {
		c, err := New(tt.in, tt.out)
		if err != nil {
			t.Fatalf("New(%d, %d): %v", tt.in, tt.out, err)
		}
		if up, down := c.Ratio(); up != tt.up || down != tt.down {
			t.Errorf("%d->%d: ratio %d/%d, want %d/%d", tt.in, tt.out, up, down, tt.up, tt.down)
		}
	}
}

func TestOutputLen(t *testing.T) {
	t.Parallel()

	c, err := New(44100, 48000)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.OutputLen(44100); got != 48000 {
		t.Fatalf("OutputLen(44100) = %d, want 48000", got)
	}
	if got := c.OutputLen(0); got != 0 {
		t.Fatalf("OutputLen(0) = %d", got)
	}
	if got := len(c.Convert(make([]float64, 1000))); got != c.OutputLen(1000) {
		t.Fatalf("Convert length %d, want %d", got, c.OutputLen(1000))
	}
}

func TestConvertPreservesTone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in, out int
	}{
		{"44.1k to 48k", 44100, 48000},
		{"48k to 44.1k", 48000, 44100},
		{"22.05k to 44.1k", 22050, 44100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			x := testutil.DeterministicSine(1000, float64(tt.in), 0.8, tt.in/10)
			c, err := New(tt.in, tt.out)
			if err != nil {
				t.Fatal(err)
			}

			got := c.Convert(x)
			want := testutil.DeterministicSine(1000, float64(tt.out), 0.8, len(got))

			// The edges see the zero padding.
			const edge = 128
			d, err := testutil.MaxAbsDiff(got[edge:len(got)-edge], want[edge:len(want)-edge])
			if err != nil {
				t.Fatal(err)
			}
			if d > 1e-2 {
				t.Fatalf("max deviation %v from the ideal tone", d)
			}
		})
	}
}

func TestConvertRejectsAliases(t *testing.T) {
	t.Parallel()

	x := testutil.DeterministicSine(18000, 48000, 1, 4800)
	c, err := New(48000, 24000)
	if err != nil {
		t.Fatal(err)
	}

	out := c.Convert(x)
	if r := rms(out[64 : len(out)-64]); r > 0.05 {
		t.Fatalf("18 kHz leaked into 24 kHz output with rms %v", r)
	}
}

func TestQualityChangesFilterLength(t *testing.T) {
	t.Parallel()

	fast, err := New(48000, 24000, WithQuality(QualityFast))
	if err != nil {
		t.Fatal(err)
	}
	best, err := New(48000, 24000, WithQuality(QualityBest))
	if err != nil {
		t.Fatal(err)
	}
	if len(fast.phases[0]) >= len(best.phases[0]) {
		t.Fatalf("fast taps %d not below best taps %d", len(fast.phases[0]), len(best.phases[0]))
	}
}

func TestPlanar(t *testing.T) {
	t.Parallel()

	left := testutil.Ones(100)
	right := testutil.DC(-0.5, 100)

	same, err := Planar([][]float64{left, right}, 48000, 48000)
	if err != nil {
		t.Fatal(err)
	}
	if &same[0][0] != &left[0] {
		t.Fatal("equal rates should return the input unchanged")
	}

	out, err := Planar([][]float64{left, right}, 24000, 48000)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || len(out[0]) != 200 || len(out[1]) != 200 {
		t.Fatalf("unexpected shape %d x %d", len(out), len(out[0]))
	}
	// DC passes at unity gain away from the edges.
	if math.Abs(out[0][100]-1) > 1e-3 || math.Abs(out[1][100]+0.5) > 1e-3 {
		t.Fatalf("dc gain off: %v, %v", out[0][100], out[1][100])
	}

	if _, err := Planar([][]float64{left}, 0, 48000); !errors.Is(err, ErrInvalidRate) {
		t.Fatalf("err = %v, want ErrInvalidRate", err)
	}
}

func BenchmarkConvert(b *testing.B) {
	c, err := New(44100, 48000)
	if err != nil {
		b.Fatal(err)
	}
	x := testutil.DeterministicNoise(1, 1, 44100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Convert(x)
	}
}
