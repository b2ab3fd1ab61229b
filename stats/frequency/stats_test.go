package frequency

import (
	"math"
	"testing"

	"github.com/Zahr1729/Iron/internal/testutil"
)

func TestCalculateSingleBin(t *testing.T) {
	t.Parallel()

	// 9 bins from a 16-point FFT at 1600 Hz: 100 Hz per bin.
	mag := make([]float64, 9)
	mag[3] = 2

	s := Calculate(mag, 1600)
	if s.BinCount != 9 || s.PeakBin != 3 || s.Peak != 2 || s.PeakHz != 300 {
		t.Fatalf("Calculate = %+v", s)
	}
	if s.Centroid != 300 || s.Spread != 0 || s.Rolloff != 300 {
		t.Fatalf("centroid %v, spread %v, rolloff %v; want 300, 0, 300", s.Centroid, s.Spread, s.Rolloff)
	}
	if s.Flatness != 0 {
		t.Fatalf("flatness = %v, want 0 with empty bins", s.Flatness)
	}
}

func TestDescriptors(t *testing.T) {
	t.Parallel()

	flat := testutil.Ones(9)
	if f := Flatness(flat); math.Abs(f-1) > 1e-12 {
		t.Fatalf("flatness of a flat spectrum = %v, want 1", f)
	}
	if c := Centroid(flat, 1600); math.Abs(c-400) > 1e-9 {
		t.Fatalf("centroid of a flat spectrum = %v, want 400", c)
	}

	// Energy 1 at 100 Hz and 3 at 200 Hz: 85% is reached at 200 Hz.
	two := []float64{0, 1, math.Sqrt(3), 0, 0}
	if r := Rolloff(two, 800, 0.85); r != 200 {
		t.Fatalf("rolloff = %v, want 200", r)
	}
	if r := Rolloff(two, 800, 0.2); r != 100 {
		t.Fatalf("rolloff(0.2) = %v, want 100", r)
	}

	silent := make([]float64, 5)
	if s := Calculate(silent, 800); s.Centroid != 0 || s.Rolloff != 0 || s.Spread != 0 {
		t.Fatalf("silent spectrum = %+v", s)
	}
	if s := Calculate([]float64{0.5}, 800); s.Peak != 0.5 || s.BinCount != 1 {
		t.Fatalf("DC-only spectrum = %+v", s)
	}
}
