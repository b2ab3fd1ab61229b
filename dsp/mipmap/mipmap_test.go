package mipmap

import (
	"errors"
	"math"
	"testing"
)

func ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

func TestPresampledStepOneReproducesData(t *testing.T) {
	t.Parallel()

	data := make([]float64, 5000)
	for i := range data {
		data[i] = math.Sin(float64(i) * 0.01)
	}

	m := New(data)
	pd := NewPlotData(1, 0, len(data))

	minMax, err := m.Presampled(pd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if minMax {
		t.Fatal("step 1 must not produce min/max data")
	}

	for i := range data {
		if pd.Data[0][i] != data[i] {
			t.Fatalf("index %d: got %v, want %v", i, pd.Data[0][i], data[i])
		}
	}
}

func TestPyramidConstruction(t *testing.T) {
	t.Parallel()

	data := []float64{1, -3, 2, 2, -5, 4, 0.5, -0.5}
	m := New(data, WithMinLength(1))

	if m.Height() != 3 {
		t.Fatalf("height = %d, want 3", m.Height())
	}

	rep, lo, hi, err := m.Level(1)
	if err != nil {
		t.Fatalf("level 1: %v", err)
	}

	wantRep := []float64{-3, 2, -5, -0.5}
	wantLo := []float64{-3, 2, -5, -0.5}
	wantHi := []float64{1, 2, 4, 0.5}

	for i := range wantRep {
		if rep[i] != wantRep[i] {
			t.Errorf("rep[%d] = %v, want %v", i, rep[i], wantRep[i])
		}
		if lo[i] != wantLo[i] {
			t.Errorf("min[%d] = %v, want %v", i, lo[i], wantLo[i])
		}
		if hi[i] != wantHi[i] {
			t.Errorf("max[%d] = %v, want %v", i, hi[i], wantHi[i])
		}
	}

	rep, lo, hi, _ = m.Level(2)
	if rep[0] != -3 || rep[1] != -5 {
		t.Errorf("rep level 2 = %v, want [-3 -5]", rep)
	}
	if lo[0] != -3 || lo[1] != -5 {
		t.Errorf("min level 2 = %v, want [-3 -5]", lo)
	}
	if hi[0] != 2 || hi[1] != 4 {
		t.Errorf("max level 2 = %v, want [2 4]", hi)
	}

	if _, _, _, err := m.Level(3); err == nil {
		t.Error("expected error for level beyond height")
	}
}

func TestPyramidOddLength(t *testing.T) {
	t.Parallel()

	m := New([]float64{1, 2, 3, 4, -7}, WithMinLength(1))

	rep, lo, hi, err := m.Level(1)
	if err != nil {
		t.Fatalf("level 1: %v", err)
	}

	if len(rep) != 3 || rep[2] != -7 || lo[2] != -7 || hi[2] != -7 {
		t.Fatalf("odd tail not carried: rep=%v min=%v max=%v", rep, lo, hi)
	}
}

func TestPresampledErrors(t *testing.T) {
	t.Parallel()

	m := New(ramp(64), WithMinLength(4))

	tests := []struct {
		name string
		step int
		want error
	}{
		{"not power of two", 5, ErrStepNotPowerOfTwo},
		{"zero step", 0, ErrStepNotPowerOfTwo},
		{"negative step", -4, ErrStepNotPowerOfTwo},
		{"beyond height", 16, ErrStepTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pd := NewPlotData(tt.step, 3, 8)
			for i := range pd.Data[0] {
				pd.Data[0][i] = 42
			}

			_, err := m.Presampled(pd)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}

			for i, v := range pd.Data[0] {
				if v != 42 {
					t.Fatalf("output mutated at %d: %v", i, v)
				}
			}

			if pd.MinMax {
				t.Fatal("MinMax mutated on failure")
			}
		})
	}
}

func TestPresampledZeroFillsPastEnd(t *testing.T) {
	t.Parallel()

	m := New(ramp(64), WithMinLength(4), WithCutoff(10))
	pd := NewPlotData(4, 40, 10)
	for i := range pd.Data[0] {
		pd.Data[0][i] = -1
	}

	minMax, err := m.Presampled(pd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if minMax {
		t.Fatal("level below cutoff must be representative")
	}

	// Level 2 holds 16 entries; entry k covers samples [4k, 4k+4) and keeps
	// the largest magnitude, 4k+3.
	for i := 0; i < 6; i++ {
		want := float64(4*(10+i) + 3)
		if pd.Data[0][i] != want {
			t.Errorf("index %d: got %v, want %v", i, pd.Data[0][i], want)
		}
	}

	for i := 6; i < 10; i++ {
		if pd.Data[0][i] != 0 {
			t.Errorf("index %d: got %v, want 0", i, pd.Data[0][i])
		}
	}
}

func TestPresampledMinMaxAtCutoff(t *testing.T) {
	t.Parallel()

	data := make([]float64, 64)
	for i := range data {
		if i%2 == 0 {
			data[i] = float64(i)
		} else {
			data[i] = -float64(i)
		}
	}

	m := New(data, WithMinLength(4), WithCutoff(1))
	pd := NewPlotData(2, 0, 4)

	minMax, err := m.Presampled(pd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !minMax || !pd.MinMax {
		t.Fatal("expected min/max response at cutoff level")
	}

	for i := 0; i < 4; i++ {
		wantLo := -float64(2*i + 1)
		wantHi := float64(2 * i)
		if pd.Data[0][i] != wantLo || pd.Data[1][i] != wantHi {
			t.Errorf("index %d: got (%v, %v), want (%v, %v)", i, pd.Data[0][i], pd.Data[1][i], wantLo, wantHi)
		}
	}
}

func TestForRange(t *testing.T) {
	t.Parallel()

	m := New(ramp(1<<14), WithMinLength(16), WithCutoff(3))

	levels, step, _ := m.ForRange(m.Len())
	if step != 1<<(m.Height()-1) {
		t.Errorf("full range step = %d, want %d", step, 1<<(m.Height()-1))
	}
	if len(levels) != 2 {
		t.Errorf("full range should use min/max, got %d arrays", len(levels))
	}

	levels, step, _ = m.ForRange(1)
	if step != 1 || len(levels) != 1 {
		t.Errorf("tiny range: step=%d arrays=%d, want step 1 and one array", step, len(levels))
	}
	if len(levels[0]) != m.Len() {
		t.Errorf("tiny range should return level 0")
	}
}

func BenchmarkNew(b *testing.B) {
	data := ramp(1 << 20)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = New(data)
	}
}
