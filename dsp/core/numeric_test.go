package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		lo       float64
		hi       float64
		expected float64
	}{
		{name: "inside", value: 0.5, lo: 0, hi: 1, expected: 0.5},
		{name: "below", value: -1, lo: 0, hi: 1, expected: 0},
		{name: "above", value: 2, lo: 0, hi: 1, expected: 1},
		{name: "swapped", value: 2, lo: 1, hi: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.lo, tt.hi)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDBConversions(t *testing.T) {
	tests := []struct {
		db   float64
		want float64
	}{
		{db: 0, want: 1},
		{db: 20, want: 10},
		{db: -20, want: 0.1},
		{db: -6, want: 0.501187},
	}

	for _, tt := range tests {
		got := DBToLinear(tt.db)
		if math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("DBToLinear(%v) = %v, want %v", tt.db, got, tt.want)
		}
		if back := LinearToDB(got); math.Abs(back-tt.db) > 1e-9 {
			t.Errorf("LinearToDB(DBToLinear(%v)) = %v", tt.db, back)
		}
	}

	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
}
