// Package time computes level statistics of sample buffers.
package time

import (
	"math"

	"github.com/Zahr1729/Iron/dsp/core"
)

// Stats holds level statistics of one channel.
type Stats struct {
	Length  int
	DC      float64 // mean
	RMS     float64
	Peak    float64 // max |x|
	PeakPos int
	// Clipped counts samples at or beyond full scale.
	Clipped       int
	ZeroCrossings int
}

// RMSdB returns the RMS level in dBFS.
func (s Stats) RMSdB() float64 { return core.LinearToDB(s.RMS) }

// PeakdB returns the peak level in dBFS.
func (s Stats) PeakdB() float64 { return core.LinearToDB(s.Peak) }

// CrestFactor returns peak / RMS, or 0 for silence.
func (s Stats) CrestFactor() float64 {
	if s.RMS == 0 {
		return 0
	}
	return s.Peak / s.RMS
}

// Calculate computes all statistics in one pass. The mean uses Kahan
// summation so long tracks keep their DC offset exact.
func Calculate(signal []float64) Stats {
	s := Stats{Length: len(signal)}
	if len(signal) == 0 {
		return s
	}

	var sum, comp, sumSq float64
	for i, x := range signal {
		y := x - comp
		t := sum + y
		comp = (t - sum) - y
		sum = t

		sumSq += x * x

		if a := math.Abs(x); a > s.Peak {
			s.Peak = a
			s.PeakPos = i
		}
		if math.Abs(x) >= 1 {
			s.Clipped++
		}
		if i > 0 && signal[i-1]*x < 0 {
			s.ZeroCrossings++
		}
	}

	n := float64(len(signal))
	s.DC = sum / n
	s.RMS = math.Sqrt(sumSq / n)

	return s
}

// Planar computes Stats for every channel.
func Planar(channels [][]float64) []Stats {
	out := make([]Stats, len(channels))
	for i, ch := range channels {
		out[i] = Calculate(ch)
	}
	return out
}
