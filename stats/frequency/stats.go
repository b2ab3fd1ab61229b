// Package frequency computes shape descriptors of one-sided magnitude
// spectra.
package frequency

import "math"

// Stats holds descriptors of a magnitude spectrum.
type Stats struct {
	BinCount int
	PeakBin  int
	Peak     float64
	PeakHz   float64
	Centroid float64 // Hz, magnitude weighted
	Spread   float64 // Hz, standard deviation around Centroid
	Flatness float64 // 0..1, geometric over arithmetic mean
	Rolloff  float64 // Hz below which RolloffFraction of the energy lies
}

// RolloffFraction is the energy share [Calculate] uses for Stats.Rolloff.
const RolloffFraction = 0.85

// binFreq returns the frequency of bin i for a one-sided spectrum of n
// bins, which came from an FFT of 2*(n-1) points.
func binFreq(i, n int, sampleRate float64) float64 {
	return float64(i) * sampleRate / float64(2*(n-1))
}

// Calculate describes magnitude, bins 0 (DC) to Nyquist inclusive.
func Calculate(magnitude []float64, sampleRate float64) Stats {
	n := len(magnitude)
	s := Stats{BinCount: n}
	if n < 2 {
		if n == 1 {
			s.Peak = magnitude[0]
		}
		return s
	}

	var sum float64
	for i, v := range magnitude {
		sum += v
		if v > s.Peak {
			s.Peak = v
			s.PeakBin = i
		}
	}
	s.PeakHz = binFreq(s.PeakBin, n, sampleRate)
	s.Centroid = Centroid(magnitude, sampleRate)

	if sum > 0 {
		var sq float64
		for i, v := range magnitude {
			d := binFreq(i, n, sampleRate) - s.Centroid
			sq += d * d * v
		}
		s.Spread = math.Sqrt(sq / sum)
	}

	s.Flatness = Flatness(magnitude)
	s.Rolloff = Rolloff(magnitude, sampleRate, RolloffFraction)

	return s
}

// Centroid returns the magnitude-weighted mean frequency in Hz.
func Centroid(magnitude []float64, sampleRate float64) float64 {
	n := len(magnitude)
	if n < 2 {
		return 0
	}

	var sum, weighted float64
	for i, v := range magnitude {
		sum += v
		weighted += binFreq(i, n, sampleRate) * v
	}
	if sum == 0 {
		return 0
	}
	return weighted / sum
}

// Flatness returns the Wiener entropy of bins 1..n-1: 1 for white noise,
// near 0 for a pure tone. Any empty bin makes it 0.
func Flatness(magnitude []float64) float64 {
	if len(magnitude) < 2 {
		return 0
	}

	bins := magnitude[1:]
	var sumLin, sumLog float64
	for _, v := range bins {
		if v <= 0 {
			return 0
		}
		sumLin += v
		sumLog += math.Log(v)
	}

	k := float64(len(bins))
	return math.Exp(sumLog/k) / (sumLin / k)
}

// Rolloff returns the lowest bin frequency below which fraction of the
// spectral energy (sum of squared magnitudes) lies.
func Rolloff(magnitude []float64, sampleRate, fraction float64) float64 {
	n := len(magnitude)
	if n < 2 {
		return 0
	}

	var total float64
	for _, v := range magnitude {
		total += v * v
	}
	if total == 0 {
		return 0
	}

	var acc float64
	for i, v := range magnitude {
		acc += v * v
		if acc >= fraction*total {
			return binFreq(i, n, sampleRate)
		}
	}
	return binFreq(n-1, n, sampleRate)
}
