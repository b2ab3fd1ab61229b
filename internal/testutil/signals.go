package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Ramp returns 0, 1, ..., length-1 scaled by step.
func Ramp(length int, step float64) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = float64(i) * step
	}
	return out
}

// Interleave merges equal-length channels into one interleaved slice.
func Interleave(channels ...[]float64) []float64 {
	if len(channels) == 0 {
		return nil
	}
	frames := len(channels[0])
	out := make([]float64, frames*len(channels))
	for c, ch := range channels {
		for f := 0; f < frames && f < len(ch); f++ {
			out[f*len(channels)+c] = ch[f]
		}
	}
	return out
}

// Channel extracts channel c from an interleaved slice.
func Channel(interleaved []float64, channels, c int) []float64 {
	out := make([]float64, 0, len(interleaved)/channels)
	for i := c; i < len(interleaved); i += channels {
		out = append(out, interleaved[i])
	}
	return out
}

// ArgMax returns the index of the largest value in x, or -1 for an empty
// slice.
func ArgMax(x []float64) int {
	best := -1
	for i, v := range x {
		if best < 0 || v > x[best] {
			best = i
		}
	}
	return best
}

// DC returns a constant signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length ones.
func Ones(length int) []float64 {
	return DC(1, length)
}

// Impulse returns a unit impulse at pos.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}
