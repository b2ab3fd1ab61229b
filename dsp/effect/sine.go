package effect

import (
	"fmt"
	"math"
)

// DefaultSampleRate is the rate used by [NewSineWave].
const DefaultSampleRate = 48000

// SineWave generates a(t) = amplitude * sin(2*pi*frequency*t - phase) on
// every channel, where t is the absolute frame index over the sample rate.
type SineWave struct {
	Source

	sampleRate float64
	amplitude  cell[float64]
	frequency  cell[float64]
	phase      cell[float64]
}

// NewSineWave returns a sine source at [DefaultSampleRate].
func NewSineWave(amplitude, frequency, phase float64) *SineWave {
	return NewSineWaveAt(amplitude, frequency, phase, DefaultSampleRate)
}

// NewSineWaveAt returns a sine source rendering at sampleRate. Non-positive
// rates fall back to [DefaultSampleRate].
func NewSineWaveAt(amplitude, frequency, phase, sampleRate float64) *SineWave {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	s := &SineWave{sampleRate: sampleRate}
	s.amplitude.store(amplitude)
	s.frequency.store(frequency)
	s.phase.store(phase)
	return s
}

// Apply renders the wave from frame start.
func (s *SineWave) Apply(out []float64, start, channels int) {
	channels = Channels(channels)
	a := s.amplitude.load()
	w := 2 * math.Pi * s.frequency.load() / s.sampleRate
	phi := s.phase.load()

	for i := 0; i < len(out); i += channels {
		v := a * math.Sin(w*float64(start+i/channels)-phi)
		end := min(i+channels, len(out))
		for j := i; j < end; j++ {
			out[j] = v
		}
	}
}

// Name returns a description including the current parameters.
func (s *SineWave) Name() string {
	return fmt.Sprintf("Sine %.4g Hz", s.frequency.load())
}

// SampleRate returns the rendering rate.
func (s *SineWave) SampleRate() float64 { return s.sampleRate }

// Amplitude returns the peak amplitude.
func (s *SineWave) Amplitude() float64 { return s.amplitude.load() }

// SetAmplitude sets the peak amplitude.
func (s *SineWave) SetAmplitude(a float64) { s.amplitude.store(a) }

// Frequency returns the frequency in Hz.
func (s *SineWave) Frequency() float64 { return s.frequency.load() }

// SetFrequency sets the frequency in Hz.
func (s *SineWave) SetFrequency(f float64) { s.frequency.store(f) }

// Phase returns the phase offset in radians.
func (s *SineWave) Phase() float64 { return s.phase.load() }

// SetPhase sets the phase offset in radians.
func (s *SineWave) SetPhase(p float64) { s.phase.store(p) }
