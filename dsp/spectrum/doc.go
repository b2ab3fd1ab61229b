// Package spectrum renders windowed frames from a graph node and turns them
// into magnitude spectra for visualization.
//
// An [Analyzer] owns a precomputed FFT plan and its scratch buffers, so one
// analyzer must not be used from several goroutines at once.
package spectrum
