// Package mipmap provides a multi-resolution peak cache for one channel of
// audio samples.
//
// A [Channel] keeps three pyramids of halving-length arrays built by
// pairwise reduction: a representative pyramid (the larger absolute value
// of each pair) and true minimum/maximum pyramids. Waveform queries read a
// single pyramid level, so their cost depends on the visible width only,
// not on the length of the track or the zoom factor.
package mipmap
