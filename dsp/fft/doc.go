// Package fft implements a recursive radix-2 Cooley-Tukey transform for
// spectrum visualization.
//
// The transform is unnormalized in both directions: a forward transform
// followed by an inverse one returns the input scaled by N.
package fft
