// Package window generates cosine-sum window functions for spectral
// analysis.
package window
