// Package core holds small numeric helpers shared by the engine: decibel
// conversion, clamping and the float64 to float32 frame conversion used at
// the hardware boundary.
package core
