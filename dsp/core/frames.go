package core

// ToFloat32 converts src into dst, clamping to [-1, 1] and replacing NaN
// with silence. It converts min(len(dst), len(src)) samples and returns
// that count.
func ToFloat32(dst []float32, src []float64) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		v := src[i]
		switch {
		case v != v:
			v = 0
		case v > 1:
			v = 1
		case v < -1:
			v = -1
		}
		dst[i] = float32(v)
	}
	return n
}

// Mono averages interleaved frames into one sample per frame. dst must hold
// len(src)/channels samples.
func Mono(dst, src []float64, channels int) {
	if channels <= 1 {
		copy(dst, src)
		return
	}
	inv := 1 / float64(channels)
	for f := range dst {
		base := f * channels
		if base+channels > len(src) {
			dst[f] = 0
			continue
		}
		sum := 0.0
		for c := 0; c < channels; c++ {
			sum += src[base+c]
		}
		dst[f] = sum * inv
	}
}
