// Package resample converts whole buffers between integer sample rates
// with a Kaiser-windowed polyphase FIR. Output is aligned with the input:
// the filter's group delay is compensated, so frame i of the output sits
// at time i/outRate.
//
// Quality modes:
//
//	mode            taps/phase   nominal stopband
//	QualityFast     16           ~55 dB
//	QualityBalanced 32           ~75 dB
//	QualityBest     64           ~90 dB
package resample
