package spectrum_test

import (
	"fmt"

	"github.com/Zahr1729/Iron/dsp/effect"
	"github.com/Zahr1729/Iron/dsp/spectrum"
)

func ExampleAnalyzer_Frame() {
	const rate = 48000

	a, err := spectrum.NewAnalyzer(4096, spectrum.WithHann())
	if err != nil {
		fmt.Println(err)
		return
	}

	tone := effect.NewSineWaveAt(0.5, 3000, 0, rate)
	mag, err := a.Frame(tone, rate)
	if err != nil {
		fmt.Println(err)
		return
	}

	peak := 0
	for k := range mag[:len(mag)/2] {
		if mag[k] > mag[peak] {
			peak = k
		}
	}

	fmt.Printf("peak at %.0f Hz\n", a.BinFrequency(peak, rate))
	// Output: peak at 3000 Hz
}
