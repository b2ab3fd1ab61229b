package fft_test

import (
	"fmt"

	"github.com/Zahr1729/Iron/dsp/fft"
)

func ExampleSpectrum() {
	mag, err := fft.Spectrum([]float64{1, 0, -1, 0})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%.2f\n", mag)
	// Output: [0.00 1.00 0.00 1.00]
}
