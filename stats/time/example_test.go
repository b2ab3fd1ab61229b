package time_test

import (
	"fmt"

	timestats "github.com/Zahr1729/Iron/stats/time"
)

func ExampleCalculate() {
	s := timestats.Calculate([]float64{0.5, -0.5, 0.5, -0.5})
	fmt.Printf("rms %.2f dBFS, crest %.1f, crossings %d\n", s.RMSdB(), s.CrestFactor(), s.ZeroCrossings)
	// Output: rms -6.02 dBFS, crest 1.0, crossings 3
}
