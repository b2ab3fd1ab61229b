package effect_test

import (
	"fmt"

	"github.com/Zahr1729/Iron/dsp/effect"
)

func ExampleGain() {
	src := effect.NewSineWaveAt(1, 1000, 0, 4000)
	gain := effect.NewGain(-6)
	_ = gain.SetInput(0, src)

	out := effect.NewOutput()
	_ = out.SetInput(0, gain)

	buf := make([]float64, 4)
	out.Apply(buf, 0, 1)

	fmt.Printf("%.3f\n", buf)
	// Output: [0.000 0.501 0.000 -0.501]
}
