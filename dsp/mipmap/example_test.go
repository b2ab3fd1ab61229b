package mipmap_test

import (
	"fmt"

	"github.com/Zahr1729/Iron/dsp/mipmap"
)

func ExampleChannel_Presampled() {
	data := []float64{0.1, -0.4, 0.3, 0.2, -0.9, 0.5, 0.0, 0.7}
	m := mipmap.New(data, mipmap.WithMinLength(1))

	pd := mipmap.NewPlotData(2, 0, 4)
	minMax, err := m.Presampled(pd)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(minMax, pd.Data[0])
	// Output: false [-0.4 0.3 -0.9 0.7]
}

func ExampleChannel_Presampled_minMax() {
	data := []float64{0.1, -0.4, 0.3, 0.2, -0.9, 0.5, 0.0, 0.7}
	m := mipmap.New(data, mipmap.WithMinLength(1), mipmap.WithCutoff(1))

	pd := mipmap.NewPlotData(4, 0, 2)
	if _, err := m.Presampled(pd); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("min:", pd.Data[0])
	fmt.Println("max:", pd.Data[1])
	// Output:
	// min: [-0.4 -0.9]
	// max: [0.3 0.7]
}
