package iir_test

import (
	"fmt"

	"github.com/cwbudde/algo-labdsp/dsp/filter/iir"
)

func ExampleFilter_ProcessSample() {
	// Single pole at 0.5: y[n] = x[n] + 0.5*y[n-1].
	f, err := iir.New([]float32{1}, []float32{1, -0.5})
	if err != nil {
		fmt.Println(err)
		return
	}

	for n, x := range []float32{1, 0, 0, 0, 0} {
		fmt.Printf("y[%d] = %.4f\n", n, f.ProcessSample(x))
	}
	// Output:
	// y[0] = 1.0000
	// y[1] = 0.5000
	// y[2] = 0.2500
	// y[3] = 0.1250
	// y[4] = 0.0625
}

func ExampleApply() {
	x := []float32{1, 1, 1, 1}
	y := make([]float32, len(x))
	if err := iir.Apply(y, x, []float32{0.5, 0.5}, []float32{1}); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(y)
	// Output:
	// [0.5 1 1 1]
}

func ExampleNew_invalid() {
	_, err := iir.New([]float32{1}, []float32{2, 1})
	fmt.Println(err)
	// Output:
	// iir: invalid filter specification: A[0] must be 1, got 2
}
