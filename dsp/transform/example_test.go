package transform

import (
	"fmt"
	"math/cmplx"
)

func ExampleNewAlgo() {
	tr, err := NewAlgo[complex128](4)
	if err != nil {
		fmt.Println(err)
		return
	}

	buf := []complex128{1, 0, -1, 0}
	if err := tr.Forward(buf); err != nil {
		fmt.Println(err)
		return
	}

	for _, v := range buf {
		fmt.Printf("%.0f ", cmplx.Abs(v))
	}
	fmt.Println()
	// Output:
	// 0 2 0 2
}

func ExampleRestrict() {
	f := Restrict(GonumFactory(), 16)

	_, err := f(32)
	fmt.Println(err)
	// Output:
	// transform: unsupported size: 32 not in [16]
}
