package iir

import (
	"fmt"

	"github.com/cwbudde/algo-labdsp/dsp/core"
)

// Apply evaluates the difference equation over x into dst with zero
// history, using dst itself as the output history. dst and x must have the
// same length and must not overlap. The result equals that of a freshly
// constructed Filter run over x.
func Apply[F core.Float](dst, x, b, a []F) error {
	if err := (Coefficients[F]{B: b, A: a}).Validate(); err != nil {
		return err
	}
	if len(dst) != len(x) {
		return fmt.Errorf("%w: dst %d, x %d", ErrLengthMismatch, len(dst), len(x))
	}

	for n := range x {
		var acc F
		for k := 0; k < len(b) && k <= n; k++ {
			acc += b[k] * x[n-k]
		}

		var fb F
		for k := 1; k < len(a) && k <= n; k++ {
			fb += a[k] * dst[n-k]
		}

		dst[n] = acc - fb
	}
	return nil
}
