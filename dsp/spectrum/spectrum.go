package spectrum

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-labdsp/dsp/core"
	"github.com/cwbudde/algo-labdsp/dsp/transform"
	"github.com/cwbudde/algo-vecmath"
)

// ErrLengthMismatch is returned when source and destination lengths differ.
var ErrLengthMismatch = errors.New("spectrum: length mismatch")

func checkLen(dst, src int) error {
	if dst != src {
		return fmt.Errorf("%w: dst %d, src %d", ErrLengthMismatch, dst, src)
	}

	return nil
}

// Complexify copies real samples into dst with zero imaginary parts.
func Complexify[F core.Float, C transform.Complex](dst []C, src []F) error {
	if err := checkLen(len(dst), len(src)); err != nil {
		return err
	}

	for i, v := range src {
		dst[i] = C(complex(float64(v), 0))
	}

	return nil
}

// Reducer converts complex bins to magnitudes through the vecmath kernel,
// using scratch sized once at construction.
type Reducer[F core.Float, C transform.Complex] struct {
	re, im []float64
	out    []float64
}

// NewReducer returns a reducer for n bins.
func NewReducer[F core.Float, C transform.Complex](n int) *Reducer[F, C] {
	r := &Reducer[F, C]{
		re: make([]float64, n),
		im: make([]float64, n),
	}

	var zero F
	if _, wide := any(zero).(float64); !wide {
		r.out = make([]float64, n)
	}

	return r
}

// Magnitude writes |X[k]| into dst. Both slices must hold the number of
// bins the reducer was sized for.
func (r *Reducer[F, C]) Magnitude(dst []F, in []C) error {
	if err := checkLen(len(dst), len(in)); err != nil {
		return err
	}

	if err := checkLen(len(r.re), len(in)); err != nil {
		return err
	}

	for i, c := range in {
		v := complex128(c)
		r.re[i] = real(v)
		r.im[i] = imag(v)
	}

	if wide, ok := any(dst).([]float64); ok {
		vecmath.Magnitude(wide, r.re, r.im)
		return nil
	}

	vecmath.Magnitude(r.out, r.re, r.im)

	for i, v := range r.out {
		dst[i] = F(v)
	}

	return nil
}
