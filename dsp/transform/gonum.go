package transform

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Gonum is a complex128 Transform backed by gonum's fourier.CmplxFFT.
// Any positive size is accepted.
type Gonum struct {
	fft *fourier.CmplxFFT
	n   int
}

// NewGonum returns a gonum transform of the given size.
func NewGonum(size int) (*Gonum, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedSize, size)
	}

	return &Gonum{fft: fourier.NewCmplxFFT(size), n: size}, nil
}

// GonumFactory adapts NewGonum to a Factory.
func GonumFactory() Factory[complex128] {
	return func(size int) (Transform[complex128], error) {
		t, err := NewGonum(size)
		if err != nil {
			return nil, err
		}

		return t, nil
	}
}

func (g *Gonum) Len() int { return g.n }

func (g *Gonum) Ordering() Ordering { return Natural }

// Forward transforms buf in place.
func (g *Gonum) Forward(buf []complex128) error {
	if err := checkLen(g.n, len(buf)); err != nil {
		return err
	}

	g.fft.Coefficients(buf, buf)

	return nil
}
