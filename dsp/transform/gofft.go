package transform

import (
	"fmt"

	"github.com/argusdusty/gofft"
)

// Gofft is a complex128 Transform backed by github.com/argusdusty/gofft.
type Gofft struct {
	n int
}

// NewGofft returns a gofft transform. Only powers of two are supported.
func NewGofft(size int) (*Gofft, error) {
	if !isPowerOfTwo(size) {
		return nil, fmt.Errorf("%w: gofft needs a power of two, got %d", ErrUnsupportedSize, size)
	}

	return &Gofft{n: size}, nil
}

// GofftFactory adapts NewGofft to a Factory.
func GofftFactory() Factory[complex128] {
	return func(size int) (Transform[complex128], error) {
		t, err := NewGofft(size)
		if err != nil {
			return nil, err
		}

		return t, nil
	}
}

func (g *Gofft) Len() int { return g.n }

func (g *Gofft) Ordering() Ordering { return Natural }

// Forward transforms buf in place.
func (g *Gofft) Forward(buf []complex128) error {
	if err := checkLen(g.n, len(buf)); err != nil {
		return err
	}

	return gofft.FFT(buf)
}
