package transform

import (
	"errors"
	"fmt"
	"math/bits"
	"slices"

	algofft "github.com/MeKo-Christian/algo-fft"
)

var (
	// ErrUnsupportedSize is returned when a backend cannot transform the
	// requested number of points.
	ErrUnsupportedSize = errors.New("transform: unsupported size")
	// ErrLengthMismatch is returned when Forward receives a buffer whose
	// length differs from Len().
	ErrLengthMismatch = errors.New("transform: buffer length mismatch")
)

// Complex is the element constraint shared with algo-fft.
type Complex = algofft.Complex

// Ordering describes the bin order of a forward transform's output.
type Ordering int

const (
	// Natural means bin k is stored at index k.
	Natural Ordering = iota
	// BitReversed means bin k is stored at the bit-reversed index of k.
	BitReversed
)

func (o Ordering) String() string {
	switch o {
	case Natural:
		return "natural"
	case BitReversed:
		return "bit-reversed"
	default:
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
}

// Transform is an in-place forward DFT over a fixed number of points.
type Transform[C Complex] interface {
	Len() int
	Forward(buf []C) error
	Ordering() Ordering
}

// Factory builds a Transform for the given size.
type Factory[C Complex] func(size int) (Transform[C], error)

// Restrict wraps f so that only the listed sizes are accepted.
func Restrict[C Complex](f Factory[C], sizes ...int) Factory[C] {
	allowed := slices.Clone(sizes)

	return func(size int) (Transform[C], error) {
		if !slices.Contains(allowed, size) {
			return nil, fmt.Errorf("%w: %d not in %v", ErrUnsupportedSize, size, allowed)
		}

		return f(size)
	}
}

func isPowerOfTwo(n int) bool {
	return n > 0 && bits.OnesCount(uint(n)) == 1
}

func checkLen(want, got int) error {
	if want != got {
		return fmt.Errorf("%w: got %d, want %d", ErrLengthMismatch, got, want)
	}

	return nil
}

// ToNatural reorders buf from o into natural order in place.
func ToNatural[C Complex](buf []C, o Ordering) error {
	if o == Natural {
		return nil
	}

	if !isPowerOfTwo(len(buf)) {
		return fmt.Errorf("%w: bit reversal needs a power of two, got %d", ErrUnsupportedSize, len(buf))
	}

	bitReverse(buf)

	return nil
}

func bitReverse[C Complex](buf []C) {
	n := len(buf)
	if n < 2 {
		return
	}

	shift := bits.UintSize - bits.TrailingZeros(uint(n))
	for i := range buf {
		j := int(bits.Reverse(uint(i)) >> shift)
		if j > i {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}
}
