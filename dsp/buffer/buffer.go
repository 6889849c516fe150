package buffer

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-labdsp/dsp/core"
)

var (
	ErrFull   = errors.New("buffer: capacity exhausted")
	ErrSealed = errors.New("buffer: sealed")
)

// Fixed is a fill-once sample buffer with a capacity fixed at construction.
type Fixed[F core.Float] struct {
	samples []F
	sealed  bool
}

// New returns an empty buffer that can hold capacity samples.
// A negative capacity is treated as zero.
func New[F core.Float](capacity int) *Fixed[F] {
	if capacity < 0 {
		capacity = 0
	}
	return &Fixed[F]{samples: make([]F, 0, capacity)}
}

// FromSlice wraps an already acquired slice without copying and seals it.
// Capacity equals len(s).
func FromSlice[F core.Float](s []F) *Fixed[F] {
	return &Fixed[F]{samples: s[:len(s):len(s)], sealed: true}
}

// Append adds one sample. It returns ErrFull once Len() == Cap().
func (b *Fixed[F]) Append(x F) error {
	if b.sealed {
		return ErrSealed
	}
	if len(b.samples) == cap(b.samples) {
		return ErrFull
	}
	b.samples = append(b.samples, x)
	return nil
}

// Write appends as many samples from src as fit and returns the count.
// A short write returns ErrFull.
func (b *Fixed[F]) Write(src []F) (int, error) {
	if b.sealed {
		return 0, ErrSealed
	}
	n := min(len(src), cap(b.samples)-len(b.samples))
	b.samples = append(b.samples, src[:n]...)
	if n < len(src) {
		return n, fmt.Errorf("%w: wrote %d of %d samples", ErrFull, n, len(src))
	}
	return n, nil
}

// Fill populates the remaining capacity by calling next for each index
// and seals the buffer. next receives the absolute sample index.
func (b *Fixed[F]) Fill(next func(n int) F) error {
	if b.sealed {
		return ErrSealed
	}
	for n := len(b.samples); n < cap(b.samples); n++ {
		b.samples = append(b.samples, next(n))
	}
	b.sealed = true
	return nil
}

// Seal freezes the buffer. Further writes fail with ErrSealed.
func (b *Fixed[F]) Seal() {
	b.sealed = true
}

// Sealed reports whether the buffer is frozen.
func (b *Fixed[F]) Sealed() bool {
	return b.sealed
}

// Samples returns the acquired samples. The slice is capacity-clipped so
// appending to it never writes into the buffer.
func (b *Fixed[F]) Samples() []F {
	return b.samples[:len(b.samples):len(b.samples)]
}

// Len returns the number of acquired samples.
func (b *Fixed[F]) Len() int {
	return len(b.samples)
}

// Cap returns the fixed capacity.
func (b *Fixed[F]) Cap() int {
	return cap(b.samples)
}

// Full reports whether the capacity is exhausted.
func (b *Fixed[F]) Full() bool {
	return len(b.samples) == cap(b.samples)
}

// Reset discards the acquired samples and unseals the buffer, keeping the
// backing array.
func (b *Fixed[F]) Reset() {
	core.Zero(b.samples)
	b.samples = b.samples[:0]
	b.sealed = false
}
