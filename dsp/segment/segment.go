package segment

import (
	"errors"
	"fmt"
	"iter"
)

// ErrInvalidDescriptor is returned for a non-positive length or hop.
var ErrInvalidDescriptor = errors.New("segment: invalid window descriptor")

// Descriptor holds the window length and hop in samples.
// Hop < Length overlaps consecutive windows; Hop == Length tiles them.
type Descriptor struct {
	Length int
	Hop    int
}

// Validate checks Length > 0 and Hop > 0.
func (d Descriptor) Validate() error {
	if d.Length <= 0 {
		return fmt.Errorf("%w: length must be > 0: %d", ErrInvalidDescriptor, d.Length)
	}
	if d.Hop <= 0 {
		return fmt.Errorf("%w: hop must be > 0: %d", ErrInvalidDescriptor, d.Hop)
	}
	return nil
}

// Count returns the number of windows produced over n samples:
// floor((n-Length)/Hop)+1 when n >= Length, otherwise 0.
func (d Descriptor) Count(n int) int {
	if d.Length <= 0 || d.Hop <= 0 || n < d.Length {
		return 0
	}
	return (n-d.Length)/d.Hop + 1
}

// Segmenter walks a buffer window by window.
type Segmenter[T any] struct {
	buf    []T
	d      Descriptor
	cursor int
}

// New returns a Segmenter over buf. A length larger than len(buf) is valid
// and yields zero windows.
func New[T any](buf []T, length, hop int) (*Segmenter[T], error) {
	d := Descriptor{Length: length, Hop: hop}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &Segmenter[T]{buf: buf, d: d}, nil
}

// Descriptor returns the window configuration.
func (s *Segmenter[T]) Descriptor() Descriptor {
	return s.d
}

// Next returns the next window and true, or nil and false once the
// remaining suffix is shorter than the window length.
//
// The returned slice aliases the input buffer and has its capacity clipped
// to the window length.
func (s *Segmenter[T]) Next() ([]T, bool) {
	// cursor can run past len(buf) when hop > length
	if s.cursor > len(s.buf) || len(s.buf)-s.cursor < s.d.Length {
		return nil, false
	}
	start := s.cursor
	end := start + s.d.Length
	s.cursor += s.d.Hop
	return s.buf[start:end:end], true
}

// Count returns the total number of windows over the buffer.
func (s *Segmenter[T]) Count() int {
	return s.d.Count(len(s.buf))
}

// Remaining returns the number of windows not yet returned by Next.
func (s *Segmenter[T]) Remaining() int {
	if s.cursor > len(s.buf) {
		return 0
	}
	return s.d.Count(len(s.buf) - s.cursor)
}

// Reset rewinds to the first window.
func (s *Segmenter[T]) Reset() {
	s.cursor = 0
}

// All returns an iterator over every window from the start of the buffer,
// independent of the Next cursor. Breaking out of the loop early is safe.
func (s *Segmenter[T]) All() iter.Seq2[int, []T] {
	return Windows(s.buf, s.d)
}

// Windows returns an iterator over the windows of buf described by d.
// An invalid descriptor yields nothing.
func Windows[T any](buf []T, d Descriptor) iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		if d.Validate() != nil {
			return
		}
		for i, start := 0, 0; len(buf)-start >= d.Length; i, start = i+1, start+d.Hop {
			end := start + d.Length
			if !yield(i, buf[start:end:end]) {
				return
			}
		}
	}
}
