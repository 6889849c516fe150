package delay

import "github.com/cwbudde/algo-labdsp/dsp/core"

// Line is a circular history of the last Len samples written.
type Line[F core.Float] struct {
	buffer   []F
	writePos int
}

// New returns a zeroed line holding size samples. A size of zero or less
// yields a line that stores nothing and reads zero.
func New[F core.Float](size int) *Line[F] {
	return &Line[F]{buffer: make([]F, max(size, 0))}
}

// Len returns the number of samples held.
func (d *Line[F]) Len() int {
	return len(d.buffer)
}

// Write pushes one sample, evicting the oldest.
func (d *Line[F]) Write(sample F) {
	if len(d.buffer) == 0 {
		return
	}

	d.buffer[d.writePos] = sample
	d.writePos++
	if d.writePos >= len(d.buffer) {
		d.writePos = 0
	}
}

// Dot returns sum_k c[k] * x[n-k] over min(len(c), Len()) terms, where
// x[n] is the newest sample written.
func (d *Line[F]) Dot(c []F) F {
	size := len(d.buffer)
	n := min(len(c), size)
	if n == 0 {
		return 0
	}

	var acc F
	p := d.writePos - 1
	if p < 0 {
		p = size - 1
	}

	for k := range n {
		acc += c[k] * d.buffer[p]
		p--
		if p < 0 {
			p = size - 1
		}
	}

	return acc
}

// Reset clears the history.
func (d *Line[F]) Reset() {
	core.Zero(d.buffer)
	d.writePos = 0
}
