package transform

// narrowed runs a complex128 transform on complex64 data.
type narrowed struct {
	t       Transform[complex128]
	scratch []complex128
}

// Narrow adapts a complex128 transform for single-precision callers. The
// scratch buffer is allocated once here.
func Narrow(t Transform[complex128]) Transform[complex64] {
	return &narrowed{t: t, scratch: make([]complex128, t.Len())}
}

// NarrowFactory adapts a complex128 factory via Narrow.
func NarrowFactory(f Factory[complex128]) Factory[complex64] {
	return func(size int) (Transform[complex64], error) {
		t, err := f(size)
		if err != nil {
			return nil, err
		}

		return Narrow(t), nil
	}
}

func (n *narrowed) Len() int { return n.t.Len() }

func (n *narrowed) Ordering() Ordering { return n.t.Ordering() }

func (n *narrowed) Forward(buf []complex64) error {
	if err := checkLen(len(n.scratch), len(buf)); err != nil {
		return err
	}

	for i, v := range buf {
		n.scratch[i] = complex128(v)
	}

	if err := n.t.Forward(n.scratch); err != nil {
		return err
	}

	for i, v := range n.scratch {
		buf[i] = complex64(v)
	}

	return nil
}

// bitReversedOutput leaves its inner transform's natural output in
// bit-reversed order, as FFT kernels that skip the final reordering do.
type bitReversedOutput[C Complex] struct {
	t Transform[C]
}

// BitReversedOutput wraps a natural-order power-of-two transform so that its
// output is delivered in bit-reversed order.
func BitReversedOutput[C Complex](t Transform[C]) (Transform[C], error) {
	if t.Ordering() != Natural || !isPowerOfTwo(t.Len()) {
		return nil, ErrUnsupportedSize
	}

	return &bitReversedOutput[C]{t: t}, nil
}

func (b *bitReversedOutput[C]) Len() int { return b.t.Len() }

func (b *bitReversedOutput[C]) Ordering() Ordering { return BitReversed }

func (b *bitReversedOutput[C]) Forward(buf []C) error {
	if err := b.t.Forward(buf); err != nil {
		return err
	}

	bitReverse(buf)

	return nil
}
