package transform

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Algo is a Transform backed by an algo-fft plan.
type Algo[C Complex] struct {
	plan *algofft.Plan[C]
	n    int
}

// NewAlgo prepares an algo-fft plan of the given size.
func NewAlgo[C Complex](size int) (*Algo[C], error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedSize, size)
	}

	plan, err := algofft.NewPlanT[C](size)
	if err != nil {
		return nil, fmt.Errorf("%w: %d: %w", ErrUnsupportedSize, size, err)
	}

	return &Algo[C]{plan: plan, n: size}, nil
}

// AlgoFactory adapts NewAlgo to a Factory.
func AlgoFactory[C Complex]() Factory[C] {
	return func(size int) (Transform[C], error) {
		t, err := NewAlgo[C](size)
		if err != nil {
			return nil, err
		}

		return t, nil
	}
}

func (a *Algo[C]) Len() int { return a.n }

func (a *Algo[C]) Ordering() Ordering { return Natural }

// Forward transforms buf in place.
func (a *Algo[C]) Forward(buf []C) error {
	if err := checkLen(a.n, len(buf)); err != nil {
		return err
	}

	return a.plan.Forward(buf, buf)
}
