package iir

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-labdsp/dsp/core"
	"github.com/cwbudde/algo-labdsp/dsp/delay"
	"github.com/cwbudde/algo-labdsp/dsp/filter/fir"
)

var (
	// ErrInvalidFilterSpecification is returned for empty coefficient sets
	// or a feedback set whose leading coefficient is not 1.
	ErrInvalidFilterSpecification = errors.New("iir: invalid filter specification")
	// ErrLengthMismatch is returned when block input and output differ in length.
	ErrLengthMismatch = errors.New("iir: buffer length mismatch")
)

// Coefficients is a normalized transfer function B(z)/A(z) with A[0] == 1.
type Coefficients[F core.Float] struct {
	B []F // feed-forward
	A []F // feedback, A[0] == 1
}

// Validate checks that both sets are non-empty and A[0] == 1.
func (c Coefficients[F]) Validate() error {
	if len(c.B) == 0 {
		return fmt.Errorf("%w: empty feed-forward coefficients", ErrInvalidFilterSpecification)
	}
	if len(c.A) == 0 {
		return fmt.Errorf("%w: empty feedback coefficients", ErrInvalidFilterSpecification)
	}
	if c.A[0] != 1 {
		return fmt.Errorf("%w: A[0] must be 1, got %v", ErrInvalidFilterSpecification, c.A[0])
	}
	return nil
}

// Filter is a direct-form IIR filter with zero initial state.
type Filter[F core.Float] struct {
	ff *fir.Filter[F]
	a  []F

	// y[n-1] is the newest entry
	hist *delay.Line[F]
}

// Filter32 is the single-precision IIR engine.
type Filter32 = Filter[float32]

// New creates a filter from feed-forward coefficients b and normalized
// feedback coefficients a. Both slices are copied. It fails with
// ErrInvalidFilterSpecification if either is empty or a[0] != 1.
func New[F core.Float](b, a []F) (*Filter[F], error) {
	c := Coefficients[F]{B: b, A: a}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	ac := make([]F, len(a))
	copy(ac, a)
	return &Filter[F]{
		ff:   fir.New(b),
		a:    ac,
		hist: delay.New[F](len(a) - 1),
	}, nil
}

// NewNormalized divides b and a by a[0] before constructing the filter.
func NewNormalized[F core.Float](b, a []F) (*Filter[F], error) {
	if len(b) == 0 || len(a) == 0 {
		return New(b, a)
	}
	a0 := a[0]
	if a0 == 0 {
		return nil, fmt.Errorf("%w: A[0] is zero", ErrInvalidFilterSpecification)
	}
	bn := make([]F, len(b))
	for i, v := range b {
		bn[i] = v / a0
	}
	an := make([]F, len(a))
	for i, v := range a {
		an[i] = v / a0
	}
	an[0] = 1
	return New(bn, an)
}

// ProcessSample computes the next output for input x.
func (f *Filter[F]) ProcessSample(x F) F {
	acc := f.ff.ProcessSample(x)

	y := acc - f.hist.Dot(f.a[1:])
	f.hist.Write(y)
	return y
}

// ProcessBlock filters buf in place.
func (f *Filter[F]) ProcessBlock(buf []F) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Filter[F]) ProcessBlockTo(dst, src []F) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: dst %d, src %d", ErrLengthMismatch, len(dst), len(src))
	}
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
	return nil
}

// Reset returns the filter to zero history.
func (f *Filter[F]) Reset() {
	f.ff.Reset()
	f.hist.Reset()
}

// Order returns the number of feed-forward and feedback coefficients
// (P, Q).
func (f *Filter[F]) Order() (p, q int) {
	return f.ff.Order() + 1, len(f.a)
}

// Coefficients returns a copy of the filter's transfer function.
func (f *Filter[F]) Coefficients() Coefficients[F] {
	a := make([]F, len(f.a))
	copy(a, f.a)
	return Coefficients[F]{B: f.ff.Coefficients(), A: a}
}

// Response computes the complex frequency response B(e^{jw})/A(e^{jw}) at
// the given frequency (Hz) and sample rate (Hz).
func (f *Filter[F]) Response(freqHz, sampleRate float64) complex128 {
	return f.Coefficients().Response(freqHz, sampleRate)
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *Filter[F]) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return core.LinearToDB(cmplx.Abs(f.Response(freqHz, sampleRate)))
}

// Response computes B(e^{jw})/A(e^{jw}) for the coefficient set.
func (c Coefficients[F]) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	return fir.Polynomial(c.B, w) / fir.Polynomial(c.A, w)
}
