package fir

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-labdsp/dsp/core"
	"github.com/cwbudde/algo-labdsp/dsp/delay"
)

// Filter implements a direct-form FIR filter using a circular-buffer delay line.
type Filter[F core.Float] struct {
	coeffs []F
	line   *delay.Line[F]
}

// Filter32 is the single-precision FIR runtime.
type Filter32 = Filter[float32]

// New creates a FIR filter from the given coefficient slice.
// The coefficients are copied. The filter order is len(coeffs)-1.
// An empty coefficient slice yields a filter that always outputs zero.
func New[F core.Float](coeffs []F) *Filter[F] {
	c := make([]F, len(coeffs))
	copy(c, coeffs)
	return &Filter[F]{
		coeffs: c,
		line:   delay.New[F](len(coeffs)),
	}
}

// ProcessSample filters one input sample using direct convolution
// with a circular delay line.
//
//	y[n] = sum_{k=0}^{N-1} h[k] * x[n-k]
func (f *Filter[F]) ProcessSample(x F) F {
	f.line.Write(x)
	return f.line.Dot(f.coeffs)
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter[F]) ProcessBlock(buf []F) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. dst must be at least as long as src.
func (f *Filter[F]) ProcessBlockTo(dst, src []F) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset clears the delay line to zero.
func (f *Filter[F]) Reset() {
	f.line.Reset()
}

// Order returns the filter order (len(coeffs) - 1).
func (f *Filter[F]) Order() int {
	return len(f.coeffs) - 1
}

// Coefficients returns a copy of the filter coefficients.
func (f *Filter[F]) Coefficients() []F {
	c := make([]F, len(f.coeffs))
	copy(c, f.coeffs)
	return c
}

// Response computes the complex frequency response H(e^{jw}) at the given
// frequency (Hz) and sample rate (Hz).
func (f *Filter[F]) Response(freqHz, sampleRate float64) complex128 {
	return Polynomial(f.coeffs, 2*math.Pi*freqHz/sampleRate)
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *Filter[F]) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return core.LinearToDB(cmplx.Abs(f.Response(freqHz, sampleRate)))
}

// Polynomial evaluates sum_k c[k] * e^{-j*w*k}, the z-domain polynomial
// with coefficients c on the unit circle at normalized angular frequency w.
func Polynomial[F core.Float](c []F, w float64) complex128 {
	var h complex128
	for k, v := range c {
		h += complex(float64(v), 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	return h
}
