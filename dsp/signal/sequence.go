package signal

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-labdsp/dsp/core"
)

// ErrLengthMismatch is returned by Sum for operands of different lengths.
var ErrLengthMismatch = errors.New("signal: length mismatch")

// UnitPulse writes delta[n-delay] into dst.
func UnitPulse[F core.Float](dst []F, delay int) {
	core.Zero(dst)

	if delay >= 0 && delay < len(dst) {
		dst[delay] = 1
	}
}

// UnitStep writes u[n-delay] into dst.
func UnitStep[F core.Float](dst []F, delay int) {
	for n := range dst {
		if n >= delay {
			dst[n] = 1
		} else {
			dst[n] = 0
		}
	}
}

// UnitRamp writes (n-delay)*u[n-delay] into dst.
func UnitRamp[F core.Float](dst []F, delay int) {
	for n := range dst {
		if n >= delay {
			dst[n] = F(n - delay)
		} else {
			dst[n] = 0
		}
	}
}

// Exponential writes a^n into dst.
func Exponential[F core.Float](dst []F, a float64) {
	v := 1.0
	for n := range dst {
		dst[n] = F(v)
		v *= a
	}
}

// Sinusoid writes amplitude*sin(omega*n + phase) into dst, with omega in
// radians per sample.
func Sinusoid[F core.Float](dst []F, amplitude, omega, phase float64) {
	for n := range dst {
		dst[n] = F(amplitude * math.Sin(omega*float64(n)+phase))
	}
}

// Sum writes a[n] + b[n] into dst. dst may alias a or b.
func Sum[F core.Float](dst, a, b []F) error {
	if len(a) != len(dst) || len(b) != len(dst) {
		return fmt.Errorf("%w: dst %d, a %d, b %d", ErrLengthMismatch, len(dst), len(a), len(b))
	}

	for n := range dst {
		dst[n] = a[n] + b[n]
	}

	return nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize[F core.Float](data []F, targetPeak float64) ([]F, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}

	if len(data) == 0 {
		return nil, errors.New("normalize input must not be empty")
	}

	peak := 0.0
	for _, v := range data {
		peak = max(peak, math.Abs(float64(v)))
	}

	out := make([]F, len(data))
	if peak == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / peak
	for i, v := range data {
		out[i] = F(float64(v) * scale)
	}

	return out, nil
}
