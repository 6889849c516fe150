package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-labdsp/dsp/core"
)

// BinSine returns sin(2*pi*k*n/length), a sinusoid sitting exactly on bin k
// of a length-point transform.
func BinSine[F core.Float](k, length int) []F {
	out := make([]F, length)
	for n := range out {
		out[n] = F(math.Sin(2 * math.Pi * float64(k) * float64(n) / float64(length)))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise[F core.Float](seed int64, amplitude float64, length int) []F {
	out := make([]F, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = F((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse[F core.Float](length, pos int) []F {
	out := make([]F, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC[F core.Float](value F, length int) []F {
	out := make([]F, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones[F core.Float](n int) []F {
	return DC[F](1, n)
}
