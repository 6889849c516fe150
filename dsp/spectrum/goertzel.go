package spectrum

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-labdsp/dsp/core"
)

// Goertzel evaluates a single DFT term with a second-order recurrence.
//
// Power and Magnitude describe all samples processed since the last Reset.
// For a block of n samples and a target of bin k, the result equals |X[k]|
// of an n-point DFT of the same block.
type Goertzel struct {
	coeff  float64
	s0, s1 float64
}

// NewGoertzel creates an analyzer for frequency in Hz.
// frequency must be between 0 and sampleRate/2.
func NewGoertzel(frequency, sampleRate float64) (*Goertzel, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("goertzel: sample rate must be > 0: %v", sampleRate)
	}

	if frequency < 0 || frequency > sampleRate/2 || math.IsNaN(frequency) {
		return nil, fmt.Errorf("goertzel: frequency must be between 0 and sampleRate/2: %v", frequency)
	}

	return &Goertzel{coeff: 2 * math.Cos(2*math.Pi*frequency/sampleRate)}, nil
}

// NewGoertzelBin creates an analyzer for bin k of an n-point DFT.
func NewGoertzelBin(k, n int) (*Goertzel, error) {
	if n <= 0 || k < 0 || k >= n {
		return nil, fmt.Errorf("goertzel: bin %d outside [0, %d)", k, n)
	}

	return &Goertzel{coeff: 2 * math.Cos(2*math.Pi*float64(k)/float64(n))}, nil
}

// Reset clears the internal state.
func (g *Goertzel) Reset() {
	g.s0, g.s1 = 0, 0
}

// ProcessSample updates the internal state with one sample.
func (g *Goertzel) ProcessSample(input float64) {
	g.s0, g.s1 = input+g.coeff*g.s0-g.s1, g.s0
}

// Power returns the squared magnitude of the tracked component.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// Magnitude returns the magnitude of the tracked component.
func (g *Goertzel) Magnitude() float64 {
	p := g.Power()
	if p <= 0 {
		return 0
	}

	return math.Sqrt(p)
}

// BinMagnitude returns |X[k]| of the len(x)-point DFT of x.
func BinMagnitude[F core.Float](x []F, k int) (float64, error) {
	g, err := NewGoertzelBin(k, len(x))
	if err != nil {
		return 0, err
	}

	for _, v := range x {
		g.ProcessSample(float64(v))
	}

	return g.Magnitude(), nil
}
