package time

import (
	"math"

	"github.com/cwbudde/algo-labdsp/dsp/core"
)

// Stats holds time-domain signal statistics.
type Stats struct {
	Length        int
	DC            float64 // mean
	RMS           float64
	Peak          float64 // max |x|
	PeakPos       int
	CrestFactor   float64 // peak / RMS
	Energy        float64 // sum of squares
	ZeroCrossings int
}

// Calculate computes all statistics in one pass.
func Calculate[F core.Float](signal []F) Stats {
	s := Stats{Length: len(signal)}
	if len(signal) == 0 {
		return s
	}

	sum := 0.0
	for i, v := range signal {
		x := float64(v)
		sum += x
		s.Energy += x * x

		if a := math.Abs(x); a > s.Peak {
			s.Peak = a
			s.PeakPos = i
		}

		if i > 0 && float64(signal[i-1])*x < 0 {
			s.ZeroCrossings++
		}
	}

	n := float64(len(signal))
	s.DC = sum / n
	s.RMS = math.Sqrt(s.Energy / n)

	if s.RMS > 0 {
		s.CrestFactor = s.Peak / s.RMS
	}

	return s
}

// RMS returns the root-mean-square of the signal.
func RMS[F core.Float](signal []F) float64 {
	return Calculate(signal).RMS
}

// Peak returns the peak absolute amplitude of the signal.
func Peak[F core.Float](signal []F) float64 {
	return Calculate(signal).Peak
}

// ZeroCrossings counts sign changes between consecutive samples.
func ZeroCrossings[F core.Float](signal []F) int {
	return Calculate(signal).ZeroCrossings
}

// GainDB returns 20*log10(RMS(out)/RMS(in)). Silence in gives +Inf for a
// non-silent out, and NaN when both are silent.
func GainDB[F core.Float](in, out []F) float64 {
	return 20 * math.Log10(RMS(out)/RMS(in))
}
