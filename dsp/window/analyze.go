package window

import (
	"math"

	"github.com/cwbudde/algo-labdsp/dsp/core"
)

// Analysis holds numerically computed spectral properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// Bandwidth3dB is the two-sided half-power main lobe width in bins.
	Bandwidth3dB float64
	// ScallopLossdB is the response half a bin off centre, relative to DC.
	ScallopLossdB float64
}

// Analyze computes spectral properties of coeffs by direct DTFT evaluation.
// A window whose DC response is zero yields the zero Analysis.
func Analyze[F core.Float](coeffs []F) Analysis {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}
	}

	dc := dtftPower(coeffs, 0)
	if dc == 0 {
		return Analysis{}
	}

	sum, sumSq := 0.0, 0.0
	for _, c := range coeffs {
		v := float64(c)
		sum += v
		sumSq += v * v
	}

	nf := float64(n)

	return Analysis{
		CoherentGain:  sum / nf,
		ENBW:          nf * sumSq / (sum * sum),
		Bandwidth3dB:  2 * halfPowerFrequency(coeffs, dc) * nf,
		ScallopLossdB: 10 * math.Log10(dtftPower(coeffs, 0.5/nf)/dc),
	}
}

// halfPowerFrequency bisects [0, 0.5] for the normalised frequency at which
// the response falls to half of dc.
func halfPowerFrequency[F core.Float](coeffs []F, dc float64) float64 {
	lo, hi := 0.0, 0.5
	for range 60 {
		mid := (lo + hi) / 2
		if dtftPower(coeffs, mid)/dc > 0.5 {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo
}

func dtftPower[F core.Float](coeffs []F, freq float64) float64 {
	w := 2 * math.Pi * freq

	re, im := 0.0, 0.0
	for k, c := range coeffs {
		s, co := math.Sincos(w * float64(k))
		re += float64(c) * co
		im -= float64(c) * s
	}

	return re*re + im*im
}
