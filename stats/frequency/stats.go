package frequency

import (
	"math"

	"github.com/cwbudde/algo-labdsp/dsp/core"
)

// Stats holds frequency-domain statistics of one magnitude frame.
type Stats struct {
	BinCount int     // bins considered (L/2 + 1)
	DC       float64 // bin 0 magnitude
	Max      float64
	MaxBin   int
	PeakHz   float64
	Sum      float64 // sum of magnitudes
	Energy   float64 // sum of squared magnitudes
	Centroid float64 // Hz
	Spread   float64 // Hz
	Flatness float64 // Wiener entropy, 0..1, DC excluded
	Rolloff  float64 // Hz below which 85% of the energy lies
}

// RolloffFraction is the energy fraction used for Stats.Rolloff.
const RolloffFraction = 0.85

func half[F core.Float](frame []F) []F {
	if len(frame) < 2 {
		return frame
	}

	return frame[:len(frame)/2+1]
}

// Calculate summarizes a full-length magnitude frame (linear, not dB).
func Calculate[F core.Float](frame []F, sampleRate float64) Stats {
	bins := half(frame)
	if len(bins) == 0 {
		return Stats{}
	}

	n := len(frame)
	s := Stats{
		BinCount: len(bins),
		DC:       float64(bins[0]),
		Max:      float64(bins[0]),
	}

	for k, v := range bins {
		m := float64(v)
		s.Sum += m
		s.Energy += m * m

		if m > s.Max {
			s.Max = m
			s.MaxBin = k
		}
	}

	s.PeakHz = core.BinFrequency(s.MaxBin, n, sampleRate)
	s.Centroid = centroid(bins, n, sampleRate, s.Sum)
	s.Spread = spread(bins, n, sampleRate, s.Centroid, s.Sum)
	s.Flatness = flatness(bins)
	s.Rolloff = rolloff(bins, n, sampleRate, RolloffFraction, s.Energy)

	return s
}

// PeakBin returns the index of the largest magnitude in bins 0..L/2.
func PeakBin[F core.Float](frame []F) int {
	best := 0
	for k, v := range half(frame) {
		if v > frame[best] {
			best = k
		}
	}

	return best
}

// Centroid returns the spectral centroid in Hz.
//
//	centroid = sum(f_k * |X_k|) / sum(|X_k|)
func Centroid[F core.Float](frame []F, sampleRate float64) float64 {
	bins := half(frame)

	sum := 0.0
	for _, v := range bins {
		sum += float64(v)
	}

	return centroid(bins, len(frame), sampleRate, sum)
}

func centroid[F core.Float](bins []F, n int, sampleRate, sum float64) float64 {
	if sum == 0 {
		return 0
	}

	weighted := 0.0
	for k, v := range bins {
		weighted += core.BinFrequency(k, n, sampleRate) * float64(v)
	}

	return weighted / sum
}

func spread[F core.Float](bins []F, n int, sampleRate, cent, sum float64) float64 {
	if sum == 0 {
		return 0
	}

	acc := 0.0
	for k, v := range bins {
		d := core.BinFrequency(k, n, sampleRate) - cent
		acc += d * d * float64(v)
	}

	return math.Sqrt(acc / sum)
}

// Flatness returns exp(mean(log|X_k|)) / mean(|X_k|) over bins 1..L/2.
// Any zero bin gives 0.
func Flatness[F core.Float](frame []F) float64 {
	return flatness(half(frame))
}

func flatness[F core.Float](bins []F) float64 {
	if len(bins) < 2 {
		return 0
	}

	sumLin, sumLog := 0.0, 0.0
	for _, v := range bins[1:] {
		m := float64(v)
		if m <= 0 {
			return 0
		}

		sumLin += m
		sumLog += math.Log(m)
	}

	count := float64(len(bins) - 1)

	return math.Exp(sumLog/count) / (sumLin / count)
}

func rolloff[F core.Float](bins []F, n int, sampleRate, fraction, energy float64) float64 {
	if energy == 0 {
		return 0
	}

	threshold := fraction * energy
	cum := 0.0

	for k, v := range bins {
		cum += float64(v) * float64(v)
		if cum >= threshold {
			return core.BinFrequency(k, n, sampleRate)
		}
	}

	return core.BinFrequency(len(bins)-1, n, sampleRate)
}
