package frequency

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-labdsp/dsp/stft"
	"github.com/cwbudde/algo-labdsp/dsp/window"
	"github.com/cwbudde/algo-labdsp/internal/testutil"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestCalculateSymmetricFrame(t *testing.T) {
	frame := []float32{0, 1, 2, 1, 0, 1, 2, 1}
	s := Calculate(frame, 8000)

	if s.BinCount != 5 || s.MaxBin != 2 || s.Max != 2 {
		t.Fatalf("bins=%d maxBin=%d max=%v", s.BinCount, s.MaxBin, s.Max)
	}

	if !almostEqual(s.PeakHz, 2000, 1e-9) || !almostEqual(s.Centroid, 2000, 1e-9) {
		t.Fatalf("peak=%v centroid=%v, want 2000", s.PeakHz, s.Centroid)
	}

	if !almostEqual(s.Rolloff, 3000, 1e-9) {
		t.Fatalf("rolloff=%v, want 3000", s.Rolloff)
	}

	if s.Sum != 4 || s.Energy != 6 || s.DC != 0 {
		t.Fatalf("sum=%v energy=%v dc=%v", s.Sum, s.Energy, s.DC)
	}

	// spread: sqrt((1e6*1 + 0*2 + 1e6*1)/4)
	if !almostEqual(s.Spread, math.Sqrt(0.5e6), 1e-6) {
		t.Fatalf("spread=%v", s.Spread)
	}

	if s.Flatness != 0 {
		t.Fatalf("flatness with a zero bin = %v, want 0", s.Flatness)
	}
}

func TestCalculateEmptyAndSilent(t *testing.T) {
	if got := Calculate([]float64{}, 100); got != (Stats{}) {
		t.Fatalf("empty = %+v", got)
	}

	s := Calculate(make([]float64, 16), 100)
	if s.Centroid != 0 || s.Rolloff != 0 || s.Spread != 0 || s.Flatness != 0 || s.MaxBin != 0 {
		t.Fatalf("silent = %+v", s)
	}

	one := Calculate([]float64{3}, 100)
	if one.BinCount != 1 || one.DC != 3 || one.Max != 3 {
		t.Fatalf("single bin = %+v", one)
	}
}

func TestFlatness(t *testing.T) {
	if f := Flatness([]float64{5, 1, 1, 1, 1, 1, 1, 1}); !almostEqual(f, 1, 1e-12) {
		t.Fatalf("flat spectrum flatness = %v, want 1", f)
	}

	peaky := Flatness([]float64{0, 0.01, 10, 0.01, 0.01, 0.01, 10, 0.01})
	if peaky <= 0 || peaky >= 0.5 {
		t.Fatalf("peaky flatness = %v", peaky)
	}
}

func TestPeakBinIgnoresMirror(t *testing.T) {
	frame := []float64{0, 1, 2, 1, 0, 1, 9, 1}
	if got := PeakBin(frame); got != 2 {
		t.Fatalf("PeakBin = %d, want 2", got)
	}
}

func TestCentroid(t *testing.T) {
	frame := []float64{0, 0, 4, 0, 0, 0, 4, 0}
	if got := Centroid(frame, 80); !almostEqual(got, 20, 1e-12) {
		t.Fatalf("Centroid = %v, want 20", got)
	}
}

func TestAnalyzerPeakFrequency(t *testing.T) {
	a, err := stft.New32(stft.WithWindow(window.TypeHann))
	if err != nil {
		t.Fatal(err)
	}

	s, err := a.Analyze(testutil.BinSine[float32](6, 64))
	if err != nil {
		t.Fatal(err)
	}

	// 6 cycles per 64 samples is 1.5 cycles per 16-sample window; the
	// peak falls on bin 1 or 2 at 100 Hz sampling (6.25 or 12.5 Hz).
	for i, frame := range s.Frames {
		st := Calculate(frame, 100)
		if st.MaxBin != 1 && st.MaxBin != 2 {
			t.Fatalf("frame %d: MaxBin = %d", i, st.MaxBin)
		}

		if !almostEqual(st.PeakHz, 6.25*float64(st.MaxBin), 1e-9) {
			t.Fatalf("frame %d: PeakHz = %v", i, st.PeakHz)
		}
	}
}
