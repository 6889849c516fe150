package spectrum

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-labdsp/internal/testutil"
)

func TestGoertzelMatchesDirectDFT(t *testing.T) {
	sampleRate := 48000.0
	freq0 := 1000.0
	length := 1024

	sig := make([]float64, length)
	for n := range sig {
		sig[n] = math.Sin(2 * math.Pi * freq0 * float64(n) / sampleRate)
	}

	g, err := NewGoertzel(freq0, sampleRate)
	if err != nil {
		t.Fatalf("NewGoertzel: %v", err)
	}

	for _, x := range sig {
		g.ProcessSample(x)
	}

	var dft complex128
	for n, x := range sig {
		angle := -2 * math.Pi * freq0 / sampleRate * float64(n)
		dft += complex(x, 0) * cmplx.Exp(complex(0, angle))
	}

	wantP := real(dft)*real(dft) + imag(dft)*imag(dft)
	if math.Abs(g.Power()-wantP) > 1e-7*wantP {
		t.Errorf("Power mismatch: got %v, want %v", g.Power(), wantP)
	}

	if wantMag := cmplx.Abs(dft); math.Abs(g.Magnitude()-wantMag) > 1e-7*wantMag {
		t.Errorf("Magnitude mismatch: got %v, want %v", g.Magnitude(), wantMag)
	}
}

func TestGoertzelReset(t *testing.T) {
	g, err := NewGoertzel(1000, 48000)
	if err != nil {
		t.Fatal(err)
	}

	g.ProcessSample(1.0)

	if g.Power() == 0 {
		t.Error("Power should be non-zero after processing")
	}

	g.Reset()

	if g.Power() != 0 || g.Magnitude() != 0 {
		t.Error("Power should be zero after Reset")
	}
}

func TestGoertzelInvalid(t *testing.T) {
	if _, err := NewGoertzel(1000, 0); err == nil {
		t.Error("expected error for zero sample rate")
	}

	if _, err := NewGoertzel(30000, 48000); err == nil {
		t.Error("expected error above Nyquist")
	}

	if _, err := NewGoertzelBin(16, 16); err == nil {
		t.Error("expected error for bin == n")
	}

	if _, err := NewGoertzelBin(0, 0); err == nil {
		t.Error("expected error for n == 0")
	}
}

func TestBinMagnitude(t *testing.T) {
	x := testutil.BinSine[float32](3, 16)

	for k := range 16 {
		mag, err := BinMagnitude(x, k)
		if err != nil {
			t.Fatal(err)
		}

		want := 0.0
		if k == 3 || k == 13 {
			want = 8
		}

		if math.Abs(mag-want) > 1e-4 {
			t.Fatalf("bin %d: got %v, want %v", k, mag, want)
		}
	}
}
