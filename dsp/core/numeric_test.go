package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		value, lo, hi, want float64
	}{
		{0.5, -1, 1, 0.5},
		{-3, -1, 1, -1},
		{3, -1, 1, 1},
		{3, 1, -1, 1},
		{-1, -1, 1, -1},
	}

	for _, tt := range tests {
		if got := Clamp(tt.value, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.value, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestNearlyEqual(t *testing.T) {
	tests := []struct {
		a, b, eps float64
		want      bool
	}{
		{1, 1 + 1e-13, 1e-12, true},
		{1, 1.1, 1e-3, false},
		{1e6, 1e6 + 0.5, 1e-6, true}, // relative
		{0, 1e-13, 0, true},          // default epsilon
		{math.NaN(), math.NaN(), 1, false},
	}

	for _, tt := range tests {
		if got := NearlyEqual(tt.a, tt.b, tt.eps); got != tt.want {
			t.Errorf("NearlyEqual(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.eps, got, tt.want)
		}
	}
}

func TestLinearToDB(t *testing.T) {
	if db := LinearToDB(2); !NearlyEqual(db, 6.0206, 1e-4) {
		t.Fatalf("LinearToDB(2) = %v, want 6.0206", db)
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
}

func TestBinFrequency(t *testing.T) {
	tests := []struct {
		k, n int
		want float64
	}{
		{0, 16, 0},
		{1, 16, 6.25},
		{8, 16, 50},
		{9, 16, -43.75},
		{3, 0, 0},
	}
	for _, tt := range tests {
		if got := BinFrequency(tt.k, tt.n, 100); got != tt.want {
			t.Errorf("BinFrequency(%d, %d) = %v, want %v", tt.k, tt.n, got, tt.want)
		}
	}
}
