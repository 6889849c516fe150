package segment

import (
	"errors"
	"testing"
)

func ramp(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(i)
	}
	return out
}

func collect[T any](s *Segmenter[T]) [][]T {
	var out [][]T
	for {
		w, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, w)
	}
}

func TestNewInvalidDescriptor(t *testing.T) {
	tests := []struct {
		name        string
		length, hop int
	}{
		{"zero length", 0, 1},
		{"negative length", -4, 1},
		{"zero hop", 4, 0},
		{"negative hop", 4, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(ramp(8), tt.length, tt.hop)
			if !errors.Is(err, ErrInvalidDescriptor) {
				t.Fatalf("err = %v, want ErrInvalidDescriptor", err)
			}
			if s != nil {
				t.Fatal("expected nil segmenter on error")
			}
		})
	}
}

func TestWindowCountProperty(t *testing.T) {
	for n := 0; n <= 40; n++ {
		for l := 1; l <= 20; l++ {
			for h := 1; h <= 24; h++ {
				s, err := New(ramp(n), l, h)
				if err != nil {
					t.Fatal(err)
				}
				want := 0
				if n >= l {
					want = (n-l)/h + 1
				}
				got := len(collect(s))
				if got != want {
					t.Fatalf("N=%d L=%d H=%d: got %d windows, want %d", n, l, h, got, want)
				}
				if s.Count() != want {
					t.Fatalf("N=%d L=%d H=%d: Count()=%d, want %d", n, l, h, s.Count(), want)
				}
			}
		}
	}
}

func TestWindowContents(t *testing.T) {
	s, _ := New(ramp(10), 4, 3)
	got := collect(s)
	want := [][]float32{{0, 1, 2, 3}, {3, 4, 5, 6}, {6, 7, 8, 9}}
	if len(got) != len(want) {
		t.Fatalf("got %d windows, want %d", len(got), len(want))
	}
	for i := range want {
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Fatalf("window %d[%d] = %v, want %v", i, j, got[i][j], want[i][j])
			}
		}
	}
}

func TestEdgeCases(t *testing.T) {
	tests := []struct {
		name        string
		n, l, h     int
		wantWindows int
	}{
		{"hop beyond buffer", 16, 4, 16, 1},
		{"hop far beyond buffer", 16, 4, 100, 1},
		{"length beyond buffer", 8, 16, 1, 0},
		{"length equals buffer", 16, 16, 3, 1},
		{"length equals buffer huge hop", 16, 16, 1000, 1},
		{"empty buffer", 0, 1, 1, 0},
		{"disjoint tiling", 16, 4, 4, 4},
		{"lab overlap", 1024, 16, 8, 127},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(ramp(tt.n), tt.l, tt.h)
			if err != nil {
				t.Fatal(err)
			}
			if got := len(collect(s)); got != tt.wantWindows {
				t.Fatalf("got %d windows, want %d", got, tt.wantWindows)
			}
			if _, ok := s.Next(); ok {
				t.Fatal("Next after exhaustion should report false")
			}
		})
	}
}

func TestWindowsAliasInput(t *testing.T) {
	buf := ramp(8)
	s, _ := New(buf, 4, 2)
	w, _ := s.Next()
	if &w[0] != &buf[0] {
		t.Fatal("window does not alias the input buffer")
	}
	if cap(w) != 4 {
		t.Fatalf("cap(window) = %d, want 4", cap(w))
	}
	w = append(w, -1)
	if buf[4] != 4 {
		t.Fatal("append on a window overwrote the input buffer")
	}
}

func TestRemainingAndReset(t *testing.T) {
	s, _ := New(ramp(10), 4, 2)
	if s.Remaining() != 4 {
		t.Fatalf("Remaining() = %d, want 4", s.Remaining())
	}
	s.Next()
	s.Next()
	if s.Remaining() != 2 {
		t.Fatalf("Remaining() = %d, want 2", s.Remaining())
	}
	first := collect(s)
	if len(first) != 2 || s.Remaining() != 0 {
		t.Fatalf("got %d, remaining %d", len(first), s.Remaining())
	}
	s.Reset()
	if got := len(collect(s)); got != 4 {
		t.Fatalf("after Reset got %d windows, want 4", got)
	}
}

func TestRerunIsIdentical(t *testing.T) {
	buf := ramp(64)
	a, _ := New(buf, 16, 5)
	b, _ := New(buf, 16, 5)
	wa, wb := collect(a), collect(b)
	if len(wa) != len(wb) {
		t.Fatalf("window counts differ: %d vs %d", len(wa), len(wb))
	}
	for i := range wa {
		for j := range wa[i] {
			if wa[i][j] != wb[i][j] {
				t.Fatalf("window %d differs at %d", i, j)
			}
		}
	}
}

func TestAllMatchesNext(t *testing.T) {
	s, _ := New(ramp(33), 8, 3)
	want := collect(s)
	i := 0
	for idx, w := range s.All() {
		if idx != i {
			t.Fatalf("index = %d, want %d", idx, i)
		}
		if &w[0] != &want[i][0] {
			t.Fatalf("window %d differs", i)
		}
		i++
	}
	if i != len(want) {
		t.Fatalf("All yielded %d windows, want %d", i, len(want))
	}
}

func TestAllEarlyBreak(t *testing.T) {
	s, _ := New(ramp(100), 10, 1)
	seen := 0
	for range s.All() {
		seen++
		if seen == 3 {
			break
		}
	}
	if seen != 3 {
		t.Fatalf("seen = %d, want 3", seen)
	}
}

func TestWindowsInvalidDescriptorYieldsNothing(t *testing.T) {
	for range Windows(ramp(8), Descriptor{Length: 4}) {
		t.Fatal("expected no windows for zero hop")
	}
}

func TestNextDoesNotAllocate(t *testing.T) {
	buf := ramp(1024)
	s, _ := New(buf, 16, 8)
	allocs := testing.AllocsPerRun(100, func() {
		s.Reset()
		for {
			if _, ok := s.Next(); !ok {
				break
			}
		}
	})
	if allocs != 0 {
		t.Fatalf("allocs per run = %v, want 0", allocs)
	}
}
