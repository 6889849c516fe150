package segment

import "testing"

func BenchmarkNext(b *testing.B) {
	buf := make([]float32, 1024)
	s, _ := New(buf, 16, 8)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Reset()
		for {
			if _, ok := s.Next(); !ok {
				break
			}
		}
	}
}
