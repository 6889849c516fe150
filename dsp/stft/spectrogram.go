package stft

import (
	"github.com/cwbudde/algo-labdsp/dsp/core"
	"github.com/cwbudde/algo-labdsp/dsp/segment"
	"github.com/cwbudde/algo-labdsp/dsp/transform"
)

// Spectrogram is an ordered sequence of magnitude frames, one per window.
type Spectrogram[F core.Float] struct {
	Frames     [][]F
	Descriptor segment.Descriptor
	Ordering   transform.Ordering
}

// Len returns the number of frames.
func (s *Spectrogram[F]) Len() int { return len(s.Frames) }

// Empty reports whether no window fit in the analyzed buffer.
func (s *Spectrogram[F]) Empty() bool { return len(s.Frames) == 0 }

// Bins returns the number of bins per frame.
func (s *Spectrogram[F]) Bins() int { return s.Descriptor.Length }

// Start returns the sample index at which frame i begins.
func (s *Spectrogram[F]) Start(i int) int { return i * s.Descriptor.Hop }
