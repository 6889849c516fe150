package stft

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/cwbudde/algo-labdsp/dsp/core"
	"github.com/cwbudde/algo-labdsp/dsp/segment"
	"github.com/cwbudde/algo-labdsp/dsp/spectrum"
	"github.com/cwbudde/algo-labdsp/dsp/transform"
	"github.com/cwbudde/algo-labdsp/dsp/window"
)

var (
	// ErrUnsupportedTransformSize is returned when no transform of the
	// configured window length is available.
	ErrUnsupportedTransformSize = errors.New("stft: unsupported transform size")
	// ErrInvalidOption is returned for option values that cannot apply to
	// the analyzer, such as a transform of the wrong precision.
	ErrInvalidOption = errors.New("stft: invalid option")
	// ErrLengthMismatch is returned by AnalyzeWindow for slices whose
	// length differs from the window length.
	ErrLengthMismatch = errors.New("stft: length mismatch")
)

// Analyzer produces magnitude spectra of windows of a sample buffer.
// An Analyzer is not safe for concurrent use; independent analyzers are.
type Analyzer[F core.Float, C transform.Complex] struct {
	desc     segment.Descriptor
	wtype    window.Type
	coeffs   []F
	coeffs64 []float64
	reverse  bool

	tr      transform.Transform[C]
	scratch []float64
	buf     []C
	mag     []F
	reducer *spectrum.Reducer[F, C]

	state State
	err   error
}

// Analyzer32 is the single-precision analyzer.
type Analyzer32 = Analyzer[float32, complex64]

// Analyzer64 is the double-precision analyzer.
type Analyzer64 = Analyzer[float64, complex128]

// New builds an analyzer. Window coefficients, the transform and all
// working buffers are allocated here and reused for every window.
func New[F core.Float, C transform.Complex](opts ...Option) (*Analyzer[F, C], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	desc := segment.Descriptor{Length: cfg.length, Hop: cfg.effectiveHop()}
	if err := desc.Validate(); err != nil {
		return nil, err
	}

	factory, err := resolveFactory[C](cfg)
	if err != nil {
		return nil, err
	}

	if len(cfg.sizes) > 0 {
		factory = transform.Restrict(factory, cfg.sizes...)
	}

	tr, err := factory(desc.Length)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedTransformSize, err)
	}

	if tr.Len() != desc.Length {
		return nil, fmt.Errorf("%w: transform has %d points, window has %d",
			ErrUnsupportedTransformSize, tr.Len(), desc.Length)
	}

	shape := window.Periodic(cfg.periodic)
	coeffs64 := make([]float64, desc.Length)
	window.Fill(coeffs64, cfg.window, shape)

	return &Analyzer[F, C]{
		desc:     desc,
		wtype:    cfg.window,
		coeffs:   window.Coefficients[F](cfg.window, desc.Length, shape),
		coeffs64: coeffs64,
		reverse:  cfg.reverse,
		tr:       tr,
		scratch:  make([]float64, desc.Length),
		buf:      make([]C, desc.Length),
		mag:      make([]F, desc.Length),
		reducer:  spectrum.NewReducer[F, C](desc.Length),
	}, nil
}

// New32 builds a single-precision analyzer.
func New32(opts ...Option) (*Analyzer32, error) {
	return New[float32, complex64](opts...)
}

// New64 builds a double-precision analyzer.
func New64(opts ...Option) (*Analyzer64, error) {
	return New[float64, complex128](opts...)
}

func resolveFactory[C transform.Complex](cfg config) (transform.Factory[C], error) {
	if cfg.factory == nil {
		f, err := transform.ByName[C](cfg.backend)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidOption, err)
		}

		return f, nil
	}

	f, ok := cfg.factory.(transform.Factory[C])
	if !ok || f == nil {
		var zero C
		return nil, fmt.Errorf("%w: transform factory is %T, analyzer needs %T elements",
			ErrInvalidOption, cfg.factory, zero)
	}

	return f, nil
}

// Descriptor returns the window length and hop.
func (a *Analyzer[F, C]) Descriptor() segment.Descriptor { return a.desc }

// WindowType returns the configured taper.
func (a *Analyzer[F, C]) WindowType() window.Type { return a.wtype }

// Window returns a copy of the cached window coefficients.
func (a *Analyzer[F, C]) Window() []F { return slices.Clone(a.coeffs) }

// Ordering reports the bin order of produced magnitude frames.
func (a *Analyzer[F, C]) Ordering() transform.Ordering { return a.tr.Ordering() }

// State returns the current pipeline state.
func (a *Analyzer[F, C]) State() State { return a.state }

// Err returns the error that stopped the last Frames iteration, if any.
func (a *Analyzer[F, C]) Err() error { return a.err }

// Count returns the number of frames Analyze or Frames produce for n samples.
func (a *Analyzer[F, C]) Count(n int) int { return a.desc.Count(n) }

// AnalyzeWindow writes the magnitude spectrum of one window into dst.
// Both slices must have the configured window length.
func (a *Analyzer[F, C]) AnalyzeWindow(dst, win []F) error {
	n := a.desc.Length
	if len(win) != n || len(dst) != n {
		return fmt.Errorf("%w: window %d, dst %d, want %d", ErrLengthMismatch, len(win), len(dst), n)
	}

	a.state = WindowReady

	if err := a.applyWindow(win); err != nil {
		a.state = Idle
		return err
	}

	a.state = Windowed

	if err := a.tr.Forward(a.buf); err != nil {
		a.state = Idle
		return err
	}

	a.state = Transformed

	if err := a.reducer.Magnitude(dst, a.buf); err != nil {
		a.state = Idle
		return err
	}

	a.state = MagnitudeReady

	return nil
}

// applyWindow pairs coefficient m with sample L-1-m when reversed, with
// sample m otherwise, and loads the products into the transform buffer.
func (a *Analyzer[F, C]) applyWindow(win []F) error {
	last := len(win) - 1

	if a.reverse {
		for m := range a.scratch {
			a.scratch[m] = float64(win[last-m])
		}
	} else {
		for m, v := range win {
			a.scratch[m] = float64(v)
		}
	}

	if err := window.ApplyCoefficientsInPlace(a.scratch, a.coeffs64); err != nil {
		return err
	}

	return spectrum.Complexify(a.buf, a.scratch)
}

// Frames lazily yields the magnitude spectrum of every window of x. The
// yielded slice is the analyzer's own buffer and is overwritten by the next
// iteration. A buffer shorter than the window length yields nothing. A
// transform failure ends the sequence; Err reports it.
func (a *Analyzer[F, C]) Frames(x []F) iter.Seq2[int, []F] {
	return a.frames(x, &a.err)
}

// frames reports a failure through errp.
func (a *Analyzer[F, C]) frames(x []F, errp *error) iter.Seq2[int, []F] {
	return func(yield func(int, []F) bool) {
		*errp = nil
		defer func() { a.state = Idle }()

		for i, win := range segment.Windows(x, a.desc) {
			if err := a.AnalyzeWindow(a.mag, win); err != nil {
				*errp = fmt.Errorf("stft: window %d: %w", i, err)
				return
			}

			if !yield(i, a.mag) {
				return
			}

			a.state = WindowReady
		}
	}
}

// Analyze computes the full spectrogram of x. All frames share one backing
// array sized from the frame count before the first window is processed.
// Analyze leaves the error reported by Err untouched.
func (a *Analyzer[F, C]) Analyze(x []F) (*Spectrogram[F], error) {
	n := a.desc.Length
	count := a.Count(len(x))

	backing := make([]F, count*n)
	frames := make([][]F, count)

	var err error
	for i, mag := range a.frames(x, &err) {
		row := backing[i*n : (i+1)*n : (i+1)*n]
		copy(row, mag)
		frames[i] = row
	}

	if err != nil {
		return nil, err
	}

	return &Spectrogram[F]{
		Frames:     frames,
		Descriptor: a.desc,
		Ordering:   a.Ordering(),
	}, nil
}
