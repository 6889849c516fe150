package stft

import (
	"slices"

	"github.com/cwbudde/algo-labdsp/dsp/transform"
	"github.com/cwbudde/algo-labdsp/dsp/window"
)

// Default configuration values.
const (
	DefaultLength = 16
	DefaultWindow = window.TypeHamming
)

// Option configures an Analyzer.
type Option func(*config)

type config struct {
	length   int
	hop      int
	hopSet   bool
	window   window.Type
	periodic bool
	reverse  bool
	factory  any
	backend  string
	sizes    []int
}

func defaultConfig() config {
	return config{
		length:   DefaultLength,
		window:   DefaultWindow,
		periodic: true,
		reverse:  true,
	}
}

func (c *config) effectiveHop() int {
	if c.hopSet {
		return c.hop
	}

	return max(1, c.length/2)
}

// WithLength sets the window length L, which is also the transform size.
func WithLength(n int) Option {
	return func(c *config) { c.length = n }
}

// WithHop sets the offset between consecutive window starts.
// The default is half the window length.
func WithHop(n int) Option {
	return func(c *config) {
		c.hop = n
		c.hopSet = true
	}
}

// WithWindow selects the taper. The default is Hamming.
func WithWindow(t window.Type) Option {
	return func(c *config) { c.window = t }
}

// WithPeriodicDenominator selects D = L (true, the default) or D = L-1 in
// the window formula.
func WithPeriodicDenominator(on bool) Option {
	return func(c *config) { c.periodic = on }
}

// WithReverseSamples selects whether coefficient m multiplies sample L-1-m
// (true, the default) or sample m.
func WithReverseSamples(on bool) Option {
	return func(c *config) { c.reverse = on }
}

// WithTransform supplies the transform factory. Its element type must match
// the analyzer's complex type.
func WithTransform[C transform.Complex](f transform.Factory[C]) Option {
	return func(c *config) {
		c.factory = f
		c.backend = ""
	}
}

// WithBackend selects a transform backend by name (see transform.Backends).
func WithBackend(name string) Option {
	return func(c *config) {
		c.backend = name
		c.factory = nil
	}
}

// WithSupportedSizes restricts the lengths the analyzer accepts, as a
// fixed-size FFT deployment would.
func WithSupportedSizes(sizes ...int) Option {
	return func(c *config) { c.sizes = slices.Clone(sizes) }
}
