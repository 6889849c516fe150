package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-labdsp/dsp/buffer"
	"github.com/cwbudde/algo-labdsp/dsp/core"
)

// Tone is one sinusoidal component of a test signal.
type Tone struct {
	FreqHz    float64
	Amplitude float64
	Phase     float64
}

// Generator creates deterministic capture-sized signals from a shared
// configuration.
type Generator[F core.Float] struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*settings)

type settings struct {
	seed int64
}

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(s *settings) {
		s.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator[F core.Float](opts ...core.ProcessorOption) *Generator[F] {
	return NewGeneratorWithOptions[F](opts)
}

// NewGeneratorWithOptions creates a generator with signal-specific options.
func NewGeneratorWithOptions[F core.Float](coreOpts []core.ProcessorOption, opts ...Option) *Generator[F] {
	s := settings{seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	return &Generator[F]{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: s.seed,
	}
}

// Config returns the generator processor configuration.
func (g *Generator[F]) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the noise seed.
func (g *Generator[F]) Seed() int64 { return g.seed }

// SetSeed changes the noise seed.
func (g *Generator[F]) SetSeed(seed int64) { g.seed = seed }

// Omega converts a frequency in Hz to radians per sample.
func (g *Generator[F]) Omega(freqHz float64) float64 {
	return 2 * math.Pi * freqHz / g.cfg.SampleRate
}

// TonesTo writes the sum of tones into dst.
func (g *Generator[F]) TonesTo(dst []F, tones ...Tone) error {
	if g.cfg.SampleRate <= 0 {
		return fmt.Errorf("tone sample rate must be > 0: %f", g.cfg.SampleRate)
	}

	for n := range dst {
		dst[n] = g.toneSample(n, tones)
	}

	return nil
}

func (g *Generator[F]) toneSample(n int, tones []Tone) F {
	v := 0.0
	for _, tone := range tones {
		v += tone.Amplitude * math.Sin(g.Omega(tone.FreqHz)*float64(n)+tone.Phase)
	}

	return F(v)
}

// Sine returns a capture-length sine wave.
func (g *Generator[F]) Sine(freqHz, amplitude float64) ([]F, error) {
	return g.Tones(Tone{FreqHz: freqHz, Amplitude: amplitude})
}

// Tones returns a capture-length sum of tones.
func (g *Generator[F]) Tones(tones ...Tone) ([]F, error) {
	if g.cfg.Capacity <= 0 {
		return nil, fmt.Errorf("tone samples must be > 0: %d", g.cfg.Capacity)
	}

	out := make([]F, g.cfg.Capacity)
	if err := g.TonesTo(out, tones...); err != nil {
		return nil, err
	}

	return out, nil
}

// WhiteNoiseTo writes deterministic white noise in [-amplitude, amplitude].
func (g *Generator[F]) WhiteNoiseTo(dst []F, amplitude float64) error {
	if amplitude < 0 {
		return fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}

	rng := rand.New(rand.NewSource(g.seed))
	for i := range dst {
		dst[i] = F((rng.Float64()*2 - 1) * amplitude)
	}

	return nil
}

// Capture returns a sealed capture-capacity buffer holding the sum of tones.
func (g *Generator[F]) Capture(tones ...Tone) (*buffer.Fixed[F], error) {
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("tone sample rate must be > 0: %f", g.cfg.SampleRate)
	}

	buf := buffer.New[F](g.cfg.Capacity)
	if err := buf.Fill(func(n int) F { return g.toneSample(n, tones) }); err != nil {
		return nil, err
	}

	return buf, nil
}
