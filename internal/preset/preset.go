// Package preset loads named filter and analyzer configurations from YAML.
package preset

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-labdsp/dsp/core"
	"github.com/cwbudde/algo-labdsp/dsp/filter/iir"
	"github.com/cwbudde/algo-labdsp/dsp/stft"
	"github.com/cwbudde/algo-labdsp/dsp/window"
)

var (
	// ErrUnknownPreset is returned when a lookup names no loaded preset.
	ErrUnknownPreset = errors.New("preset: unknown preset")
	// ErrInvalidPreset is returned for YAML that does not parse or whose
	// entries fail validation.
	ErrInvalidPreset = errors.New("preset: invalid preset")
)

//go:embed defaults.yaml
var defaultsYAML []byte

// FilterSpec is a named IIR coefficient table.
type FilterSpec struct {
	Description string    `yaml:"description,omitempty"`
	B           []float64 `yaml:"b"`
	A           []float64 `yaml:"a"`
}

// AnalyzerSpec is a named spectral analyzer configuration. Unset fields keep
// the analyzer defaults.
type AnalyzerSpec struct {
	Description string `yaml:"description,omitempty"`
	Length      int    `yaml:"length,omitempty"`
	Hop         int    `yaml:"hop,omitempty"`
	Window      string `yaml:"window,omitempty"`
	Periodic    *bool  `yaml:"periodic,omitempty"`
	Reverse     *bool  `yaml:"reverse,omitempty"`
	Backend     string `yaml:"backend,omitempty"`
	Sizes       []int  `yaml:"sizes,omitempty"`
}

// Set is a preset document.
type Set struct {
	SampleRate float64                 `yaml:"sample_rate,omitempty"`
	Capacity   int                     `yaml:"capacity,omitempty"`
	Filters    map[string]FilterSpec   `yaml:"filters,omitempty"`
	Analyzers  map[string]AnalyzerSpec `yaml:"analyzers,omitempty"`
}

// Default returns the embedded lab presets.
func Default() *Set {
	s, err := Load(bytes.NewReader(defaultsYAML))
	if err != nil {
		panic(fmt.Sprintf("preset: embedded defaults: %v", err))
	}

	return s
}

// Load decodes and validates a preset document. Unknown keys are rejected.
func Load(r io.Reader) (*Set, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Set
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPreset, err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// LoadFile reads a preset document from path.
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("preset: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Validate checks every filter table and analyzer window name.
func (s *Set) Validate() error {
	for name, f := range s.Filters {
		c := iir.Coefficients[float64]{B: f.B, A: f.A}
		if err := c.Validate(); err != nil {
			return fmt.Errorf("%w: filter %q: %w", ErrInvalidPreset, name, err)
		}
	}

	for name, a := range s.Analyzers {
		if a.Window == "" {
			continue
		}

		if _, err := window.ParseType(a.Window); err != nil {
			return fmt.Errorf("%w: analyzer %q: %w", ErrInvalidPreset, name, err)
		}
	}

	return nil
}

// Merge overlays other onto s. Entries in other replace same-named entries.
func (s *Set) Merge(other *Set) {
	if other == nil {
		return
	}

	if other.SampleRate > 0 {
		s.SampleRate = other.SampleRate
	}

	if other.Capacity > 0 {
		s.Capacity = other.Capacity
	}

	if s.Filters == nil {
		s.Filters = map[string]FilterSpec{}
	}

	maps.Copy(s.Filters, other.Filters)

	if s.Analyzers == nil {
		s.Analyzers = map[string]AnalyzerSpec{}
	}

	maps.Copy(s.Analyzers, other.Analyzers)
}

// ProcessorOptions returns the acquisition settings of the document.
func (s *Set) ProcessorOptions() []core.ProcessorOption {
	return []core.ProcessorOption{
		core.WithSampleRate(s.SampleRate),
		core.WithCapacity(s.Capacity),
	}
}

// FilterNames returns the sorted filter preset names.
func (s *Set) FilterNames() []string {
	return slices.Sorted(maps.Keys(s.Filters))
}

// AnalyzerNames returns the sorted analyzer preset names.
func (s *Set) AnalyzerNames() []string {
	return slices.Sorted(maps.Keys(s.Analyzers))
}

// Filter returns the named filter table.
func (s *Set) Filter(name string) (FilterSpec, error) {
	f, ok := s.Filters[name]
	if !ok {
		return FilterSpec{}, fmt.Errorf("%w: filter %q (have %v)", ErrUnknownPreset, name, s.FilterNames())
	}

	return f, nil
}

// Analyzer returns the named analyzer configuration.
func (s *Set) Analyzer(name string) (AnalyzerSpec, error) {
	a, ok := s.Analyzers[name]
	if !ok {
		return AnalyzerSpec{}, fmt.Errorf("%w: analyzer %q (have %v)", ErrUnknownPreset, name, s.AnalyzerNames())
	}

	return a, nil
}

// Filter32 builds a single-precision filter from the table.
func (f FilterSpec) Filter32() (*iir.Filter32, error) {
	b := make([]float32, len(f.B))
	for i, v := range f.B {
		b[i] = float32(v)
	}

	a := make([]float32, len(f.A))
	for i, v := range f.A {
		a[i] = float32(v)
	}

	return iir.New(b, a)
}

// Options converts the preset into analyzer options.
func (a AnalyzerSpec) Options() ([]stft.Option, error) {
	var opts []stft.Option

	if a.Length != 0 {
		opts = append(opts, stft.WithLength(a.Length))
	}

	if a.Hop != 0 {
		opts = append(opts, stft.WithHop(a.Hop))
	}

	if a.Window != "" {
		t, err := window.ParseType(a.Window)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPreset, err)
		}

		opts = append(opts, stft.WithWindow(t))
	}

	if a.Periodic != nil {
		opts = append(opts, stft.WithPeriodicDenominator(*a.Periodic))
	}

	if a.Reverse != nil {
		opts = append(opts, stft.WithReverseSamples(*a.Reverse))
	}

	if a.Backend != "" {
		opts = append(opts, stft.WithBackend(a.Backend))
	}

	if len(a.Sizes) > 0 {
		opts = append(opts, stft.WithSupportedSizes(a.Sizes...))
	}

	return opts, nil
}
