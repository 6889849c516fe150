package core

// ProcessorConfig defines common acquisition settings.
type ProcessorConfig struct {
	// SampleRate is the acquisition rate in Hz. It only affects conversions
	// between bins and Hz; the engine itself is rate-agnostic.
	SampleRate float64
	// Capacity is the fixed number of samples captured per run.
	Capacity int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the accelerometer capture defaults:
// 10 ms sampling period, 1024-sample capture.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 100,
		Capacity:   1024,
	}
}

// WithSampleRate sets the acquisition sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithCapacity sets the capture capacity.
func WithCapacity(capacity int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if capacity > 0 {
			cfg.Capacity = capacity
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
