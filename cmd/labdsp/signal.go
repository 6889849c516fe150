package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-labdsp/dsp/signal"
	timestats "github.com/cwbudde/algo-labdsp/stats/time"
)

// SignalCmd prints one of the elementary test sequences.
type SignalCmd struct {
	Kind      string  `arg:"" optional:"" help:"Sequence kind." enum:"pulse,step,ramp,exp,sine,noise,lab" default:"lab"`
	N         int     `help:"Number of samples." default:"32"`
	Delay     int     `help:"Delay in samples for pulse, step and ramp." default:"0"`
	Base      float64 `help:"Base a of the exponential a^n." default:"0.5"`
	Amplitude float64 `help:"Amplitude of sine and noise." default:"1"`
	Omega     float64 `help:"Angular frequency of sine in rad/sample." default:"0.7853981633974483"`
	Phase     float64 `help:"Phase of sine in radians." default:"0"`
	Seed      int64   `help:"Seed of the noise generator." default:"1"`
}

// Run implements kong's command interface.
func (c *SignalCmd) Run(app *App) error {
	if c.N <= 0 {
		return fmt.Errorf("signal: n must be positive, got %d", c.N)
	}

	x := make([]float64, c.N)

	switch c.Kind {
	case "pulse":
		signal.UnitPulse(x, c.Delay)
	case "step":
		signal.UnitStep(x, c.Delay)
	case "ramp":
		signal.UnitRamp(x, c.Delay)
	case "exp":
		signal.Exponential(x, c.Base)
	case "sine":
		signal.Sinusoid(x, c.Amplitude, c.Omega, c.Phase)
	case "noise":
		gen := signal.NewGeneratorWithOptions[float64](app.Presets.ProcessorOptions(), signal.WithSeed(c.Seed))
		if err := gen.WhiteNoiseTo(x, c.Amplitude); err != nil {
			return err
		}
	case "lab":
		gen := signal.NewGenerator[float64](app.Presets.ProcessorOptions()...)
		if err := gen.TonesTo(x, labTones(gen.Config().SampleRate)...); err != nil {
			return err
		}
	default:
		return fmt.Errorf("signal: unknown kind %q", c.Kind)
	}

	for n, v := range x {
		fmt.Fprintf(app.Out, "%d\t%.6f\n", n, v)
	}

	st := timestats.Calculate(x)
	app.Log.WithFields(logrus.Fields{
		"kind":    c.Kind,
		"samples": st.Length,
		"rms":     st.RMS,
		"peak":    st.Peak,
	}).Debug("generated sequence")

	return nil
}
