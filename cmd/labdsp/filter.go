package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-labdsp/internal/acquire"
	timestats "github.com/cwbudde/algo-labdsp/stats/time"
)

// FilterCmd runs a capture through a preset IIR table.
type FilterCmd struct {
	Source

	Preset   string `help:"Filter preset name." default:"lowpass"`
	Output   string `help:"Write the filtered capture to this WAV file." type:"path"`
	BitDepth int    `help:"Bit depth of the written WAV file." default:"16"`
	Samples  bool   `help:"Print every filtered sample."`
}

// Run implements kong's command interface.
func (c *FilterCmd) Run(app *App) error {
	switch c.BitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("filter: unsupported bit depth %d", c.BitDepth)
	}

	spec, err := app.Presets.Filter(c.Preset)
	if err != nil {
		return err
	}

	f, err := spec.Filter32()
	if err != nil {
		return fmt.Errorf("filter %q: %w", c.Preset, err)
	}

	buf, sampleRate, err := c.load(app)
	if err != nil {
		return err
	}

	x := buf.Samples()
	y := make([]float32, len(x))

	start := time.Now()
	if err := f.ProcessBlockTo(y, x); err != nil {
		return err
	}
	elapsed := time.Since(start)

	in := timestats.Calculate(x)
	out := timestats.Calculate(y)
	p, q := f.Order()

	app.Log.WithFields(logrus.Fields{
		"preset":  c.Preset,
		"samples": len(x),
		"elapsed": elapsed,
		"gain_db": timestats.GainDB(x, y),
	}).Info("filtered capture")

	if c.Samples {
		for n := range y {
			fmt.Fprintf(app.Out, "%d\t%.6f\t%.6f\n", n, x[n], y[n])
		}
	} else {
		tw := tabwriter.NewWriter(app.Out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "Preset\t%s\n", c.Preset)
		fmt.Fprintf(tw, "Coefficients\tP=%d Q=%d\n", p, q)
		fmt.Fprintf(tw, "Samples\t%d\n", len(x))
		fmt.Fprintf(tw, "Sample rate\t%g Hz\n", sampleRate)
		fmt.Fprintf(tw, "Signal\tDC\tRMS\tPeak\tZero crossings\n")
		fmt.Fprintf(tw, "in\t%.4f\t%.4f\t%.4f\t%d\n", in.DC, in.RMS, in.Peak, in.ZeroCrossings)
		fmt.Fprintf(tw, "out\t%.4f\t%.4f\t%.4f\t%d\n", out.DC, out.RMS, out.Peak, out.ZeroCrossings)
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if c.Output == "" {
		return nil
	}

	w, err := os.Create(c.Output)
	if err != nil {
		return err
	}

	if err := acquire.WriteWAV(w, y, int(sampleRate), c.BitDepth); err != nil {
		w.Close()
		return err
	}

	app.Log.WithFields(logrus.Fields{"output": c.Output, "samples": len(y)}).Debug("wrote capture")

	return w.Close()
}
