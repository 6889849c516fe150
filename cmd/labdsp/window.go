package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/cwbudde/algo-labdsp/dsp/window"
)

// WindowCmd prints window coefficients and their measured properties.
type WindowCmd struct {
	Type         string `arg:"" optional:"" help:"Window type; all types are listed when empty."`
	Size         int    `help:"Window length." default:"16"`
	Periodic     bool   `help:"Use the periodic denominator (D = L) instead of D = L-1."`
	Coefficients bool   `help:"Print the coefficients of each window."`
}

// Run implements kong's command interface.
func (c *WindowCmd) Run(app *App) error {
	if err := window.Validate(c.Size); err != nil {
		return err
	}

	types := window.Types()

	if c.Type != "" {
		t, err := window.ParseType(c.Type)
		if err != nil {
			return err
		}

		types = []window.Type{t}
	}

	tw := tabwriter.NewWriter(app.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Window\tSize\tCoherent Gain\tENBW\tBW 3dB\tScallop dB\tSidelobe dB")

	for _, t := range types {
		coeffs := window.Generate(t, c.Size, window.Periodic(c.Periodic))
		a := window.Analyze(coeffs)
		info := window.Info(t)

		fmt.Fprintf(tw, "%s\t%d\t%.4f\t%.4f\t%.4f\t%.4f\t%.1f\n",
			info.Name, c.Size, a.CoherentGain, a.ENBW, a.Bandwidth3dB, a.ScallopLossdB, info.HighestSidelobe)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	if !c.Coefficients {
		return nil
	}

	for _, t := range types {
		fmt.Fprintf(app.Out, "\n%s:", t)

		for _, w := range window.Generate(t, c.Size, window.Periodic(c.Periodic)) {
			fmt.Fprintf(app.Out, " %.6f", w)
		}

		fmt.Fprintln(app.Out)
	}

	return nil
}
