// Command labdsp runs the lab signal chain from the command line: it
// generates test sequences, filters captures with preset IIR tables and
// prints magnitude spectrograms and window properties.
//
// Usage:
//
//	labdsp signal ramp --n 8
//	labdsp filter --preset highpass --input capture.wav --output hp.wav
//	labdsp stft --preset accel-stft --json
//	labdsp window hamming --size 16 --periodic
package main

import (
	"os"

	"github.com/alecthomas/kong"
)

func main() {
	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("labdsp"),
		kong.Description("Fixed-capacity IIR filtering and short-time spectral analysis."),
		kong.UsageOnError(),
	)

	g, err := cli.Globals.setup(os.Stdout, os.Stderr)
	ctx.FatalIfErrorf(err)

	ctx.FatalIfErrorf(ctx.Run(g))
}
