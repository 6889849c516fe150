package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-labdsp/dsp/buffer"
	"github.com/cwbudde/algo-labdsp/dsp/core"
	"github.com/cwbudde/algo-labdsp/dsp/signal"
	"github.com/cwbudde/algo-labdsp/internal/acquire"
	"github.com/cwbudde/algo-labdsp/internal/preset"
)

// CLI is the kong command tree.
type CLI struct {
	Globals

	Signal SignalCmd `cmd:"" help:"Print a generated test sequence."`
	Filter FilterCmd `cmd:"" help:"Filter a capture with a preset IIR table."`
	STFT   STFTCmd   `cmd:"" name:"stft" help:"Print the magnitude spectrogram of a capture."`
	Window WindowCmd `cmd:"" help:"Print window coefficients and spectral properties."`
}

// Globals holds flags shared by every command.
type Globals struct {
	Presets  string `help:"YAML preset file merged over the built-in presets." type:"existingfile"`
	LogLevel string `help:"Log level (debug, info, warn, error)." default:"info" enum:"debug,info,warn,error"`
}

// App is the resolved runtime state handed to each command.
type App struct {
	Out     io.Writer
	Log     *logrus.Logger
	Presets *preset.Set
}

func (g Globals) setup(out, logOut io.Writer) (*App, error) {
	log := logrus.New()
	log.SetOutput(logOut)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	level, err := logrus.ParseLevel(g.LogLevel)
	if err != nil {
		return nil, err
	}

	log.SetLevel(level)

	set := preset.Default()

	if g.Presets != "" {
		custom, err := preset.LoadFile(g.Presets)
		if err != nil {
			return nil, err
		}

		set.Merge(custom)
		log.WithFields(logrus.Fields{
			"file":      g.Presets,
			"filters":   len(custom.Filters),
			"analyzers": len(custom.Analyzers),
		}).Debug("loaded presets")
	}

	return &App{Out: out, Log: log, Presets: set}, nil
}

// Source selects the capture a command works on.
type Source struct {
	Input   string `help:"WAV capture to read; the lab test signal is used when empty." type:"existingfile"`
	Channel int    `help:"Channel to read from the WAV capture (-1 averages all channels)." default:"0"`
	N       int    `help:"Capture capacity in samples (0 uses the preset capacity)." default:"0"`
}

// labTones is the two-tone lab signal sin(pi*n/128) + sin(pi*n/4), expressed
// relative to the sample rate.
func labTones(sampleRate float64) []signal.Tone {
	return []signal.Tone{
		{FreqHz: sampleRate / 256, Amplitude: 1},
		{FreqHz: sampleRate / 8, Amplitude: 1},
	}
}

func (s Source) load(app *App) (*buffer.Fixed[float32], float64, error) {
	opts := app.Presets.ProcessorOptions()
	if s.N > 0 {
		opts = append(opts, core.WithCapacity(s.N))
	}

	cfg := core.ApplyProcessorOptions(opts...)

	if s.Input == "" {
		gen := signal.NewGenerator[float32](opts...)

		buf, err := gen.Capture(labTones(cfg.SampleRate)...)
		if err != nil {
			return nil, 0, err
		}

		app.Log.WithFields(logrus.Fields{"samples": buf.Len(), "sample_rate": cfg.SampleRate}).
			Debug("generated lab signal")

		return buf, cfg.SampleRate, nil
	}

	f, err := os.Open(s.Input)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	buf, format, err := acquire.ReadWAV(f, cfg.Capacity, s.Channel)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", s.Input, err)
	}

	app.Log.WithFields(logrus.Fields{
		"input":       s.Input,
		"samples":     buf.Len(),
		"sample_rate": format.SampleRate,
		"channels":    format.Channels,
	}).Debug("read capture")

	return buf, float64(format.SampleRate), nil
}
