package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-labdsp/dsp/stft"
	"github.com/cwbudde/algo-labdsp/dsp/window"
	freqstats "github.com/cwbudde/algo-labdsp/stats/frequency"
)

// STFTCmd prints the magnitude spectrogram of a capture.
type STFTCmd struct {
	Source

	Preset  string `help:"Analyzer preset name." default:"accel-stft"`
	Filter  string `help:"Filter preset applied before analysis."`
	Length  int    `help:"Override the window length." default:"0"`
	Hop     int    `help:"Override the hop." default:"0"`
	Window  string `help:"Override the window type."`
	Backend string `help:"Override the transform backend (algo, gofft, gonum)."`
	JSON    bool   `help:"Emit one JSON object per frame."`
}

// frameRow is one printed spectrogram frame.
type frameRow struct {
	Frame     int       `json:"frame"`
	Start     int       `json:"start"`
	PeakBin   int       `json:"peak_bin"`
	PeakHz    float64   `json:"peak_hz"`
	Centroid  float64   `json:"centroid_hz"`
	Magnitude []float32 `json:"magnitude"`
}

func (c *STFTCmd) options(app *App) ([]stft.Option, error) {
	spec, err := app.Presets.Analyzer(c.Preset)
	if err != nil {
		return nil, err
	}

	opts, err := spec.Options()
	if err != nil {
		return nil, err
	}

	if c.Length > 0 {
		// A length override invalidates the preset's size restriction.
		opts = append(opts, stft.WithLength(c.Length), stft.WithSupportedSizes())
	}

	if c.Hop > 0 {
		opts = append(opts, stft.WithHop(c.Hop))
	}

	if c.Window != "" {
		t, err := window.ParseType(c.Window)
		if err != nil {
			return nil, err
		}

		opts = append(opts, stft.WithWindow(t))
	}

	if c.Backend != "" {
		opts = append(opts, stft.WithBackend(c.Backend))
	}

	return opts, nil
}

// Run implements kong's command interface.
func (c *STFTCmd) Run(app *App) error {
	opts, err := c.options(app)
	if err != nil {
		return err
	}

	a, err := stft.New32(opts...)
	if err != nil {
		return err
	}

	buf, sampleRate, err := c.load(app)
	if err != nil {
		return err
	}

	x := buf.Samples()

	if c.Filter != "" {
		spec, err := app.Presets.Filter(c.Filter)
		if err != nil {
			return err
		}

		f, err := spec.Filter32()
		if err != nil {
			return err
		}

		y := make([]float32, len(x))
		if err := f.ProcessBlockTo(y, x); err != nil {
			return err
		}

		x = y
	}

	start := time.Now()

	sg, err := a.Analyze(x)
	if err != nil {
		return err
	}

	desc := a.Descriptor()
	app.Log.WithFields(logrus.Fields{
		"preset":  c.Preset,
		"samples": len(x),
		"frames":  sg.Len(),
		"length":  desc.Length,
		"hop":     desc.Hop,
		"window":  a.WindowType(),
		"elapsed": time.Since(start),
	}).Info("analyzed capture")

	if c.JSON {
		enc := json.NewEncoder(app.Out)
		for i, frame := range sg.Frames {
			if err := enc.Encode(newFrameRow(sg, i, frame, sampleRate)); err != nil {
				return err
			}
		}

		return nil
	}

	tw := tabwriter.NewWriter(app.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Frame\tStart\tPeak bin\tPeak Hz\tCentroid Hz\tMagnitude")

	for i, frame := range sg.Frames {
		row := newFrameRow(sg, i, frame, sampleRate)

		mags := make([]string, len(row.Magnitude))
		for k, m := range row.Magnitude {
			mags[k] = fmt.Sprintf("%.3f", m)
		}

		fmt.Fprintf(tw, "%d\t%d\t%d\t%.3f\t%.3f\t%s\n",
			row.Frame, row.Start, row.PeakBin, row.PeakHz, row.Centroid, strings.Join(mags, " "))
	}

	return tw.Flush()
}

func newFrameRow(sg *stft.Spectrogram[float32], i int, frame []float32, sampleRate float64) frameRow {
	st := freqstats.Calculate(frame, sampleRate)

	return frameRow{
		Frame:     i,
		Start:     sg.Start(i),
		PeakBin:   st.MaxBin,
		PeakHz:    st.PeakHz,
		Centroid:  st.Centroid,
		Magnitude: frame,
	}
}
