package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-labdsp/dsp/window"
	"github.com/cwbudde/algo-labdsp/internal/acquire"
	"github.com/cwbudde/algo-labdsp/internal/preset"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var cli CLI

	parser, err := kong.New(&cli, kong.Name("labdsp"), kong.Exit(func(int) {}))
	require.NoError(t, err)

	ctx, err := parser.Parse(args)
	if err != nil {
		return "", err
	}

	var out bytes.Buffer

	app, err := cli.Globals.setup(&out, io.Discard)
	if err != nil {
		return "", err
	}

	err = ctx.Run(app)

	return out.String(), err
}

func TestSignalSequences(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"signal", "pulse", "--n", "3", "--delay", "1"}, "0\t0.000000\n1\t1.000000\n2\t0.000000\n"},
		{[]string{"signal", "step", "--n", "3", "--delay", "2"}, "0\t0.000000\n1\t0.000000\n2\t1.000000\n"},
		{[]string{"signal", "ramp", "--n", "4"}, "0\t0.000000\n1\t1.000000\n2\t2.000000\n3\t3.000000\n"},
		{[]string{"signal", "exp", "--n", "3", "--base", "0.5"}, "0\t1.000000\n1\t0.500000\n2\t0.250000\n"},
	}

	for _, tt := range tests {
		t.Run(tt.args[1], func(t *testing.T) {
			got, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSignalNoiseIsSeeded(t *testing.T) {
	a, err := run(t, "signal", "noise", "--n", "8", "--seed", "7")
	require.NoError(t, err)

	b, err := run(t, "signal", "noise", "--n", "8", "--seed", "7")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, strings.Split(strings.TrimSpace(a), "\n"), 8)
}

func TestSignalRejectsUnknownKind(t *testing.T) {
	_, err := run(t, "signal", "chirp")
	require.Error(t, err)
}

func TestWindowTable(t *testing.T) {
	out, err := run(t, "window", "hann", "--size", "4", "--coefficients")
	require.NoError(t, err)

	assert.Contains(t, out, "Hann")
	assert.Contains(t, out, "hann: 0.000000 0.750000 0.750000 0.000000")
	assert.NotContains(t, out, "Blackman")
}

func TestWindowListsAllTypes(t *testing.T) {
	out, err := run(t, "window", "--periodic")
	require.NoError(t, err)

	for _, typ := range window.Types() {
		assert.Contains(t, out, window.Info(typ).Name)
	}
}

func TestWindowErrors(t *testing.T) {
	_, err := run(t, "window", "kaiser")
	require.ErrorIs(t, err, window.ErrUnknownType)

	_, err = run(t, "window", "hann", "--size", "0")
	require.ErrorIs(t, err, window.ErrInvalidLength)
}

func TestFilterSummary(t *testing.T) {
	out, err := run(t, "filter", "--preset", "highpass", "--n", "256")
	require.NoError(t, err)

	assert.Contains(t, out, "highpass")
	assert.Contains(t, out, "P=3 Q=3")
	assert.Contains(t, out, "256")
}

func TestFilterSamples(t *testing.T) {
	out, err := run(t, "filter", "--n", "32", "--samples")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 32)
	assert.Equal(t, "0\t0.000000\t0.000000", lines[0])
}

func TestFilterUnknownPreset(t *testing.T) {
	_, err := run(t, "filter", "--preset", "bandstop")
	require.ErrorIs(t, err, preset.ErrUnknownPreset)
}

func TestFilterWritesAndReadsWAV(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "lowpass.wav")
	second := filepath.Join(dir, "twice.wav")

	_, err := run(t, "filter", "--n", "128", "--output", first)
	require.NoError(t, err)

	f, err := os.Open(first)
	require.NoError(t, err)

	buf, format, err := acquire.ReadWAV(f, 1024, 0)
	require.NoError(t, f.Close())
	require.NoError(t, err)
	assert.Equal(t, 128, buf.Len())
	assert.Equal(t, 100, format.SampleRate)

	_, err = run(t, "filter", "--input", first, "--output", second, "--bit-depth", "24")
	require.NoError(t, err)

	info, err := os.Stat(second)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestCustomPresetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	doc := "capacity: 8\nfilters:\n  identity:\n    b: [1]\n    a: [1]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, err := run(t, "--presets", path, "filter", "--preset", "identity", "--samples")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)

	for _, line := range lines {
		cols := strings.Split(line, "\t")
		require.Len(t, cols, 3)
		assert.Equal(t, cols[1], cols[2])
	}
}

func TestSTFTJSON(t *testing.T) {
	out, err := run(t, "stft", "--filter", "highpass", "--json")
	require.NoError(t, err)

	var rows []frameRow

	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		var row frameRow
		require.NoError(t, json.Unmarshal(sc.Bytes(), &row))
		rows = append(rows, row)
	}
	require.NoError(t, sc.Err())

	// (1024-16)/8 + 1 windows of the default capture.
	require.Len(t, rows, 127)

	for i, row := range rows {
		assert.Equal(t, i, row.Frame)
		assert.Equal(t, 8*i, row.Start)
		assert.Len(t, row.Magnitude, 16)
		assert.Equal(t, 2, row.PeakBin, "frame %d", i)
		assert.InDelta(t, 12.5, row.PeakHz, 1e-9)
	}
}

func TestSTFTTableOverrides(t *testing.T) {
	out, err := run(t, "stft", "--n", "64", "--length", "32", "--hop", "32", "--window", "hann", "--backend", "gonum")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Peak bin")
}

func TestSTFTErrors(t *testing.T) {
	_, err := run(t, "stft", "--preset", "missing")
	require.ErrorIs(t, err, preset.ErrUnknownPreset)

	_, err = run(t, "stft", "--backend", "fftw")
	require.Error(t, err)

	_, err = run(t, "stft", "--window", "kaiser")
	require.ErrorIs(t, err, window.ErrUnknownType)
}
