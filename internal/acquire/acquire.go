// Package acquire loads fixed-length sample captures from WAV recordings
// and writes processed captures back out.
package acquire

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-labdsp/dsp/buffer"
	"github.com/cwbudde/algo-labdsp/dsp/core"
)

var (
	// ErrInvalidWAV is returned for streams that do not decode as WAV.
	ErrInvalidWAV = errors.New("acquire: invalid WAV stream")
	// ErrInvalidChannel is returned for a channel index the file does not have.
	ErrInvalidChannel = errors.New("acquire: invalid channel")
)

// Downmix selects the average of all channels in ReadWAV.
const Downmix = -1

const chunkFrames = 4096

// Format describes the source recording.
type Format struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// ReadWAV reads up to capacity frames of one channel (or Downmix) into a
// sealed fixed-capacity buffer, scaled to [-1, 1). A recording shorter than
// capacity leaves the buffer short; Len reports how many samples arrived.
func ReadWAV(r io.ReadSeeker, capacity, channel int) (*buffer.Fixed[float32], Format, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, Format{}, ErrInvalidWAV
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, Format{}, fmt.Errorf("%w: %w", ErrInvalidWAV, err)
	}

	format := Format{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   int(dec.BitDepth),
	}

	if format.Channels <= 0 {
		return nil, format, fmt.Errorf("%w: no channels", ErrInvalidWAV)
	}

	if channel != Downmix && (channel < 0 || channel >= format.Channels) {
		return nil, format, fmt.Errorf("%w: %d of %d", ErrInvalidChannel, channel, format.Channels)
	}

	out := buffer.New[float32](capacity)
	scale := 1 / float64(audio.IntMaxSignedValue(format.BitDepth))

	chunk := &audio.IntBuffer{
		Data:   make([]int, chunkFrames*format.Channels),
		Format: &audio.Format{NumChannels: format.Channels, SampleRate: format.SampleRate},
	}

	for !out.Full() {
		n, err := dec.PCMBuffer(chunk)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, format, fmt.Errorf("acquire: read PCM: %w", err)
		}

		frames := n / format.Channels
		if frames == 0 {
			break
		}

		for i := 0; i < frames && !out.Full(); i++ {
			frame := chunk.Data[i*format.Channels : (i+1)*format.Channels]
			_ = out.Append(float32(pick(frame, channel) * scale))
		}
	}

	out.Seal()

	return out, format, nil
}

func pick(frame []int, channel int) float64 {
	if channel != Downmix {
		return float64(frame[channel])
	}

	sum := 0
	for _, v := range frame {
		sum += v
	}

	return float64(sum) / float64(len(frame))
}

// WriteWAV encodes mono samples in [-1, 1] as integer PCM. Values outside
// the range are clipped.
func WriteWAV(w io.WriteSeeker, samples []float32, sampleRate, bitDepth int) error {
	peak := float64(audio.IntMaxSignedValue(bitDepth))

	data := make([]int, len(samples))
	for i, v := range samples {
		data[i] = int(core.Clamp(float64(v), -1, 1) * peak)
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, 1, 1)

	buf := &audio.IntBuffer{
		Data:           data,
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("acquire: encode: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("acquire: finalize: %w", err)
	}

	return nil
}
