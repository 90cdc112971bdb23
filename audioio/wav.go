package audioio

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-eq/dsp/core"
)

// Info summarizes a WAV file header without materializing its samples.
type Info struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Duration   time.Duration
}

// Load reads a WAV file and returns its samples as mono float64 in [-1, 1]
// together with the sample rate. Multi-channel files are downmixed by
// averaging the channels of each frame.
func Load(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open wav: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("%w: %s", ErrInvalidFile, path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("decode wav: %w", err)
	}
	if len(buf.Data) == 0 {
		return nil, 0, fmt.Errorf("%w: %s", ErrNoSamples, path)
	}

	bitDepth := int(dec.BitDepth)
	if buf.SourceBitDepth > 0 {
		bitDepth = buf.SourceBitDepth
	}
	scale := 1.0 / float64(int64(1)<<(bitDepth-1))

	samples := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = float64(v) * scale
	}

	channels := buf.Format.NumChannels
	if channels > 1 {
		samples = ToMono(samples, channels)
	}
	return samples, buf.Format.SampleRate, nil
}

// Save writes mono samples as a 16-bit PCM WAV file. Samples with a peak
// above 1.0 are scaled down to peak at 1.0 first so the quantizer never
// clips; in-range signals are written as-is.
func Save(path string, samples []float64, sampleRate int) error {
	if len(samples) == 0 {
		return ErrNoSamples
	}
	if sampleRate <= 0 {
		return fmt.Errorf("invalid sample rate %d", sampleRate)
	}

	peak := 0.0
	for _, v := range samples {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	gain := 1.0
	if peak > 1.0 {
		gain = 1.0 / peak
	}

	data := make([]int, len(samples))
	for i, v := range samples {
		data[i] = int(math.Round(core.Clamp(v*gain, -1, 1) * 32767))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create wav: %w", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize wav: %w", err)
	}
	return nil
}

// ToMono downmixes interleaved multi-channel samples by averaging each
// frame. A trailing partial frame is dropped. For channels <= 1 the input
// is returned unchanged.
func ToMono(interleaved []float64, channels int) []float64 {
	if channels <= 1 {
		return interleaved
	}
	frames := len(interleaved) / channels
	mono := make([]float64, frames)
	inv := 1.0 / float64(channels)
	for i := 0; i < frames; i++ {
		sum := 0.0
		for c := 0; c < channels; c++ {
			sum += interleaved[i*channels+c]
		}
		mono[i] = sum * inv
	}
	return mono
}

// ReadInfo reports the format of a WAV file without decoding its samples.
func ReadInfo(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("open wav: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return Info{}, fmt.Errorf("%w: %s", ErrInvalidFile, path)
	}
	dur, err := dec.Duration()
	if err != nil {
		return Info{}, fmt.Errorf("read wav header: %w", err)
	}
	return Info{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   int(dec.BitDepth),
		Duration:   dur,
	}, nil
}
