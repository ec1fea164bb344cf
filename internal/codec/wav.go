package codec

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	epicycles "github.com/tphakala/go-epicycles"
)

// WAV format constants.
const (
	monoChannels   = 1
	stereoChannels = 2

	exportBitDepth = 16 // Paths are exported as 16-bit PCM
	pcmAudioFormat = 1  // WAV AudioFormat tag for linear PCM

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0
)

// ReadPathWAV loads a path from a WAV file, mapping the left channel to the
// real axis and the right channel to the imaginary axis. Mono files trace
// along the real axis only. Samples are normalized to [-1, 1] by the file's
// bit depth. Returns the path and the file's sample rate.
//
// Drawings are at most a few thousand points, so the file is decoded in one
// read rather than streamed.
func ReadPathWAV(filename string) ([]complex128, int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s", ErrMissingFile, filename)
	}
	defer func() { _ = f.Close() }()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("%w: %s", ErrInvalidFile, filename)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s", ErrInvalidFile, filename)
	}

	channels := buf.Format.NumChannels
	if channels != monoChannels && channels != stereoChannels {
		return nil, 0, fmt.Errorf("%w: %s has %d channels, want mono or stereo",
			ErrInvalidFile, filename, channels)
	}

	scale := 1.0 / maxSampleValue(int(dec.BitDepth))
	frames := len(buf.Data) / channels
	path := make([]complex128, frames)
	if channels == monoChannels {
		for i := range frames {
			path[i] = complex(float64(buf.Data[i])*scale, 0)
		}
	} else {
		for i := range frames {
			re := float64(buf.Data[i*stereoChannels]) * scale
			im := float64(buf.Data[i*stereoChannels+1]) * scale
			path[i] = complex(re, im)
		}
	}
	return path, buf.Format.SampleRate, nil
}

// WritePathWAV saves a path as a 16-bit stereo WAV file with the real axis
// on the left channel and the imaginary axis on the right. The path is
// peak-normalized to full scale, so reconstructed drawings of any size
// survive the trip through integer samples.
func WritePathWAV(filename string, path []complex128, sampleRate int) error {
	xs, ys := epicycles.SplitPath(path)
	scale := float64(maxInt16)
	if peak := pathPeak(xs, ys); peak > 0 {
		scale = maxInt16 / peak
	}
	epicycles.ScalePath(xs, ys, scale)

	interleaved := epicycles.InterleavePath(xs, ys)
	data := make([]int, len(interleaved))
	for i, v := range interleaved {
		data[i] = clampInt16(v)
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrMissingFile, filename)
	}

	enc := wav.NewEncoder(f, sampleRate, exportBitDepth, stereoChannels, pcmAudioFormat)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: stereoChannels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: exportBitDepth,
	}
	if err := enc.Write(buf); err != nil {
		_ = enc.Close()
		_ = f.Close()
		return fmt.Errorf("%w: %s", ErrInvalidFile, filename)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// maxSampleValue returns the full-scale sample value for a bit depth.
func maxSampleValue(bitDepth int) float64 {
	switch bitDepth {
	case 24:
		return maxInt24
	case 32:
		return maxInt32
	default:
		return maxInt16
	}
}

// pathPeak returns the largest coordinate magnitude on either axis.
func pathPeak(xs, ys []float64) float64 {
	var peak float64
	for i := range xs {
		peak = max(peak, math.Abs(xs[i]), math.Abs(ys[i]))
	}
	return peak
}

// clampInt16 rounds to the nearest sample value inside the symmetric
// 16-bit range.
func clampInt16(v float64) int {
	r := math.Round(v)
	if r > maxInt16 {
		r = maxInt16
	} else if r < -maxInt16 {
		r = -maxInt16
	}
	return int(r)
}
