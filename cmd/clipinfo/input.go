package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-spectrogram/dsp/resample"
)

var errUnsupportedWAV = errors.New("unsupported WAV format")

// loadClip reads path and converts WAV input recorded at another rate to
// sampleRate. Raw input is assumed to already be at sampleRate.
func loadClip(path string, sampleRate int, logger *slog.Logger) ([]int16, error) {
	pcm, rate, err := readPCM(path)
	if err != nil {
		return nil, err
	}

	if rate == 0 || rate == sampleRate {
		return pcm, nil
	}

	logger.Info("resampling input", "file", path, "from", rate, "to", sampleRate)

	return resample.Clip(pcm, rate, sampleRate)
}

// readPCM loads a mono 16-bit recording. Files ending in .wav are decoded,
// anything else is read as raw little-endian s16.
func readPCM(path string) ([]int16, int, error) {
	if strings.EqualFold(filepath.Ext(path), ".wav") {
		return readWAV(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("could not read file: %w", err)
	}

	if len(data)%2 != 0 {
		return nil, 0, fmt.Errorf("raw PCM %s has odd length %d", path, len(data))
	}

	pcm := make([]int16, len(data)/2)
	for i := range pcm {
		pcm[i] = int16(binary.LittleEndian.Uint16(data[2*i:]))
	}

	return pcm, 0, nil
}

func readWAV(path string) ([]int16, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("could not open file: %w", err)
	}
	defer file.Close()

	decoder := wav.NewDecoder(file)
	if !decoder.IsValidFile() {
		return nil, 0, errors.New("invalid WAV file")
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("could not read PCM buffer: %w", err)
	}

	if buf.Format.NumChannels != 1 {
		return nil, 0, fmt.Errorf("%w: expected mono, got %dch", errUnsupportedWAV, buf.Format.NumChannels)
	}

	if buf.SourceBitDepth != 16 {
		return nil, 0, fmt.Errorf("%w: expected 16-bit, got %d-bit", errUnsupportedWAV, buf.SourceBitDepth)
	}

	pcm := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		pcm[i] = int16(v)
	}

	return pcm, buf.Format.SampleRate, nil
}

// writeWAV stores pcm as a mono 16-bit WAV file.
func writeWAV(path string, pcm []int16, sampleRate int) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	data := make([]int, len(pcm))
	for i, v := range pcm {
		data[i] = int(v)
	}

	encoder := wav.NewEncoder(file, sampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("could not write PCM: %w", err)
	}

	return encoder.Close()
}

func synthTone(freqHz, amplitude float64, sampleRate, n int) []int16 {
	pcm := make([]int16, n)
	for i := range pcm {
		v := amplitude * math.Sin(2*math.Pi*freqHz*float64(i)/float64(sampleRate))
		pcm[i] = int16(math.Max(math.MinInt16, math.Min(math.MaxInt16, math.Round(v))))
	}
	return pcm
}

// fitClip truncates or zero-pads pcm to n samples.
func fitClip(pcm []int16, n int) []int16 {
	if len(pcm) == n {
		return pcm
	}

	out := make([]int16, n)
	copy(out, pcm)

	return out
}

// splitClips cuts pcm into consecutive n-sample clips, zero-padding the tail.
func splitClips(pcm []int16, n int) [][]int16 {
	var clips [][]int16
	for start := 0; start < len(pcm); start += n {
		clips = append(clips, fitClip(pcm[start:min(start+n, len(pcm))], n))
	}
	return clips
}
