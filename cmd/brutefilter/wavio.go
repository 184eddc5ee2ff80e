package main

import (
	"fmt"
	"os"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

const wavChunk = 512

// readWAV decodes a WAV file and mixes it down to mono.
func readWAV(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	s, format, err := wav.Decode(f)
	if err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", path, err)
	}
	defer s.Close()

	var (
		out []float64
		buf = make([][2]float64, wavChunk)
	)

	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			if format.NumChannels == 1 {
				out = append(out, frame[0])
			} else {
				out = append(out, (frame[0]+frame[1])/2)
			}
		}
		if !ok {
			break
		}
	}

	if err := s.Err(); err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", path, err)
	}

	return out, int(format.SampleRate), nil
}

// monoStreamer plays data on both channels once.
func monoStreamer(data []float64) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= len(data) {
			return 0, false
		}

		n := copy2(samples, data[pos:])
		pos += n
		return n, true
	})
}

func copy2(dst [][2]float64, src []float64) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i][0] = src[i]
		dst[i][1] = src[i]
	}
	return n
}

// writeWAV encodes data as a 16-bit mono WAV file.
func writeWAV(path string, data []float64, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(sampleRate),
		NumChannels: 1,
		Precision:   2,
	}

	if err := wav.Encode(f, monoStreamer(data), format); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return f.Close()
}
