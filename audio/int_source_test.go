// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// fakePCM stands in for the go-audio wav and aiff decoders.
type fakePCM struct {
	rate     int
	channels int
	samples  []int
	offset   int
	err      error
}

func (f *fakePCM) Format() *goaudio.Format {
	return &goaudio.Format{SampleRate: f.rate, NumChannels: f.channels}
}

func (f *fakePCM) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n := copy(buf.Data, f.samples[f.offset:])
	f.offset += n
	return n, nil
}

func TestIntSourceScaling(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bitDepth int
		in       int
		want     float32
	}{
		{name: "16 bit full scale", bitDepth: 16, in: -32768, want: -1},
		{name: "16 bit half", bitDepth: 16, in: 16384, want: 0.5},
		{name: "8 bit", bitDepth: 8, in: 64, want: 0.5},
		{name: "24 bit", bitDepth: 24, in: 4194304, want: 0.5},
		{name: "unknown depth falls back to 16", bitDepth: 12, in: 16384, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := NewIntSource(&fakePCM{rate: 8000, channels: 1, samples: []int{tt.in}}, tt.bitDepth)
			dst := make([]float32, 4)

			n, err := src.ReadSamples(dst)
			if n != 1 || err != io.EOF {
				t.Fatalf("ReadSamples() = %d, %v, want 1, EOF", n, err)
			}
			if dst[0] != tt.want {
				t.Errorf("sample = %v, want %v", dst[0], tt.want)
			}
		})
	}
}

func TestIntSourceStream(t *testing.T) {
	t.Parallel()

	samples := make([]int, 1000)
	src := NewIntSource(&fakePCM{rate: 22050, channels: 2, samples: samples}, 16)

	if src.SampleRate() != 22050 || src.Channels() != 2 || src.BitDepth() != 16 {
		t.Errorf("format = %d Hz %d ch %d bit", src.SampleRate(), src.Channels(), src.BitDepth())
	}

	buf, err := ReadAll(src, 128)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if buf.Frames() != 500 {
		t.Errorf("Frames() = %d, want 500", buf.Frames())
	}

	if n, err := src.ReadSamples(make([]float32, 8)); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after end = %d, %v", n, err)
	}
}

func TestIntSourceError(t *testing.T) {
	t.Parallel()

	src := NewIntSource(&fakePCM{rate: 8000, channels: 1, err: io.ErrUnexpectedEOF}, 16)
	if _, err := src.ReadSamples(make([]float32, 8)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want ErrUnexpectedEOF", err)
	}
}
