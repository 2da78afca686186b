// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func TestEncodeHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rate     int
		channels int
		samples  int
	}{
		{name: "mono 44.1k", rate: 44100, channels: 1, samples: 441},
		{name: "stereo 48k", rate: 48000, channels: 2, samples: 960},
		{name: "mono 22.05k", rate: 22050, channels: 1, samples: 3},
		{name: "empty", rate: 44100, channels: 1, samples: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := Encode(make([]float32, tt.samples), tt.rate, tt.channels, 16)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}

			dataSize := uint32(tt.samples * 2)
			if len(data) != HeaderSize+int(dataSize) {
				t.Fatalf("len = %d, want %d", len(data), HeaderSize+int(dataSize))
			}

			le := binary.LittleEndian
			checks := []struct {
				field string
				got   any
				want  any
			}{
				{"RIFF", string(data[0:4]), "RIFF"},
				{"riff size", le.Uint32(data[4:8]), 36 + dataSize},
				{"WAVE", string(data[8:12]), "WAVE"},
				{"fmt", string(data[12:16]), "fmt "},
				{"fmt size", le.Uint32(data[16:20]), uint32(16)},
				{"format", le.Uint16(data[20:22]), uint16(1)},
				{"channels", le.Uint16(data[22:24]), uint16(tt.channels)},
				{"sample rate", le.Uint32(data[24:28]), uint32(tt.rate)},
				{"byte rate", le.Uint32(data[28:32]), uint32(tt.rate * tt.channels * 2)},
				{"block align", le.Uint16(data[32:34]), uint16(tt.channels * 2)},
				{"bits", le.Uint16(data[34:36]), uint16(16)},
				{"data", string(data[36:40]), "data"},
				{"data size", le.Uint32(data[40:44]), dataSize},
			}
			for _, c := range checks {
				if c.got != c.want {
					t.Errorf("%s = %v, want %v", c.field, c.got, c.want)
				}
			}
		})
	}
}

func TestEncodeQuantization(t *testing.T) {
	t.Parallel()

	in := []float32{0, 1, -1, 0.5, 2, -7, float32(math.NaN()), float32(math.Inf(-1))}
	want := []int16{0, 32767, -32767, 16384, 32767, -32767, 0, 0}

	data, err := Encode(in, 8000, 1, 16)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	for i, w := range want {
		got := int16(binary.LittleEndian.Uint16(data[HeaderSize+2*i:]))
		if got != w {
			t.Errorf("sample %d = %d, want %d", i, got, w)
		}
	}
}

func TestEncodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		samples  int
		rate     int
		channels int
		bits     int
		want     error
	}{
		{name: "zero rate", samples: 2, rate: 0, channels: 1, bits: 16, want: ErrInvalidSampleRate},
		{name: "negative rate", samples: 2, rate: -44100, channels: 1, bits: 16, want: ErrInvalidSampleRate},
		{name: "zero channels", samples: 2, rate: 44100, channels: 0, bits: 16, want: ErrInvalidChannels},
		{name: "too many channels", samples: 2, rate: 44100, channels: 70000, bits: 16, want: ErrInvalidChannels},
		{name: "8 bit", samples: 2, rate: 44100, channels: 1, bits: 8, want: ErrUnsupportedBitDepth},
		{name: "24 bit", samples: 2, rate: 44100, channels: 1, bits: 24, want: ErrUnsupportedBitDepth},
		{name: "partial frame", samples: 3, rate: 44100, channels: 2, bits: 16, want: ErrPartialFrame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := Encode(make([]float32, tt.samples), tt.rate, tt.channels, tt.bits)
			if !errors.Is(err, tt.want) {
				t.Errorf("Encode() error = %v, want %v", err, tt.want)
			}
			if data != nil {
				t.Errorf("Encode() returned %d bytes on error", len(data))
			}
		})
	}
}

type countingWriter struct {
	n     int
	limit int
}

var errDiskFull = errors.New("disk full")

func (w *countingWriter) Write(p []byte) (int, error) {
	if w.n+len(p) > w.limit {
		return 0, errDiskFull
	}
	w.n += len(p)
	return len(p), nil
}

func TestWritePCM16(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 20000)
	for i := range samples {
		samples[i] = int16(i - 10000)
	}

	var buf bytes.Buffer
	if err := WritePCM16(&buf, 16000, 2, samples); err != nil {
		t.Fatalf("WritePCM16() error = %v", err)
	}
	if buf.Len() != HeaderSize+40000 {
		t.Errorf("len = %d, want %d", buf.Len(), HeaderSize+40000)
	}

	w := &countingWriter{limit: HeaderSize + 100}
	if err := WritePCM16(w, 16000, 2, samples); !errors.Is(err, errDiskFull) {
		t.Errorf("short writer error = %v, want errDiskFull", err)
	}

	w = &countingWriter{limit: 1 << 20}
	if err := WritePCM16(w, 16000, 2, samples[:3]); !errors.Is(err, ErrPartialFrame) || w.n != 0 {
		t.Errorf("partial frame: error = %v, wrote %d bytes", err, w.n)
	}
}

func BenchmarkEncode(b *testing.B) {
	samples := make([]float32, 44100*8)
	for i := range samples {
		samples[i] = float32(math.Sin(float64(i) / 10))
	}

	b.ReportAllocs()
	for b.Loop() {
		if _, err := Encode(samples, 44100, 1, 16); err != nil {
			b.Fatal(err)
		}
	}
}
