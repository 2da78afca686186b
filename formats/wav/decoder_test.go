// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/beatgen/audio"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, rate := range []int{22050, 44100, 48000} {
		for _, channels := range []int{1, 2} {
			frames := rate / 10
			in := make([]float32, frames*channels)
			for i := range in {
				in[i] = float32(math.Sin(float64(i)*0.01)) * 0.9
			}

			data, err := Encode(in, rate, channels, 16)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}

			src, err := Decoder{}.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if src.SampleRate() != rate || src.Channels() != channels {
				t.Errorf("decoded %d Hz %d ch, want %d Hz %d ch", src.SampleRate(), src.Channels(), rate, channels)
			}

			out, err := audio.ReadAll(src, 1024)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			if len(out.Data) != len(in) {
				t.Fatalf("%d Hz %d ch: decoded %d samples, want %d", rate, channels, len(out.Data), len(in))
			}
			for i := range in {
				if math.Abs(float64(out.Data[i]-in[i])) > 1.0/16384 {
					t.Fatalf("sample %d = %v, want ≈%v", i, out.Data[i], in[i])
				}
			}
		}
	}
}

// plainReader hides bytes.Reader's Seek so the buffering path is used.
type plainReader struct{ r io.Reader }

func (p plainReader) Read(b []byte) (int, error) { return p.r.Read(b) }

func TestDecodeNonSeeker(t *testing.T) {
	t.Parallel()

	data, err := Encode([]float32{0.25, -0.25, 0.5, -0.5}, 8000, 2, 16)
	if err != nil {
		t.Fatal(err)
	}

	src, err := Decoder{}.Decode(plainReader{bytes.NewReader(data)})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
}

func TestDecodeRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{name: "empty", data: nil, want: ErrNotWavFile},
		{name: "text", data: []byte("this is not audio at all, just some bytes to read"), want: ErrNotWavFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(tt.data)); !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}
