// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"testing"

	"github.com/ik5/beatgen/internal/audiotest"
)

func TestMonoMixer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		want     func(frame int) float32
	}{
		{name: "mono passthrough", channels: 1, want: func(f int) float32 { return float32(f) / 64 }},
		{name: "stereo cancels", channels: 2, want: func(int) float32 { return 0 }},
		{name: "three channels", channels: 3, want: func(f int) float32 { return -float32(f) / 64 / 3 }},
		{name: "six channels", channels: 6, want: func(f int) float32 { return -float32(f) / 64 * 4 / 6 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := NewMonoMixer(audiotest.NewRampSource(8000, tt.channels, 64))
			if m.Channels() != 1 || m.SampleRate() != 8000 {
				t.Errorf("Channels() = %d, SampleRate() = %d", m.Channels(), m.SampleRate())
			}

			buf, err := ReadAll(m, 10)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			if buf.Frames() != 64 {
				t.Fatalf("Frames() = %d, want 64", buf.Frames())
			}
			for i, v := range buf.Data {
				if math.Abs(float64(v-tt.want(i))) > 1e-6 {
					t.Fatalf("frame %d = %v, want %v", i, v, tt.want(i))
				}
			}
		})
	}
}

func TestResampleMono(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(44100, 2, 44100, 220)
	buf, err := ResampleMono(src, 22050, 4096)
	if err != nil {
		t.Fatalf("ResampleMono() error = %v", err)
	}
	if buf.Channels != 1 || buf.SampleRate != 22050 {
		t.Errorf("got %d ch %d Hz", buf.Channels, buf.SampleRate)
	}
	if buf.Frames() < 22040 || buf.Frames() > 22050 {
		t.Errorf("Frames() = %d, want ≈22050", buf.Frames())
	}
	if p := Peak(buf.Data); p < 0.8 || p > 1.05 {
		t.Errorf("Peak() = %v, a 220 Hz tone should survive", p)
	}

	if _, err := ResampleMono(src, 0, 4096); err == nil {
		t.Error("ResampleMono(rate 0) should fail")
	}
}

func TestResampleToMono16(t *testing.T) {
	t.Parallel()

	pcm, rate, err := ResampleToMono16(audiotest.NewConstantSource(16000, 1, 1600, 1), 8000, 256)
	if err != nil {
		t.Fatalf("ResampleToMono16() error = %v", err)
	}
	if rate != 8000 {
		t.Errorf("rate = %d, want 8000", rate)
	}
	for i, v := range pcm {
		if v != 32767 {
			t.Fatalf("pcm[%d] = %d, want 32767", i, v)
		}
	}
}
