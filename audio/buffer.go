// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"
	"time"
)

// Buffer is an in-memory block of interleaved float32 samples.
type Buffer struct {
	Data       []float32
	SampleRate int
	Channels   int
}

// NewBuffer allocates a zeroed mono buffer of n samples.
func NewBuffer(n, sampleRate int) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	if n < 0 {
		n = 0
	}

	return &Buffer{Data: make([]float32, n), SampleRate: sampleRate, Channels: 1}, nil
}

// Frames is the number of sample frames held.
func (b *Buffer) Frames() int {
	if b.Channels <= 0 {
		return 0
	}
	return len(b.Data) / b.Channels
}

func (b *Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(b.Frames()) / float64(b.SampleRate) * float64(time.Second))
}

// Sanitize replaces NaN and infinite samples with silence and clamps the
// rest to [-1,1]. It returns how many samples were replaced.
func (b *Buffer) Sanitize() int {
	bad := 0
	for i, v := range b.Data {
		f := float64(v)
		switch {
		case math.IsNaN(f) || math.IsInf(f, 0):
			b.Data[i] = 0
			bad++
		case v > 1:
			b.Data[i] = 1
		case v < -1:
			b.Data[i] = -1
		}
	}
	return bad
}

// Source streams the buffer. The buffer must not be modified while the
// returned source is being read.
func (b *Buffer) Source() *BufferSource {
	return &BufferSource{buf: b}
}

// BufferSource adapts a Buffer to the Source interface.
type BufferSource struct {
	buf *Buffer
	pos int
}

func (s *BufferSource) SampleRate() int { return s.buf.SampleRate }
func (s *BufferSource) Channels() int   { return s.buf.Channels }
func (s *BufferSource) BufSize() int    { return 4096 }
func (s *BufferSource) Close() error    { return nil }

func (s *BufferSource) ReadSamples(dst []float32) (int, error) {
	ch := s.buf.Channels
	if ch <= 0 {
		return 0, ErrInvalidChannels
	}
	if s.pos >= len(s.buf.Data) {
		return 0, io.EOF
	}

	// whole frames only
	want := len(dst) - len(dst)%ch
	n := copy(dst[:want], s.buf.Data[s.pos:])
	s.pos += n

	if s.pos >= len(s.buf.Data) {
		return n, io.EOF
	}
	return n, nil
}

// ReadAll drains src into a new Buffer, reading bufSize values at a time.
func ReadAll(src Source, bufSize int) (*Buffer, error) {
	ch := src.Channels()
	if ch <= 0 {
		return nil, ErrInvalidChannels
	}
	if bufSize < ch {
		bufSize = src.BufSize()
	}
	bufSize -= bufSize % ch
	if bufSize <= 0 {
		bufSize = 4096 * ch
	}

	out := &Buffer{SampleRate: src.SampleRate(), Channels: ch}
	tmp := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(tmp)
		out.Data = append(out.Data, tmp[:n]...)

		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read samples: %w", err)
		}
		if n == 0 {
			return nil, io.ErrNoProgress
		}
	}
}
