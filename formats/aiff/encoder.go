// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/beatgen/utils"
)

const bitDepth = 16

// Encode quantizes interleaved float samples to 16-bit PCM and returns a
// complete AIFF file. Quantization matches the WAVE encoder.
func Encode(samples []float32, sampleRate, channels int) ([]byte, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}
	if len(samples)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples, %d channels", ErrPartialFrame, len(samples), channels)
	}

	ints := make([]int, len(samples))
	for i, v := range samples {
		ints[i] = int(utils.Float32ToInt16(v))
	}

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           ints,
		SourceBitDepth: bitDepth,
	}

	out := &writeSeeker{}
	enc := goaiff.NewEncoder(out, sampleRate, bitDepth, channels)
	if err := enc.Write(buf); err != nil {
		return nil, fmt.Errorf("write aiff: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("close aiff encoder: %w", err)
	}

	return out.data, nil
}

// writeSeeker is an in-memory io.WriteSeeker; the encoder seeks back to
// patch chunk sizes on Close.
type writeSeeker struct {
	data []byte
	pos  int64
}

func (w *writeSeeker) Write(p []byte) (int, error) {
	end := w.pos + int64(len(p))
	if end > int64(len(w.data)) {
		if end > int64(cap(w.data)) {
			grown := make([]byte, end, max(end, 2*int64(cap(w.data))))
			copy(grown, w.data)
			w.data = grown
		} else {
			w.data = w.data[:end]
		}
	}

	copy(w.data[w.pos:], p)
	w.pos = end

	return len(p), nil
}

func (w *writeSeeker) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = w.pos + offset
	case io.SeekEnd:
		pos = int64(len(w.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if pos < 0 {
		return 0, fmt.Errorf("negative position %d", pos)
	}

	w.pos = pos
	return pos, nil
}
