// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/beatgen/utils"
)

// HeaderSize is the length of the canonical RIFF/WAVE header.
const HeaderSize = 44

const (
	formatPCM  = 1
	fmtSize    = 16
	chunkLimit = math.MaxUint32 - (HeaderSize - 8)
)

// Header builds the canonical 44 byte header for dataSize bytes of PCM.
func Header(sampleRate, channels, bitsPerSample int, dataSize uint32) [HeaderSize]byte {
	var h [HeaderSize]byte

	blockAlign := channels * bitsPerSample / 8

	copy(h[0:4], "RIFF")
	binary.LittleEndian.PutUint32(h[4:8], 36+dataSize)
	copy(h[8:12], "WAVE")

	copy(h[12:16], "fmt ")
	binary.LittleEndian.PutUint32(h[16:20], fmtSize)
	binary.LittleEndian.PutUint16(h[20:22], formatPCM)
	binary.LittleEndian.PutUint16(h[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(h[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(h[28:32], uint32(sampleRate*blockAlign))
	binary.LittleEndian.PutUint16(h[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(h[34:36], uint16(bitsPerSample))

	copy(h[36:40], "data")
	binary.LittleEndian.PutUint32(h[40:44], dataSize)

	return h
}

func validate(sampleRate, channels, bitsPerSample, samples int) error {
	if sampleRate <= 0 || uint64(sampleRate) > math.MaxUint32 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	if channels <= 0 || channels > math.MaxUint16 {
		return fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}
	if bitsPerSample != 16 {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitsPerSample)
	}
	if samples%channels != 0 {
		return fmt.Errorf("%w: %d samples, %d channels", ErrPartialFrame, samples, channels)
	}
	if uint64(sampleRate)*uint64(channels)*2 > math.MaxUint32 {
		return fmt.Errorf("%w: byte rate of %d Hz × %d channels", ErrInvalidSampleRate, sampleRate, channels)
	}
	if uint64(samples)*2 > chunkLimit {
		return fmt.Errorf("%w: %d samples", ErrDataTooLarge, samples)
	}
	return nil
}

// Encode quantizes interleaved float samples to 16-bit PCM and returns a
// complete WAVE file. Samples are clamped to [-1,1] and NaN or infinite
// values are written as silence. Invalid arguments fail before any output
// is produced.
func Encode(samples []float32, sampleRate, channels, bitsPerSample int) ([]byte, error) {
	if err := validate(sampleRate, channels, bitsPerSample, len(samples)); err != nil {
		return nil, err
	}

	pcm := utils.Float32ToInt16Slice(make([]int16, len(samples)), samples)

	var buf bytes.Buffer
	buf.Grow(HeaderSize + 2*len(pcm))
	if err := writePCM16(&buf, sampleRate, channels, pcm); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WritePCM16 writes 16-bit PCM samples as a WAVE file.
func WritePCM16(w io.Writer, sampleRate, channels int, samples []int16) error {
	if err := validate(sampleRate, channels, 16, len(samples)); err != nil {
		return err
	}
	return writePCM16(w, sampleRate, channels, samples)
}

func writePCM16(w io.Writer, sampleRate, channels int, samples []int16) error {
	h := Header(sampleRate, channels, 16, uint32(len(samples)*2))
	if _, err := w.Write(h[:]); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	const chunkSize = 8192
	if len(samples) == 0 {
		return nil
	}

	buf := make([]byte, 2*min(len(samples), chunkSize))
	for i := 0; i < len(samples); i += chunkSize {
		chunk := samples[i:min(i+chunkSize, len(samples))]
		out := buf[:2*len(chunk)]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(out[2*j:], uint16(s))
		}

		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("write samples: %w", err)
		}
	}

	return nil
}
