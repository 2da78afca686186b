// SPDX-License-Identifier: EPL-2.0

// Package wav writes and reads RIFF/WAVE files.
//
// Encode produces the canonical layout: a 44 byte header (RIFF, fmt with
// PCM format 1, data) followed by little-endian 16-bit samples. All fields
// are little-endian; the RIFF size is 36 plus the data size. Arguments are
// checked before anything is written, so a failed call never leaves a
// truncated file behind.
//
//	data, err := wav.Encode(buf.Data, 44100, 1, 16)
//
// Decoder goes the other way through github.com/go-audio/wav and yields an
// audio.Source, which is how rendered stems are inspected and previewed.
package wav
