// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) encoding and
// decoding on top of github.com/go-audio/aiff.
//
// Encode is the alternate container for rendered stems. It applies the same
// 16-bit quantization as the WAVE encoder, so the two only differ in
// framing (big-endian samples, FORM/COMM/SSND chunks).
//
//	data, err := aiff.Encode(buf.Data, 44100, 1)
//
// Decoder reads 16-bit PCM AIFF of any channel count and sample rate into
// an audio.Source with samples in [-1,1]. Input that does not implement
// io.Seeker is buffered in memory first.
package aiff
