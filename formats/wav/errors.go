// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrUnsupportedWavLayout  = errors.New("unsupported WAV layout")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")

	ErrInvalidSampleRate   = errors.New("sample rate must be positive")
	ErrInvalidChannels     = errors.New("channel count must be between 1 and 65535")
	ErrUnsupportedBitDepth = errors.New("only 16 bits per sample can be encoded")
	ErrPartialFrame        = errors.New("sample count is not a multiple of the channel count")
	ErrDataTooLarge        = errors.New("PCM data exceeds the 4 GiB RIFF limit")
)
