// SPDX-License-Identifier: EPL-2.0

package beatgen

import (
	"fmt"
	"log/slog"
	"strings"
)

// Format selects the container stems are encoded in.
type Format string

const (
	FormatWAV  Format = "wav"
	FormatAIFF Format = "aiff"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatWAV, FormatAIFF:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Ext is the file extension without the dot.
func (f Format) Ext() string { return string(f) }

type Option func(*Engine)

// WithSampleRate sets the output rate in Hz. The default is 44100.
func WithSampleRate(rate int) Option {
	return func(e *Engine) { e.sampleRate = rate }
}

// WithSeed fixes the random seed so renders are reproducible.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.seed = seed
		e.seeded = true
	}
}

// WithProgress registers fn to be called with the completion percentage
// after each stem.
func WithProgress(fn func(percent int)) Option {
	return func(e *Engine) { e.progress = fn }
}

func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

func WithFormat(f Format) Option {
	return func(e *Engine) { e.format = f }
}

// WithPreview adds a full mix preview resampled to rate. 0 disables it.
func WithPreview(rate int) Option {
	return func(e *Engine) { e.previewRate = rate }
}

// WithWaveform sets how many peak values each artifact's Waveform holds.
// 0 disables waveform data.
func WithWaveform(points int) Option {
	return func(e *Engine) { e.waveformPoints = max(0, points) }
}
