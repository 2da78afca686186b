// SPDX-License-Identifier: EPL-2.0

package render

import (
	"fmt"
	"math"

	"github.com/ik5/beatgen/audio"
	"github.com/ik5/beatgen/pattern"
	"github.com/ik5/beatgen/synth"
)

// FadeFraction of the buffer is faded in at the start and out at the end.
const FadeFraction = 0.02

// Stem renders one pattern to a mono buffer of NumSamples(duration,
// sampleRate) samples. rng feeds the noise of drum and fx voices and may be
// nil for the pitched stems.
func Stem(p pattern.Pattern, tempo int, duration float64, sampleRate int, rng synth.Rand) (*audio.Buffer, error) {
	if err := check(tempo, duration, sampleRate); err != nil {
		return nil, err
	}

	v, err := newVoice(p, tempo, duration, rng)
	if err != nil {
		return nil, err
	}

	buf, err := audio.NewBuffer(NumSamples(duration, sampleRate), sampleRate)
	if err != nil {
		return nil, err
	}

	rate := float64(sampleRate)
	for i := range buf.Data {
		buf.Data[i] = float32(v.at(float64(i) / rate))
	}

	finish(buf)

	return buf, nil
}

func check(tempo int, duration float64, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	if tempo <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTempo, tempo)
	}
	if !(duration > 0) || math.IsInf(duration, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidDuration, duration)
	}
	return nil
}

// finish coerces non-finite samples to silence, clamps, and applies the
// boundary fade.
func finish(buf *audio.Buffer) {
	buf.Sanitize()
	synth.Envelope(buf.Data, FadeFraction, FadeFraction)
}
