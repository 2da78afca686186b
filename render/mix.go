// SPDX-License-Identifier: EPL-2.0

package render

import (
	"fmt"
	"math"

	"github.com/ik5/beatgen/audio"
	"github.com/ik5/beatgen/pattern"
	"github.com/ik5/beatgen/synth"
)

// Mix levels of the stems that make up the full mix.
var mixLevels = []struct {
	stem  pattern.Stem
	level float64
}{
	{pattern.StemDrums, 0.6},
	{pattern.StemBass, 0.5},
	{pattern.StemChords, 0.4},
}

// SoftLimit is the master limiter, tanh(1.5x)·0.8. Its output never leaves
// (-0.8, 0.8).
func SoftLimit(x float64) float64 {
	return math.Tanh(1.5*x) * 0.8
}

// FullMix renders drums, bass and chords from set together, summing them
// per sample and soft-limiting the sum. Melody and fx are not part of the
// mix.
func FullMix(set pattern.Set, tempo int, duration float64, sampleRate int, rng synth.Rand) (*audio.Buffer, error) {
	if err := check(tempo, duration, sampleRate); err != nil {
		return nil, err
	}

	voices := make([]*voice, len(mixLevels))
	for i, m := range mixLevels {
		p, ok := set[m.stem]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingPattern, m.stem)
		}
		v, err := newVoice(p, tempo, duration, rng)
		if err != nil {
			return nil, err
		}
		voices[i] = v
	}

	buf, err := audio.NewBuffer(NumSamples(duration, sampleRate), sampleRate)
	if err != nil {
		return nil, err
	}

	rate := float64(sampleRate)
	for i := range buf.Data {
		t := float64(i) / rate
		sum := 0.0
		for j, v := range voices {
			sum += v.at(t) * mixLevels[j].level
		}
		buf.Data[i] = float32(SoftLimit(sum))
	}

	finish(buf)

	return buf, nil
}
