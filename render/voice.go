// SPDX-License-Identifier: EPL-2.0

package render

import (
	"fmt"

	"github.com/ik5/beatgen/pattern"
	"github.com/ik5/beatgen/synth"
)

// Stem levels.
const (
	kickLevel  = 1.0
	snareLevel = 0.8
	hatLevel   = 0.35
	bassLevel  = 0.8
	padLevel   = 0.7
	leadLevel  = 0.6
	fxLevel    = 0.9
)

// voice plays one pattern sample by sample. Noise generators advance on
// every call so the output depends only on the seed and the sample index.
type voice struct {
	p       pattern.Pattern
	tempo   int
	stepDur float64
	total   float64

	white *synth.NoiseGen
	hiss  *synth.NoiseGen
}

func newVoice(p pattern.Pattern, tempo int, total float64, rng synth.Rand) (*voice, error) {
	if p.Len() != pattern.Length {
		return nil, fmt.Errorf("%w: %s has %d steps", ErrInvalidPattern, p.Stem, p.Len())
	}

	v := &voice{p: p, tempo: tempo, stepDur: StepDuration(tempo), total: total}

	switch p.Stem {
	case pattern.StemDrums, pattern.StemFX:
		if rng == nil {
			return nil, fmt.Errorf("%w: %s needs noise", ErrNilRand, p.Stem)
		}
		v.white = synth.NewNoiseGen(rng, false)
		v.hiss = synth.NewNoiseGen(rng, true)
	case pattern.StemBass, pattern.StemChords, pattern.StemMelody:
	default:
		return nil, fmt.Errorf("%w: stem %q", ErrInvalidPattern, p.Stem)
	}

	return v, nil
}

// hold is how many steps an event of this voice rings for.
func (v *voice) hold() int {
	if v.p.Stem == pattern.StemChords {
		return pattern.StepsPerBar
	}
	return 1
}

func (v *voice) at(t float64) float64 {
	var white, hiss float64
	if v.white != nil {
		white, hiss = v.white.Next(), v.hiss.Next()
	}

	step, off := StepAt(t, v.tempo)
	s, start, ok := v.p.Sounding(step, v.hold())

	var dt float64
	if ok {
		dt = t - float64(start)*v.stepDur
	}

	switch v.p.Stem {
	case pattern.StemDrums:
		if !ok {
			return 0
		}
		return drumHit(s, dt, white, hiss)
	case pattern.StemBass:
		if !ok {
			return 0
		}
		return synth.Note(synth.ShapeSine, s.Freq, dt, v.stepDur, s.Velocity) * bassLevel
	case pattern.StemChords:
		if !ok {
			return 0
		}
		return synth.Pad(s.Freq, s.Chord.Tones(), dt, v.stepDur*pattern.StepsPerBar, s.Velocity) * padLevel
	case pattern.StemMelody:
		if !ok {
			return 0
		}
		return synth.Note(synth.ShapeTriangle, s.Freq, dt, v.stepDur, s.Velocity) * leadLevel
	case pattern.StemFX:
		return v.fx(t, step, off, white) * fxLevel
	}

	return 0
}

func drumHit(s pattern.Step, dt, white, hiss float64) float64 {
	out := 0.0
	if s.Hits.Has(pattern.HitKick) {
		out += synth.Kick(dt, s.Velocity) * kickLevel
	}
	if s.Hits.Has(pattern.HitSnare) {
		out += synth.Snare(dt, s.Velocity, white) * snareLevel
	}
	if s.Hits.Has(pattern.HitHat) || s.Hits.Has(pattern.HitOpenHat) {
		out += synth.Hat(dt, s.Velocity, s.Hits.Has(pattern.HitOpenHat), hiss) * hatLevel
	}
	return out
}

// fx plays every riser from its step to the end of the render, and impacts
// on their own step.
func (v *voice) fx(t float64, step int, off, white float64) float64 {
	out := 0.0
	for i, s := range v.p.Steps {
		if s.Event != pattern.EventRiser {
			continue
		}
		start := float64(i) * v.stepDur
		out += synth.Riser(t-start, v.total-start, s.Velocity)
	}

	if s := v.p.Steps[step]; s.Event == pattern.EventImpact {
		out += synth.Impact(off, s.Velocity, white)
	}

	return out
}
