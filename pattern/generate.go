// SPDX-License-Identifier: EPL-2.0

package pattern

import (
	"fmt"

	"github.com/ik5/beatgen/params"
	"github.com/ik5/beatgen/theory"
)

// Rand is the random source the melody is drawn from. *math/rand/v2.Rand
// satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

const (
	bassRootVelocity  = 0.9
	bassFifthVelocity = 0.7
	chordVelocity     = 0.6
	riserIntensity    = 0.3
	impactIntensity   = 0.8

	melodyDensity     = 0.4
	melodyMinVelocity = 0.5
	melodyVelRange    = 0.3

	// Octave shifts relative to the scale's root octave.
	bassOctave  = -2
	chordOctave = -1
)

// Generate builds the five stem patterns of req.
func Generate(req params.Request, rng Rand) (Set, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNilRand
	}

	scale, err := theory.ResolveScale(req.Key, theory.ModeForMood(req.Mood))
	if err != nil {
		return nil, fmt.Errorf("resolve scale: %w", err)
	}
	prog, err := theory.ResolveChordProgression(req.Mood)
	if err != nil {
		return nil, fmt.Errorf("resolve chords: %w", err)
	}

	return Set{
		StemDrums:  drums(),
		StemBass:   bass(scale),
		StemChords: chords(scale, prog),
		StemMelody: melody(scale, rng),
		StemFX:     fx(),
	}, nil
}

func drums() Pattern {
	p := newPattern(StemDrums)
	for i := range p.Steps {
		hits := HitHat
		if i%4 == 0 {
			hits |= HitKick
		}
		if i%4 == 2 {
			hits |= HitSnare
		}
		if i%8 == 7 {
			hits |= HitOpenHat
		}
		p.Steps[i] = Step{Active: true, Velocity: 1, Hits: hits}
	}
	return p
}

func bass(scale theory.Scale) Pattern {
	p := newPattern(StemBass)
	shift := octave(bassOctave)
	for i := range p.Steps {
		switch i % 4 {
		case 0:
			p.Steps[i] = Step{Active: true, Freq: scale.Freq(0) * shift, Velocity: bassRootVelocity}
		case 2:
			p.Steps[i] = Step{Active: true, Freq: scale.Freq(4) * shift, Velocity: bassFifthVelocity}
		}
	}
	return p
}

func chords(scale theory.Scale, prog theory.Progression) Pattern {
	p := newPattern(StemChords)
	shift := octave(chordOctave)
	for i := range p.Steps {
		if i%StepsPerBar != 0 {
			continue
		}
		c := prog.At(i / StepsPerBar)
		p.Steps[i] = Step{Active: true, Freq: c.Root(scale) * shift, Velocity: chordVelocity, Chord: c}
	}
	return p
}

func melody(scale theory.Scale, rng Rand) Pattern {
	p := newPattern(StemMelody)
	for i := range p.Steps {
		if rng.Float64() >= melodyDensity {
			continue
		}
		deg := rng.IntN(theory.ScaleDegrees)
		vel := melodyMinVelocity + rng.Float64()*melodyVelRange
		p.Steps[i] = Step{Active: true, Freq: scale.Freq(deg), Velocity: vel}
	}
	return p
}

func fx() Pattern {
	p := newPattern(StemFX)
	p.Steps[0] = Step{Active: true, Velocity: riserIntensity, Event: EventRiser}
	p.Steps[Length-1] = Step{Active: true, Velocity: impactIntensity, Event: EventImpact}
	return p
}

func octave(n int) float64 {
	f := 1.0
	for ; n < 0; n++ {
		f /= 2
	}
	for ; n > 0; n-- {
		f *= 2
	}
	return f
}
