// SPDX-License-Identifier: EPL-2.0

package pattern

import (
	"strings"

	"github.com/ik5/beatgen/theory"
)

const (
	Bars        = 4
	StepsPerBar = 4
	BeatsPerBar = 4
	Length      = Bars * StepsPerBar
)

// Stem names one instrumental layer.
type Stem string

const (
	StemDrums  Stem = "drums"
	StemBass   Stem = "bass"
	StemChords Stem = "chords"
	StemMelody Stem = "melody"
	StemFX     Stem = "fx"
	// StemFull is the mixed arrangement. It has no pattern of its own.
	StemFull Stem = "full"
)

var patternStems = []Stem{StemDrums, StemBass, StemChords, StemMelody, StemFX}

// Stems returns every stem in render order, full mix last.
func Stems() []Stem {
	return append(PatternStems(), StemFull)
}

// PatternStems returns the stems that are generated from a pattern.
func PatternStems() []Stem {
	return append([]Stem(nil), patternStems...)
}

func (s Stem) String() string { return string(s) }

// Hit is a bitmask of drum voices triggered on a step.
type Hit uint8

const (
	HitKick Hit = 1 << iota
	HitSnare
	HitHat
	HitOpenHat
)

func (h Hit) Has(x Hit) bool { return h&x != 0 }

// Event is an fx articulation.
type Event uint8

const (
	EventNone Event = iota
	EventRiser
	EventImpact
)

func (e Event) String() string {
	switch e {
	case EventRiser:
		return "riser"
	case EventImpact:
		return "impact"
	default:
		return "none"
	}
}

// Step is one beat of a pattern. A step with Active == false is a rest and
// its other fields are zero.
type Step struct {
	Active   bool
	Freq     float64
	Velocity float64

	Hits  Hit
	Chord theory.Chord
	Event Event
}

type Pattern struct {
	Stem  Stem
	Steps []Step
}

func newPattern(stem Stem) Pattern {
	return Pattern{Stem: stem, Steps: make([]Step, Length)}
}

func (p Pattern) Len() int { return len(p.Steps) }

// Sounding returns the active step that is still ringing at step when every
// event lasts hold steps, together with the index it started on.
func (p Pattern) Sounding(step, hold int) (Step, int, bool) {
	if step < 0 || step >= len(p.Steps) {
		return Step{}, 0, false
	}
	for s := step; s >= 0 && s > step-hold; s-- {
		if p.Steps[s].Active {
			return p.Steps[s], s, true
		}
	}
	return Step{}, 0, false
}

// Grid renders the pattern as one character per step, 'x' for an event and
// '.' for a rest.
func (p Pattern) Grid() string {
	var b strings.Builder
	b.Grow(len(p.Steps))
	for _, s := range p.Steps {
		if s.Active {
			b.WriteByte('x')
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// Set holds one pattern per stem of a render.
type Set map[Stem]Pattern
