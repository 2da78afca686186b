// SPDX-License-Identifier: EPL-2.0

package midi

import (
	"bytes"
	"cmp"
	"fmt"
	"math"
	"slices"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/ik5/beatgen/pattern"
)

// Resolution in ticks per quarter note. One step is one quarter.
const Resolution = 480

// General MIDI percussion keys.
const (
	drumChannel = 9

	KeyKick      = 36
	KeySnare     = 38
	KeyClosedHat = 42
	KeyOpenHat   = 46
)

var channels = map[pattern.Stem]uint8{
	pattern.StemDrums:  drumChannel,
	pattern.StemBass:   0,
	pattern.StemChords: 1,
	pattern.StemMelody: 2,
}

// Stems lists the stems exported, in track order.
var Stems = []pattern.Stem{pattern.StemDrums, pattern.StemBass, pattern.StemChords, pattern.StemMelody}

type note struct {
	tick uint32
	on   bool
	ch   uint8
	key  uint8
	vel  uint8
}

// Encode writes set as a Standard MIDI File at tempo beats per minute.
func Encode(set pattern.Set, tempo int) ([]byte, error) {
	if tempo <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTempo, tempo)
	}

	clock := smf.MetricTicks(Resolution)
	step := clock.Ticks4th()

	s := smf.New()
	s.TimeFormat = clock

	var conductor smf.Track
	conductor.Add(0, smf.MetaTrackSequenceName("beatgen"))
	conductor.Add(0, smf.MetaMeter(pattern.BeatsPerBar, 4))
	conductor.Add(0, smf.MetaTempo(float64(tempo)))
	conductor.Close(0)
	if err := s.Add(conductor); err != nil {
		return nil, fmt.Errorf("add conductor track: %w", err)
	}

	for _, stem := range Stems {
		p, ok := set[stem]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingPattern, stem)
		}
		if p.Len() != pattern.Length {
			return nil, fmt.Errorf("%w: %s has %d", ErrInvalidPattern, stem, p.Len())
		}

		tr := track(stem, notes(p, channels[stem], step))
		if err := s.Add(tr); err != nil {
			return nil, fmt.Errorf("add %s track: %w", stem, err)
		}
	}

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write smf: %w", err)
	}

	return buf.Bytes(), nil
}

func notes(p pattern.Pattern, ch uint8, step uint32) []note {
	var out []note

	add := func(at, length uint32, key, vel uint8) {
		out = append(out,
			note{tick: at, on: true, ch: ch, key: key, vel: vel},
			note{tick: at + length, ch: ch, key: key},
		)
	}

	for i, s := range p.Steps {
		if !s.Active {
			continue
		}
		at := uint32(i) * step
		vel := Velocity(s.Velocity)

		switch p.Stem {
		case pattern.StemDrums:
			hit := step / 4
			if s.Hits.Has(pattern.HitKick) {
				add(at, hit, KeyKick, vel)
			}
			if s.Hits.Has(pattern.HitSnare) {
				add(at, hit, KeySnare, vel)
			}
			switch {
			case s.Hits.Has(pattern.HitOpenHat):
				add(at, step/2, KeyOpenHat, vel)
			case s.Hits.Has(pattern.HitHat):
				add(at, hit, KeyClosedHat, vel)
			}
		case pattern.StemChords:
			for _, r := range s.Chord.Tones() {
				add(at, step*pattern.StepsPerBar, Key(s.Freq*r), vel)
			}
		default:
			add(at, step, Key(s.Freq), vel)
		}
	}

	// offs sort before ons on the same tick so repeated keys retrigger
	slices.SortStableFunc(out, func(a, b note) int {
		if c := cmp.Compare(a.tick, b.tick); c != 0 {
			return c
		}
		switch {
		case a.on == b.on:
			return 0
		case a.on:
			return 1
		default:
			return -1
		}
	})

	return out
}

func track(stem pattern.Stem, ns []note) smf.Track {
	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(string(stem)))

	var last uint32
	for _, n := range ns {
		msg := gomidi.NoteOff(n.ch, n.key)
		if n.on {
			msg = gomidi.NoteOn(n.ch, n.key, n.vel)
		}
		tr.Add(n.tick-last, msg)
		last = n.tick
	}

	tr.Close(0)
	return tr
}

// Key converts a frequency to the nearest MIDI key, A4 = 440 Hz = 69.
func Key(freq float64) uint8 {
	if !(freq > 0) || math.IsInf(freq, 0) {
		return 0
	}
	k := math.Round(69 + 12*math.Log2(freq/440))
	return uint8(max(0, min(127, k)))
}

// Velocity maps [0,1] to a MIDI velocity in [1,127].
func Velocity(v float64) uint8 {
	return uint8(max(1, min(127, math.Round(v*127))))
}
