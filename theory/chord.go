// SPDX-License-Identifier: EPL-2.0

package theory

import (
	"fmt"
	"strings"
)

// Chord is a diatonic triad named by a roman numeral. Lower case numerals
// are minor.
type Chord struct {
	Symbol string
	Degree int
	Minor  bool
}

var numerals = map[string]int{"I": 0, "II": 1, "III": 2, "IV": 3, "V": 4, "VI": 5, "VII": 6}

var (
	majorTones = []float64{1.0, 1.25, 1.5}
	minorTones = []float64{1.0, 1.2, 1.5}
)

func ParseChord(symbol string) (Chord, error) {
	deg, ok := numerals[strings.ToUpper(symbol)]
	if !ok || symbol == "" {
		return Chord{}, fmt.Errorf("%w: %q", ErrUnknownChord, symbol)
	}
	return Chord{
		Symbol: symbol,
		Degree: deg,
		Minor:  symbol == strings.ToLower(symbol),
	}, nil
}

// Root returns the frequency of the chord root inside s.
func (c Chord) Root(s Scale) float64 { return s.Freq(c.Degree) }

// Tones returns the frequency ratios of the triad relative to its root.
// The returned slice must not be modified.
func (c Chord) Tones() []float64 {
	if c.Minor {
		return minorTones
	}
	return majorTones
}

func (c Chord) String() string { return c.Symbol }

// Progression is a cyclic chord sequence, one chord per bar.
type Progression []Chord

// At returns the chord for bar, wrapping around the progression.
func (p Progression) At(bar int) Chord {
	if len(p) == 0 {
		return Chord{}
	}
	i := bar % len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

func (p Progression) Symbols() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Symbol
	}
	return out
}

var progressions = map[Mode][]string{
	Minor:  {"i", "VI", "III", "VII"},
	Major:  {"I", "V", "vi", "IV"},
	Dorian: {"i", "iv", "VI", "V"},
}

// ResolveChordProgression returns the four chord progression for mood.
func ResolveChordProgression(m Mood) (Progression, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMood, string(m))
	}

	symbols := progressions[ModeForMood(m)]
	prog := make(Progression, len(symbols))
	for i, sym := range symbols {
		c, err := ParseChord(sym)
		if err != nil {
			return nil, err
		}
		prog[i] = c
	}

	return prog, nil
}
