// SPDX-License-Identifier: EPL-2.0

package theory

import (
	"fmt"
	"strings"
)

type Mood string

const (
	MoodDark        Mood = "dark"
	MoodHappy       Mood = "happy"
	MoodChill       Mood = "chill"
	MoodAggressive  Mood = "aggressive"
	MoodEthereal    Mood = "ethereal"
	MoodMelancholic Mood = "melancholic"
)

var moods = []Mood{MoodDark, MoodHappy, MoodChill, MoodAggressive, MoodEthereal, MoodMelancholic}

// Moods returns every supported mood.
func Moods() []Mood {
	return append([]Mood(nil), moods...)
}

func ParseMood(s string) (Mood, error) {
	m := Mood(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMood, s)
	}
	return m, nil
}

func (m Mood) Valid() bool {
	for _, known := range moods {
		if m == known {
			return true
		}
	}
	return false
}

func (m Mood) String() string { return string(m) }

// Mode selects the interval set of a scale.
type Mode int

const (
	Major Mode = iota
	Minor
	// Dorian is the minor-like set used for moods without a dedicated mode.
	Dorian
)

var modeNames = map[Mode]string{
	Major:  "major",
	Minor:  "minor",
	Dorian: "dorian",
}

func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

func (m Mode) String() string {
	if n, ok := modeNames[m]; ok {
		return n
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ModeForMood maps a mood to the mode its scale is built from.
func ModeForMood(m Mood) Mode {
	switch m {
	case MoodDark, MoodAggressive:
		return Minor
	case MoodHappy, MoodChill:
		return Major
	default:
		return Dorian
	}
}
