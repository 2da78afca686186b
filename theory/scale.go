// SPDX-License-Identifier: EPL-2.0

package theory

import (
	"fmt"
	"math"
)

// ScaleDegrees is the number of notes in every supported scale.
const ScaleDegrees = 7

var intervals = map[Mode][ScaleDegrees]int{
	Major:  {0, 2, 4, 5, 7, 9, 11},
	Minor:  {0, 2, 3, 5, 7, 8, 10},
	Dorian: {0, 2, 3, 5, 7, 9, 10},
}

// Scale is a key's root frequency plus seven ascending ratios.
type Scale struct {
	Key    Key
	Mode   Mode
	Root   float64
	Ratios [ScaleDegrees]float64
}

// ResolveScale builds the scale of mode rooted at key (octave 4).
func ResolveScale(key Key, mode Mode) (Scale, error) {
	if !key.Valid() {
		return Scale{}, fmt.Errorf("%w: %d", ErrUnknownKey, int(key))
	}
	semis, ok := intervals[mode]
	if !ok {
		return Scale{}, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}

	s := Scale{Key: key, Mode: mode, Root: key.Frequency()}
	for i, st := range semis {
		s.Ratios[i] = math.Pow(2, float64(st)/12)
	}

	return s, nil
}

// Freq returns the frequency of a scale degree. Degrees outside [0,7) wrap
// into neighbouring octaves, so degree 7 is the root an octave up.
func (s Scale) Freq(degree int) float64 {
	octave := degree / ScaleDegrees
	idx := degree % ScaleDegrees
	if idx < 0 {
		idx += ScaleDegrees
		octave--
	}
	return s.Root * s.Ratios[idx] * math.Pow(2, float64(octave))
}
