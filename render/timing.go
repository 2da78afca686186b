// SPDX-License-Identifier: EPL-2.0

package render

import (
	"math"

	"github.com/ik5/beatgen/pattern"
)

// StepDuration is the length of one step in seconds. A step is one beat.
func StepDuration(tempo int) float64 {
	return 60 / float64(tempo)
}

// Duration is the length of a full pattern: Bars × BeatsPerBar beats.
func Duration(tempo int) float64 {
	return pattern.Bars * pattern.BeatsPerBar * StepDuration(tempo)
}

// NumSamples is round(duration × sampleRate).
func NumSamples(duration float64, sampleRate int) int {
	return int(math.Round(duration * float64(sampleRate)))
}

// StepAt maps a time in seconds to the step sounding at that time and the
// offset from the step's start. The step is clamped to the pattern, so time
// past the last step still belongs to it.
func StepAt(t float64, tempo int) (step int, offset float64) {
	d := StepDuration(tempo)
	step = int(math.Floor(t / d))
	step = max(0, min(pattern.Length-1, step))

	return step, t - float64(step)*d
}
