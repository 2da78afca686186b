// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

// PitchSweep returns the instantaneous frequency of an exponential glide
// from start to end Hz over dur seconds. Before the glide it holds start,
// after it holds end. Non-positive frequencies glide linearly.
func PitchSweep(start, end, dur, t float64) float64 {
	switch {
	case t <= 0:
		return start
	case dur <= 0 || t >= dur:
		return end
	case start <= 0 || end <= 0:
		return start + (end-start)*t/dur
	}
	return start * math.Pow(end/start, t/dur)
}

// SweepPhase integrates PitchSweep from 0 to t and returns the phase in
// cycles, so sin(2π·SweepPhase) is a click-free swept oscillator.
func SweepPhase(start, end, dur, t float64) float64 {
	if t <= 0 {
		return 0
	}
	if dur <= 0 {
		return end * t
	}

	held := 0.0
	if t > dur {
		held = end * (t - dur)
		t = dur
	}

	if start <= 0 || end <= 0 {
		// linear glide
		return held + start*t + (end-start)*t*t/(2*dur)
	}

	k := math.Log(end/start) / dur
	if k == 0 {
		return held + start*t
	}

	return held + start*(math.Exp(k*t)-1)/k
}
