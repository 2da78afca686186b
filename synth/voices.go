// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

// Kick thump: an exponential glide from KickStartFreq to KickEndFreq over
// KickSweep, gated at KickGate.
const (
	KickStartFreq = 150.0
	KickEndFreq   = 50.0
	KickSweep     = 0.12
	KickGate      = 0.3
)

const (
	SnareGate     = 0.18
	snareBodyFreq = 180.0

	HatClosedGate = 0.05
	HatOpenGate   = 0.25

	ImpactGate     = 0.4
	impactBodyFreq = 55.0

	riserStartFreq = 200.0
	riserEndFreq   = 2000.0
)

// Note envelope fractions shared by every pitched voice.
const (
	NoteAttack  = 0.05
	NoteRelease = 0.2
	PadAttack   = 0.1
	PadRelease  = 0.3
)

// Kick renders a pitch swept sine dt seconds after the hit.
func Kick(dt, velocity float64) float64 {
	if dt < 0 || dt >= KickGate {
		return 0
	}
	env := 1 - dt/KickGate
	phase := SweepPhase(KickStartFreq, KickEndFreq, KickSweep, dt)
	return math.Sin(2*math.Pi*phase) * env * env * velocity
}

// Snare mixes a noise burst with a short tonal body. noise is the next
// sample of a white NoiseGen.
func Snare(dt, velocity, noise float64) float64 {
	if dt < 0 || dt >= SnareGate {
		return 0
	}
	env := 1 - dt/SnareGate
	body := Sine(snareBodyFreq, dt) * 0.4
	return (noise*0.6 + body) * env * env * velocity
}

// Hat renders a closed or open hat from high-passed noise.
func Hat(dt, velocity float64, open bool, noise float64) float64 {
	gate := HatClosedGate
	if open {
		gate = HatOpenGate
	}
	if dt < 0 || dt >= gate {
		return 0
	}
	return noise * (1 - dt/gate) * velocity
}

// Impact is a short broadband hit with a sub thump underneath.
func Impact(dt, velocity, noise float64) float64 {
	if dt < 0 || dt >= ImpactGate {
		return 0
	}
	env := 1 - dt/ImpactGate
	env = env * env * env
	return (noise*0.6 + Sine(impactBodyFreq, dt)*0.4) * env * velocity
}

// Riser sweeps upward across total seconds, its level growing with the
// elapsed fraction.
func Riser(t, total, intensity float64) float64 {
	if total <= 0 || t < 0 || t >= total {
		return 0
	}
	phase := SweepPhase(riserStartFreq, riserEndFreq, total, t)
	return math.Sin(2*math.Pi*phase) * (t / total) * intensity
}

// Note is a single enveloped oscillator note of length seconds.
func Note(shape Shape, freq, dt, length, velocity float64) float64 {
	g := Gate(dt, length, NoteAttack, NoteRelease)
	if g == 0 {
		return 0
	}
	return Tone(shape, freq, dt) * g * velocity
}

// Pad sums sine tones at root×ratio, normalized by the number of tones.
func Pad(root float64, ratios []float64, dt, length, velocity float64) float64 {
	if len(ratios) == 0 {
		return 0
	}
	g := Gate(dt, length, PadAttack, PadRelease)
	if g == 0 {
		return 0
	}

	sum := 0.0
	for _, r := range ratios {
		sum += Sine(root*r, dt)
	}

	return sum / float64(len(ratios)) * g * velocity
}
