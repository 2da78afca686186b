// SPDX-License-Identifier: EPL-2.0

// Package synth contains the unit generators every renderer is built from.
//
// All generators are pure functions of time (in seconds) except noise, which
// draws from a caller supplied random source so that renders seeded with the
// same value are sample-identical.
//
// # Oscillators
//
//	v := synth.Sine(440, t)
//	v = synth.Triangle(440, t)
//
// # Noise
//
//	gen := synth.NewNoiseGen(rng, true) // high-passed, for hats
//	v = gen.Next()
//	buf := synth.Noise(1024, false, rng)
//
// # Envelopes
//
// Envelope applies a linear fade in and fade out over fractions of a buffer.
// It is used per note (through Gate) and as the whole-buffer boundary fade
// that keeps the first and last sample at zero.
//
// # Voices
//
// Kick, Snare, Hat, Impact, Riser, Note and Pad are the instrument roles.
// They take the time elapsed since the event started, so both the per-stem
// renderer and the full mix call the same code.
package synth
