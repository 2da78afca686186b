// SPDX-License-Identifier: EPL-2.0

// Package theory resolves the musical material a beat is built from.
//
// It knows the twelve pitch classes, the moods a request may ask for, the
// scale modes those moods map to and the chord progressions that are cycled
// one chord per bar:
//
//	key, _ := theory.ParseKey("C")
//	scale, _ := theory.ResolveScale(key, theory.ModeForMood(theory.MoodDark))
//	prog, _ := theory.ResolveChordProgression(theory.MoodDark)
//
//	root := scale.Freq(0)          // 261.63 Hz
//	chord := prog.At(1)            // "VI"
//	pad := chord.Root(scale) * 0.5 // one octave down
//
// # Mood to mode
//
//   - dark, aggressive: natural minor
//   - happy, chill: major
//   - ethereal, melancholic: dorian
//
// Scale ratios are equal tempered, so the first ratio is always exactly 1.0.
//
// Unknown keys, moods and modes are rejected with the sentinel errors in this
// package. Nothing is silently substituted.
package theory
