// SPDX-License-Identifier: EPL-2.0

// Package beatgen generates short instrumental beats from a handful of
// musical parameters.
//
// A render takes a params.Request (tempo, key, mood, genre, structure),
// builds 16-step patterns for drums, bass, chords, melody and fx, renders
// each to mono PCM, mixes drums, bass and chords into a soft-limited full
// mix and encodes every stem as a 16-bit WAVE (or AIFF) file:
//
//	eng := beatgen.New(beatgen.WithSeed(42))
//	res, err := eng.Render(ctx, params.Default())
//	if err != nil {
//	    return err
//	}
//	drums := res.Artifacts[pattern.StemDrums].Bytes
//
// Output is a pure function of the request, the seed and the engine
// options: rendering twice with the same seed yields identical bytes. When
// no seed is configured a fresh one is drawn per render and reported in
// Result.Seed.
//
// # Packages
//
//   - theory: keys, moods, scales and chord progressions
//   - params: request validation and preset lists
//   - pattern: 16-step pattern generation
//   - synth: oscillators, noise, envelopes and drum voices
//   - render: time to step mapping, stem rendering and the full mix
//   - audio: PCM buffers, resampling, channel mixing, level analysis
//   - formats/wav, formats/aiff: containers
//   - formats/midi: Standard MIDI File export of the patterns
//   - store: directory and SQLite artifact sinks
//   - config: YAML and environment configuration
//
// # Errors
//
// Invalid requests fail before any audio is produced with a
// *params.Error that matches params.ErrInvalidParameter. A canceled
// context stops a render between stems and returns ctx.Err().
package beatgen
