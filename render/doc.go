// SPDX-License-Identifier: EPL-2.0

// Package render turns 16-step patterns into mono PCM buffers.
//
// Every path maps time to a step through StepAt, so a stem and the full mix
// put a given event on the same sample. Stem renders one layer; FullMix sums
// drums, bass and chords with the same voices and soft-limits the result.
// Both fade the first and last two percent of the buffer to silence.
package render
