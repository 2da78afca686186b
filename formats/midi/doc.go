// SPDX-License-Identifier: EPL-2.0

// Package midi exports generated patterns as a Standard MIDI File.
//
// The file is format 1 at 480 ticks per quarter note. Track 0 carries tempo
// and a 4/4 meter; drums, bass, chords and melody follow, one track each.
// Drums use channel 10 with General MIDI kick (36), snare (38), closed hat
// (42) and open hat (46). The fx stem has no pitched content and is left
// out.
package midi
