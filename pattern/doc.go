// SPDX-License-Identifier: EPL-2.0

// Package pattern builds the symbolic step sequences a beat is rendered from.
//
// Every pattern is Bars × StepsPerBar = 16 steps long. One step is one beat.
// Randomness (the melody) is drawn only from the Rand passed to Generate, so
// the same request and seed always yield the same patterns:
//
//	rng := rand.New(rand.NewPCG(seed, seed))
//	set, err := pattern.Generate(req, rng)
//	drums := set[pattern.StemDrums]
//	fmt.Println(drums.Grid()) // xxxxxxxxxxxxxxxx
//
// # Rules
//
//   - drums: kick every 4th step, snare on the 3rd step of each group of
//     four, hat on every step, opened on every 8th step
//   - bass: root on step 0 of a group, fifth on step 2
//   - chords: one chord at the start of each bar, cycling the progression
//   - melody: ~40% of steps carry a random scale note
//   - fx: a riser on the first step, an impact on the last
package pattern
