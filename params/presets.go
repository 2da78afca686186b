// SPDX-License-Identifier: EPL-2.0

package params

import "github.com/ik5/beatgen/theory"

// Presets is advisory metadata for user interfaces. Any tempo inside
// [MinTempo, MaxTempo] is accepted, not only the listed ones.
type Presets struct {
	Tempos     []int    `yaml:"tempos" json:"tempos"`
	Keys       []string `yaml:"keys" json:"keys"`
	Moods      []string `yaml:"moods" json:"moods"`
	Genres     []string `yaml:"genres" json:"genres"`
	Structures []string `yaml:"structures" json:"structures"`
}

func ListPresets() Presets {
	var p Presets
	for t := 80; t <= 160; t += 10 {
		p.Tempos = append(p.Tempos, t)
	}
	for _, k := range theory.Keys() {
		p.Keys = append(p.Keys, k.String())
	}
	for _, m := range theory.Moods() {
		p.Moods = append(p.Moods, string(m))
	}
	for _, g := range genres {
		p.Genres = append(p.Genres, string(g))
	}
	for _, s := range structures {
		p.Structures = append(p.Structures, string(s))
	}
	return p
}
