// SPDX-License-Identifier: EPL-2.0

package params

import (
	"fmt"
	"strings"

	"github.com/ik5/beatgen/theory"
)

const (
	MinTempo = 60
	MaxTempo = 200
)

type Genre string

const (
	GenreTrap    Genre = "trap"
	GenreHipHop  Genre = "hiphop"
	GenreRnB     Genre = "rnb"
	GenrePop     Genre = "pop"
	GenreLoFi    Genre = "lofi"
	GenreDrill   Genre = "drill"
	GenreBoomBap Genre = "boom-bap"
	GenreEDM     Genre = "edm"
)

var genres = []Genre{GenreTrap, GenreHipHop, GenreRnB, GenrePop, GenreLoFi, GenreDrill, GenreBoomBap, GenreEDM}

func Genres() []Genre { return append([]Genre(nil), genres...) }

func (g Genre) Valid() bool {
	for _, known := range genres {
		if g == known {
			return true
		}
	}
	return false
}

type Structure string

const (
	StructureVerseHookVerse Structure = "verse-hook-verse"
	StructureFullSong       Structure = "intro-verse-hook-verse-hook-outro"
	StructureLoop4          Structure = "loop-4-bars"
	StructureLoop8          Structure = "loop-8-bars"
)

var structures = []Structure{StructureVerseHookVerse, StructureFullSong, StructureLoop4, StructureLoop8}

func Structures() []Structure { return append([]Structure(nil), structures...) }

func (s Structure) Valid() bool {
	for _, known := range structures {
		if s == known {
			return true
		}
	}
	return false
}

// Request holds the high level musical parameters of one render.
type Request struct {
	Tempo     int         `yaml:"tempo" json:"tempo"`
	Key       theory.Key  `yaml:"key" json:"key"`
	Mood      theory.Mood `yaml:"mood" json:"mood"`
	Genre     Genre       `yaml:"genre" json:"genre"`
	Structure Structure   `yaml:"structure" json:"structure"`
}

// Default mirrors the parameters used when a caller supplies none.
func Default() Request {
	return Request{
		Tempo:     120,
		Key:       theory.C,
		Mood:      theory.MoodDark,
		Genre:     GenreTrap,
		Structure: StructureVerseHookVerse,
	}
}

// Parse builds and validates a request from its textual form.
func Parse(tempo int, key, mood, genre, structure string) (Request, error) {
	k, err := theory.ParseKey(key)
	if err != nil {
		return Request{}, &Error{Field: "key", Value: key, Err: err}
	}
	m, err := theory.ParseMood(mood)
	if err != nil {
		return Request{}, &Error{Field: "mood", Value: mood, Err: err}
	}

	req := Request{
		Tempo:     tempo,
		Key:       k,
		Mood:      m,
		Genre:     Genre(strings.ToLower(strings.TrimSpace(genre))),
		Structure: Structure(strings.ToLower(strings.TrimSpace(structure))),
	}
	if err := req.Validate(); err != nil {
		return Request{}, err
	}

	return req, nil
}

// Validate returns an *Error for the first field that is out of range or
// unknown.
func (r Request) Validate() error {
	if r.Tempo < MinTempo || r.Tempo > MaxTempo {
		return &Error{
			Field: "tempo",
			Value: r.Tempo,
			Err:   fmt.Errorf("%w: want %d..%d", ErrTempoOutOfRange, MinTempo, MaxTempo),
		}
	}
	if !r.Key.Valid() {
		return &Error{Field: "key", Value: int(r.Key), Err: theory.ErrUnknownKey}
	}
	if !r.Mood.Valid() {
		return &Error{Field: "mood", Value: string(r.Mood), Err: theory.ErrUnknownMood}
	}
	if !r.Genre.Valid() {
		return &Error{Field: "genre", Value: string(r.Genre), Err: ErrUnknownGenre}
	}
	if !r.Structure.Valid() {
		return &Error{Field: "structure", Value: string(r.Structure), Err: ErrUnknownStructure}
	}

	return nil
}
