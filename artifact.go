// SPDX-License-Identifier: EPL-2.0

package beatgen

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ik5/beatgen/formats/midi"
	"github.com/ik5/beatgen/params"
	"github.com/ik5/beatgen/pattern"
	"github.com/ik5/beatgen/store"
)

// Artifact is one encoded stem with its render metadata.
type Artifact struct {
	Stem       pattern.Stem  `json:"stem"`
	Format     Format        `json:"format"`
	Bytes      []byte        `json:"-"`
	SampleRate int           `json:"sample_rate"`
	Channels   int           `json:"channels"`
	Duration   time.Duration `json:"duration"`
	Samples    int           `json:"samples"`
	Peak       float32       `json:"peak"`
	RMS        float32       `json:"rms"`
	Waveform   []float32     `json:"waveform,omitempty"`
}

// Name is the file name of the artifact, for example "drums.wav".
func (a Artifact) Name() string {
	return fmt.Sprintf("%s.%s", a.Stem, a.Format.Ext())
}

// Result is everything one render produced.
type Result struct {
	ID        uuid.UUID                 `json:"id"`
	Request   params.Request            `json:"request"`
	Seed      uint64                    `json:"seed"`
	Patterns  pattern.Set               `json:"-"`
	Artifacts map[pattern.Stem]Artifact `json:"artifacts"`
	Preview   *Artifact                 `json:"preview,omitempty"`
}

// MIDI exports the render's patterns as a Standard MIDI File.
func (r *Result) MIDI() ([]byte, error) {
	return midi.Encode(r.Patterns, r.Request.Tempo)
}

// Store hands every artifact to sink under "<id>/<name>" and returns the
// references by key. The preview is stored as "<id>/preview.<ext>" and,
// when withMIDI is set, the patterns as "<id>/patterns.mid".
func (r *Result) Store(ctx context.Context, sink store.Sink, withMIDI bool) (map[string]string, error) {
	refs := make(map[string]string, len(r.Artifacts)+2)

	put := func(name string, data []byte) error {
		key := r.ID.String() + "/" + name
		ref, err := sink.Store(ctx, key, data)
		if err != nil {
			return fmt.Errorf("store %s: %w", key, err)
		}
		refs[key] = ref
		return nil
	}

	for _, stem := range pattern.Stems() {
		a, ok := r.Artifacts[stem]
		if !ok {
			continue
		}
		if err := put(a.Name(), a.Bytes); err != nil {
			return refs, err
		}
	}

	if r.Preview != nil {
		if err := put("preview."+r.Preview.Format.Ext(), r.Preview.Bytes); err != nil {
			return refs, err
		}
	}

	if withMIDI {
		data, err := r.MIDI()
		if err != nil {
			return refs, fmt.Errorf("encode midi: %w", err)
		}
		if err := put("patterns.mid", data); err != nil {
			return refs, err
		}
	}

	return refs, nil
}
