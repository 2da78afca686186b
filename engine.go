// SPDX-License-Identifier: EPL-2.0

package beatgen

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/ik5/beatgen/audio"
	"github.com/ik5/beatgen/formats/aiff"
	"github.com/ik5/beatgen/formats/wav"
	"github.com/ik5/beatgen/params"
	"github.com/ik5/beatgen/pattern"
	"github.com/ik5/beatgen/render"
)

const DefaultSampleRate = 44100

// Engine renders requests. It is immutable after New and safe for
// concurrent use.
type Engine struct {
	sampleRate     int
	seed           uint64
	seeded         bool
	progress       func(int)
	log            *slog.Logger
	format         Format
	previewRate    int
	waveformPoints int
}

func New(opts ...Option) *Engine {
	e := &Engine{
		sampleRate: DefaultSampleRate,
		format:     FormatWAV,
		log:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Random streams derived from the seed, one per consumer, so adding a
// consumer never shifts the numbers another one sees.
const (
	streamPattern uint64 = iota + 1
	streamDrums
	streamFX
	streamMix
	streamPitched
)

func stream(seed, id uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, id))
}

func stemStream(seed uint64, stem pattern.Stem) *rand.Rand {
	switch stem {
	case pattern.StemDrums:
		return stream(seed, streamDrums)
	case pattern.StemFX:
		return stream(seed, streamFX)
	case pattern.StemFull:
		return stream(seed, streamMix)
	default:
		return stream(seed, streamPitched)
	}
}

// Render validates req and renders every stem. The context is checked
// before each stem; a canceled render returns ctx.Err() and no result.
func (e *Engine) Render(ctx context.Context, req params.Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := e.check(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seed := e.seed
	if !e.seeded {
		seed = rand.Uint64()
	}

	start := time.Now()
	res := &Result{
		ID:        uuid.New(),
		Request:   req,
		Seed:      seed,
		Artifacts: make(map[pattern.Stem]Artifact, len(pattern.Stems())),
	}
	log := e.log.With(slog.String("render_id", res.ID.String()))

	set, err := pattern.Generate(req, stream(seed, streamPattern))
	if err != nil {
		return nil, fmt.Errorf("generate patterns: %w", err)
	}
	res.Patterns = set

	duration := render.Duration(req.Tempo)
	stems := pattern.Stems()

	var full *audio.Buffer
	for i, stem := range stems {
		if err := ctx.Err(); err != nil {
			log.Debug("render canceled", slog.String("before", stem.String()))
			return nil, err
		}

		buf, err := e.renderStem(set, stem, req.Tempo, duration, seed)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", stem, err)
		}
		if stem == pattern.StemFull {
			full = buf
		}

		a, err := e.artifact(stem, buf)
		if err != nil {
			return nil, err
		}
		res.Artifacts[stem] = a

		log.Debug("stem rendered",
			slog.String("stem", stem.String()),
			slog.Int("samples", a.Samples),
			slog.Float64("peak", float64(a.Peak)))

		if e.progress != nil {
			e.progress((i + 1) * 100 / len(stems))
		}
	}

	if e.previewRate > 0 && full != nil {
		p, err := e.preview(full)
		if err != nil {
			return nil, err
		}
		res.Preview = p
	}

	log.Info("render complete",
		slog.Int("tempo", req.Tempo),
		slog.String("key", req.Key.String()),
		slog.String("mood", string(req.Mood)),
		slog.Uint64("seed", seed),
		slog.Duration("elapsed", time.Since(start)))

	return res, nil
}

// Generate renders req and returns only the artifacts.
func (e *Engine) Generate(ctx context.Context, req params.Request) (map[pattern.Stem]Artifact, error) {
	res, err := e.Render(ctx, req)
	if err != nil {
		return nil, err
	}
	return res.Artifacts, nil
}

func (e *Engine) check() error {
	if e.sampleRate <= 0 {
		return fmt.Errorf("%w: %d", render.ErrInvalidSampleRate, e.sampleRate)
	}
	if _, err := ParseFormat(string(e.format)); err != nil {
		return err
	}
	if e.previewRate < 0 {
		return fmt.Errorf("preview %w: %d", render.ErrInvalidSampleRate, e.previewRate)
	}
	return nil
}

func (e *Engine) renderStem(set pattern.Set, stem pattern.Stem, tempo int, duration float64, seed uint64) (*audio.Buffer, error) {
	rng := stemStream(seed, stem)
	if stem == pattern.StemFull {
		return render.FullMix(set, tempo, duration, e.sampleRate, rng)
	}
	return render.Stem(set[stem], tempo, duration, e.sampleRate, rng)
}

func (e *Engine) encode(buf *audio.Buffer) ([]byte, error) {
	switch e.format {
	case FormatAIFF:
		return aiff.Encode(buf.Data, buf.SampleRate, buf.Channels)
	default:
		return wav.Encode(buf.Data, buf.SampleRate, buf.Channels, 16)
	}
}

func (e *Engine) artifact(stem pattern.Stem, buf *audio.Buffer) (Artifact, error) {
	data, err := e.encode(buf)
	if err != nil {
		return Artifact{}, fmt.Errorf("encode %s: %w", stem, err)
	}

	a := Artifact{
		Stem:       stem,
		Format:     e.format,
		Bytes:      data,
		SampleRate: buf.SampleRate,
		Channels:   buf.Channels,
		Duration:   buf.Duration(),
		Samples:    buf.Frames(),
		Peak:       audio.Peak(buf.Data),
		RMS:        audio.RMS(buf.Data),
	}
	if e.waveformPoints > 0 {
		a.Waveform = audio.Waveform(buf.Data, e.waveformPoints)
	}

	return a, nil
}

func (e *Engine) preview(full *audio.Buffer) (*Artifact, error) {
	buf, err := audio.ResampleMono(full.Source(), e.previewRate, 4096)
	if err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}

	a, err := e.artifact(pattern.StemFull, buf)
	if err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}
	return &a, nil
}
