// SPDX-License-Identifier: EPL-2.0

// Command beatgen renders a beat from musical parameters and stores the
// stems in the configured sink.
//
//	beatgen -tempo 140 -key F# -mood dark -genre drill
//	beatgen -presets
//	beatgen -inspect renders/<id>/full.wav
//	beatgen -inspect in.aiff -resample 8000 -o out.wav
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/ik5/beatgen"
	"github.com/ik5/beatgen/config"
	"github.com/ik5/beatgen/params"
	"github.com/ik5/beatgen/store"
)

var version = "0.1.0-dev"

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, "beatgen:", err)
		}
		os.Exit(1)
	}
}

type flags struct {
	configPath  string
	tempo       int
	key         string
	mood        string
	genre       string
	structure   string
	seed        uint64
	format      string
	out         string
	midi        bool
	presets     bool
	inspect     string
	resample    int
	resampleOut string
	showVersion bool
}

func parseFlags(args []string, stderr io.Writer) (flags, *flag.FlagSet, error) {
	def := params.Default()

	var f flags
	fs := flag.NewFlagSet("beatgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&f.configPath, "config", "", "Path to configuration file")
	fs.IntVar(&f.tempo, "tempo", def.Tempo, "Tempo in BPM (60..200)")
	fs.StringVar(&f.key, "key", def.Key.String(), "Root key, e.g. C, F#, Bb")
	fs.StringVar(&f.mood, "mood", string(def.Mood), "Mood: dark, happy, chill, aggressive, ethereal, melancholic")
	fs.StringVar(&f.genre, "genre", string(def.Genre), "Genre label")
	fs.StringVar(&f.structure, "structure", string(def.Structure), "Song structure label")
	fs.Uint64Var(&f.seed, "seed", 0, "Random seed, 0 uses the configured or a fresh one")
	fs.StringVar(&f.format, "format", "", "Output container: wav or aiff")
	fs.StringVar(&f.out, "out", "", "Output directory, overrides the configured sink with a directory")
	fs.BoolVar(&f.midi, "midi", false, "Also store the patterns as a MIDI file")
	fs.BoolVar(&f.presets, "presets", false, "Print the parameter presets as YAML and exit")
	fs.StringVar(&f.inspect, "inspect", "", "Decode an audio file and print its properties")
	fs.IntVar(&f.resample, "resample", 0, "With -inspect, resample to this rate as mono 16-bit WAV")
	fs.StringVar(&f.resampleOut, "o", "", "Output path for -resample")
	fs.BoolVar(&f.showVersion, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return f, fs, fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return f, fs, fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}
	if f.resample > 0 && (f.inspect == "" || f.resampleOut == "") {
		fs.Usage()
		return f, fs, fmt.Errorf("%w: -resample needs -inspect and -o", errUsage)
	}

	return f, fs, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	f, fs, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	switch {
	case f.showVersion:
		_, err := fmt.Fprintln(stdout, version)
		return err
	case f.presets:
		return yaml.NewEncoder(stdout).Encode(params.ListPresets())
	case f.inspect != "":
		return inspect(f.inspect, f.resample, f.resampleOut, stdout)
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	applyFlags(&cfg, f, fs)

	logger, err := newLogger(cfg.Log, stderr)
	if err != nil {
		return err
	}

	req, err := params.Parse(f.tempo, f.key, f.mood, f.genre, f.structure)
	if err != nil {
		return err
	}

	opts, err := engineOptions(cfg.Render, logger)
	if err != nil {
		return err
	}

	res, err := beatgen.New(opts...).Render(ctx, req)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	sink, err := store.Open(ctx, cfg.Output, logger)
	if err != nil {
		return err
	}
	defer sink.Close()

	refs, err := res.Store(ctx, sink, cfg.Output.MIDI)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(refs))
	for k := range refs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintln(stdout, refs[k])
	}

	logger.Info("beat stored",
		slog.String("id", res.ID.String()),
		slog.Uint64("seed", res.Seed),
		slog.String("sink", cfg.Output.Sink),
		slog.Int("artifacts", len(refs)),
	)

	return nil
}

// applyFlags lets explicitly set flags win over the configuration file and
// environment.
func applyFlags(cfg *config.Config, f flags, fs *flag.FlagSet) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "seed":
			cfg.Render.Seed = f.seed
		case "format":
			cfg.Render.Format = f.format
		case "out":
			cfg.Output.Sink = "dir"
			cfg.Output.Directory = f.out
		case "midi":
			cfg.Output.MIDI = f.midi
		}
	})
}

func engineOptions(rc config.RenderConfig, logger *slog.Logger) ([]beatgen.Option, error) {
	format, err := beatgen.ParseFormat(rc.Format)
	if err != nil {
		return nil, err
	}

	opts := []beatgen.Option{
		beatgen.WithSampleRate(rc.SampleRate),
		beatgen.WithFormat(format),
		beatgen.WithPreview(rc.PreviewRate),
		beatgen.WithWaveform(rc.WaveformPoints),
		beatgen.WithLogger(logger),
		beatgen.WithProgress(func(percent int) {
			logger.Debug("render progress", slog.Int("percent", percent))
		}),
	}
	if rc.Seed != 0 {
		opts = append(opts, beatgen.WithSeed(rc.Seed))
	}

	return opts, nil
}

func newLogger(lc config.LogConfig, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(lc.Level))); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	hopts := &slog.HandlerOptions{Level: level}
	if lc.Format == "text" {
		return slog.New(slog.NewTextHandler(w, hopts)), nil
	}
	return slog.New(slog.NewJSONHandler(w, hopts)), nil
}
