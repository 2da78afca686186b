// SPDX-License-Identifier: EPL-2.0

// Package config loads beatgen settings from defaults, an optional YAML
// file and BEATGEN_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type RenderConfig struct {
	SampleRate int `yaml:"sample_rate"`
	// Seed 0 asks for a fresh seed per render.
	Seed           uint64 `yaml:"seed"`
	Format         string `yaml:"format"`
	PreviewRate    int    `yaml:"preview_rate"`
	WaveformPoints int    `yaml:"waveform_points"`
}

type OutputConfig struct {
	Sink       string `yaml:"sink"` // dir, sqlite, none
	Directory  string `yaml:"directory"`
	SQLitePath string `yaml:"sqlite_path"`
	MIDI       bool   `yaml:"midi"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json, text
}

type Config struct {
	Render RenderConfig `yaml:"render"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

func Default() Config {
	return Config{
		Render: RenderConfig{
			SampleRate:     44100,
			Format:         "wav",
			PreviewRate:    22050,
			WaveformPoints: 200,
		},
		Output: OutputConfig{
			Sink:       "dir",
			Directory:  "./renders",
			SQLitePath: "./data/beatgen.db",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return cfg, fmt.Errorf("config file not found: %w", err)
			}
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	if err := validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	overrideInt(&cfg.Render.SampleRate, "BEATGEN_RENDER_SAMPLE_RATE")
	overrideUint64(&cfg.Render.Seed, "BEATGEN_RENDER_SEED")
	overrideString(&cfg.Render.Format, "BEATGEN_RENDER_FORMAT")
	overrideInt(&cfg.Render.PreviewRate, "BEATGEN_RENDER_PREVIEW_RATE")
	overrideInt(&cfg.Render.WaveformPoints, "BEATGEN_RENDER_WAVEFORM_POINTS")
	overrideString(&cfg.Output.Sink, "BEATGEN_OUTPUT_SINK")
	overrideString(&cfg.Output.Directory, "BEATGEN_OUTPUT_DIRECTORY")
	overrideString(&cfg.Output.SQLitePath, "BEATGEN_OUTPUT_SQLITE_PATH")
	overrideBool(&cfg.Output.MIDI, "BEATGEN_OUTPUT_MIDI")
	overrideString(&cfg.Log.Level, "BEATGEN_LOG_LEVEL")
	overrideString(&cfg.Log.Format, "BEATGEN_LOG_FORMAT")
}

func overrideString(target *string, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok && strings.TrimSpace(value) != "" {
		*target = strings.TrimSpace(value)
	}
}

func overrideInt(target *int, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok {
		if parsed, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			*target = parsed
		}
	}
}

func overrideUint64(target *uint64, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok {
		if parsed, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64); err == nil {
			*target = parsed
		}
	}
}

func overrideBool(target *bool, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok {
		if parsed, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			*target = parsed
		}
	}
}

func validate(cfg Config) error {
	if cfg.Render.SampleRate < 8000 || cfg.Render.SampleRate > 192000 {
		return errors.New("render.sample_rate must be between 8000 and 192000")
	}
	switch cfg.Render.Format {
	case "wav", "aiff":
	default:
		return errors.New("render.format must be one of wav|aiff")
	}
	if cfg.Render.PreviewRate < 0 || cfg.Render.PreviewRate > cfg.Render.SampleRate {
		return errors.New("render.preview_rate must be 0 or at most render.sample_rate")
	}
	if cfg.Render.WaveformPoints < 0 {
		return errors.New("render.waveform_points must be >= 0")
	}
	switch cfg.Output.Sink {
	case "dir":
		if cfg.Output.Directory == "" {
			return errors.New("output.directory must not be empty when sink=dir")
		}
	case "sqlite":
		if cfg.Output.SQLitePath == "" {
			return errors.New("output.sqlite_path must not be empty when sink=sqlite")
		}
	case "none":
	default:
		return errors.New("output.sink must be one of dir|sqlite|none")
	}
	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("log.level must be one of debug|info|warn|error")
	}
	switch cfg.Log.Format {
	case "json", "text":
	default:
		return errors.New("log.format must be one of json|text")
	}
	return nil
}
