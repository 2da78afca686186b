// SPDX-License-Identifier: EPL-2.0

// Package store persists rendered artifacts. A Sink receives one encoded
// file at a time under a slash separated key such as
// "3f2c.../drums.wav" and returns a reference to where it went.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/ik5/beatgen/config"
)

var (
	ErrInvalidKey = errors.New("invalid artifact key")
	ErrNotFound   = errors.New("artifact not found")
)

type Sink interface {
	Store(ctx context.Context, key string, data []byte) (ref string, err error)
	Load(ctx context.Context, key string) ([]byte, error)
	Close() error
}

// Open builds the sink selected by cfg.Sink.
func Open(ctx context.Context, cfg config.OutputConfig, log *slog.Logger) (Sink, error) {
	switch cfg.Sink {
	case "dir":
		d, err := NewDir(cfg.Directory)
		if err != nil {
			return nil, err
		}
		return d, nil
	case "sqlite":
		s, err := OpenSQLite(ctx, cfg.SQLitePath, log)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "none":
		return Discard{}, nil
	default:
		return nil, fmt.Errorf("unknown sink %q", cfg.Sink)
	}
}

// CleanKey validates key and returns its canonical form. Keys are relative
// slash paths without "." or ".." elements.
func CleanKey(key string) (string, error) {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	for _, part := range strings.Split(key, "/") {
		if part == "" || part == "." || part == ".." {
			return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	}
	return path.Clean(key), nil
}

// Discard drops everything it is given.
type Discard struct{}

func (Discard) Store(_ context.Context, key string, _ []byte) (string, error) {
	if _, err := CleanKey(key); err != nil {
		return "", err
	}
	return "", nil
}

func (Discard) Load(_ context.Context, key string) ([]byte, error) {
	return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
}

func (Discard) Close() error { return nil }
