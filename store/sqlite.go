// SPDX-License-Identifier: EPL-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLite keeps artifacts as blobs in a single SQLite database.
type SQLite struct {
	db    *sql.DB
	path  string
	log   *slog.Logger
	clock func() time.Time
}

// Entry describes a stored artifact without its payload.
type Entry struct {
	Key       string
	Size      int
	CreatedAt time.Time
}

func OpenSQLite(ctx context.Context, path string, log *slog.Logger) (*SQLite, error) {
	if path == "" {
		return nil, errors.New("sqlite path must not be empty")
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	s := &SQLite{db: db, path: path, log: log, clock: time.Now}
	if err := s.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	log.Debug("artifact store opened", slog.String("path", path))
	return s, nil
}

func (s *SQLite) initSchema(ctx context.Context) error {
	ddl := `
CREATE TABLE IF NOT EXISTS artifacts (
    key TEXT PRIMARY KEY,
    size INTEGER NOT NULL,
    data BLOB NOT NULL,
    created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_artifacts_created ON artifacts(created_at);
`
	_, err := s.db.ExecContext(ctx, ddl)
	return err
}

// Store inserts or replaces the artifact under key. The returned reference
// is "sqlite://<path>#<key>".
func (s *SQLite) Store(ctx context.Context, key string, data []byte) (string, error) {
	k, err := CleanKey(key)
	if err != nil {
		return "", err
	}
	if data == nil {
		data = []byte{}
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO artifacts(key, size, data, created_at) VALUES(?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET size=excluded.size, data=excluded.data, created_at=excluded.created_at`,
		k, len(data), data, s.clock().UTC())
	if err != nil {
		return "", fmt.Errorf("insert %s: %w", k, err)
	}

	return "sqlite://" + s.path + "#" + k, nil
}

func (s *SQLite) Load(ctx context.Context, key string) ([]byte, error) {
	k, err := CleanKey(key)
	if err != nil {
		return nil, err
	}

	var data []byte
	err = s.db.QueryRowContext(ctx, `SELECT data FROM artifacts WHERE key = ?`, k).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, k)
	}
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", k, err)
	}
	return data, nil
}

// List returns the entries whose key starts with prefix, oldest first.
func (s *SQLite) List(ctx context.Context, prefix string) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT key, size, created_at FROM artifacts
		 WHERE substr(key, 1, length(?)) = ? ORDER BY created_at ASC, key ASC`, prefix, prefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var created string
		if err := rows.Scan(&e.Key, &e.Size, &created); err != nil {
			return nil, err
		}
		if ts, err := time.Parse(time.RFC3339Nano, created); err == nil {
			e.CreatedAt = ts
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Prune deletes artifacts older than age.
func (s *SQLite) Prune(ctx context.Context, age time.Duration) (int64, error) {
	cutoff := s.clock().Add(-age).UTC()
	res, err := s.db.ExecContext(ctx, `DELETE FROM artifacts WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err == nil && n > 0 {
		s.log.Info("pruned artifacts", slog.Int64("count", n))
	}
	return n, err
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
