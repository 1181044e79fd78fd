// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Cache is a SQLite table of past source lookups keyed by
// (source, title). Negative answers are cached too, so a resumed run
// does not re-ask a source about songs it already said it lacks.
type Cache struct {
	db *sql.DB
}

// OpenCache opens or creates the fetch cache at path.
func OpenCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open cache: %w", err)
	}
	if err := createCacheSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Cache{db: db}, nil
}

func createCacheSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS fetches (
			source     TEXT NOT NULL,
			title      TEXT NOT NULL,
			found      INTEGER NOT NULL,
			finding    TEXT,
			fetched_at TEXT NOT NULL,
			PRIMARY KEY (source, title)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_fetches_fetched_at ON fetches (fetched_at)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("create cache schema: %w", err)
		}
	}
	return nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached finding for (source, title). hit is false on a
// cache miss. A hit with a nil finding means the source was asked
// before and had no entry for the song.
func (c *Cache) Get(ctx context.Context, source, title string) (f *Finding, hit bool, err error) {
	var found int
	var payload sql.NullString
	row := c.db.QueryRowContext(ctx,
		`SELECT found, finding FROM fetches WHERE source = ? AND title = ?`,
		source, cacheKey(title))
	if err := row.Scan(&found, &payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read cache: %w", err)
	}
	if found == 0 {
		return nil, true, nil
	}

	var finding Finding
	if err := json.Unmarshal([]byte(payload.String), &finding); err != nil {
		return nil, false, fmt.Errorf("decode cached finding: %w", err)
	}
	return &finding, true, nil
}

// Put records a lookup result for (source, title), replacing any
// earlier row. A nil finding records that the source lacks the song.
func (c *Cache) Put(ctx context.Context, source, title string, f *Finding) error {
	found := 0
	var payload sql.NullString
	if f != nil {
		data, err := json.Marshal(f)
		if err != nil {
			return fmt.Errorf("encode finding: %w", err)
		}
		found = 1
		payload = sql.NullString{String: string(data), Valid: true}
	}

	_, err := c.db.ExecContext(ctx,
		`INSERT INTO fetches (source, title, found, finding, fetched_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (source, title) DO UPDATE SET
			found = excluded.found,
			finding = excluded.finding,
			fetched_at = excluded.fetched_at`,
		source, cacheKey(title), found, payload, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("write cache: %w", err)
	}
	return nil
}

// Size returns the number of cached lookups.
func (c *Cache) Size(ctx context.Context) (int, error) {
	var n int
	err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM fetches`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count cache: %w", err)
	}
	return n, nil
}

func cacheKey(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
