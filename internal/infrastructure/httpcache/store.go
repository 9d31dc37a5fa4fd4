// Package httpcache stores feed responses for conditional GET requests.
package httpcache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/huandu/go-sqlbuilder"
	_ "modernc.org/sqlite"
)

const table = "responses"

// Entry is one cached response with its validators.
type Entry struct {
	URL          string
	ETag         string
	LastModified string
	Body         []byte
	FetchedAt    time.Time
}

// HasValidators reports whether a conditional request can be built from e.
func (e Entry) HasValidators() bool {
	return e.ETag != "" || e.LastModified != ""
}

// Store is a sqlite-backed response cache.
type Store struct {
	db *sql.DB
}

// Open opens (and creates if needed) the cache database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.init(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) init(ctx context.Context) error {
	ctb := sqlbuilder.NewCreateTableBuilder()
	ctb.CreateTable(table).IfNotExists().
		Define("url", "TEXT", "PRIMARY KEY").
		Define("etag", "TEXT", "NOT NULL", "DEFAULT ''").
		Define("last_modified", "TEXT", "NOT NULL", "DEFAULT ''").
		Define("body", "BLOB", "NOT NULL").
		Define("fetched_at", "TEXT", "NOT NULL")
	query, args := ctb.BuildWithFlavor(sqlbuilder.SQLite)

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Get returns the cached entry for url. The boolean is false when nothing is stored.
func (s *Store) Get(ctx context.Context, url string) (Entry, bool, error) {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select("url", "etag", "last_modified", "body", "fetched_at").
		From(table).
		Where(sb.Equal("url", url))
	query, args := sb.BuildWithFlavor(sqlbuilder.SQLite)

	var (
		e         Entry
		fetchedAt string
	)
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&e.URL, &e.ETag, &e.LastModified, &e.Body, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("query cached response: %w", err)
	}
	if t, perr := time.Parse(time.RFC3339Nano, fetchedAt); perr == nil {
		e.FetchedAt = t
	}
	return e, true, nil
}

// Put replaces the cached entry for e.URL.
func (s *Store) Put(ctx context.Context, e Entry) error {
	if e.FetchedAt.IsZero() {
		e.FetchedAt = time.Now()
	}
	if e.Body == nil {
		e.Body = []byte{}
	}
	ib := sqlbuilder.NewInsertBuilder()
	ib.ReplaceInto(table).
		Cols("url", "etag", "last_modified", "body", "fetched_at").
		Values(e.URL, e.ETag, e.LastModified, e.Body, e.FetchedAt.UTC().Format(time.RFC3339Nano))
	query, args := ib.BuildWithFlavor(sqlbuilder.SQLite)

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("store response %s: %w", e.URL, err)
	}
	return nil
}

// Delete removes the cached entry for url.
func (s *Store) Delete(ctx context.Context, url string) error {
	db := sqlbuilder.NewDeleteBuilder()
	db.DeleteFrom(table).Where(db.Equal("url", url))
	query, args := db.BuildWithFlavor(sqlbuilder.SQLite)

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete response %s: %w", url, err)
	}
	return nil
}
