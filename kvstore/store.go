// Package kvstore provides a small SQLite-backed key-value store: one table
// of named buckets, each holding a JSON payload. It backs the persisted
// slice of the catalog state across process restarts.
package kvstore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Store is a bucket → JSON payload store on a single SQLite file.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the store at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("cannot create state directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cannot open state db %q: %w", path, err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("cannot create state table: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Close releases the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Get unmarshals the payload of a bucket into v. It reports whether the
// bucket existed.
func (s *Store) Get(bucket string, v any) (bool, error) {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM state WHERE bucket = ?`, bucket).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cannot read bucket %q: %w", bucket, err)
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return false, fmt.Errorf("cannot decode bucket %q: %w", bucket, err)
	}
	return true, nil
}

// Put marshals v and upserts it as the payload of a bucket.
func (s *Store) Put(bucket string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cannot encode bucket %q: %w", bucket, err)
	}
	if _, err := s.db.Exec(
		`INSERT INTO state(bucket,payload) VALUES(?,?) ON CONFLICT(bucket) DO UPDATE SET payload=excluded.payload`,
		bucket, payload,
	); err != nil {
		return fmt.Errorf("cannot upsert bucket %q: %w", bucket, err)
	}
	return nil
}

// Delete removes a bucket. Deleting a missing bucket is not an error.
func (s *Store) Delete(bucket string) error {
	if _, err := s.db.Exec(`DELETE FROM state WHERE bucket = ?`, bucket); err != nil {
		return fmt.Errorf("cannot delete bucket %q: %w", bucket, err)
	}
	return nil
}
