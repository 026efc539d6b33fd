// Copyright (c) 2025 Rush UTK.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package docstore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrNotFound is returned by Get when no document exists at the path.
var ErrNotFound = errors.New("document not found")

// Store writes and reads arbitrary JSON documents addressed by a
// caller-supplied path, e.g. "users/<id>" or "pollForms/<id>".
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Put marshals doc and upserts it at path.
func (s *Store) Put(path string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document %s: %w", path, err)
	}

	_, err = s.db.Exec(`
		INSERT INTO document (path, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (path) DO UPDATE SET data = $2, updated_at = $3
	`, path, string(data), time.Now())
	if err != nil {
		return fmt.Errorf("failed to write document %s: %w", path, err)
	}
	return nil
}

// Result is the outcome of an asynchronous write, delivered exactly once.
type Result struct {
	Path string
	Err  error
}

// PutAsync hands the write off and returns immediately. The returned
// channel resolves with the outcome exactly once; callers are free to
// ignore it. The caller never blocks on the store.
func (s *Store) PutAsync(path string, doc any) <-chan Result {
	done := make(chan Result, 1)
	go func() {
		err := s.Put(path, doc)
		if err != nil {
			slog.Error("async document write failed", "path", path, "error", err)
		}
		done <- Result{Path: path, Err: err}
	}()
	return done
}

// Get unmarshals the document at path into out. Returns ErrNotFound if
// nothing has been written there.
func (s *Store) Get(path string, out any) error {
	var data string
	err := s.db.QueryRow("SELECT data FROM document WHERE path = $1", path).Scan(&data)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to read document %s: %w", path, err)
	}

	if err := json.Unmarshal([]byte(data), out); err != nil {
		return fmt.Errorf("failed to decode document %s: %w", path, err)
	}
	return nil
}
