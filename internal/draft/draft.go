// Package draft implements the single-slot autosave snapshot for an
// in-progress paragraph. At most one draft exists at a time: every save
// overwrites the slot, and a successful publish clears it.
package draft

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jotted/jotted/internal/errors"
)

// SlotName is the fixed key for the compose-form draft.
const SlotName = "paragraph"

// Draft mirrors the in-progress compose form.
type Draft struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	WordCount int      `json:"word_count"`
	CharCount int      `json:"char_count"`
}

// Store is the single-slot persistence boundary, injectable for testing.
type Store interface {
	// Get returns the current draft, or nil when the slot is empty.
	// A corrupt snapshot is discarded silently and reported as empty.
	Get(ctx context.Context) (*Draft, error)

	// Put overwrites the slot. Last write wins.
	Put(ctx context.Context, d Draft) error

	// Clear empties the slot. Clearing an empty slot is not an error.
	Clear(ctx context.Context) error
}

// SQLStore persists the draft slot in the drafts table.
type SQLStore struct {
	db   *sql.DB
	slot string
}

// NewSQLStore creates a Store backed by the given database, using the
// fixed compose-form slot.
func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db, slot: SlotName}
}

func (s *SQLStore) Get(ctx context.Context) (*Draft, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM drafts WHERE slot = ?`, s.slot,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	var d Draft
	if err := json.Unmarshal([]byte(payload), &d); err != nil {
		// Corrupt snapshot: drop it and report the slot as empty.
		_ = s.Clear(ctx)
		return nil, nil
	}

	if d.Tags == nil {
		d.Tags = []string{}
	}
	return &d, nil
}

func (s *SQLStore) Put(ctx context.Context, d Draft) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return errors.NewInternal(err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO drafts (slot, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`, s.slot, string(payload), time.Now().Unix())
	if err != nil {
		return errors.NewInternal(err)
	}

	return nil
}

func (s *SQLStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM drafts WHERE slot = ?`, s.slot); err != nil {
		return errors.NewInternal(err)
	}
	return nil
}
