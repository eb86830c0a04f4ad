// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/lux-io/ledger/internal/embedding"
	"github.com/lux-io/ledger/internal/entry"
)

// entryRow is the SQLite row layout. The full entry travels as JSON in
// Payload; the embedding is stored separately as a binary blob, and a few
// columns are broken out for indexing.
type entryRow struct {
	ID        string `gorm:"primaryKey"`
	Revision  int64
	Type      string `gorm:"index"`
	Status    string `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Payload   []byte
	Embedding []byte
}

// OpenSQLite opens (or creates) the SQLite database and migrates the
// entry schema.
func OpenSQLite(
	path string,
) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.AutoMigrate(&entryRow{}); err != nil {
		return nil, fmt.Errorf("migrate entry schema: %w", err)
	}

	return db, nil
}

// ensure SQLiteStore implements Store at compile time.
var _ Store = (*SQLiteStore)(nil)

// SQLiteStore implements Store backed by a local SQLite file.
type SQLiteStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(
	logger *slog.Logger,
	db *gorm.DB,
) *SQLiteStore {
	return &SQLiteStore{
		db:     db,
		logger: logger,
	}
}

// Put creates or replaces an entry.
func (s *SQLiteStore) Put(
	ctx context.Context,
	e *entry.Entry,
) error {
	row, err := toRow(e)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Save(row).Error; err != nil {
		return fmt.Errorf("save entry row: %w", err)
	}

	return nil
}

// Get retrieves an entry by id.
func (s *SQLiteStore) Get(
	ctx context.Context,
	id string,
) (*entry.Entry, error) {
	var row entryRow
	err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &entry.NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("query entry row: %w", err)
	}

	return fromRow(&row)
}

// List returns every stored entry, archived included.
func (s *SQLiteStore) List(
	ctx context.Context,
) ([]*entry.Entry, error) {
	var rows []entryRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query entry rows: %w", err)
	}

	entries := make([]*entry.Entry, 0, len(rows))
	for i := range rows {
		e, err := fromRow(&rows[i])
		if err != nil {
			s.logger.Warn(
				"failed to decode entry row",
				slog.String("id", rows[i].ID),
				slog.String("error", err.Error()),
			)
			continue
		}
		entries = append(entries, e)
	}

	return entries, nil
}

// Delete removes an entry.
func (s *SQLiteStore) Delete(
	ctx context.Context,
	id string,
) error {
	res := s.db.WithContext(ctx).Delete(&entryRow{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete entry row: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return &entry.NotFoundError{ID: id}
	}

	return nil
}

// toRow splits the entry into the JSON payload and the binary embedding
// column.
func toRow(
	e *entry.Entry,
) (*entryRow, error) {
	stripped := e.Clone()
	stripped.Embedding = nil

	payload, err := json.Marshal(stripped)
	if err != nil {
		return nil, fmt.Errorf("marshal entry payload: %w", err)
	}

	var blob []byte
	if len(e.Embedding) > 0 {
		blob, err = embedding.Encode(e.Embedding)
		if err != nil {
			return nil, fmt.Errorf("encode embedding: %w", err)
		}
	}

	return &entryRow{
		ID:        e.ID,
		Revision:  e.Revision,
		Type:      string(e.Type),
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
		Payload:   payload,
		Embedding: blob,
	}, nil
}

// fromRow reassembles an entry from its row.
func fromRow(
	row *entryRow,
) (*entry.Entry, error) {
	var e entry.Entry
	if err := json.Unmarshal(row.Payload, &e); err != nil {
		return nil, fmt.Errorf("unmarshal entry payload: %w", err)
	}

	if len(row.Embedding) > 0 {
		vec, err := embedding.Decode(row.Embedding)
		if err != nil {
			return nil, fmt.Errorf("decode embedding: %w", err)
		}
		e.Embedding = vec
	}

	return &e, nil
}
