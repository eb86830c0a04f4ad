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

	"github.com/nats-io/nats.go"

	"github.com/lux-io/ledger/internal/entry"
)

// ensure KVStore implements Store at compile time.
var _ Store = (*KVStore)(nil)

// KVStore implements Store backed by a NATS KeyValue bucket. Every write
// flows through the lifecycle engine, which bumps Revision by exactly 1,
// so the per-key KV revision tracks the entry revision and serves as the
// optimistic-concurrency token.
type KVStore struct {
	kv     nats.KeyValue
	logger *slog.Logger
}

// NewKVStore creates a new KVStore.
func NewKVStore(
	logger *slog.Logger,
	kv nats.KeyValue,
) *KVStore {
	return &KVStore{
		kv:     kv,
		logger: logger,
	}
}

// Put creates the entry when Revision is 1 and otherwise performs a
// compare-and-swap against the previous revision, rejecting lost updates.
func (s *KVStore) Put(
	ctx context.Context,
	e *entry.Entry,
) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}

	if e.Revision <= 1 {
		if _, err := s.kv.Create(e.ID, data); err != nil {
			return fmt.Errorf("create entry: %w", err)
		}

		return nil
	}

	if _, err := s.kv.Update(e.ID, data, uint64(e.Revision-1)); err != nil {
		return fmt.Errorf("update entry at revision %d: %w", e.Revision, err)
	}

	return nil
}

// Get retrieves an entry by id.
func (s *KVStore) Get(
	_ context.Context,
	id string,
) (*entry.Entry, error) {
	kve, err := s.kv.Get(id)
	if err != nil {
		if errors.Is(err, nats.ErrKeyNotFound) {
			return nil, &entry.NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("get entry: %w", err)
	}

	var e entry.Entry
	if err := json.Unmarshal(kve.Value(), &e); err != nil {
		return nil, fmt.Errorf("unmarshal entry: %w", err)
	}

	return &e, nil
}

// List returns every stored entry, archived included.
func (s *KVStore) List(
	_ context.Context,
) ([]*entry.Entry, error) {
	keys, err := s.kv.Keys()
	if err != nil {
		// nats.ErrNoKeysFound means the bucket is empty
		if errors.Is(err, nats.ErrNoKeysFound) {
			return []*entry.Entry{}, nil
		}
		return nil, fmt.Errorf("list entry keys: %w", err)
	}

	entries := make([]*entry.Entry, 0, len(keys))
	for _, key := range keys {
		kve, err := s.kv.Get(key)
		if err != nil {
			s.logger.Warn(
				"failed to get entry",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
			continue
		}

		var e entry.Entry
		if err := json.Unmarshal(kve.Value(), &e); err != nil {
			s.logger.Warn(
				"failed to unmarshal entry",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
			continue
		}

		entries = append(entries, &e)
	}

	return entries, nil
}

// Delete removes an entry.
func (s *KVStore) Delete(
	_ context.Context,
	id string,
) error {
	if _, err := s.kv.Get(id); err != nil {
		if errors.Is(err, nats.ErrKeyNotFound) {
			return &entry.NotFoundError{ID: id}
		}
		return fmt.Errorf("get entry: %w", err)
	}

	if err := s.kv.Delete(id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	return nil
}
