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
	"sync"

	"github.com/lux-io/ledger/internal/entry"
)

// ensure MemoryStore implements Store at compile time.
var _ Store = (*MemoryStore)(nil)

// MemoryStore is the in-process Store backend. Entries are cloned on both
// sides of the map so a reader always observes a version atomically, never
// a half-written mix of fields.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*entry.Entry
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*entry.Entry),
	}
}

// Put creates or replaces an entry.
func (s *MemoryStore) Put(
	_ context.Context,
	e *entry.Entry,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[e.ID] = e.Clone()

	return nil
}

// Get retrieves an entry by id.
func (s *MemoryStore) Get(
	_ context.Context,
	id string,
) (*entry.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, &entry.NotFoundError{ID: id}
	}

	return e.Clone(), nil
}

// List returns every stored entry, archived included.
func (s *MemoryStore) List(
	_ context.Context,
) ([]*entry.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entry.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.Clone())
	}

	return out, nil
}

// Delete removes an entry.
func (s *MemoryStore) Delete(
	_ context.Context,
	id string,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[id]; !ok {
		return &entry.NotFoundError{ID: id}
	}

	delete(s.entries, id)

	return nil
}
