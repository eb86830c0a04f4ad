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

// Package ledger owns the entry records and enforces the
// draft/published/superseded lifecycle.
package ledger

import (
	"context"
	"fmt"

	"github.com/lux-io/ledger/internal/entry"
)

// Store persists entries. One row per entry keyed by id, with the entry's
// Revision as the optimistic-concurrency token. Implementations return
// *entry.NotFoundError for unknown ids.
type Store interface {
	// Put creates or replaces an entry.
	Put(ctx context.Context, e *entry.Entry) error
	// Get retrieves an entry by id.
	Get(ctx context.Context, id string) (*entry.Entry, error)
	// List returns every stored entry, archived included.
	List(ctx context.Context) ([]*entry.Entry, error)
	// Delete removes an entry.
	Delete(ctx context.Context, id string) error
}

// PersistenceError wraps a storage layer failure after retries exhaust.
// The caller must re-submit the operation.
type PersistenceError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying storage error.
func (e *PersistenceError) Unwrap() error {
	return e.Err
}
