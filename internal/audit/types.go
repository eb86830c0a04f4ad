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

// Package audit provides the append-only mutation log, per-field diffing,
// role authorization, and sensitive-content scanning.
package audit

import (
	"context"
	"time"

	"github.com/lux-io/ledger/internal/entry"
)

// Action is the audited mutation kind.
type Action string

// Audited actions.
const (
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
	ActionPublish Action = "publish"
	ActionArchive Action = "archive"
)

// FieldChange records one field whose serialized value changed.
type FieldChange struct {
	Field string `json:"field"`
	Old   string `json:"old"`
	New   string `json:"new"`
}

// Record is a single append-only audit log record. Records are never
// deleted or mutated after write.
type Record struct {
	// Seq is the monotonically increasing sequence number assigned on append.
	Seq int64 `json:"seq"`
	// ID is the unique identifier for this record (time-sortable).
	ID string `json:"id"`
	// Timestamp is when the mutation was processed.
	Timestamp time.Time `json:"timestamp"`
	// Action is the mutation kind.
	Action Action `json:"action"`
	// EntryID is the ledger entry the mutation touched.
	EntryID string `json:"entry_id"`
	// AuthorRole is the role that performed the mutation.
	AuthorRole entry.Role `json:"author_role"`
	// Changes lists the fields whose values changed.
	Changes []FieldChange `json:"changes,omitempty"`
	// Metadata carries action-specific context (batch ids, snapshots).
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Filter narrows a Query over the log.
type Filter struct {
	// Since and Until bound the time range (inclusive, zero means unbounded).
	Since time.Time
	Until time.Time
	// Action filters by mutation kind when non-empty.
	Action Action
	// EntryID filters by ledger entry when non-empty.
	EntryID string
}

// Store persists audit records durably, mirroring the in-memory log.
type Store interface {
	// Write persists an audit record.
	Write(ctx context.Context, rec Record) error
}
