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

package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxRecords caps the in-memory log when no size is configured.
const DefaultMaxRecords = 10000

// Log is the append-only audit log: a capped in-memory ring with an
// optional durable mirror. Append never fails due to buffer pressure;
// once the cap is exceeded the oldest records drop. It is the one shared
// mutable structure touched by every write path and is safe for
// concurrent appends without reordering within a single entry's history.
type Log struct {
	logger *slog.Logger
	mirror Store

	mu      sync.Mutex
	records []Record
	max     int
	nextSeq int64
}

// Option configures optional Log behavior.
type Option func(*Log)

// WithMirror adds a durable store every appended record is mirrored to.
// Mirror failures are logged, never surfaced.
func WithMirror(
	store Store,
) Option {
	return func(l *Log) {
		l.mirror = store
	}
}

// NewLog creates an audit log capped at max records.
func NewLog(
	logger *slog.Logger,
	max int,
	opts ...Option,
) *Log {
	if max <= 0 {
		max = DefaultMaxRecords
	}

	l := &Log{
		logger:  logger,
		max:     max,
		nextSeq: 1,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Append assigns a sequence number and appends the record. It must never
// return an error: a failed mirror write is logged to the fallback channel
// and the triggering mutation proceeds.
func (l *Log) Append(
	ctx context.Context,
	rec Record,
) Record {
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}
	rec.ID = newRecordID()

	l.mu.Lock()
	rec.Seq = l.nextSeq
	l.nextSeq++

	l.records = append(l.records, rec)
	if len(l.records) > l.max {
		l.records = l.records[len(l.records)-l.max:]
	}
	l.mu.Unlock()

	if l.mirror != nil {
		if err := l.mirror.Write(ctx, rec); err != nil {
			l.logger.Warn(
				"audit mirror write failed",
				slog.Int64("seq", rec.Seq),
				slog.String("entry_id", rec.EntryID),
				slog.String("error", err.Error()),
			)
		}
	}

	return rec
}

// Query returns records matching the filter in ascending sequence order.
func (l *Log) Query(
	filter Filter,
) []Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []Record
	for _, rec := range l.records {
		if matches(rec, filter) {
			out = append(out, rec)
		}
	}

	return out
}

// Get returns a single record by id.
func (l *Log) Get(
	id string,
) (*Record, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.records {
		if l.records[i].ID == id {
			rec := l.records[i]
			return &rec, true
		}
	}

	return nil, false
}

// Page returns records newest-first with pagination, plus the total count.
func (l *Log) Page(
	limit int,
	offset int,
) ([]Record, int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := len(l.records)
	if offset >= total {
		return []Record{}, total
	}

	out := make([]Record, 0, limit)
	for i := total - 1 - offset; i >= 0 && len(out) < limit; i-- {
		out = append(out, l.records[i])
	}

	return out, total
}

// Len returns the current record count.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.records)
}

func matches(
	rec Record,
	f Filter,
) bool {
	if !f.Since.IsZero() && rec.Timestamp.Before(f.Since) {
		return false
	}
	if !f.Until.IsZero() && rec.Timestamp.After(f.Until) {
		return false
	}
	if f.Action != "" && rec.Action != f.Action {
		return false
	}
	if f.EntryID != "" && rec.EntryID != f.EntryID {
		return false
	}

	return true
}

// newRecordID returns a time-sortable record id. UUIDv7 generation only
// fails when the random source is exhausted; fall back to v4 so Append
// keeps its never-fails contract.
func newRecordID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}

	return id.String()
}
