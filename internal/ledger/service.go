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

// Package ledger implements the entry store and lifecycle engine: saves,
// lifecycle transitions, queries, and audit-log export over a pluggable
// storage backend.
package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lux-io/ledger/internal/audit"
	"github.com/lux-io/ledger/internal/embedding"
	"github.com/lux-io/ledger/internal/entry"
	"github.com/lux-io/ledger/internal/monitor"
	"github.com/lux-io/ledger/internal/template"
)

// Service coordinates validation, persistence, audit logging, and
// similarity lookup for ledger entries. All mutations of one entry id are
// serialized; operations on distinct ids run concurrently.
type Service struct {
	logger   *slog.Logger
	store    Store
	auditLog *audit.Log
	embedder embedding.TextEmbedder
	monitor  *monitor.Monitor
	retry    RetryConfig
	locks    *keyedMutex
	now      func() time.Time
}

// ServiceOption configures optional Service behavior.
type ServiceOption func(*Service)

// WithEmbedder overrides the default character-fold embedder.
func WithEmbedder(
	embedder embedding.TextEmbedder,
) ServiceOption {
	return func(s *Service) {
		s.embedder = embedder
	}
}

// WithRetryConfig overrides the persistence retry policy.
func WithRetryConfig(
	cfg RetryConfig,
) ServiceOption {
	return func(s *Service) {
		s.retry = cfg
	}
}

// WithClock overrides the system clock, used by tests.
func WithClock(
	now func() time.Time,
) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

// New creates a Service.
func New(
	logger *slog.Logger,
	store Store,
	auditLog *audit.Log,
	mon *monitor.Monitor,
	opts ...ServiceOption,
) *Service {
	s := &Service{
		logger:   logger,
		store:    store,
		auditLog: auditLog,
		embedder: embedding.NewCharFold(),
		monitor:  mon,
		retry:    DefaultRetryConfig(),
		locks:    newKeyedMutex(),
		now:      func() time.Time { return time.Now().UTC() },
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// AuditLog exposes the audit log for query and export surfaces.
func (s *Service) AuditLog() *audit.Log {
	return s.auditLog
}

// SaveResult is the outcome of a successful save: the persisted entry plus
// the advisory findings that never block the write.
type SaveResult struct {
	// Entry is the persisted entry.
	Entry *entry.Entry `json:"entry"`
	// Warnings are soft template findings.
	Warnings []template.Warning `json:"warnings,omitempty"`
	// Sensitive lists matched sensitive-content pattern names.
	Sensitive []string `json:"sensitive,omitempty"`
	// QuickWrite reports whether the entry meets the quick-write criteria.
	QuickWrite bool `json:"quick_write"`
}

// Save creates or updates an entry. An empty id creates a new entry with
// revision 1 and a server-assigned UUIDv7 id; a non-empty id updates the
// existing entry, bumping revision by exactly 1. A non-empty id that is
// unknown returns NotFoundError: creation only ever happens with an empty
// id, never as a silent upsert. Every save routes through template
// validation and audit logging.
func (s *Service) Save(
	ctx context.Context,
	e *entry.Entry,
) (*SaveResult, error) {
	var result *SaveResult
	err := s.monitor.Track("save", func() error {
		var saveErr error
		if e.ID == "" {
			result, saveErr = s.create(ctx, e)
		} else {
			result, saveErr = s.update(ctx, e)
		}
		return saveErr
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *Service) create(
	ctx context.Context,
	e *entry.Entry,
) (*SaveResult, error) {
	stored := e.Clone()
	stored.ID = newEntryID()
	stored.Revision = 1
	if stored.Status == "" {
		stored.Status = entry.StatusDraft
	}

	now := s.now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	if verrs := template.Validate(stored); verrs != nil {
		return nil, verrs
	}
	s.derive(stored)

	if err := s.persist(ctx, stored); err != nil {
		return nil, err
	}

	s.auditLog.Append(ctx, audit.Record{
		Action:     audit.ActionCreate,
		EntryID:    stored.ID,
		AuthorRole: stored.Author,
		Changes:    audit.Snapshot(stored),
	})

	s.logger.Info(
		"entry created",
		slog.String("id", stored.ID),
		slog.String("type", string(stored.Type)),
		slog.String("author", string(stored.Author)),
	)

	return s.result(stored), nil
}

func (s *Service) update(
	ctx context.Context,
	e *entry.Entry,
) (*SaveResult, error) {
	unlock := s.locks.lock(e.ID)
	defer unlock()

	prev, err := s.load(ctx, e.ID)
	if err != nil {
		return nil, err
	}
	if prev.Status == entry.StatusArchived {
		return nil, &entry.ArchivedError{ID: e.ID}
	}

	next := prev.Clone()
	mergeContent(next, e)
	if verrs := template.Validate(next); verrs != nil {
		return nil, verrs
	}

	next.Revision = prev.Revision + 1
	next.UpdatedAt = s.now()
	s.derive(next)

	if err := s.persist(ctx, next); err != nil {
		return nil, err
	}

	s.auditLog.Append(ctx, audit.Record{
		Action:     audit.ActionUpdate,
		EntryID:    next.ID,
		AuthorRole: next.Author,
		Changes:    audit.Diff(prev, next),
	})

	s.logger.Info(
		"entry updated",
		slog.String("id", next.ID),
		slog.Int64("revision", next.Revision),
	)

	return s.result(next), nil
}

// mergeContent applies the caller-supplied content fields onto the stored
// entry. System fields (id, revision, timestamps, derived values) and the
// supersede link are never caller-writable through save.
func mergeContent(
	dst *entry.Entry,
	src *entry.Entry,
) {
	dst.Date = src.Date
	dst.Title = src.Title
	dst.ExecutiveSummary = src.ExecutiveSummary
	dst.WhatChanged = src.WhatChanged
	dst.DecisionsRationale = src.DecisionsRationale
	dst.RisksMitigations = src.RisksMitigations
	dst.Type = src.Type
	dst.Author = src.Author

	dst.Tags = append([]string(nil), src.Tags...)
	dst.References = append([]entry.Reference(nil), src.References...)

	if src.Status != "" && src.Status != entry.StatusArchived {
		dst.Status = src.Status
	}
}

// derive recomputes the embedding and integrity hash from the current
// content.
func (s *Service) derive(
	e *entry.Entry,
) {
	e.Embedding = s.embedder.Embed(e.NarrativeText())
	e.IntegrityHash = entry.IntegrityDigest(e)
}

// persist writes the entry through the store with bounded retry.
func (s *Service) persist(
	ctx context.Context,
	e *entry.Entry,
) error {
	err := withRetry(ctx, s.retry, func() error {
		return s.store.Put(ctx, e)
	})
	if err != nil {
		return &PersistenceError{Op: "put", Err: err}
	}

	return nil
}

// load reads an entry without retry-wrapping not-found results.
func (s *Service) load(
	ctx context.Context,
	id string,
) (*entry.Entry, error) {
	var e *entry.Entry
	err := withRetry(ctx, s.retry, func() error {
		var getErr error
		e, getErr = s.store.Get(ctx, id)
		return getErr
	})
	if err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) result(
	e *entry.Entry,
) *SaveResult {
	return &SaveResult{
		Entry:      e,
		Warnings:   template.Warnings(e),
		Sensitive:  audit.ScanSensitive(e),
		QuickWrite: template.QuickWrite(e),
	}
}

// newEntryID returns a time-sortable entry id, falling back to v4 when the
// random source is exhausted.
func newEntryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}

	return id.String()
}
