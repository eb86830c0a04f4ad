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
	"log/slog"
	"strconv"

	"github.com/lux-io/ledger/internal/audit"
	"github.com/lux-io/ledger/internal/entry"
	"github.com/lux-io/ledger/internal/template"
)

// SupersedeResult pairs the archived original with its replacement.
type SupersedeResult struct {
	// Old is the original entry, now archived.
	Old *entry.Entry `json:"old"`
	// New is the replacement entry.
	New *entry.Entry `json:"new"`
}

// Publish promotes a draft to published. Only lux and mini-lux may
// publish; the transition bumps the revision and appends exactly one
// publish audit record. Publishing an already-published entry is a no-op.
func (s *Service) Publish(
	ctx context.Context,
	id string,
	role entry.Role,
) (*entry.Entry, error) {
	if err := audit.Authorize(audit.ActionPublish, role); err != nil {
		return nil, err
	}

	var published *entry.Entry
	err := s.monitor.Track("publish", func() error {
		unlock := s.locks.lock(id)
		defer unlock()

		prev, err := s.load(ctx, id)
		if err != nil {
			return err
		}
		if prev.Status == entry.StatusArchived {
			return &entry.ArchivedError{ID: id}
		}
		if prev.Status == entry.StatusPublished {
			published = prev
			return nil
		}

		next := prev.Clone()
		next.Status = entry.StatusPublished
		next.Revision = prev.Revision + 1
		next.UpdatedAt = s.now()
		s.derive(next)

		if err := s.persist(ctx, next); err != nil {
			return err
		}

		s.auditLog.Append(ctx, audit.Record{
			Action:     audit.ActionPublish,
			EntryID:    next.ID,
			AuthorRole: role,
			Changes:    audit.Diff(prev, next),
		})

		s.logger.Info(
			"entry published",
			slog.String("id", next.ID),
			slog.String("role", string(role)),
		)

		published = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	return published, nil
}

// Supersede replaces an entry in full: the replacement is persisted with
// the supersede link and the original flips to archived. Both mutations
// become visible together or not at all; a failed archive rolls the
// replacement back with a compensating delete. The two audit records
// share one batch id.
func (s *Service) Supersede(
	ctx context.Context,
	oldID string,
	newE *entry.Entry,
	role entry.Role,
) (*SupersedeResult, error) {
	var result *SupersedeResult
	err := s.monitor.Track("supersede", func() error {
		replacement := newE.Clone()
		replacement.ID = newEntryID()
		replacement.Revision = 1
		replacement.SupersedesEntryID = oldID
		if replacement.Status == "" {
			replacement.Status = entry.StatusPublished
		}

		unlock := s.locks.lockPair(oldID, replacement.ID)
		defer unlock()

		prev, err := s.load(ctx, oldID)
		if err != nil {
			return err
		}
		if prev.Status == entry.StatusArchived {
			return &entry.ArchivedError{ID: oldID}
		}

		now := s.now()
		replacement.CreatedAt = now
		replacement.UpdatedAt = now

		if verrs := template.Validate(replacement); verrs != nil {
			return verrs
		}
		s.derive(replacement)

		if err := s.persist(ctx, replacement); err != nil {
			return err
		}

		archived := prev.Clone()
		archived.Status = entry.StatusArchived
		archived.Revision = prev.Revision + 1
		archived.UpdatedAt = now
		s.derive(archived)

		if err := s.persist(ctx, archived); err != nil {
			// Roll the replacement back so a superseded entry never
			// exists without a visible replacement, and vice versa.
			if delErr := s.store.Delete(ctx, replacement.ID); delErr != nil {
				s.logger.Error(
					"supersede compensation failed",
					slog.String("replacement_id", replacement.ID),
					slog.String("error", delErr.Error()),
				)
			}
			return err
		}

		batchID := newEntryID()
		s.auditLog.Append(ctx, audit.Record{
			Action:     audit.ActionCreate,
			EntryID:    replacement.ID,
			AuthorRole: role,
			Changes:    audit.Snapshot(replacement),
			Metadata: map[string]string{
				"batch_id":   batchID,
				"supersedes": oldID,
			},
		})
		s.auditLog.Append(ctx, audit.Record{
			Action:     audit.ActionArchive,
			EntryID:    oldID,
			AuthorRole: role,
			Changes:    audit.Diff(prev, archived),
			Metadata: map[string]string{
				"batch_id":      batchID,
				"superseded_by": replacement.ID,
			},
		})

		s.logger.Info(
			"entry superseded",
			slog.String("old_id", oldID),
			slog.String("new_id", replacement.ID),
		)

		result = &SupersedeResult{Old: archived, New: replacement}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Delete hard-deletes an entry. Only lux may delete; the audit record
// carries a full snapshot of the removed content for recovery.
func (s *Service) Delete(
	ctx context.Context,
	id string,
	role entry.Role,
) error {
	if err := audit.Authorize(audit.ActionDelete, role); err != nil {
		return err
	}

	return s.monitor.Track("delete", func() error {
		unlock := s.locks.lock(id)
		defer unlock()

		prev, err := s.load(ctx, id)
		if err != nil {
			return err
		}

		err = withRetry(ctx, s.retry, func() error {
			return s.store.Delete(ctx, id)
		})
		if err != nil {
			return &PersistenceError{Op: "delete", Err: err}
		}

		s.auditLog.Append(ctx, audit.Record{
			Action:     audit.ActionDelete,
			EntryID:    id,
			AuthorRole: role,
			Changes:    audit.Snapshot(prev),
			Metadata: map[string]string{
				"deleted_revision": strconv.FormatInt(prev.Revision, 10),
			},
		})

		s.logger.Info(
			"entry deleted",
			slog.String("id", id),
			slog.String("role", string(role)),
		)

		return nil
	})
}
