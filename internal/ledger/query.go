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
	"sort"
	"strings"

	"github.com/lux-io/ledger/internal/embedding"
	"github.com/lux-io/ledger/internal/entry"
)

// ListFilter narrows a List call. Zero-value fields match everything.
type ListFilter struct {
	// Type filters by entry type when non-empty.
	Type entry.Type
	// Status filters by lifecycle state when non-empty. Filtering on
	// archived implies IncludeArchived.
	Status entry.Status
	// Author filters by author role when non-empty.
	Author entry.Role
	// Tag matches entries carrying the tag when non-empty.
	Tag string
	// IncludeArchived includes archived entries, excluded by default.
	IncludeArchived bool
}

// SimilarResult pairs an entry with its cosine-similarity score against
// the lookup target.
type SimilarResult struct {
	// Entry is the related entry.
	Entry *entry.Entry `json:"entry"`
	// Score is the cosine similarity in [-1, 1].
	Score float64 `json:"score"`
}

// Get retrieves an entry by id. Archived entries remain retrievable.
func (s *Service) Get(
	ctx context.Context,
	id string,
) (*entry.Entry, error) {
	var e *entry.Entry
	err := s.monitor.Track("get", func() error {
		var getErr error
		e, getErr = s.load(ctx, id)
		return getErr
	})
	if err != nil {
		return nil, err
	}

	return e, nil
}

// List returns entries matching the filter, ordered by event date
// descending with createdAt descending breaking ties. Archived entries
// are excluded unless the filter asks for them.
func (s *Service) List(
	ctx context.Context,
	filter ListFilter,
) ([]*entry.Entry, error) {
	var entries []*entry.Entry
	err := s.monitor.Track("list", func() error {
		all, listErr := s.listAll(ctx)
		if listErr != nil {
			return listErr
		}

		for _, e := range all {
			if matchesFilter(e, filter) {
				entries = append(entries, e)
			}
		}
		sortEntries(entries)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// Search returns non-archived entries whose title, executive summary, or
// tags contain the query, case-insensitively. An empty query returns the
// full ordered list.
func (s *Service) Search(
	ctx context.Context,
	query string,
) ([]*entry.Entry, error) {
	var entries []*entry.Entry
	err := s.monitor.Track("search", func() error {
		all, listErr := s.listAll(ctx)
		if listErr != nil {
			return listErr
		}

		q := strings.ToLower(strings.TrimSpace(query))
		for _, e := range all {
			if e.Status == entry.StatusArchived {
				continue
			}
			if q == "" || matchesQuery(e, q) {
				entries = append(entries, e)
			}
		}
		sortEntries(entries)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// FindSimilar ranks all other non-archived entries by embedding cosine
// similarity against the target entry, descending, truncated to topK. The
// target itself never appears in the results.
func (s *Service) FindSimilar(
	ctx context.Context,
	id string,
	topK int,
) ([]SimilarResult, error) {
	var results []SimilarResult
	err := s.monitor.Track("find_similar", func() error {
		target, loadErr := s.load(ctx, id)
		if loadErr != nil {
			return loadErr
		}

		if topK <= 0 {
			return nil
		}

		all, listErr := s.listAll(ctx)
		if listErr != nil {
			return listErr
		}

		for _, e := range all {
			if e.ID == target.ID || e.Status == entry.StatusArchived {
				continue
			}
			results = append(results, SimilarResult{
				Entry: e,
				Score: embedding.Cosine(target.Embedding, e.Embedding),
			})
		}

		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Score > results[j].Score
		})
		if len(results) > topK {
			results = results[:topK]
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

func (s *Service) listAll(
	ctx context.Context,
) ([]*entry.Entry, error) {
	var entries []*entry.Entry
	err := withRetry(ctx, s.retry, func() error {
		var listErr error
		entries, listErr = s.store.List(ctx)
		return listErr
	})
	if err != nil {
		return nil, &PersistenceError{Op: "list", Err: err}
	}

	return entries, nil
}

func matchesFilter(
	e *entry.Entry,
	f ListFilter,
) bool {
	includeArchived := f.IncludeArchived || f.Status == entry.StatusArchived
	if e.Status == entry.StatusArchived && !includeArchived {
		return false
	}
	if f.Type != "" && e.Type != f.Type {
		return false
	}
	if f.Status != "" && e.Status != f.Status {
		return false
	}
	if f.Author != "" && e.Author != f.Author {
		return false
	}
	if f.Tag != "" && !hasTag(e, f.Tag) {
		return false
	}

	return true
}

func hasTag(
	e *entry.Entry,
	tag string,
) bool {
	for _, t := range e.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}

	return false
}

func matchesQuery(
	e *entry.Entry,
	q string,
) bool {
	if strings.Contains(strings.ToLower(e.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(e.ExecutiveSummary), q) {
		return true
	}
	for _, t := range e.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}

	return false
}

// sortEntries orders by event date descending, createdAt descending on
// ties. Entries with an unparseable date sort by createdAt alone.
func sortEntries(
	entries []*entry.Entry,
) {
	sort.SliceStable(entries, func(i, j int) bool {
		di, errI := entries[i].ParseDate()
		dj, errJ := entries[j].ParseDate()
		if errI != nil {
			di = entries[i].CreatedAt
		}
		if errJ != nil {
			dj = entries[j].CreatedAt
		}

		if !di.Equal(dj) {
			return di.After(dj)
		}

		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
}
