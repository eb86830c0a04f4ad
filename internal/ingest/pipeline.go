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

package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lux-io/ledger/internal/entry"
	"github.com/lux-io/ledger/internal/ledger"
)

// Pipeline converts lifecycle events into ledger entries. Each event maps
// to one independent entry creation; ingestion errors are surfaced to the
// caller but never crash a consuming loop.
type Pipeline struct {
	logger      *slog.Logger
	service     *ledger.Service
	autoPublish bool
}

// NewPipeline creates a Pipeline. With autoPublish the synthesized
// entries are saved as published instead of draft.
func NewPipeline(
	logger *slog.Logger,
	service *ledger.Service,
	autoPublish bool,
) *Pipeline {
	return &Pipeline{
		logger:      logger,
		service:     service,
		autoPublish: autoPublish,
	}
}

// IngestPullRequest converts a merged pull request into a ledger entry.
// Unmerged pull requests are skipped.
func (p *Pipeline) IngestPullRequest(
	ctx context.Context,
	ev PullRequestEvent,
) (*ledger.SaveResult, error) {
	if ev.MergedAt == nil {
		return nil, &SkipError{Reason: "pull request has no merge timestamp"}
	}

	refs := []entry.Reference{{
		ID:          ev.URL,
		Type:        entry.RefExternal,
		Description: fmt.Sprintf("pull request #%d by %s", ev.Number, ev.Author),
		URL:         ev.URL,
	}}
	if sha := shortSHA(ev.HeadSHA); sha != "" {
		refs = append(refs, entry.Reference{
			ID:          sha,
			Type:        entry.RefCommitHash,
			Description: fmt.Sprintf("head commit of pull request #%d", ev.Number),
		})
	}

	return p.save(ctx, eventEntry{
		title:   ev.Title,
		body:    ev.Body,
		labels:  ev.Labels,
		when:    *ev.MergedAt,
		summary: fmt.Sprintf("Recorded automatically from merged pull request #%d by %s.", ev.Number, ev.Author),
		refs:    refs,
	})
}

// IngestIssue converts a closed issue into a ledger entry. Any other
// issue action is skipped.
func (p *Pipeline) IngestIssue(
	ctx context.Context,
	ev IssueEvent,
) (*ledger.SaveResult, error) {
	if ev.Action != "closed" {
		return nil, &SkipError{
			Reason: fmt.Sprintf("issue action %q is not closed", ev.Action),
		}
	}
	if ev.ClosedAt == nil {
		return nil, &SkipError{Reason: "closed issue has no close timestamp"}
	}

	return p.save(ctx, eventEntry{
		title:   ev.Title,
		body:    ev.Body,
		labels:  ev.Labels,
		when:    *ev.ClosedAt,
		summary: fmt.Sprintf("Recorded automatically from closed issue #%d by %s.", ev.Number, ev.Author),
		refs: []entry.Reference{{
			ID:          ev.URL,
			Type:        entry.RefExternal,
			Description: fmt.Sprintf("issue #%d by %s", ev.Number, ev.Author),
			URL:         ev.URL,
		}},
	})
}

// IngestRelease converts a published release into a ledger entry.
// Unpublished releases are skipped.
func (p *Pipeline) IngestRelease(
	ctx context.Context,
	ev ReleaseEvent,
) (*ledger.SaveResult, error) {
	if ev.PublishedAt == nil {
		return nil, &SkipError{Reason: "release has no published timestamp"}
	}

	title := ev.Name
	if title == "" {
		title = "Release " + ev.TagName
	}

	return p.save(ctx, eventEntry{
		title:   title,
		body:    ev.Body,
		labels:  []string{"release", ev.TagName},
		when:    *ev.PublishedAt,
		summary: fmt.Sprintf("Recorded automatically from release %s by %s.", ev.TagName, ev.Author),
		refs: []entry.Reference{{
			ID:          ev.URL,
			Type:        entry.RefExternal,
			Description: fmt.Sprintf("release %s by %s", ev.TagName, ev.Author),
			URL:         ev.URL,
		}},
	})
}

// eventEntry is the normalized shape all three event kinds reduce to
// before the entry is built.
type eventEntry struct {
	title   string
	body    string
	labels  []string
	when    time.Time
	summary string
	refs    []entry.Reference
}

func (p *Pipeline) save(
	ctx context.Context,
	ev eventEntry,
) (*ledger.SaveResult, error) {
	entryType, ruleTags := Classify(ev.title, ev.labels)
	whatChanged, rationale, risks := ExtractNarrative(ev.body)

	e := &entry.Entry{
		Date:               ev.when.UTC().Format(entry.DateLayout),
		Title:              ev.title,
		ExecutiveSummary:   ev.summary,
		WhatChanged:        whatChanged,
		DecisionsRationale: rationale,
		RisksMitigations:   risks,
		Type:               entryType,
		Tags:               unionTags(ruleTags, ev.labels, string(entryType)),
		Author:             entry.RoleScribe,
		References:         ev.refs,
	}
	if p.autoPublish {
		e.Status = entry.StatusPublished
	}

	result, err := p.service.Save(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("saving ingested entry: %w", err)
	}

	p.logger.Info(
		"event ingested",
		slog.String("id", result.Entry.ID),
		slog.String("type", string(result.Entry.Type)),
		slog.String("status", string(result.Entry.Status)),
	)

	return result, nil
}

// unionTags merges the heuristic tags, the event labels, and the entry
// type into one de-duplicated, lowercased set.
func unionTags(
	ruleTags []string,
	labels []string,
	entryType string,
) []string {
	seen := make(map[string]bool)
	var out []string

	add := func(tag string) {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			return
		}
		seen[tag] = true
		out = append(out, tag)
	}

	for _, t := range ruleTags {
		add(t)
	}
	for _, t := range labels {
		add(t)
	}
	add(entryType)

	return out
}

// shortSHA lowercases and truncates a commit hash to 7 characters,
// returning "" when the input is too short to be a hash.
func shortSHA(
	sha string,
) string {
	sha = strings.ToLower(strings.TrimSpace(sha))
	if len(sha) < 7 {
		return ""
	}

	return sha[:7]
}
