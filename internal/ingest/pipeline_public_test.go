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

package ingest_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/lux-io/ledger/internal/audit"
	"github.com/lux-io/ledger/internal/entry"
	"github.com/lux-io/ledger/internal/ingest"
	"github.com/lux-io/ledger/internal/ledger"
	"github.com/lux-io/ledger/internal/monitor"
)

type PipelinePublicTestSuite struct {
	suite.Suite

	ctx      context.Context
	service  *ledger.Service
	pipeline *ingest.Pipeline
}

func (s *PipelinePublicTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.service = ledger.New(
		slog.Default(),
		ledger.NewMemoryStore(),
		audit.NewLog(slog.Default(), 0),
		monitor.New(slog.Default(), nil, nil),
	)
	s.pipeline = ingest.NewPipeline(slog.Default(), s.service, false)
}

func (s *PipelinePublicTestSuite) mergedPR() ingest.PullRequestEvent {
	mergedAt := time.Date(2025, 2, 3, 12, 0, 0, 0, time.UTC)

	return ingest.PullRequestEvent{
		Number: 42,
		Title:  "Rollback database migration",
		Body: "## What Changed\nReverted migration 0042.\n" +
			"## Rationale\nThe migration locked the users table.\n" +
			"## Risks\nSchema drift until the fixed migration lands.\n",
		Author:   "alice",
		URL:      "https://control-hub.example.com/pr/42",
		Labels:   []string{"Database"},
		HeadSHA:  "ABCDEF1234567890ABCDEF1234567890ABCDEF12",
		MergedAt: &mergedAt,
	}
}

func (s *PipelinePublicTestSuite) TestIngestMergedPullRequest() {
	result, err := s.pipeline.IngestPullRequest(s.ctx, s.mergedPR())
	s.Require().NoError(err)

	e := result.Entry
	s.Equal(entry.TypeRollback, e.Type)
	s.Equal(entry.StatusDraft, e.Status)
	s.Equal(entry.RoleScribe, e.Author)
	s.Equal(int64(1), e.Revision)
	s.Equal("2025-02-03 12:00:00", e.Date)
	s.Equal("Reverted migration 0042.", e.WhatChanged)

	s.Contains(e.Tags, "rollback")
	s.Contains(e.Tags, "database")

	s.Require().Len(e.References, 2)
	s.Equal(entry.RefExternal, e.References[0].Type)
	s.Equal(entry.RefCommitHash, e.References[1].Type)
	s.Equal("abcdef1", e.References[1].ID)
}

func (s *PipelinePublicTestSuite) TestIngestUnmergedPullRequestSkips() {
	ev := s.mergedPR()
	ev.MergedAt = nil

	_, err := s.pipeline.IngestPullRequest(s.ctx, ev)

	var skip *ingest.SkipError
	s.Require().ErrorAs(err, &skip)

	// A skipped event creates zero entries.
	entries, err := s.service.List(s.ctx, ledger.ListFilter{})
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *PipelinePublicTestSuite) TestIngestIssue() {
	closedAt := time.Date(2025, 2, 4, 9, 30, 0, 0, time.UTC)
	ev := ingest.IssueEvent{
		Number:   7,
		Title:    "Cache outage on edge nodes",
		Body:     "no structured sections",
		Author:   "bob",
		URL:      "https://control-hub.example.com/issues/7",
		Labels:   []string{"ops"},
		Action:   "closed",
		ClosedAt: &closedAt,
	}

	result, err := s.pipeline.IngestIssue(s.ctx, ev)
	s.Require().NoError(err)

	s.Equal(entry.TypeIncident, result.Entry.Type)
	s.Equal(ingest.SectionPlaceholder, result.Entry.WhatChanged)

	ev.Action = "labeled"
	_, err = s.pipeline.IngestIssue(s.ctx, ev)
	var skip *ingest.SkipError
	s.Require().ErrorAs(err, &skip)
}

func (s *PipelinePublicTestSuite) TestIngestRelease() {
	publishedAt := time.Date(2025, 2, 5, 18, 0, 0, 0, time.UTC)
	ev := ingest.ReleaseEvent{
		TagName:     "v2.1.0",
		Body:        "## What Changed\nShipped the new ingestion worker.\n",
		Author:      "carol",
		URL:         "https://control-hub.example.com/releases/v2.1.0",
		PublishedAt: &publishedAt,
	}

	result, err := s.pipeline.IngestRelease(s.ctx, ev)
	s.Require().NoError(err)

	// Name fallback and milestone classification via the release label.
	s.Equal("Release v2.1.0", result.Entry.Title)
	s.Equal(entry.TypeMilestone, result.Entry.Type)

	ev.PublishedAt = nil
	_, err = s.pipeline.IngestRelease(s.ctx, ev)
	var skip *ingest.SkipError
	s.Require().ErrorAs(err, &skip)
}

func (s *PipelinePublicTestSuite) TestAutoPublish() {
	pipeline := ingest.NewPipeline(slog.Default(), s.service, true)

	result, err := pipeline.IngestPullRequest(s.ctx, s.mergedPR())
	s.Require().NoError(err)
	s.Equal(entry.StatusPublished, result.Entry.Status)
}

func TestPipelinePublicTestSuite(t *testing.T) {
	suite.Run(t, new(PipelinePublicTestSuite))
}
