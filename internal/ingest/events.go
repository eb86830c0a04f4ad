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

// Package ingest converts external lifecycle events (PR merges, issue
// closes, releases) into draft ledger entries.
package ingest

import (
	"fmt"
	"time"
)

// PullRequestEvent is a pull-request lifecycle signal. Only merged pull
// requests are ingested.
type PullRequestEvent struct {
	// Number is the pull request number.
	Number int `json:"number"`
	// Title is the pull request title.
	Title string `json:"title"`
	// Body is the free-text description.
	Body string `json:"body"`
	// Author is the source author handle.
	Author string `json:"author"`
	// URL links to the pull request.
	URL string `json:"url"`
	// Labels are the labels attached to the pull request.
	Labels []string `json:"labels,omitempty"`
	// HeadSHA is the head commit hash.
	HeadSHA string `json:"head_sha"`
	// MergedAt is the merge timestamp; nil means not merged.
	MergedAt *time.Time `json:"merged_at,omitempty"`
}

// IssueEvent is an issue lifecycle signal. Only closed issues are
// ingested.
type IssueEvent struct {
	// Number is the issue number.
	Number int `json:"number"`
	// Title is the issue title.
	Title string `json:"title"`
	// Body is the free-text description.
	Body string `json:"body"`
	// Author is the source author handle.
	Author string `json:"author"`
	// URL links to the issue.
	URL string `json:"url"`
	// Labels are the labels attached to the issue.
	Labels []string `json:"labels,omitempty"`
	// Action is the lifecycle action that produced the event.
	Action string `json:"action"`
	// ClosedAt is the close timestamp.
	ClosedAt *time.Time `json:"closed_at,omitempty"`
}

// ReleaseEvent is a release lifecycle signal. Only published releases are
// ingested.
type ReleaseEvent struct {
	// TagName is the release tag.
	TagName string `json:"tag_name"`
	// Name is the release display name.
	Name string `json:"name"`
	// Body are the release notes.
	Body string `json:"body"`
	// Author is the source author handle.
	Author string `json:"author"`
	// URL links to the release.
	URL string `json:"url"`
	// PublishedAt is the publish timestamp.
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// SkipError indicates a malformed or irrelevant event. It is logged and
// the ingestion loop continues with the next event; it never crashes the
// pipeline.
type SkipError struct {
	// Reason explains why the event was skipped.
	Reason string
}

// Error implements the error interface.
func (e *SkipError) Error() string {
	return fmt.Sprintf("ingestion skipped: %s", e.Reason)
}
