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

// Package entry defines the narrative ledger data model.
package entry

import "time"

// DateLayout is the fixed UTC layout for the Date field.
const DateLayout = "2006-01-02 15:04:05"

// Type classifies a ledger entry.
type Type string

// Known entry types.
const (
	TypeDecision  Type = "decision"
	TypeIncident  Type = "incident"
	TypeMilestone Type = "milestone"
	TypeRoutine   Type = "routine"
	TypeRollback  Type = "rollback"
	TypeFlip      Type = "flip"
)

// AllTypes is the full set of known entry types.
var AllTypes = []Type{
	TypeDecision,
	TypeIncident,
	TypeMilestone,
	TypeRoutine,
	TypeRollback,
	TypeFlip,
}

// Status is the lifecycle state of an entry.
type Status string

// Lifecycle states. Archived entries are immutable and hidden from
// default listings but remain retrievable by id.
const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// Role identifies one of the three fixed author roles.
type Role string

// The closed role set.
const (
	RoleLux     Role = "lux"
	RoleMiniLux Role = "mini-lux"
	RoleScribe  Role = "scribe"
)

// AllRoles is the full closed role set.
var AllRoles = []Role{RoleLux, RoleMiniLux, RoleScribe}

// RefType classifies a cross-link to an external artifact.
type RefType string

// Known reference types.
const (
	RefCommitHash        RefType = "commit-hash"
	RefDVJob             RefType = "dv-job"
	RefHUDSnapshot       RefType = "hud-snapshot"
	RefControlHubComment RefType = "control-hub-comment"
	RefExternal          RefType = "external"
)

// Reference is a typed cross-link from an entry to an external artifact.
type Reference struct {
	// ID identifies the referenced artifact (hash, job id, URL, ...).
	ID string `json:"id"`
	// Type is the reference kind.
	Type RefType `json:"type"`
	// Description is a short human-readable label.
	Description string `json:"description"`
	// URL is an optional link to the artifact.
	URL string `json:"url,omitempty"`
	// Timestamp is an optional artifact timestamp.
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// Entry is one narrative record.
type Entry struct {
	// ID is a time-sortable unique token (UUIDv7).
	ID string `json:"id"`
	// Revision increases by exactly 1 on every successful update.
	Revision int64 `json:"revision"`

	// CreatedAt and UpdatedAt come from the system clock (UTC).
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// Date is when the real-world event occurred, in DateLayout (UTC).
	// It may differ from CreatedAt.
	Date string `json:"date"`

	// Required narrative fields.
	Title              string `json:"title"`
	ExecutiveSummary   string `json:"executive_summary"`
	WhatChanged        string `json:"what_changed"`
	DecisionsRationale string `json:"decisions_rationale"`
	RisksMitigations   string `json:"risks_mitigations"`

	Type   Type     `json:"type"`
	Tags   []string `json:"tags,omitempty"`
	Author Role     `json:"author"`

	Status Status `json:"status"`
	// SupersedesEntryID links a replacement to the record it fully replaces.
	SupersedesEntryID string `json:"supersedes_entry_id,omitempty"`

	References []Reference `json:"references,omitempty"`

	// Embedding is recomputed on every content change.
	Embedding []float32 `json:"embedding,omitempty"`
	// IntegrityHash is a content digest recomputed on every content change.
	IntegrityHash string `json:"integrity_hash,omitempty"`
}

// ValidType reports whether t is a known entry type.
func ValidType(
	t Type,
) bool {
	for _, known := range AllTypes {
		if t == known {
			return true
		}
	}

	return false
}

// ValidRole reports whether r is one of the three fixed roles.
func ValidRole(
	r Role,
) bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}

	return false
}

// NarrativeText concatenates the narrative fields for embedding and
// sensitive-content scanning.
func (e *Entry) NarrativeText() string {
	return e.Title + "\n" +
		e.ExecutiveSummary + "\n" +
		e.WhatChanged + "\n" +
		e.DecisionsRationale + "\n" +
		e.RisksMitigations
}

// ParseDate parses the Date field against DateLayout in UTC.
func (e *Entry) ParseDate() (time.Time, error) {
	return time.ParseInLocation(DateLayout, e.Date, time.UTC)
}

// Clone returns a deep copy of the entry.
func (e *Entry) Clone() *Entry {
	out := *e

	if e.Tags != nil {
		out.Tags = append([]string(nil), e.Tags...)
	}
	if e.References != nil {
		out.References = append([]Reference(nil), e.References...)
	}
	if e.Embedding != nil {
		out.Embedding = append([]float32(nil), e.Embedding...)
	}

	return &out
}
