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
	"sort"
	"strings"

	"github.com/lux-io/ledger/internal/entry"
)

// Diff compares the narrative fields, status, and tags of two entry
// versions and returns only the fields whose serialized value changed.
// Diff(e, e) returns an empty list.
func Diff(
	oldE *entry.Entry,
	newE *entry.Entry,
) []FieldChange {
	var changes []FieldChange

	fields := []struct {
		name string
		old  string
		new  string
	}{
		{"title", oldE.Title, newE.Title},
		{"executive_summary", oldE.ExecutiveSummary, newE.ExecutiveSummary},
		{"what_changed", oldE.WhatChanged, newE.WhatChanged},
		{"decisions_rationale", oldE.DecisionsRationale, newE.DecisionsRationale},
		{"risks_mitigations", oldE.RisksMitigations, newE.RisksMitigations},
		{"status", string(oldE.Status), string(newE.Status)},
		{"tags", serializeTags(oldE.Tags), serializeTags(newE.Tags)},
	}

	for _, f := range fields {
		if f.old != f.new {
			changes = append(changes, FieldChange{
				Field: f.name,
				Old:   f.old,
				New:   f.new,
			})
		}
	}

	return changes
}

// Snapshot renders every diffable field of an entry as a change list with
// empty old values. Used for the full snapshot logged on create.
func Snapshot(
	e *entry.Entry,
) []FieldChange {
	return Diff(&entry.Entry{}, e)
}

// serializeTags sorts before joining so insertion order never produces a
// spurious change.
func serializeTags(
	tags []string,
) string {
	sorted := append([]string(nil), tags...)
	sort.Strings(sorted)

	return strings.Join(sorted, ",")
}
