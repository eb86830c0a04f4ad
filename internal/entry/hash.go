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

package entry

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// IntegrityDigest computes the tamper-evidence digest over the entry's
// content fields. Derived fields (hash, embedding) and system timestamps
// are excluded so the digest is stable across recomputation.
func IntegrityDigest(
	e *Entry,
) string {
	h := sha256.New()

	parts := []string{
		e.ID,
		e.Date,
		e.Title,
		e.ExecutiveSummary,
		e.WhatChanged,
		e.DecisionsRationale,
		e.RisksMitigations,
		string(e.Type),
		string(e.Author),
		string(e.Status),
		e.SupersedesEntryID,
		strings.Join(sortedTags(e.Tags), ","),
	}
	for _, ref := range e.References {
		parts = append(parts, ref.ID, string(ref.Type), ref.Description, ref.URL)
	}

	h.Write([]byte(strings.Join(parts, "\x1f")))

	return hex.EncodeToString(h.Sum(nil))
}

// sortedTags returns a sorted copy so tag insertion order never changes
// the digest.
func sortedTags(
	tags []string,
) []string {
	out := append([]string(nil), tags...)
	sort.Strings(out)

	return out
}
