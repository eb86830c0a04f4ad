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

package template

import "github.com/lux-io/ledger/internal/entry"

// QuickWriteCeiling is the per-field length ceiling (in characters) for
// the quick-write criteria.
const QuickWriteCeiling = 500

// QuickWrite reports whether the entry meets the quick-write criteria:
// validation passes and every narrative field stays under the ceiling.
// Entries failing it are flagged as unlikely to be authorable in a few
// minutes.
func QuickWrite(
	e *entry.Entry,
) bool {
	if Validate(e) != nil {
		return false
	}

	fields := []string{
		e.Title,
		e.ExecutiveSummary,
		e.WhatChanged,
		e.DecisionsRationale,
		e.RisksMitigations,
	}
	for _, f := range fields {
		if len([]rune(f)) >= QuickWriteCeiling {
			return false
		}
	}

	return true
}
