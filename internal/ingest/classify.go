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
	"strings"

	"github.com/lux-io/ledger/internal/entry"
)

// classifyRule maps keywords found in the event title or labels onto an
// entry type. Rules are evaluated in declaration order; the first match
// wins and ties break by that order.
type classifyRule struct {
	entryType entry.Type
	keywords  []string
	tags      []string
}

// classifyRules is ordered by severity: a rollback of a release must
// classify as a rollback, not a milestone.
var classifyRules = []classifyRule{
	{
		entryType: entry.TypeRollback,
		keywords:  []string{"rollback", "roll back", "revert"},
		tags:      []string{"rollback"},
	},
	{
		entryType: entry.TypeIncident,
		keywords:  []string{"incident", "outage", "hotfix", "sev1", "sev2", "postmortem"},
		tags:      []string{"incident"},
	},
	{
		entryType: entry.TypeFlip,
		keywords:  []string{"feature flag", "feature-flag", "flag flip", "flip", "toggle"},
		tags:      []string{"feature-flag"},
	},
	{
		entryType: entry.TypeMilestone,
		keywords:  []string{"release", "launch", "milestone", "ga ", "general availability"},
		tags:      []string{"milestone"},
	},
	{
		entryType: entry.TypeDecision,
		keywords:  []string{"decision", "rfc", "adr", "proposal", "design doc"},
		tags:      []string{"decision"},
	},
}

// Classify picks the entry type for an event from its title and labels.
// Unmatched events default to a routine entry.
func Classify(
	title string,
	labels []string,
) (entry.Type, []string) {
	haystack := strings.ToLower(title)
	for _, label := range labels {
		haystack += "\n" + strings.ToLower(label)
	}

	for _, rule := range classifyRules {
		for _, kw := range rule.keywords {
			if strings.Contains(haystack, kw) {
				return rule.entryType, rule.tags
			}
		}
	}

	return entry.TypeRoutine, nil
}
