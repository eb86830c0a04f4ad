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

// Package template provides per-type entry skeletons and the
// minimum-structure validation rules.
package template

import (
	"fmt"
	"time"

	"github.com/lux-io/ledger/internal/entry"
)

// Skeleton is the behavior descriptor for one entry type: suggested tags
// plus example text for each narrative field.
type Skeleton struct {
	Type               entry.Type
	SuggestedTags      []string
	ExecutiveSummary   string
	WhatChanged        string
	DecisionsRationale string
	RisksMitigations   string
}

// skeletons is the per-type lookup table.
var skeletons = map[entry.Type]Skeleton{
	entry.TypeDecision: {
		Type:               entry.TypeDecision,
		SuggestedTags:      []string{"decision", "architecture"},
		ExecutiveSummary:   "One-paragraph summary of the decision and its driver.",
		WhatChanged:        "The option chosen and the alternatives set aside.",
		DecisionsRationale: "Why this option won: constraints, trade-offs, data.",
		RisksMitigations:   "What could go wrong and the planned fallback.",
	},
	entry.TypeIncident: {
		Type:               entry.TypeIncident,
		SuggestedTags:      []string{"incident", "ops"},
		ExecutiveSummary:   "Impact, duration, and affected surface in one paragraph.",
		WhatChanged:        "Timeline of the incident and the remediation applied.",
		DecisionsRationale: "Root cause and why the remediation addresses it.",
		RisksMitigations:   "Residual risk and the follow-ups that reduce it.",
	},
	entry.TypeMilestone: {
		Type:               entry.TypeMilestone,
		SuggestedTags:      []string{"milestone", "release"},
		ExecutiveSummary:   "What shipped and who it serves.",
		WhatChanged:        "User-visible changes in this milestone.",
		DecisionsRationale: "Scope decisions made on the way to shipping.",
		RisksMitigations:   "Rollout risks and the monitoring in place.",
	},
	entry.TypeRoutine: {
		Type:               entry.TypeRoutine,
		SuggestedTags:      []string{"routine"},
		ExecutiveSummary:   "Short note on the routine change.",
		WhatChanged:        "The change as applied.",
		DecisionsRationale: "Why now.",
		RisksMitigations:   "Expected to be low risk; note anything unusual.",
	},
	entry.TypeRollback: {
		Type:               entry.TypeRollback,
		SuggestedTags:      []string{"rollback", "ops"},
		ExecutiveSummary:   "What was rolled back and the triggering symptom.",
		WhatChanged:        "The reverted change and the restored state.",
		DecisionsRationale: "Why rollback beat fixing forward.",
		RisksMitigations:   "State left behind by the rollback and its cleanup.",
	},
	entry.TypeFlip: {
		Type:               entry.TypeFlip,
		SuggestedTags:      []string{"feature-flag"},
		ExecutiveSummary:   "Flag flipped, direction, and affected cohort.",
		WhatChanged:        "Flag name, old value, new value.",
		DecisionsRationale: "Signal that justified the flip.",
		RisksMitigations:   "Blast radius and how to flip back.",
	},
}

// Lookup returns the skeleton for an entry type.
func Lookup(
	t entry.Type,
) (Skeleton, error) {
	sk, ok := skeletons[t]
	if !ok {
		return Skeleton{}, fmt.Errorf("no template for entry type %q", t)
	}

	return sk, nil
}

// CreateFromTemplate returns a pre-filled draft for the given type.
func CreateFromTemplate(
	t entry.Type,
	now time.Time,
) (*entry.Entry, error) {
	sk, err := Lookup(t)
	if err != nil {
		return nil, err
	}

	return &entry.Entry{
		Type:               t,
		Status:             entry.StatusDraft,
		Date:               now.UTC().Format(entry.DateLayout),
		Tags:               append([]string(nil), sk.SuggestedTags...),
		ExecutiveSummary:   sk.ExecutiveSummary,
		WhatChanged:        sk.WhatChanged,
		DecisionsRationale: sk.DecisionsRationale,
		RisksMitigations:   sk.RisksMitigations,
	}, nil
}
