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

import (
	"strings"

	"github.com/lux-io/ledger/internal/entry"
	"github.com/lux-io/ledger/internal/reference"
	"github.com/lux-io/ledger/internal/validation"
)

const (
	// MinTitleLen is the minimum title length in characters.
	MinTitleLen = 5
	// RecommendedSummaryLen triggers a soft warning below this length.
	RecommendedSummaryLen = 40
)

// Warning is a soft finding that never blocks a save.
type Warning struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// structureCheck is the struct-shape slice of entry validation handled by
// the shared validator instance.
type structureCheck struct {
	Date   string `validate:"required,entry_date"`
	Author string `validate:"required,entry_role"`
	Type   string `validate:"required,entry_type"`
}

// Validate checks the minimum-structure rules: required narrative fields
// non-empty, title length, date layout, reference formats, and known
// author/type values. It returns nil when the entry is valid.
func Validate(
	e *entry.Entry,
) *entry.ValidationErrors {
	var errs []entry.FieldError

	required := []struct {
		field string
		value string
	}{
		{"title", e.Title},
		{"executive_summary", e.ExecutiveSummary},
		{"what_changed", e.WhatChanged},
		{"decisions_rationale", e.DecisionsRationale},
		{"risks_mitigations", e.RisksMitigations},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, entry.FieldError{
				Field:   r.field,
				Message: "must not be empty",
			})
		}
	}

	if e.Title != "" && len([]rune(e.Title)) < MinTitleLen {
		errs = append(errs, entry.FieldError{
			Field:   "title",
			Message: "must be at least 5 characters",
		})
	}

	if msg, ok := validation.Struct(structureCheck{
		Date:   e.Date,
		Author: string(e.Author),
		Type:   string(e.Type),
	}); !ok {
		errs = append(errs, entry.FieldError{
			Field:   "structure",
			Message: msg,
		})
	}

	errs = append(errs, reference.ValidateAll(e.References)...)

	if len(errs) == 0 {
		return nil
	}

	return &entry.ValidationErrors{Errors: errs}
}

// Warnings computes the soft findings for an entry: a short executive
// summary or a missing reference list. Advisory only.
func Warnings(
	e *entry.Entry,
) []Warning {
	var warns []Warning

	if len([]rune(e.ExecutiveSummary)) < RecommendedSummaryLen {
		warns = append(warns, Warning{
			Field:   "executive_summary",
			Message: "shorter than the recommended minimum length",
		})
	}

	if len(e.References) == 0 {
		warns = append(warns, Warning{
			Field:   "references",
			Message: "no references present",
		})
	}

	return warns
}
