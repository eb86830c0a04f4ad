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

package template_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/lux-io/ledger/internal/entry"
	"github.com/lux-io/ledger/internal/template"
)

type TemplatePublicTestSuite struct {
	suite.Suite
}

func (s *TemplatePublicTestSuite) validEntry() *entry.Entry {
	return &entry.Entry{
		Title:              "Deploy cache fix",
		ExecutiveSummary:   "Fixed the TTL bug affecting the session cache cluster.",
		WhatChanged:        "Patched the eviction policy and redeployed.",
		DecisionsRationale: "Fix forward was cheaper than rolling back the release.",
		RisksMitigations:   "Cache warm-up may take an hour; dashboards watched.",
		Type:               entry.TypeIncident,
		Author:             entry.RoleMiniLux,
		Date:               "2025-01-01 00:00:00",
		References: []entry.Reference{
			{ID: "a1b2c3d", Type: entry.RefCommitHash, Description: "fix commit"},
		},
	}
}

func (s *TemplatePublicTestSuite) TestValidateValidEntry() {
	s.Nil(template.Validate(s.validEntry()))
}

func (s *TemplatePublicTestSuite) TestValidate() {
	tests := []struct {
		name    string
		mutate  func(e *entry.Entry)
		field   string
	}{
		{
			name:   "missing title",
			mutate: func(e *entry.Entry) { e.Title = "" },
			field:  "title",
		},
		{
			name:   "short title",
			mutate: func(e *entry.Entry) { e.Title = "Fix" },
			field:  "title",
		},
		{
			name:   "missing executive summary",
			mutate: func(e *entry.Entry) { e.ExecutiveSummary = "   " },
			field:  "executive_summary",
		},
		{
			name:   "missing what changed",
			mutate: func(e *entry.Entry) { e.WhatChanged = "" },
			field:  "what_changed",
		},
		{
			name:   "missing rationale",
			mutate: func(e *entry.Entry) { e.DecisionsRationale = "" },
			field:  "decisions_rationale",
		},
		{
			name:   "missing risks",
			mutate: func(e *entry.Entry) { e.RisksMitigations = "" },
			field:  "risks_mitigations",
		},
		{
			name:   "bad date layout",
			mutate: func(e *entry.Entry) { e.Date = "2025-01-01" },
			field:  "structure",
		},
		{
			name:   "unknown author role",
			mutate: func(e *entry.Entry) { e.Author = entry.Role("admin") },
			field:  "structure",
		},
		{
			name:   "unknown entry type",
			mutate: func(e *entry.Entry) { e.Type = entry.Type("retro") },
			field:  "structure",
		},
		{
			name: "reference missing description",
			mutate: func(e *entry.Entry) {
				e.References[0].Description = ""
			},
			field: "references[0]",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			e := s.validEntry()
			tt.mutate(e)

			errs := template.Validate(e)
			s.Require().NotNil(errs)
			s.True(errs.Has(tt.field), "expected error for field %s, got %v", tt.field, errs)
		})
	}
}

func (s *TemplatePublicTestSuite) TestWarningsAreSoft() {
	e := s.validEntry()
	e.ExecutiveSummary = "Short."
	e.References = nil

	// Still valid, but both soft findings fire.
	s.Nil(template.Validate(e))

	warns := template.Warnings(e)
	s.Len(warns, 2)
	s.Equal("executive_summary", warns[0].Field)
	s.Equal("references", warns[1].Field)
}

func (s *TemplatePublicTestSuite) TestQuickWrite() {
	e := s.validEntry()
	s.True(template.QuickWrite(e))

	e.WhatChanged = strings.Repeat("x", template.QuickWriteCeiling)
	s.False(template.QuickWrite(e))

	invalid := s.validEntry()
	invalid.Title = ""
	s.False(template.QuickWrite(invalid))
}

func (s *TemplatePublicTestSuite) TestCreateFromTemplate() {
	now := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)

	for _, t := range entry.AllTypes {
		s.Run(string(t), func() {
			draft, err := template.CreateFromTemplate(t, now)
			s.Require().NoError(err)

			s.Equal(t, draft.Type)
			s.Equal(entry.StatusDraft, draft.Status)
			s.Equal("2025-03-04 05:06:07", draft.Date)
			s.NotEmpty(draft.Tags)
			s.NotEmpty(draft.ExecutiveSummary)
		})
	}

	_, err := template.CreateFromTemplate(entry.Type("retro"), now)
	s.Error(err)
}

func TestTemplatePublicTestSuite(t *testing.T) {
	suite.Run(t, new(TemplatePublicTestSuite))
}
