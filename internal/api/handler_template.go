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

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lux-io/ledger/internal/entry"
	"github.com/lux-io/ledger/internal/template"
)

// TemplateResponse is the JSON body for a template lookup.
type TemplateResponse struct {
	// Type is the entry type the template covers.
	Type entry.Type `json:"type"`
	// SuggestedTags are starter tags for entries of this type.
	SuggestedTags []string `json:"suggested_tags"`
	// Placeholder narrative sections.
	ExecutiveSummary   string `json:"executive_summary"`
	WhatChanged        string `json:"what_changed"`
	DecisionsRationale string `json:"decisions_rationale"`
	RisksMitigations   string `json:"risks_mitigations"`
	// Draft is a pre-filled draft entry, present when prefill is requested.
	Draft *entry.Entry `json:"draft,omitempty"`
}

// getTemplate handles GET /ledger/templates/:type. With prefill=true the
// response includes a ready-to-edit draft entry for the type.
func (s *Server) getTemplate(c echo.Context) error {
	t := entry.Type(c.Param("type"))

	sk, err := template.Lookup(t)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Error: err.Error(),
		})
	}

	resp := TemplateResponse{
		Type:               sk.Type,
		SuggestedTags:      sk.SuggestedTags,
		ExecutiveSummary:   sk.ExecutiveSummary,
		WhatChanged:        sk.WhatChanged,
		DecisionsRationale: sk.DecisionsRationale,
		RisksMitigations:   sk.RisksMitigations,
	}

	if prefill, _ := strconv.ParseBool(c.QueryParam("prefill")); prefill {
		draft, err := template.CreateFromTemplate(t, time.Now())
		if err != nil {
			return domainError(c, err)
		}
		resp.Draft = draft
	}

	return c.JSON(http.StatusOK, resp)
}
