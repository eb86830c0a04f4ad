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

	"github.com/labstack/echo/v4"

	"github.com/lux-io/ledger/internal/entry"
	"github.com/lux-io/ledger/internal/ledger"
)

// defaultTopK bounds similarity lookups when the client does not ask for
// a specific count.
const defaultTopK = 5

// EntryListResponse is the JSON body for entry listings.
type EntryListResponse struct {
	// Entries are the matching entries, most recent event date first.
	Entries []*entry.Entry `json:"entries"`
	// Total is the number of entries returned.
	Total int `json:"total"`
}

// SimilarListResponse is the JSON body for similarity lookups.
type SimilarListResponse struct {
	// Results pair entries with their similarity score, best first.
	Results []ledger.SimilarResult `json:"results"`
	// Total is the number of results returned.
	Total int `json:"total"`
}

// createEntry handles POST /ledger/entries.
func (s *Server) createEntry(c echo.Context) error {
	var e entry.Entry
	if err := c.Bind(&e); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "malformed request body: " + err.Error(),
		})
	}

	// Creation always assigns the id server-side.
	e.ID = ""

	result, err := s.service.Save(c.Request().Context(), &e)
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(http.StatusCreated, result)
}

// updateEntry handles PUT /ledger/entries/:id.
func (s *Server) updateEntry(c echo.Context) error {
	var e entry.Entry
	if err := c.Bind(&e); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "malformed request body: " + err.Error(),
		})
	}

	e.ID = c.Param("id")

	result, err := s.service.Save(c.Request().Context(), &e)
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// getEntry handles GET /ledger/entries/:id.
func (s *Server) getEntry(c echo.Context) error {
	e, err := s.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(http.StatusOK, e)
}

// listEntries handles GET /ledger/entries with optional filters.
func (s *Server) listEntries(c echo.Context) error {
	includeArchived, _ := strconv.ParseBool(c.QueryParam("include_archived"))

	filter := ledger.ListFilter{
		Type:            entry.Type(c.QueryParam("type")),
		Status:          entry.Status(c.QueryParam("status")),
		Author:          entry.Role(c.QueryParam("author")),
		Tag:             c.QueryParam("tag"),
		IncludeArchived: includeArchived,
	}

	entries, err := s.service.List(c.Request().Context(), filter)
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(http.StatusOK, EntryListResponse{
		Entries: entries,
		Total:   len(entries),
	})
}

// searchEntries handles GET /ledger/entries/search?q=.
func (s *Server) searchEntries(c echo.Context) error {
	entries, err := s.service.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(http.StatusOK, EntryListResponse{
		Entries: entries,
		Total:   len(entries),
	})
}

// similarEntries handles GET /ledger/entries/:id/similar?top_k=.
func (s *Server) similarEntries(c echo.Context) error {
	topK := defaultTopK
	if raw := c.QueryParam("top_k"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "top_k must be an integer",
			})
		}
		topK = parsed
	}

	results, err := s.service.FindSimilar(c.Request().Context(), c.Param("id"), topK)
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(http.StatusOK, SimilarListResponse{
		Results: results,
		Total:   len(results),
	})
}

// publishEntry handles POST /ledger/entries/:id/publish. The acting role
// comes from the validated token, never from the request body.
func (s *Server) publishEntry(c echo.Context) error {
	published, err := s.service.Publish(
		c.Request().Context(),
		c.Param("id"),
		roleFromContext(c),
	)
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(http.StatusOK, published)
}

// supersedeEntry handles POST /ledger/entries/:id/supersede. The request
// body carries the replacement entry content.
func (s *Server) supersedeEntry(c echo.Context) error {
	var replacement entry.Entry
	if err := c.Bind(&replacement); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "malformed request body: " + err.Error(),
		})
	}

	result, err := s.service.Supersede(
		c.Request().Context(),
		c.Param("id"),
		&replacement,
		roleFromContext(c),
	)
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(http.StatusCreated, result)
}

// deleteEntry handles DELETE /ledger/entries/:id.
func (s *Server) deleteEntry(c echo.Context) error {
	err := s.service.Delete(
		c.Request().Context(),
		c.Param("id"),
		roleFromContext(c),
	)
	if err != nil {
		return domainError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
