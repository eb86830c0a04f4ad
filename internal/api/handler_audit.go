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
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lux-io/ledger/internal/audit"
	"github.com/lux-io/ledger/internal/audit/export"
)

// Audit list pagination defaults.
const (
	defaultAuditLimit  = 20
	defaultAuditOffset = 0
)

// AuditListResponse is the JSON body for paginated audit listings.
type AuditListResponse struct {
	// Records are the matching records, newest first.
	Records []audit.Record `json:"records"`
	// Total is the full record count before pagination.
	Total int `json:"total"`
	// Limit and Offset echo the applied pagination window.
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// listAudit handles GET /audit with limit and offset pagination.
func (s *Server) listAudit(c echo.Context) error {
	limit := defaultAuditLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "limit must be a positive integer",
			})
		}
		limit = parsed
	}

	offset := defaultAuditOffset
	if raw := c.QueryParam("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "offset must be a non-negative integer",
			})
		}
		offset = parsed
	}

	records, total := s.service.AuditLog().Page(limit, offset)

	return c.JSON(http.StatusOK, AuditListResponse{
		Records: records,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	})
}

// getAudit handles GET /audit/:id.
func (s *Server) getAudit(c echo.Context) error {
	rec, ok := s.service.AuditLog().Get(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Error: fmt.Sprintf("audit record not found: %s", c.Param("id")),
		})
	}

	return c.JSON(http.StatusOK, rec)
}

// exportAudit handles GET /audit/export, streaming the matching records
// to the response body in the requested format.
func (s *Server) exportAudit(c echo.Context) error {
	format, err := export.ParseFormat(c.QueryParam("format"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
		})
	}

	filter, err := auditFilterFromQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
		})
	}

	contentType := "application/x-ndjson"
	if format == export.FormatCSV {
		contentType = "text/csv"
	}
	c.Response().Header().Set(echo.HeaderContentType, contentType)
	c.Response().WriteHeader(http.StatusOK)

	if _, err := s.service.ExportAuditLog(
		c.Request().Context(),
		c.Response(),
		format,
		filter,
	); err != nil {
		// Headers are already out; all we can do is log and cut the stream.
		s.logger.Error(
			"audit export failed",
			slog.String("error", err.Error()),
		)
		return err
	}

	return nil
}

// auditFilterFromQuery builds an audit filter from query parameters.
// Timestamps are RFC 3339.
func auditFilterFromQuery(
	c echo.Context,
) (audit.Filter, error) {
	filter := audit.Filter{
		Action:  audit.Action(c.QueryParam("action")),
		EntryID: c.QueryParam("entry_id"),
	}

	if raw := c.QueryParam("since"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return audit.Filter{}, fmt.Errorf("invalid since timestamp: %w", err)
		}
		filter.Since = t
	}

	if raw := c.QueryParam("until"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return audit.Filter{}, fmt.Errorf("invalid until timestamp: %w", err)
		}
		filter.Until = t
	}

	return filter, nil
}
