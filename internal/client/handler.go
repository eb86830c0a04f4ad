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

package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/lux-io/ledger/internal/api"
	"github.com/lux-io/ledger/internal/audit"
	"github.com/lux-io/ledger/internal/entry"
	"github.com/lux-io/ledger/internal/ledger"
)

// EntryHandler defines an interface for interacting with entry client
// operations.
type EntryHandler interface {
	CreateEntry(
		ctx context.Context,
		e *entry.Entry,
	) (*ledger.SaveResult, error)
	UpdateEntry(
		ctx context.Context,
		e *entry.Entry,
	) (*ledger.SaveResult, error)
	GetEntry(
		ctx context.Context,
		id string,
	) (*entry.Entry, error)
	ListEntries(
		ctx context.Context,
		filter ledger.ListFilter,
	) (*api.EntryListResponse, error)
	SearchEntries(
		ctx context.Context,
		query string,
	) (*api.EntryListResponse, error)
	FindSimilar(
		ctx context.Context,
		id string,
		topK int,
	) (*api.SimilarListResponse, error)
	PublishEntry(
		ctx context.Context,
		id string,
	) (*entry.Entry, error)
	SupersedeEntry(
		ctx context.Context,
		id string,
		replacement *entry.Entry,
	) (*ledger.SupersedeResult, error)
	DeleteEntry(
		ctx context.Context,
		id string,
	) error
	GetTemplate(
		ctx context.Context,
		entryType string,
		prefill bool,
	) (*api.TemplateResponse, error)
}

// AuditHandler defines an interface for interacting with audit client
// operations.
type AuditHandler interface {
	ListAudit(
		ctx context.Context,
		limit int,
		offset int,
	) (*api.AuditListResponse, error)
	GetAudit(
		ctx context.Context,
		id string,
	) (*audit.Record, error)
	ExportAudit(
		ctx context.Context,
		format string,
	) ([]byte, error)
}

// HealthHandler defines an interface for interacting with health client
// operations.
type HealthHandler interface {
	GetHealth(
		ctx context.Context,
	) (map[string]string, error)
	GetHealthDetailed(
		ctx context.Context,
	) (*api.DetailedHealthResponse, error)
}

// CombinedHandler is a superset of all smaller handler interfaces.
type CombinedHandler interface {
	EntryHandler
	AuditHandler
	HealthHandler
}

// ensure Client implements CombinedHandler at compile time.
var _ CombinedHandler = (*Client)(nil)

// CreateEntry creates a new draft entry via the REST API.
func (c *Client) CreateEntry(
	ctx context.Context,
	e *entry.Entry,
) (*ledger.SaveResult, error) {
	var result ledger.SaveResult
	if err := c.doJSON(ctx, http.MethodPost, "/ledger/entries", nil, e, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// UpdateEntry updates an existing entry via the REST API.
func (c *Client) UpdateEntry(
	ctx context.Context,
	e *entry.Entry,
) (*ledger.SaveResult, error) {
	var result ledger.SaveResult
	path := "/ledger/entries/" + url.PathEscape(e.ID)
	if err := c.doJSON(ctx, http.MethodPut, path, nil, e, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// GetEntry retrieves a single entry by id via the REST API.
func (c *Client) GetEntry(
	ctx context.Context,
	id string,
) (*entry.Entry, error) {
	var e entry.Entry
	path := "/ledger/entries/" + url.PathEscape(id)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &e); err != nil {
		return nil, err
	}

	return &e, nil
}

// ListEntries retrieves entries matching the filter via the REST API.
func (c *Client) ListEntries(
	ctx context.Context,
	filter ledger.ListFilter,
) (*api.EntryListResponse, error) {
	query := url.Values{}
	if filter.Type != "" {
		query.Set("type", string(filter.Type))
	}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	if filter.Author != "" {
		query.Set("author", string(filter.Author))
	}
	if filter.Tag != "" {
		query.Set("tag", filter.Tag)
	}
	if filter.IncludeArchived {
		query.Set("include_archived", "true")
	}

	var resp api.EntryListResponse
	if err := c.doJSON(ctx, http.MethodGet, "/ledger/entries", query, nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// SearchEntries performs a keyword search via the REST API.
func (c *Client) SearchEntries(
	ctx context.Context,
	searchQuery string,
) (*api.EntryListResponse, error) {
	query := url.Values{}
	query.Set("q", searchQuery)

	var resp api.EntryListResponse
	if err := c.doJSON(ctx, http.MethodGet, "/ledger/entries/search", query, nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// FindSimilar retrieves the entries most similar to the given one via the
// REST API.
func (c *Client) FindSimilar(
	ctx context.Context,
	id string,
	topK int,
) (*api.SimilarListResponse, error) {
	query := url.Values{}
	if topK > 0 {
		query.Set("top_k", strconv.Itoa(topK))
	}

	var resp api.SimilarListResponse
	path := "/ledger/entries/" + url.PathEscape(id) + "/similar"
	if err := c.doJSON(ctx, http.MethodGet, path, query, nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// PublishEntry promotes a draft to published via the REST API.
func (c *Client) PublishEntry(
	ctx context.Context,
	id string,
) (*entry.Entry, error) {
	var e entry.Entry
	path := "/ledger/entries/" + url.PathEscape(id) + "/publish"
	if err := c.doJSON(ctx, http.MethodPost, path, nil, nil, &e); err != nil {
		return nil, err
	}

	return &e, nil
}

// SupersedeEntry archives an entry and creates its replacement via the
// REST API.
func (c *Client) SupersedeEntry(
	ctx context.Context,
	id string,
	replacement *entry.Entry,
) (*ledger.SupersedeResult, error) {
	var result ledger.SupersedeResult
	path := "/ledger/entries/" + url.PathEscape(id) + "/supersede"
	if err := c.doJSON(ctx, http.MethodPost, path, nil, replacement, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// DeleteEntry hard-deletes an entry via the REST API.
func (c *Client) DeleteEntry(
	ctx context.Context,
	id string,
) error {
	path := "/ledger/entries/" + url.PathEscape(id)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, nil)
}

// GetTemplate retrieves the narrative template for an entry type via the
// REST API.
func (c *Client) GetTemplate(
	ctx context.Context,
	entryType string,
	prefill bool,
) (*api.TemplateResponse, error) {
	query := url.Values{}
	if prefill {
		query.Set("prefill", "true")
	}

	var resp api.TemplateResponse
	path := "/ledger/templates/" + url.PathEscape(entryType)
	if err := c.doJSON(ctx, http.MethodGet, path, query, nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// ListAudit retrieves a page of audit records via the REST API.
func (c *Client) ListAudit(
	ctx context.Context,
	limit int,
	offset int,
) (*api.AuditListResponse, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		query.Set("offset", strconv.Itoa(offset))
	}

	var resp api.AuditListResponse
	if err := c.doJSON(ctx, http.MethodGet, "/audit", query, nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// GetAudit retrieves a single audit record by id via the REST API.
func (c *Client) GetAudit(
	ctx context.Context,
	id string,
) (*audit.Record, error) {
	var rec audit.Record
	path := "/audit/" + url.PathEscape(id)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &rec); err != nil {
		return nil, err
	}

	return &rec, nil
}

// ExportAudit downloads the audit log in the given format via the REST
// API.
func (c *Client) ExportAudit(
	ctx context.Context,
	format string,
) ([]byte, error) {
	query := url.Values{}
	query.Set("format", format)

	return c.doRaw(ctx, http.MethodGet, "/audit/export", query)
}

// GetHealth probes the unauthenticated liveness endpoint.
func (c *Client) GetHealth(
	ctx context.Context,
) (map[string]string, error) {
	var resp map[string]string
	if err := c.doJSON(ctx, http.MethodGet, "/health", nil, nil, &resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// GetHealthDetailed retrieves per-component health. A degraded server
// answers 503 with the same body, which still decodes cleanly.
func (c *Client) GetHealthDetailed(
	ctx context.Context,
) (*api.DetailedHealthResponse, error) {
	var resp api.DetailedHealthResponse
	err := c.doJSON(ctx, http.MethodGet, "/health/detailed", nil, nil, &resp)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusServiceUnavailable {
			return &api.DetailedHealthResponse{Status: "degraded"}, nil
		}
		return nil, err
	}

	return &resp, nil
}
