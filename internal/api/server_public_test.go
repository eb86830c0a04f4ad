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

package api_test

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/lux-io/ledger/internal/api"
	"github.com/lux-io/ledger/internal/audit"
	"github.com/lux-io/ledger/internal/authtoken"
	"github.com/lux-io/ledger/internal/config"
	"github.com/lux-io/ledger/internal/entry"
	"github.com/lux-io/ledger/internal/ledger"
	"github.com/lux-io/ledger/internal/monitor"
)

const testSigningKey = "test-signing-key-for-api-suite"

type ServerPublicTestSuite struct {
	suite.Suite

	logger       *slog.Logger
	appConfig    config.Config
	service      *ledger.Service
	server       *api.Server
	tokenManager *authtoken.Token
}

func (suite *ServerPublicTestSuite) SetupTest() {
	suite.logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
	suite.appConfig = config.Config{
		API: config.API{
			Server: config.Server{
				Port: 8080,
				Security: config.ServerSecurity{
					SigningKey: testSigningKey,
				},
			},
		},
	}

	auditLog := audit.NewLog(suite.logger, 0)
	mon := monitor.New(suite.logger, nil, nil)
	suite.service = ledger.New(
		suite.logger,
		ledger.NewMemoryStore(),
		auditLog,
		mon,
	)
	suite.server = api.New(suite.appConfig, suite.logger, suite.service)
	suite.tokenManager = authtoken.New(suite.logger)
}

func (suite *ServerPublicTestSuite) token(role string) string {
	token, err := suite.tokenManager.Generate(testSigningKey, role, "test-user", time.Hour)
	suite.Require().NoError(err)

	return token
}

func (suite *ServerPublicTestSuite) do(
	method string,
	target string,
	body string,
	role string,
) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", suite.token(role)))
	}
	rec := httptest.NewRecorder()

	suite.server.Echo.ServeHTTP(rec, req)

	return rec
}

func (suite *ServerPublicTestSuite) entryBody() string {
	return `{
		"date": "2025-01-15 10:30:00",
		"title": "Deploy new cache layer",
		"executive_summary": "Rolled out the entry cache to cut read latency.",
		"what_changed": "The read path now consults the cache before the store.",
		"decisions_rationale": "Read latency breached the monitor threshold.",
		"risks_mitigations": "Stale reads are bounded by the cache TTL.",
		"type": "decision",
		"tags": ["cache", "latency"],
		"author": "lux"
	}`
}

func (suite *ServerPublicTestSuite) createEntry() string {
	rec := suite.do(http.MethodPost, "/ledger/entries", suite.entryBody(), "lux")
	suite.Require().Equal(http.StatusCreated, rec.Code)

	var result ledger.SaveResult
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &result))
	suite.Require().NotEmpty(result.Entry.ID)

	return result.Entry.ID
}

func (suite *ServerPublicTestSuite) TestAuthRequired() {
	tests := []struct {
		name         string
		setupAuth    func(req *http.Request)
		wantCode     int
		wantContains string
	}{
		{
			name: "when no token returns 401",
			setupAuth: func(_ *http.Request) {
				// No auth header set
			},
			wantCode:     http.StatusUnauthorized,
			wantContains: "bearer token required",
		},
		{
			name: "when garbage token returns 401",
			setupAuth: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer not-a-jwt")
			},
			wantCode:     http.StatusUnauthorized,
			wantContains: "invalid token",
		},
		{
			name: "when wrong scheme returns 401",
			setupAuth: func(req *http.Request) {
				req.Header.Set("Authorization", "Basic abc123")
			},
			wantCode:     http.StatusUnauthorized,
			wantContains: "bearer token required",
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			req := httptest.NewRequest(http.MethodGet, "/ledger/entries", nil)
			tc.setupAuth(req)
			rec := httptest.NewRecorder()

			suite.server.Echo.ServeHTTP(rec, req)

			suite.Equal(tc.wantCode, rec.Code)
			suite.Contains(rec.Body.String(), tc.wantContains)
		})
	}
}

func (suite *ServerPublicTestSuite) TestPermissionDenied() {
	id := suite.createEntry()

	tests := []struct {
		name   string
		method string
		target string
		role   string
	}{
		{
			name:   "when scribe deletes returns 403",
			method: http.MethodDelete,
			target: "/ledger/entries/" + id,
			role:   "scribe",
		},
		{
			name:   "when scribe publishes returns 403",
			method: http.MethodPost,
			target: "/ledger/entries/" + id + "/publish",
			role:   "scribe",
		},
		{
			name:   "when scribe exports audit returns 403",
			method: http.MethodGet,
			target: "/audit/export?format=json",
			role:   "scribe",
		},
		{
			name:   "when mini-lux deletes returns 403",
			method: http.MethodDelete,
			target: "/ledger/entries/" + id,
			role:   "mini-lux",
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			rec := suite.do(tc.method, tc.target, "", tc.role)

			suite.Equal(http.StatusForbidden, rec.Code)
			suite.Contains(rec.Body.String(), "insufficient permissions")
		})
	}
}

func (suite *ServerPublicTestSuite) TestCreateEntry() {
	rec := suite.do(http.MethodPost, "/ledger/entries", suite.entryBody(), "scribe")

	suite.Equal(http.StatusCreated, rec.Code)

	var result ledger.SaveResult
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &result))
	suite.Equal(int64(1), result.Entry.Revision)
	suite.Equal(entry.StatusDraft, result.Entry.Status)
	suite.NotEmpty(result.Entry.ID)
}

func (suite *ServerPublicTestSuite) TestCreateEntryValidationFailure() {
	rec := suite.do(http.MethodPost, "/ledger/entries", `{"title": "only a title"}`, "lux")

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Contains(rec.Body.String(), `"fields"`)
	suite.Contains(rec.Body.String(), "executive_summary")
}

func (suite *ServerPublicTestSuite) TestUpdateEntry() {
	id := suite.createEntry()

	body := strings.Replace(
		suite.entryBody(),
		"Deploy new cache layer",
		"Deploy new cache layer v2",
		1,
	)
	rec := suite.do(http.MethodPut, "/ledger/entries/"+id, body, "lux")

	suite.Equal(http.StatusOK, rec.Code)

	var result ledger.SaveResult
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &result))
	suite.Equal(int64(2), result.Entry.Revision)
	suite.Equal("Deploy new cache layer v2", result.Entry.Title)
}

func (suite *ServerPublicTestSuite) TestUpdateUnknownEntry() {
	rec := suite.do(
		http.MethodPut,
		"/ledger/entries/does-not-exist",
		suite.entryBody(),
		"lux",
	)

	suite.Equal(http.StatusNotFound, rec.Code)
	suite.Contains(rec.Body.String(), "entry not found")
}

func (suite *ServerPublicTestSuite) TestGetEntry() {
	id := suite.createEntry()

	rec := suite.do(http.MethodGet, "/ledger/entries/"+id, "", "scribe")

	suite.Equal(http.StatusOK, rec.Code)

	var got entry.Entry
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	suite.Equal(id, got.ID)
	suite.Len(got.Embedding, 32)
}

func (suite *ServerPublicTestSuite) TestGetUnknownEntry() {
	rec := suite.do(http.MethodGet, "/ledger/entries/nope", "", "scribe")

	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *ServerPublicTestSuite) TestListEntries() {
	suite.createEntry()
	suite.createEntry()

	rec := suite.do(http.MethodGet, "/ledger/entries?type=decision", "", "scribe")

	suite.Equal(http.StatusOK, rec.Code)

	var resp api.EntryListResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Equal(2, resp.Total)
}

func (suite *ServerPublicTestSuite) TestSearchEntries() {
	suite.createEntry()

	rec := suite.do(http.MethodGet, "/ledger/entries/search?q=cache", "", "scribe")

	suite.Equal(http.StatusOK, rec.Code)

	var resp api.EntryListResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Equal(1, resp.Total)
}

func (suite *ServerPublicTestSuite) TestSimilarEntries() {
	id := suite.createEntry()
	suite.createEntry()

	tests := []struct {
		name     string
		target   string
		wantCode int
	}{
		{
			name:     "when lookup succeeds",
			target:   "/ledger/entries/" + id + "/similar?top_k=3",
			wantCode: http.StatusOK,
		},
		{
			name:     "when top_k is not an integer returns 400",
			target:   "/ledger/entries/" + id + "/similar?top_k=abc",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "when target unknown returns 404",
			target:   "/ledger/entries/ghost/similar",
			wantCode: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			rec := suite.do(http.MethodGet, tc.target, "", "scribe")

			suite.Equal(tc.wantCode, rec.Code)
		})
	}
}

func (suite *ServerPublicTestSuite) TestPublishEntry() {
	id := suite.createEntry()

	rec := suite.do(http.MethodPost, "/ledger/entries/"+id+"/publish", "", "mini-lux")

	suite.Equal(http.StatusOK, rec.Code)

	var got entry.Entry
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	suite.Equal(entry.StatusPublished, got.Status)
}

func (suite *ServerPublicTestSuite) TestSupersedeEntry() {
	id := suite.createEntry()

	body := strings.Replace(
		suite.entryBody(),
		"Deploy new cache layer",
		"Deploy replacement cache layer",
		1,
	)
	rec := suite.do(http.MethodPost, "/ledger/entries/"+id+"/supersede", body, "lux")

	suite.Equal(http.StatusCreated, rec.Code)

	var result ledger.SupersedeResult
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &result))
	suite.Equal(entry.StatusArchived, result.Old.Status)
	suite.Equal(id, result.New.SupersedesEntryID)
}

func (suite *ServerPublicTestSuite) TestSupersedeArchivedEntryConflicts() {
	id := suite.createEntry()

	first := suite.do(http.MethodPost, "/ledger/entries/"+id+"/supersede", suite.entryBody(), "lux")
	suite.Require().Equal(http.StatusCreated, first.Code)

	second := suite.do(http.MethodPost, "/ledger/entries/"+id+"/supersede", suite.entryBody(), "lux")

	suite.Equal(http.StatusConflict, second.Code)
	suite.Contains(second.Body.String(), "archived")
}

func (suite *ServerPublicTestSuite) TestDeleteEntry() {
	id := suite.createEntry()

	rec := suite.do(http.MethodDelete, "/ledger/entries/"+id, "", "lux")
	suite.Equal(http.StatusNoContent, rec.Code)

	got := suite.do(http.MethodGet, "/ledger/entries/"+id, "", "lux")
	suite.Equal(http.StatusNotFound, got.Code)
}

func (suite *ServerPublicTestSuite) TestGetTemplate() {
	tests := []struct {
		name         string
		target       string
		wantCode     int
		wantContains string
	}{
		{
			name:         "when type is known",
			target:       "/ledger/templates/incident",
			wantCode:     http.StatusOK,
			wantContains: `"suggested_tags"`,
		},
		{
			name:         "when prefill requested includes draft",
			target:       "/ledger/templates/decision?prefill=true",
			wantCode:     http.StatusOK,
			wantContains: `"draft"`,
		},
		{
			name:         "when type is unknown returns 404",
			target:       "/ledger/templates/poetry",
			wantCode:     http.StatusNotFound,
			wantContains: "no template",
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			rec := suite.do(http.MethodGet, tc.target, "", "scribe")

			suite.Equal(tc.wantCode, rec.Code)
			suite.Contains(rec.Body.String(), tc.wantContains)
		})
	}
}

func (suite *ServerPublicTestSuite) TestListAudit() {
	suite.createEntry()

	rec := suite.do(http.MethodGet, "/audit?limit=10", "", "scribe")

	suite.Equal(http.StatusOK, rec.Code)

	var resp api.AuditListResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Equal(1, resp.Total)
	suite.Require().Len(resp.Records, 1)
	suite.Equal(audit.ActionCreate, resp.Records[0].Action)
}

func (suite *ServerPublicTestSuite) TestListAuditRejectsBadPagination() {
	tests := []struct {
		name   string
		target string
	}{
		{name: "when limit is zero", target: "/audit?limit=0"},
		{name: "when limit is not a number", target: "/audit?limit=ten"},
		{name: "when offset is negative", target: "/audit?offset=-1"},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			rec := suite.do(http.MethodGet, tc.target, "", "scribe")

			suite.Equal(http.StatusBadRequest, rec.Code)
		})
	}
}

func (suite *ServerPublicTestSuite) TestGetAuditRecord() {
	suite.createEntry()

	records, total := suite.service.AuditLog().Page(1, 0)
	suite.Require().Equal(1, total)

	rec := suite.do(http.MethodGet, "/audit/"+records[0].ID, "", "scribe")

	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), `"action":"create"`)
}

func (suite *ServerPublicTestSuite) TestGetUnknownAuditRecord() {
	rec := suite.do(http.MethodGet, "/audit/ghost", "", "scribe")

	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *ServerPublicTestSuite) TestExportAudit() {
	suite.createEntry()

	tests := []struct {
		name            string
		target          string
		wantCode        int
		wantContentType string
	}{
		{
			name:            "when json format",
			target:          "/audit/export?format=json",
			wantCode:        http.StatusOK,
			wantContentType: "application/x-ndjson",
		},
		{
			name:            "when csv format",
			target:          "/audit/export?format=csv",
			wantCode:        http.StatusOK,
			wantContentType: "text/csv",
		},
		{
			name:     "when format is unsupported returns 400",
			target:   "/audit/export?format=xml",
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			rec := suite.do(http.MethodGet, tc.target, "", "lux")

			suite.Equal(tc.wantCode, rec.Code)
			if tc.wantContentType != "" {
				suite.Contains(rec.Header().Get("Content-Type"), tc.wantContentType)
				suite.NotEmpty(rec.Body.String())
			}
		})
	}
}

func (suite *ServerPublicTestSuite) TestExportAuditRejectsBadTimestamp() {
	rec := suite.do(http.MethodGet, "/audit/export?format=json&since=yesterday", "", "lux")

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Contains(rec.Body.String(), "invalid since timestamp")
}

func (suite *ServerPublicTestSuite) TestHealth() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	suite.server.Echo.ServeHTTP(rec, req)

	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), `"status":"ok"`)
}

func (suite *ServerPublicTestSuite) TestHealthDetailed() {
	rec := suite.do(http.MethodGet, "/health/detailed", "", "scribe")

	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), `"store"`)
	suite.Contains(rec.Body.String(), `"uptime"`)
}

func (suite *ServerPublicTestSuite) TestHealthDetailedRequiresToken() {
	req := httptest.NewRequest(http.MethodGet, "/health/detailed", nil)
	rec := httptest.NewRecorder()

	suite.server.Echo.ServeHTTP(rec, req)

	suite.Equal(http.StatusUnauthorized, rec.Code)
}

func (suite *ServerPublicTestSuite) TestMetrics() {
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()

	suite.server.Echo.ServeHTTP(rec, req)

	suite.Equal(http.StatusOK, rec.Code)
}

func TestServerPublicTestSuite(t *testing.T) {
	suite.Run(t, new(ServerPublicTestSuite))
}
