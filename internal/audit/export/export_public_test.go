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

package export_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"

	"github.com/lux-io/ledger/internal/audit"
	"github.com/lux-io/ledger/internal/audit/export"
	"github.com/lux-io/ledger/internal/entry"
)

type ExportPublicTestSuite struct {
	suite.Suite

	ctx     context.Context
	records []audit.Record
}

func (s *ExportPublicTestSuite) SetupTest() {
	s.ctx = context.Background()

	s.records = make([]audit.Record, 0, 5)
	for i := 1; i <= 5; i++ {
		s.records = append(s.records, audit.Record{
			Seq:        int64(i),
			ID:         fmt.Sprintf("rec-%d", i),
			Timestamp:  time.Date(2025, 1, 1, 0, 0, i, 0, time.UTC),
			Action:     audit.ActionCreate,
			EntryID:    fmt.Sprintf("entry-%d", i),
			AuthorRole: entry.RoleLux,
			Changes: []audit.FieldChange{
				{Field: "title", New: "created"},
			},
		})
	}
}

// fetcher pages through the fixture records.
func (s *ExportPublicTestSuite) fetcher() export.Fetcher {
	return func(_ context.Context, limit, offset int) ([]audit.Record, int, error) {
		total := len(s.records)
		if offset >= total {
			return nil, total, nil
		}
		end := offset + limit
		if end > total {
			end = total
		}
		return s.records[offset:end], total, nil
	}
}

func (s *ExportPublicTestSuite) TestRunJSON() {
	var buf bytes.Buffer
	var progressCalls int

	result, err := export.Run(
		s.ctx,
		slog.Default(),
		s.fetcher(),
		export.NewJSONExporter(&buf),
		2,
		func(_, _ int) { progressCalls++ },
	)

	s.Require().NoError(err)
	s.Equal(5, result.TotalRecords)
	s.Equal(5, result.ExportedRecords)
	s.Equal(3, progressCalls)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	s.Require().Len(lines, 5)

	var rec audit.Record
	s.Require().NoError(json.Unmarshal([]byte(lines[0]), &rec))
	s.Equal("rec-1", rec.ID)
}

func (s *ExportPublicTestSuite) TestRunCSV() {
	var buf bytes.Buffer

	result, err := export.Run(
		s.ctx,
		slog.Default(),
		s.fetcher(),
		export.NewCSVExporter(&buf),
		10,
		nil,
	)

	s.Require().NoError(err)
	s.Equal(5, result.ExportedRecords)

	rows, err := csv.NewReader(&buf).ReadAll()
	s.Require().NoError(err)
	s.Require().Len(rows, 6) // header + 5 records
	s.Equal("seq", rows[0][0])
	s.Equal("1", rows[1][0])
	s.Equal("entry-1", rows[1][4])
}

func (s *ExportPublicTestSuite) TestRunFetcherError() {
	fetcher := func(_ context.Context, _, _ int) ([]audit.Record, int, error) {
		return nil, 0, fmt.Errorf("store unavailable")
	}

	var buf bytes.Buffer
	_, err := export.Run(s.ctx, slog.Default(), fetcher, export.NewJSONExporter(&buf), 2, nil)

	s.Error(err)
}

func (s *ExportPublicTestSuite) TestFileExporter() {
	appFs := afero.NewMemMapFs()

	exporter := export.NewFileExporter(appFs, "/tmp/audit.csv", export.FormatCSV)
	result, err := export.Run(s.ctx, slog.Default(), s.fetcher(), exporter, 2, nil)

	s.Require().NoError(err)
	s.Equal(5, result.ExportedRecords)

	data, err := afero.ReadFile(appFs, "/tmp/audit.csv")
	s.Require().NoError(err)
	s.Contains(string(data), "entry-3")
}

func (s *ExportPublicTestSuite) TestParseFormat() {
	for _, valid := range []string{"json", "csv"} {
		_, err := export.ParseFormat(valid)
		s.NoError(err)
	}

	_, err := export.ParseFormat("xml")
	s.Error(err)
}

func TestExportPublicTestSuite(t *testing.T) {
	suite.Run(t, new(ExportPublicTestSuite))
}
