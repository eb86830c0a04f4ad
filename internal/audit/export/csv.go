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

package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/lux-io/ledger/internal/audit"
)

// ensure CSVExporter implements Exporter at compile time.
var _ Exporter = (*CSVExporter)(nil)

// csvHeader is the fixed column layout for CSV exports.
var csvHeader = []string{
	"seq",
	"id",
	"timestamp",
	"action",
	"entry_id",
	"author_role",
	"changes",
	"metadata",
}

// CSVExporter writes audit records as CSV rows with a header.
type CSVExporter struct {
	out    io.Writer
	writer *csv.Writer
}

// NewCSVExporter creates a CSVExporter writing to out.
func NewCSVExporter(
	out io.Writer,
) *CSVExporter {
	return &CSVExporter{out: out}
}

// Open writes the CSV header.
func (e *CSVExporter) Open(
	_ context.Context,
) error {
	e.writer = csv.NewWriter(e.out)

	if err := e.writer.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	return nil
}

// Write writes a single record as one CSV row. Structured columns
// (changes, metadata) are embedded as JSON.
func (e *CSVExporter) Write(
	_ context.Context,
	rec audit.Record,
) error {
	if e.writer == nil {
		return fmt.Errorf("exporter not opened")
	}

	changes, err := json.Marshal(rec.Changes)
	if err != nil {
		return fmt.Errorf("marshaling changes: %w", err)
	}

	metadata, err := json.Marshal(rec.Metadata)
	if err != nil {
		return fmt.Errorf("marshaling metadata: %w", err)
	}

	row := []string{
		strconv.FormatInt(rec.Seq, 10),
		rec.ID,
		rec.Timestamp.UTC().Format(time.RFC3339),
		string(rec.Action),
		rec.EntryID,
		string(rec.AuthorRole),
		string(changes),
		string(metadata),
	}

	if err := e.writer.Write(row); err != nil {
		return fmt.Errorf("writing csv row: %w", err)
	}

	return nil
}

// Close flushes buffered rows.
func (e *CSVExporter) Close(
	_ context.Context,
) error {
	if e.writer == nil {
		return fmt.Errorf("exporter not opened")
	}

	e.writer.Flush()

	if err := e.writer.Error(); err != nil {
		return fmt.Errorf("flushing csv writer: %w", err)
	}

	return nil
}
