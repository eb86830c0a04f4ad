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
	"fmt"

	"github.com/spf13/afero"

	"github.com/lux-io/ledger/internal/audit"
)

// Format selects the export output format.
type Format string

// Supported export formats.
const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat validates a format string.
func ParseFormat(
	s string,
) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatCSV:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported export format: %q", s)
	}
}

// ensure FileExporter implements Exporter at compile time.
var _ Exporter = (*FileExporter)(nil)

// FileExporter writes audit records to a file on the given filesystem,
// delegating formatting to the JSON or CSV exporter.
type FileExporter struct {
	Path string

	fs     afero.Fs
	format Format
	file   afero.File
	inner  Exporter
}

// NewFileExporter creates a FileExporter for the given path and format.
func NewFileExporter(
	appFs afero.Fs,
	path string,
	format Format,
) *FileExporter {
	return &FileExporter{
		Path:   path,
		fs:     appFs,
		format: format,
	}
}

// Open creates the output file and the format exporter.
func (e *FileExporter) Open(
	ctx context.Context,
) error {
	f, err := e.fs.Create(e.Path)
	if err != nil {
		return fmt.Errorf("opening export file: %w", err)
	}
	e.file = f

	switch e.format {
	case FormatCSV:
		e.inner = NewCSVExporter(f)
	default:
		e.inner = NewJSONExporter(f)
	}

	return e.inner.Open(ctx)
}

// Write delegates to the format exporter.
func (e *FileExporter) Write(
	ctx context.Context,
	rec audit.Record,
) error {
	if e.inner == nil {
		return fmt.Errorf("exporter not opened")
	}

	return e.inner.Write(ctx, rec)
}

// Close flushes the format exporter and closes the file.
func (e *FileExporter) Close(
	ctx context.Context,
) error {
	if e.inner == nil {
		return fmt.Errorf("exporter not opened")
	}

	if err := e.inner.Close(ctx); err != nil {
		return err
	}

	if err := e.file.Close(); err != nil {
		return fmt.Errorf("closing export file: %w", err)
	}

	return nil
}
