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

package ledger

import (
	"context"
	"fmt"
	"io"

	"github.com/lux-io/ledger/internal/audit"
	"github.com/lux-io/ledger/internal/audit/export"
)

// exportBatchSize is the page size for audit export pagination.
const exportBatchSize = 500

// ExportAuditLog writes the audit records matching the filter to w in the
// given format, oldest first.
func (s *Service) ExportAuditLog(
	ctx context.Context,
	w io.Writer,
	format export.Format,
	filter audit.Filter,
) (*export.Result, error) {
	records := s.auditLog.Query(filter)

	fetcher := func(_ context.Context, limit int, offset int) ([]audit.Record, int, error) {
		total := len(records)
		if offset >= total {
			return nil, total, nil
		}

		end := offset + limit
		if end > total {
			end = total
		}

		return records[offset:end], total, nil
	}

	var exporter export.Exporter
	switch format {
	case export.FormatJSON:
		exporter = export.NewJSONExporter(w)
	case export.FormatCSV:
		exporter = export.NewCSVExporter(w)
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}

	return export.Run(ctx, s.logger, fetcher, exporter, exportBatchSize, nil)
}
