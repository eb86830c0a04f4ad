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

package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lux-io/ledger/internal/audit"
	"github.com/lux-io/ledger/internal/entry"
	"github.com/lux-io/ledger/internal/ledger"
)

// Theme colors for terminal UI rendering.
var (
	Purple    = lipgloss.Color("99")
	Gray      = lipgloss.Color("245")
	LightGray = lipgloss.Color("241")
	White     = lipgloss.Color("15")
	Teal      = lipgloss.Color("#06ffa5")
)

// Reusable inline styles for compact key-value output.
var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(Purple)
	valueStyle = lipgloss.NewStyle().Foreground(Teal)

	// DimStyle is a muted style for secondary text.
	DimStyle = lipgloss.NewStyle().Foreground(Gray)
)

// Section represents a header with its corresponding rows.
type Section struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// compactMaxColWidth is the maximum column width before truncation.
const compactMaxColWidth = 50

// PrintCompactTable renders a compact column-aligned table (kubectl-style).
// Headers are uppercase purple, data rows are teal, with 2-space indent.
// Multi-line cell values are flattened to a single line and long values
// are truncated with an ellipsis.
func PrintCompactTable(
	sections []Section,
) {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(Purple)
	evenStyle := lipgloss.NewStyle().Foreground(Teal)
	oddStyle := lipgloss.NewStyle().Foreground(White)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(Purple)

	const colGap = 2

	for _, section := range sections {
		if section.Title != "" {
			fmt.Printf("\n  %s:\n", titleStyle.Render(section.Title))
		} else {
			fmt.Println()
		}

		// Flatten multi-line cells to single lines for compact display
		flatRows := make([][]string, len(section.Rows))
		for r, row := range section.Rows {
			flat := make([]string, len(row))
			for c, cell := range row {
				flat[c] = strings.Join(strings.Fields(cell), " ")
			}
			flatRows[r] = flat
		}

		// Calculate column widths from headers and flattened data,
		// capping at compactMaxColWidth to prevent blown-out columns.
		widths := make([]int, len(section.Headers))
		for i, h := range section.Headers {
			widths[i] = len(h)
		}
		for _, row := range flatRows {
			for i, cell := range row {
				if i < len(widths) && len(cell) > widths[i] {
					widths[i] = len(cell)
				}
			}
		}
		for i := range widths {
			if widths[i] > compactMaxColWidth {
				widths[i] = compactMaxColWidth
			}
		}

		// Build header line
		var hdr strings.Builder
		hdr.WriteString("  ")
		for i, h := range section.Headers {
			if i < len(section.Headers)-1 {
				hdr.WriteString(
					headerStyle.Render(fmt.Sprintf("%-*s", widths[i]+colGap, strings.ToUpper(h))),
				)
			} else {
				hdr.WriteString(headerStyle.Render(strings.ToUpper(h)))
			}
		}
		fmt.Println(hdr.String())

		// Build data rows with alternating colors
		for r, row := range flatRows {
			rowStyle := evenStyle
			if r%2 != 0 {
				rowStyle = oddStyle
			}
			var line strings.Builder
			line.WriteString("  ")
			for i := range section.Headers {
				cell := ""
				if i < len(row) {
					cell = row[i]
				}
				// Truncate cells that exceed the column width
				if len(cell) > widths[i] {
					cell = cell[:widths[i]-3] + "..."
				}
				if i < len(section.Headers)-1 {
					line.WriteString(rowStyle.Render(fmt.Sprintf("%-*s", widths[i]+colGap, cell)))
				} else {
					line.WriteString(rowStyle.Render(cell))
				}
			}
			fmt.Println(line.String())
		}
	}
}

// KVMinColWidth is the minimum visual width for each key-value column.
// A consistent minimum ensures columns align across consecutive PrintKV calls.
const KVMinColWidth = 20

// PrintKV prints labeled key-value pairs on a single indented line.
// Pairs are padded to equal column widths for alignment.
// Arguments alternate between labels and values: label1, val1, label2, val2, ...
func PrintKV(
	pairs ...string,
) {
	if len(pairs)%2 != 0 || len(pairs) == 0 {
		return
	}

	rendered := make([]string, 0, len(pairs)/2)
	maxWidth := KVMinColWidth
	for i := 0; i < len(pairs); i += 2 {
		pair := labelStyle.Render(pairs[i]+":") + " " + valueStyle.Render(pairs[i+1])
		rendered = append(rendered, pair)
		if w := lipgloss.Width(pair); w > maxWidth {
			maxWidth = w
		}
	}

	var line strings.Builder
	line.WriteString("  ")
	for i, pair := range rendered {
		line.WriteString(pair)
		if i < len(rendered)-1 {
			pad := maxWidth - lipgloss.Width(pair) + 4
			line.WriteString(strings.Repeat(" ", pad))
		}
	}
	fmt.Println(line.String())
}

// FormatAge formats a duration as a human-readable age string.
// Returns "3d 4h", "12h 30m", "45m", "30s" etc.
func FormatAge(
	d time.Duration,
) string {
	if d <= 0 {
		return ""
	}

	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm", minutes)
	default:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
}

// FormatList helper function to convert []string to a formatted string.
func FormatList(
	list []string,
) string {
	if len(list) == 0 {
		return "None"
	}
	return strings.Join(list, ", ")
}

// TruncateText shortens text to maxLen, appending an ellipsis when
// truncation occurs.
func TruncateText(
	text string,
	maxLen int,
) string {
	if maxLen <= 3 || len(text) <= maxLen {
		return text
	}

	return text[:maxLen-3] + "..."
}

// DisplayEntry renders a full ledger entry with metadata and narrative
// sections.
func DisplayEntry(
	e *entry.Entry,
) {
	fmt.Println()
	PrintKV("Entry ID", e.ID, "Revision", fmt.Sprintf("%d", e.Revision))
	PrintKV("Type", string(e.Type), "Status", string(e.Status))
	PrintKV("Author", string(e.Author), "Date", e.Date)
	if e.SupersedesEntryID != "" {
		PrintKV("Supersedes", e.SupersedesEntryID)
	}
	if len(e.Tags) > 0 {
		PrintKV("Tags", FormatList(e.Tags))
	}

	sections := []Section{
		{
			Title:   "Narrative",
			Headers: []string{"SECTION", "CONTENT"},
			Rows: [][]string{
				{"Title", e.Title},
				{"Executive Summary", e.ExecutiveSummary},
				{"What Changed", e.WhatChanged},
				{"Decisions / Rationale", e.DecisionsRationale},
				{"Risks / Mitigations", e.RisksMitigations},
			},
		},
	}

	if len(e.References) > 0 {
		refRows := make([][]string, 0, len(e.References))
		for _, ref := range e.References {
			refRows = append(refRows, []string{string(ref.Type), ref.ID, ref.Description})
		}
		sections = append(sections, Section{
			Title:   "References",
			Headers: []string{"TYPE", "ID", "DESCRIPTION"},
			Rows:    refRows,
		})
	}

	PrintCompactTable(sections)
}

// BuildEntryRows converts entries to table rows for list output.
func BuildEntryRows(
	entries []*entry.Entry,
) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.ID,
			string(e.Type),
			string(e.Status),
			e.Date,
			TruncateText(e.Title, compactMaxColWidth),
			FormatList(e.Tags),
		})
	}

	return rows
}

// DisplayEntryTable renders a list of entries as a compact table.
func DisplayEntryTable(
	title string,
	entries []*entry.Entry,
) {
	PrintCompactTable([]Section{
		{
			Title:   title,
			Headers: []string{"ID", "TYPE", "STATUS", "DATE", "TITLE", "TAGS"},
			Rows:    BuildEntryRows(entries),
		},
	})
}

// DisplaySimilarTable renders similarity lookup results with scores.
func DisplaySimilarTable(
	results []ledger.SimilarResult,
) {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.Entry.ID,
			fmt.Sprintf("%.4f", r.Score),
			string(r.Entry.Type),
			TruncateText(r.Entry.Title, compactMaxColWidth),
		})
	}

	PrintCompactTable([]Section{
		{
			Title:   "Similar Entries",
			Headers: []string{"ID", "SCORE", "TYPE", "TITLE"},
			Rows:    rows,
		},
	})
}

// DisplayAuditTable renders audit records as a compact table.
func DisplayAuditTable(
	records []audit.Record,
) {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		changes := fmt.Sprintf("%d", len(rec.Changes))
		rows = append(rows, []string{
			rec.ID,
			rec.Timestamp.UTC().Format(time.RFC3339),
			string(rec.Action),
			rec.EntryID,
			string(rec.AuthorRole),
			changes,
		})
	}

	PrintCompactTable([]Section{
		{
			Title:   "Audit Records",
			Headers: []string{"ID", "TIMESTAMP", "ACTION", "ENTRY", "ROLE", "CHANGES"},
			Rows:    rows,
		},
	})
}
