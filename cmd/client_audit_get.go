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

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lux-io/ledger/internal/cli"
	"github.com/lux-io/ledger/internal/client"
)

// clientAuditGetCmd represents the clientAuditGet command.
var clientAuditGetCmd = &cobra.Command{
	Use:   "get ID",
	Short: "Get a single audit record",
	Long: `Fetch a single audit record by id, including its field-level diff.
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		auditHandler := handler.(client.AuditHandler)

		rec, err := auditHandler.GetAudit(ctx, args[0])
		if err != nil {
			cli.LogFatal(logger, "failed to get audit record", err)
		}

		if jsonOutput {
			printJSON(rec)
			return
		}

		cli.PrintKV(
			"Record ID", rec.ID,
			"Seq", fmt.Sprintf("%d", rec.Seq),
			"Timestamp", rec.Timestamp.Format(time.RFC3339),
			"Action", string(rec.Action),
			"Entry ID", rec.EntryID,
			"Author Role", string(rec.AuthorRole),
		)

		if len(rec.Changes) > 0 {
			rows := make([][]string, 0, len(rec.Changes))
			for _, ch := range rec.Changes {
				rows = append(rows, []string{
					ch.Field,
					cli.TruncateText(ch.Old, 40),
					cli.TruncateText(ch.New, 40),
				})
			}

			cli.PrintCompactTable([]cli.Section{
				{
					Title:   "Changes",
					Headers: []string{"FIELD", "OLD", "NEW"},
					Rows:    rows,
				},
			})
		}
	},
}

func init() {
	clientAuditCmd.AddCommand(clientAuditGetCmd)
}
