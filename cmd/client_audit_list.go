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

	"github.com/spf13/cobra"

	"github.com/lux-io/ledger/internal/cli"
	"github.com/lux-io/ledger/internal/client"
)

// clientAuditListCmd represents the clientAuditList command.
var clientAuditListCmd = &cobra.Command{
	Use:   "list",
	Short: "List audit records",
	Long: `List audit records newest first, with limit and offset pagination.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")
		auditHandler := handler.(client.AuditHandler)

		resp, err := auditHandler.ListAudit(ctx, limit, offset)
		if err != nil {
			cli.LogFatal(logger, "failed to list audit records", err)
		}

		if jsonOutput {
			printJSON(resp)
			return
		}

		cli.PrintKV("Total", fmt.Sprintf("%d", resp.Total))
		if len(resp.Records) == 0 {
			fmt.Println("No audit records found.")
			return
		}

		cli.DisplayAuditTable(resp.Records)
	},
}

func init() {
	clientAuditCmd.AddCommand(clientAuditListCmd)

	clientAuditListCmd.PersistentFlags().
		IntP("limit", "l", 20, "Maximum number of records to return")
	clientAuditListCmd.PersistentFlags().
		IntP("offset", "o", 0, "Number of records to skip")
}
