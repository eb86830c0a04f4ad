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
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/lux-io/ledger/internal/audit/export"
	"github.com/lux-io/ledger/internal/cli"
	"github.com/lux-io/ledger/internal/client"
)

// clientAuditExportCmd represents the clientAuditExport command.
var clientAuditExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the audit log",
	Long: `Download the full audit log in JSON or CSV format. With --output the
result is written to a file, otherwise it goes to stdout.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		auditHandler := handler.(client.AuditHandler)

		if _, err := export.ParseFormat(format); err != nil {
			cli.LogFatal(logger, "invalid export format", err)
		}

		data, err := auditHandler.ExportAudit(ctx, format)
		if err != nil {
			cli.LogFatal(logger, "failed to export audit log", err)
		}

		if output == "" {
			_, _ = os.Stdout.Write(data)
			return
		}

		if err := afero.WriteFile(appFs, output, data, 0o644); err != nil {
			cli.LogFatal(logger, "failed to write export file", err)
		}

		cli.PrintKV(
			"Exported", fmt.Sprintf("%d bytes", len(data)),
			"Output", output,
		)
	},
}

func init() {
	clientAuditCmd.AddCommand(clientAuditExportCmd)

	clientAuditExportCmd.PersistentFlags().
		StringP("format", "F", "json", "Export format (json or csv)")
	clientAuditExportCmd.PersistentFlags().
		StringP("output", "O", "", "Write the export to this file instead of stdout")
}
