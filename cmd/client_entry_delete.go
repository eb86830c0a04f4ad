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
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lux-io/ledger/internal/cli"
	"github.com/lux-io/ledger/internal/client"
)

// clientEntryDeleteCmd represents the clientEntryDelete command.
var clientEntryDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete an entry",
	Long: `Permanently remove an entry from the ledger. Requires the lux role.
Superseding is preferred; deletion is for entries created in error.
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		entryHandler := handler.(client.EntryHandler)

		if err := entryHandler.DeleteEntry(ctx, args[0]); err != nil {
			cli.LogFatal(logger, "failed to delete entry", err)
		}

		logger.Info(
			"deleted entry",
			slog.String("id", args[0]),
		)
	},
}

func init() {
	clientEntryCmd.AddCommand(clientEntryDeleteCmd)
}
