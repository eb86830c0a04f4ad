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
	"github.com/lux-io/ledger/internal/ledger"
)

var entryCreateFile string

// clientEntryCreateCmd represents the clientEntryCreate command.
var clientEntryCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new draft entry",
	Long: `Create a new draft entry from a JSON file.

The server assigns the id, revision, timestamps, and embedding. Template
warnings and sensitive-content findings are advisory and never block the
write. Requires entry:write permission.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		entryHandler := handler.(client.EntryHandler)

		e := readEntryFile(entryCreateFile)
		result, err := entryHandler.CreateEntry(ctx, e)
		if err != nil {
			cli.LogFatal(logger, "failed to create entry", err)
		}

		if jsonOutput {
			printJSON(result)
			return
		}

		cli.DisplayEntry(result.Entry)
		reportSaveFindings(result)
	},
}

// reportSaveFindings logs the advisory findings attached to a save.
func reportSaveFindings(
	result *ledger.SaveResult,
) {
	for _, w := range result.Warnings {
		logger.Warn(
			"template warning",
			slog.String("field", w.Field),
			slog.String("message", w.Message),
		)
	}
	if len(result.Sensitive) > 0 {
		logger.Warn(
			"sensitive content detected",
			slog.String("patterns", cli.FormatList(result.Sensitive)),
		)
	}
	if result.QuickWrite {
		logger.Info("entry qualifies as a quick write")
	}
}

func init() {
	clientEntryCmd.AddCommand(clientEntryCreateCmd)
	clientEntryCreateCmd.Flags().
		StringVarP(&entryCreateFile, "file", "F", "", "Path to the entry JSON file")

	_ = clientEntryCreateCmd.MarkFlagRequired("file")
}
