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
	"github.com/spf13/cobra"

	"github.com/lux-io/ledger/internal/cli"
	"github.com/lux-io/ledger/internal/client"
)

// clientEntrySupersedeCmd represents the clientEntrySupersede command.
var clientEntrySupersedeCmd = &cobra.Command{
	Use:   "supersede ID",
	Short: "Supersede an entry with a replacement",
	Long: `Archive a published entry and create a replacement draft linked to it.
The replacement entry is read from a JSON file.
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		filePath, _ := cmd.Flags().GetString("file")
		entryHandler := handler.(client.EntryHandler)

		replacement := readEntryFile(filePath)

		result, err := entryHandler.SupersedeEntry(ctx, args[0], replacement)
		if err != nil {
			cli.LogFatal(logger, "failed to supersede entry", err)
		}

		if jsonOutput {
			printJSON(result)
			return
		}

		cli.PrintKV("Archived", result.Old.ID)
		cli.DisplayEntry(result.New)
	},
}

func init() {
	clientEntryCmd.AddCommand(clientEntrySupersedeCmd)

	clientEntrySupersedeCmd.PersistentFlags().
		StringP("file", "F", "", "Path to a JSON file containing the replacement entry")
	_ = clientEntrySupersedeCmd.MarkPersistentFlagRequired("file")
}
