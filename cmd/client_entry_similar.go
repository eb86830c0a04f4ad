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

var entrySimilarTopK int

// clientEntrySimilarCmd represents the clientEntrySimilar command.
var clientEntrySimilarCmd = &cobra.Command{
	Use:   "similar ID",
	Short: "Find entries similar to an entry",
	Long: `Find the entries most similar to the given entry by embedding
cosine similarity. Requires entry:read permission.
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		entryHandler := handler.(client.EntryHandler)

		resp, err := entryHandler.FindSimilar(ctx, args[0], entrySimilarTopK)
		if err != nil {
			cli.LogFatal(logger, "failed to find similar entries", err)
		}

		if jsonOutput {
			printJSON(resp)
			return
		}

		if len(resp.Results) == 0 {
			fmt.Println()
			fmt.Println("  No similar entries found.")
			return
		}

		cli.DisplaySimilarTable(resp.Results)
	},
}

func init() {
	clientEntryCmd.AddCommand(clientEntrySimilarCmd)
	clientEntrySimilarCmd.Flags().
		IntVar(&entrySimilarTopK, "top-k", 5, "Maximum number of results to return")
}
