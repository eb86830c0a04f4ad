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
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lux-io/ledger/internal/cli"
	"github.com/lux-io/ledger/internal/client"
)

// clientEntrySearchCmd represents the clientEntrySearch command.
var clientEntrySearchCmd = &cobra.Command{
	Use:   "search QUERY...",
	Short: "Search entries by text",
	Long: `Search entry titles, summaries, and narrative sections for a
substring, case-insensitively. Requires entry:read permission.
`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		entryHandler := handler.(client.EntryHandler)

		resp, err := entryHandler.SearchEntries(ctx, strings.Join(args, " "))
		if err != nil {
			cli.LogFatal(logger, "failed to search entries", err)
		}

		if jsonOutput {
			printJSON(resp)
			return
		}

		fmt.Println()
		cli.PrintKV("Matches", strconv.Itoa(resp.Total))

		if len(resp.Entries) == 0 {
			fmt.Println("  No entries matched.")
			return
		}

		cli.DisplayEntryTable("Search Results", resp.Entries)
	},
}

func init() {
	clientEntryCmd.AddCommand(clientEntrySearchCmd)
}
