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

	"github.com/spf13/cobra"

	"github.com/lux-io/ledger/internal/cli"
	"github.com/lux-io/ledger/internal/client"
	"github.com/lux-io/ledger/internal/entry"
	"github.com/lux-io/ledger/internal/ledger"
)

var (
	entryListType     string
	entryListStatus   string
	entryListAuthor   string
	entryListTag      string
	entryListArchived bool
)

// clientEntryListCmd represents the clientEntryList command.
var clientEntryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries",
	Long: `List entries filtered by type, status, author, or tag.
Archived entries are excluded unless requested. Requires entry:read
permission.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		entryHandler := handler.(client.EntryHandler)

		resp, err := entryHandler.ListEntries(ctx, ledger.ListFilter{
			Type:            entry.Type(entryListType),
			Status:          entry.Status(entryListStatus),
			Author:          entry.Role(entryListAuthor),
			Tag:             entryListTag,
			IncludeArchived: entryListArchived,
		})
		if err != nil {
			cli.LogFatal(logger, "failed to list entries", err)
		}

		if jsonOutput {
			printJSON(resp)
			return
		}

		fmt.Println()
		cli.PrintKV("Total", strconv.Itoa(resp.Total))

		if len(resp.Entries) == 0 {
			fmt.Println("  No entries found.")
			return
		}

		cli.DisplayEntryTable("Entries", resp.Entries)
	},
}

func init() {
	clientEntryCmd.AddCommand(clientEntryListCmd)
	clientEntryListCmd.Flags().
		StringVar(&entryListType, "type", "", "Filter by entry type")
	clientEntryListCmd.Flags().
		StringVar(&entryListStatus, "status", "", "Filter by lifecycle status")
	clientEntryListCmd.Flags().
		StringVar(&entryListAuthor, "author", "", "Filter by author role")
	clientEntryListCmd.Flags().
		StringVar(&entryListTag, "tag", "", "Filter by tag")
	clientEntryListCmd.Flags().
		BoolVar(&entryListArchived, "include-archived", false, "Include archived entries")
}
