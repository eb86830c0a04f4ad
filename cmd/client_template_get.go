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

// clientTemplateGetCmd represents the clientTemplateGet command.
var clientTemplateGetCmd = &cobra.Command{
	Use:   "get TYPE",
	Short: "Get the narrative template for an entry type",
	Long: `Fetch the narrative template for an entry type. With --prefill the
server also returns a draft entry seeded from the template.
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		prefill, _ := cmd.Flags().GetBool("prefill")
		entryHandler := handler.(client.EntryHandler)

		resp, err := entryHandler.GetTemplate(ctx, args[0], prefill)
		if err != nil {
			cli.LogFatal(logger, "failed to get template", err)
		}

		if jsonOutput {
			printJSON(resp)
			return
		}

		cli.PrintKV("Type", string(resp.Type))
		cli.PrintKV("Suggested Tags", cli.FormatList(resp.SuggestedTags))
		cli.PrintKV("Executive Summary", resp.ExecutiveSummary)
		cli.PrintKV("What Changed", resp.WhatChanged)
		cli.PrintKV("Decisions / Rationale", resp.DecisionsRationale)
		cli.PrintKV("Risks / Mitigations", resp.RisksMitigations)

		if resp.Draft != nil {
			cli.DisplayEntry(resp.Draft)
		}
	},
}

func init() {
	clientTemplateCmd.AddCommand(clientTemplateGetCmd)

	clientTemplateGetCmd.PersistentFlags().
		BoolP("prefill", "p", false, "Also return a draft entry seeded from the template")
}
