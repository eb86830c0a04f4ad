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
	"sort"

	"github.com/spf13/cobra"

	"github.com/lux-io/ledger/internal/cli"
	"github.com/lux-io/ledger/internal/client"
)

// clientHealthDetailedCmd represents the clientHealthDetailed command.
var clientHealthDetailedCmd = &cobra.Command{
	Use:   "detailed",
	Short: "Check per-component server health",
	Long: `Fetch per-component health from the API server, including host
details. Requires a token with health:read permission.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		healthHandler := handler.(client.HealthHandler)

		resp, err := healthHandler.GetHealthDetailed(ctx)
		if err != nil {
			cli.LogFatal(logger, "failed to get detailed health", err)
		}

		if jsonOutput {
			printJSON(resp)
			return
		}

		cli.PrintKV(
			"Status", resp.Status,
			"Uptime", resp.Uptime,
			"Hostname", resp.Host.Hostname,
			"Platform", resp.Host.Platform,
		)

		names := make([]string, 0, len(resp.Components))
		for name := range resp.Components {
			names = append(names, name)
		}
		sort.Strings(names)

		rows := make([][]string, 0, len(names))
		for _, name := range names {
			component := resp.Components[name]
			detail := component.Error
			if detail == "" {
				detail = "-"
			}
			rows = append(rows, []string{name, component.Status, detail})
		}

		if len(rows) == 0 {
			fmt.Println("No component health reported.")
			return
		}

		cli.PrintCompactTable([]cli.Section{
			{
				Title:   "Components",
				Headers: []string{"COMPONENT", "STATUS", "DETAIL"},
				Rows:    rows,
			},
		})
	},
}

func init() {
	clientHealthCmd.AddCommand(clientHealthDetailedCmd)
}
