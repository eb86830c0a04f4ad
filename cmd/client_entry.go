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
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/lux-io/ledger/internal/cli"
	"github.com/lux-io/ledger/internal/entry"
)

// clientEntryCmd represents the clientEntry command.
var clientEntryCmd = &cobra.Command{
	Use:   "entry",
	Short: "The entry subcommand",
}

func init() {
	clientCmd.AddCommand(clientEntryCmd)
}

// readEntryFile loads a ledger entry from a JSON file.
func readEntryFile(
	path string,
) *entry.Entry {
	data, err := afero.ReadFile(appFs, path)
	if err != nil {
		cli.LogFatal(logger, "failed to read entry file", err, "path", path)
	}

	var e entry.Entry
	if err := json.Unmarshal(data, &e); err != nil {
		cli.LogFatal(logger, "failed to parse entry file", err, "path", path)
	}

	return &e
}

// printJSON renders any API response as indented JSON for --json mode.
func printJSON(
	v any,
) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		cli.LogFatal(logger, "failed to encode response", err)
	}

	fmt.Println(string(data))
}
