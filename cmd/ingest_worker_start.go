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
	"github.com/lux-io/ledger/internal/ingest"
	"github.com/lux-io/ledger/internal/ledger"
	"github.com/lux-io/ledger/internal/messaging"
)

// setupIngestWorker dials the ingestion NATS connection and builds the
// worker around the shared ledger service.
func setupIngestWorker(
	log *slog.Logger,
	service *ledger.Service,
) (*ingest.Worker, messaging.NATSClient) {
	nc := dialNATS(log, appConfig.Ingest.NATS)

	pipeline := ingest.NewPipeline(log, service, appConfig.Ingest.AutoPublish)
	worker := ingest.NewWorker(
		log,
		nc,
		pipeline,
		appConfig.Ingest.QueueGroup,
		appConfig.Ingest.MaxInFlight,
	)

	return worker, nc
}

// ingestWorkerStartCmd represents the ingestWorkerStart command.
var ingestWorkerStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the ingestion worker",
	Long: `Start the ingestion worker.

Consumes pull request, issue, and release events from the ingestion
stream and converts them into ledger entries.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		log := logger.With("component", "ingest")

		bundle := buildService(ctx, log)
		worker, nc := setupIngestWorker(log, bundle.service)

		worker.Start()
		cleanups := append(
			[]func(){func() { cli.CloseNATSClient(nc) }},
			bundle.cleanups...,
		)
		cli.RunServer(ctx, worker, cleanups...)
	},
}

func init() {
	ingestWorkerCmd.AddCommand(ingestWorkerStartCmd)
}
