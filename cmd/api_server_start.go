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
	"context"

	"github.com/spf13/cobra"

	"github.com/lux-io/ledger/internal/api"
	"github.com/lux-io/ledger/internal/cli"
	"github.com/lux-io/ledger/internal/telemetry"
)

// apiServerStartCmd represents the apiServerStart command.
var apiServerStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the server",
	Long: `Start the ledger API server.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		log := logger.With("component", "api")

		shutdownTracer, err := telemetry.InitTracer(
			ctx,
			"ledger",
			appConfig.Telemetry.Tracing,
		)
		if err != nil {
			cli.LogFatal(log, "failed to initialize tracer", err)
		}

		metricsHandler, metricsPath, shutdownMeter, err := telemetry.InitMeter(
			appConfig.Telemetry.Metrics,
		)
		if err != nil {
			cli.LogFatal(log, "failed to initialize meter", err)
		}

		bundle := buildService(ctx, log)
		server := api.New(
			appConfig,
			log,
			bundle.service,
			api.WithMetricsHandler(metricsHandler, metricsPath),
		)
		stopExport := scheduleAuditExport(log, bundle.service)

		server.Start()
		cleanups := append(
			[]func(){
				stopExport,
				func() { _ = shutdownMeter(context.Background()) },
				func() { _ = shutdownTracer(context.Background()) },
			},
			bundle.cleanups...,
		)
		cli.RunServer(ctx, server, cleanups...)
	},
}

func init() {
	apiServerCmd.AddCommand(apiServerStartCmd)
}
