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
	"fmt"
	"log/slog"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/server"
	"github.com/spf13/cobra"

	"github.com/lux-io/ledger/internal/cli"
)

// natsReadyTimeout bounds how long startup waits for the embedded server
// to accept connections.
const natsReadyTimeout = 10 * time.Second

// natsLifecycle adapts the embedded NATS server to the Lifecycle contract.
type natsLifecycle struct {
	logger *slog.Logger
	server *natsserver.Server
}

func (n *natsLifecycle) Start() {
	go n.server.Start()

	if !n.server.ReadyForConnections(natsReadyTimeout) {
		cli.LogFatal(
			n.logger,
			"nats server failed to start",
			fmt.Errorf("not ready after %s", natsReadyTimeout),
		)
	}

	n.logger.Info(
		"nats server ready",
		slog.String("url", n.server.ClientURL()),
		slog.Bool("jetstream", n.server.JetStreamEnabled()),
	)
}

func (n *natsLifecycle) Stop(
	_ context.Context,
) {
	n.server.Shutdown()
	n.server.WaitForShutdown()
}

// setupNATSServer creates the embedded JetStream-enabled NATS server from
// config, without starting it.
func setupNATSServer(
	log *slog.Logger,
) *natsserver.Server {
	serverCfg := appConfig.NATS.Server

	opts := &natsserver.Options{
		Host:      serverCfg.Host,
		Port:      serverCfg.Port,
		JetStream: true,
		StoreDir:  serverCfg.StoreDir,
	}

	switch serverCfg.Auth.Type {
	case "user_pass":
		users := make([]*natsserver.User, 0, len(serverCfg.Auth.Users))
		for _, u := range serverCfg.Auth.Users {
			users = append(users, &natsserver.User{
				Username: u.Username,
				Password: u.Password,
			})
		}
		opts.Users = users
	case "nkey":
		nkeys := make([]*natsserver.NkeyUser, 0, len(serverCfg.Auth.NKeys))
		for _, nkey := range serverCfg.Auth.NKeys {
			nkeys = append(nkeys, &natsserver.NkeyUser{Nkey: nkey})
		}
		opts.Nkeys = nkeys
	}

	s, err := natsserver.NewServer(opts)
	if err != nil {
		cli.LogFatal(log, "failed to create nats server", err)
	}

	return s
}

// natsServerStartCmd represents the natsServerStart command.
var natsServerStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the embedded NATS server",
	Long: `Start the embedded NATS server with JetStream enabled.
Backs the entry store, audit mirror, and ingestion stream.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		log := logger.With("component", "nats")

		var ns cli.Lifecycle = &natsLifecycle{
			logger: log,
			server: setupNATSServer(log),
		}

		ns.Start()
		cli.RunServer(ctx, ns)
	},
}

func init() {
	natsServerCmd.AddCommand(natsServerStartCmd)
}
