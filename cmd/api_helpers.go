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
	"log/slog"

	natsclient "github.com/osapi-io/nats-client/pkg/client"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"

	"github.com/lux-io/ledger/internal/audit"
	"github.com/lux-io/ledger/internal/audit/export"
	"github.com/lux-io/ledger/internal/cli"
	"github.com/lux-io/ledger/internal/config"
	"github.com/lux-io/ledger/internal/ledger"
	"github.com/lux-io/ledger/internal/messaging"
	"github.com/lux-io/ledger/internal/monitor"
)

// exportBatchSize is the page size for scheduled audit exports.
const exportBatchSize = 500

// serviceBundle holds the ledger service plus cleanups for the resources
// backing it (NATS connections, database handles, cron schedulers).
type serviceBundle struct {
	service  *ledger.Service
	cleanups []func()
}

// buildService assembles the ledger service from config: the entry store
// for the configured backend, the audit log with its optional durable
// mirror, and the latency monitor. It is shared by the API server and
// ingestion worker start commands.
func buildService(
	_ context.Context,
	log *slog.Logger,
) *serviceBundle {
	b := &serviceBundle{}

	// One NATS connection serves both the entry store and the audit
	// mirror; it is dialed only when a component needs it.
	var nc messaging.NATSClient
	connectNATS := func() messaging.NATSClient {
		if nc != nil {
			return nc
		}
		nc = dialNATS(log, appConfig.API.Server.NATS)
		b.cleanups = append(b.cleanups, func() { cli.CloseNATSClient(nc) })
		return nc
	}

	var store ledger.Store
	switch appConfig.Store.Backend {
	case "sqlite":
		db, err := ledger.OpenSQLite(appConfig.Store.SQLitePath)
		if err != nil {
			cli.LogFatal(log, "failed to open sqlite store", err,
				"path", appConfig.Store.SQLitePath)
		}
		store = ledger.NewSQLiteStore(log, db)
		b.cleanups = append(b.cleanups, func() {
			if sqlDB, dbErr := db.DB(); dbErr == nil {
				_ = sqlDB.Close()
			}
		})
	case "nats":
		kv, err := cli.CreateKVBucketWithConfig(
			connectNATS(),
			cli.BuildStoreKVConfig(appConfig.Store),
		)
		if err != nil {
			cli.LogFatal(log, "failed to create entry store bucket", err,
				"bucket", appConfig.Store.Bucket)
		}
		store = ledger.NewKVStore(log, kv)
	default:
		store = ledger.NewMemoryStore()
	}

	var auditOpts []audit.Option
	if appConfig.Audit.Mirror {
		kv, err := cli.CreateKVBucketWithConfig(
			connectNATS(),
			cli.BuildAuditKVConfig(appConfig.Audit),
		)
		if err != nil {
			cli.LogFatal(log, "failed to create audit mirror bucket", err,
				"bucket", appConfig.Audit.Bucket)
		}
		auditOpts = append(auditOpts, audit.WithMirror(audit.NewKVStore(log, kv)))
	}
	auditLog := audit.NewLog(log, appConfig.Audit.MaxRecords, auditOpts...)

	mon := monitor.New(log, prometheus.DefaultRegisterer, appConfig.MonitorThresholds())

	b.service = ledger.New(log, store, auditLog, mon)

	log.Info(
		"ledger service ready",
		slog.String("backend", storeBackendName(appConfig.Store.Backend)),
		slog.Bool("audit_mirror", appConfig.Audit.Mirror),
	)

	return b
}

func storeBackendName(
	backend string,
) string {
	if backend == "" {
		return "memory"
	}

	return backend
}

// dialNATS connects a NATS client or dies trying.
func dialNATS(
	log *slog.Logger,
	connCfg config.NATSConnection,
) messaging.NATSClient {
	var nc messaging.NATSClient = natsclient.New(log, &natsclient.Options{
		Host: connCfg.Host,
		Port: connCfg.Port,
		Auth: cli.BuildNATSAuthOptions(connCfg.Auth),
		Name: connCfg.ClientName,
	})

	if err := nc.Connect(); err != nil {
		cli.LogFatal(log, "failed to connect to NATS", err,
			"host", connCfg.Host)
	}

	return nc
}

// scheduleAuditExport starts the cron scheduler for periodic audit log
// exports when enabled. The returned cleanup waits for a running export
// to finish.
func scheduleAuditExport(
	log *slog.Logger,
	service *ledger.Service,
) func() {
	if !appConfig.Audit.Export.Enabled {
		return func() {}
	}

	format, err := export.ParseFormat(appConfig.Audit.Export.Format)
	if err != nil {
		cli.LogFatal(log, "invalid audit export format", err)
	}

	scheduler := cron.New()
	_, err = scheduler.AddFunc(appConfig.Audit.Export.Schedule, func() {
		runAuditExport(context.Background(), log, service, format)
	})
	if err != nil {
		cli.LogFatal(log, "invalid audit export schedule", err,
			"schedule", appConfig.Audit.Export.Schedule)
	}

	scheduler.Start()
	log.Info(
		"scheduled audit export",
		slog.String("schedule", appConfig.Audit.Export.Schedule),
		slog.String("path", appConfig.Audit.Export.Path),
	)

	return func() {
		<-scheduler.Stop().Done()
	}
}

// runAuditExport writes the full audit log to the configured export file.
func runAuditExport(
	ctx context.Context,
	log *slog.Logger,
	service *ledger.Service,
	format export.Format,
) {
	records := service.AuditLog().Query(audit.Filter{})

	fetcher := func(_ context.Context, limit int, offset int) ([]audit.Record, int, error) {
		total := len(records)
		if offset >= total {
			return nil, total, nil
		}

		end := offset + limit
		if end > total {
			end = total
		}

		return records[offset:end], total, nil
	}

	exporter := export.NewFileExporter(appFs, appConfig.Audit.Export.Path, format)
	result, err := export.Run(ctx, log, fetcher, exporter, exportBatchSize, nil)
	if err != nil {
		log.Error("audit export failed", slog.String("error", err.Error()))
		return
	}

	log.Info(
		"audit export complete",
		slog.Int("exported", result.ExportedRecords),
		slog.Int("total", result.TotalRecords),
		slog.String("path", appConfig.Audit.Export.Path),
	)
}
