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

package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/nats-io/nats.go/jetstream"
	natsclient "github.com/osapi-io/nats-client/pkg/client"

	"github.com/lux-io/ledger/internal/entry"
	"github.com/lux-io/ledger/internal/messaging"
	"github.com/lux-io/ledger/internal/telemetry"
)

// NATS subject hierarchy for ingestion events.
//
// Subject Format: ledger.ingest.{kind}
const (
	// StreamName is the JetStream stream holding ingestion events.
	StreamName = "LEDGER_INGEST"
	// SubjectRoot is the subject hierarchy prefix for ingestion events.
	SubjectRoot = "ledger.ingest"
	// SubjectPullRequest carries merged pull request events.
	SubjectPullRequest = "ledger.ingest.pr"
	// SubjectIssue carries closed issue events.
	SubjectIssue = "ledger.ingest.issue"
	// SubjectRelease carries published release events.
	SubjectRelease = "ledger.ingest.release"
	// ConsumerName is the durable consumer name for the worker.
	ConsumerName = "ledger_ingest_worker"
)

// Worker consumes ingestion events from JetStream and feeds them through
// the pipeline. It implements the cli.Lifecycle Start/Stop contract.
type Worker struct {
	logger      *slog.Logger
	client      messaging.NATSClient
	pipeline    *Pipeline
	queueGroup  string
	maxInFlight int

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWorker creates an ingestion Worker.
func NewWorker(
	logger *slog.Logger,
	client messaging.NATSClient,
	pipeline *Pipeline,
	queueGroup string,
	maxInFlight int,
) *Worker {
	return &Worker{
		logger:      logger,
		client:      client,
		pipeline:    pipeline,
		queueGroup:  queueGroup,
		maxInFlight: maxInFlight,
	}
}

// Start provisions the stream and durable consumer, then consumes
// without blocking. Call Stop to shut down.
func (w *Worker) Start() {
	w.ctx, w.cancel = context.WithCancel(context.Background())

	w.logger.Info(
		"starting ingestion worker",
		slog.String("stream", StreamName),
		slog.String("consumer", ConsumerName),
	)

	if err := w.client.CreateOrUpdateJetStreamWithConfig(
		w.ctx,
		jetstream.StreamConfig{
			Name:     StreamName,
			Subjects: []string{SubjectRoot + ".>"},
		},
		jetstream.ConsumerConfig{
			Durable:       ConsumerName,
			FilterSubject: SubjectRoot + ".>",
			AckPolicy:     jetstream.AckExplicitPolicy,
		},
	); err != nil {
		w.logger.Error(
			"failed to provision ingestion stream",
			slog.String("error", err.Error()),
		)
		return
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		opts := &natsclient.ConsumeOptions{
			QueueGroup:  w.queueGroup,
			MaxInFlight: w.maxInFlight,
		}

		err := w.client.ConsumeMessages(
			w.ctx,
			StreamName,
			ConsumerName,
			w.handleMessage,
			opts,
		)
		if err != nil && !errors.Is(err, context.Canceled) {
			w.logger.Error(
				"ingestion consumer stopped",
				slog.String("error", err.Error()),
			)
		}
	}()

	w.logger.Info("ingestion worker started")
}

// Stop gracefully shuts down the worker, waiting for in-flight events to
// finish or the context deadline to expire.
func (w *Worker) Stop(
	ctx context.Context,
) {
	w.logger.Info("ingestion worker shutting down")
	w.cancel()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		w.logger.Info("ingestion worker stopped gracefully")
	case <-ctx.Done():
		w.logger.Warn("ingestion worker shutdown timed out")
	}
}

// handleMessage dispatches one event by subject. Skipped and malformed
// events are acked so they are never redelivered; only persistence
// failures propagate for redelivery.
func (w *Worker) handleMessage(
	msg jetstream.Msg,
) (err error) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error(
				"panic while ingesting event",
				slog.String("subject", msg.Subject()),
				slog.Any("panic", r),
			)
			err = nil
		}
	}()

	w.logger.Debug(
		"received ingestion event",
		slog.String("subject", msg.Subject()),
	)

	// Publishers propagate trace context via message headers.
	ctx := telemetry.ExtractTraceContextFromHeader(w.ctx, http.Header(msg.Headers()))

	ingestErr := w.dispatch(ctx, msg.Subject(), msg.Data())

	var skip *SkipError
	if errors.As(ingestErr, &skip) {
		w.logger.Info(
			"event skipped",
			slog.String("subject", msg.Subject()),
			slog.String("reason", skip.Reason),
		)
		return nil
	}

	var verrs *entry.ValidationErrors
	if errors.As(ingestErr, &verrs) {
		w.logger.Warn(
			"ingested event failed validation",
			slog.String("subject", msg.Subject()),
			slog.String("error", verrs.Error()),
		)
		return nil
	}

	if ingestErr != nil {
		w.logger.Error(
			"failed to ingest event",
			slog.String("subject", msg.Subject()),
			slog.String("error", ingestErr.Error()),
		)
		return ingestErr
	}

	return nil
}

func (w *Worker) dispatch(
	ctx context.Context,
	subject string,
	data []byte,
) error {
	switch subject {
	case SubjectPullRequest:
		var ev PullRequestEvent
		if err := json.Unmarshal(data, &ev); err != nil {
			return &SkipError{Reason: "malformed pull request payload"}
		}
		_, err := w.pipeline.IngestPullRequest(ctx, ev)
		return err
	case SubjectIssue:
		var ev IssueEvent
		if err := json.Unmarshal(data, &ev); err != nil {
			return &SkipError{Reason: "malformed issue payload"}
		}
		_, err := w.pipeline.IngestIssue(ctx, ev)
		return err
	case SubjectRelease:
		var ev ReleaseEvent
		if err := json.Unmarshal(data, &ev); err != nil {
			return &SkipError{Reason: "malformed release payload"}
		}
		_, err := w.pipeline.IngestRelease(ctx, ev)
		return err
	default:
		return &SkipError{Reason: fmt.Sprintf("unknown subject %q", subject)}
	}
}
