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

// Package monitor wraps ledger operations with latency tracking against
// service-level thresholds.
package monitor

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Monitor times operations, records them as prometheus metrics, and logs
// a warning whenever an operation exceeds its configured threshold.
type Monitor struct {
	logger     *slog.Logger
	thresholds map[string]time.Duration

	latency  *prometheus.HistogramVec
	breaches *prometheus.CounterVec
}

// New creates a Monitor and registers its metrics on the given registerer.
func New(
	logger *slog.Logger,
	reg prometheus.Registerer,
	thresholds map[string]time.Duration,
) *Monitor {
	m := &Monitor{
		logger:     logger,
		thresholds: thresholds,
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledger_operation_duration_seconds",
				Help:    "Latency of ledger store operations.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		breaches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_operation_threshold_breaches_total",
				Help: "Count of operations exceeding their latency threshold.",
			},
			[]string{"operation"},
		),
	}

	if reg != nil {
		reg.MustRegister(m.latency, m.breaches)
	}

	return m
}

// Breaches exposes the breach counter for test inspection.
func (m *Monitor) Breaches() *prometheus.CounterVec {
	return m.breaches
}

// Track runs fn, observes its latency, and checks the operation's
// threshold. The wrapped error is returned unchanged.
func (m *Monitor) Track(
	operation string,
	fn func() error,
) error {
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)

	m.latency.WithLabelValues(operation).Observe(elapsed.Seconds())

	if threshold, ok := m.thresholds[operation]; ok && elapsed > threshold {
		m.breaches.WithLabelValues(operation).Inc()
		m.logger.Warn(
			"operation exceeded latency threshold",
			slog.String("operation", operation),
			slog.Duration("elapsed", elapsed),
			slog.Duration("threshold", threshold),
		)
	}

	return err
}
