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

package monitor_test

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"github.com/lux-io/ledger/internal/monitor"
)

type MonitorPublicTestSuite struct {
	suite.Suite

	reg *prometheus.Registry
	mon *monitor.Monitor
}

func (s *MonitorPublicTestSuite) SetupTest() {
	s.reg = prometheus.NewRegistry()
	s.mon = monitor.New(slog.Default(), s.reg, map[string]time.Duration{
		"search": time.Nanosecond,
	})
}

func (s *MonitorPublicTestSuite) TestTrackPassesThroughError() {
	wantErr := fmt.Errorf("store unavailable")

	err := s.mon.Track("save", func() error { return wantErr })

	s.ErrorIs(err, wantErr)
	s.NoError(s.mon.Track("save", func() error { return nil }))
}

func (s *MonitorPublicTestSuite) TestTrackCountsThresholdBreach() {
	err := s.mon.Track("search", func() error {
		time.Sleep(time.Millisecond)
		return nil
	})
	s.NoError(err)

	count := testutil.ToFloat64(
		s.mon.Breaches().WithLabelValues("search"),
	)
	s.Equal(1.0, count)
}

func (s *MonitorPublicTestSuite) TestTrackWithoutThreshold() {
	s.NoError(s.mon.Track("list", func() error { return nil }))

	count := testutil.ToFloat64(
		s.mon.Breaches().WithLabelValues("list"),
	)
	s.Equal(0.0, count)
}

func TestMonitorPublicTestSuite(t *testing.T) {
	suite.Run(t, new(MonitorPublicTestSuite))
}
