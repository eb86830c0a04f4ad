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

package audit_test

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/lux-io/ledger/internal/audit"
	"github.com/lux-io/ledger/internal/entry"
)

// failingStore is a mirror that always fails, proving appends survive it.
type failingStore struct {
	calls int
}

func (f *failingStore) Write(
	_ context.Context,
	_ audit.Record,
) error {
	f.calls++
	return fmt.Errorf("mirror unavailable")
}

type LogPublicTestSuite struct {
	suite.Suite

	ctx context.Context
	log *audit.Log
}

func (s *LogPublicTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.log = audit.NewLog(slog.Default(), 5)
}

func (s *LogPublicTestSuite) append(
	action audit.Action,
	entryID string,
) audit.Record {
	return s.log.Append(s.ctx, audit.Record{
		Action:     action,
		EntryID:    entryID,
		AuthorRole: entry.RoleLux,
	})
}

func (s *LogPublicTestSuite) TestAppendAssignsSequence() {
	first := s.append(audit.ActionCreate, "e1")
	second := s.append(audit.ActionUpdate, "e1")

	s.Equal(int64(1), first.Seq)
	s.Equal(int64(2), second.Seq)
	s.NotEmpty(first.ID)
	s.False(first.Timestamp.IsZero())
}

func (s *LogPublicTestSuite) TestCapDropsOldest() {
	for i := 0; i < 8; i++ {
		s.append(audit.ActionCreate, fmt.Sprintf("e%d", i))
	}

	s.Equal(5, s.log.Len())

	// Sequence numbers keep increasing even after the ring wraps.
	records := s.log.Query(audit.Filter{})
	s.Equal(int64(4), records[0].Seq)
	s.Equal(int64(8), records[len(records)-1].Seq)
}

func (s *LogPublicTestSuite) TestQuery() {
	s.append(audit.ActionCreate, "e1")
	s.append(audit.ActionPublish, "e1")
	s.append(audit.ActionCreate, "e2")

	s.Len(s.log.Query(audit.Filter{EntryID: "e1"}), 2)
	s.Len(s.log.Query(audit.Filter{Action: audit.ActionPublish}), 1)
	s.Len(s.log.Query(audit.Filter{Action: audit.ActionDelete}), 0)
	s.Len(s.log.Query(audit.Filter{Until: time.Now().Add(-time.Hour)}), 0)
}

func (s *LogPublicTestSuite) TestGet() {
	rec := s.append(audit.ActionCreate, "e1")

	got, ok := s.log.Get(rec.ID)
	s.Require().True(ok)
	s.Equal(rec.Seq, got.Seq)

	_, ok = s.log.Get("missing")
	s.False(ok)
}

func (s *LogPublicTestSuite) TestPageNewestFirst() {
	for i := 0; i < 4; i++ {
		s.append(audit.ActionCreate, fmt.Sprintf("e%d", i))
	}

	page, total := s.log.Page(2, 0)
	s.Equal(4, total)
	s.Require().Len(page, 2)
	s.Equal(int64(4), page[0].Seq)
	s.Equal(int64(3), page[1].Seq)

	page, _ = s.log.Page(2, 3)
	s.Require().Len(page, 1)
	s.Equal(int64(1), page[0].Seq)

	page, _ = s.log.Page(2, 10)
	s.Empty(page)
}

func (s *LogPublicTestSuite) TestMirrorFailureNeverAborts() {
	mirror := &failingStore{}
	log := audit.NewLog(slog.Default(), 10, audit.WithMirror(mirror))

	rec := log.Append(s.ctx, audit.Record{
		Action:  audit.ActionCreate,
		EntryID: "e1",
	})

	s.Equal(int64(1), rec.Seq)
	s.Equal(1, mirror.calls)
	s.Equal(1, log.Len())
}

func (s *LogPublicTestSuite) TestConcurrentAppendsKeepPerEntryOrder() {
	log := audit.NewLog(slog.Default(), 1000)

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			id := fmt.Sprintf("e%d", worker)
			for i := 0; i < 50; i++ {
				log.Append(context.Background(), audit.Record{
					Action:  audit.ActionUpdate,
					EntryID: id,
				})
			}
		}(w)
	}
	wg.Wait()

	s.Equal(200, log.Len())

	// Within one entry's history, sequence numbers must be strictly increasing.
	for w := 0; w < 4; w++ {
		records := log.Query(audit.Filter{EntryID: fmt.Sprintf("e%d", w)})
		s.Require().Len(records, 50)
		for i := 1; i < len(records); i++ {
			s.Greater(records[i].Seq, records[i-1].Seq)
		}
	}
}

func TestLogPublicTestSuite(t *testing.T) {
	suite.Run(t, new(LogPublicTestSuite))
}
