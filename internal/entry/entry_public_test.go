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

package entry_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/lux-io/ledger/internal/entry"
)

type EntryPublicTestSuite struct {
	suite.Suite
}

func (suite *EntryPublicTestSuite) testEntry() *entry.Entry {
	return &entry.Entry{
		ID:                 "0195f0a2-0000-7000-8000-000000000001",
		Date:               "2026-03-01 10:00:00",
		Title:              "Rolled out the new cache layer",
		ExecutiveSummary:   "Cut p99 read latency in half.",
		WhatChanged:        "Added a read-through cache in front of the store.",
		DecisionsRationale: "The store could not absorb the read load alone.",
		RisksMitigations:   "Stale reads bounded by a short TTL.",
		Type:               entry.TypeDecision,
		Author:             entry.RoleLux,
		Status:             entry.StatusDraft,
		Tags:               []string{"cache", "latency"},
		References: []entry.Reference{
			{ID: "abc1234", Type: entry.RefCommitHash, Description: "rollout commit"},
		},
	}
}

func (suite *EntryPublicTestSuite) TestIntegrityDigest() {
	tests := []struct {
		name    string
		mutate  func(e *entry.Entry)
		changed bool
	}{
		{
			name:    "when nothing changes",
			mutate:  func(_ *entry.Entry) {},
			changed: false,
		},
		{
			name:    "when tag order changes",
			mutate:  func(e *entry.Entry) { e.Tags = []string{"latency", "cache"} },
			changed: false,
		},
		{
			name:    "when the embedding changes",
			mutate:  func(e *entry.Entry) { e.Embedding = []float32{0.5, 0.25} },
			changed: false,
		},
		{
			name:    "when the title changes",
			mutate:  func(e *entry.Entry) { e.Title = "Rolled back the new cache layer" },
			changed: true,
		},
		{
			name: "when a reference is added",
			mutate: func(e *entry.Entry) {
				e.References = append(e.References, entry.Reference{
					ID:          "dv-42",
					Type:        entry.RefDVJob,
					Description: "verification run",
				})
			},
			changed: true,
		},
	}

	base := suite.testEntry()
	baseDigest := entry.IntegrityDigest(base)

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			e := suite.testEntry()
			tc.mutate(e)

			digest := entry.IntegrityDigest(e)
			if tc.changed {
				suite.NotEqual(baseDigest, digest)
			} else {
				suite.Equal(baseDigest, digest)
			}
		})
	}
}

func (suite *EntryPublicTestSuite) TestValidType() {
	suite.True(entry.ValidType(entry.TypeRollback))
	suite.False(entry.ValidType(entry.Type("meeting")))
}

func (suite *EntryPublicTestSuite) TestValidRole() {
	suite.True(entry.ValidRole(entry.RoleMiniLux))
	suite.False(entry.ValidRole(entry.Role("admin")))
}

func (suite *EntryPublicTestSuite) TestParseDate() {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{name: "when the date matches the layout", date: "2026-03-01 10:00:00"},
		{name: "when the date is RFC3339", date: "2026-03-01T10:00:00Z", wantErr: true},
		{name: "when the date is empty", date: "", wantErr: true},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			e := &entry.Entry{Date: tc.date}

			parsed, err := e.ParseDate()
			if tc.wantErr {
				suite.Error(err)
				return
			}

			suite.NoError(err)
			suite.Equal("UTC", parsed.Location().String())
		})
	}
}

func (suite *EntryPublicTestSuite) TestClone() {
	e := suite.testEntry()
	e.Embedding = []float32{1, 2, 3}

	clone := e.Clone()
	clone.Tags[0] = "mutated"
	clone.Embedding[0] = 9
	clone.References[0].ID = "fffffff"

	suite.Equal("cache", e.Tags[0])
	suite.Equal(float32(1), e.Embedding[0])
	suite.Equal("abc1234", e.References[0].ID)
}

func TestEntryPublicTestSuite(t *testing.T) {
	suite.Run(t, new(EntryPublicTestSuite))
}
