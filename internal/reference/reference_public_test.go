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

package reference_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/lux-io/ledger/internal/entry"
	"github.com/lux-io/ledger/internal/reference"
)

type ReferencePublicTestSuite struct {
	suite.Suite
}

func (s *ReferencePublicTestSuite) TestValidate() {
	tests := []struct {
		name    string
		ref     entry.Reference
		wantErr bool
	}{
		{
			name: "valid short commit hash",
			ref: entry.Reference{
				ID:          "a1b2c3d",
				Type:        entry.RefCommitHash,
				Description: "head commit",
			},
		},
		{
			name: "valid full commit hash",
			ref: entry.Reference{
				ID:          "a1b2c3d4e5f60718293a4b5c6d7e8f9012345678",
				Type:        entry.RefCommitHash,
				Description: "merge commit",
			},
		},
		{
			name: "uppercase commit hash rejected",
			ref: entry.Reference{
				ID:          "A1B2C3D",
				Type:        entry.RefCommitHash,
				Description: "head commit",
			},
			wantErr: true,
		},
		{
			name: "commit hash too short",
			ref: entry.Reference{
				ID:          "abc123",
				Type:        entry.RefCommitHash,
				Description: "head commit",
			},
			wantErr: true,
		},
		{
			name: "valid dv job",
			ref: entry.Reference{
				ID:          "dv-421",
				Type:        entry.RefDVJob,
				Description: "validation run",
			},
		},
		{
			name: "dv job without numeric suffix",
			ref: entry.Reference{
				ID:          "dv-abc",
				Type:        entry.RefDVJob,
				Description: "validation run",
			},
			wantErr: true,
		},
		{
			name: "valid hud snapshot",
			ref: entry.Reference{
				ID:          "hud-2025-01-01_a",
				Type:        entry.RefHUDSnapshot,
				Description: "dashboard capture",
			},
		},
		{
			name: "valid control hub comment",
			ref: entry.Reference{
				ID:          "88123",
				Type:        entry.RefControlHubComment,
				Description: "review thread",
			},
		},
		{
			name: "valid external url",
			ref: entry.Reference{
				ID:          "https://example.com/pr/42",
				Type:        entry.RefExternal,
				Description: "pull request",
			},
		},
		{
			name: "external url without scheme",
			ref: entry.Reference{
				ID:          "example.com/pr/42",
				Type:        entry.RefExternal,
				Description: "pull request",
			},
			wantErr: true,
		},
		{
			name: "empty id",
			ref: entry.Reference{
				Type:        entry.RefCommitHash,
				Description: "head commit",
			},
			wantErr: true,
		},
		{
			name: "empty description",
			ref: entry.Reference{
				ID:   "a1b2c3d",
				Type: entry.RefCommitHash,
			},
			wantErr: true,
		},
		{
			name: "unknown type",
			ref: entry.Reference{
				ID:          "x",
				Type:        entry.RefType("jira"),
				Description: "ticket",
			},
			wantErr: true,
		},
		{
			name: "bad secondary url",
			ref: entry.Reference{
				ID:          "a1b2c3d",
				Type:        entry.RefCommitHash,
				Description: "head commit",
				URL:         "not a url",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			err := reference.Validate(tt.ref)
			if tt.wantErr {
				s.Error(err)
			} else {
				s.NoError(err)
			}
		})
	}
}

func (s *ReferencePublicTestSuite) TestValidateAll() {
	refs := []entry.Reference{
		{ID: "a1b2c3d", Type: entry.RefCommitHash, Description: "ok"},
		{ID: "", Type: entry.RefCommitHash, Description: "missing id"},
		{ID: "dv-x", Type: entry.RefDVJob, Description: "bad job id"},
	}

	errs := reference.ValidateAll(refs)

	s.Len(errs, 2)
	s.Equal("references[1]", errs[0].Field)
	s.Equal("references[2]", errs[1].Field)
}

func TestReferencePublicTestSuite(t *testing.T) {
	suite.Run(t, new(ReferencePublicTestSuite))
}
