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

package authtoken_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/lux-io/ledger/internal/authtoken"
)

type PermissionsPublicTestSuite struct {
	suite.Suite
}

func (s *PermissionsPublicTestSuite) TestResolvePermissions() {
	tests := []struct {
		name              string
		role              string
		directPermissions []string
		expectPerms       []string
		expectMissing     []string
	}{
		{
			name:        "lux gets all permissions",
			role:        "lux",
			expectPerms: authtoken.AllPermissions,
		},
		{
			name: "mini-lux may publish but not delete",
			role: "mini-lux",
			expectPerms: []string{
				authtoken.PermEntryRead,
				authtoken.PermEntryWrite,
				authtoken.PermEntryPublish,
				authtoken.PermAuditRead,
				authtoken.PermAuditExport,
			},
			expectMissing: []string{
				authtoken.PermEntryDelete,
			},
		},
		{
			name: "scribe may neither publish nor delete",
			role: "scribe",
			expectPerms: []string{
				authtoken.PermEntryRead,
				authtoken.PermEntryWrite,
				authtoken.PermAuditRead,
			},
			expectMissing: []string{
				authtoken.PermEntryPublish,
				authtoken.PermEntryDelete,
				authtoken.PermAuditExport,
			},
		},
		{
			name:          "unknown role gets nothing",
			role:          "root",
			expectMissing: authtoken.AllPermissions,
		},
		{
			name:              "direct permissions override role expansion",
			role:              "scribe",
			directPermissions: []string{authtoken.PermEntryDelete},
			expectPerms:       []string{authtoken.PermEntryDelete},
			expectMissing:     []string{authtoken.PermEntryRead},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			resolved := authtoken.ResolvePermissions(tc.role, tc.directPermissions)

			for _, p := range tc.expectPerms {
				s.True(authtoken.HasPermission(resolved, p), p)
			}
			for _, p := range tc.expectMissing {
				s.False(authtoken.HasPermission(resolved, p), p)
			}
		})
	}
}

func TestPermissionsPublicTestSuite(t *testing.T) {
	suite.Run(t, new(PermissionsPublicTestSuite))
}
