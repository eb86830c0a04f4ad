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

package validation_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/lux-io/ledger/internal/validation"
)

type ValidationPublicTestSuite struct {
	suite.Suite
}

type fixture struct {
	Date   string `validate:"omitempty,entry_date"`
	Author string `validate:"omitempty,entry_role"`
	Type   string `validate:"omitempty,entry_type"`
}

func (s *ValidationPublicTestSuite) TestStruct() {
	tests := []struct {
		name   string
		in     fixture
		ok     bool
		errSub string
	}{
		{
			name: "valid fixture",
			in:   fixture{Date: "2025-01-01 00:00:00", Author: "mini-lux", Type: "incident"},
			ok:   true,
		},
		{
			name:   "bad date layout",
			in:     fixture{Date: "2025-01-01T00:00:00Z"},
			errSub: "entry_date",
		},
		{
			name:   "unknown role",
			in:     fixture{Author: "admin"},
			errSub: "entry_role",
		},
		{
			name:   "unknown type",
			in:     fixture{Type: "postmortem"},
			errSub: "entry_type",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			msg, ok := validation.Struct(tt.in)
			s.Equal(tt.ok, ok)
			if !tt.ok {
				s.Contains(msg, tt.errSub)
			}
		})
	}
}

func TestValidationPublicTestSuite(t *testing.T) {
	suite.Run(t, new(ValidationPublicTestSuite))
}
