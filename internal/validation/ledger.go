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

package validation

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/lux-io/ledger/internal/entry"
)

// newInstance builds the shared validator with the ledger's custom tags
// registered.
func newInstance() *validator.Validate {
	v := validator.New()

	// Cannot error: tags are non-empty and functions are non-nil.
	_ = v.RegisterValidation("entry_date", entryDate)
	_ = v.RegisterValidation("entry_role", entryRole)
	_ = v.RegisterValidation("entry_type", entryType)

	return v
}

// entryDate checks the fixed UTC timestamp layout.
func entryDate(
	fl validator.FieldLevel,
) bool {
	_, err := time.ParseInLocation(entry.DateLayout, fl.Field().String(), time.UTC)

	return err == nil
}

// entryRole checks membership in the closed role set.
func entryRole(
	fl validator.FieldLevel,
) bool {
	return entry.ValidRole(entry.Role(fl.Field().String()))
}

// entryType checks membership in the known entry types.
func entryType(
	fl validator.FieldLevel,
) bool {
	return entry.ValidType(entry.Type(fl.Field().String()))
}
