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

package entry

import (
	"fmt"
	"strings"
)

// FieldError describes one invalid field.
type FieldError struct {
	// Field is the entry field at fault.
	Field string `json:"field"`
	// Message describes what is wrong with it.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a structured list of field-level errors. A failed
// validation never results in a partial write.
type ValidationErrors struct {
	Errors []FieldError `json:"errors"`
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Error())
	}

	return "validation failed: " + strings.Join(msgs, "; ")
}

// Has reports whether the list contains an error for the named field.
func (e *ValidationErrors) Has(
	field string,
) bool {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return true
		}
	}

	return false
}

// NotFoundError indicates an unknown entry id.
type NotFoundError struct {
	ID string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("entry not found: %s", e.ID)
}

// AuthorizationError indicates the role lacks permission for the action.
// It is surfaced to the caller, never silently downgraded.
type AuthorizationError struct {
	Action string
	Role   Role
}

// Error implements the error interface.
func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("role %q is not permitted to %s", e.Role, e.Action)
}

// ArchivedError indicates an attempted mutation of a superseded entry.
type ArchivedError struct {
	ID string
}

// Error implements the error interface.
func (e *ArchivedError) Error() string {
	return fmt.Sprintf("entry %s is archived and immutable", e.ID)
}
