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

package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lux-io/ledger/internal/entry"
	"github.com/lux-io/ledger/internal/ledger"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	// Error is a human-readable description of the failure.
	Error string `json:"error"`
	// Fields lists the field-level validation failures, when any.
	Fields []entry.FieldError `json:"fields,omitempty"`
}

// domainError maps ledger domain errors onto HTTP responses. Validation
// failures surface the full field list so clients can fix every problem
// in one round trip.
func domainError(
	c echo.Context,
	err error,
) error {
	var validationErrs *entry.ValidationErrors
	if errors.As(err, &validationErrs) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:  "validation failed",
			Fields: validationErrs.Errors,
		})
	}

	var authErr *entry.AuthorizationError
	if errors.As(err, &authErr) {
		return c.JSON(http.StatusForbidden, ErrorResponse{
			Error: authErr.Error(),
		})
	}

	var notFoundErr *entry.NotFoundError
	if errors.As(err, &notFoundErr) {
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Error: notFoundErr.Error(),
		})
	}

	var archivedErr *entry.ArchivedError
	if errors.As(err, &archivedErr) {
		return c.JSON(http.StatusConflict, ErrorResponse{
			Error: archivedErr.Error(),
		})
	}

	var persistenceErr *ledger.PersistenceError
	if errors.As(err, &persistenceErr) {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: persistenceErr.Error(),
		})
	}

	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error: err.Error(),
	})
}
