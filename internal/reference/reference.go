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

// Package reference validates typed cross-links to external artifacts.
package reference

import (
	"fmt"
	"net/url"
	"regexp"

	"github.com/lux-io/ledger/internal/entry"
)

// format checks per reference type. Unknown types fail closed.
var formats = map[entry.RefType]*regexp.Regexp{
	entry.RefCommitHash:        regexp.MustCompile(`^[0-9a-f]{7,40}$`),
	entry.RefDVJob:             regexp.MustCompile(`^dv-[0-9]+$`),
	entry.RefHUDSnapshot:       regexp.MustCompile(`^hud-[0-9a-zA-Z_-]+$`),
	entry.RefControlHubComment: regexp.MustCompile(`^[0-9]+$`),
}

// Validate checks a single reference: non-empty id, type, and description,
// plus the type-specific id format. External references must carry an
// absolute http(s) URL as their id.
func Validate(
	ref entry.Reference,
) error {
	if ref.ID == "" {
		return fmt.Errorf("reference id must not be empty")
	}
	if ref.Type == "" {
		return fmt.Errorf("reference type must not be empty")
	}
	if ref.Description == "" {
		return fmt.Errorf("reference description must not be empty")
	}

	if ref.Type == entry.RefExternal {
		return validateURL(ref.ID)
	}

	re, ok := formats[ref.Type]
	if !ok {
		return fmt.Errorf("unknown reference type: %q", ref.Type)
	}

	if !re.MatchString(ref.ID) {
		return fmt.Errorf("reference id %q is not a valid %s", ref.ID, ref.Type)
	}

	if ref.URL != "" {
		return validateURL(ref.URL)
	}

	return nil
}

// ValidateAll checks every reference and reports the first failure per
// reference position.
func ValidateAll(
	refs []entry.Reference,
) []entry.FieldError {
	var errs []entry.FieldError
	for i, ref := range refs {
		if err := Validate(ref); err != nil {
			errs = append(errs, entry.FieldError{
				Field:   fmt.Sprintf("references[%d]", i),
				Message: err.Error(),
			})
		}
	}

	return errs
}

func validateURL(
	raw string,
) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", raw, err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("URL %q must be absolute http(s)", raw)
	}

	return nil
}
