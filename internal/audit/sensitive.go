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

package audit

import (
	"regexp"

	"github.com/lux-io/ledger/internal/entry"
)

// sensitivePatterns is the fixed pattern list scanned over narrative text.
var sensitivePatterns = []struct {
	name string
	re   *regexp.Regexp
}{
	{"api key", regexp.MustCompile(`(?i)api[ _-]?key`)},
	{"password", regexp.MustCompile(`(?i)password`)},
	{"secret", regexp.MustCompile(`(?i)secret`)},
	{"token", regexp.MustCompile(`(?i)\btoken\b`)},
	{"private key", regexp.MustCompile(`(?i)private[ _-]?key|-----BEGIN [A-Z ]*PRIVATE KEY-----`)},
}

// ScanSensitive scans all narrative text against the fixed pattern list
// and returns the matched pattern names. Findings are advisory: they are
// surfaced to the caller but never block a write.
func ScanSensitive(
	e *entry.Entry,
) []string {
	text := e.NarrativeText()

	var matches []string
	for _, p := range sensitivePatterns {
		if p.re.MatchString(text) {
			matches = append(matches, p.name)
		}
	}

	return matches
}
