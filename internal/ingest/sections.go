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

package ingest

import (
	"regexp"
	"strings"
)

// SectionPlaceholder fills a narrative field when the event body has no
// matching section. Ingestion degrades, it never fails on a sparse body.
const SectionPlaceholder = "Not provided by the source event."

// narrativeSections maps markdown headings in the event body onto entry
// narrative fields.
var narrativeSections = struct {
	whatChanged *regexp.Regexp
	rationale   *regexp.Regexp
	risks       *regexp.Regexp
}{
	whatChanged: regexp.MustCompile(`(?im)^##\s*what changed\s*$`),
	rationale:   regexp.MustCompile(`(?im)^##\s*rationale\s*$`),
	risks:       regexp.MustCompile(`(?im)^##\s*risks?\s*$`),
}

// headingLine matches any second-level markdown heading, bounding a
// section's content.
var headingLine = regexp.MustCompile(`(?m)^##\s+`)

// extractSection returns the body text between the matched heading and
// the next heading (or end of body), trimmed. The placeholder is returned
// when the heading is absent or its section empty.
func extractSection(
	body string,
	heading *regexp.Regexp,
) string {
	loc := heading.FindStringIndex(body)
	if loc == nil {
		return SectionPlaceholder
	}

	rest := body[loc[1]:]
	if next := headingLine.FindStringIndex(rest); next != nil {
		rest = rest[:next[0]]
	}

	content := strings.TrimSpace(rest)
	if content == "" {
		return SectionPlaceholder
	}

	return content
}

// ExtractNarrative pulls the three narrative sections out of a free-text
// event body.
func ExtractNarrative(
	body string,
) (whatChanged string, rationale string, risks string) {
	whatChanged = extractSection(body, narrativeSections.whatChanged)
	rationale = extractSection(body, narrativeSections.rationale)
	risks = extractSection(body, narrativeSections.risks)

	return whatChanged, rationale, risks
}
