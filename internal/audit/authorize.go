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

import "github.com/lux-io/ledger/internal/entry"

// restrictedActions maps the actions that are not open to every role onto
// the roles allowed to perform them.
var restrictedActions = map[Action][]entry.Role{
	ActionPublish: {entry.RoleLux, entry.RoleMiniLux},
	ActionDelete:  {entry.RoleLux},
}

// Authorize checks whether role may perform action. Publish is allowed for
// lux and mini-lux, delete only for lux, everything else for any of the
// three roles. Violations are reported, never silently downgraded.
func Authorize(
	action Action,
	role entry.Role,
) error {
	if !entry.ValidRole(role) {
		return &entry.AuthorizationError{Action: string(action), Role: role}
	}

	allowed, restricted := restrictedActions[action]
	if !restricted {
		return nil
	}

	for _, r := range allowed {
		if role == r {
			return nil
		}
	}

	return &entry.AuthorizationError{Action: string(action), Role: role}
}
