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

// Package authtoken issues and validates the JWT bearer tokens carrying
// the author role, and expands roles into fine-grained permissions.
package authtoken

// Permission represents a fine-grained resource:verb permission.
type Permission = string

// Permission constants using resource:verb format.
const (
	PermEntryRead    Permission = "entry:read"
	PermEntryWrite   Permission = "entry:write"
	PermEntryPublish Permission = "entry:publish"
	PermEntryDelete  Permission = "entry:delete"
	PermAuditRead    Permission = "audit:read"
	PermAuditExport  Permission = "audit:export"
	PermHealthRead   Permission = "health:read"
)

// AllPermissions is the full set of known permissions.
var AllPermissions = []Permission{
	PermEntryRead,
	PermEntryWrite,
	PermEntryPublish,
	PermEntryDelete,
	PermAuditRead,
	PermAuditExport,
	PermHealthRead,
}

// RolePermissions maps the three fixed author roles to their granted
// permissions. The role set is closed; there are no custom roles.
var RolePermissions = map[string][]Permission{
	"lux": {
		PermEntryRead,
		PermEntryWrite,
		PermEntryPublish,
		PermEntryDelete,
		PermAuditRead,
		PermAuditExport,
		PermHealthRead,
	},
	"mini-lux": {
		PermEntryRead,
		PermEntryWrite,
		PermEntryPublish,
		PermAuditRead,
		PermAuditExport,
		PermHealthRead,
	},
	"scribe": {
		PermEntryRead,
		PermEntryWrite,
		PermAuditRead,
		PermHealthRead,
	},
}

// ResolvePermissions computes the effective permission set for a token.
// If directPermissions is non-empty, it is returned directly (IdP
// override). Otherwise the role expands through RolePermissions.
func ResolvePermissions(
	role string,
	directPermissions []string,
) map[string]bool {
	if len(directPermissions) > 0 {
		set := make(map[string]bool, len(directPermissions))
		for _, p := range directPermissions {
			set[p] = true
		}
		return set
	}

	set := make(map[string]bool)
	for _, p := range RolePermissions[role] {
		set[p] = true
	}
	return set
}

// HasPermission checks whether the resolved set contains the required permission.
func HasPermission(
	resolved map[string]bool,
	required string,
) bool {
	return resolved[required]
}
