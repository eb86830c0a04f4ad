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
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lux-io/ledger/internal/authtoken"
	"github.com/lux-io/ledger/internal/entry"
)

// Context key constants for injecting user identity into handlers.
const (
	ContextKeySubject = "auth.subject"
	ContextKeyRole    = "auth.role"
)

// requirePermission validates the bearer token and checks that the
// token's effective permission set grants the required permission. The
// token role and subject are injected into the request context.
func (s *Server) requirePermission(
	required authtoken.Permission,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Error: "bearer token required",
				})
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := s.tokenManager.Validate(
				tokenString,
				s.appConfig.API.Server.Security.SigningKey,
			)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Error: "invalid token: " + err.Error(),
				})
			}

			granted := authtoken.ResolvePermissions(claims.Role, claims.Permissions)
			if !authtoken.HasPermission(granted, required) {
				return c.JSON(http.StatusForbidden, ErrorResponse{
					Error: "insufficient permissions, required: " + required,
				})
			}

			c.Set(ContextKeySubject, claims.Subject)
			c.Set(ContextKeyRole, claims.Role)

			return next(c)
		}
	}
}

// roleFromContext returns the author role carried by the validated token.
func roleFromContext(
	c echo.Context,
) entry.Role {
	role, _ := c.Get(ContextKeyRole).(string)
	return entry.Role(role)
}
