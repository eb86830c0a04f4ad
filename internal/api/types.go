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
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lux-io/ledger/internal/authtoken"
	"github.com/lux-io/ledger/internal/config"
	"github.com/lux-io/ledger/internal/ledger"
)

// TokenValidator parses and validates JWT tokens.
type TokenValidator interface {
	Validate(
		tokenString string,
		signingKey string,
	) (*authtoken.CustomClaims, error)
}

// Server wraps the Echo instance serving the ledger HTTP API.
type Server struct {
	Echo *echo.Echo

	logger       *slog.Logger
	appConfig    config.Config
	service      *ledger.Service
	tokenManager TokenValidator
	startTime    time.Time

	metricsHandler http.Handler
	metricsPath    string
}

// Option is a functional option for configuring the Server.
type Option func(*Server)

// WithTokenManager overrides the default JWT token manager.
func WithTokenManager(
	tm TokenValidator,
) Option {
	return func(s *Server) {
		s.tokenManager = tm
	}
}

// WithMetricsHandler overrides the default Prometheus metrics handler,
// letting the OpenTelemetry meter exporter serve the metrics endpoint.
func WithMetricsHandler(
	handler http.Handler,
	path string,
) Option {
	return func(s *Server) {
		s.metricsHandler = handler
		s.metricsPath = path
	}
}

// WithStartTime overrides the server start time, used by tests.
func WithStartTime(
	t time.Time,
) Option {
	return func(s *Server) {
		s.startTime = t
	}
}
