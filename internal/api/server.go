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
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	slogecho "github.com/samber/slog-echo"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/lux-io/ledger/internal/authtoken"
	"github.com/lux-io/ledger/internal/config"
	"github.com/lux-io/ledger/internal/ledger"
)

// New initialize a new Server and configure an Echo server.
func New(
	appConfig config.Config,
	logger *slog.Logger,
	service *ledger.Service,
	opts ...Option,
) *Server {
	e := echo.New()
	e.HideBanner = true

	// Initialize CORS configuration
	corsConfig := middleware.CORSConfig{}

	allowOrigins := appConfig.API.Server.Security.CORS.AllowOrigins
	if len(allowOrigins) > 0 {
		corsConfig.AllowOrigins = allowOrigins
	}

	e.Use(otelecho.Middleware("ledger-api"))
	e.Use(slogecho.New(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORSWithConfig(corsConfig))

	s := &Server{
		Echo:         e,
		logger:       logger,
		appConfig:    appConfig,
		service:      service,
		tokenManager: authtoken.New(logger),
		startTime:    time.Now(),

		metricsHandler: promhttp.Handler(),
		metricsPath:    "/metrics",
	}

	for _, opt := range opts {
		opt(s)
	}

	s.registerRoutes()

	return s
}

// registerRoutes wires every API route with its required permission.
func (s *Server) registerRoutes() {
	e := s.Echo

	entries := e.Group("/ledger/entries")
	entries.POST("", s.createEntry, s.requirePermission(authtoken.PermEntryWrite))
	entries.GET("", s.listEntries, s.requirePermission(authtoken.PermEntryRead))
	entries.GET("/search", s.searchEntries, s.requirePermission(authtoken.PermEntryRead))
	entries.GET("/:id", s.getEntry, s.requirePermission(authtoken.PermEntryRead))
	entries.PUT("/:id", s.updateEntry, s.requirePermission(authtoken.PermEntryWrite))
	entries.GET("/:id/similar", s.similarEntries, s.requirePermission(authtoken.PermEntryRead))
	entries.POST("/:id/publish", s.publishEntry, s.requirePermission(authtoken.PermEntryPublish))
	entries.POST("/:id/supersede", s.supersedeEntry, s.requirePermission(authtoken.PermEntryPublish))
	entries.DELETE("/:id", s.deleteEntry, s.requirePermission(authtoken.PermEntryDelete))

	e.GET("/ledger/templates/:type", s.getTemplate, s.requirePermission(authtoken.PermEntryRead))

	e.GET("/audit", s.listAudit, s.requirePermission(authtoken.PermAuditRead))
	e.GET("/audit/export", s.exportAudit, s.requirePermission(authtoken.PermAuditExport))
	e.GET("/audit/:id", s.getAudit, s.requirePermission(authtoken.PermAuditRead))

	// The liveness probe stays unauthenticated for load balancers.
	e.GET("/health", s.getHealth)
	e.GET("/health/detailed", s.getHealthDetailed, s.requirePermission(authtoken.PermHealthRead))

	e.GET(s.metricsPath, echo.WrapHandler(s.metricsHandler))
}

// Start starts the Echo server with the configured port.
func (s *Server) Start() {
	go func() {
		s.logger.Info("starting server")
		listenAddr := fmt.Sprintf(":%d", s.appConfig.API.Server.Port)
		if err := s.Echo.Start(listenAddr); err != nil && err != http.ErrServerClosed {
			s.logger.Error(
				"failed to start server",
				slog.String("error", err.Error()),
			)
		}
	}()
}

// Stop gracefully shuts down the Echo server.
func (s *Server) Stop(
	ctx context.Context,
) {
	s.logger.Info("stopping server")

	if err := s.Echo.Shutdown(ctx); err != nil {
		s.logger.Error(
			"server shutdown failed",
			slog.String("error", err.Error()),
		)
	} else {
		s.logger.Info("server stopped gracefully")
	}
}
