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
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/lux-io/ledger/internal/ledger"
)

// ComponentHealth reports the status of one server dependency.
type ComponentHealth struct {
	// Status is "ok" or "error".
	Status string `json:"status"`
	// Error describes the failure when Status is "error".
	Error string `json:"error,omitempty"`
}

// HostInfo describes the machine the server runs on.
type HostInfo struct {
	Hostname      string `json:"hostname"`
	OS            string `json:"os"`
	Platform      string `json:"platform"`
	KernelVersion string `json:"kernel_version"`
	// MemoryTotal and MemoryUsed are in bytes.
	MemoryTotal uint64 `json:"memory_total"`
	MemoryUsed  uint64 `json:"memory_used"`
}

// DetailedHealthResponse is the JSON body for the authenticated health
// endpoint.
type DetailedHealthResponse struct {
	// Status is "ok" or "degraded".
	Status string `json:"status"`
	// Components holds per-dependency health.
	Components map[string]ComponentHealth `json:"components"`
	// Uptime is how long the server has been running.
	Uptime string `json:"uptime"`
	// Host describes the underlying machine.
	Host HostInfo `json:"host"`
}

// getHealth handles GET /health, the unauthenticated liveness probe.
func (s *Server) getHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// getHealthDetailed handles GET /health/detailed. It probes the entry
// store and reports host facts alongside per-component status. A degraded
// store returns 503 so orchestrators can rotate the instance.
func (s *Server) getHealthDetailed(c echo.Context) error {
	storeComponent := ComponentHealth{Status: "ok"}
	_, err := s.service.List(c.Request().Context(), ledger.ListFilter{})
	if err != nil {
		storeComponent = ComponentHealth{
			Status: "error",
			Error:  err.Error(),
		}
	}

	overall := "ok"
	if storeComponent.Status != "ok" {
		overall = "degraded"
	}

	resp := DetailedHealthResponse{
		Status: overall,
		Components: map[string]ComponentHealth{
			"store": storeComponent,
		},
		Uptime: time.Since(s.startTime).Round(time.Second).String(),
		Host:   hostInfo(),
	}

	if overall != "ok" {
		return c.JSON(http.StatusServiceUnavailable, resp)
	}

	return c.JSON(http.StatusOK, resp)
}

// hostInfo collects host facts, tolerating partial failures.
func hostInfo() HostInfo {
	var hi HostInfo

	if info, err := host.Info(); err == nil {
		hi.Hostname = info.Hostname
		hi.OS = info.OS
		hi.Platform = info.Platform
		hi.KernelVersion = info.KernelVersion
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		hi.MemoryTotal = vm.Total
		hi.MemoryUsed = vm.Used
	}

	return hi
}
