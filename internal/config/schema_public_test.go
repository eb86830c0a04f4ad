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

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/lux-io/ledger/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		API: config.API{
			Client: config.Client{
				Security: config.ClientSecurity{
					BearerToken: "test-bearer-token",
				},
			},
			Server: config.Server{
				Security: config.ServerSecurity{
					SigningKey: "test-signing-key",
				},
			},
		},
	}
}

type ConfigPublicTestSuite struct {
	suite.Suite
}

func (s *ConfigPublicTestSuite) TestValidate() {
	tests := []struct {
		name        string
		mutate      func(c *config.Config)
		expectError bool
		errContains string
	}{
		{
			name:        "valid config",
			mutate:      func(_ *config.Config) {},
			expectError: false,
		},
		{
			name: "missing signing key",
			mutate: func(c *config.Config) {
				c.API.Server.Security.SigningKey = ""
			},
			expectError: true,
			errContains: "SigningKey",
		},
		{
			name: "missing bearer token",
			mutate: func(c *config.Config) {
				c.API.Client.Security.BearerToken = ""
			},
			expectError: true,
			errContains: "BearerToken",
		},
		{
			name: "unknown store backend",
			mutate: func(c *config.Config) {
				c.Store.Backend = "postgres"
			},
			expectError: true,
			errContains: "Backend",
		},
		{
			name: "known store backend",
			mutate: func(c *config.Config) {
				c.Store.Backend = "sqlite"
			},
			expectError: false,
		},
		{
			name: "unknown export format",
			mutate: func(c *config.Config) {
				c.Audit.Export.Format = "xml"
			},
			expectError: true,
			errContains: "Format",
		},
		{
			name: "bad monitor threshold",
			mutate: func(c *config.Config) {
				c.Monitor.Thresholds = map[string]string{"search": "fast"}
			},
			expectError: true,
			errContains: "threshold",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := config.Validate(&cfg)

			if tt.expectError {
				s.Require().Error(err)
				if tt.errContains != "" {
					s.Contains(err.Error(), tt.errContains)
				}
			} else {
				s.NoError(err)
			}
		})
	}
}

func (s *ConfigPublicTestSuite) TestMonitorThresholds() {
	cfg := validConfig()
	cfg.Monitor.Thresholds = map[string]string{
		"search": "250ms",
		"save":   "1s",
	}

	thresholds := cfg.MonitorThresholds()
	s.Equal(250*time.Millisecond, thresholds["search"])
	s.Equal(time.Second, thresholds["save"])
}

func TestConfigPublicTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigPublicTestSuite))
}
