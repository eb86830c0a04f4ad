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

package config

import (
	"fmt"
	"time"

	"github.com/lux-io/ledger/internal/validation"
)

// Validate checks the configuration against the schema's validate tags.
func Validate(
	cfg *Config,
) error {
	if msg, ok := validation.Struct(cfg); !ok {
		return fmt.Errorf("invalid configuration: %s", msg)
	}

	for op, raw := range cfg.Monitor.Thresholds {
		if _, err := time.ParseDuration(raw); err != nil {
			return fmt.Errorf(
				"invalid configuration: monitor threshold %q: %w",
				op,
				err,
			)
		}
	}

	return nil
}

// MonitorThresholds parses the configured threshold strings into
// durations, skipping entries Validate would have rejected.
func (c Config) MonitorThresholds() map[string]time.Duration {
	out := make(map[string]time.Duration, len(c.Monitor.Thresholds))
	for op, raw := range c.Monitor.Thresholds {
		d, err := time.ParseDuration(raw)
		if err != nil {
			continue
		}
		out[op] = d
	}

	return out
}
