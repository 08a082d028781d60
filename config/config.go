/*
   Copyright 2026 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"time"

	"dirpx.dev/nexus/apis"
)

const (
	// DefaultSpinLimit represents the default for SpinLimit.
	// A short busy-poll window covers the common case where the winner
	// publishes within a few instructions of the loser's arrival.
	DefaultSpinLimit = 128
	// DefaultYieldLimit represents the default for YieldLimit.
	// Yielding lets the constructing goroutine run when both ended up on
	// the same processor.
	DefaultYieldLimit = 1024
	// DefaultSleepInterval represents the default for SleepInterval.
	DefaultSleepInterval = 50 * time.Microsecond
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure the sleep tier stays reachable and non-spinning.
	if cfg.SleepInterval <= 0 {
		cfg.SleepInterval = DefaultSleepInterval
	}
	return cfg
}

// DefaultConfig is the default waiter policy used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		SpinLimit:     DefaultSpinLimit,
		YieldLimit:    DefaultYieldLimit,
		SleepInterval: DefaultSleepInterval,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithSpinLimit sets the SpinLimit option.
// A negative value resets to the default; zero disables busy polling.
func WithSpinLimit(n int) Option {
	return func(c *apis.Config) {
		if n < 0 {
			c.SpinLimit = DefaultSpinLimit
			return
		}
		c.SpinLimit = n
	}
}

// WithYieldLimit sets the YieldLimit option.
// A negative value resets to the default; zero skips straight to sleeping.
func WithYieldLimit(n int) Option {
	return func(c *apis.Config) {
		if n < 0 {
			c.YieldLimit = DefaultYieldLimit
			return
		}
		c.YieldLimit = n
	}
}

// WithSleepInterval sets the SleepInterval option.
// Non-positive values reset to the default.
func WithSleepInterval(d time.Duration) Option {
	return func(c *apis.Config) {
		if d <= 0 {
			c.SleepInterval = DefaultSleepInterval
			return
		}
		c.SleepInterval = d
	}
}
