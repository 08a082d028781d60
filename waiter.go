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

package nexus

import (
	"runtime"
	"time"

	"dirpx.dev/nexus/apis"
	"dirpx.dev/nexus/config"
)

// waiter implements the bounded spin/yield/sleep policy for callers that
// lost the construction claim. It backs off but never gives up: a waiter
// that stopped waiting would have to construct a competing instance, which
// the exactly-once contract forbids.
type waiter struct {
	cfg   apis.Config
	polls int
}

func newWaiter(cfg apis.Config) waiter {
	// Zero value means the access point was never configured (e.g. a
	// static zero-value ModuleNexus); apply the package defaults.
	if cfg == (apis.Config{}) {
		cfg = config.DefaultConfig()
	}
	return waiter{cfg: cfg}
}

// wait performs one backoff step between polls of the slot state.
func (w *waiter) wait() {
	w.polls++
	switch {
	case w.polls <= w.cfg.SpinLimit:
		// Busy poll; publication is usually a few instructions away.
	case w.polls <= w.cfg.SpinLimit+w.cfg.YieldLimit:
		runtime.Gosched()
	default:
		time.Sleep(w.cfg.SleepInterval)
	}
}
