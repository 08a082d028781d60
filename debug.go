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
	"sync/atomic"

	"github.com/rs/zerolog"
)

// logger receives debug events for instance construction and teardown.
// It defaults to a no-op logger. The published fast paths never log.
var logger atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	logger.Store(&nop)
}

// SetLogger routes nexus debug events to l. Safe to call at any time from
// any goroutine.
func SetLogger(l zerolog.Logger) {
	logger.Store(&l)
}

func dlog() *zerolog.Logger {
	return logger.Load()
}
