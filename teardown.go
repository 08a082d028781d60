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
	"errors"
	"io"
	"sync"
)

// teardowns holds the clean nexi registered for Shutdown, in registration
// order.
var (
	teardownMu sync.Mutex
	teardowns  []io.Closer
)

func registerTeardown(c io.Closer) {
	teardownMu.Lock()
	teardowns = append(teardowns, c)
	teardownMu.Unlock()
}

func deregisterTeardown(c io.Closer) {
	teardownMu.Lock()
	for i, t := range teardowns {
		if t == c {
			teardowns = append(teardowns[:i], teardowns[i+1:]...)
			break
		}
	}
	teardownMu.Unlock()
}

// Shutdown destroys every instance held by a registered CleanModuleNexus,
// most recently registered first, and clears the registration list. Wire
// it into the process exit path (after all users have quiesced); plain
// ModuleNexus instances are deliberately left alone. Dispose errors are
// collected and joined, and do not stop the remaining teardowns.
func Shutdown() error {
	teardownMu.Lock()
	list := teardowns
	teardowns = nil
	teardownMu.Unlock()

	var errs []error
	for i := len(list) - 1; i >= 0; i-- {
		if err := list[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
