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

package apis

import "time"

// Config carries the waiter policy applied while a module-scope
// construction race is being resolved. It is passed by value and should be
// treated as immutable by implementations.
//
// The zero value means "use the package defaults"; explicit configuration
// goes through the config package's options.
type Config struct {
	// SpinLimit is the number of busy polls a waiter performs before it
	// starts yielding the processor between polls.
	SpinLimit int

	// YieldLimit is the number of yielding polls performed after SpinLimit
	// is exhausted and before the waiter starts sleeping between polls.
	YieldLimit int

	// SleepInterval is the pause between polls once YieldLimit is
	// exhausted. Construction is expected to finish long before this tier
	// is reached.
	SleepInterval time.Duration
}
