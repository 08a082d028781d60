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

// ThreadLocal is a storage slot scoped to the calling goroutine. Every
// goroutine starts with an empty slot. Implementations must be safe for
// concurrent use from any number of goroutines, but no goroutine can ever
// observe another goroutine's value.
type ThreadLocal interface {
	// Get returns the calling goroutine's value, if one was stored.
	Get() (v any, ok bool)
	// Set stores a value for the calling goroutine, replacing any
	// previous one.
	Set(v any)
	// Clear removes the calling goroutine's value.
	Clear()
}
