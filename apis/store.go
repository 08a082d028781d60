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

// Store pairs a single instance cell with its own lock. A published
// instance never changes and never moves; Load is a lock-free read of the
// cell.
type Store interface {
	// Load returns the published instance without locking.
	Load() (v any, ok bool)
	// Get returns the published instance, constructing it with build under
	// the store's lock if the cell is still empty. build runs at most once
	// per published instance; its error propagates unchanged and leaves
	// the cell empty.
	Get(build func() (any, error)) (any, error)
}

// StoreRegistry resolves string identifiers to stores. Equal identifier
// content must resolve to the same Store for every caller in the process,
// regardless of which code image issues the call or in what order.
type StoreRegistry interface {
	// Resolve returns the store for identifier, creating it on first use.
	Resolve(identifier string) (Store, error)
	// Entries returns a snapshot of the known identifiers (order is
	// unspecified).
	Entries() []string
	// Count returns the number of known identifiers.
	Count() int
	// Reset forgets all identifier associations. Stores resolved before
	// the call remain usable; Reset is a test hook, not part of the
	// race-safe surface.
	Reset()
}
