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

// Package registry maps string identifiers to process-wide stores.
//
// A store pairs one instance cell with its own lock. The registry
// guarantees that content-equal identifiers resolve to the same store for
// every caller in the process, regardless of call order or which code
// image issues the call. Plugins loaded into a Go process share the host's
// package state, so the package-level Default registry is the cross-image
// meeting point.
package registry

import (
	"errors"
	"sync"
	"sync/atomic"

	"dirpx.dev/nexus/apis"
)

var (
	// ErrEmptyIdentifier is returned when an empty identifier is provided.
	ErrEmptyIdentifier = errors.New("nexus(registry): empty identifier provided")
	// ErrNilInstance is returned when a store's build callback returns
	// neither an instance nor an error.
	ErrNilInstance = errors.New("nexus(registry): build returned a nil instance")
)

// New constructs an empty StoreRegistry.
// Most callers want Default instead; a private registry only shares
// instances among the access points that were handed it explicitly.
func New() apis.StoreRegistry {
	return &registry{}
}

// defaultRegistry is zero-value usable, so Default is safe to call from
// package initializers in any order.
var defaultRegistry registry

// Default returns the process-wide registry. Every access point that does
// not supply its own registry resolves identifiers here, which is what
// makes equal identifiers meet across independently loaded code images.
func Default() apis.StoreRegistry {
	return &defaultRegistry
}

// registry is a StoreRegistry backed by sync.Map reads with a mutex-guarded
// write path.
type registry struct {
	// mu guards write-side consistency and counter.
	mu sync.Mutex
	// m maps identifier to *store.
	m sync.Map // map[string]*store
	// count tracks the number of known identifiers.
	count int
}

// Resolve returns the store for identifier, creating it on first use.
// It is race-free and idempotent: equal identifier content always yields
// the same *store.
func (r *registry) Resolve(identifier string) (apis.Store, error) {
	if identifier == "" {
		return nil, ErrEmptyIdentifier
	}

	// Fast read path: the common case after first resolution.
	if s, ok := r.m.Load(identifier); ok {
		return s.(*store), nil
	}

	// Write path: guard with a mutex to keep counter consistent and avoid
	// two goroutines publishing distinct stores for one identifier.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if s, ok := r.m.Load(identifier); ok {
		return s.(*store), nil
	}

	s := &store{identifier: identifier}
	r.m.Store(identifier, s)
	r.count++
	return s, nil
}

// Entries returns a snapshot of the known identifiers (order is unspecified).
func (r *registry) Entries() []string {
	entries := make([]string, 0, r.Count())
	r.m.Range(func(key, _ any) bool {
		entries = append(entries, key.(string))
		return true
	})
	return entries
}

// Count returns the number of known identifiers.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset forgets all identifier associations. Stores resolved before the
// call remain usable by whoever holds them; Reset is a test hook.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m = sync.Map{}
	r.count = 0
}

// store pairs one instance cell with its own lock. The cell is written at
// most once per process (stores are never reset); readers go through an
// atomic load and never block once the instance is published.
type store struct {
	identifier string
	// mu is the sole writer gate for the cell.
	mu sync.Mutex
	// obj holds the published instance. Written once, under mu.
	obj atomic.Value
}

// Load returns the published instance without locking.
func (s *store) Load() (any, bool) {
	v := s.obj.Load()
	return v, v != nil
}

// Get returns the published instance, constructing it with build if the
// cell is still empty.
//
// The fast path is a lock-free atomic load; the slow path takes the
// store's lock, re-checks, constructs, and publishes while holding the
// lock. Contention happens at most once per identifier per process, so a
// blocking lock is preferred over a spin protocol here. A build error
// propagates unchanged and leaves the cell empty for a later retry.
func (s *store) Get(build func() (any, error)) (any, error) {
	if v := s.obj.Load(); v != nil {
		return v, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if v := s.obj.Load(); v != nil {
		return v, nil
	}
	v, err := build()
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrNilInstance
	}
	s.obj.Store(v)
	return v, nil
}
