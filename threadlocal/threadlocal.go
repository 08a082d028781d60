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

// Package threadlocal implements a storage slot scoped to the calling
// goroutine.
//
// Values are keyed by goroutine id in a map guarded by an RWMutex. The map
// lock only synchronizes the slot bookkeeping; the values themselves are
// never shared across goroutines, which is the point of the package.
//
// Go does not expose goroutine exit, so an entry written by a goroutine
// that never calls Clear stays in the map. Long-lived programs that touch
// a slot from short-lived goroutines must Clear before returning.
package threadlocal

import (
	"runtime"
	"sync"

	"dirpx.dev/nexus/apis"
)

// New constructs an empty per-goroutine slot.
func New() apis.ThreadLocal {
	return &slot{}
}

type slot struct {
	mu sync.RWMutex
	m  map[uint64]any
}

// Get returns the calling goroutine's value, if one was stored.
func (s *slot) Get() (any, bool) {
	id := gid()
	s.mu.RLock()
	v, ok := s.m[id]
	s.mu.RUnlock()
	return v, ok
}

// Set stores a value for the calling goroutine.
func (s *slot) Set(v any) {
	id := gid()
	s.mu.Lock()
	if s.m == nil {
		s.m = make(map[uint64]any)
	}
	s.m[id] = v
	s.mu.Unlock()
}

// Clear removes the calling goroutine's value.
func (s *slot) Clear() {
	id := gid()
	s.mu.Lock()
	delete(s.m, id)
	s.mu.Unlock()
}

// gid returns the calling goroutine's id by reading the header line of its
// stack trace, which is formatted "goroutine N [state]:". The runtime does
// not expose the id directly; parsing the header is the stable, allocation-
// bounded way to get it and only runs on slot access, never on a published
// fast path.
func gid() uint64 {
	var buf [32]byte
	n := runtime.Stack(buf[:], false)
	var id uint64
	for _, c := range buf[len("goroutine "):n] {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + uint64(c-'0')
	}
	return id
}
