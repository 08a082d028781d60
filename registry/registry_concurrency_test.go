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

package registry_test

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"dirpx.dev/nexus/apis"
	"dirpx.dev/nexus/registry"
)

// TestConcurrentResolve verifies that Resolve is race-free and that every
// caller observes a single store per identifier under concurrent use.
func TestConcurrentResolve(t *testing.T) {
	r := registry.New()

	ids := []string{"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9"}

	var (
		mu   sync.Mutex
		seen = map[string]apis.Store{}
	)
	workers := runtime.GOMAXPROCS(0) * 4

	wg := sync.WaitGroup{}
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				ident := ids[(i+id)%len(ids)]
				s, err := r.Resolve(ident)
				if err != nil {
					t.Errorf("resolve %q: %v", ident, err)
					return
				}
				mu.Lock()
				prev, ok := seen[ident]
				if ok && prev != s {
					mu.Unlock()
					t.Errorf("identifier %q resolved to two distinct stores", ident)
					return
				}
				seen[ident] = s
				mu.Unlock()
				_ = r.Count()
				_ = r.Entries()
			}
		}(w)
	}
	wg.Wait()

	if r.Count() != len(ids) {
		t.Fatalf("count mismatch: got %d want %d", r.Count(), len(ids))
	}
}

// TestConcurrentStoreGet hammers one store with racing builders and checks
// the exactly-once publication contract.
func TestConcurrentStoreGet(t *testing.T) {
	r := registry.New()
	s, err := r.Resolve("db-cache")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	var builds atomic.Int32
	build := func() (any, error) {
		builds.Add(1)
		return &struct{ x int }{}, nil
	}

	workers := runtime.GOMAXPROCS(0) * 4
	results := make([]any, workers)

	wg := sync.WaitGroup{}
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			v, err := s.Get(build)
			if err != nil {
				t.Errorf("get: %v", err)
				return
			}
			results[id] = v
		}(w)
	}
	wg.Wait()

	if n := builds.Load(); n != 1 {
		t.Fatalf("build ran %d times, want 1", n)
	}
	for i := 1; i < workers; i++ {
		if results[i] != results[0] {
			t.Fatalf("worker %d observed a different instance", i)
		}
	}
}
