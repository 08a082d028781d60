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

	"dirpx.dev/nexus/apis"
	"dirpx.dev/nexus/config"
)

// Slot states. The state word is the publication gate for the instance
// pointer: it moves empty -> building -> ready, and only a reset moves it
// back to empty. The pointer is kept in its own atomic cell rather than
// tag bits stolen from it, so every state is a plain value of the word.
const (
	slotEmpty uint32 = iota
	slotBuilding
	slotReady
)

// ModuleNexus is an access point to the single instance of T shared by all
// code that reaches this ModuleNexus value. Any number of ModuleNexus
// values can exist, and each one is its own scope.
//
// The zero value is ready to use and constructs its instance with new(T);
// that makes static, package-level access points safe without init-order
// concerns. Use NewModule to supply a factory or a waiter policy.
//
// Get is exactly-once per reset epoch no matter how many goroutines race
// on first access, and it never blocks once the instance exists. The
// instance is deliberately never destroyed at process teardown; see
// CleanModuleNexus for the variant that opts into deterministic teardown.
type ModuleNexus[T any] struct {
	// state gates publication of ptr.
	state atomic.Uint32
	// ptr holds the published instance. Never relocated once published.
	ptr atomic.Pointer[T]
	// epoch counts successful claims and resets. It orders repeated
	// construction races across resets and tags debug events.
	epoch atomic.Uint64

	factory func() (*T, error)
	cfg     apis.Config
}

// NewModule constructs a ModuleNexus that builds its instance with
// factory. A nil factory falls back to new(T).
func NewModule[T any](factory func() (*T, error), opts ...config.Option) *ModuleNexus[T] {
	return &ModuleNexus[T]{factory: factory, cfg: config.NewConfig(opts...)}
}

// Get returns the scope's instance, constructing it exactly once on first
// access. A factory error propagates unchanged and leaves the slot empty,
// so a later caller can retry; after the first success Get cannot fail.
func (n *ModuleNexus[T]) Get() (*T, error) {
	// Dominant lock-free fast path: the instance already exists. The
	// ready store below happens after the pointer store, so observing
	// slotReady guarantees a fully published pointer.
	if n.state.Load() == slotReady {
		return n.ptr.Load(), nil
	}
	return n.create()
}

// create resolves the construction race. Exactly one caller wins the claim
// and runs the factory; every other caller waits for publication and never
// constructs a competing instance.
func (n *ModuleNexus[T]) create() (*T, error) {
	w := newWaiter(n.cfg)
	for {
		switch n.state.Load() {
		case slotReady:
			return n.ptr.Load(), nil

		case slotEmpty:
			if !n.state.CompareAndSwap(slotEmpty, slotBuilding) {
				// Lost the claim; observe the winner's progress.
				continue
			}
			claim := n.epoch.Add(1)
			p, err := runFactory(n.factory)
			if err != nil {
				// Leave the slot retryable; a wedged building state
				// would starve every future caller.
				n.state.Store(slotEmpty)
				return nil, err
			}
			n.ptr.Store(p)
			n.state.Store(slotReady)
			dlog().Debug().Str("scope", "module").Uint64("epoch", claim).Msg("instance constructed")
			return p, nil

		case slotBuilding:
			w.wait()
		}
	}
}

// Exists reports whether the instance definitely exists already. It is a
// non-blocking hint: a concurrent Reset invalidates the answer, and
// avoiding that race is the caller's responsibility.
func (n *ModuleNexus[T]) Exists() bool {
	return n.state.Load() == slotReady
}

// Reset disposes the current instance (if any) and restores the empty
// state; the next Get constructs a fresh instance.
//
// Reset is excluded from the race-safety guarantee: the caller must ensure
// no Get is in flight and must not call Reset from multiple goroutines
// without external coordination.
func (n *ModuleNexus[T]) Reset() {
	if err := n.clear(); err != nil {
		dlog().Warn().Str("scope", "module").Err(err).Msg("dispose failed during reset")
	}
}

// clear tears down a published instance and returns the slot to empty.
// Same quiescence precondition as Reset.
func (n *ModuleNexus[T]) clear() error {
	if n.state.Load() != slotReady {
		return nil
	}
	p := n.ptr.Swap(nil)
	n.epoch.Add(1)
	n.state.Store(slotEmpty)
	dlog().Debug().Str("scope", "module").Msg("instance destroyed")
	return dispose(p)
}
