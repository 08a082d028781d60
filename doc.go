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

// Package nexus provides race-safe, lazily-constructed singleton access
// points across three sharing scopes within one process.
//
// A nexus is an access point to the single instance of a type within the
// nexus's particular scope. Any number of nexus values can exist, and each
// one implements a different scope. Three scopes are offered:
//
//   - ModuleNexus: one instance per access-point value, shared by every
//     goroutine that reaches that value. CleanModuleNexus is the same
//     scope with deterministic teardown through Shutdown.
//   - ThreadNexus: one instance per access-point value per goroutine.
//   - ProcessNexus: one instance per string identifier, shared across
//     independently loaded code images in the same process.
//
// Control flow is the same shape everywhere: Get returns the existing
// instance immediately when it exists (the dominant fast path), and
// otherwise runs the scope's construction protocol exactly once, with
// every concurrent caller converging on the single resulting instance.
//
// # Design
//
// ModuleNexus resolves first-access races without blocking locks. Its slot
// is an atomic state word (empty, building, ready) next to an atomic
// instance pointer. A caller that finds the slot ready loads the pointer
// and returns; a caller that finds it empty tries to claim it with a
// single compare-and-swap. The winner runs the factory, stores the
// pointer, and only then stores the ready state, so any goroutine that
// observes ready also observes a fully constructed instance. Losers poll
// the state word under a bounded spin/yield/sleep policy (see the config
// package) until publication; they never construct. A monotonic epoch
// counter orders claims and resets across the nexus's lifetime.
//
// The state lives in its own word instead of tag bits stolen from the
// pointer, and the zero value of the whole struct is a valid empty slot,
// so package-level access points need no initialization code at all:
//
//	var tracker nexus.ModuleNexus[ConnTracker]
//
//	func Track(c net.Conn) error {
//		t, err := tracker.Get()
//		if err != nil {
//			return err
//		}
//		return t.Add(c)
//	}
//
// ThreadNexus needs no race resolution at all: each goroutine observes a
// private slot in a per-goroutine storage collaborator (see the
// threadlocal package), and the absence of contention is the entire design
// rationale.
//
// ProcessNexus resolves its identifier through a store registry (see the
// registry package) once at construction. Equal identifier content maps to
// the same store for every caller in the process. Access is double-checked:
// an atomic load first, then the store's mutex, a re-check, and
// construction under the lock. The one-per-identifier contention profile
// makes a blocking lock simpler and fast enough.
//
// # Errors
//
// A factory failure propagates unchanged out of Get and leaves the slot
// empty, so a later caller retries construction; Get cannot fail after its
// first success. The package's own failures are *Error values with static
// messages (ErrTypeMismatch, ErrNilInstance).
//
// # Lifetimes
//
// ModuleNexus instances are deliberately leaked at process teardown:
// teardown ordering across code images is not safe to rely on, and running
// an arbitrary type's cleanup at unload time is not a decision this
// package will make silently. CleanModuleNexus is the explicit opt-in: it
// registers with a teardown list and Shutdown destroys the registered
// instances in reverse registration order. Reset (module scope) and Forget
// (thread scope) destroy eagerly; both require the caller to have quiesced
// all concurrent access, and instances implementing Disposer get their
// Dispose hook run.
//
// # Concurrency model
//
// Get on every scope is safe for unbounded concurrent use and is
// exactly-once per (scope, access point, reset epoch). Publication is
// release-ordered ahead of the ready state and observed through atomic
// loads, never through a benign-race pointer read. Reset, Close and
// Shutdown are excluded from the race-safety guarantee and require
// external quiescence. Nothing here is asynchronous or cancellable; the
// only blocking is the one-time construction itself.
//
// # Debugging
//
// Construction and teardown emit zerolog debug events through a package
// logger that defaults to no-op; route them with SetLogger. The fast paths
// never log.
package nexus
