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

import "dirpx.dev/nexus/apis"

// ThreadNexus is an access point to one instance of T per calling
// goroutine. Its scope is all code in any one goroutine that reaches this
// ThreadNexus value, so there is no cross-goroutine contention by
// construction: no goroutine can observe another goroutine's slot, and no
// atomic race resolution is needed.
//
// Unlike ModuleNexus, a ThreadNexus is constructed dynamically with
// NewThread; wrap one in a ModuleNexus if a static, zero-initialized
// access point is wanted.
type ThreadNexus[T any] struct {
	slot    apis.ThreadLocal
	factory func() (*T, error)
}

// NewThread constructs a ThreadNexus that builds each goroutine's instance
// with factory. A nil factory falls back to new(T).
func NewThread[T any](factory func() (*T, error), opts ...Option) *ThreadNexus[T] {
	o := newOptions(opts)
	return &ThreadNexus[T]{slot: o.threadLocal, factory: factory}
}

// Get returns the calling goroutine's instance, constructing it on the
// goroutine's first access. A factory error propagates unchanged and
// leaves the goroutine's slot empty for a retry.
func (n *ThreadNexus[T]) Get() (*T, error) {
	if v, ok := n.slot.Get(); ok {
		return v.(*T), nil
	}
	p, err := runFactory(n.factory)
	if err != nil {
		return nil, err
	}
	n.slot.Set(p)
	dlog().Debug().Str("scope", "thread").Msg("instance constructed")
	return p, nil
}

// Exists reports whether the calling goroutine already holds an instance.
func (n *ThreadNexus[T]) Exists() bool {
	_, ok := n.slot.Get()
	return ok
}

// Forget disposes and clears the calling goroutine's instance. Goroutine
// exit is not observable, so a goroutine that used this nexus and is about
// to return should call Forget to avoid stranding its slot entry.
func (n *ThreadNexus[T]) Forget() error {
	v, ok := n.slot.Get()
	if !ok {
		return nil
	}
	n.slot.Clear()
	dlog().Debug().Str("scope", "thread").Msg("instance destroyed")
	return dispose(v)
}
