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

// ProcessNexus is an access point to the single instance of T shared by
// every code image in the process that uses a content-equal identifier.
// Identifiers are compared by content, never by pointer, so independently
// loaded images meet on the same instance without sharing any linkage.
//
// The identifier is resolved to its store once, at construction, and the
// store is cached in the access point.
type ProcessNexus[T any] struct {
	identifier string
	store      apis.Store
	factory    func() (*T, error)
}

// NewProcess resolves identifier to its process-wide store and returns an
// access point for it. A nil factory falls back to new(T). An empty
// identifier is rejected by the registry.
func NewProcess[T any](identifier string, factory func() (*T, error), opts ...Option) (*ProcessNexus[T], error) {
	o := newOptions(opts)
	s, err := o.storeRegistry.Resolve(identifier)
	if err != nil {
		return nil, err
	}
	return &ProcessNexus[T]{identifier: identifier, store: s, factory: factory}, nil
}

// Identifier returns the access point's identifier string.
func (n *ProcessNexus[T]) Identifier() string {
	return n.identifier
}

// Get returns the identifier's instance, constructing it on the first
// access in the process. The slow path blocks on the store's lock rather
// than spinning; contention happens at most once per identifier per
// process, so simplicity wins over a lock-free protocol here.
//
// If another code image already published an instance of a different
// concrete type under this identifier, Get returns ErrTypeMismatch.
func (n *ProcessNexus[T]) Get() (*T, error) {
	v, err := n.store.Get(func() (any, error) {
		p, err := runFactory(n.factory)
		if err != nil {
			return nil, err
		}
		dlog().Debug().Str("scope", "process").Str("identifier", n.identifier).Msg("instance constructed")
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	p, ok := v.(*T)
	if !ok {
		return nil, ErrTypeMismatch
	}
	return p, nil
}

// Exists reports whether the identifier's instance has been published,
// regardless of which access point or code image constructed it.
func (n *ProcessNexus[T]) Exists() bool {
	_, ok := n.store.Load()
	return ok
}
