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
	"dirpx.dev/nexus/apis"
	"dirpx.dev/nexus/registry"
	"dirpx.dev/nexus/threadlocal"
)

// Option selects the collaborators a ThreadNexus or ProcessNexus is built
// on. The defaults (a fresh threadlocal slot, the process-wide registry)
// are right for production use; substitutes exist for tests and for
// embedding into environments with their own primitives.
type Option func(*options)

type options struct {
	threadLocal   apis.ThreadLocal
	storeRegistry apis.StoreRegistry
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.threadLocal == nil {
		o.threadLocal = threadlocal.New()
	}
	if o.storeRegistry == nil {
		o.storeRegistry = registry.Default()
	}
	return o
}

// WithThreadLocal substitutes the per-goroutine storage collaborator.
func WithThreadLocal(tl apis.ThreadLocal) Option {
	return func(o *options) {
		if tl != nil {
			o.threadLocal = tl
		}
	}
}

// WithStoreRegistry substitutes the identifier lookup collaborator. Access
// points resolved through a private registry only share instances with
// access points handed the same registry.
func WithStoreRegistry(r apis.StoreRegistry) Option {
	return func(o *options) {
		if r != nil {
			o.storeRegistry = r
		}
	}
}
