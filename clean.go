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

import "dirpx.dev/nexus/config"

// CleanModuleNexus is a ModuleNexus whose instance is additionally
// destroyed at process teardown through Shutdown. Opting in asserts that
// T's Dispose hook is safe to run at arbitrary teardown time, which is not
// true for every wrapped type; the plain ModuleNexus deliberately leaks
// instead of guessing.
type CleanModuleNexus[T any] struct {
	ModuleNexus[T]
}

// NewClean constructs a CleanModuleNexus and registers it for Shutdown.
// A nil factory falls back to new(T).
func NewClean[T any](factory func() (*T, error), opts ...config.Option) *CleanModuleNexus[T] {
	n := &CleanModuleNexus[T]{
		ModuleNexus[T]{factory: factory, cfg: config.NewConfig(opts...)},
	}
	registerTeardown(n)
	return n
}

// Close destroys the instance (if any) and removes the nexus from the
// Shutdown list. Calling Close more than once is harmless. The same
// quiescence precondition as Reset applies.
func (n *CleanModuleNexus[T]) Close() error {
	deregisterTeardown(n)
	return n.clear()
}
