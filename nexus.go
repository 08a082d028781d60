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

// Error is the nexus family's signal error. It carries a static diagnostic
// message and nothing else; it is immutable after construction. Failures
// coming out of a caller-supplied factory are not wrapped in Error — they
// propagate unchanged.
type Error struct {
	// Message is the static diagnostic text.
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	// ErrTypeMismatch is returned by ProcessNexus.Get when the named store
	// already holds an instance of a different concrete type, i.e. two
	// code images used the same identifier for different wrapped types.
	ErrTypeMismatch = &Error{Message: "nexus: store holds an instance of a different type"}
	// ErrNilInstance is returned when a factory returns neither an
	// instance nor an error.
	ErrNilInstance = &Error{Message: "nexus: factory returned a nil instance"}
)

// Disposer releases resources held by an instance. Reset, Forget, Close
// and Shutdown call Dispose on instances that implement it; instances that
// don't are simply dropped.
type Disposer interface {
	Dispose() error
}

// runFactory builds one instance. A nil factory falls back to new(T), the
// equivalent of default-constructing the wrapped type.
func runFactory[T any](factory func() (*T, error)) (*T, error) {
	if factory == nil {
		return new(T), nil
	}
	p, err := factory()
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNilInstance
	}
	return p, nil
}

// dispose runs the instance's Dispose hook, if it has one.
func dispose(v any) error {
	if d, ok := v.(Disposer); ok {
		return d.Dispose()
	}
	return nil
}
