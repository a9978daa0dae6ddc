/*
   Copyright 2025 The DIRPX Authors.

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

package apis

// Registry is a bounded, append-only list of callbacks for a subject type T.
// Implementations must keep Invoke lock-free and allocation-free; writers may
// serialize among themselves.
type Registry[T any] interface {
	// Add appends fn. It fails with a capacity error once Count() == Capacity().
	Add(fn func(*T)) error
	// Invoke calls every registered callback with v, in registration order.
	Invoke(v *T)
	// Count returns the number of registered callbacks.
	Count() int
	// Capacity returns the maximum number of callbacks.
	Capacity() int
	// Info returns a diagnostics snapshot.
	Info() Info
}

// Info describes a single registry in a diagnostics snapshot.
type Info struct {
	// Type is the subject type name (e.g. "http.Server").
	Type string
	// Capacity is the maximum number of callbacks.
	Capacity int
	// Count is the number of registered callbacks.
	Count int
}
