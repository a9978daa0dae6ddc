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

package ctorcb

import (
	"dirpx.dev/ctorcb/apis"
	"dirpx.dev/ctorcb/config"
)

// Notifier runs the constructor callbacks registered for T.
//
// It is a zero-size value meant to be embedded as a private field of T; the
// callbacks themselves live in a process-wide registry keyed by (T, N):
//
//	type Foo struct {
//		notifier ctorcb.Default[Foo]
//		i        int
//	}
//
//	func NewFoo(i int) *Foo {
//		f := &Foo{i: i}
//		f.notifier.Notify(f)
//		return f
//	}
//
// Notify must be the last step of every constructor of T. Keep the field
// first: Go pads a trailing zero-size field, which would grow T.
type Notifier[T any, N apis.Capacity] struct{}

// Default is a Notifier with DefaultCapacity.
type Default[T any] = Notifier[T, DefaultCapacity]

// Notify invokes every callback registered for (T, N) with v, in
// registration order.
func (Notifier[T, N]) Notify(v *T) {
	notify[T, N](v)
}

// AddCallback is the method form of the package-level AddCallback.
func (Notifier[T, N]) AddCallback(fn func(*T)) error {
	return AddCallback[T, N](fn)
}

// MaxCallbacks returns N.
func (Notifier[T, N]) MaxCallbacks() int {
	return MaxCallbacks[T, N]()
}

// Count returns the number of callbacks registered for (T, N).
func (Notifier[T, N]) Count() int {
	return Count[T, N]()
}

// DefaultCapacity holds config.DefaultMaxCallbacks callbacks.
type DefaultCapacity struct{}

func (DefaultCapacity) MaxCallbacks() int { return config.DefaultMaxCallbacks }

// Fixed capacities for callers that need more (or fewer) than the default.
type (
	Capacity1  struct{}
	Capacity2  struct{}
	Capacity3  struct{}
	Capacity4  struct{}
	Capacity5  struct{}
	Capacity6  struct{}
	Capacity7  struct{}
	Capacity8  struct{}
	Capacity16 struct{}
)

func (Capacity1) MaxCallbacks() int { return 1 }
func (Capacity2) MaxCallbacks() int { return 2 }
func (Capacity3) MaxCallbacks() int { return 3 }
func (Capacity4) MaxCallbacks() int { return 4 }
func (Capacity5) MaxCallbacks() int { return 5 }
func (Capacity6) MaxCallbacks() int { return 6 }
func (Capacity7) MaxCallbacks() int { return 7 }
func (Capacity8) MaxCallbacks() int { return 8 }
func (Capacity16) MaxCallbacks() int { return 16 }
