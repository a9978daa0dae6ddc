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

package registry

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"dirpx.dev/ctorcb/apis"
	"dirpx.dev/ctorcb/config"
	uref "dirpx.dev/ctorcb/utils/reflect"
)

var (
	// ErrCapacityExceeded is returned when a callback is added to a full registry.
	ErrCapacityExceeded = errors.New("ctorcb(registry): callback capacity exceeded")
	// ErrNilCallback is returned when a nil callback is provided.
	ErrNilCallback = errors.New("ctorcb(registry): nil callback provided")
)

// Option configures a Registry at construction.
type Option func(*options)

type options struct {
	name string
	log  zerolog.Logger
}

// WithName overrides the subject type name used in logs and errors.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithLogger sets the logger. The default is zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// New constructs a Registry for subject type T holding at most capacity
// callbacks. A non-positive capacity falls back to config.DefaultMaxCallbacks.
func New[T any](capacity int, opts ...Option) *Registry[T] {
	if capacity <= 0 {
		capacity = config.DefaultMaxCallbacks
	}
	o := options{
		name: uref.TypeNameOf[T](),
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry[T]{
		name:  o.name,
		log:   o.log,
		slots: make([]func(*T), capacity),
	}
}

// Registry is a fixed-capacity, append-only list of callbacks for T.
//
// slots is allocated once and never resized. A slot is written before count
// is published and never written again, so readers that load count may read
// slots[:count] without locking.
type Registry[T any] struct {
	// name is the subject type name used in logs and errors.
	name string
	// log receives registration events.
	log zerolog.Logger
	// mu serializes writers.
	mu sync.Mutex
	// slots holds the callbacks; len(slots) is the capacity.
	slots []func(*T)
	// count is the number of published slots.
	count atomic.Int32
}

// Ensure Registry implements apis.Registry.
var _ apis.Registry[struct{}] = (*Registry[struct{}])(nil)

// Add appends fn to the registry.
// It returns an error wrapping ErrCapacityExceeded if the registry is full;
// previously registered callbacks are unaffected.
func (r *Registry[T]) Add(fn func(*T)) error {
	if fn == nil {
		return ErrNilCallback
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	n := int(r.count.Load())
	if n >= len(r.slots) {
		r.log.Warn().
			Str("type", r.name).
			Int("capacity", len(r.slots)).
			Msg("constructor callback rejected: registry full")
		return fmt.Errorf("%w: %s already holds %d callbacks", ErrCapacityExceeded, r.name, n)
	}

	r.slots[n] = fn
	r.count.Store(int32(n + 1))

	r.log.Debug().
		Str("type", r.name).
		Int("count", n+1).
		Int("capacity", len(r.slots)).
		Msg("constructor callback registered")
	return nil
}

// Invoke calls every registered callback with v, in registration order.
// Callbacks added while Invoke runs take effect from the next call.
func (r *Registry[T]) Invoke(v *T) {
	n := int(r.count.Load())
	for _, fn := range r.slots[:n] {
		fn(v)
	}
}

// Count returns the number of registered callbacks.
func (r *Registry[T]) Count() int {
	return int(r.count.Load())
}

// Capacity returns the maximum number of callbacks.
func (r *Registry[T]) Capacity() int {
	return len(r.slots)
}

// Info returns a diagnostics snapshot.
func (r *Registry[T]) Info() apis.Info {
	return apis.Info{
		Type:     r.name,
		Capacity: len(r.slots),
		Count:    r.Count(),
	}
}
