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
	"cmp"
	"os"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"dirpx.dev/ctorcb/apis"
	"dirpx.dev/ctorcb/config"
	"dirpx.dev/ctorcb/registry"
)

// init initializes the global state from the environment.
func init() {
	cfg, err := config.Load()
	if err != nil {
		// The configured logger may be disabled; the warning must still surface.
		warn := zerolog.New(os.Stderr).Level(zerolog.WarnLevel).With().
			Timestamp().
			Str("component", "ctorcb").
			Logger()
		warn.Warn().Err(err).Msg("invalid environment configuration, using defaults for invalid fields")
	}
	// Load resets invalid fields, so cfg is valid here.
	log, _ := config.NewLogger(cfg, os.Stderr)
	st.Store(&state{cfg: cfg, log: log})
}

var (
	// ErrCapacityExceeded is returned by AddCallback when the registry for
	// (T, N) already holds N callbacks.
	ErrCapacityExceeded = registry.ErrCapacityExceeded
	// ErrNilCallback is returned by AddCallback for a nil callback.
	ErrNilCallback = registry.ErrNilCallback
)

// AddCallback registers fn to run on every subsequent construction of T,
// after all previously registered callbacks. It fails with an error wrapping
// ErrCapacityExceeded once N callbacks are registered.
//
// Callbacks are never removed. Register them during process setup.
func AddCallback[T any, N apis.Capacity](fn func(*T)) error {
	return lookup[T, N]().Add(fn)
}

// MaxCallbacks returns the capacity N of the (T, N) registry. A capacity
// type reporting a non-positive value gets config.DefaultMaxCallbacks.
func MaxCallbacks[T any, N apis.Capacity]() int {
	var n N
	if c := n.MaxCallbacks(); c > 0 {
		return c
	}
	return config.DefaultMaxCallbacks
}

// Count returns the number of callbacks registered for (T, N).
func Count[T any, N apis.Capacity]() int {
	r, ok := table.Load(keyOf[T, N]())
	if !ok {
		return 0
	}
	return r.(*registry.Registry[T]).Count()
}

// Construct runs the (T, N) callbacks on v and returns v. It is meant to be
// the last statement of a constructor:
//
//	func NewFoo(i int) *Foo {
//		return ctorcb.Construct[Foo, ctorcb.DefaultCapacity](&Foo{i: i})
//	}
func Construct[T any, N apis.Capacity](v *T) *T {
	notify[T, N](v)
	return v
}

// Registries returns a snapshot of every registry created so far, sorted by
// type name and then capacity.
func Registries() []apis.Info {
	var out []apis.Info
	table.Range(func(_, value any) bool {
		out = append(out, value.(infoer).Info())
		return true
	})
	slices.SortFunc(out, func(a, b apis.Info) int {
		return cmp.Or(cmp.Compare(a.Type, b.Type), cmp.Compare(a.Capacity, b.Capacity))
	})
	return out
}

// Config returns the global configuration.
func Config() config.Config {
	return st.Load().cfg
}

// SetConfig replaces the global configuration and rebuilds the logger from it.
// Registries created before the call keep the logger they were built with.
func SetConfig(cfg config.Config) error {
	log, err := config.NewLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	st.Store(&state{cfg: cfg, log: log})
	return nil
}

// Logger returns the global logger.
func Logger() zerolog.Logger {
	return st.Load().log
}

// SetLogger replaces the global logger.
// Registries created before the call keep the logger they were built with.
func SetLogger(log zerolog.Logger) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(&state{cfg: old.cfg, log: log})
}

// notify invokes the (T, N) callbacks on v. It does not create a registry:
// types nobody subscribed to only pay a map miss.
func notify[T any, N apis.Capacity](v *T) {
	r, ok := table.Load(keyOf[T, N]())
	if !ok {
		return
	}
	r.(*registry.Registry[T]).Invoke(v)
}

// lookup returns the (T, N) registry, creating it on first use.
func lookup[T any, N apis.Capacity]() *registry.Registry[T] {
	k := keyOf[T, N]()
	if r, ok := table.Load(k); ok {
		return r.(*registry.Registry[T])
	}
	r, _ := table.LoadOrStore(k, registry.New[T](
		MaxCallbacks[T, N](),
		registry.WithLogger(st.Load().log),
	))
	return r.(*registry.Registry[T])
}

// slot is a distinct type per (T, N) instantiation. Its reflect.Type keys
// the table; a reflect.Type converts to any without allocating.
type slot[T any, N apis.Capacity] struct{}

func keyOf[T any, N apis.Capacity]() reflect.Type {
	return reflect.TypeFor[slot[T, N]]()
}

// infoer is the non-generic view of a registry used for diagnostics.
type infoer interface {
	Info() apis.Info
}

// table maps slot types to *registry.Registry[T]. Entries are never removed.
var table sync.Map

// buildMu serializes writers of st.
var buildMu sync.Mutex

// st is the global state.
var st atomic.Pointer[state]

// state is an immutable snapshot published atomically via st.Store.
type state struct {
	// cfg is the global configuration.
	cfg config.Config
	// log is handed to registries at creation.
	log zerolog.Logger
}
