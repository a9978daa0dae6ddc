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


// Package ctorcb lets external code observe the construction of values of a
// given type without touching call sites and without per-instance cost.
//
// # Design
//
// Callbacks for a subject type T live in a process-wide registry keyed by
// the pair (T, N), where N is a capacity type (see apis.Capacity). Each
// registry is a fixed-size slot array plus an atomic count:
//
//   - Registration (AddCallback) appends under a mutex and then publishes
//     the new count. Once N callbacks are registered, further registrations
//     fail with ErrCapacityExceeded; nothing is dropped or grown.
//
//   - Notification (Notifier.Notify, Construct) loads the count and calls
//     slots[:count] in registration order. It takes no locks and does not
//     allocate, so it is safe to run concurrently with registration.
//
// Registries are created lazily on first registration and live until the
// process exits. There is no removal API.
//
// # Usage
//
// Embed a Notifier as the first field of T and call Notify as the last step
// of every constructor:
//
//	type Conn struct {
//		notifier ctorcb.Default[Conn]
//		addr     string
//	}
//
//	func NewConn(addr string) *Conn {
//		c := &Conn{addr: addr}
//		c.notifier.Notify(c)
//		return c
//	}
//
// Observers subscribe once, during setup:
//
//	err := ctorcb.AddCallback[Conn, ctorcb.DefaultCapacity](func(c *Conn) {
//		connsOpened.Inc()
//	})
//
// The Notifier is zero-size; keeping it first avoids the padding Go adds
// after a trailing zero-size field.
//
// # Capacity
//
// Go has no constant type parameters, so N is a zero-size type with a
// MaxCallbacks method. DefaultCapacity holds config.DefaultMaxCallbacks
// callbacks; Capacity1 through Capacity8 and Capacity16 are predeclared.
// Distinct capacity types always get distinct registries, even when they
// report the same number.
//
// # Re-entrancy
//
// A callback may register further callbacks for the same type. The running
// notification keeps the count it loaded; new callbacks apply from the next
// construction.
//
// # Logging
//
// Registries log registrations (debug) and rejections (warn) through
// zerolog. The level and format come from CTORCB_LOG_LEVEL and
// CTORCB_LOG_FORMAT (see package config) and default to disabled; SetLogger
// and SetConfig replace them for registries created afterwards.
package ctorcb
