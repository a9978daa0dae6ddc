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

// Capacity fixes the maximum number of callbacks a registry may hold.
//
// Go has no constant type parameters, so capacities are expressed as
// zero-size marker types:
//
//	type sevenSlots struct{}
//
//	func (sevenSlots) MaxCallbacks() int { return 7 }
//
// MaxCallbacks must be callable on the zero value and must always return
// the same value.
type Capacity interface {
	MaxCallbacks() int
}
