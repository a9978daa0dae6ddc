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

package reflect

import (
	"path"
	"reflect"
)

// TypeName returns a stable "pkg.Type" name for t, suitable for log fields
// and error messages.
//
// Pointers are unwrapped and builtin names are returned as-is. Generic
// instantiations keep their type arguments ("box.Box[int]"), so distinct
// instantiations get distinct names. Unnamed types (anonymous structs,
// funcs) fall back to t.String().
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	for t.Kind() == reflect.Ptr && t.Name() == "" {
		t = t.Elem()
	}
	name := t.Name()
	if name == "" {
		return t.String()
	}
	if p := t.PkgPath(); p != "" {
		return path.Base(p) + "." + name
	}
	return name
}

// TypeNameOf is TypeName for the type parameter T.
func TypeNameOf[T any]() string {
	return TypeName(reflect.TypeFor[T]())
}
