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

package strategy

import (
	"reflect"

	"dirpx.dev/sigfwd/apis"
	"dirpx.dev/sigfwd/meta"
)

// NewMetaTypeStrategy creates an apis.Strategy that asks the object model's
// type table, so builtin types render the way emitters declare them
// (float64 as "double", string as "QString").
func NewMetaTypeStrategy() apis.Strategy {
	return metaTypeStrategy{}
}

// metaTypeStrategy handles types registered with meta.RegisterType and types
// implementing meta.TypeNamer.
type metaTypeStrategy struct{}

// Ensure metaTypeStrategy implements apis.Strategy.
var _ apis.Strategy = metaTypeStrategy{}

// TryResolve resolves v's dynamic type through the type table.
func (s metaTypeStrategy) TryResolve(v any, cfg apis.Config) (string, bool) {
	if v == nil {
		return "", false
	}
	return s.TryResolveType(reflect.TypeOf(v), cfg)
}

// TryResolveType resolves t through the type table.
func (metaTypeStrategy) TryResolveType(t reflect.Type, _ apis.Config) (string, bool) {
	return meta.TypeName(t)
}
