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
	"sync"

	"dirpx.dev/sigfwd/apis"
	uref "dirpx.dev/sigfwd/utils/reflect"
)

// NewReflectStrategy creates an apis.Strategy that renders names from the
// run-time type via utils/reflect.Decode, with memoization.
func NewReflectStrategy() apis.Strategy {
	return reflectStrategy{}
}

// reflectStrategy is the universal fallback. It always handles a non-nil
// type: when Decode fails the raw reflect string is used, so a receiver with
// an unusual parameter still gets a signature (which then simply fails to
// match any event).
type reflectStrategy struct{}

// Ensure reflectStrategy implements apis.Strategy.
var _ apis.Strategy = (*reflectStrategy)(nil)

// cacheKey ensures memoization respects all config knobs that affect decoding.
type cacheKey struct {
	t         reflect.Type
	qualify   bool
	maxUnwrap int16
}

// typeNameCache caches decoded type names by (type, config knobs).
var typeNameCache sync.Map // key: cacheKey, val: string

// TryResolve decodes the name of v's dynamic type.
func (reflectStrategy) TryResolve(v any, cfg apis.Config) (string, bool) {
	if v == nil {
		return "", false
	}
	return byType(reflect.TypeOf(v), cfg), true
}

// TryResolveType decodes the name of t.
func (reflectStrategy) TryResolveType(t reflect.Type, cfg apis.Config) (string, bool) {
	if t == nil {
		return "", false
	}
	return byType(t, cfg), true
}

// byType decodes the name for t with memoization.
func byType(t reflect.Type, cfg apis.Config) string {
	key := cacheKey{
		t:         t,
		qualify:   cfg.QualifyPackages,
		maxUnwrap: int16(cfg.MaxUnwrap),
	}
	if v, ok := typeNameCache.Load(key); ok {
		return v.(string)
	}

	name, err := uref.Decode(t, cfg)
	if err != nil {
		name = t.String()
	}

	typeNameCache.Store(key, name)
	return name
}
