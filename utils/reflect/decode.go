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
	"errors"
	"path"
	"reflect"
	"strconv"
	"strings"

	"dirpx.dev/sigfwd/apis"
	"dirpx.dev/sigfwd/config"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the provided type (after walking
	// composites) bottoms out in an unnamed type (anonymous struct, func,
	// interface{}, chan).
	ErrReflectTypeNotNamed = errors.New("reflect: type has no readable name")
	// ErrReflectTooDeep indicates that composite nesting exceeds MaxUnwrap.
	ErrReflectTooDeep = errors.New("reflect: type nesting exceeds MaxUnwrap")
)

// Decode renders t into a readable name from its run-time identity.
//
// Rendering policy:
//   - named type with a package: "pkg.Name" (pkg is the last path element),
//     or just "Name" when QualifyPackages is false;
//   - builtin named type: "int", "string", ...;
//   - ptr -> Elem + "*", slice -> "[]" + Elem, array -> "[N]" + Elem,
//     map -> "map[" + Key + "]" + Elem;
//   - anything else unnamed: ErrReflectTypeNotNamed.
//
// Each composite level counts against MaxUnwrap. If MaxUnwrap <= 0,
// DefaultMaxUnwrap is used.
func Decode(t reflect.Type, cfg apis.Config) (string, error) {
	if t == nil {
		return "", ErrReflectNilType
	}
	maxUnwrap := cfg.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}
	var b strings.Builder
	if err := decode(&b, t, cfg.QualifyPackages, maxUnwrap); err != nil {
		return "", err
	}
	return b.String(), nil
}

func decode(b *strings.Builder, t reflect.Type, qualify bool, depth int) error {
	if t.Name() != "" {
		if p := t.PkgPath(); p != "" && qualify {
			b.WriteString(path.Base(p))
			b.WriteByte('.')
		}
		b.WriteString(t.Name())
		return nil
	}
	if depth == 0 {
		return ErrReflectTooDeep
	}

	switch t.Kind() {
	case reflect.Ptr:
		if err := decode(b, t.Elem(), qualify, depth-1); err != nil {
			return err
		}
		b.WriteByte('*')
	case reflect.Slice:
		b.WriteString("[]")
		return decode(b, t.Elem(), qualify, depth-1)
	case reflect.Array:
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(t.Len()))
		b.WriteByte(']')
		return decode(b, t.Elem(), qualify, depth-1)
	case reflect.Map:
		b.WriteString("map[")
		if err := decode(b, t.Key(), qualify, depth-1); err != nil {
			return err
		}
		b.WriteByte(']')
		return decode(b, t.Elem(), qualify, depth-1)
	default:
		return ErrReflectTypeNotNamed
	}
	return nil
}
