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

package meta

import (
	"reflect"
	"strings"
	"sync"
	"time"
)

// TypeNamer is implemented by types that declare their own meta type name.
// It is consulted on the zero value of non-pointer, non-interface types.
type TypeNamer interface {
	MetaTypeName() string
}

var typeNamerType = reflect.TypeFor[TypeNamer]()

// typeTable is the process-wide two-way mapping between native types and
// meta type names.
var typeTable = struct {
	mu     sync.RWMutex
	byType map[reflect.Type]string
	byName map[string]reflect.Type
}{
	byType: make(map[reflect.Type]string),
	byName: make(map[string]reflect.Type),
}

func init() {
	for t, name := range map[reflect.Type]string{
		reflect.TypeFor[bool]():      "bool",
		reflect.TypeFor[int]():       "int",
		reflect.TypeFor[uint]():      "uint",
		reflect.TypeFor[int64]():     "qlonglong",
		reflect.TypeFor[uint64]():    "qulonglong",
		reflect.TypeFor[float32]():   "float",
		reflect.TypeFor[float64]():   "double",
		reflect.TypeFor[string]():    "QString",
		reflect.TypeFor[[]byte]():    "QByteArray",
		reflect.TypeFor[[]string]():  "QStringList",
		reflect.TypeFor[time.Time](): "QDateTime",
	} {
		if err := RegisterType(t, name); err != nil {
			panic(err)
		}
	}
}

// RegisterType makes t known to the object model under name.
// Re-registering the same pair is a no-op; any other overlap is ErrTypeConflict.
func RegisterType(t reflect.Type, name string) error {
	if t == nil {
		return ErrNilType
	}
	name = NormalizedType(name)
	if name == "" {
		return ErrEmptyTypeName
	}

	typeTable.mu.Lock()
	defer typeTable.mu.Unlock()

	old, hasType := typeTable.byType[t]
	other, hasName := typeTable.byName[name]
	switch {
	case hasType && old == name:
		return nil
	case hasType, hasName && other != t:
		return ErrTypeConflict
	}
	typeTable.byType[t] = name
	typeTable.byName[name] = t
	return nil
}

// Register is the generic form of RegisterType.
func Register[T any](name string) error {
	return RegisterType(reflect.TypeFor[T](), name)
}

// TypeName reports the meta type name of t, if the object model knows it.
func TypeName(t reflect.Type) (string, bool) {
	if t == nil {
		return "", false
	}
	typeTable.mu.RLock()
	name, ok := typeTable.byType[t]
	typeTable.mu.RUnlock()
	if ok {
		return name, true
	}

	switch t.Kind() {
	case reflect.Ptr, reflect.Interface:
		return "", false
	}
	if !t.Implements(typeNamerType) {
		return "", false
	}
	name = strings.TrimSpace(reflect.Zero(t).Interface().(TypeNamer).MetaTypeName())
	if name == "" {
		return "", false
	}
	return NormalizedType(name), true
}

// TypeByName reports the native type registered under name.
func TypeByName(name string) (reflect.Type, bool) {
	typeTable.mu.RLock()
	defer typeTable.mu.RUnlock()
	t, ok := typeTable.byName[NormalizedType(name)]
	return t, ok
}
