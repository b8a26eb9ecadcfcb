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

package sigfwd

import (
	"errors"
	"fmt"
	"reflect"

	"dirpx.dev/sigfwd/meta"
	"dirpx.dev/sigfwd/traits"
)

// ErrUnknownParamType is returned by Relay when a signal parameter has no
// native type in the object model's type table.
var ErrUnknownParamType = errors.New("sigfwd: signal parameter type is not registered")

// Relay returns a receiver that re-emits the signal on obj. Its parameter list
// is the signal's, so connecting it to another signal relays that event.
// signal may carry the signal marker.
func Relay(obj meta.Interface, signal string) (traits.Callable, error) {
	if obj == nil || obj.Base() == nil {
		return nil, meta.ErrDestroyed
	}
	idx := obj.MetaObject().IndexOfSignal(signal)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s on %s", meta.ErrUnknownSignal, signal, obj.MetaObject().ClassName())
	}
	m, _ := obj.MetaObject().Method(idx)

	params := m.Params()
	types := make([]reflect.Type, len(params))
	for i, p := range params {
		t, ok := meta.TypeByName(p)
		if !ok {
			return nil, fmt.Errorf("%w: %s in %s", ErrUnknownParamType, p, m.Signature())
		}
		types[i] = t
	}
	return &relay{obj: obj.Base(), index: idx, traits: traits.New(types...)}, nil
}

// relay re-emits on a signal of another object.
type relay struct {
	obj    *meta.Object
	index  int
	traits traits.Traits
}

func (r *relay) Traits() traits.Traits { return r.traits }

func (r *relay) Forward(argv []any) error {
	n := r.traits.Arity()
	if len(argv) < n {
		return fmt.Errorf("%w: have %d, want %d", traits.ErrArgCount, len(argv), n)
	}
	for i, want := range r.traits.Params() {
		v := reflect.ValueOf(argv[i])
		if v.Kind() != reflect.Ptr || v.IsNil() || v.Type().Elem() != want {
			return fmt.Errorf("%w: argument %d is %T, want *%v", traits.ErrArgType, i, argv[i], want)
		}
	}
	if r.obj.IsDestroyed() {
		return meta.ErrDestroyed
	}
	r.obj.Activate(r.index, argv[:n])
	return nil
}
