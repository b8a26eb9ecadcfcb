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

package traits

import (
	"fmt"
	"reflect"
)

// Of returns v as a Callable. A Callable is returned unchanged; any other
// non-nil, non-variadic func is inspected by reflection. Its results are
// discarded, except a trailing error result, which Forward returns.
func Of(v any) (Callable, error) {
	if c, ok := v.(Callable); ok {
		return c, nil
	}
	return Bind(v)
}

// Bind partially applies fn: the first len(leading) parameters are fixed to
// leading, and the returned Callable's traits are the remaining parameters.
// A nil leading value binds the zero value of a nillable parameter type.
func Bind(fn any, leading ...any) (Callable, error) {
	rv := reflect.ValueOf(fn)
	if !rv.IsValid() || rv.Kind() != reflect.Func || rv.IsNil() {
		return nil, fmt.Errorf("%w: %T", ErrNotCallable, fn)
	}
	rt := rv.Type()
	if rt.IsVariadic() {
		return nil, fmt.Errorf("%w: %v", ErrVariadic, rt)
	}
	if len(leading) > rt.NumIn() {
		return nil, fmt.Errorf("%w: %d bound, %v takes %d", ErrBindArgs, len(leading), rt, rt.NumIn())
	}

	bound := make([]reflect.Value, len(leading))
	for i, a := range leading {
		want := rt.In(i)
		if a == nil {
			if !nillable(want) {
				return nil, fmt.Errorf("%w: nil for parameter %d of type %v", ErrBindArgs, i, want)
			}
			bound[i] = reflect.Zero(want)
			continue
		}
		v := reflect.ValueOf(a)
		if !v.Type().AssignableTo(want) {
			return nil, fmt.Errorf("%w: %v for parameter %d of type %v", ErrBindArgs, v.Type(), i, want)
		}
		bound[i] = v
	}

	params := make([]reflect.Type, 0, rt.NumIn()-len(leading))
	for i := len(leading); i < rt.NumIn(); i++ {
		params = append(params, rt.In(i))
	}
	errOut := rt.NumOut() > 0 && rt.Out(rt.NumOut()-1) == errorType
	return &dynamic{fn: rv, bound: bound, traits: Traits{params: params}, errOut: errOut}, nil
}

// dynamic calls a function value through reflection.
type dynamic struct {
	fn     reflect.Value
	bound  []reflect.Value
	traits Traits
	errOut bool
}

func (d *dynamic) Traits() Traits { return d.traits }

func (d *dynamic) Forward(argv []any) error {
	n := d.traits.Arity()
	if err := need(argv, n); err != nil {
		return err
	}
	in := make([]reflect.Value, len(d.bound), len(d.bound)+n)
	copy(in, d.bound)
	for i, want := range d.traits.params {
		v := reflect.ValueOf(argv[i])
		if v.Kind() != reflect.Ptr || v.IsNil() || !v.Type().Elem().AssignableTo(want) {
			return fmt.Errorf("%w: argument %d is %T, want *%v", ErrArgType, i, argv[i], want)
		}
		in = append(in, v.Elem())
	}
	out := d.fn.Call(in)
	if d.errOut {
		if e := out[len(out)-1]; !e.IsNil() {
			return e.Interface().(error)
		}
	}
	return nil
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}
