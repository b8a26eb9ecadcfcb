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

// Package traits describes connectable receivers: how many parameters they
// take, of which types, and how to call them from an untyped argument vector.
//
// A receiver is anything implementing Callable. Func0..Func6 and
// FuncE0..FuncE6 wrap plain functions whose parameter types are known at
// compile time; Of and Bind inspect arbitrary function values by reflection.
// Other event sources become receivers by implementing Callable themselves.
package traits

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	// ErrNotCallable is returned when a value is neither a Callable nor a non-nil func.
	ErrNotCallable = errors.New("sigfwd(traits): value is not callable")
	// ErrVariadic is returned for variadic functions, whose arity is not fixed.
	ErrVariadic = errors.New("sigfwd(traits): variadic functions are not supported")
	// ErrTooManyParams is returned when a receiver declares more parameters than allowed.
	ErrTooManyParams = errors.New("sigfwd(traits): too many parameters")
	// ErrBindArgs is returned when bound arguments do not fit the function.
	ErrBindArgs = errors.New("sigfwd(traits): bound arguments do not match")
	// ErrArgCount is returned by Forward when argv is shorter than the arity.
	ErrArgCount = errors.New("sigfwd(traits): not enough arguments")
	// ErrArgType is returned by Forward when an argument slot has the wrong type.
	ErrArgType = errors.New("sigfwd(traits): argument type mismatch")
)

var errorType = reflect.TypeFor[error]()

// CheckArity returns ErrTooManyParams when c takes more than max parameters.
// A non-positive max disables the check.
func CheckArity(c Callable, max int) error {
	if n := c.Traits().Arity(); max > 0 && n > max {
		return fmt.Errorf("%w: %d, limit is %d", ErrTooManyParams, n, max)
	}
	return nil
}

// Traits is the arity and ordered parameter type list of a receiver.
type Traits struct {
	params []reflect.Type
}

// New returns Traits for the given parameter types, in order.
func New(params ...reflect.Type) Traits {
	return Traits{params: append([]reflect.Type(nil), params...)}
}

// Arity returns the number of parameters.
func (t Traits) Arity() int { return len(t.params) }

// Param returns the i-th parameter type.
func (t Traits) Param(i int) reflect.Type { return t.params[i] }

// Params returns a copy of the parameter types.
func (t Traits) Params() []reflect.Type { return append([]reflect.Type(nil), t.params...) }

// String renders the parameter list with Go type names, for diagnostics.
func (t Traits) String() string {
	names := make([]string, len(t.params))
	for i, p := range t.params {
		names[i] = p.String()
	}
	return "(" + strings.Join(names, ", ") + ")"
}

// Callable is a receiver with known traits.
type Callable interface {
	// Traits returns the receiver's parameter list.
	Traits() Traits
	// Forward calls the receiver. argv[i] points to the i-th argument; slots
	// beyond the arity are ignored. The returned error is whatever the
	// receiver reported, or an argument mismatch.
	Forward(argv []any) error
}

// need checks that argv supplies at least n slots.
func need(argv []any, n int) error {
	if len(argv) < n {
		return fmt.Errorf("%w: have %d, want %d", ErrArgCount, len(argv), n)
	}
	return nil
}

// arg reads slot i of argv as a T.
// The slot must point to a T or to a value assignable to T.
func arg[T any](argv []any, i int) (T, error) {
	if p, ok := argv[i].(*T); ok && p != nil {
		return *p, nil
	}
	var out T
	want := reflect.TypeFor[T]()
	v := reflect.ValueOf(argv[i])
	if v.Kind() != reflect.Ptr || v.IsNil() || !v.Type().Elem().AssignableTo(want) {
		return out, fmt.Errorf("%w: argument %d is %T, want *%v", ErrArgType, i, argv[i], want)
	}
	reflect.ValueOf(&out).Elem().Set(v.Elem())
	return out, nil
}
