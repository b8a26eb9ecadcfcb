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

import "reflect"

// Arity-specialized receivers. Each FuncN wraps a func of N parameters whose
// types are fixed at compile time; each FuncEN additionally reports the
// receiver's error result from Forward.

type func0 struct{ fn func() }

// Func0 wraps a receiver without parameters.
func Func0(fn func()) Callable { return func0{fn} }

func (w func0) Traits() Traits { return Traits{} }

func (w func0) Forward(_ []any) error {
	w.fn()
	return nil
}

type func1[A any] struct{ fn func(A) }

// Func1 wraps a receiver of 1 parameter.
func Func1[A any](fn func(A)) Callable { return func1[A]{fn} }

func (w func1[A]) Traits() Traits {
	return Traits{params: []reflect.Type{reflect.TypeFor[A]()}}
}

func (w func1[A]) Forward(argv []any) error {
	if err := need(argv, 1); err != nil {
		return err
	}
	a, err := arg[A](argv, 0)
	if err != nil {
		return err
	}
	w.fn(a)
	return nil
}

type func2[A, B any] struct{ fn func(A, B) }

// Func2 wraps a receiver of 2 parameters.
func Func2[A, B any](fn func(A, B)) Callable { return func2[A, B]{fn} }

func (w func2[A, B]) Traits() Traits {
	return Traits{params: []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B]()}}
}

func (w func2[A, B]) Forward(argv []any) error {
	if err := need(argv, 2); err != nil {
		return err
	}
	a, err := arg[A](argv, 0)
	if err != nil {
		return err
	}
	b, err := arg[B](argv, 1)
	if err != nil {
		return err
	}
	w.fn(a, b)
	return nil
}

type func3[A, B, C any] struct{ fn func(A, B, C) }

// Func3 wraps a receiver of 3 parameters.
func Func3[A, B, C any](fn func(A, B, C)) Callable { return func3[A, B, C]{fn} }

func (w func3[A, B, C]) Traits() Traits {
	return Traits{params: []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C]()}}
}

func (w func3[A, B, C]) Forward(argv []any) error {
	if err := need(argv, 3); err != nil {
		return err
	}
	a, err := arg[A](argv, 0)
	if err != nil {
		return err
	}
	b, err := arg[B](argv, 1)
	if err != nil {
		return err
	}
	c, err := arg[C](argv, 2)
	if err != nil {
		return err
	}
	w.fn(a, b, c)
	return nil
}

type func4[A, B, C, D any] struct{ fn func(A, B, C, D) }

// Func4 wraps a receiver of 4 parameters.
func Func4[A, B, C, D any](fn func(A, B, C, D)) Callable { return func4[A, B, C, D]{fn} }

func (w func4[A, B, C, D]) Traits() Traits {
	return Traits{params: []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C](), reflect.TypeFor[D]()}}
}

func (w func4[A, B, C, D]) Forward(argv []any) error {
	if err := need(argv, 4); err != nil {
		return err
	}
	a, err := arg[A](argv, 0)
	if err != nil {
		return err
	}
	b, err := arg[B](argv, 1)
	if err != nil {
		return err
	}
	c, err := arg[C](argv, 2)
	if err != nil {
		return err
	}
	d, err := arg[D](argv, 3)
	if err != nil {
		return err
	}
	w.fn(a, b, c, d)
	return nil
}

type func5[A, B, C, D, E any] struct{ fn func(A, B, C, D, E) }

// Func5 wraps a receiver of 5 parameters.
func Func5[A, B, C, D, E any](fn func(A, B, C, D, E)) Callable { return func5[A, B, C, D, E]{fn} }

func (w func5[A, B, C, D, E]) Traits() Traits {
	return Traits{params: []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C](), reflect.TypeFor[D](), reflect.TypeFor[E]()}}
}

func (w func5[A, B, C, D, E]) Forward(argv []any) error {
	if err := need(argv, 5); err != nil {
		return err
	}
	a, err := arg[A](argv, 0)
	if err != nil {
		return err
	}
	b, err := arg[B](argv, 1)
	if err != nil {
		return err
	}
	c, err := arg[C](argv, 2)
	if err != nil {
		return err
	}
	d, err := arg[D](argv, 3)
	if err != nil {
		return err
	}
	e, err := arg[E](argv, 4)
	if err != nil {
		return err
	}
	w.fn(a, b, c, d, e)
	return nil
}

type func6[A, B, C, D, E, F any] struct{ fn func(A, B, C, D, E, F) }

// Func6 wraps a receiver of 6 parameters.
func Func6[A, B, C, D, E, F any](fn func(A, B, C, D, E, F)) Callable { return func6[A, B, C, D, E, F]{fn} }

func (w func6[A, B, C, D, E, F]) Traits() Traits {
	return Traits{params: []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C](), reflect.TypeFor[D](), reflect.TypeFor[E](), reflect.TypeFor[F]()}}
}

func (w func6[A, B, C, D, E, F]) Forward(argv []any) error {
	if err := need(argv, 6); err != nil {
		return err
	}
	a, err := arg[A](argv, 0)
	if err != nil {
		return err
	}
	b, err := arg[B](argv, 1)
	if err != nil {
		return err
	}
	c, err := arg[C](argv, 2)
	if err != nil {
		return err
	}
	d, err := arg[D](argv, 3)
	if err != nil {
		return err
	}
	e, err := arg[E](argv, 4)
	if err != nil {
		return err
	}
	f, err := arg[F](argv, 5)
	if err != nil {
		return err
	}
	w.fn(a, b, c, d, e, f)
	return nil
}

type funcE0 struct{ fn func() error }

// FuncE0 wraps a receiver without parameters that reports an error.
func FuncE0(fn func() error) Callable { return funcE0{fn} }

func (w funcE0) Traits() Traits { return Traits{} }

func (w funcE0) Forward(_ []any) error {
	return w.fn()
}

type funcE1[A any] struct{ fn func(A) error }

// FuncE1 wraps a receiver of 1 parameter that reports an error.
func FuncE1[A any](fn func(A) error) Callable { return funcE1[A]{fn} }

func (w funcE1[A]) Traits() Traits {
	return Traits{params: []reflect.Type{reflect.TypeFor[A]()}}
}

func (w funcE1[A]) Forward(argv []any) error {
	if err := need(argv, 1); err != nil {
		return err
	}
	a, err := arg[A](argv, 0)
	if err != nil {
		return err
	}
	return w.fn(a)
}

type funcE2[A, B any] struct{ fn func(A, B) error }

// FuncE2 wraps a receiver of 2 parameters that reports an error.
func FuncE2[A, B any](fn func(A, B) error) Callable { return funcE2[A, B]{fn} }

func (w funcE2[A, B]) Traits() Traits {
	return Traits{params: []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B]()}}
}

func (w funcE2[A, B]) Forward(argv []any) error {
	if err := need(argv, 2); err != nil {
		return err
	}
	a, err := arg[A](argv, 0)
	if err != nil {
		return err
	}
	b, err := arg[B](argv, 1)
	if err != nil {
		return err
	}
	return w.fn(a, b)
}

type funcE3[A, B, C any] struct{ fn func(A, B, C) error }

// FuncE3 wraps a receiver of 3 parameters that reports an error.
func FuncE3[A, B, C any](fn func(A, B, C) error) Callable { return funcE3[A, B, C]{fn} }

func (w funcE3[A, B, C]) Traits() Traits {
	return Traits{params: []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C]()}}
}

func (w funcE3[A, B, C]) Forward(argv []any) error {
	if err := need(argv, 3); err != nil {
		return err
	}
	a, err := arg[A](argv, 0)
	if err != nil {
		return err
	}
	b, err := arg[B](argv, 1)
	if err != nil {
		return err
	}
	c, err := arg[C](argv, 2)
	if err != nil {
		return err
	}
	return w.fn(a, b, c)
}

type funcE4[A, B, C, D any] struct{ fn func(A, B, C, D) error }

// FuncE4 wraps a receiver of 4 parameters that reports an error.
func FuncE4[A, B, C, D any](fn func(A, B, C, D) error) Callable { return funcE4[A, B, C, D]{fn} }

func (w funcE4[A, B, C, D]) Traits() Traits {
	return Traits{params: []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C](), reflect.TypeFor[D]()}}
}

func (w funcE4[A, B, C, D]) Forward(argv []any) error {
	if err := need(argv, 4); err != nil {
		return err
	}
	a, err := arg[A](argv, 0)
	if err != nil {
		return err
	}
	b, err := arg[B](argv, 1)
	if err != nil {
		return err
	}
	c, err := arg[C](argv, 2)
	if err != nil {
		return err
	}
	d, err := arg[D](argv, 3)
	if err != nil {
		return err
	}
	return w.fn(a, b, c, d)
}

type funcE5[A, B, C, D, E any] struct{ fn func(A, B, C, D, E) error }

// FuncE5 wraps a receiver of 5 parameters that reports an error.
func FuncE5[A, B, C, D, E any](fn func(A, B, C, D, E) error) Callable { return funcE5[A, B, C, D, E]{fn} }

func (w funcE5[A, B, C, D, E]) Traits() Traits {
	return Traits{params: []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C](), reflect.TypeFor[D](), reflect.TypeFor[E]()}}
}

func (w funcE5[A, B, C, D, E]) Forward(argv []any) error {
	if err := need(argv, 5); err != nil {
		return err
	}
	a, err := arg[A](argv, 0)
	if err != nil {
		return err
	}
	b, err := arg[B](argv, 1)
	if err != nil {
		return err
	}
	c, err := arg[C](argv, 2)
	if err != nil {
		return err
	}
	d, err := arg[D](argv, 3)
	if err != nil {
		return err
	}
	e, err := arg[E](argv, 4)
	if err != nil {
		return err
	}
	return w.fn(a, b, c, d, e)
}

type funcE6[A, B, C, D, E, F any] struct{ fn func(A, B, C, D, E, F) error }

// FuncE6 wraps a receiver of 6 parameters that reports an error.
func FuncE6[A, B, C, D, E, F any](fn func(A, B, C, D, E, F) error) Callable { return funcE6[A, B, C, D, E, F]{fn} }

func (w funcE6[A, B, C, D, E, F]) Traits() Traits {
	return Traits{params: []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C](), reflect.TypeFor[D](), reflect.TypeFor[E](), reflect.TypeFor[F]()}}
}

func (w funcE6[A, B, C, D, E, F]) Forward(argv []any) error {
	if err := need(argv, 6); err != nil {
		return err
	}
	a, err := arg[A](argv, 0)
	if err != nil {
		return err
	}
	b, err := arg[B](argv, 1)
	if err != nil {
		return err
	}
	c, err := arg[C](argv, 2)
	if err != nil {
		return err
	}
	d, err := arg[D](argv, 3)
	if err != nil {
		return err
	}
	e, err := arg[E](argv, 4)
	if err != nil {
		return err
	}
	f, err := arg[F](argv, 5)
	if err != nil {
		return err
	}
	return w.fn(a, b, c, d, e, f)
}
