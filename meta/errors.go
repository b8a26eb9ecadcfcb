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

import "errors"

var (
	// ErrMalformedSignature is returned when a signature is not of the form name(params).
	ErrMalformedSignature = errors.New("meta: malformed signature")
	// ErrDuplicateMethod is returned when a class declares the same signature twice.
	ErrDuplicateMethod = errors.New("meta: duplicate method")
	// ErrUnknownSignal is returned when an object has no signal with the given signature.
	ErrUnknownSignal = errors.New("meta: unknown signal")
	// ErrArgCount is returned when a signal is emitted with the wrong number of arguments.
	ErrArgCount = errors.New("meta: argument count mismatch")
	// ErrArgType is returned when an emitted argument does not fit the declared parameter type.
	ErrArgType = errors.New("meta: argument type mismatch")
	// ErrDestroyed is returned when an operation targets a destroyed object.
	ErrDestroyed = errors.New("meta: object destroyed")
	// ErrNilType is returned when a nil reflect.Type is registered.
	ErrNilType = errors.New("meta: nil type")
	// ErrEmptyTypeName is returned when a type is registered under an empty name.
	ErrEmptyTypeName = errors.New("meta: empty type name")
	// ErrTypeConflict is returned when a type or name is already registered differently.
	ErrTypeConflict = errors.New("meta: conflicting type registration")
)
