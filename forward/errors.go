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

package forward

import (
	"errors"
	"fmt"
)

var (
	// ErrNilEmitter is returned when connecting to a nil emitter.
	ErrNilEmitter = errors.New("sigfwd(forward): nil emitter")

	// ErrNotSignal is returned when the event signature does not carry the signal marker.
	ErrNotSignal = errors.New("sigfwd(forward): signature is not marked as a signal")

	// ErrNilReceiver is returned when a forwarder is created without a receiver.
	ErrNilReceiver = errors.New("sigfwd(forward): nil receiver")

	// ErrReceiverPanic is matched by PanicError through errors.Is.
	ErrReceiverPanic = errors.New("sigfwd(forward): receiver panicked")
)

// PanicError wraps a value recovered from a receiver.
type PanicError struct {
	// ID identifies the forwarder whose receiver panicked.
	ID string

	// Signature is the receiver signature.
	Signature string

	// Value is the value passed to panic().
	Value any

	// Stack is the stack trace at the time of the panic.
	Stack string
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("receiver panic in %s (%s): %v", e.Signature, e.ID, e.Value)
}

// Is allows errors.Is to match PanicError with ErrReceiverPanic.
func (e *PanicError) Is(target error) bool {
	return target == ErrReceiverPanic
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// ReceiverError wraps an error returned by a receiver, or an argument
// mismatch detected while calling it.
type ReceiverError struct {
	// ID identifies the forwarder whose receiver failed.
	ID string

	// Signature is the receiver signature.
	Signature string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ReceiverError) Error() string {
	return "receiver error in " + e.Signature + " (" + e.ID + "): " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ReceiverError) Unwrap() error {
	return e.Err
}
