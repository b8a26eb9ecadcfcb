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
	"reflect"

	"github.com/sirupsen/logrus"

	"dirpx.dev/sigfwd/connection"
	"dirpx.dev/sigfwd/forward"
	"dirpx.dev/sigfwd/meta"
	"dirpx.dev/sigfwd/signature"
	"dirpx.dev/sigfwd/traits"
)

// Connection is the handle returned by Connect.
type Connection = connection.Connection

// Result is the outcome of a connection attempt.
type Result = connection.Result

// Connection results.
const (
	Connected        = connection.Connected
	SigsIncompatible = connection.SigsIncompatible
	SignalNotFound   = connection.SignalNotFound
	Disconnected     = connection.Disconnected
)

// TypeName resolves the signature name of t with the global resolver.
func TypeName(t reflect.Type) string {
	s := st.Load()
	return s.res.ResolveType(t, s.cfg)
}

// TypeNameOf resolves the signature name of v's dynamic type.
func TypeNameOf(v any) string {
	s := st.Load()
	return s.res.Resolve(v, s.cfg)
}

// RegisterTypeName names t in the global Name Registry. Registering the same
// pair again is a no-op; a different name for a registered type is an error.
func RegisterTypeName(t reflect.Type, name string) error {
	return st.Load().reg.Register(t, name)
}

// RegisterType is the generic form of RegisterTypeName.
func RegisterType[T any](name string) error {
	return RegisterTypeName(reflect.TypeFor[T](), name)
}

// Signature returns the receiver signature sigfwd would use for receiver.
func Signature(receiver any) (string, error) {
	s := st.Load()
	c, err := callable(s, receiver)
	if err != nil {
		return "", err
	}
	return signature.Build(c.Traits(), s.res, s.cfg), nil
}

// Connect connects receiver to the event signal of emitter. signal must carry
// the signal marker (meta.SignalSig). receiver is a traits.Callable or a func.
//
// Incompatible signatures and unknown signals are reported through the
// handle's status, not as errors. Errors are returned for malformed input:
// a nil emitter, an unmarked signal or a receiver that cannot be called.
func Connect(emitter meta.Interface, signal string, receiver any, opts ...ConnectOption) (*Connection, error) {
	s := st.Load()
	o := connectOptions{typ: meta.AutoConnection, check: s.cfg.CheckSignatures}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if emitter == nil || emitter.Base() == nil {
		return nil, forward.ErrNilEmitter
	}
	c, err := callable(s, receiver)
	if err != nil {
		return nil, err
	}
	sig := signature.Build(c.Traits(), s.res, s.cfg)

	f, err := forward.New(emitter.Base(), c, sig,
		forward.WithLogger(s.log),
		forward.WithErrorHandler(o.onError),
		forward.WithPoster(o.poster),
	)
	if err != nil {
		return nil, err
	}
	conn, err := f.Connect(emitter, signal, o.typ, o.check)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"signal":   signal[1:],
		"receiver": f.Signature(),
		"status":   conn.Status().String(),
		"id":       conn.ID(),
	}).Debug("connect")
	return conn, nil
}

// callable converts receiver and enforces the configured arity limit.
func callable(s *state, receiver any) (traits.Callable, error) {
	c, err := traits.Of(receiver)
	if err != nil {
		return nil, err
	}
	if err := traits.CheckArity(c, s.cfg.MaxArity); err != nil {
		return nil, err
	}
	return c, nil
}
