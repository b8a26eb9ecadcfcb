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

// Package forward adapts a typed receiver to the object model's untyped
// invocation path.
//
// A Forwarder is an object whose class adds a single slot named after the
// receiver signature. The object model invokes that slot with an argument
// vector; the Forwarder passes the vector to its traits.Callable. Nothing the
// receiver does, panics included, propagates back into the emitter.
package forward

import (
	"fmt"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"dirpx.dev/sigfwd/connection"
	"dirpx.dev/sigfwd/meta"
	"dirpx.dev/sigfwd/signature"
	"dirpx.dev/sigfwd/traits"
)

// ClassName is the class name of every forwarder.
const ClassName = "Forwarder"

// Forwarder is the adapter object registered with the object model.
// It is destroyed exactly once, either through its connection handle or when
// its parent is destroyed.
type Forwarder struct {
	*meta.Object

	id       string
	class    *meta.MetaObject
	sig      string
	receiver traits.Callable
	onError  ErrorHandler
	logger   logrus.FieldLogger
}

// Ensure Forwarder implements meta.Interface and connection.Owner.
var (
	_ meta.Interface   = (*Forwarder)(nil)
	_ connection.Owner = (*Forwarder)(nil)
)

// New creates a forwarder for receiver, owned by parent, whose single slot
// has the receiver signature sig. Unless WithPoster is given the forwarder
// takes the parent's poster, so queued connections are scheduled where the
// parent's are.
func New(parent *meta.Object, receiver traits.Callable, sig string, opts ...Option) (*Forwarder, error) {
	if receiver == nil {
		return nil, ErrNilReceiver
	}
	class, err := meta.NewClass(ClassName, nil).Slot(sig, nil).Build()
	if err != nil {
		return nil, fmt.Errorf("sigfwd(forward): receiver signature: %w", err)
	}

	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if o.poster == nil && parent != nil {
		o.poster = parent.Poster()
	}

	m, _ := class.Method(class.MethodOffset())
	obj := meta.NewObject(nil, parent)
	if o.poster != nil {
		obj.SetPoster(o.poster)
	}
	return &Forwarder{
		Object:   obj,
		id:       uuid.New().String(),
		class:    class,
		sig:      m.Signature(),
		receiver: receiver,
		onError:  o.onError,
		logger:   o.logger,
	}, nil
}

// ID returns the forwarder's unique identifier.
func (f *Forwarder) ID() string { return f.id }

// Signature returns the normalized receiver signature.
func (f *Forwarder) Signature() string { return f.sig }

// Receiver returns the wrapped receiver.
func (f *Forwarder) Receiver() traits.Callable { return f.receiver }

// MetaObject returns the forwarder class, which adds the receiver slot.
func (f *Forwarder) MetaObject() *meta.MetaObject { return f.class }

// Metacall lets the base object handle its own methods first and runs the
// receiver for the forwarder's slot.
func (f *Forwarder) Metacall(c meta.Call, id int, argv []any) int {
	id = f.Object.Metacall(c, id, argv)
	if id < 0 {
		return id
	}
	if id == 0 {
		if c == meta.InvokeMetaMethod {
			f.forward(argv)
		}
		return -1
	}
	return id - 1
}

// forward calls the receiver and captures everything it reports.
func (f *Forwarder) forward(argv []any) {
	defer func() {
		if r := recover(); r != nil {
			f.report(&PanicError{ID: f.id, Signature: f.sig, Value: r, Stack: string(debug.Stack())})
		}
	}()
	if err := f.receiver.Forward(argv); err != nil {
		f.report(&ReceiverError{ID: f.id, Signature: f.sig, Err: err})
	}
}

// report hands err to the error handler. A panicking handler is ignored.
func (f *Forwarder) report(err error) {
	defer func() { _ = recover() }()
	if f.onError != nil {
		f.onError(f, err)
		return
	}
	f.logger.WithFields(logrus.Fields{
		"id":       f.id,
		"receiver": f.sig,
	}).WithError(err).Warn("receiver failed")
}

// Connect attaches f to the signal on emitter. signal must carry the signal
// marker (see meta.SignalSig). When check is set, the receiver signature must
// be compatible with the signal. The returned handle owns f; on failure f has
// already been destroyed.
func (f *Forwarder) Connect(emitter meta.Interface, signal string, typ meta.ConnectionType, check bool) (*connection.Connection, error) {
	if emitter == nil || emitter.Base() == nil {
		f.Destroy()
		return nil, ErrNilEmitter
	}
	code, bare, ok := meta.StripCode(signal)
	if !ok || code != meta.SignalCode {
		f.Destroy()
		return nil, fmt.Errorf("%w: %q", ErrNotSignal, signal)
	}

	norm := meta.NormalizedSignature(bare)
	if check && !signature.Check(norm, f.sig) {
		return connection.New(f, connection.SigsIncompatible), nil
	}
	idx := emitter.MetaObject().IndexOfSignal(norm)
	if idx < 0 {
		return connection.New(f, connection.SignalNotFound), nil
	}
	if !meta.Connect(emitter, idx, f, f.class.MethodOffset(), typ) {
		// The emitter was destroyed while connecting.
		return connection.New(f, connection.SignalNotFound), nil
	}
	return connection.New(f, connection.Connected), nil
}
