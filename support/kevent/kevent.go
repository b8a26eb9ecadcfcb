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

// Package kevent bridges kelindar/event dispatchers and the object model.
//
// Relay and Notify turn a dispatcher into a receiver: every delivery is
// published on the dispatcher. Source goes the other way and emits a signal
// for every event published on a dispatcher. Event types must be known to the
// object model (meta.RegisterType) or to the Name Registry so that receiver
// signatures can name them.
package kevent

import (
	"errors"
	"fmt"
	"sync"

	"github.com/kelindar/event"
	"github.com/sirupsen/logrus"

	"dirpx.dev/sigfwd/meta"
	"dirpx.dev/sigfwd/traits"
)

// ErrNilDispatcher is returned when no dispatcher is given.
var ErrNilDispatcher = errors.New("sigfwd(kevent): nil dispatcher")

// Relay returns a receiver of one T parameter that publishes each delivered
// value on d. Publication is asynchronous: subscribers of d run on the
// dispatcher's goroutines, not on the emitting one.
func Relay[T event.Event](d *event.Dispatcher) traits.Callable {
	return traits.FuncE1(func(ev T) error {
		if d == nil {
			return ErrNilDispatcher
		}
		event.Publish(d, ev)
		return nil
	})
}

// Notify returns a receiver without parameters that publishes ev on d each
// time it is invoked. It suits signals that carry no arguments, such as
// clicked().
func Notify[T event.Event](d *event.Dispatcher, ev T) traits.Callable {
	return traits.FuncE0(func() error {
		if d == nil {
			return ErrNilDispatcher
		}
		event.Publish(d, ev)
		return nil
	})
}

// Option configures Source.
type Option func(*options)

type options struct {
	logger logrus.FieldLogger
}

// WithLogger sets the logger that reports events Source could not emit.
// A nil l keeps the standard logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Source emits signal on obj for every T published on d. signal must take a
// single parameter that accepts T. The returned cancel function stops the
// subscription; it is also cancelled once obj is destroyed.
func Source[T event.Event](d *event.Dispatcher, obj *meta.Object, signal string, opts ...Option) (cancel func(), err error) {
	o := options{logger: logrus.StandardLogger()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if d == nil {
		return nil, ErrNilDispatcher
	}
	if obj == nil || obj.IsDestroyed() {
		return nil, meta.ErrDestroyed
	}
	idx := obj.MetaObject().IndexOfSignal(signal)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s on %s", meta.ErrUnknownSignal, signal, obj.MetaObject().ClassName())
	}
	m, _ := obj.MetaObject().Method(idx)
	if len(m.Params()) != 1 {
		return nil, fmt.Errorf("%w: %s must take exactly one parameter", meta.ErrArgCount, m.Signature())
	}

	var (
		once  sync.Once
		unsub func()
		mu    sync.Mutex
	)
	stop := func() {
		once.Do(func() {
			mu.Lock()
			defer mu.Unlock()
			if unsub != nil {
				unsub()
			}
		})
	}

	mu.Lock()
	unsub = event.Subscribe(d, func(ev T) {
		switch err := obj.Emit(m.Signature(), ev); {
		case err == nil:
		case errors.Is(err, meta.ErrDestroyed):
			go stop()
		default:
			o.logger.WithFields(logrus.Fields{
				"signal": m.Signature(),
				"class":  obj.MetaObject().ClassName(),
			}).WithError(err).Warn("event not emitted")
		}
	})
	mu.Unlock()
	return stop, nil
}
