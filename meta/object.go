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
	"fmt"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"
)

// Call identifies the kind of request passed to Metacall.
type Call int

const (
	// InvokeMetaMethod asks the receiver to run the method.
	InvokeMetaMethod Call = iota
	// QueryMetaMethod asks whether the receiver handles the method, without running it.
	QueryMetaMethod
)

// ConnectionType selects how a signal reaches its receiver.
type ConnectionType int

const (
	// AutoConnection queues when the receiver has a poster and calls directly otherwise.
	AutoConnection ConnectionType = iota
	// DirectConnection invokes the receiver on the emitting goroutine.
	DirectConnection
	// QueuedConnection hands a copy of the arguments to the receiver's poster.
	// Without a poster it behaves like DirectConnection.
	QueuedConnection
)

// String returns a human-readable connection type.
func (t ConnectionType) String() string {
	switch t {
	case AutoConnection:
		return "auto"
	case DirectConnection:
		return "direct"
	case QueuedConnection:
		return "queued"
	default:
		return "unknown"
	}
}

// Interface is implemented by *Object and by every type that embeds it.
type Interface interface {
	// Base returns the underlying object.
	Base() *Object
	// MetaObject returns the class used to resolve method indexes on this receiver.
	MetaObject() *MetaObject
	// Metacall is the untyped dispatch entry point. It returns -1 when the call
	// was handled, or the index relative to the end of the handled class.
	Metacall(c Call, id int, argv []any) int
}

// Poster schedules fn to run later, typically on another goroutine.
type Poster func(fn func())

// Object is a node of the ownership tree and an endpoint of connections.
type Object struct {
	class     *MetaObject
	destroyed atomic.Bool

	mu       sync.Mutex
	name     string
	parent   *Object
	children []*Object
	outbound map[int][]*link
	inbound  []*link
	poster   Poster
}

// link is one signal -> method connection.
type link struct {
	sender   *Object
	signal   int
	receiver Interface
	method   int
	typ      ConnectionType
	dead     atomic.Bool
}

// NewObject creates an object of class (ObjectClass when nil) owned by parent.
func NewObject(class *MetaObject, parent *Object) *Object {
	if class == nil {
		class = ObjectClass
	}
	o := &Object{class: class}
	if parent != nil {
		o.SetParent(parent)
	}
	return o
}

// Base returns o.
func (o *Object) Base() *Object { return o }

// MetaObject returns the class of o.
func (o *Object) MetaObject() *MetaObject { return o.class }

// ObjectName returns the diagnostic name of o.
func (o *Object) ObjectName() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.name
}

// SetObjectName sets the diagnostic name of o.
func (o *Object) SetObjectName(name string) {
	o.mu.Lock()
	o.name = name
	o.mu.Unlock()
}

// Parent returns the owner of o, or nil.
func (o *Object) Parent() *Object {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.parent
}

// SetParent moves o under parent. A nil parent detaches o.
func (o *Object) SetParent(parent *Object) {
	if parent == o || o.destroyed.Load() {
		return
	}
	o.mu.Lock()
	old := o.parent
	o.parent = parent
	o.mu.Unlock()

	if old != nil {
		old.removeChild(o)
	}
	if parent == nil {
		return
	}
	parent.mu.Lock()
	parent.children = append(parent.children, o)
	parent.mu.Unlock()
	if parent.destroyed.Load() {
		o.Destroy()
	}
}

// Children returns a snapshot of the objects owned by o.
func (o *Object) Children() []*Object {
	o.mu.Lock()
	defer o.mu.Unlock()
	return slices.Clone(o.children)
}

// SetPoster installs the scheduler used for queued deliveries to o.
func (o *Object) SetPoster(p Poster) {
	o.mu.Lock()
	o.poster = p
	o.mu.Unlock()
}

// Poster returns the scheduler installed with SetPoster, or nil.
func (o *Object) Poster() Poster {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.poster
}

// IsDestroyed reports whether Destroy has run.
func (o *Object) IsDestroyed() bool { return o.destroyed.Load() }

// Receivers returns the number of live connections on the signal at index.
func (o *Object) Receivers(index int) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.outbound[index])
}

// Metacall runs the method at absolute index id when it belongs to o's class.
// Signals are activated, slots run their implementation.
func (o *Object) Metacall(c Call, id int, argv []any) int {
	if id < 0 {
		return id
	}
	n := o.class.MethodCount()
	if id >= n {
		return id - n
	}
	if c != InvokeMetaMethod {
		return -1
	}
	m, _ := o.class.Method(id)
	switch m.kind {
	case KindSignal:
		o.Activate(id, argv)
	case KindSlot:
		if m.impl != nil {
			m.impl(o, argv)
		}
	}
	return -1
}

// Emit boxes args and activates the signal sig on o.
//
// Arguments whose declared parameter type is registered with RegisterType
// must be assignable to it; other arguments are passed with their dynamic type.
func (o *Object) Emit(sig string, args ...any) error {
	if o.destroyed.Load() {
		return ErrDestroyed
	}
	idx := o.class.IndexOfSignal(sig)
	if idx < 0 {
		return fmt.Errorf("%w: %s on %s", ErrUnknownSignal, sig, o.class.className)
	}
	m, _ := o.class.Method(idx)
	if len(args) != len(m.params) {
		return fmt.Errorf("%w: %s takes %d, got %d", ErrArgCount, m.signature, len(m.params), len(args))
	}

	argv := make([]any, len(args))
	for i, a := range args {
		p, err := box(a, m.params[i])
		if err != nil {
			return fmt.Errorf("%s argument %d: %w", m.signature, i, err)
		}
		argv[i] = p
	}
	o.Activate(idx, argv)
	return nil
}

// box returns a pointer to a copy of a, typed after param when the object
// model knows that type name.
func box(a any, param string) (any, error) {
	want, known := TypeByName(param)
	if a == nil {
		if !known {
			return nil, fmt.Errorf("%w: nil for unregistered type %s", ErrArgType, param)
		}
		return reflect.New(want).Interface(), nil
	}
	v := reflect.ValueOf(a)
	if !known {
		want = v.Type()
	} else if !v.Type().AssignableTo(want) {
		return nil, fmt.Errorf("%w: %s is not assignable to %s", ErrArgType, v.Type(), param)
	}
	p := reflect.New(want)
	p.Elem().Set(v)
	return p.Interface(), nil
}

// Activate delivers argv to every receiver connected to the signal at index.
// argv must hold one pointer per signal parameter.
func (o *Object) Activate(index int, argv []any) {
	o.mu.Lock()
	links := slices.Clone(o.outbound[index])
	o.mu.Unlock()

	for _, l := range links {
		if l.dead.Load() || l.receiver.Base().IsDestroyed() {
			continue
		}
		if post := l.poster(); post != nil {
			args := copyArgs(argv)
			post(func() {
				if l.dead.Load() || l.receiver.Base().IsDestroyed() {
					return
				}
				l.receiver.Metacall(InvokeMetaMethod, l.method, args)
			})
			continue
		}
		l.receiver.Metacall(InvokeMetaMethod, l.method, argv)
	}
}

// poster returns the scheduler to use for l, or nil for a direct call.
func (l *link) poster() Poster {
	if l.typ == DirectConnection {
		return nil
	}
	r := l.receiver.Base()
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.poster
}

// copyArgs duplicates every pointed-to argument so queued receivers do not
// observe later changes made by the emitter.
func copyArgs(argv []any) []any {
	out := make([]any, len(argv))
	for i, a := range argv {
		v := reflect.ValueOf(a)
		if v.Kind() != reflect.Ptr || v.IsNil() {
			out[i] = a
			continue
		}
		c := reflect.New(v.Elem().Type())
		c.Elem().Set(v.Elem())
		out[i] = c.Interface()
	}
	return out
}

// Destroy emits destroyed(), destroys all children, severs every connection
// and detaches o from its parent. Only the first call has an effect.
func (o *Object) Destroy() {
	if o.destroyed.Swap(true) {
		return
	}
	o.Activate(destroyedIndex, nil)

	o.mu.Lock()
	children := o.children
	o.children = nil
	o.mu.Unlock()
	for _, c := range children {
		c.Destroy()
	}

	o.mu.Lock()
	outbound, inbound, parent := o.outbound, o.inbound, o.parent
	o.outbound, o.inbound, o.parent = nil, nil, nil
	o.mu.Unlock()

	for _, links := range outbound {
		for _, l := range links {
			l.dead.Store(true)
			l.receiver.Base().dropInbound(l)
		}
	}
	for _, l := range inbound {
		l.dead.Store(true)
		l.sender.dropOutbound(l)
	}
	if parent != nil {
		parent.removeChild(o)
	}
}

func (o *Object) removeChild(c *Object) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if i := slices.Index(o.children, c); i >= 0 {
		o.children = slices.Delete(o.children, i, i+1)
	}
}

func (o *Object) dropInbound(l *link) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if i := slices.Index(o.inbound, l); i >= 0 {
		o.inbound = slices.Delete(o.inbound, i, i+1)
	}
}

func (o *Object) dropOutbound(l *link) {
	o.mu.Lock()
	defer o.mu.Unlock()
	links := o.outbound[l.signal]
	if i := slices.Index(links, l); i >= 0 {
		links = slices.Delete(links, i, i+1)
	}
	if len(links) == 0 {
		delete(o.outbound, l.signal)
		return
	}
	o.outbound[l.signal] = links
}

// Connect links the signal at signalIndex on sender to the method at
// methodIndex on receiver. It reports false when either end is nil or
// destroyed, or when an index does not name a suitable method.
func Connect(sender Interface, signalIndex int, receiver Interface, methodIndex int, typ ConnectionType) bool {
	if sender == nil || receiver == nil {
		return false
	}
	s, r := sender.Base(), receiver.Base()
	if s == nil || r == nil || s.IsDestroyed() || r.IsDestroyed() {
		return false
	}
	if m, ok := sender.MetaObject().Method(signalIndex); !ok || m.kind != KindSignal {
		return false
	}
	if methodIndex < 0 || methodIndex >= receiver.MetaObject().MethodCount() {
		return false
	}

	l := &link{sender: s, signal: signalIndex, receiver: receiver, method: methodIndex, typ: typ}

	s.mu.Lock()
	if s.outbound == nil {
		s.outbound = make(map[int][]*link)
	}
	s.outbound[signalIndex] = append(s.outbound[signalIndex], l)
	s.mu.Unlock()

	r.mu.Lock()
	r.inbound = append(r.inbound, l)
	r.mu.Unlock()

	// Either end may have been destroyed while the link was being added.
	if s.IsDestroyed() || r.IsDestroyed() {
		l.dead.Store(true)
		s.dropOutbound(l)
		r.dropInbound(l)
		return false
	}
	return true
}
