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
	"strings"
)

// MethodKind distinguishes signals from slots.
type MethodKind int

const (
	// KindSignal marks a method that is emitted.
	KindSignal MethodKind = iota
	// KindSlot marks a method that is invoked.
	KindSlot
)

// String returns a human-readable kind name.
func (k MethodKind) String() string {
	switch k {
	case KindSignal:
		return "signal"
	case KindSlot:
		return "slot"
	default:
		return "unknown"
	}
}

// SlotFunc implements a slot. argv holds one pointer per received argument.
type SlotFunc func(o *Object, argv []any)

// Method describes one signal or slot of a class.
type Method struct {
	name      string
	signature string
	params    []string
	kind      MethodKind
	impl      SlotFunc
}

// Name returns the method name without parameters.
func (m Method) Name() string { return m.name }

// Signature returns the normalized signature.
func (m Method) Signature() string { return m.signature }

// Kind returns whether m is a signal or a slot.
func (m Method) Kind() MethodKind { return m.kind }

// Params returns the normalized parameter type names.
func (m Method) Params() []string { return append([]string(nil), m.params...) }

// MetaObject is the immutable reflection table of a class.
type MetaObject struct {
	className string
	super     *MetaObject
	offset    int
	methods   []Method
}

// ClassName returns the class name.
func (mo *MetaObject) ClassName() string { return mo.className }

// SuperClass returns the parent class, or nil for a root class.
func (mo *MetaObject) SuperClass() *MetaObject { return mo.super }

// MethodOffset returns the absolute index of the first method this class declares.
func (mo *MetaObject) MethodOffset() int { return mo.offset }

// MethodCount returns the number of methods including inherited ones.
func (mo *MetaObject) MethodCount() int { return mo.offset + len(mo.methods) }

// Method returns the method at absolute index i.
func (mo *MetaObject) Method(i int) (Method, bool) {
	for c := mo; c != nil; c = c.super {
		if i >= c.offset && i < c.MethodCount() {
			return c.methods[i-c.offset], true
		}
	}
	return Method{}, false
}

// IndexOfMethod returns the absolute index of sig, or -1.
// The most-derived declaration wins.
func (mo *MetaObject) IndexOfMethod(sig string) int {
	return mo.indexOf(sig, func(Method) bool { return true })
}

// IndexOfSignal returns the absolute index of the signal sig, or -1.
func (mo *MetaObject) IndexOfSignal(sig string) int {
	return mo.indexOf(sig, func(m Method) bool { return m.kind == KindSignal })
}

// IndexOfSlot returns the absolute index of the slot sig, or -1.
func (mo *MetaObject) IndexOfSlot(sig string) int {
	return mo.indexOf(sig, func(m Method) bool { return m.kind == KindSlot })
}

// Inherits reports whether mo is other or derives from it.
func (mo *MetaObject) Inherits(other *MetaObject) bool {
	for c := mo; c != nil; c = c.super {
		if c == other {
			return true
		}
	}
	return false
}

func (mo *MetaObject) indexOf(sig string, match func(Method) bool) int {
	if _, bare, ok := StripCode(sig); ok {
		sig = bare
	}
	norm := NormalizedSignature(sig)
	for c := mo; c != nil; c = c.super {
		for i, m := range c.methods {
			if m.signature == norm && match(m) {
				return c.offset + i
			}
		}
	}
	return -1
}

// ClassBuilder declares the methods of a new class.
type ClassBuilder struct {
	mo  *MetaObject
	err error
}

// NewClass starts a class deriving from super. A nil super derives from ObjectClass.
func NewClass(name string, super *MetaObject) *ClassBuilder {
	if super == nil {
		super = ObjectClass
	}
	return newClass(name, super)
}

func newClass(name string, super *MetaObject) *ClassBuilder {
	mo := &MetaObject{className: name, super: super}
	if super != nil {
		mo.offset = super.MethodCount()
	}
	return &ClassBuilder{mo: mo}
}

// Signal declares a signal.
func (b *ClassBuilder) Signal(sig string) *ClassBuilder {
	return b.add(sig, KindSignal, nil)
}

// Slot declares a slot implemented by fn. fn may be nil for a no-op slot.
func (b *ClassBuilder) Slot(sig string, fn SlotFunc) *ClassBuilder {
	return b.add(sig, KindSlot, fn)
}

// Build returns the finished class, or the first declaration error.
func (b *ClassBuilder) Build() (*MetaObject, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.mo, nil
}

// MustBuild is like Build but panics on error.
func (b *ClassBuilder) MustBuild() *MetaObject {
	mo, err := b.Build()
	if err != nil {
		panic(err)
	}
	return mo
}

func (b *ClassBuilder) add(sig string, kind MethodKind, fn SlotFunc) *ClassBuilder {
	if b.err != nil {
		return b
	}
	if _, bare, ok := StripCode(sig); ok {
		sig = bare
	}
	name, params, err := ParseSignature(sig)
	if err != nil {
		b.err = err
		return b
	}
	norm := name + "(" + strings.Join(params, ",") + ")"
	for _, m := range b.mo.methods {
		if m.signature == norm {
			b.err = fmt.Errorf("%w: %s in %s", ErrDuplicateMethod, norm, b.mo.className)
			return b
		}
	}
	b.mo.methods = append(b.mo.methods, Method{
		name:      name,
		signature: norm,
		params:    params,
		kind:      kind,
		impl:      fn,
	})
	return b
}

// ObjectClass is the root class every object derives from.
//
// Its deleteLater() slot destroys the object synchronously, on the goroutine
// that invokes it. There is no event loop to defer to; connect it through a
// queued connection when the destruction must wait for the poster.
var ObjectClass = newClass("Object", nil).
	Signal("destroyed()").
	Slot("deleteLater()", nil).
	MustBuild()

// Absolute indexes of ObjectClass methods.
const (
	destroyedIndex   = 0
	deleteLaterIndex = 1
)

func init() {
	// deleteLater() runs Destroy immediately.
	ObjectClass.methods[deleteLaterIndex].impl = func(o *Object, _ []any) { o.Destroy() }
}
