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

// Package sigfwd connects typed Go callables to the events of a
// reflection-driven object model.
//
// The object model (package meta) names events and receivers with string
// signatures such as "valueChanged(int)" and calls receivers with an untyped
// argument vector. sigfwd bridges the two worlds:
//
//   - a receiver's parameter list is extracted (package traits) and rendered
//     as a signature, "f(int)", using the global Type Name Resolver;
//   - the signature is checked against the event's, when checking is on;
//   - a Forwarder (package forward) is created as a child of the emitter and
//     connected to the event; it turns each argument vector back into one
//     typed call of the receiver;
//   - the caller gets a Connection handle with the outcome and the means to
//     disconnect.
//
// # Naming types
//
// Parameter types are named by a chain of strategies:
//
//  1. the Name Registry (RegisterTypeName, RegisterType);
//  2. the object model's type table (meta.RegisterType, meta.TypeNamer),
//     which knows that float64 is "double" and string is "QString";
//  3. reflection: "pkg.Type", "pkg.Type*", "[]pkg.Type", ...
//
// A parameter whose name matches nothing the emitter declares simply makes
// the connection fail with SigsIncompatible.
//
// # Global state
//
// The configuration, registry, resolver, builder and logger live in one
// immutable snapshot behind an atomic pointer. Reads are lock-free; writers
// (SetConfig, SetRegistry, SetResolver, SetBuilder, SetLogger, SetAll) build a
// new snapshot under a mutex and publish it atomically. SetRegistry and
// SetResolver pin their layer so later SetConfig calls do not rebuild it,
// until UnpinRegistry or UnpinResolver.
//
// The registry is meant to be filled during initialization, before
// connections are made. It is nevertheless safe for concurrent use.
//
// # Example
//
//	slider := meta.NewObject(sliderClass, nil)
//	conn, err := sigfwd.Connect(slider, meta.SignalSig("valueChanged(int)"),
//		func(v int) { fmt.Println("value", v) })
//	if err != nil {
//		return err
//	}
//	defer conn.Disconnect()
//	_ = slider.Emit("valueChanged(int)", 42)
package sigfwd
