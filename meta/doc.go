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

// Package meta is a small reflective object model: objects declare signals
// and slots by string signature, live in a parent/child ownership tree, and
// deliver signals through an untyped dispatch entry point.
//
// # Signatures
//
// A signature is a name plus an ordered, comma-separated list of parameter
// type names: "valueChanged(int)", "rangeChanged(int,int)". Signatures are
// compared after normalization (NormalizedSignature), which drops
// insignificant whitespace and collapses "const T&" to "T".
//
// When a signature is passed around as a connection endpoint it carries a
// one-byte marker: SignalCode ('2') for signals and SlotCode ('1') for slots.
// SignalSig and SlotSig add the marker.
//
// # Dispatch
//
// Every method of a class has an absolute index: methods of super classes
// come first. Connect links a signal index on a sender to a method index on a
// receiver. When the signal is activated, the receiver's Metacall is invoked
// with InvokeMetaMethod, the method index, and argv: one pointer per signal
// argument (argv[i] has type *T for a parameter of type T).
//
// Types that embed *Object override Metacall to intercept calls to methods
// their own class adds. They delegate to the embedded Object first; a
// non-negative return value is the index relative to the embedded class.
//
// # Ownership
//
// Destroying an object emits destroyed(), destroys its children and severs
// every connection it takes part in. Destroy is idempotent.
package meta
