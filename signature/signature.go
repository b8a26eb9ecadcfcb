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

// Package signature renders receiver signatures and checks them against
// event signatures.
package signature

import (
	"strings"

	"dirpx.dev/sigfwd/apis"
	"dirpx.dev/sigfwd/meta"
	"dirpx.dev/sigfwd/traits"
)

// Name is the method name carried by every rendered receiver signature.
const Name = "f"

// Build renders the receiver signature for tr, resolving each parameter type
// through res: "f(" + names joined with ", " + ")". Arity zero gives "f()".
func Build(tr traits.Traits, res apis.Resolver, cfg apis.Config) string {
	names := make([]string, tr.Arity())
	for i := range names {
		names[i] = res.ResolveType(tr.Param(i), cfg)
	}
	return Name + "(" + strings.Join(names, ", ") + ")"
}

// Check reports whether a receiver with signature receiver may be connected
// to the event with signature event. Both are normalized first, and endpoint
// markers are ignored. The receiver's parameters must be an ordered prefix of
// the event's.
func Check(event, receiver string) bool {
	return meta.CheckConnectArgs(normalize(event), normalize(receiver))
}

func normalize(sig string) string {
	_, bare, _ := meta.StripCode(sig)
	return meta.NormalizedSignature(bare)
}
