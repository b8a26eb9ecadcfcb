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

package strategy_test

import (
	"reflect"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/sigfwd/resolver"
	sfregistry "dirpx.dev/sigfwd/registry"
	"dirpx.dev/sigfwd/signature"
	"dirpx.dev/sigfwd/strategy"
	"dirpx.dev/sigfwd/traits"
)

type knob struct{}
type dial struct{}

// Receiver signatures rendered while names are being registered use, per
// parameter, either the fallback rendering or the registered name, and
// settle on the registered names.
func TestChain_SignaturesDuringRegistration(t *testing.T) {
	conf := cfg()
	reg := sfregistry.New()
	res := resolver.New(
		strategy.NewRegistryStrategy(reg),
		strategy.NewMetaTypeStrategy(),
		strategy.NewReflectStrategy(),
	)

	knobT := reflect.TypeFor[knob]()
	dialPtrT := reflect.TypeFor[*dial]()
	tr := traits.New(knobT, dialPtrT, reflect.TypeFor[dial](), reflect.TypeFor[float64]())

	fallbackKnob := res.ResolveType(knobT, conf)
	fallbackDial := res.ResolveType(dialPtrT, conf)
	plainDial := res.ResolveType(reflect.TypeFor[dial](), conf)

	allowed := map[string]bool{}
	for _, k := range []string{fallbackKnob, "Knob"} {
		for _, d := range []string{fallbackDial, "DialRef"} {
			allowed[signature.Name+"("+k+", "+d+", "+plainDial+", double)"] = true
		}
	}
	if !allowed[signature.Build(tr, res, conf)] {
		t.Fatalf("initial signature %q not in %v", signature.Build(tr, res, conf), allowed)
	}

	workers := runtime.GOMAXPROCS(0) * 4
	errCh := make(chan string, workers)
	var wg sync.WaitGroup
	wg.Add(workers + 2)

	go func() {
		defer wg.Done()
		_ = reg.Register(knobT, "Knob")
	}()
	go func() {
		defer wg.Done()
		_ = reg.Register(dialPtrT, "DialRef")
	}()
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				if sig := signature.Build(tr, res, conf); !allowed[sig] {
					errCh <- sig
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errCh)
	for sig := range errCh {
		t.Fatalf("unexpected signature during registration: %q", sig)
	}

	want := signature.Name + "(Knob, DialRef, " + plainDial + ", double)"
	if got := signature.Build(tr, res, conf); got != want {
		t.Fatalf("settled signature = %q, want %q", got, want)
	}
	if !signature.Check("2turned(Knob,DialRef)", signature.Build(traits.New(knobT), res, conf)) {
		t.Fatal("registered name does not match the event parameter")
	}
	if signature.Check("2turned(Knob,DialRef)", signature.Build(traits.New(dialPtrT), res, conf)) {
		t.Fatal("*dial matched the Knob parameter")
	}
}
