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

package registry_test

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/sigfwd/registry"
)

type led struct{}

// Goroutines race to name led, *led and []led differently. Each exact key
// keeps the first name stored, every other candidate is refused, and the
// keys never see each other's names.
func TestRegister_RacingNamesPerExactKey(t *testing.T) {
	reg := registry.New()
	keys := []reflect.Type{
		reflect.TypeFor[led](),
		reflect.TypeFor[*led](),
		reflect.TypeFor[[]led](),
	}

	workers := runtime.GOMAXPROCS(0) * 4
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners = map[reflect.Type][]string{}
		other   []error
	)
	wg.Add(workers * len(keys))
	for w := 0; w < workers; w++ {
		for k, key := range keys {
			go func(w, k int, key reflect.Type) {
				defer wg.Done()
				name := fmt.Sprintf("Led%d_%d", k, w)
				err := reg.Register(key, name)
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					winners[key] = append(winners[key], name)
				case !errors.Is(err, registry.ErrConflictingRegistration):
					other = append(other, err)
				}
			}(w, k, key)
		}
	}
	wg.Wait()

	if len(other) != 0 {
		t.Fatalf("unexpected errors: %v", other)
	}
	if got := reg.Count(); got != len(keys) {
		t.Fatalf("Count = %d, want %d", got, len(keys))
	}
	for k, key := range keys {
		if len(winners[key]) != 1 {
			t.Fatalf("%v: %d registrations succeeded, want 1 (%v)", key, len(winners[key]), winners[key])
		}
		got, ok := reg.Lookup(key)
		if !ok || got != winners[key][0] {
			t.Fatalf("Lookup(%v) = (%q,%v), want (%q,true)", key, got, ok, winners[key][0])
		}
		var w int
		if _, err := fmt.Sscanf(got, fmt.Sprintf("Led%d_%%d", k), &w); err != nil {
			t.Fatalf("Lookup(%v) = %q, a name raced for another key", key, got)
		}
		// The winner stays idempotent.
		if err := reg.Register(key, got); err != nil {
			t.Fatalf("re-register winner %q: %v", got, err)
		}
	}
}

// Lookups running next to registrations only ever observe a miss or the
// final name.
func TestLookup_DuringRegistration(t *testing.T) {
	reg := registry.New()
	key := reflect.TypeFor[*led]()

	workers := runtime.GOMAXPROCS(0) * 2
	errCh := make(chan string, workers)
	var wg sync.WaitGroup
	wg.Add(workers + 1)
	go func() {
		defer wg.Done()
		_ = reg.Register(key, "LedRef")
	}()
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 5000; i++ {
				if name, ok := reg.Lookup(key); ok && name != "LedRef" {
					errCh <- name
					return
				}
				if _, ok := reg.Lookup(reflect.TypeFor[led]()); ok {
					errCh <- "led"
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errCh)
	for name := range errCh {
		t.Fatalf("observed %q during registration", name)
	}
}
