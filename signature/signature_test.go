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

package signature_test

import (
	"reflect"
	"testing"

	"dirpx.dev/sigfwd/builder"
	"dirpx.dev/sigfwd/config"
	"dirpx.dev/sigfwd/meta"
	"dirpx.dev/sigfwd/signature"
	"dirpx.dev/sigfwd/traits"
)

type gadget struct{}

func TestBuild(t *testing.T) {
	cfg := config.DefaultConfig()
	b := builder.New()
	res := b.BuildResolver(cfg, b.BuildRegistry(cfg, nil), nil)

	cases := []struct {
		name string
		c    traits.Callable
		want string
	}{
		{"no params", traits.Func0(func() {}), "f()"},
		{"int", traits.Func1(func(int) {}), "f(int)"},
		{"double", traits.Func1(func(float64) {}), "f(double)"},
		{"two params", traits.Func2(func(int, string) {}), "f(int, QString)"},
		{"user type", traits.Func1(func(*gadget) {}), "f(signature_test.gadget*)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := signature.Build(tc.c.Traits(), res, cfg); got != tc.want {
				t.Fatalf("Build = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestBuild_RoundTripsNormalization(t *testing.T) {
	cfg := config.DefaultConfig()
	b := builder.New()
	res := b.BuildResolver(cfg, b.BuildRegistry(cfg, nil), nil)

	tr := traits.New(reflect.TypeFor[int](), reflect.TypeFor[[]string](), reflect.TypeFor[map[string]int]())
	sig := signature.Build(tr, res, cfg)
	if got := meta.NormalizedSignature(sig); got != "f(int,QStringList,map[string]int)" {
		t.Fatalf("NormalizedSignature(%q) = %q", sig, got)
	}
	if !signature.Check("changed(int, QStringList, map[string]int)", sig) {
		t.Fatalf("Check(%q) = false, want true", sig)
	}
}

func TestCheck(t *testing.T) {
	cases := []struct {
		event, receiver string
		want            bool
	}{
		{"valueChanged(int)", "f(int)", true},
		{"valueChanged(int)", "f()", true},
		{"valueChanged(int)", "f(double)", false},
		{"valueChanged(int)", "f(int, int)", false},
		{"moved(int,int)", "f(int)", true},
		{"moved(int,int)", "f(int, int)", true},
		{"moved(int,int)", "f(int,double)", false},
		{"2valueChanged(int)", "f(int)", true},
		{"textChanged(const QString &)", "f(QString)", true},
		{"clicked()", "f()", true},
		{"clicked()", "f(bool)", false},
		{"broken(int", "f()", false},
	}
	for _, tc := range cases {
		if got := signature.Check(tc.event, tc.receiver); got != tc.want {
			t.Fatalf("Check(%q, %q) = %v, want %v", tc.event, tc.receiver, got, tc.want)
		}
	}
}
