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

package sigfwd

import (
	"errors"
	"reflect"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"dirpx.dev/sigfwd/apis"
	"dirpx.dev/sigfwd/builder"
	"dirpx.dev/sigfwd/config"
	"dirpx.dev/sigfwd/forward"
	"dirpx.dev/sigfwd/meta"
	"dirpx.dev/sigfwd/registry"
	"dirpx.dev/sigfwd/traits"
)

var (
	sliderClass = meta.NewClass("Slider", nil).
			Signal("valueChanged(int)").
			Signal("sliderMoved(int,int)").
			MustBuild()

	buttonClass = meta.NewClass("Button", nil).
			Signal("clicked()").
			Signal("toggled(bool)").
			MustBuild()
)

type colour struct{ R, G, B uint8 }

func TestConnect_EndToEnd(t *testing.T) {
	resetWithBuilder(t, builder.New(), config.DefaultConfig())

	slider := meta.NewObject(sliderClass, nil)
	var got []int
	conn, err := Connect(slider, meta.SignalSig("valueChanged(int)"), func(v int) { got = append(got, v) })
	if err != nil {
		t.Fatalf("Connect: unexpected error: %v", err)
	}
	if !conn.Connected() || conn.Status() != Connected {
		t.Fatalf("status = %v, want connected", conn.Status())
	}

	if err := slider.Emit("valueChanged(int)", 42); err != nil {
		t.Fatalf("Emit: unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != 42 {
		t.Fatalf("received %v, want [42]", got)
	}

	conn.Disconnect()
	conn.Disconnect()
	if conn.Connected() || conn.Status() != Disconnected {
		t.Fatalf("status after Disconnect = %v, want disconnected", conn.Status())
	}
	_ = slider.Emit("valueChanged(int)", 43)
	if len(got) != 1 {
		t.Fatalf("received %v after Disconnect, want [42]", got)
	}
}

func TestConnect_Statuses(t *testing.T) {
	resetWithBuilder(t, builder.New(), config.DefaultConfig())
	slider := meta.NewObject(sliderClass, nil)
	idx := sliderClass.IndexOfSignal("valueChanged(int)")

	cases := []struct {
		name     string
		signal   string
		receiver any
		want     Result
	}{
		{"exact", "valueChanged(int)", func(int) {}, Connected},
		{"empty prefix", "valueChanged(int)", func() {}, Connected},
		{"incompatible", "valueChanged(int)", func(float64) {}, SigsIncompatible},
		{"too many params", "valueChanged(int)", func(int, int) {}, SigsIncompatible},
		{"send-only channel", "valueChanged(int)", func(chan<- int) {}, SigsIncompatible},
		{"receive-only channel", "valueChanged(int)", func(<-chan string) {}, SigsIncompatible},
		{"anonymous struct", "valueChanged(int)", func(struct{ A, B int }) {}, SigsIncompatible},
		{"prefix of two", "sliderMoved(int, int)", func(int) {}, Connected},
		{"unknown signal", "valueChanged(double)", func(float64) {}, SignalNotFound},
		{"typed callable", "valueChanged(int)", traits.Func1(func(int) {}), Connected},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := slider.Receivers(idx)
			conn, err := Connect(slider, meta.SignalSig(tc.signal), tc.receiver)
			if err != nil {
				t.Fatalf("Connect: unexpected error: %v", err)
			}
			if conn.Status() != tc.want {
				t.Fatalf("status = %v, want %v", conn.Status(), tc.want)
			}
			if tc.want != Connected && slider.Receivers(idx) != before {
				t.Fatalf("failed connect changed the connection table")
			}
			conn.Disconnect()
		})
	}
	if n := slider.Receivers(idx); n != 0 {
		t.Fatalf("Receivers after disconnecting all = %d, want 0", n)
	}
	if n := len(slider.Children()); n != 0 {
		t.Fatalf("emitter still owns %d forwarders", n)
	}
}

func TestConnect_Queued(t *testing.T) {
	resetWithBuilder(t, builder.New(), config.DefaultConfig())

	cases := []struct {
		name       string
		typ        meta.ConnectionType
		withPoster bool
		wantQueued bool
	}{
		{"queued with emitter poster", meta.QueuedConnection, false, true},
		{"auto with emitter poster", meta.AutoConnection, false, true},
		{"queued with own poster", meta.QueuedConnection, true, true},
		{"direct ignores poster", meta.DirectConnection, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var emitterQueue, ownQueue []func()
			slider := meta.NewObject(sliderClass, nil)
			slider.SetPoster(func(fn func()) { emitterQueue = append(emitterQueue, fn) })

			var got []int
			opts := []ConnectOption{WithConnectionType(tc.typ)}
			if tc.withPoster {
				opts = append(opts, WithPoster(func(fn func()) { ownQueue = append(ownQueue, fn) }))
			}
			conn, err := Connect(slider, meta.SignalSig("valueChanged(int)"), func(v int) { got = append(got, v) }, opts...)
			if err != nil || !conn.Connected() {
				t.Fatalf("Connect = (%v, %v)", conn, err)
			}

			_ = slider.Emit("valueChanged(int)", 9)
			if !tc.wantQueued {
				if len(got) != 1 || len(emitterQueue) != 0 {
					t.Fatalf("got %v queued %d, want direct delivery", got, len(emitterQueue))
				}
				return
			}
			if len(got) != 0 {
				t.Fatal("queued receiver ran synchronously")
			}
			queue := emitterQueue
			if tc.withPoster {
				queue = ownQueue
				if len(emitterQueue) != 0 {
					t.Fatalf("emitter poster used %d times, want 0", len(emitterQueue))
				}
			}
			if len(queue) != 1 {
				t.Fatalf("queued %d calls, want 1", len(queue))
			}
			queue[0]()
			if len(got) != 1 || got[0] != 9 {
				t.Fatalf("received %v, want [9]", got)
			}
		})
	}
}

func TestConnect_RejectsMalformedInput(t *testing.T) {
	resetWithBuilder(t, builder.New(), config.DefaultConfig())
	slider := meta.NewObject(sliderClass, nil)

	if _, err := Connect(nil, meta.SignalSig("valueChanged(int)"), func(int) {}); !errors.Is(err, forward.ErrNilEmitter) {
		t.Fatalf("nil emitter: got %v, want ErrNilEmitter", err)
	}
	if _, err := Connect(slider, "valueChanged(int)", func(int) {}); !errors.Is(err, forward.ErrNotSignal) {
		t.Fatalf("unmarked signal: got %v, want ErrNotSignal", err)
	}
	if _, err := Connect(slider, meta.SignalSig("valueChanged(int)"), 42); !errors.Is(err, traits.ErrNotCallable) {
		t.Fatalf("non-callable: got %v, want ErrNotCallable", err)
	}
	if _, err := Connect(slider, meta.SignalSig("valueChanged(int)"), func(...int) {}); !errors.Is(err, traits.ErrVariadic) {
		t.Fatalf("variadic: got %v, want ErrVariadic", err)
	}
	if len(slider.Children()) != 0 {
		t.Fatal("rejected connections left forwarders behind")
	}
}

func TestConnect_MaxArity(t *testing.T) {
	resetWithBuilder(t, builder.New(), config.NewConfig(config.WithMaxArity(1)))
	slider := meta.NewObject(sliderClass, nil)

	_, err := Connect(slider, meta.SignalSig("sliderMoved(int,int)"), func(int, int) {})
	if !errors.Is(err, traits.ErrTooManyParams) {
		t.Fatalf("got %v, want ErrTooManyParams", err)
	}
}

func TestConnect_CheckDisabled(t *testing.T) {
	resetWithBuilder(t, builder.New(), config.NewConfig(config.WithCheckSignatures(false)))
	slider := meta.NewObject(sliderClass, nil)

	var captured []error
	conn, err := Connect(slider, meta.SignalSig("valueChanged(int)"), func(float64) {
		t.Fatal("mismatched receiver must not run")
	}, WithErrorHandler(func(_ *forward.Forwarder, err error) { captured = append(captured, err) }))
	if err != nil {
		t.Fatalf("Connect: unexpected error: %v", err)
	}
	if !conn.Connected() {
		t.Fatalf("unchecked connect: status = %v, want connected", conn.Status())
	}
	_ = slider.Emit("valueChanged(int)", 1)
	if len(captured) != 1 || !errors.Is(captured[0], traits.ErrArgType) {
		t.Fatalf("captured %v, want one ErrArgType", captured)
	}

	// The per-call option wins over the configuration.
	conn2, err := Connect(slider, meta.SignalSig("valueChanged(int)"), func(float64) {}, WithCheck(true))
	if err != nil || conn2.Status() != SigsIncompatible {
		t.Fatalf("WithCheck(true): got (%v, %v), want sigs_incompatible", conn2, err)
	}
}

func TestConnect_RegisteredName(t *testing.T) {
	resetWithBuilder(t, builder.New(), config.DefaultConfig())
	SetRegistry(registry.New())

	paint := meta.NewClass("Palette", nil).Signal("colourChanged(Colour)").MustBuild()
	p := meta.NewObject(paint, nil)

	// Without a registration the reflect name does not match.
	conn, err := Connect(p, meta.SignalSig("colourChanged(Colour)"), func(colour) {})
	if err != nil || conn.Status() != SigsIncompatible {
		t.Fatalf("unregistered: got (%v, %v), want sigs_incompatible", conn, err)
	}

	if err := RegisterType[colour]("Colour"); err != nil {
		t.Fatalf("RegisterType: %v", err)
	}
	if err := RegisterType[colour]("Colour"); err != nil {
		t.Fatalf("RegisterType idempotent: %v", err)
	}
	if err := RegisterType[colour]("Color"); err == nil {
		t.Fatal("conflicting RegisterType succeeded")
	}

	var got colour
	conn, err = Connect(p, meta.SignalSig("colourChanged(Colour)"), func(c colour) { got = c })
	if err != nil || !conn.Connected() {
		t.Fatalf("registered: got (%v, %v), want connected", conn, err)
	}
	if err := p.Emit("colourChanged(Colour)", colour{R: 1}); err != nil {
		t.Fatalf("Emit: unexpected error: %v", err)
	}
	if got.R != 1 {
		t.Fatalf("received %+v, want R=1", got)
	}
}

func TestConnect_EmitterTeardown(t *testing.T) {
	resetWithBuilder(t, builder.New(), config.DefaultConfig())
	button := meta.NewObject(buttonClass, nil)

	calls := 0
	conn, err := Connect(button, meta.SignalSig("clicked()"), func() { calls++ })
	if err != nil || !conn.Connected() {
		t.Fatalf("Connect = (%v, %v)", conn, err)
	}
	_ = button.Emit("clicked()")
	button.Destroy()

	conn.Disconnect()
	if conn.Status() != Disconnected {
		t.Fatalf("status = %v, want disconnected", conn.Status())
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestConnect_LogsAttempt(t *testing.T) {
	resetWithBuilder(t, builder.New(), config.DefaultConfig())
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	SetLogger(logger)

	slider := meta.NewObject(sliderClass, nil)
	conn, err := Connect(slider, meta.SignalSig("valueChanged(int)"), func(float64) {})
	if err != nil {
		t.Fatalf("Connect: unexpected error: %v", err)
	}

	e := hook.LastEntry()
	if e == nil || e.Level != logrus.DebugLevel {
		t.Fatalf("last entry = %v, want a debug entry", e)
	}
	want := logrus.Fields{
		"signal":   "valueChanged(int)",
		"receiver": "f(double)",
		"status":   "sigs_incompatible",
		"id":       conn.ID(),
	}
	for k, v := range want {
		if e.Data[k] != v {
			t.Fatalf("field %s = %v, want %v", k, e.Data[k], v)
		}
	}
}

func TestSignature(t *testing.T) {
	resetWithBuilder(t, builder.New(), config.DefaultConfig())

	cases := []struct {
		receiver any
		want     string
	}{
		{func() {}, "f()"},
		{func(int) {}, "f(int)"},
		{func(float64, string) {}, "f(double, QString)"},
		{func(*colour) {}, "f(sigfwd.colour*)"},
	}
	for _, tc := range cases {
		got, err := Signature(tc.receiver)
		if err != nil {
			t.Fatalf("Signature(%T): unexpected error: %v", tc.receiver, err)
		}
		if got != tc.want {
			t.Fatalf("Signature(%T) = %q, want %q", tc.receiver, got, tc.want)
		}
		// Rendering then normalizing is stable.
		if meta.NormalizedSignature(got) != meta.NormalizedSignature(meta.NormalizedSignature(got)) {
			t.Fatalf("normalization of %q is not idempotent", got)
		}
	}

	if _, err := Signature("nope"); !errors.Is(err, traits.ErrNotCallable) {
		t.Fatalf("Signature(string): got %v, want ErrNotCallable", err)
	}
}

func TestTypeName_Chain(t *testing.T) {
	resetWithBuilder(t, builder.New(), config.DefaultConfig())

	if got := TypeName(reflect.TypeFor[string]()); got != "QString" {
		t.Fatalf("TypeName(string) = %q, want QString", got)
	}
	if got := TypeNameOf(colour{}); got != "sigfwd.colour" {
		t.Fatalf("TypeNameOf(colour{}) = %q, want sigfwd.colour", got)
	}
	SetConfig(apis.Config{QualifyPackages: false, MaxUnwrap: 8, CheckSignatures: true})
	if got := TypeNameOf([]colour{}); got != "[]colour" {
		t.Fatalf("TypeNameOf([]colour{}) = %q, want []colour", got)
	}
}

func TestRelay_SignalToSignal(t *testing.T) {
	resetWithBuilder(t, builder.New(), config.DefaultConfig())

	source := meta.NewObject(sliderClass, nil)
	mirror := meta.NewObject(sliderClass, nil)

	relay, err := Relay(mirror, meta.SignalSig("valueChanged(int)"))
	if err != nil {
		t.Fatalf("Relay: unexpected error: %v", err)
	}
	if _, err := Connect(source, meta.SignalSig("valueChanged(int)"), relay); err != nil {
		t.Fatalf("Connect relay: %v", err)
	}

	var got []int
	if _, err := Connect(mirror, meta.SignalSig("valueChanged(int)"), func(v int) { got = append(got, v) }); err != nil {
		t.Fatalf("Connect mirror: %v", err)
	}

	_ = source.Emit("valueChanged(int)", 9)
	if len(got) != 1 || got[0] != 9 {
		t.Fatalf("mirror received %v, want [9]", got)
	}

	// A relay for a longer signal is incompatible with a shorter one.
	wide, err := Relay(mirror, "sliderMoved(int,int)")
	if err != nil {
		t.Fatalf("Relay(sliderMoved): %v", err)
	}
	conn, err := Connect(source, meta.SignalSig("valueChanged(int)"), wide)
	if err != nil || conn.Status() != SigsIncompatible {
		t.Fatalf("wide relay: got (%v, %v), want sigs_incompatible", conn, err)
	}
}

func TestRelay_Rejects(t *testing.T) {
	button := meta.NewObject(buttonClass, nil)
	if _, err := Relay(button, "pressed()"); !errors.Is(err, meta.ErrUnknownSignal) {
		t.Fatalf("unknown signal: got %v, want ErrUnknownSignal", err)
	}

	odd := meta.NewClass("Odd", nil).Signal("changed(Mystery)").MustBuild()
	if _, err := Relay(meta.NewObject(odd, nil), "changed(Mystery)"); !errors.Is(err, ErrUnknownParamType) {
		t.Fatalf("unknown param: got %v, want ErrUnknownParamType", err)
	}

	relay, err := Relay(button, "toggled(bool)")
	if err != nil {
		t.Fatalf("Relay: %v", err)
	}
	button.Destroy()
	v := true
	if err := relay.Forward([]any{&v}); !errors.Is(err, meta.ErrDestroyed) {
		t.Fatalf("Forward after Destroy: got %v, want ErrDestroyed", err)
	}
	if err := relay.Forward(nil); !errors.Is(err, traits.ErrArgCount) {
		t.Fatalf("Forward(nil): got %v, want ErrArgCount", err)
	}
}
