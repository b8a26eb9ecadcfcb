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

// Package demo replays the slider and button example without a GUI.
//
// A slider's valueChanged(int) drives a percentage through a method value.
// A button's clicked() is forwarded to a kelindar/event dispatcher whose
// subscriber prints the percentage. A shortcut object's activated() is relayed
// to clicked(). Finally a receiver taking a double is offered to
// valueChanged(int) and refused.
package demo

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/kelindar/event"
	"github.com/sirupsen/logrus"

	"dirpx.dev/sigfwd"
	"dirpx.dev/sigfwd/meta"
	"dirpx.dev/sigfwd/support/kevent"
)

var (
	sliderClass = meta.NewClass("Slider", nil).
			Signal("valueChanged(int)").
			Signal("sliderMoved(int)").
			MustBuild()

	buttonClass = meta.NewClass("PushButton", nil).
			Signal("clicked()").
			Signal("pressed()").
			MustBuild()

	shortcutClass = meta.NewClass("Shortcut", nil).
			Signal("activated()").
			MustBuild()
)

// reportRequested is published when the report button is clicked.
type reportRequested struct{}

// Type implements event.Event.
func (reportRequested) Type() uint32 { return 0x52505254 }

// percentage is the model the slider drives.
type percentage struct {
	mu    sync.Mutex
	value int
}

func (p *percentage) Set(v int) {
	p.mu.Lock()
	p.value = v
	p.mu.Unlock()
}

func (p *percentage) Value() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value
}

// die must never be connected to valueChanged(int).
func die(float64) { panic("die: connected to an incompatible signal") }

// Options configures Run.
type Options struct {
	// Values are emitted on the slider in order.
	Values []int
	// Out receives the connection summary and reports.
	Out io.Writer
	// Logger receives diagnostics. Nil uses the standard logger.
	Logger logrus.FieldLogger
}

// Run builds the widgets, connects them and replays Values followed by one
// click through the shortcut. It returns once the report has been printed or
// ctx is done.
func Run(ctx context.Context, o Options) error {
	if o.Out == nil {
		o.Out = io.Discard
	}
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}

	window := meta.NewObject(nil, nil)
	window.SetObjectName("window")
	defer window.Destroy()

	slider := meta.NewObject(sliderClass, window)
	button := meta.NewObject(buttonClass, window)
	shortcut := meta.NewObject(shortcutClass, window)

	d := event.NewDispatcher()
	defer d.Close()

	var pc percentage
	reported := make(chan int, 1)
	unsub := event.Subscribe(d, func(reportRequested) {
		v := pc.Value()
		fmt.Fprintf(o.Out, "Percentage: %d %%\n", v)
		select {
		case reported <- v:
		default:
		}
	})
	defer unsub()

	relay, err := sigfwd.Relay(button, "clicked()")
	if err != nil {
		return err
	}

	steps := []struct {
		name     string
		emitter  *meta.Object
		signal   string
		receiver any
		want     sigfwd.Result
	}{
		{"slider -> percentage.Set", slider, "valueChanged(int)", pc.Set, sigfwd.Connected},
		{"button -> report", button, "clicked()", kevent.Notify(d, reportRequested{}), sigfwd.Connected},
		{"shortcut -> button", shortcut, "activated()", relay, sigfwd.Connected},
		{"slider -> die", slider, "valueChanged(int)", die, sigfwd.SigsIncompatible},
	}
	for _, s := range steps {
		conn, err := sigfwd.Connect(s.emitter, meta.SignalSig(s.signal), s.receiver)
		if err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
		fmt.Fprintf(o.Out, "%s: %s\n", s.name, conn.Status())
		if conn.Status() != s.want {
			return fmt.Errorf("%s: got %s, want %s", s.name, conn.Status(), s.want)
		}
	}

	for _, v := range o.Values {
		if err := slider.Emit("valueChanged(int)", v); err != nil {
			return err
		}
		o.Logger.WithField("value", v).Debug("slider moved")
	}
	if err := shortcut.Emit("activated()"); err != nil {
		return err
	}

	select {
	case <-reported:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
