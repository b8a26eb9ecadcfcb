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

package forward

import (
	"github.com/sirupsen/logrus"

	"dirpx.dev/sigfwd/meta"
)

// ErrorHandler receives failures captured at the forwarding boundary:
// a *PanicError or a *ReceiverError. It runs on the delivering goroutine.
type ErrorHandler func(f *Forwarder, err error)

// Option configures a Forwarder.
type Option func(*options)

type options struct {
	onError ErrorHandler
	logger  logrus.FieldLogger
	poster  meta.Poster
}

func defaultOptions() options {
	return options{logger: logrus.StandardLogger()}
}

// WithErrorHandler routes captured receiver failures to h instead of the log.
// A nil h restores the default.
func WithErrorHandler(h ErrorHandler) Option {
	return func(o *options) {
		o.onError = h
	}
}

// WithPoster schedules queued deliveries to the forwarder with p instead of
// the parent's poster.
func WithPoster(p meta.Poster) Option {
	return func(o *options) {
		o.poster = p
	}
}

// WithLogger sets the logger used by the default error handler.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
