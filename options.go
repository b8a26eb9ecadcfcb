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
	"dirpx.dev/sigfwd/forward"
	"dirpx.dev/sigfwd/meta"
)

// ConnectOption configures a single Connect call.
type ConnectOption func(*connectOptions)

type connectOptions struct {
	typ     meta.ConnectionType
	check   bool
	onError forward.ErrorHandler
	poster  meta.Poster
}

// WithConnectionType selects direct, queued or automatic delivery.
// The default is meta.AutoConnection.
func WithConnectionType(typ meta.ConnectionType) ConnectOption {
	return func(o *connectOptions) {
		o.typ = typ
	}
}

// WithPoster schedules queued deliveries for this connection with p.
// Without it the emitter's poster is used.
func WithPoster(p meta.Poster) ConnectOption {
	return func(o *connectOptions) {
		o.poster = p
	}
}

// WithCheck overrides Config.CheckSignatures for this connection.
func WithCheck(check bool) ConnectOption {
	return func(o *connectOptions) {
		o.check = check
	}
}

// WithErrorHandler receives the receiver's panics and errors instead of the log.
func WithErrorHandler(h forward.ErrorHandler) ConnectOption {
	return func(o *connectOptions) {
		o.onError = h
	}
}
