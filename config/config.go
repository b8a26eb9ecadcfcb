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

package config

import (
	"dirpx.dev/sigfwd/apis"
)

const (
	// DefaultQualifyPackages represents the default for QualifyPackages.
	// When true, decoded names look like "pkg.Type".
	DefaultQualifyPackages = true
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8
	// DefaultCheckSignatures represents the default for CheckSignatures.
	DefaultCheckSignatures = true
	// DefaultMaxArity represents the default for MaxArity.
	DefaultMaxArity = 10
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return sanitize(cfg)
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		QualifyPackages: DefaultQualifyPackages,
		MaxUnwrap:       DefaultMaxUnwrap,
		CheckSignatures: DefaultCheckSignatures,
		MaxArity:        DefaultMaxArity,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithQualifyPackages sets the QualifyPackages option.
func WithQualifyPackages(qualify bool) Option {
	return func(c *apis.Config) {
		c.QualifyPackages = qualify
	}
}

// WithMaxUnwrap sets the MaxUnwrap option.
// A negative value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}

// WithCheckSignatures sets the CheckSignatures option.
func WithCheckSignatures(check bool) Option {
	return func(c *apis.Config) {
		c.CheckSignatures = check
	}
}

// WithMaxArity sets the MaxArity option.
// A non-positive value resets to the default.
func WithMaxArity(n int) Option {
	return func(c *apis.Config) {
		if n <= 0 {
			c.MaxArity = DefaultMaxArity
			return
		}
		c.MaxArity = n
	}
}

// sanitize replaces out-of-range knobs with their defaults.
func sanitize(cfg apis.Config) apis.Config {
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	if cfg.MaxArity <= 0 {
		cfg.MaxArity = DefaultMaxArity
	}
	return cfg
}
