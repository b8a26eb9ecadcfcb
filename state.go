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
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"dirpx.dev/sigfwd/apis"
	"dirpx.dev/sigfwd/builder"
	"dirpx.dev/sigfwd/config"
)

// init publishes the default snapshot.
func init() {
	s := &state{cfg: config.DefaultConfig(), log: logrus.StandardLogger()}
	b := builder.New()
	s.reg = b.BuildRegistry(s.cfg, nil)
	s.res = b.BuildResolver(s.cfg, s.reg, nil)
	s.bld = b
	st.Store(s)
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("sigfwd: builder returned nil registry")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("sigfwd: builder returned nil resolver")
)

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global sigfwd state.
var st atomic.Pointer[state]

// state is the global snapshot.
// Immutable once published via st.Store; writers create a new state and swap it.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// reg is the Name Registry.
	reg apis.Registry
	// res is the Type Name Resolver.
	res apis.Resolver
	// bld builds reg and res for cfg.
	bld apis.Builder
	// log receives connection diagnostics.
	log logrus.FieldLogger
	// preg indicates whether reg is pinned.
	preg bool
	// pres indicates whether res is pinned.
	pres bool
}

// clone returns a shallow copy of s for a writer to modify.
func (s *state) clone() *state {
	c := *s
	return &c
}

// rebuild replaces the unpinned layers of s using its builder.
// prev is the snapshot whose layers are migrated.
func (s *state) rebuild(prev *state) {
	if !s.preg {
		s.reg = s.bld.BuildRegistry(s.cfg, prev.reg)
	}
	if !s.pres {
		s.res = s.bld.BuildResolver(s.cfg, s.reg, prev.res)
	}
	if s.reg == nil {
		panic(ErrNilRegistry)
	}
	if s.res == nil {
		panic(ErrNilResolver)
	}
}

// SetAll replaces the configuration, registry, resolver and builder in one
// step. Nil arguments leave the configuration and builder unchanged; a nil
// registry or resolver is rebuilt and unpinned, a non-nil one is pinned.
func SetAll(cfg *apis.Config, reg apis.Registry, res apis.Resolver, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	s := old.clone()
	if cfg != nil {
		s.cfg = *cfg
	}
	if bld != nil {
		s.bld = bld
	}
	s.reg, s.preg = reg, reg != nil
	s.res, s.pres = res, res != nil
	s.rebuild(old)
	st.Store(s)
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global configuration and rebuilds the unpinned layers.
// Registered names are migrated to the rebuilt registry.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	s := old.clone()
	s.cfg = cfg
	s.rebuild(old)
	st.Store(s)
}

// Registry returns the global Name Registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry installs and pins reg, rebuilding the resolver unless pinned.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	s := old.clone()
	s.reg, s.preg = reg, true
	s.rebuild(old)
	st.Store(s)
}

// Resolver returns the global Type Name Resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver installs and pins res.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	s := st.Load().clone()
	s.res, s.pres = res, true
	st.Store(s)
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder installs b and rebuilds the unpinned layers with it.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	s := old.clone()
	s.bld = b
	s.rebuild(old)
	st.Store(s)
}

// Logger returns the logger used for connection diagnostics.
func Logger() logrus.FieldLogger {
	return st.Load().log
}

// SetLogger sets the logger used for connection diagnostics and, unless a
// connection supplies its own error handler, for captured receiver failures.
// A nil l restores the standard logger.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = logrus.StandardLogger()
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	s := st.Load().clone()
	s.log = l
	st.Store(s)
}

// IsRegistryPinned reports whether the global registry is pinned.
func IsRegistryPinned() bool {
	return st.Load().preg
}

// IsResolverPinned reports whether the global resolver is pinned.
func IsResolverPinned() bool {
	return st.Load().pres
}

// PinRegistry stops SetConfig and SetBuilder from rebuilding the registry.
func PinRegistry() { setPins(func(s *state) { s.preg = true }) }

// UnpinRegistry lets the registry be rebuilt again.
func UnpinRegistry() { setPins(func(s *state) { s.preg = false }) }

// PinResolver stops SetConfig and SetBuilder from rebuilding the resolver.
func PinResolver() { setPins(func(s *state) { s.pres = true }) }

// UnpinResolver lets the resolver be rebuilt again.
func UnpinResolver() { setPins(func(s *state) { s.pres = false }) }

func setPins(fn func(*state)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	s := st.Load().clone()
	fn(s)
	st.Store(s)
}
