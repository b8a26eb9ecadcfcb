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
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"dirpx.dev/sigfwd/apis"
)

// ErrEmptyDocument is returned by Load when the input holds no YAML document.
var ErrEmptyDocument = errors.New("sigfwd(config): empty document")

// Load decodes a YAML document into an apis.Config.
// Keys missing from the document keep their default values.
//
//	qualify_packages: true
//	max_unwrap: 8
//	check_signatures: true
//	max_arity: 10
func Load(r io.Reader) (apis.Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return apis.Config{}, ErrEmptyDocument
		}
		return apis.Config{}, fmt.Errorf("sigfwd(config): decode: %w", err)
	}
	return sanitize(cfg), nil
}

// LoadFile reads and decodes the YAML file at path.
func LoadFile(path string) (apis.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return apis.Config{}, fmt.Errorf("sigfwd(config): open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}
