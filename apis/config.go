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

package apis

// Config carries read-only knobs that influence name resolution and connection.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// QualifyPackages controls whether reflect-decoded names of named types
	// carry their package prefix ("pkg.Type"). Builtin names are never qualified.
	QualifyPackages bool `yaml:"qualify_packages"`

	// MaxUnwrap limits how deep composite types (ptr/slice/array/map) are
	// rendered before decoding gives up and the raw type string is used.
	MaxUnwrap int `yaml:"max_unwrap"`

	// CheckSignatures controls whether a receiver signature is checked against
	// the event signature before a connection is made.
	CheckSignatures bool `yaml:"check_signatures"`

	// MaxArity limits the number of parameters a reflectively inspected
	// receiver may declare.
	MaxArity int `yaml:"max_arity"`
}
