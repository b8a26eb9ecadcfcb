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

package meta

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	// SlotCode marks a slot endpoint.
	SlotCode = '1'
	// SignalCode marks a signal endpoint.
	SignalCode = '2'
)

// SignalSig returns sig marked as a signal endpoint.
func SignalSig(sig string) string { return string(rune(SignalCode)) + sig }

// SlotSig returns sig marked as a slot endpoint.
func SlotSig(sig string) string { return string(rune(SlotCode)) + sig }

// StripCode splits an endpoint into its marker and the bare signature.
// ok is false when sig carries no marker.
func StripCode(sig string) (code byte, bare string, ok bool) {
	if sig == "" {
		return 0, "", false
	}
	switch sig[0] {
	case SlotCode, SignalCode:
		return sig[0], sig[1:], true
	}
	return 0, sig, false
}

// typeAliases maps spellings to their canonical type names.
var typeAliases = map[string]string{
	"unsigned":           "uint",
	"unsigned int":       "uint",
	"long long":          "qlonglong",
	"unsigned long long": "qulonglong",
}

// NormalizedSignature returns sig in canonical form. A string that is not a
// well-formed signature is only stripped of insignificant whitespace.
func NormalizedSignature(sig string) string {
	name, params, err := ParseSignature(sig)
	if err != nil {
		return squeeze(sig)
	}
	return name + "(" + strings.Join(params, ",") + ")"
}

// NormalizedType returns the canonical spelling of a single parameter type.
func NormalizedType(t string) string {
	t = squeeze(t)
	if strings.HasSuffix(t, "&") {
		switch base := strings.TrimSuffix(t, "&"); {
		case strings.HasPrefix(base, "const "):
			t = strings.TrimPrefix(base, "const ")
		case strings.HasSuffix(base, " const"):
			t = strings.TrimSuffix(base, " const")
		}
	}
	if alias, ok := typeAliases[t]; ok {
		return alias
	}
	return t
}

// ParseSignature splits sig into its name and normalized parameter types.
func ParseSignature(sig string) (name string, params []string, err error) {
	open := strings.IndexByte(sig, '(')
	end := strings.LastIndexByte(sig, ')')
	if open <= 0 || end < open || strings.TrimSpace(sig[end+1:]) != "" {
		return "", nil, fmt.Errorf("%w: %q", ErrMalformedSignature, sig)
	}
	name = squeeze(sig[:open])
	if name == "" || strings.ContainsAny(name, " (),") {
		return "", nil, fmt.Errorf("%w: %q", ErrMalformedSignature, sig)
	}
	body := sig[open+1 : end]
	if strings.TrimSpace(body) == "" {
		return name, []string{}, nil
	}
	raw, ok := splitTopLevel(body)
	if !ok {
		return "", nil, fmt.Errorf("%w: unbalanced brackets in %q", ErrMalformedSignature, sig)
	}
	params = make([]string, len(raw))
	for i, p := range raw {
		params[i] = NormalizedType(p)
		if params[i] == "" {
			return "", nil, fmt.Errorf("%w: empty parameter in %q", ErrMalformedSignature, sig)
		}
	}
	return name, params, nil
}

// CheckConnectArgs reports whether a method with signature method can receive
// the signal with signature signal: the method's parameters must be an
// ordered prefix (possibly empty) of the signal's parameters.
func CheckConnectArgs(signal, method string) bool {
	_, sp, err := ParseSignature(signal)
	if err != nil {
		return false
	}
	_, mp, err := ParseSignature(method)
	if err != nil {
		return false
	}
	if len(mp) > len(sp) {
		return false
	}
	for i := range mp {
		if mp[i] != sp[i] {
			return false
		}
	}
	return true
}

// splitTopLevel splits s on commas that are not nested in <>, [] or ().
// A '<' that starts a channel arrow is not a bracket.
func splitTopLevel(s string) ([]string, bool) {
	var out []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			if i+1 < len(s) && s[i+1] == '-' {
				i++
				continue
			}
			depth++
		case '[', '(':
			depth++
		case '>', ']', ')':
			depth--
			if depth < 0 {
				return nil, false
			}
		case ',':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, false
	}
	return append(out, s[start:]), true
}

// squeeze drops whitespace except a single blank between two identifier characters.
func squeeze(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pending := false
	var last rune
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsSpace(r) {
			pending = true
			continue
		}
		if pending && isIdent(last) && isIdent(r) {
			b.WriteByte(' ')
		}
		pending = false
		b.WriteRune(r)
		last = r
	}
	return b.String()
}

func isIdent(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
