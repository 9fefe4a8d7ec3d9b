/*
Copyright 2025 Trident Authors

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

package weburl

import (
	"strconv"
	"strings"
)

// SerializeURL is the pure inverse of the Basic URL Parser (spec.md §4.4):
// it recomposes a URL value into its canonical string form, component by
// component, the same way the host sub-protocol's SerializeHost is the
// pure inverse of ParseHost.
func SerializeURL(u *URL) string {
	var b strings.Builder
	b.WriteString(u.Scheme)
	b.WriteByte(':')

	if u.HasHost {
		b.WriteString("//")
		writeUserinfo(&b, u)
		b.WriteString(SerializeHost(u.Host))
		if u.Port != nil {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(int(*u.Port)))
		}
	}

	writePath(&b, u)

	if u.Query != nil {
		b.WriteByte('?')
		b.WriteString(*u.Query)
	}
	if u.Fragment != nil {
		b.WriteByte('#')
		b.WriteString(*u.Fragment)
	}
	return b.String()
}

func writeUserinfo(b *strings.Builder, u *URL) {
	if u.Username == "" && u.Password == "" {
		return
	}
	b.WriteString(u.Username)
	if u.Password != "" {
		b.WriteByte(':')
		b.WriteString(u.Password)
	}
	b.WriteByte('@')
}

// writePath renders u.Path. An empty segment list writes nothing at all
// (not even a lone "/"), matching spec.md §8's "http://example.com" round
// trip; a non-empty list always writes a leading "/" before its first
// segment, since that separator is what path-start consumed during
// parsing rather than what path accumulation stored.
func writePath(b *strings.Builder, u *URL) {
	if u.Path.Kind == PathOpaque {
		b.WriteString(u.Path.Opaque)
		return
	}
	for _, seg := range u.Path.Segments {
		b.WriteByte('/')
		b.WriteString(seg)
	}
}

// Origin implements the WHATWG notion of a URL's origin: scheme, host,
// and effective port for the network-addressable special schemes other
// than file:, and the opaque string "null" for everything else (file:
// included, since a local path carries no meaningful origin).
func Origin(u *URL) string {
	if !u.IsSpecial() || isFileScheme(u.Scheme) || !u.HasHost {
		return "null"
	}
	var b strings.Builder
	b.WriteString(u.Scheme)
	b.WriteString("://")
	b.WriteString(SerializeHost(u.Host))
	if port, ok := u.EffectivePort(); ok {
		if def, hasDef := SchemeDefaultPort(u.Scheme); !hasDef || def != port {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(int(port)))
		}
	}
	return b.String()
}
