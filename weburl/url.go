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

// Package weburl implements the WHATWG URL Living Standard's Basic URL
// Parser and Serializer, together with the host-parsing sub-protocol
// (domain, WHATWG IPv4, IPv6 literal, and opaque host grammars) that the
// parser dispatches into.
//
// A URL is a value: ParseURL never mutates a base URL it is given, and
// nothing returned from this package exposes a setter. To change a
// component, build a new URL from the pieces you want (the With* helpers
// on URL do this for the common cases) or re-parse.
//
// IDNA-based domain validation is delegated to golang.org/x/net/idna;
// this package does not implement Unicode normalization, punycode, or
// UTS46 itself.
package weburl

import "strings"

// PathKind discriminates the two cases of the Path tagged variant
// (spec.md §3).
type PathKind int

const (
	// PathList is an ordered, possibly-empty sequence of segments, used
	// for special schemes and any scheme whose authority introduces a
	// hierarchical path.
	PathList PathKind = iota
	// PathOpaque is a single flat ASCII string, used by non-special
	// schemes like "mailto:" or "data:".
	PathOpaque
)

// Path is the tagged variant of spec.md §3.
type Path struct {
	Kind     PathKind
	Segments []string // meaningful when Kind == PathList
	Opaque   string   // meaningful when Kind == PathOpaque
}

// URL is an immutable, parsed representation of a URL string (spec.md
// §3). All string fields already hold percent-encoded ASCII.
type URL struct {
	Scheme   string
	Username string
	Password string
	Host     Host
	HasHost  bool
	Port     *uint16
	Path     Path
	Query    *string
	Fragment *string
}

// IsSpecial reports whether u's scheme is one of the six special schemes.
func (u *URL) IsSpecial() bool {
	return IsSpecialScheme(u.Scheme)
}

// EffectivePort returns the port that applies to u: the stored port if
// present, otherwise the scheme's default port.
func (u *URL) EffectivePort() (uint16, bool) {
	if u.Port != nil {
		return *u.Port, true
	}
	return SchemeDefaultPort(u.Scheme)
}

// clonePath returns a deep copy of p so derived URLs never alias the
// original's segment slice.
func clonePath(p Path) Path {
	np := Path{Kind: p.Kind, Opaque: p.Opaque}
	if p.Kind == PathList {
		np.Segments = append([]string(nil), p.Segments...)
	}
	return np
}

// clone returns a deep copy of u, so the parser's base-URL inheritance
// (spec.md §4.4's no-scheme state) and the With* helpers below never
// observably alias an existing URL.
func (u *URL) clone() *URL {
	nu := *u
	nu.Path = clonePath(u.Path)
	if u.Port != nil {
		p := *u.Port
		nu.Port = &p
	}
	if u.Query != nil {
		q := *u.Query
		nu.Query = &q
	}
	if u.Fragment != nil {
		f := *u.Fragment
		nu.Fragment = &f
	}
	return &nu
}

// WithPath returns a copy of u with its path replaced by segments,
// without mutating u. Equivalent to rebuilding the URL with a new path,
// per spec.md §3's "mutation is produced by rebuilding" lifecycle note.
func (u *URL) WithPath(segments []string) *URL {
	nu := u.clone()
	nu.Path = Path{Kind: PathList, Segments: append([]string(nil), segments...)}
	return nu
}

// WithQuery returns a copy of u with its query replaced. Pass nil to
// remove the query entirely.
func (u *URL) WithQuery(query *string) *URL {
	nu := u.clone()
	if query == nil {
		nu.Query = nil
		return nu
	}
	q := *query
	nu.Query = &q
	return nu
}

// WithFragment returns a copy of u with its fragment replaced. Pass nil
// to remove the fragment entirely.
func (u *URL) WithFragment(fragment *string) *URL {
	nu := u.clone()
	if fragment == nil {
		nu.Fragment = nil
		return nu
	}
	f := *fragment
	nu.Fragment = &f
	return nu
}

// Equal reports whether u and other are structurally identical: same
// scheme, credentials, host, port, path, query, and fragment.
func (u *URL) Equal(other *URL) bool {
	if u == nil || other == nil {
		return u == other
	}
	if u.Scheme != other.Scheme || u.Username != other.Username || u.Password != other.Password {
		return false
	}
	if u.HasHost != other.HasHost || !hostEqual(u.Host, other.Host) {
		return false
	}
	if !portEqual(u.Port, other.Port) {
		return false
	}
	if !pathEqual(u.Path, other.Path) {
		return false
	}
	if !stringPtrEqual(u.Query, other.Query) || !stringPtrEqual(u.Fragment, other.Fragment) {
		return false
	}
	return true
}

func hostEqual(a, b Host) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case HostDomain:
		return a.Domain == b.Domain
	case HostIPv4:
		return a.IPv4 == b.IPv4
	case HostIPv6:
		return a.IPv6 == b.IPv6
	case HostOpaque:
		return a.Opaque == b.Opaque
	default:
		return true
	}
}

func portEqual(a, b *uint16) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func stringPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func pathEqual(a, b Path) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == PathOpaque {
		return a.Opaque == b.Opaque
	}
	if len(a.Segments) != len(b.Segments) {
		return false
	}
	for i := range a.Segments {
		if a.Segments[i] != b.Segments[i] {
			return false
		}
	}
	return true
}

// String returns the canonical serialization of u, equivalent to
// SerializeURL(u).
func (u *URL) String() string {
	return SerializeURL(u)
}

// ParseURL parses input (optionally resolved against base) into a URL
// value, per the Basic URL Parser of spec.md §4.4. base may be nil.
func ParseURL(input string, base *URL) (*URL, error) {
	return parseURL(input, base)
}

// MustParseURL is as ParseURL but panics on error, for call sites that
// hold a compile-time-constant or otherwise known-good URL string.
func MustParseURL(input string, base *URL) *URL {
	u, err := ParseURL(input, base)
	if err != nil {
		panic(err)
	}
	return u
}

// TryParseURL is as ParseURL but returns nil instead of an error.
func TryParseURL(input string, base *URL) *URL {
	u, err := ParseURL(input, base)
	if err != nil {
		return nil
	}
	return u
}

// trimC0AndSpace strips leading and trailing ASCII space/tab/C0-control
// bytes, the preprocessing step of spec.md §4.4. It also strips any tab
// or newline from anywhere in the string, per the WHATWG algorithm's
// "remove all ASCII tab or newline" step.
func trimC0AndSpace(s string) string {
	start := 0
	for start < len(s) && isC0OrSpace(rune(s[start])) {
		start++
	}
	end := len(s)
	for end > start && isC0OrSpace(rune(s[end-1])) {
		end--
	}
	s = s[start:end]
	if !strings.ContainsAny(s, "\t\n\r") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !isASCIITabOrNewline(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
