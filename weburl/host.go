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
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// HostKind discriminates the five cases of the Host tagged variant
// (spec.md §3).
type HostKind int

const (
	HostEmpty HostKind = iota
	HostDomain
	HostIPv4
	HostIPv6
	HostOpaque
)

func (k HostKind) String() string {
	switch k {
	case HostDomain:
		return "domain"
	case HostIPv4:
		return "ipv4"
	case HostIPv6:
		return "ipv6"
	case HostOpaque:
		return "opaque"
	default:
		return "empty"
	}
}

// Host is the tagged variant of spec.md §3: Domain, IPv4, IPv6, Opaque,
// or Empty. Only the field matching Kind is meaningful.
type Host struct {
	Kind   HostKind
	Domain string
	IPv4   [4]byte
	IPv6   [8]uint16
	Opaque string
}

// idnaProfile performs domain validation and A-labelling. It is the
// concrete instance of spec.md §1's external collaborator
// validate_domain(s) -> Domain | error.
var idnaProfile = idna.New(
	idna.ValidateLabels(true),
	idna.VerifyDNSLength(true),
	idna.CheckHyphens(true),
	idna.Transitional(false),
)

// ParseHost is the host-parsing entry point of spec.md §4.3. isSpecial
// tells it which of the domain/IPv4 grammar versus the opaque-host
// grammar to use.
func ParseHost(s string, isSpecial bool) (Host, error) {
	if s == "" {
		return Host{Kind: HostEmpty}, nil
	}

	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return Host{}, errHost(HostErrIPv6BracketMismatch, s)
		}
		inner := stripIPv6Zone(s[1 : len(s)-1])
		groups, err := parseIPv6Literal(inner)
		if err != nil {
			return Host{}, err
		}
		return Host{Kind: HostIPv6, IPv6: groups}, nil
	}

	if isSpecial {
		if looksLikeIPv4Candidate(s) {
			octets, err := parseIPv4WHATWG(s)
			if err != nil {
				return Host{}, err
			}
			return Host{Kind: HostIPv4, IPv4: octets}, nil
		}
		return parseDomainHost(s)
	}

	return parseOpaqueHost(s)
}

// parseDomainHost percent-decodes s and hands it to the IDNA collaborator.
func parseDomainHost(s string) (Host, error) {
	decoded := PercentDecodeToString(s)
	if decoded == "" {
		return Host{}, errHost(HostErrEmptyHostNotAllowed, s)
	}
	for _, r := range decoded {
		if isForbiddenHostCodePoint(r) {
			return Host{}, errForbiddenHostChar(r)
		}
	}

	// Normalize to NFC before handing the label string to the IDNA
	// collaborator, the same "normalize-then-IDNA" shape the teacher
	// uses in its own host normalization path.
	normalized := norm.NFC.String(decoded)

	ascii, err := idnaProfile.ToASCII(normalized)
	if err != nil {
		return Host{}, errHost(HostErrInvalidDomain, s)
	}

	// The Bidi defense-in-depth check (bidi.go) runs on the Unicode form,
	// since the A-labels ("xn--...") carry no Bidi class of their own;
	// only the ASCII form is kept as Domain, per spec.md §4.3.
	unicodeForm, err := idnaProfile.ToUnicode(ascii)
	if err != nil {
		unicodeForm = ascii
	}
	if label, ok := validateDomainBidi(unicodeForm); !ok {
		return Host{}, errHost(HostErrBidiViolation, label)
	}
	return Host{Kind: HostDomain, Domain: ascii}, nil
}

// parseOpaqueHost percent-encodes s with the C0-control set for a
// non-special scheme's host, after checking for forbidden code points.
func parseOpaqueHost(s string) (Host, error) {
	for _, r := range s {
		if r != '%' && isForbiddenHostCodePoint(r) {
			return Host{}, errForbiddenHostChar(r)
		}
	}
	return Host{Kind: HostOpaque, Opaque: PercentEncodeString(s, IsC0ControlSet)}, nil
}

// isForbiddenHostCodePoint reports whether r can never legally appear in
// a domain or opaque host, even percent-encoded away. This is the WHATWG
// "forbidden host code point" set.
func isForbiddenHostCodePoint(r rune) bool {
	switch r {
	case 0x00, '\t', '\n', '\r', ' ', '#', '/', ':', '<', '>', '?', '@', '[', '\\', ']', '^', '|':
		return true
	default:
		return false
	}
}

// SerializeHost is the pure inverse of ParseHost (spec.md §4.3's
// Serialization rules).
func SerializeHost(h Host) string {
	switch h.Kind {
	case HostDomain:
		return h.Domain
	case HostIPv4:
		return serializeIPv4(h.IPv4)
	case HostIPv6:
		return "[" + serializeIPv6(h.IPv6) + "]"
	case HostOpaque:
		return h.Opaque
	default:
		return ""
	}
}
