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

//nolint:testpackage // white-box test for unexported parsing helpers.
package weburl

import "testing"

// ParseHost itself still accepts an empty host for any scheme (file:
// URLs legitimately have one); parser.go's parseHostAndPort is what
// rejects an empty host for special non-file schemes before ever
// calling ParseHost, see TestParseURLErrors in weburl_test.go.
func TestParseHostDispatch(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		isSpecial bool
		wantKind  HostKind
		wantErr   bool
	}{
		{"empty", "", true, HostEmpty, false},
		{"ipv4 literal", "192.168.1.1", true, HostIPv4, false},
		{"ipv6 bracketed", "[::1]", true, HostIPv6, false},
		{"ipv6 missing close bracket", "[::1", true, HostEmpty, true},
		{"domain", "example.com", true, HostDomain, false},
		{"non-special opaque", "example.com", false, HostOpaque, false},
		{"forbidden code point", "exa mple.com", true, HostEmpty, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHost(tt.input, tt.isSpecial)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHost(%q, %v) error = %v, wantErr %v", tt.input, tt.isSpecial, err, tt.wantErr)
			}
			if err == nil && got.Kind != tt.wantKind {
				t.Errorf("ParseHost(%q, %v).Kind = %v, want %v", tt.input, tt.isSpecial, got.Kind, tt.wantKind)
			}
		})
	}
}

func TestSerializeHostRoundTrip(t *testing.T) {
	tests := []struct {
		input     string
		isSpecial bool
	}{
		{"192.168.1.1", true},
		{"[2001:db8::1]", true},
		{"example.com", true},
		{"example.com", false},
	}
	for _, tt := range tests {
		h, err := ParseHost(tt.input, tt.isSpecial)
		if err != nil {
			t.Fatalf("ParseHost(%q): %v", tt.input, err)
		}
		if got := SerializeHost(h); got != tt.input {
			t.Errorf("SerializeHost(ParseHost(%q)) = %q, want %q", tt.input, got, tt.input)
		}
	}
}

func TestIsForbiddenHostCodePoint(t *testing.T) {
	forbidden := []rune{0x00, '\t', '\n', '\r', ' ', '#', '/', ':', '<', '>', '?', '@', '[', '\\', ']', '^', '|'}
	for _, r := range forbidden {
		if !isForbiddenHostCodePoint(r) {
			t.Errorf("isForbiddenHostCodePoint(%q) = false, want true", r)
		}
	}
	allowed := []rune{'a', 'Z', '0', '-', '.', '_', '~'}
	for _, r := range allowed {
		if isForbiddenHostCodePoint(r) {
			t.Errorf("isForbiddenHostCodePoint(%q) = true, want false", r)
		}
	}
}
