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

func TestParseIPv6Literal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    [8]uint16
		wantErr bool
	}{
		{"loopback", "::1", [8]uint16{0, 0, 0, 0, 0, 0, 0, 1}, false},
		{"all zero", "::", [8]uint16{}, false},
		{"doc example", "2001:db8::1", [8]uint16{0x2001, 0xdb8, 0, 0, 0, 0, 0, 1}, false},
		{"leading compress", "1::", [8]uint16{1, 0, 0, 0, 0, 0, 0, 0}, false},
		{"full eight pieces", "1:2:3:4:5:6:7:8", [8]uint16{1, 2, 3, 4, 5, 6, 7, 8}, false},
		{"embedded ipv4", "::ffff:192.168.1.1", [8]uint16{0, 0, 0, 0, 0, 0xffff, 0xc0a8, 0x0101}, false},
		{"leading lone colon invalid", ":1", [8]uint16{}, true},
		{"triple colon invalid", "1:::2", [8]uint16{}, true},
		{"too few pieces without compress invalid", "1:2:3", [8]uint16{}, true},
		{"nine pieces overflow", "1:2:3:4:5:6:7:8:9", [8]uint16{}, true},
		{"embedded ipv4 too many leading pieces", "1:2:3:4:5:6:7:192.168.1.1", [8]uint16{}, true},
		{"double compress invalid", "1::2::3", [8]uint16{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseIPv6Literal(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseIPv6Literal(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("parseIPv6Literal(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSerializeIPv6(t *testing.T) {
	tests := []struct {
		name  string
		input [8]uint16
		want  string
	}{
		{"loopback", [8]uint16{0, 0, 0, 0, 0, 0, 0, 1}, "::1"},
		{"all zero", [8]uint16{}, "::"},
		{"doc example", [8]uint16{0x2001, 0xdb8, 0, 0, 0, 0, 0, 1}, "2001:db8::1"},
		{"no compressible run", [8]uint16{1, 2, 3, 4, 5, 6, 7, 8}, "1:2:3:4:5:6:7:8"},
		{"single zero not compressed", [8]uint16{1, 0, 2, 3, 4, 5, 6, 7}, "1:0:2:3:4:5:6:7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := serializeIPv6(tt.input); got != tt.want {
				t.Errorf("serializeIPv6(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIPv6RoundTrip(t *testing.T) {
	inputs := []string{"::1", "2001:db8::1", "1:2:3:4:5:6:7:8", "::"}
	for _, in := range inputs {
		groups, err := parseIPv6Literal(in)
		if err != nil {
			t.Fatalf("parseIPv6Literal(%q): %v", in, err)
		}
		groups2, err := parseIPv6Literal(serializeIPv6(groups))
		if err != nil {
			t.Fatalf("re-parsing serialized form of %q: %v", in, err)
		}
		if groups != groups2 {
			t.Errorf("round trip of %q diverged: %v != %v", in, groups, groups2)
		}
	}
}
