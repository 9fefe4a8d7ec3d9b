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

//nolint:testpackage // white-box test for unexported bidi helpers.
package weburl

import "testing"

func TestValidateDomainLabelBidi(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  bool
	}{
		{"empty", "", true},
		{"plain ascii", "example", true},
		{"pure rtl hebrew", "אבג", true},
		{"pure rtl arabic", "ابج", true},
		{"mixed ltr and rtl", "aאb", false},
		{"rtl label starting with ltr", "aאב", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validateDomainLabelBidi(tt.label); got != tt.want {
				t.Errorf("validateDomainLabelBidi(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestValidateDomainBidi(t *testing.T) {
	if _, ok := validateDomainBidi("example.com"); !ok {
		t.Error("validateDomainBidi(example.com) = false, want true")
	}
	if label, ok := validateDomainBidi("xא.example"); ok {
		t.Error("validateDomainBidi(mixed-direction label) = true, want false")
	} else if label != "xא" {
		t.Errorf("validateDomainBidi offending label = %q, want %q", label, "xא")
	}
}
