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

	"golang.org/x/text/unicode/bidi"
)

// validateDomainLabelBidi applies the structural half of the RFC 5893
// Bidi rule to a single already-Unicode-decoded domain label: a label
// containing any right-to-left character must start and end with a
// right-to-left character, and a label must not mix left-to-right and
// right-to-left letters.
func validateDomainLabelBidi(label string) bool {
	if label == "" {
		return true
	}

	runes := []rune(label)
	var hasLTR, hasRTL bool
	for _, r := range runes {
		switch class, _ := bidi.LookupRune(r); class.Class() {
		case bidi.R, bidi.AL:
			hasRTL = true
		case bidi.L:
			hasLTR = true
		}
	}

	if !hasRTL {
		return true
	}
	if hasLTR {
		return false
	}

	firstClass, _ := bidi.LookupRune(runes[0])
	lastClass, _ := bidi.LookupRune(runes[len(runes)-1])
	return isRTLClass(firstClass.Class()) && isRTLClass(lastClass.Class())
}

func isRTLClass(c bidi.Class) bool {
	return c == bidi.R || c == bidi.AL
}

// validateDomainBidi checks every dot-separated label of an already
// IDNA-decoded domain against validateDomainLabelBidi, returning the
// first offending label.
func validateDomainBidi(domain string) (string, bool) {
	for _, label := range strings.Split(domain, ".") {
		if !validateDomainLabelBidi(label) {
			return label, false
		}
	}
	return "", true
}
