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

// isASCIILetter checks if a rune is an ASCII letter.
func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// isASCIIDigit checks if a rune is an ASCII digit.
func isASCIIDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isASCIIAlphanumeric checks if a rune is an ASCII letter or digit.
func isASCIIAlphanumeric(r rune) bool {
	return isASCIILetter(r) || isASCIIDigit(r)
}

// isASCIIHexDigit checks if a rune is an ASCII hexadecimal digit.
func isASCIIHexDigit(r rune) bool {
	return isASCIIDigit(r) || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

// isSchemeChar checks if a rune may appear after the first character of a scheme.
func isSchemeChar(r rune) bool {
	return isASCIIAlphanumeric(r) || r == '+' || r == '-' || r == '.'
}

// isC0OrSpace checks for the ASCII C0 control range plus the space
// character, the set trimmed from both ends of the input per spec.md §4.4
// preprocessing.
func isC0OrSpace(r rune) bool {
	return r <= 0x20
}

// isASCIITabOrNewline checks for the three bytes the WHATWG algorithm
// strips from anywhere in the input before tokenizing: tab, LF, CR.
func isASCIITabOrNewline(r rune) bool {
	return r == '\t' || r == '\n' || r == '\r'
}

// hexVal returns the numeric value of an ASCII hex digit. The caller must
// have already validated r with isASCIIHexDigit.
func hexVal(r rune) byte {
	switch {
	case r >= '0' && r <= '9':
		return byte(r - '0')
	case r >= 'a' && r <= 'f':
		return byte(r-'a') + 10
	default:
		return byte(r-'A') + 10
	}
}
