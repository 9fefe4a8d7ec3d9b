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

// specialSchemePorts is the fixed table of spec.md §3: the six "special"
// schemes and their default ports. A scheme absent from this table is
// non-special. "file" has no default port, represented by ok=false from
// SchemeDefaultPort despite the scheme itself being special.
var specialSchemePorts = map[string]uint16{
	"ftp":   21,
	"http":  80,
	"https": 443,
	"ws":    80,
	"wss":   443,
	"file":  0,
}

// schemesWithNoDefaultPort holds the special schemes for which
// SchemeDefaultPort must report ok=false rather than a real port 0.
var schemesWithNoDefaultPort = map[string]bool{"file": true}

// SpecialSchemes lists the six special schemes in the fixed order they
// appear in spec.md §3's table. Callers get a copy; the backing table is
// not exported for mutation.
func SpecialSchemes() []string {
	return []string{"ftp", "http", "https", "ws", "wss", "file"}
}

// IsSpecialScheme reports whether scheme is one of the six special
// schemes of spec.md §3. scheme must already be lowercase.
func IsSpecialScheme(scheme string) bool {
	_, ok := specialSchemePorts[scheme]
	return ok
}

// SchemeDefaultPort returns the default port for scheme and true, or
// (0, false) if scheme is not special or has no default port (file:).
func SchemeDefaultPort(scheme string) (uint16, bool) {
	if schemesWithNoDefaultPort[scheme] {
		return 0, false
	}
	port, ok := specialSchemePorts[scheme]
	return port, ok
}

// isFileScheme is a small readability helper used throughout the parser.
func isFileScheme(scheme string) bool {
	return scheme == "file"
}
