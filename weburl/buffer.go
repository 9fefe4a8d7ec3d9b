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

import "strings"

// scratchBuffer is the parser's scheme accumulator ("buf" in spec.md
// §4.4): the lowercased scheme name is built up here before it is moved
// into the URL's Scheme field. The authority, path, query and fragment
// states use their own local builders. It is call-scoped and never
// retained past a single parse.
type scratchBuffer struct {
	b strings.Builder
}

func (s *scratchBuffer) writeRune(r rune) { s.b.WriteRune(r) }
func (s *scratchBuffer) String() string   { return s.b.String() }
func (s *scratchBuffer) reset()           { s.b.Reset() }
