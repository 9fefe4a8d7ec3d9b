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

// parserInput provides a reader-like interface over the input string,
// allowing for peeking, advancing, rewinding, and position tracking.
// Rewinding goes through seekTo, which accepts any byte offset into the
// original string rather than only a fresh string.
type parserInput struct {
	original string
	reader   *strings.Reader
}

// newParserInput creates a new parserInput wrapping the given string.
func newParserInput(s string) *parserInput {
	return &parserInput{original: s, reader: strings.NewReader(s)}
}

// next reads and returns the next rune from the input, advancing the position.
func (p *parserInput) next() (rune, bool) {
	r, _, err := p.reader.ReadRune()
	return r, err == nil
}

// peek returns the next rune from the input without advancing the position.
func (p *parserInput) peek() (rune, bool) {
	r, _, err := p.reader.ReadRune()
	if err != nil {
		return 0, false
	}
	_ = p.reader.UnreadRune()
	return r, true
}

// startsWith checks if the remaining input starts with the given rune.
func (p *parserInput) startsWith(r rune) bool {
	pr, ok := p.peek()
	return ok && pr == r
}

// position returns the current read position in bytes from the start of
// the original string.
func (p *parserInput) position() int {
	return len(p.original) - p.reader.Len()
}

// rest returns the unread portion of the input string.
func (p *parserInput) rest() string {
	return p.original[p.position():]
}

// seekTo rewinds or advances the reader to byte offset pos of the
// original string. The parser uses it only for the scheme state's
// restart at no-scheme from offset 0; the other states look ahead with
// peek instead of pushing a code point back.
func (p *parserInput) seekTo(pos int) {
	p.reader = strings.NewReader(p.original[pos:])
}

