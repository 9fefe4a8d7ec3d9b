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

// Package formurlencoded implements the application/x-www-form-urlencoded
// codec (WHATWG URL Living Standard §5): an ordered list of name/value
// pairs serialized to, and parsed from, the "&"/"="-delimited wire format
// HTML forms and URL query strings use.
//
// It sits beside weburl the way langtag sits beside iri in the codebase
// this was grounded on: a small, self-contained, registry-free port of
// one section of the standard, sharing nothing with the URL state machine
// beyond the percent-encoding rules in weburl's FormComponent set.
package formurlencoded

import (
	"fmt"
	"strings"

	"github.com/tridentweb/whaturl/weburl"
)

// Pair is one name/value entry of a form-urlencoded sequence.
type Pair struct {
	Name  string
	Value string
}

// Serialize renders pairs in order as an application/x-www-form-urlencoded
// string: each side is encoded under the form-component rule (ASCII
// alphanumerics and "* - . _" pass literally, space becomes "+", and
// everything else becomes uppercase "%XX" over its UTF-8 bytes), pairs are
// joined with "&", and within a pair name and value are joined with "=".
func Serialize(pairs []Pair) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = encodeComponent(p.Name) + "=" + encodeComponent(p.Value)
	}
	return strings.Join(parts, "&")
}

// encodeComponent percent-encodes s under the form-component set and then
// collapses the one escape sequence that rule treats specially: a literal
// space always encodes to "%20" under a byte-level encode set, and no
// other input byte can ever produce that exact triple, so the substitution
// back to "+" is safe as a post-pass.
func encodeComponent(s string) string {
	return strings.ReplaceAll(weburl.PercentEncodeString(s, weburl.IsFormComponentSet), "%20", "+")
}

// Parse is the tolerant entry point: s is split on "&" (empty runs
// discarded), each run split at most once on "=", and each side percent-
// decoded with "+" mapped to space before the escapes are resolved. A
// pair with a malformed percent escape on either side is dropped rather
// than surfaced, per spec's "parse" contract; use Decode for a strict
// entry that reports the failure instead.
func Parse(s string) []Pair {
	var pairs []Pair
	for _, run := range strings.Split(s, "&") {
		if run == "" {
			continue
		}
		name, value := splitOnce(run)
		dn, ok := decodeComponent(name)
		if !ok {
			continue
		}
		dv, ok := decodeComponent(value)
		if !ok {
			continue
		}
		pairs = append(pairs, Pair{Name: dn, Value: dv})
	}
	return pairs
}

// DecodeError is returned by Decode when a name or value contains a
// truncated or non-hex percent escape.
type DecodeError struct {
	PairIndex int    // index, among non-empty "&"-separated runs, of the failing pair
	Side      string // "name" or "value"
	Err       error  // the underlying *weburl.ParseError
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("formurlencoded: pair %d, %s: %v", e.PairIndex, e.Side, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decode is the strict entry point: it behaves like Parse but returns a
// *DecodeError identifying the first pair and side with a malformed
// percent escape, instead of silently dropping it.
func Decode(s string) ([]Pair, error) {
	var pairs []Pair
	index := 0
	for _, run := range strings.Split(s, "&") {
		if run == "" {
			continue
		}
		name, value := splitOnce(run)
		dn, err := decodeComponentStrict(name)
		if err != nil {
			return nil, &DecodeError{PairIndex: index, Side: "name", Err: err}
		}
		dv, err := decodeComponentStrict(value)
		if err != nil {
			return nil, &DecodeError{PairIndex: index, Side: "value", Err: err}
		}
		pairs = append(pairs, Pair{Name: dn, Value: dv})
		index++
	}
	return pairs, nil
}

// splitOnce splits run into (name, value) at the first "=", or returns
// (run, "") if there is none.
func splitOnce(run string) (string, string) {
	if idx := strings.IndexByte(run, '='); idx >= 0 {
		return run[:idx], run[idx+1:]
	}
	return run, ""
}

func decodeComponentStrict(s string) (string, error) {
	b, err := weburl.PercentDecodeStrict(strings.ReplaceAll(s, "+", " "))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeComponent(s string) (string, bool) {
	v, err := decodeComponentStrict(s)
	if err != nil {
		return "", false
	}
	return v, true
}
