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
	"strconv"
	"strings"
)

// parseIPv6Literal parses the interior of a bracketed IPv6 literal (the
// brackets themselves, and any "%zone-id" suffix, must already be
// stripped by the caller) into eight 16-bit groups, per spec.md §4.3's
// "RFC 4291 syntax with one WHATWG concession": an IPv4-dotted tail is
// permitted in the last two 16-bit pieces, and exactly one "::"
// compression is allowed.
func parseIPv6Literal(s string) ([8]uint16, error) {
	var addr [8]uint16
	pieceIndex := 0
	compress := -1

	i := 0
	if i < len(s) && s[i] == ':' {
		if len(s) < 2 || s[1] != ':' {
			return addr, errHost(HostErrInvalidIPv6, s)
		}
		i = 2
		pieceIndex = 1
		compress = 1
	}

	for i < len(s) {
		if pieceIndex == 8 {
			return addr, errHost(HostErrInvalidIPv6, s)
		}
		if s[i] == ':' {
			if compress != -1 {
				return addr, errHost(HostErrInvalidIPv6, s)
			}
			i++
			pieceIndex++
			compress = pieceIndex
			continue
		}

		// Try to read a 1-4 digit hex piece.
		start := i
		value := 0
		length := 0
		for i < len(s) && length < 4 && isASCIIHexDigit(rune(s[i])) {
			value = value*16 + int(hexVal(rune(s[i])))
			i++
			length++
		}

		if i < len(s) && s[i] == '.' {
			// This and the next piece are consumed by an embedded IPv4
			// dotted quad. Per spec.md §9's authoritative rule: at most
			// six 16-bit pieces may precede it (a "::" compression makes
			// up any shortfall).
			if length == 0 {
				return addr, errHost(HostErrInvalidIPv6, s)
			}
			if pieceIndex > 6 {
				return addr, errHost(HostErrInvalidIPv6, s)
			}
			v4, err := parseIPv6EmbeddedIPv4(s[start:])
			if err != nil {
				return addr, err
			}
			addr[pieceIndex] = uint16(v4[0])<<8 | uint16(v4[1])
			pieceIndex++
			addr[pieceIndex] = uint16(v4[2])<<8 | uint16(v4[3])
			pieceIndex++
			i = len(s)
			break
		}

		if length == 0 {
			return addr, errHost(HostErrInvalidIPv6, s)
		}

		addr[pieceIndex] = uint16(value)
		pieceIndex++

		if i < len(s) {
			if s[i] != ':' {
				return addr, errHost(HostErrInvalidIPv6, s)
			}
			i++
			if i >= len(s) {
				// Trailing single colon with no compression marker.
				return addr, errHost(HostErrInvalidIPv6, s)
			}
		}
	}

	if compress != -1 {
		swaps := pieceIndex - compress
		for j := 1; j <= swaps; j++ {
			addr[8-j], addr[compress+swaps-j] = addr[compress+swaps-j], addr[8-j]
			// zero the vacated slot once it has been read from, mirroring
			// the insert-gap-of-zeros shuffle of the reference algorithm;
			// when source and destination coincide nothing was vacated
			if compress+swaps-j != 8-j {
				addr[compress+swaps-j] = 0
			}
		}
	} else if pieceIndex != 8 {
		return addr, errHost(HostErrInvalidIPv6, s)
	}

	return addr, nil
}

// parseIPv6EmbeddedIPv4 parses the dotted-quad tail embedded in an IPv6
// literal. Unlike the WHATWG host IPv4 grammar, this tail is strictly
// four decimal parts, each 0-255: RFC 4291 does not carry over the
// hex/octal/single-number leniency of the top-level IPv4 parser.
func parseIPv6EmbeddedIPv4(s string) ([4]byte, error) {
	var out [4]byte
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return out, errHost(HostErrInvalidIPv6, s)
	}
	for i, part := range parts {
		if part == "" || len(part) > 3 {
			return out, errHost(HostErrInvalidIPv6, s)
		}
		if len(part) > 1 && part[0] == '0' {
			return out, errHost(HostErrInvalidIPv6, s)
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > 255 {
			return out, errHost(HostErrInvalidIPv6, s)
		}
		out[i] = byte(n)
	}
	return out, nil
}

// stripIPv6Zone truncates s at the first '%', discarding a zone ID, per
// spec.md §4.3 ("If a '%' appears, truncate at it").
func stripIPv6Zone(s string) string {
	if i := strings.IndexByte(s, '%'); i != -1 {
		return s[:i]
	}
	return s
}

// serializeIPv6 renders addr in RFC 5952 canonical form: the longest run
// of zero groups (length >= 2) is compressed with "::", hex groups are
// lowercase with no leading zeros, and the whole thing is wrapped in
// brackets by the caller (host.go), not here.
func serializeIPv6(addr [8]uint16) string {
	start, length := longestZeroRun(addr)

	var b strings.Builder
	if length < 2 {
		for i, piece := range addr {
			if i > 0 {
				b.WriteByte(':')
			}
			b.WriteString(strconv.FormatUint(uint64(piece), 16))
		}
		return b.String()
	}

	for i := 0; i < 8; {
		if i == start {
			b.WriteString("::")
			i += length
			continue
		}
		if i > 0 && i != start+length {
			b.WriteByte(':')
		}
		b.WriteString(strconv.FormatUint(uint64(addr[i]), 16))
		i++
	}
	return b.String()
}

// longestZeroRun finds the start index and length of the longest run of
// consecutive zero groups in addr. A run shorter than two groups is
// reported as length 0, since RFC 5952 forbids compressing a single
// zero group.
func longestZeroRun(addr [8]uint16) (start, length int) {
	bestStart, bestLen := -1, 0
	curStart, curLen := -1, 0
	for i := 0; i < 8; i++ {
		if addr[i] == 0 {
			if curLen == 0 {
				curStart = i
			}
			curLen++
			if curLen > bestLen {
				bestStart, bestLen = curStart, curLen
			}
		} else {
			curLen = 0
		}
	}
	if bestLen < 2 {
		return 0, 0
	}
	return bestStart, bestLen
}
