/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package host

import (
	"strconv"
	"strings"

	"github.com/badu/url/percent"
)

// ParseIPv6 parses the text between the brackets of an IPv6 literal.
// Any malformed input yields ErrInvalidIPv6Address and a zero address.
func ParseIPv6(input string) (IPv6Address, error) {
	var pieces IPv6Address
	n := len(input)
	if n == 0 {
		return IPv6Address{}, ErrInvalidIPv6Address
	}

	piecePointer := 0
	compressPointer := -1
	i := 0
	if input[0] == ':' {
		if n < 2 || input[1] != ':' {
			return IPv6Address{}, ErrInvalidIPv6Address
		}
		i = 2
		piecePointer = 1
		compressPointer = 1
	}

	isIPv4 := false
	for i < n {
		if piecePointer == 8 {
			return IPv6Address{}, ErrInvalidIPv6Address
		}
		if input[i] == ':' {
			if compressPointer >= 0 {
				return IPv6Address{}, ErrInvalidIPv6Address
			}
			i++
			piecePointer++
			compressPointer = piecePointer
			continue
		}

		start := i
		end := start + 4
		if end > n {
			end = n
		}
		var value uint16
		for i < end {
			digit, ok := percent.FromHex(input[i])
			if !ok {
				break
			}
			value = value<<4 | uint16(digit)
			i++
		}
		if i < n {
			switch input[i] {
			case '.':
				if i == start {
					return IPv6Address{}, ErrInvalidIPv6Address
				}
				i = start
				isIPv4 = true
			case ':':
				i++
				if i == n {
					return IPv6Address{}, ErrInvalidIPv6Address
				}
			default:
				return IPv6Address{}, ErrInvalidIPv6Address
			}
		}
		if isIPv4 {
			break
		}
		pieces[piecePointer] = value
		piecePointer++
	}

	if isIPv4 {
		if piecePointer > 6 {
			return IPv6Address{}, ErrInvalidIPv6Address
		}
		for octet := 0; octet < 4; octet++ {
			if octet > 0 {
				if i >= n || input[i] != '.' {
					return IPv6Address{}, ErrInvalidIPv6Address
				}
				i++
			}
			start := i
			value := 0
			for i < n && isDigit(input[i]) {
				value = value*10 + int(input[i]-'0')
				if value > 255 {
					return IPv6Address{}, ErrInvalidIPv6Address
				}
				i++
			}
			if i == start {
				return IPv6Address{}, ErrInvalidIPv6Address
			}
			pieces[piecePointer] = pieces[piecePointer]<<8 | uint16(value)
			if octet == 1 || octet == 3 {
				piecePointer++
			}
		}
		if i != n {
			return IPv6Address{}, ErrInvalidIPv6Address
		}
	}

	if compressPointer < 0 {
		if piecePointer != 8 {
			return IPv6Address{}, ErrInvalidIPv6Address
		}
		return pieces, nil
	}

	// Move the pieces written after "::" to the end, leaving zeros in their place.
	swaps := piecePointer - compressPointer
	for last := 7; swaps > 0 && last > 0; last, swaps = last-1, swaps-1 {
		from := compressPointer + swaps - 1
		pieces[last], pieces[from] = pieces[from], pieces[last]
	}
	return pieces, nil
}

// MustParseIPv6 is ParseIPv6 for known good literals. It panics on error.
func MustParseIPv6(input string) IPv6Address {
	addr, err := ParseIPv6(input)
	if err != nil {
		panic(`host: ParseIPv6(` + strconv.Quote(input) + `): ` + err.Error())
	}
	return addr
}

// Serialize returns the canonical text of a: lower case hex pieces without
// leading zeros, the leftmost longest run of two or more zero pieces replaced by "::".
// IPv4-mapped addresses (::ffff:0:0/96) end in dotted decimal.
func (a IPv6Address) Serialize() string {
	var buf strings.Builder
	a.appendTo(&buf)
	return buf.String()
}

func (a IPv6Address) String() string { return a.Serialize() }

// IsIPv4Mapped reports whether a lies in ::ffff:0:0/96.
func (a IPv6Address) IsIPv4Mapped() bool {
	return a[0] == 0 && a[1] == 0 && a[2] == 0 && a[3] == 0 && a[4] == 0 && a[5] == 0xffff
}

func (a IPv6Address) appendTo(buf *strings.Builder) {
	if a.IsIPv4Mapped() {
		buf.WriteString("::ffff:")
		buf.WriteString(strconv.Itoa(int(a[6] >> 8)))
		buf.WriteByte('.')
		buf.WriteString(strconv.Itoa(int(a[6] & 0xff)))
		buf.WriteByte('.')
		buf.WriteString(strconv.Itoa(int(a[7] >> 8)))
		buf.WriteByte('.')
		buf.WriteString(strconv.Itoa(int(a[7] & 0xff)))
		return
	}

	compressStart, compressEnd := longestZeroSequence(a)
	for i := 0; i < 8; i++ {
		if i == compressStart {
			buf.WriteByte(':')
			if i == 0 {
				buf.WriteByte(':')
			}
			if compressEnd >= 8 {
				return
			}
			i = compressEnd
		}
		buf.WriteString(strconv.FormatUint(uint64(a[i]), 16))
		if i < 7 {
			buf.WriteByte(':')
		}
	}
}

// longestZeroSequence returns the bounds [start, end) of the first longest run
// of at least two zero pieces, or (-1, -1) when there is none.
func longestZeroSequence(a IPv6Address) (int, int) {
	longest, longestLength := -1, 1
	start := -1
	finish := func(end int) {
		if start >= 0 && end-start > longestLength {
			longest, longestLength = start, end-start
		}
	}
	for i, piece := range a {
		if piece == 0 {
			if start < 0 {
				start = i
			}
			continue
		}
		finish(i)
		start = -1
	}
	finish(8)
	if longest < 0 {
		return -1, -1
	}
	return longest, longest + longestLength
}
