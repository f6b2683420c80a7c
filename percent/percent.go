/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package percent

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// Contains reports whether b must be percent-encoded under the set.
func (s EncodeSet) Contains(b byte) bool {
	if b < 0x20 || b > 0x7E {
		return true
	}
	switch b {
	case ' ', '"', '#', '<', '>', '`':
		return s != SimpleEncodeSet
	case '?':
		return s != SimpleEncodeSet && s != QueryEncodeSet
	case '@':
		return s == UserInfoEncodeSet || s == PasswordEncodeSet || s == UsernameEncodeSet
	case '/', '\\':
		return s == PasswordEncodeSet || s == UsernameEncodeSet
	case ':':
		return s == UsernameEncodeSet
	}
	return false
}

func (s EncodeSet) String() string {
	switch s {
	case SimpleEncodeSet:
		return "simple"
	case DefaultEncodeSet:
		return "default"
	case UserInfoEncodeSet:
		return "userinfo"
	case PasswordEncodeSet:
		return "password"
	case UsernameEncodeSet:
		return "username"
	case QueryEncodeSet:
		return "query"
	}
	return "unknown"
}

// Encode returns s with every byte in the set replaced by its %XX escape.
func Encode(s string, set EncodeSet) string {
	var buf strings.Builder
	buf.Grow(len(s))
	AppendEncoded(&buf, s, set)
	return buf.String()
}

// AppendEncoded writes s to buf, escaping the bytes the set selects.
// Input bytes above 0x7E are always escaped, so buf only ever receives ASCII.
func AppendEncoded(buf *strings.Builder, s string, set EncodeSet) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if set.Contains(c) {
			AppendEncodedByte(buf, c)
			continue
		}
		buf.WriteByte(c)
	}
}

// AppendEncodedByte writes the three byte escape of c, using upper case hex digits.
func AppendEncodedByte(buf *strings.Builder, c byte) {
	buf.WriteByte('%')
	buf.WriteByte(ToHexUpper(c >> 4))
	buf.WriteByte(ToHexUpper(c & 0x0F))
}

// Decode replaces every "%XX" escape with the byte it names.
// Malformed escapes (a '%' not followed by two hex digits) are copied as is, so Decode never fails.
func Decode(input []byte) []byte {
	output := make([]byte, 0, len(input))
	for i := 0; i < len(input); i++ {
		c := input[i]
		if c == '%' && i+2 < len(input) {
			h, hok := FromHex(input[i+1])
			l, lok := FromHex(input[i+2])
			if hok && lok {
				output = append(output, h<<4|l)
				i += 2
				continue
			}
		}
		output = append(output, c)
	}
	return output
}

// DecodeString is Decode for strings. The result may hold invalid UTF-8.
func DecodeString(s string) string {
	if strings.IndexByte(s, '%') < 0 {
		return s
	}
	return string(Decode([]byte(s)))
}

// DecodeUTF8Lossy decodes b as UTF-8, replacing invalid sequences with U+FFFD.
func DecodeUTF8Lossy(b []byte) string {
	// The UTF-8 decoder substitutes U+FFFD itself and never reports an error.
	decoded, _ := unicode.UTF8.NewDecoder().Bytes(b)
	return string(decoded)
}

// FromHex returns the value of the hex digit c.
func FromHex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// ToHexUpper returns the upper case hex digit for a nibble.
// Callers only pass values in 0..15; anything else is a bug and panics.
func ToHexUpper(nibble byte) byte {
	if nibble > 0x0F {
		panic("percent: nibble out of range")
	}
	return upperHex[nibble]
}
