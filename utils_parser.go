/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/badu/url/percent"
)

// splitScheme splits "scheme:rest". ok is false when s does not start with
// an ASCII letter followed by letters, digits, '+', '-' or '.' and a colon.
func splitScheme(s string) (scheme, rest string, ok bool) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' || c == '+' || c == '-' || c == '.':
			if i == 0 {
				return "", s, false
			}
		case c == ':':
			if i == 0 {
				return "", s, false
			}
			return strings.ToLower(s[:i]), s[i+1:], true
		default:
			return "", s, false
		}
	}
	return "", s, false
}

func isSlash(c byte) bool { return c == '/' || c == '\\' }

func hasDoubleSlash(s string) bool {
	return len(s) >= 2 && isSlash(s[0]) && isSlash(s[1])
}

func countSlashes(s string) int {
	n := 0
	for n < len(s) && isSlash(s[n]) {
		n++
	}
	return n
}

// splitHostPort separates "host[:port]". A bracketed host keeps its brackets; text
// after the closing bracket that is not ":port" stays in the host, which then
// fails to parse as an IPv6 literal.
func splitHostPort(authority string) (hostText, port string, hasPort bool) {
	if strings.HasPrefix(authority, "[") {
		end := strings.IndexByte(authority, ']')
		if end < 0 || end+1 == len(authority) || authority[end+1] != ':' {
			return authority, "", false
		}
		return authority[:end+1], authority[end+2:], true
	}
	if i := strings.IndexByte(authority, ':'); i >= 0 {
		return authority[:i], authority[i+1:], true
	}
	return authority, "", false
}

// parsePort checks that port only holds ASCII digits and removes leading zeros.
func parsePort(port string) (string, error) {
	for i := 0; i < len(port); i++ {
		if port[i] < '0' || port[i] > '9' {
			return "", errors.Wrapf(ErrInvalidPort, "%q", port)
		}
	}
	if port == "" {
		return "", nil
	}
	port = strings.TrimLeft(port, "0")
	if port == "" {
		return "0", nil
	}
	return port, nil
}

func parseUserInfo(s string) *UserInfo {
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return &UserInfo{
			username:    percent.Encode(s[:i], percent.UsernameEncodeSet),
			password:    percent.Encode(s[i+1:], percent.PasswordEncodeSet),
			passwordSet: true,
		}
	}
	return &UserInfo{username: percent.Encode(s, percent.UsernameEncodeSet)}
}

func encodeFragment(s string) string {
	return percent.Encode(s, percent.SimpleEncodeSet)
}

func isSingleDot(s string) bool {
	return s == "." || strings.EqualFold(s, "%2e")
}

func isDoubleDot(s string) bool {
	switch strings.ToLower(s) {
	case "..", ".%2e", "%2e.", "%2e%2e":
		return true
	}
	return false
}

// isForbiddenHostRune reports whether r may not appear in a decoded domain label.
func isForbiddenHostRune(r rune) bool {
	if r <= 0x20 || r == 0x7F {
		return true
	}
	switch r {
	case '#', '%', '/', ':', '?', '@', '[', '\\', ']':
		return true
	}
	return false
}
