/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package host

import "unicode/utf8"

func isFullStop(r rune) bool {
	for _, stop := range fullStops {
		if r == stop {
			return true
		}
	}
	return false
}

// splitLabels splits s on every full stop, keeping empty labels
// so that "a..b" and "example.com." serialize back unchanged.
func splitLabels(s string) []string {
	labels := make([]string, 0, 4)
	start := 0
	for i, r := range s {
		if isFullStop(r) {
			labels = append(labels, s[start:i])
			start = i + utf8.RuneLen(r)
		}
	}
	return append(labels, s[start:])
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
