/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package form converts between a raw query string and ordered name/value pairs,
// using the application/x-www-form-urlencoded rules.
package form

import (
	"strings"

	"github.com/badu/url/percent"
)

// Pair is one name/value entry of a query. Order and duplicates are kept.
type Pair struct {
	Name  string
	Value string
}

// Parse splits query on '&' and decodes each "name=value" piece.
// Empty pieces are skipped, a piece without '=' has an empty value,
// '+' stands for a space, escapes are decoded and invalid UTF-8 is replaced.
func Parse(query string) []Pair {
	var pairs []Pair
	for len(query) > 0 {
		piece := query
		if i := strings.IndexByte(query, '&'); i >= 0 {
			piece, query = query[:i], query[i+1:]
		} else {
			query = ""
		}
		if piece == "" {
			continue
		}
		name, value := piece, ""
		if i := strings.IndexByte(piece, '='); i >= 0 {
			name, value = piece[:i], piece[i+1:]
		}
		pairs = append(pairs, Pair{Name: decode(name), Value: decode(value)})
	}
	return pairs
}

// Serialize encodes pairs as "name=value" joined by '&'.
func Serialize(pairs []Pair) string {
	var buf strings.Builder
	for i, pair := range pairs {
		if i > 0 {
			buf.WriteByte('&')
		}
		encode(&buf, pair.Name)
		buf.WriteByte('=')
		encode(&buf, pair.Value)
	}
	return buf.String()
}

// Get returns the value of the first pair named name.
func Get(pairs []Pair, name string) (string, bool) {
	for _, pair := range pairs {
		if pair.Name == name {
			return pair.Value, true
		}
	}
	return "", false
}

func decode(s string) string {
	return percent.DecodeUTF8Lossy(percent.Decode([]byte(strings.ReplaceAll(s, "+", " "))))
}

func encode(buf *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ':
			buf.WriteByte('+')
		case shouldKeep(c):
			buf.WriteByte(c)
		default:
			percent.AppendEncodedByte(buf, c)
		}
	}
}

func shouldKeep(c byte) bool {
	if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' {
		return true
	}
	switch c {
	case '*', '-', '.', '_':
		return true
	}
	return false
}
