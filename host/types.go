/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package host parses and serializes the host of a URL authority: a domain made of
// ASCII labels or a bracketed IPv6 literal.
package host

type (
	// Kind tells which variant a Host holds.
	Kind int

	// Host is either a domain (a list of labels) or an IPv6 address.
	// Hosts are values; Labels hands out copies, so nothing can reach inside one.
	Host struct {
		kind   Kind
		labels []string
		ipv6   IPv6Address
	}

	// IPv6Address holds the eight 16 bit pieces of an address.
	// Whether the textual form was abbreviated is not kept, see Serialize.
	IPv6Address [8]uint16

	// LabelMapper turns a non-ASCII domain label into its ASCII form.
	LabelMapper func(label string) (string, error)

	// Error is a host parsing failure. The values are the constants below.
	Error string
)

const (
	// Domain hosts hold labels. A domain without labels only occurs in file URLs.
	Domain Kind = iota
	// IPv6 hosts hold an IPv6Address.
	IPv6

	ErrEmptyHost             Error = "empty host"
	ErrInvalidIPv6Literal    Error = "invalid IPv6 literal: missing closing bracket"
	ErrInvalidIPv6Address    Error = "invalid IPv6 address"
	ErrUnsupportedIdnaDomain Error = "non-ASCII domains (IDNA) are not supported"
)

// fullStops are the code points that separate domain labels.
var fullStops = [...]rune{'.', '。', '．', '｡'}
