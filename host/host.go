/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package host

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/badu/url/percent"
)

func (e Error) Error() string { return string(e) }

// NewDomain returns a domain host made of a copy of labels.
func NewDomain(labels ...string) Host {
	return Host{kind: Domain, labels: append([]string(nil), labels...)}
}

// NewIPv6 returns an IPv6 host.
func NewIPv6(addr IPv6Address) Host {
	return Host{kind: IPv6, ipv6: addr}
}

// Parse parses the host part of an authority.
// Non-ASCII domain labels are rejected with ErrUnsupportedIdnaDomain.
func Parse(input string) (Host, error) {
	return ParseWith(input, nil)
}

// ParseWith is Parse, except that non-ASCII domain labels are handed to toASCII
// instead of being rejected. A nil toASCII behaves like Parse.
func ParseWith(input string, toASCII LabelMapper) (Host, error) {
	if len(input) == 0 {
		return Host{}, ErrEmptyHost
	}
	if input[0] == '[' {
		if len(input) < 2 || input[len(input)-1] != ']' {
			return Host{}, ErrInvalidIPv6Literal
		}
		addr, err := ParseIPv6(input[1 : len(input)-1])
		if err != nil {
			return Host{}, err
		}
		return NewIPv6(addr), nil
	}

	encoded := percent.Encode(input, percent.SimpleEncodeSet)
	decoded := percent.DecodeUTF8Lossy(percent.Decode([]byte(encoded)))

	labels := splitLabels(decoded)
	for i, label := range labels {
		if !isASCII(label) {
			if toASCII == nil {
				return Host{}, ErrUnsupportedIdnaDomain
			}
			ascii, err := toASCII(label)
			if err != nil {
				return Host{}, errors.Wrapf(err, "domain label %q", label)
			}
			if !isASCII(ascii) {
				return Host{}, ErrUnsupportedIdnaDomain
			}
			labels[i] = ascii
		}
	}
	return Host{kind: Domain, labels: labels}, nil
}

// Kind returns the variant held by h.
func (h Host) Kind() Kind { return h.kind }

// Labels returns a copy of the labels of a domain host, nil for IPv6 hosts.
func (h Host) Labels() []string {
	if h.kind != Domain {
		return nil
	}
	return append([]string(nil), h.labels...)
}

// IPv6 returns the address of an IPv6 host.
func (h Host) IPv6() (IPv6Address, bool) {
	if h.kind != IPv6 {
		return IPv6Address{}, false
	}
	return h.ipv6, true
}

// IsEmpty reports whether h is a domain without labels, as found in "file:///".
func (h Host) IsEmpty() bool {
	return h.kind == Domain && len(h.labels) == 0
}

// Equal reports whether h and o serialize to the same text.
func (h Host) Equal(o Host) bool {
	if h.kind != o.kind {
		return false
	}
	switch h.kind {
	case IPv6:
		return h.ipv6 == o.ipv6
	case Domain:
		if len(h.labels) != len(o.labels) {
			return false
		}
		for i := range h.labels {
			if h.labels[i] != o.labels[i] {
				return false
			}
		}
		return true
	}
	return false
}

// Serialize returns the canonical text of h: labels joined with '.',
// or the bracketed address.
func (h Host) Serialize() string {
	switch h.kind {
	case Domain:
		return strings.Join(h.labels, ".")
	case IPv6:
		var buf strings.Builder
		buf.WriteByte('[')
		h.ipv6.appendTo(&buf)
		buf.WriteByte(']')
		return buf.String()
	}
	panic("host: unknown kind")
}

func (h Host) String() string { return h.Serialize() }

func (k Kind) String() string {
	switch k {
	case Domain:
		return "domain"
	case IPv6:
		return "ipv6"
	}
	return "unknown"
}
