/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import (
	"strings"

	"github.com/badu/url/form"
	"github.com/badu/url/host"
)

// RelativeSchemeData wraps the authority and path of a relative scheme URL.
func RelativeSchemeData(r SchemeRelativeURL) SchemeData {
	return SchemeData{kind: relativeData, relative: r}
}

// OtherSchemeData wraps the opaque text of a URL such as "mailto:" or "data:".
func OtherSchemeData(data string) SchemeData {
	return SchemeData{kind: otherData, other: data}
}

// IsRelative reports whether d holds a SchemeRelativeURL.
func (d SchemeData) IsRelative() bool { return d.kind == relativeData }

// Relative returns the SchemeRelativeURL held by d.
func (d SchemeData) Relative() (SchemeRelativeURL, bool) {
	if d.kind != relativeData {
		return SchemeRelativeURL{}, false
	}
	return d.relative, true
}

// Other returns the opaque text held by d.
func (d SchemeData) Other() (string, bool) {
	if d.kind != otherData {
		return "", false
	}
	return d.other, true
}

func (d SchemeData) clone() SchemeData {
	switch d.kind {
	case relativeData:
		return RelativeSchemeData(d.relative.Clone())
	case otherData:
		return d
	}
	panic("url: unknown scheme data")
}

// Clone returns a copy of r sharing no memory with it.
func (r SchemeRelativeURL) Clone() SchemeRelativeURL {
	c := r
	if r.UserInfo != nil {
		ui := *r.UserInfo
		c.UserInfo = &ui
	}
	c.Host = cloneHost(r.Host)
	c.Path = append([]string(nil), r.Path...)
	return c
}

func cloneHost(h host.Host) host.Host {
	switch h.Kind() {
	case host.Domain:
		return host.NewDomain(h.Labels()...)
	case host.IPv6:
		addr, _ := h.IPv6()
		return host.NewIPv6(addr)
	}
	panic("url: unknown host kind")
}

// Serialize returns the canonical text of u, including the fragment.
func (u *URL) Serialize() string {
	var buf strings.Builder
	u.appendNoFragment(&buf)
	if u.HasFragment {
		buf.WriteByte('#')
		buf.WriteString(u.Fragment)
	}
	return buf.String()
}

// SerializeNoFragment returns the canonical text of u without "#fragment".
//
// For relative schemes the result always has the form
//
//	scheme://[userinfo@]host[:port]/path[?query]
//
// where userinfo is left out when it holds neither a username nor a password,
// and the path is a single '/' when there are no segments.
func (u *URL) SerializeNoFragment() string {
	var buf strings.Builder
	u.appendNoFragment(&buf)
	return buf.String()
}

func (u *URL) appendNoFragment(buf *strings.Builder) {
	buf.WriteString(u.Scheme)
	buf.WriteByte(':')
	switch u.Data.kind {
	case relativeData:
		r := &u.Data.relative
		buf.WriteString(dblSlash)
		if !r.UserInfo.IsEmpty() {
			r.UserInfo.appendTo(buf)
			buf.WriteByte('@')
		}
		buf.WriteString(r.Host.Serialize())
		if r.Port != "" {
			buf.WriteByte(':')
			buf.WriteString(r.Port)
		}
		if len(r.Path) == 0 {
			buf.WriteByte('/')
		}
		for _, segment := range r.Path {
			buf.WriteByte('/')
			buf.WriteString(segment)
		}
	case otherData:
		buf.WriteString(u.Data.other)
	default:
		panic("url: unknown scheme data")
	}
	if u.HasQuery {
		buf.WriteByte('?')
		buf.WriteString(u.Query)
	}
}

// String is Serialize.
func (u *URL) String() string { return u.Serialize() }

// Clone returns a deep copy of u.
func (u *URL) Clone() *URL {
	c := *u
	c.Data = u.Data.clone()
	return &c
}

// IsRelative reports whether u uses a relative scheme, i.e. has an authority and a path.
func (u *URL) IsRelative() bool { return u.Data.IsRelative() }

// Hostname returns the serialized host, or "" for URLs without an authority.
func (u *URL) Hostname() string {
	if r, ok := u.Data.Relative(); ok {
		return r.Host.Serialize()
	}
	return ""
}

// Port returns the port digits, or "" when none was given.
func (u *URL) Port() string {
	if r, ok := u.Data.Relative(); ok {
		return r.Port
	}
	return ""
}

// Path returns the encoded path: the segments joined by '/' for relative schemes,
// the opaque data otherwise.
func (u *URL) Path() string {
	switch u.Data.kind {
	case relativeData:
		var buf strings.Builder
		if len(u.Data.relative.Path) == 0 {
			return "/"
		}
		for _, segment := range u.Data.relative.Path {
			buf.WriteByte('/')
			buf.WriteString(segment)
		}
		return buf.String()
	case otherData:
		return u.Data.other
	}
	panic("url: unknown scheme data")
}

// QueryPairs decodes the query into name/value pairs, in order.
func (u *URL) QueryPairs() []form.Pair {
	if !u.HasQuery {
		return nil
	}
	return form.Parse(u.Query)
}

// WithQuery returns a copy of u whose query is the encoding of pairs.
// A nil pairs removes the query.
func (u *URL) WithQuery(pairs []form.Pair) *URL {
	c := u.Clone()
	c.HasQuery = pairs != nil
	c.Query = form.Serialize(pairs)
	return c
}

// WithFragment returns a copy of u with the given fragment, encoded as Parse would.
func (u *URL) WithFragment(fragment string) *URL {
	c := u.Clone()
	c.HasFragment = true
	c.Fragment = encodeFragment(fragment)
	return c
}

// WithoutFragment returns a copy of u without its fragment.
func (u *URL) WithoutFragment() *URL {
	c := u.Clone()
	c.HasFragment = false
	c.Fragment = ""
	return c
}

// Parse parses a URL in the context of the receiver. The provided URL
// may be relative or absolute. Parse returns nil, err on parse failure.
func (u *URL) Parse(ref string) (*URL, error) {
	return (&Parser{Base: u}).Parse(ref)
}

func (u *URL) MarshalBinary() (text []byte, err error) {
	return []byte(u.Serialize()), nil
}

func (u *URL) UnmarshalBinary(text []byte) error {
	u1, err := Parse(string(text), nil)
	if err != nil {
		return err
	}
	*u = *u1
	return nil
}
