/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/badu/url/host"
	"github.com/badu/url/percent"
	"github.com/badu/url/punycode"
)

// Log returns the logger syntax violations are reported to.
// It is built on first use from LogOutput, and discards everything when LogOutput is nil.
func (p *Parser) Log() *zerolog.Logger {
	p.initLogOnce.Do(func() {
		if p.LogOutput == nil {
			p.logger = zerolog.Nop()
			return
		}
		p.logger = zerolog.New(p.LogOutput).With().Timestamp().Logger()
	})
	return &p.logger
}

// Parse parses input, resolving it against p.Base when it is a relative reference.
// On failure the returned error is an *Error wrapping one of the ParseError or
// host.Error values, and no URL is returned.
func (p *Parser) Parse(input string) (*URL, error) {
	ps := &parser{Parser: p, input: input}
	u, err := ps.parse(ps.clean(input))
	if err != nil {
		return nil, &Error{Op: "parse", URL: input, Err: err}
	}
	return u, nil
}

func (p *parser) violation(msg string) {
	p.Log().Warn().Str("url", p.input).Msg(msg)
}

// clean strips leading and trailing C0 controls and spaces, and drops every tab and newline.
func (p *parser) clean(s string) string {
	trimmed := strings.TrimFunc(s, func(r rune) bool { return r <= 0x20 })
	if len(trimmed) != len(s) {
		p.violation("leading or trailing control or space")
	}
	if strings.ContainsAny(trimmed, "\t\n\r") {
		p.violation("tab or newline inside URL")
		trimmed = strings.Map(func(r rune) rune {
			switch r {
			case '\t', '\n', '\r':
				return -1
			}
			return r
		}, trimmed)
	}
	return trimmed
}

func (p *parser) parse(s string) (*URL, error) {
	scheme, rest, ok := splitScheme(s)
	if !ok {
		if p.Base == nil {
			if s == "" {
				return nil, ErrEmptyInput
			}
			return nil, ErrRelativeURLWithoutBase
		}
		return p.parseRelative(s, p.Base)
	}

	if !relativeSchemes[scheme] {
		return p.parseOpaque(scheme, rest)
	}
	if p.Base != nil && p.Base.Scheme == scheme && p.Base.IsRelative() && !hasDoubleSlash(rest) {
		p.violation("relative reference starting with the base scheme")
		return p.parseRelative(rest, p.Base)
	}
	return p.parseAbsolute(scheme, rest)
}

// parseOpaque handles "scheme:data[?query][#fragment]" for non relative schemes.
func (p *parser) parseOpaque(scheme, rest string) (*URL, error) {
	u := &URL{Scheme: scheme}
	data := p.splitQueryFragment(u, rest)
	u.Data = OtherSchemeData(percent.Encode(data, percent.SimpleEncodeSet))
	return u, nil
}

// parseAbsolute handles what follows "scheme:" for relative schemes when no base applies.
func (p *parser) parseAbsolute(scheme, rest string) (*URL, error) {
	if scheme == "file" {
		return p.parseFile(rest)
	}
	if !hasDoubleSlash(rest) {
		p.violation(`expected "//" after the scheme`)
	}
	rest = strings.TrimLeft(rest, `/\`)
	u := &URL{Scheme: scheme}
	r, remaining, err := p.parseAuthority(scheme, rest)
	if err != nil {
		return nil, err
	}
	r.Path = p.parsePath(p.splitQueryFragment(u, remaining), nil)
	if len(r.Path) == 0 {
		r.Path = []string{""}
	}
	u.Data = RelativeSchemeData(r)
	return u, nil
}

// parseFile handles file URLs: exactly two slashes introduce a host, which may be empty,
// any other count means the host is empty and the path starts right away.
func (p *parser) parseFile(rest string) (*URL, error) {
	u := &URL{Scheme: "file"}
	slashes := countSlashes(rest)
	if slashes == 2 {
		r, remaining, err := p.parseAuthority(u.Scheme, rest[2:])
		if err != nil {
			return nil, err
		}
		r.Path = p.parsePath(p.splitQueryFragment(u, remaining), nil)
		u.Data = RelativeSchemeData(r)
		return u, nil
	}
	if slashes > 2 {
		rest = rest[2:]
	}
	r := SchemeRelativeURL{Host: host.NewDomain()}
	r.Path = p.parsePath(p.splitQueryFragment(u, rest), nil)
	u.Data = RelativeSchemeData(r)
	return u, nil
}

// parseRelative resolves the reference s against base. The result keeps the base scheme.
func (p *parser) parseRelative(s string, base *URL) (*URL, error) {
	br, ok := base.Data.Relative()
	if !ok {
		if s == "" || s[0] != '#' {
			return nil, ErrRelativeURLWithNonRelativeBase
		}
		u := base.Clone()
		u.HasFragment = true
		u.Fragment = encodeFragment(s[1:])
		return u, nil
	}

	switch {
	case s == "":
		return base.WithoutFragment(), nil
	case hasDoubleSlash(s):
		return p.parseAbsolute(base.Scheme, s)
	}

	u := &URL{Scheme: base.Scheme}
	r := br.Clone()
	switch s[0] {
	case '/', '\\':
		r.Path = p.parsePath(p.splitQueryFragment(u, s), nil)
	case '?':
		p.splitQueryFragment(u, s)
	case '#':
		u.HasQuery, u.Query = base.HasQuery, base.Query
		p.splitQueryFragment(u, s)
	default:
		dir := r.Path
		if len(dir) > 0 {
			dir = dir[:len(dir)-1]
		}
		r.Path = p.parsePath(p.splitQueryFragment(u, s), dir)
	}
	u.Data = RelativeSchemeData(r)
	return u, nil
}

// parseAuthority reads "[userinfo@]host[:port]" up to the first '/', '\', '?' or '#'
// and returns what follows it.
func (p *parser) parseAuthority(scheme, s string) (SchemeRelativeURL, string, error) {
	end := strings.IndexAny(s, `/\?#`)
	if end < 0 {
		end = len(s)
	}
	authority, remaining := s[:end], s[end:]

	var r SchemeRelativeURL
	if i := strings.LastIndexByte(authority, '@'); i >= 0 {
		r.UserInfo = parseUserInfo(authority[:i])
		authority = authority[i+1:]
	}

	hostText, port, hasPort := splitHostPort(authority)
	if hasPort {
		var err error
		if r.Port, err = parsePort(port); err != nil {
			return SchemeRelativeURL{}, "", err
		}
	}

	if hostText == "" {
		if scheme != "file" {
			return SchemeRelativeURL{}, "", host.ErrEmptyHost
		}
		r.Host = host.NewDomain()
		return r, remaining, nil
	}
	var mapper host.LabelMapper
	if p.IDNA {
		mapper = punycode.Mapper
	}
	h, err := host.ParseWith(hostText, mapper)
	if err != nil {
		return SchemeRelativeURL{}, "", err
	}
	for _, label := range h.Labels() {
		if strings.IndexFunc(label, isForbiddenHostRune) >= 0 {
			return SchemeRelativeURL{}, "", ErrInvalidDomainCharacter
		}
	}
	r.Host = h
	return r, remaining, nil
}

// splitQueryFragment stores the query and fragment of s in u and returns what precedes them.
func (p *parser) splitQueryFragment(u *URL, s string) string {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		u.HasFragment = true
		u.Fragment = encodeFragment(s[i+1:])
		s = s[:i]
	}
	if i := strings.IndexByte(s, '?'); i >= 0 {
		u.HasQuery = true
		u.Query = percent.Encode(s[i+1:], percent.QueryEncodeSet)
		s = s[:i]
	}
	return s
}

// parsePath appends the segments of path to a copy of dir, resolving dot segments.
// A leading slash is dropped; backslashes separate segments like slashes do.
func (p *parser) parsePath(path string, dir []string) []string {
	segments := append([]string(nil), dir...)
	if path == "" {
		return segments
	}
	if strings.IndexByte(path, '\\') >= 0 {
		p.violation("backslash used as path separator")
	}
	if path[0] == '/' || path[0] == '\\' {
		path = path[1:]
	}
	for {
		end := strings.IndexAny(path, `/\`)
		last := end < 0
		part := path
		if !last {
			part, path = path[:end], path[end+1:]
		}
		switch {
		case isDoubleDot(part):
			if len(segments) > 0 {
				segments = segments[:len(segments)-1]
			}
			if last {
				segments = append(segments, "")
			}
		case isSingleDot(part):
			if last {
				segments = append(segments, "")
			}
		default:
			segments = append(segments, percent.Encode(part, percent.DefaultEncodeSet))
		}
		if last {
			return segments
		}
	}
}
