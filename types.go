/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package url parses URLs following an early draft of the WHATWG URL Standard
// and serializes them back to their canonical text.
//
// Serialization is the exact inverse of parsing: for any URL produced by Parse,
// parsing u.Serialize() again yields a URL with the same serialization.
package url

import (
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/badu/url/host"
)

type (
	// Error reports an error and the operation and URL that caused it.
	Error struct {
		Op  string
		URL string
		Err error
	}

	// ParseError is a grammar failure. The values are the constants below.
	ParseError string

	dataKind int

	// A URL is a parsed, absolute URL. The general forms are:
	//
	//	scheme://[username[:password]@]host[:port]/path[?query][#fragment]
	//	scheme:opaque[?query][#fragment]
	//
	// The first form is used by relative schemes (http, file, ...), the second by
	// every other scheme (mailto, data, ...).
	//
	// URLs are values: nothing in this package modifies one after Parse returns it.
	// The With* methods return modified copies.
	URL struct {
		Scheme      string     // lower case, never contains ':'
		Data        SchemeData // everything between "scheme:" and '?'
		Query       string     // encoded query, without '?'
		HasQuery    bool       // a '?' is present, even if Query is empty
		Fragment    string     // encoded fragment, without '#'
		HasFragment bool       // a '#' is present, even if Fragment is empty
	}

	// SchemeData holds either a SchemeRelativeURL (relative schemes) or
	// the opaque text following the colon (every other scheme).
	SchemeData struct {
		kind     dataKind
		relative SchemeRelativeURL
		other    string
	}

	// SchemeRelativeURL is the authority and path of a relative scheme URL.
	SchemeRelativeURL struct {
		UserInfo *UserInfo // nil when absent
		Host     host.Host // may only be an empty domain for file URLs
		Port     string    // ASCII digits, empty when not given
		Path     []string  // encoded segments; only file URLs have none
	}

	// The UserInfo type is an immutable encapsulation of username and
	// password details for a URL. An existing UserInfo value is guaranteed
	// to have a username set (potentially empty), and optionally a password.
	// Both are stored encoded.
	UserInfo struct {
		username    string
		password    string
		passwordSet bool
	}

	// Parser holds the settings of a parse. The zero value parses absolute URLs,
	// rejects non-ASCII domains and does not log.
	// A Parser must not be copied after first use; share it through a pointer.
	Parser struct {
		// Base is the URL relative references are resolved against.
		Base *URL
		// IDNA maps non-ASCII domain labels to punycode instead of rejecting them.
		IDNA bool
		// LogOutput receives non fatal syntax violations. Nil disables logging.
		LogOutput io.Writer

		initLogOnce sync.Once
		logger      zerolog.Logger
	}

	// parser is the state of a single Parse call.
	parser struct {
		*Parser
		input string
	}
)

const (
	relativeData dataKind = iota
	otherData

	ErrRelativeURLWithoutBase         ParseError = "relative URL without a base"
	ErrRelativeURLWithNonRelativeBase ParseError = "relative URL with a non-relative base"
	ErrInvalidPort                    ParseError = "invalid port number"
	ErrEmptyInput                     ParseError = "empty input"
	ErrInvalidDomainCharacter         ParseError = "invalid domain character" // e.g. "a%2Fb", which would read back as "a/b"

	dblSlash = "//"
)

// relativeSchemes are the schemes parsed into a SchemeRelativeURL.
var relativeSchemes = map[string]bool{
	"ftp":    true,
	"file":   true,
	"gopher": true,
	"http":   true,
	"https":  true,
	"ws":     true,
	"wss":    true,
}
