/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import "github.com/badu/url/percent"

// User returns a UserInfo containing the provided username
// and no password set. The username is encoded as Parse would.
func User(username string) *UserInfo {
	return &UserInfo{username: percent.Encode(username, percent.UsernameEncodeSet)}
}

// UserPassword returns a UserInfo holding username and password.
// The username is encoded with the username set, so ':' becomes "%3A", and the
// password with the password set, exactly as Parse encodes an authority.
// The password travels in clear text in every serialization of the URL.
func UserPassword(username, password string) *UserInfo {
	return &UserInfo{
		username:    percent.Encode(username, percent.UsernameEncodeSet),
		password:    percent.Encode(password, percent.PasswordEncodeSet),
		passwordSet: true,
	}
}

// Parse parses input into a URL. Relative references are resolved against base,
// which may be nil when input is absolute.
func Parse(input string, base *URL) (*URL, error) {
	return (&Parser{Base: base}).Parse(input)
}

// MustParse is Parse without a base that panics on error.
// It is meant for URLs known at compile time.
func MustParse(input string) *URL {
	u, err := Parse(input, nil)
	if err != nil {
		panic(err)
	}
	return u
}
