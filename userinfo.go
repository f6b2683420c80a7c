/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import "strings"

// Username returns the encoded username.
func (u *UserInfo) Username() string {
	if u == nil {
		return ""
	}
	return u.username
}

// Password returns the encoded password in case it is set, and whether it is set.
func (u *UserInfo) Password() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.password, u.passwordSet
}

// IsEmpty reports whether u serializes to nothing: no username and no password.
func (u *UserInfo) IsEmpty() bool {
	return u == nil || u.username == "" && !u.passwordSet
}

// String returns the userinfo in the form "username[:password]",
// without the trailing '@'.
func (u *UserInfo) String() string {
	if u == nil {
		return ""
	}
	var buf strings.Builder
	u.appendTo(&buf)
	return buf.String()
}

func (u *UserInfo) appendTo(buf *strings.Builder) {
	buf.WriteString(u.username)
	if u.passwordSet {
		buf.WriteByte(':')
		buf.WriteString(u.password)
	}
}
