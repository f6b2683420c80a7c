/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package percent implements the byte level percent-encoding used by every URL component.
package percent

type (
	// EncodeSet selects which bytes, besides controls and non-ASCII, get percent-encoded.
	// The named sets nest: Simple, Default, UserInfo, Password, Username,
	// each one encoding everything the previous one does plus a few delimiters.
	EncodeSet int
)

const (
	// SimpleEncodeSet only encodes C0 controls, DEL and non-ASCII bytes.
	SimpleEncodeSet EncodeSet = iota
	// DefaultEncodeSet adds space, '"', '#', '<', '>', '?' and '`'.
	DefaultEncodeSet
	// UserInfoEncodeSet adds '@'.
	UserInfoEncodeSet
	// PasswordEncodeSet adds '/' and '\'.
	PasswordEncodeSet
	// UsernameEncodeSet adds ':'.
	UsernameEncodeSet
	// QueryEncodeSet is DefaultEncodeSet with '?' left alone.
	QueryEncodeSet

	upperHex = "0123456789ABCDEF"
)
