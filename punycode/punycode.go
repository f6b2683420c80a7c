/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package punycode converts single domain labels between Unicode and their
// ASCII compatible "xn--" form. Hosts only use it when a caller opts in,
// see host.ParseWith.
package punycode

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/idna"

	"github.com/badu/url/host"
)

// Mapper is a host.LabelMapper performing IDNA ToASCII on one label.
var Mapper host.LabelMapper = ToASCII

// ToASCII converts label, e.g. "bücher" becomes "xn--bcher-kva".
// ASCII labels are returned unchanged.
func ToASCII(label string) (string, error) {
	if strings.ContainsAny(label, ".。．｡") {
		return "", errors.Errorf("punycode: %q is not a single label", label)
	}
	ascii, err := idna.Punycode.ToASCII(label)
	if err != nil {
		return "", errors.Wrap(err, "punycode: to ASCII")
	}
	return ascii, nil
}

// ToUnicode converts an "xn--" label back to Unicode.
func ToUnicode(label string) (string, error) {
	unicode, err := idna.Punycode.ToUnicode(label)
	if err != nil {
		return "", errors.Wrap(err, "punycode: to Unicode")
	}
	return unicode, nil
}
