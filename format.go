// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// Format identifies the textual encoding used for keys, digests and
// signatures when they leave the package as strings.
type Format uint8

const (
	// FormatHex is lower-case hex without a prefix.  It is the default.
	FormatHex Format = iota

	// FormatBase64 is standard padded base64.
	FormatBase64

	// FormatRaw leaves the bytes untouched.
	FormatRaw
)

// String returns the name of the format.
func (f Format) String() string {
	switch f {
	case FormatHex:
		return "hex"
	case FormatBase64:
		return "base64"
	case FormatRaw:
		return "raw"
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// ParseFormat returns the Format with the given name.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "hex", "":
		return FormatHex, nil
	case "base64":
		return FormatBase64, nil
	case "raw":
		return FormatRaw, nil
	}
	str := fmt.Sprintf("unknown output format %q", name)
	return 0, makeError(ErrEncoding, str)
}

// Encode renders b in the format.
func (f Format) Encode(b []byte) string {
	switch f {
	case FormatBase64:
		return base64.StdEncoding.EncodeToString(b)
	case FormatRaw:
		return string(b)
	}
	return hex.EncodeToString(b)
}

// Decode reverses Encode.
func (f Format) Decode(s string) ([]byte, error) {
	switch f {
	case FormatHex:
		return decodeHex(s)
	case FormatBase64:
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			str := fmt.Sprintf("invalid base64 string: %v", err)
			return nil, makeError(ErrEncoding, str)
		}
		return b, nil
	case FormatRaw:
		return []byte(s), nil
	}
	str := fmt.Sprintf("unknown output format %v", f)
	return nil, makeError(ErrEncoding, str)
}
