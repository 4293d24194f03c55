// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

// BytesToBigInt interprets the provided bytes as an unsigned big-endian
// integer.  Leading zero bytes are ignored and an empty slice is zero.
func BytesToBigInt(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// BigIntToBytes returns the unsigned big-endian encoding of n.
//
// When size is positive, the result is left padded with zero bytes to exactly
// size bytes and an error is returned if the value does not fit.  Otherwise
// the minimal number of bytes is used, with zero encoded as a single 0x00
// byte.
func BigIntToBytes(n *big.Int, size int) ([]byte, error) {
	if n == nil || n.Sign() < 0 {
		return nil, makeError(ErrEncoding, "cannot encode a nil or negative "+
			"integer as unsigned bytes")
	}

	if size <= 0 {
		if n.Sign() == 0 {
			return []byte{0x00}, nil
		}
		return n.Bytes(), nil
	}

	natural := (n.BitLen() + 7) / 8
	if natural > size {
		str := fmt.Sprintf("integer needs %d bytes which exceeds the "+
			"requested length of %d", natural, size)
		return nil, makeError(ErrEncoding, str)
	}
	return n.FillBytes(make([]byte, size)), nil
}

// BigIntToHex returns the lower-case, even-length hex encoding of n without a
// 0x prefix.  Zero is encoded as "00".
func BigIntToHex(n *big.Int) (string, error) {
	b, err := BigIntToBytes(n, 0)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// HexToBigInt parses an unsigned hex string into a big integer.  An optional
// 0x prefix is accepted and an odd number of digits is treated as if it had a
// leading zero.
func HexToBigInt(s string) (*big.Int, error) {
	b, err := decodeHex(s)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(b), nil
}

// DecimalToBytes parses a base-10 unsigned integer string and returns its
// minimal big-endian encoding.
func DecimalToBytes(s string) ([]byte, error) {
	n, err := parseDecimal(s)
	if err != nil {
		return nil, err
	}
	return BigIntToBytes(n, 0)
}

// DecimalToHex parses a base-10 unsigned integer string and returns its
// lower-case, even-length hex encoding.
func DecimalToHex(s string) (string, error) {
	n, err := parseDecimal(s)
	if err != nil {
		return "", err
	}
	return BigIntToHex(n)
}

func parseDecimal(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok || n.Sign() < 0 {
		str := fmt.Sprintf("%q is not an unsigned base-10 integer", s)
		return nil, makeError(ErrEncoding, str)
	}
	return n, nil
}

// decodeHex decodes a hex string, tolerating a 0x prefix and odd length.
func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		str := fmt.Sprintf("invalid hex string: %v", err)
		return nil, makeError(ErrEncoding, str)
	}
	return b, nil
}
