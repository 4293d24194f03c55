// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto/hmac"
	"crypto/sha512"

	"github.com/minio/sha256-simd"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
	"golang.org/x/text/unicode/norm"
)

// HashLen is the length of a message hash accepted for signing.
const HashLen = sha256.Size

// SHA256 returns the SHA-256 digest of b.
func SHA256(b []byte) []byte {
	h := sha256.Sum256(b)
	return h[:]
}

// SHA256String returns the SHA-256 digest of the NFKC normalized UTF-8
// encoding of s.  Strings which render identically therefore hash to the same
// value regardless of how they were composed.
func SHA256String(s string) []byte {
	return SHA256([]byte(norm.NFKC.String(s)))
}

// SHA512 returns the SHA-512 digest of b.
func SHA512(b []byte) []byte {
	h := sha512.Sum512(b)
	return h[:]
}

// SHA3_256 returns the FIPS 202 SHA3-256 digest of b.
func SHA3_256(b []byte) []byte {
	h := sha3.Sum256(b)
	return h[:]
}

// SHA3_256String returns the SHA3-256 digest of the NFKC normalized UTF-8
// encoding of s.
func SHA3_256String(s string) []byte {
	return SHA3_256([]byte(norm.NFKC.String(s)))
}

// Keccak256 returns the legacy Keccak-256 digest of b, which differs from
// SHA3-256 only in padding.
func Keccak256(b []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(b)
	return h.Sum(nil)
}

// RIPEMD160 returns the RIPEMD-160 digest of b.
func RIPEMD160(b []byte) []byte {
	h := ripemd160.New()
	h.Write(b)
	return h.Sum(nil)
}

// HMACSHA256 returns HMAC-SHA256 of msg keyed with key.
func HMACSHA256(key, msg []byte) []byte {
	return hmacSHA256(key, msg)
}

// hmacSHA256 returns HMAC-SHA256 keyed with key over the concatenation of
// the provided parts.
func hmacSHA256(key []byte, parts ...[]byte) []byte {
	h := hmac.New(sha256.New, key)
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}
