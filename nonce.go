// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"bytes"
	"fmt"

	dcrsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/minio/sha256-simd"
)

var (
	// singleZero and singleOne are the separators used during RFC6979 nonce
	// generation.
	singleZero = []byte{0x00}
	singleOne  = []byte{0x01}

	// oneInitializer is the initial V of RFC6979 nonce generation.
	oneInitializer = bytes.Repeat([]byte{0x01}, sha256.Size)

	// zeroInitializer is the initial K of RFC6979 nonce generation.
	zeroInitializer = bytes.Repeat([]byte{0x00}, sha256.Size)
)

// NonceRFC6979 deterministically derives the signing nonce for the provided
// 32-byte message hash and 32-byte private key using HMAC-SHA256 as described
// by steps B through H2 of RFC 6979 section 3.2.
//
// Only the first candidate produced by step H is considered.  When that
// candidate is zero or not less than the group order, ErrInvalidNonce is
// returned instead of continuing with step H3.  Callers that want to retry
// must do so explicitly.
//
// The hash is used as is, it is not reduced modulo the group order first.
func NonceRFC6979(hash, privKey []byte) (*dcrsecp.ModNScalar, error) {
	if len(hash) != HashLen {
		str := fmt.Sprintf("hash must be %d bytes, got %d", HashLen,
			len(hash))
		return nil, makeError(ErrInvalidHashLen, str)
	}
	if len(privKey) != PrivKeyBytesLen {
		str := fmt.Sprintf("private key must be %d bytes, got %d",
			PrivKeyBytesLen, len(privKey))
		return nil, makeError(ErrInvalidPrivateKey, str)
	}

	// Step B and C.
	//
	// V = 0x01 0x01 0x01 ... 0x01
	// K = 0x00 0x00 0x00 ... 0x00
	v, k := oneInitializer, zeroInitializer

	// Step D.
	//
	// K = HMAC_K(V || 0x00 || int2octets(x) || h1)
	k = hmacSHA256(k, v, singleZero, privKey, hash)

	// Step E.
	//
	// V = HMAC_K(V)
	v = hmacSHA256(k, v)

	// Step F.
	//
	// K = HMAC_K(V || 0x01 || int2octets(x) || h1)
	k = hmacSHA256(k, v, singleOne, privKey, hash)

	// Step G.
	//
	// V = HMAC_K(V)
	v = hmacSHA256(k, v)

	// Step H1 and H2.
	//
	// The hash output is the same length as the group order, so a single
	// V = HMAC_K(V) fills T.
	t := hmacSHA256(k, v)
	defer clear(t)

	var nonce dcrsecp.ModNScalar
	overflow := nonce.SetByteSlice(t)
	if overflow || nonce.IsZero() {
		log.Debugf("Rejected RFC6979 nonce candidate (zero: %v, "+
			"overflow: %v)", nonce.IsZero(), overflow)
		nonce.Zero()
		return nil, signatureError(ErrInvalidNonce, "derived nonce is "+
			"not in the range [1, N-1]")
	}
	return &nonce, nil
}
