// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package secp256k1 implements deterministic ECDSA signing, verification and
public key recovery over the secp256k1 curve.

Curve and scalar arithmetic is provided by the
github.com/decred/dcrd/dcrec/secp256k1/v4 package.  This package layers a specific signature scheme on top of it:

  - Nonce generation via the first candidate of RFC6979 using HMAC-SHA256
  - Signatures normalized to the lower half of the group order (BIP0062)
  - A recovery id computed for every signature
  - Signatures serialized as a single recovery byte in the range [0x1b, 0x1e]
    followed by the Distinguished Encoding Rules (DER) encoding of R and S
  - Recovery of the compressed public key from a signature and hash

An overview of the features provided by this package are as follows:

  - Private key generation, validation, serialization, and parsing
  - Public key serialization in compressed and uncompressed form
  - Conversion between big integers, fixed width bytes, and hex strings
  - SHA-256, SHA-512, SHA3-256, Keccak-256, RIPEMD-160 and HMAC-SHA256
    helpers, with NFKC normalized string hashing
  - ECDH shared secrets
  - A crypto.Signer implementation on PrivateKey

# Signature format

A serialized signature has the form:

	<0x1b + recovery id> 0x30 <len> 0x02 <len R> <R> 0x02 <len S> <S>

Bit 0 of the recovery id is the parity of the y coordinate of the nonce point
(after low-S normalization) and bit 1 is set when the x coordinate of the
nonce point is not less than the group order.

# Errors

Errors returned by this package are of type Error and wrap an ErrorKind, so
callers can test for a specific kind with errors.Is:

	if errors.Is(err, secp256k1.ErrMalformedSignature) {
		...
	}

# Concurrency

All functions are safe for concurrent use.  None of them keep state between
calls.  UseLogger is the exception and must be called before the package is
used from multiple goroutines.
*/
package secp256k1
