// Copyright (c) 2015 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	dcrsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// GenerateSharedSecret generates a shared secret based on a private key and a
// public key using Diffie-Hellman key exchange (ECDH) (RFC 5903).
// RFC5903 Section 9 states we should only return x.
//
// It is recommended to securely hash the result before using as a
// cryptographic key, see SharedKey.
func GenerateSharedSecret(privkey *PrivateKey, pubkey *PublicKey) []byte {
	return dcrsecp.GenerateSharedSecret(dcrsecp.NewPrivateKey(&privkey.Key),
		pubkey.key)
}

// SharedKey returns the SHA-256 digest of the ECDH shared secret between
// privkey and pubkey.
func SharedKey(privkey *PrivateKey, pubkey *PublicKey) []byte {
	secret := GenerateSharedSecret(privkey, pubkey)
	defer clear(secret)
	return SHA256(secret)
}

// ECDH generates a shared secret and is an alias to GenerateSharedSecret, however
// by being part of the private key it is closer to go's own ecdh api.  The
// remote key must be a point on the curve.
func (privkey *PrivateKey) ECDH(remote *PublicKey) ([]byte, error) {
	if remote == nil || !remote.IsOnCurve() {
		return nil, makeError(ErrPubKeyInvalid, "remote public key is not "+
			"on the secp256k1 curve")
	}
	return GenerateSharedSecret(privkey, remote), nil
}
