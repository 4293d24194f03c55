// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"encoding/hex"
	"fmt"

	dcrecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// compactSigLen is the length of the compact form handed to the underlying
// recovery: <27 + recovery id + 4><32-byte R><32-byte S>.
const compactSigLen = 65

// RecoverPubKey recovers the public key that produced the serialized
// signature over the 32-byte hash.
//
// The signature must start with a recovery byte in [0x1b, 0x1e] followed by a
// DER sequence.  Exactly one candidate public key, the one selected by the
// recovery id, is computed.
func RecoverPubKey(sig, hash []byte) (*PublicKey, error) {
	if len(hash) != HashLen {
		str := fmt.Sprintf("hash must be %d bytes, got %d", HashLen,
			len(hash))
		return nil, makeError(ErrInvalidHashLen, str)
	}

	parsed, err := ParseSignature(sig)
	if err != nil {
		return nil, err
	}
	return parsed.RecoverPubKey(hash)
}

// RecoverPubKeyHex recovers the public key from a hex encoded signature and
// returns it as hex encoded compressed SEC1 bytes.
func RecoverPubKeyHex(sigHex string, hash []byte) (string, error) {
	sig, err := hex.DecodeString(sigHex)
	if err != nil {
		str := fmt.Sprintf("malformed signature hex: %v", err)
		return "", makeError(ErrEncoding, str)
	}
	pubKey, err := RecoverPubKey(sig, hash)
	if err != nil {
		return "", err
	}
	return pubKey.Hex(), nil
}

// RecoverPubKey recovers the public key selected by the recovery id of the
// signature for the provided 32-byte hash.
func (sig *Signature) RecoverPubKey(hash []byte) (*PublicKey, error) {
	if len(hash) != HashLen {
		str := fmt.Sprintf("hash must be %d bytes, got %d", HashLen,
			len(hash))
		return nil, makeError(ErrInvalidHashLen, str)
	}

	var compact [compactSigLen]byte
	compact[0] = RecoveryByteOffset + compactSigCompPubKey + sig.recoveryID
	r, s := sig.r.Bytes(), sig.s.Bytes()
	copy(compact[1:33], r[:])
	copy(compact[33:65], s[:])

	key, _, err := dcrecdsa.RecoverCompact(compact[:], hash)
	if err != nil {
		log.Debugf("Public key recovery with recovery id %d failed: %v",
			sig.recoveryID, err)
		str := fmt.Sprintf("unable to recover public key with recovery "+
			"id %d: %v", sig.recoveryID, err)
		return nil, signatureError(ErrRecoveryFailed, str)
	}
	return &PublicKey{key: key}, nil
}

// VerifyRecovered reports whether the public key recovered from the
// serialized signature and hash equals pubKey.
func VerifyRecovered(sig, hash []byte, pubKey *PublicKey) (bool, error) {
	recovered, err := RecoverPubKey(sig, hash)
	if err != nil {
		return false, err
	}
	return recovered.IsEqual(pubKey), nil
}
