// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"encoding/hex"
	"fmt"
	"math/big"

	dcrsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	dcrecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// References:
//   [GECC]: Guide to Elliptic Curve Cryptography (Hankerson, Menezes, Vanstone)
//
//   [SEC1]: Elliptic Curve Cryptography (May 31, 2009, Version 2.0)
//     https://www.secg.org/sec1-v2.pdf

const (
	// RecoveryByteOffset is added to the recovery id when it is serialized
	// as the leading byte of a signature.
	RecoveryByteOffset = 0x1b

	// maxRecoveryID is the largest valid recovery id.
	maxRecoveryID = 3

	// compactSigCompPubKey marks a compact signature as referencing a
	// compressed public key.
	compactSigCompPubKey = 4
)

// Signature is a type representing an ECDSA signature along with the id that
// allows the signing public key to be recovered from it.
type Signature struct {
	r          dcrsecp.ModNScalar
	s          dcrsecp.ModNScalar
	recoveryID byte
}

// NewSignature instantiates a new signature given some r and s values and a
// recovery id in the range [0, 3].
func NewSignature(r, s *dcrsecp.ModNScalar, recoveryID byte) *Signature {
	var sig Signature
	sig.r.Set(r)
	sig.s.Set(s)
	sig.recoveryID = recoveryID & maxRecoveryID
	return &sig
}

// R returns the r value of the signature.
func (sig *Signature) R() dcrsecp.ModNScalar {
	return sig.r
}

// S returns the s value of the signature.
func (sig *Signature) S() dcrsecp.ModNScalar {
	return sig.s
}

// RecoveryID returns the recovery id of the signature.  Bit 0 is the parity
// of the y coordinate of the nonce point after low-S normalization and bit 1
// is set when the x coordinate of the nonce point was not less than the group
// order.
func (sig *Signature) RecoveryID() byte {
	return sig.recoveryID
}

// RecoveryByte returns the recovery id as it is serialized in front of the
// DER encoding, in the range [0x1b, 0x1e].
func (sig *Signature) RecoveryByte() byte {
	return RecoveryByteOffset + sig.recoveryID
}

// Serialize returns the recovery byte followed by the Distinguished Encoding
// Rules (DER) encoding of R and S.
func (sig *Signature) Serialize() []byte {
	r, s := sig.r.Bytes(), sig.s.Bytes()

	// R and S are at most 33 bytes once padded, so the encoding always fits
	// the short length form.
	der, _ := encodeDER(r[:], s[:])
	return append([]byte{sig.RecoveryByte()}, der...)
}

// Hex returns the serialized signature as lower-case hex.
func (sig *Signature) Hex() string {
	return hex.EncodeToString(sig.Serialize())
}

// IsEqual compares this signature instance to the one passed, returning true
// if both have the same R, S and recovery id.
func (sig *Signature) IsEqual(other *Signature) bool {
	return sig.r.Equals(&other.r) && sig.s.Equals(&other.s) &&
		sig.recoveryID == other.recoveryID
}

// Verify returns whether or not the signature is valid for the provided hash
// and secp256k1 public key.
func (sig *Signature) Verify(hash []byte, pubKey *PublicKey) bool {
	return dcrecdsa.NewSignature(&sig.r, &sig.s).Verify(hash, pubKey.key)
}

// fieldToModNScalar converts a field value to scalar modulo the group order and
// returns the scalar along with whether it was reduced (aka it overflowed).
func fieldToModNScalar(v *dcrsecp.FieldVal) (dcrsecp.ModNScalar, bool) {
	var buf [32]byte
	v.PutBytes(&buf)
	var s dcrsecp.ModNScalar
	overflow := s.SetBytes(&buf)
	clear(buf[:])
	return s, overflow != 0
}

// Sign produces a deterministic ECDSA signature of the 32-byte hash with the
// private key.  The nonce comes from NonceRFC6979 and S is normalized to the
// lower half of the group order.
func Sign(hash []byte, key *PrivateKey) (*Signature, error) {
	// The algorithm for producing an ECDSA signature is given as algorithm 4.29
	// in [GECC].
	//
	// G = curve generator
	// N = curve order
	// d = private key
	// m = message
	// r, s = signature
	//
	// 1. Derive the nonce k in [1, N-1] per RFC6979
	// 2. Compute kG
	// 3. r = kG.x mod N (kG.x is the x coordinate of the point kG)
	//    Fail if r = 0
	// 4. e = H(m)
	// 5. s = k^-1(e + dr) mod N
	//    Fail if s = 0
	// 6. s = -s if s > N/2, flipping the parity bit of the recovery id
	// 7. Return (r, s, recovery id)
	if len(hash) != HashLen {
		str := fmt.Sprintf("hash must be %d bytes, got %d", HashLen,
			len(hash))
		return nil, makeError(ErrInvalidHashLen, str)
	}
	if key == nil || key.Key.IsZero() {
		return nil, makeError(ErrInvalidPrivateKey, "private key is zero")
	}

	privKeyBytes := key.Key.Bytes()
	defer clear(privKeyBytes[:])

	// Step 1.
	k, err := NonceRFC6979(hash, privKeyBytes[:])
	if err != nil {
		return nil, err
	}
	defer k.Zero()

	// Step 2.
	//
	// Compute kG
	//
	// Note that the point must be in affine coordinates.
	var kG dcrsecp.JacobianPoint
	dcrsecp.ScalarBaseMultNonConst(k, &kG)
	kG.ToAffine()

	// Step 3.
	//
	// r = kG.x mod N
	// Fail if r = 0
	r, overflow := fieldToModNScalar(&kG.X)
	if r.IsZero() {
		log.Debugf("Signing produced a zero R component")
		return nil, signatureError(ErrSigRIsZero, "calculated R is zero")
	}

	// Since the secp256k1 curve has a cofactor of 1, when recovering a
	// public key from an ECDSA signature over it, there are four possible
	// candidates corresponding to the following cases for each recovery id:
	//
	// 1) The X coord of the random point is < N and its Y coord even
	// 2) The X coord of the random point is < N and its Y coord is odd
	// 3) The X coord of the random point is >= N and its Y coord is even
	// 4) The X coord of the random point is >= N and its Y coord is odd
	var recoveryID byte
	if kG.Y.IsOdd() {
		recoveryID |= 1
	}
	if overflow {
		recoveryID |= 2
	}

	// Step 4.
	//
	// e = H(m)
	//
	// Note that this actually sets e = H(m) mod N which is correct since
	// it is only used in step 5 which itself is mod N.
	var e dcrsecp.ModNScalar
	e.SetByteSlice(hash)

	// Step 5.
	//
	// s = k^-1(e + dr) mod N
	// Fail if s = 0
	kInv := new(dcrsecp.ModNScalar).InverseValNonConst(k)
	s := new(dcrsecp.ModNScalar).Mul2(&key.Key, &r).Add(&e).Mul(kInv)
	if s.IsZero() {
		log.Debugf("Signing produced a zero S component")
		return nil, signatureError(ErrSigSIsZero, "calculated S is zero")
	}

	// Step 6.
	//
	// Negating s corresponds to the random point that would have been
	// generated by -k (mod N), which has the same X coord and the opposite
	// Y coord, so the parity bit of the recovery id flips with it.
	if s.IsOverHalfOrder() {
		s.Negate()
		recoveryID ^= 1
	}

	// Step 7.
	return &Signature{r: r, s: *s, recoveryID: recoveryID}, nil
}

// SignMessage hashes msg with SHA-256 and signs the digest.
func SignMessage(msg []byte, key *PrivateKey) (*Signature, error) {
	return Sign(SHA256(msg), key)
}

// SignHex signs a hex encoded 32-byte hash with a hex encoded private key and
// returns the hex encoded signature.
func SignHex(hashHex, privHex string) (string, error) {
	hash, err := hex.DecodeString(hashHex)
	if err != nil {
		str := fmt.Sprintf("malformed hash hex: %v", err)
		return "", makeError(ErrEncoding, str)
	}
	key, err := PrivKeyFromHex(privHex)
	if err != nil {
		return "", err
	}
	defer key.Zero()

	sig, err := Sign(hash, key)
	if err != nil {
		return "", err
	}
	return sig.Hex(), nil
}

// ParseSignature parses a signature serialized as a recovery byte in the
// range [0x1b, 0x1e] followed by a DER encoded sequence of R and S.  Both R
// and S must be in the range [1, N-1].
func ParseSignature(sig []byte) (*Signature, error) {
	if len(sig) == 0 {
		return nil, signatureError(ErrMalformedSignature, "malformed "+
			"signature: empty")
	}

	prefix := sig[0]
	if prefix < RecoveryByteOffset || prefix > RecoveryByteOffset+maxRecoveryID {
		str := fmt.Sprintf("invalid recovery byte %#x, want a value in "+
			"[%#x, %#x]", prefix, RecoveryByteOffset,
			RecoveryByteOffset+maxRecoveryID)
		return nil, signatureError(ErrInvalidRecoveryByte, str)
	}
	if len(sig) < 2 || sig[1] != asn1SequenceID {
		str := "malformed signature: missing DER sequence"
		if len(sig) >= 2 {
			str = fmt.Sprintf("malformed signature: format has wrong "+
				"type: %#x, want %#x", sig[1], asn1SequenceID)
		}
		return nil, signatureError(ErrMalformedSignature, str)
	}

	r, s, err := DecodeDER(sig[1:])
	if err != nil {
		return nil, err
	}

	var parsed Signature
	if err := setSigScalar(&parsed.r, r, "R"); err != nil {
		return nil, err
	}
	if err := setSigScalar(&parsed.s, s, "S"); err != nil {
		return nil, err
	}
	parsed.recoveryID = prefix - RecoveryByteOffset
	return &parsed, nil
}

// ParseSignatureHex parses a hex encoded signature.
func ParseSignatureHex(sigHex string) (*Signature, error) {
	b, err := hex.DecodeString(sigHex)
	if err != nil {
		str := fmt.Sprintf("malformed signature hex: %v", err)
		return nil, makeError(ErrEncoding, str)
	}
	return ParseSignature(b)
}

// setSigScalar sets the scalar to v, ensuring v is in [1, N-1].
func setSigScalar(scalar *dcrsecp.ModNScalar, v *big.Int, name string) error {
	if v.Sign() == 0 {
		str := fmt.Sprintf("invalid signature: %s is 0", name)
		return signatureError(ErrMalformedSignature, str)
	}
	if v.Cmp(curveOrder) >= 0 {
		str := fmt.Sprintf("invalid signature: %s >= group order", name)
		return signatureError(ErrMalformedSignature, str)
	}
	scalar.SetByteSlice(v.Bytes())
	return nil
}
