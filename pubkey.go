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
)

// These constants define the lengths of serialized public keys.
const (
	PubKeyBytesLenCompressed   = 33
	PubKeyBytesLenUncompressed = 65
)

// PublicKey provides facilities for efficiently working with secp256k1 public
// keys.  It is immutable once created.
type PublicKey struct {
	key *dcrsecp.PublicKey
}

// NewPublicKey instantiates a new public key with the given x and y
// coordinates.
//
// It should be noted that, unlike ParsePubKey, since this accepts arbitrary x
// and y coordinates, it allows creation of public keys that are not valid
// points on the secp256k1 curve.
func NewPublicKey(x, y *dcrsecp.FieldVal) *PublicKey {
	return &PublicKey{key: dcrsecp.NewPublicKey(x, y)}
}

// ParsePubKey parses a secp256k1 public key encoded in the compressed,
// uncompressed or hybrid SEC1 format and ensures it is on the curve.
func ParsePubKey(serialized []byte) (*PublicKey, error) {
	key, err := dcrsecp.ParsePubKey(serialized)
	if err != nil {
		str := fmt.Sprintf("malformed public key: %v", err)
		return nil, makeError(ErrPubKeyInvalid, str)
	}
	return &PublicKey{key: key}, nil
}

// ParsePubKeyHex parses a hex encoded public key.
func ParsePubKeyHex(s string) (*PublicKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		str := fmt.Sprintf("malformed public key hex: %v", err)
		return nil, makeError(ErrPubKeyInvalid, str)
	}
	return ParsePubKey(b)
}

// SerializeCompressed serializes a public key in the 33-byte compressed
// format: 0x02 or 0x03 depending on the parity of y, followed by x.
func (p *PublicKey) SerializeCompressed() []byte {
	return p.key.SerializeCompressed()
}

// SerializeUncompressed serializes a public key in the 65-byte uncompressed
// format: 0x04 || x || y.
func (p *PublicKey) SerializeUncompressed() []byte {
	return p.key.SerializeUncompressed()
}

// Hex returns the compressed serialization as lower-case hex.
func (p *PublicKey) Hex() string {
	return hex.EncodeToString(p.SerializeCompressed())
}

// X returns the x coordinate of the public key.
func (p *PublicKey) X() *big.Int {
	return p.key.X()
}

// Y returns the y coordinate of the public key.
func (p *PublicKey) Y() *big.Int {
	return p.key.Y()
}

// IsEqual compares this public key instance to the one passed, returning true
// if both public keys are equivalent.
func (p *PublicKey) IsEqual(other *PublicKey) bool {
	return p.key.IsEqual(other.key)
}

// IsOnCurve returns whether or not the public key represents a point on the
// secp256k1 curve.
func (p *PublicKey) IsOnCurve() bool {
	return p.key.IsOnCurve()
}

// AsJacobian converts the public key into a Jacobian point with Z=1 and stores
// the result in the provided result param.
func (p *PublicKey) AsJacobian(result *dcrsecp.JacobianPoint) {
	p.key.AsJacobian(result)
}
