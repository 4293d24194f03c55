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

// PrivKeyBytesLen defines the length in bytes of a serialized private key.
const PrivKeyBytesLen = 32

// curveOrder and halfOrder are the secp256k1 group order N and N/2 as big
// integers.  They are read only.
var (
	curveOrder = new(big.Int).Set(dcrsecp.Params().N)
	halfOrder  = new(big.Int).Rsh(curveOrder, 1)
)

// CurveOrderHex returns the secp256k1 group order N as lower-case hex.
func CurveOrderHex() string {
	return hex.EncodeToString(curveOrder.Bytes())
}

// PrivateKey provides facilities for working with secp256k1 private keys.  A
// PrivateKey always holds a scalar in the range [1, N-1].
type PrivateKey struct {
	Key dcrsecp.ModNScalar
}

// PrivKeyFromBytes returns the private key for the provided 32-byte
// big-endian scalar.  Values that are zero or not less than the group order
// are rejected rather than reduced.
func PrivKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != PrivKeyBytesLen {
		str := fmt.Sprintf("malformed private key: invalid length: %d, "+
			"want %d", len(b), PrivKeyBytesLen)
		return nil, makeError(ErrInvalidPrivateKey, str)
	}

	var priv PrivateKey
	if overflow := priv.Key.SetByteSlice(b); overflow {
		return nil, makeError(ErrInvalidPrivateKey, "private key is not "+
			"less than the group order")
	}
	if priv.Key.IsZero() {
		return nil, makeError(ErrInvalidPrivateKey, "private key is zero")
	}
	return &priv, nil
}

// PrivKeyFromHex returns the private key for the provided hex encoded 32-byte
// scalar.
func PrivKeyFromHex(s string) (*PrivateKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		str := fmt.Sprintf("malformed private key hex: %v", err)
		return nil, makeError(ErrInvalidPrivateKey, str)
	}
	return PrivKeyFromBytes(b)
}

// IsValidPrivateKey returns whether b is a 32-byte scalar in [1, N-1].
func IsValidPrivateKey(b []byte) bool {
	_, err := PrivKeyFromBytes(b)
	return err == nil
}

// GeneratePrivateKey returns a private key that is suitable for use with
// secp256k1, drawn from a cryptographically secure random source.
func GeneratePrivateKey() (*PrivateKey, error) {
	key, err := dcrsecp.GeneratePrivateKey()
	if err != nil {
		return nil, err
	}
	defer key.Zero()
	return &PrivateKey{Key: key.Key}, nil
}

// PubKey computes and returns the public key corresponding to this private key.
func (p *PrivateKey) PubKey() *PublicKey {
	var result dcrsecp.JacobianPoint
	dcrsecp.ScalarBaseMultNonConst(&p.Key, &result)
	result.ToAffine()
	return NewPublicKey(&result.X, &result.Y)
}

// Serialize returns the private key as a 256-bit big-endian binary-encoded
// number, padded to a length of 32 bytes.
func (p *PrivateKey) Serialize() []byte {
	var b [PrivKeyBytesLen]byte
	p.Key.PutBytes(&b)
	return b[:]
}

// Hex returns the serialized private key as lower-case hex.
func (p *PrivateKey) Hex() string {
	return hex.EncodeToString(p.Serialize())
}

// Zero manually clears the memory associated with the private key.
func (p *PrivateKey) Zero() {
	p.Key.Zero()
}

// KeyPair is a private key together with its derived public key.  The public
// key holds no reference to the private key.
type KeyPair struct {
	Private *PrivateKey
	Public  *PublicKey
}

// GenerateKeyPair returns a new random key pair.
func GenerateKeyPair() (*KeyPair, error) {
	priv, err := GeneratePrivateKey()
	if err != nil {
		return nil, err
	}
	return &KeyPair{Private: priv, Public: priv.PubKey()}, nil
}

// NewKeyPair returns the key pair for a hex encoded private key.
func NewKeyPair(privHex string) (*KeyPair, error) {
	priv, err := PrivKeyFromHex(privHex)
	if err != nil {
		return nil, err
	}
	return &KeyPair{Private: priv, Public: priv.PubKey()}, nil
}
