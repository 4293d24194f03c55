// Package account derives Base58Check account ids from secp256k1 public keys.
//
// An account id is the base58 encoding of
//
//	prefix (2) || ripemd160(sha256(compressed pubkey)) (20) || checksum (4)
//
// where the checksum is the first four bytes of the double SHA-256 of the
// preceding 22 bytes.
package account

import (
	"bytes"

	"github.com/ModChain/secp256k1"
	"github.com/mr-tron/base58"
)

const (
	// HashLen is the length of the key hash carried by an account id.
	HashLen = 20

	checksumLen = 4
	decodedLen  = len(Prefix{}) + HashLen + checksumLen
)

// FromPublicKey returns the account id for a serialized public key.  Both
// compressed and uncompressed keys are accepted; the id is always derived
// from the compressed form.
func FromPublicKey(pubKey []byte, prefix Prefix) (string, error) {
	key, err := secp256k1.ParsePubKey(pubKey)
	if err != nil {
		return "", err
	}
	return FromKey(key, prefix), nil
}

// FromPublicKeyHex returns the account id for a hex encoded public key.
func FromPublicKeyHex(pubKey string, prefix Prefix) (string, error) {
	key, err := secp256k1.ParsePubKeyHex(pubKey)
	if err != nil {
		return "", err
	}
	return FromKey(key, prefix), nil
}

// FromKey returns the account id of key.
func FromKey(key *secp256k1.PublicKey, prefix Prefix) string {
	return encode(prefix, rmd160sha256(key.SerializeCompressed()))
}

// FromPrivateKey returns the account id of the public key belonging to priv.
func FromPrivateKey(priv *secp256k1.PrivateKey, prefix Prefix) string {
	return FromKey(priv.PubKey(), prefix)
}

// FromSignature recovers the signing key from a serialized signature and the
// 32-byte hash it signs, and returns its account id.
func FromSignature(sig, hash []byte, prefix Prefix) (string, error) {
	key, err := secp256k1.RecoverPubKey(sig, hash)
	if err != nil {
		return "", err
	}
	return FromKey(key, prefix), nil
}

func encode(prefix Prefix, keyHash []byte) string {
	// The serialized format is:
	//   prefix (2) || key hash (20) || checksum (4)
	serialized := make([]byte, 0, decodedLen)
	serialized = append(serialized, prefix[:]...)
	serialized = append(serialized, keyHash...)
	serialized = append(serialized, doubleSha256(serialized)[:checksumLen]...)
	return base58.Encode(serialized)
}

// Decode checks the encoding and checksum of an account id and returns its
// prefix and key hash.
func Decode(id string) (Prefix, []byte, error) {
	var prefix Prefix
	data, err := base58.Decode(id)
	if err != nil {
		return prefix, nil, ErrInvalidEncoding
	}
	if len(data) != decodedLen {
		return prefix, nil, ErrInvalidLen
	}

	// Split the payload and checksum up and ensure the checksum matches.
	payload := data[:len(data)-checksumLen]
	checkSum := data[len(data)-checksumLen:]
	expectedCheckSum := doubleSha256(payload)[:checksumLen]
	if !bytes.Equal(checkSum, expectedCheckSum) {
		return prefix, nil, ErrBadChecksum
	}

	copy(prefix[:], payload[:len(prefix)])
	return prefix, payload[len(prefix):], nil
}

// Validate returns nil when id is a well formed account id carrying prefix.
func Validate(id string, prefix Prefix) error {
	got, _, err := Decode(id)
	if err != nil {
		return err
	}
	if got != prefix {
		return ErrPrefixMismatch
	}
	return nil
}

// Matches reports whether id is the account id of key.
func Matches(id string, key *secp256k1.PublicKey) bool {
	_, keyHash, err := Decode(id)
	if err != nil {
		return false
	}
	return bytes.Equal(keyHash, rmd160sha256(key.SerializeCompressed()))
}
