package secp256k1

import (
	"crypto"
	"fmt"
	"io"
)

// SignOptions carries the options understood by PrivateKey.Sign.
type SignOptions struct {
	Hash crypto.Hash

	// Format selects the encoding produced by SignString.
	Format Format
}

func (s *SignOptions) HashFunc() crypto.Hash {
	return s.Hash
}

// Sign will sign the provided digest, returning the recovery byte followed by
// the DER encoded signature.  It implements crypto.Signer so the digest must
// be a 32-byte SHA-256 hash; the random source is ignored since signing is
// deterministic.
func (privkey *PrivateKey) Sign(rand io.Reader, digest []byte, opts crypto.SignerOpts) ([]byte, error) {
	if opts != nil && opts.HashFunc() != 0 && opts.HashFunc() != crypto.SHA256 {
		str := fmt.Sprintf("unsupported digest %v, want %v",
			opts.HashFunc(), crypto.SHA256)
		return nil, makeError(ErrInvalidHashLen, str)
	}
	sig, err := Sign(digest, privkey)
	if err != nil {
		return nil, err
	}
	return sig.Serialize(), nil
}

// Public returns the public key corresponding to the private key.
func (privkey *PrivateKey) Public() crypto.PublicKey {
	return privkey.PubKey()
}

// SignString hashes msg with SHA-256 after NFKC normalization, signs it and
// returns the serialized signature in the format selected by opts.  A nil
// opts produces hex.
func (privkey *PrivateKey) SignString(msg string, opts *SignOptions) (string, error) {
	sig, err := Sign(SHA256String(msg), privkey)
	if err != nil {
		return "", err
	}
	format := FormatHex
	if opts != nil {
		format = opts.Format
	}
	return format.Encode(sig.Serialize()), nil
}
