// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"bytes"
	"errors"
	"testing"
)

// TestPrivKeyFromBytes ensures private keys are only accepted in the range
// [1, N-1] and with the correct length.
func TestPrivKeyFromBytes(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		valid bool
	}{{
		name:  "one",
		key:   "0000000000000000000000000000000000000000000000000000000000000001",
		valid: true,
	}, {
		name:  "group order minus one",
		key:   "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140",
		valid: true,
	}, {
		name:  "known key",
		key:   "6a5f415f49986006815ae7887016275aac8ffb239f9a2fa7172300578582b6c2",
		valid: true,
	}, {
		name:  "zero",
		key:   "0000000000000000000000000000000000000000000000000000000000000000",
		valid: false,
	}, {
		name:  "group order",
		key:   "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141",
		valid: false,
	}, {
		name:  "all ones",
		key:   "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		valid: false,
	}, {
		name:  "short",
		key:   "01",
		valid: false,
	}, {
		name:  "long",
		key:   "000000000000000000000000000000000000000000000000000000000000000001",
		valid: false,
	}}

	for _, test := range tests {
		b := hexToBytes(test.key)
		priv, err := PrivKeyFromBytes(b)
		if test.valid {
			if err != nil {
				t.Errorf("%s: unexpected error: %v", test.name, err)
				continue
			}
			if !bytes.Equal(priv.Serialize(), b) {
				t.Errorf("%s: mismatched serialization -- got %x, want %x",
					test.name, priv.Serialize(), b)
				continue
			}
			if priv.Hex() != test.key {
				t.Errorf("%s: mismatched hex -- got %s, want %s", test.name,
					priv.Hex(), test.key)
				continue
			}
		} else if !errors.Is(err, ErrInvalidPrivateKey) {
			t.Errorf("%s: mismatched err -- got %v, want %v", test.name, err,
				ErrInvalidPrivateKey)
			continue
		}

		if got := IsValidPrivateKey(b); got != test.valid {
			t.Errorf("%s: mismatched validity -- got %v, want %v", test.name,
				got, test.valid)
			continue
		}
	}

	if _, err := PrivKeyFromHex("zz"); !errors.Is(err, ErrInvalidPrivateKey) {
		t.Errorf("bad hex: mismatched err -- got %v, want %v", err,
			ErrInvalidPrivateKey)
	}
}

// TestPrivKeyPubKey ensures public keys derived from known private keys match
// the expected compressed and uncompressed encodings.
func TestPrivKeyPubKey(t *testing.T) {
	const (
		key          = "6a5f415f49986006815ae7887016275aac8ffb239f9a2fa7172300578582b6c2"
		compressed   = "02991719b37817f6108fc8b0e824d3a9daa3d39bc97ecfd4f8bc7ef3b71d4c6391"
		uncompressed = "04991719b37817f6108fc8b0e824d3a9daa3d39bc97ecfd4f8bc7ef3b71d4c6391b6b27153667e924fceaf9993f5ed9779e794c2826d06e52771c63138287bb542"
	)

	pair, err := NewKeyPair(key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := pair.Public.Hex(); got != compressed {
		t.Fatalf("mismatched compressed key -- got %s, want %s", got,
			compressed)
	}
	if got := pair.Public.SerializeUncompressed(); !bytes.Equal(got,
		hexToBytes(uncompressed)) {

		t.Fatalf("mismatched uncompressed key -- got %x, want %s", got,
			uncompressed)
	}

	parsed, err := ParsePubKeyHex(uncompressed)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if !parsed.IsEqual(pair.Public) {
		t.Fatal("parsed uncompressed key does not equal derived key")
	}
	if !parsed.IsOnCurve() {
		t.Fatal("derived key is not on the curve")
	}
	if got := parsed.X().Text(16); got != compressed[2:] {
		t.Fatalf("mismatched X -- got %s, want %s", got, compressed[2:])
	}

	for _, test := range signTests {
		pair, err := NewKeyPair(test.key)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if got := pair.Public.Hex(); got != test.pubKey {
			t.Errorf("%s: mismatched public key -- got %s, want %s",
				test.name, got, test.pubKey)
			continue
		}
	}
}

// TestParsePubKeyErrors ensures invalid public keys are rejected.
func TestParsePubKeyErrors(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{{
		name: "empty",
		key:  "",
	}, {
		name: "bad format byte",
		key:  "05991719b37817f6108fc8b0e824d3a9daa3d39bc97ecfd4f8bc7ef3b71d4c6391",
	}, {
		name: "x not on curve",
		key:  "020000000000000000000000000000000000000000000000000000000000000005",
	}, {
		name: "truncated",
		key:  "02991719b37817f6108fc8b0e824d3a9daa3d39bc97ecfd4f8bc7ef3b71d4c63",
	}, {
		name: "not hex",
		key:  "0z",
	}}

	for _, test := range tests {
		_, err := ParsePubKeyHex(test.key)
		if !errors.Is(err, ErrPubKeyInvalid) {
			t.Errorf("%s: mismatched err -- got %v, want %v", test.name, err,
				ErrPubKeyInvalid)
			continue
		}
	}
}

// TestGenerateKeyPair ensures generated keys are valid and distinct.
func TestGenerateKeyPair(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 8; i++ {
		pair, err := GenerateKeyPair()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !IsValidPrivateKey(pair.Private.Serialize()) {
			t.Fatalf("generated invalid private key %x",
				pair.Private.Serialize())
		}
		if !pair.Private.PubKey().IsEqual(pair.Public) {
			t.Fatal("public key does not belong to private key")
		}
		if _, ok := seen[pair.Private.Hex()]; ok {
			t.Fatal("generated duplicate private key")
		}
		seen[pair.Private.Hex()] = struct{}{}
	}
}

// TestPrivKeyZero ensures zeroing a private key clears the scalar.
func TestPrivKeyZero(t *testing.T) {
	priv, err := PrivKeyFromHex(signTests[0].key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	priv.Zero()
	if !priv.Key.IsZero() {
		t.Fatal("private key was not cleared")
	}
	if _, err := Sign(SHA256([]byte("msg")), priv); !errors.Is(err,
		ErrInvalidPrivateKey) {

		t.Fatalf("mismatched err -- got %v, want %v", err,
			ErrInvalidPrivateKey)
	}
}

// TestCurveOrderHex ensures the group order is reported as expected.
func TestCurveOrderHex(t *testing.T) {
	const want = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"
	if got := CurveOrderHex(); got != want {
		t.Fatalf("mismatched order -- got %s, want %s", got, want)
	}
}
