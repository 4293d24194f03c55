package account

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/ModChain/secp256k1"
)

const (
	testPrivKey  = "6a5f415f49986006815ae7887016275aac8ffb239f9a2fa7172300578582b6c2"
	testPubKey   = "02991719b37817f6108fc8b0e824d3a9daa3d39bc97ecfd4f8bc7ef3b71d4c6391"
	testKeyHash  = "d486bf7bfa5f659a6654556da61ee1f1a6b64d7f"
	testAccount  = "TfGvAdKH2nRdV4zP4yBz4kJ2R9WzYHDe2EV"
	testUncompPK = "04991719b37817f6108fc8b0e824d3a9daa3d39bc97ecfd4f8bc7ef3b71d4c6391b6b27153667e924fceaf9993f5ed9779e794c2826d06e52771c63138287bb542"
)

func TestFromPublicKey(t *testing.T) {
	tests := []struct {
		name   string
		pubKey string
		prefix Prefix
		want   string
	}{
		{"compressed", testPubKey, MainnetPrefix, testAccount},
		{"uncompressed", testUncompPK, MainnetPrefix, testAccount},
		{"zero prefix", testPubKey, Prefix{}, "11LNjg868wKKF1iiEwLHbgaHs3T8QvANP4G"},
		{"generator", "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798", MainnetPrefix, "Tf8DhWM5WDBB1CarpFdonta9YEBJgW1GYAt"},
	}

	for _, test := range tests {
		got, err := FromPublicKeyHex(test.pubKey, test.prefix)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if got != test.want {
			t.Errorf("%s: got %s, want %s", test.name, got, test.want)
			continue
		}

		raw, _ := hex.DecodeString(test.pubKey)
		got, err = FromPublicKey(raw, test.prefix)
		if err != nil || got != test.want {
			t.Errorf("%s: raw key: got %s (err: %v), want %s", test.name, got,
				err, test.want)
			continue
		}
	}

	if _, err := FromPublicKeyHex("05"+testPubKey[2:], MainnetPrefix); err == nil {
		t.Error("expected error for invalid public key")
	}
}

func TestFromPrivateKeyAndSignature(t *testing.T) {
	priv, err := secp256k1.PrivKeyFromHex(testPrivKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := FromPrivateKey(priv, MainnetPrefix); got != testAccount {
		t.Fatalf("got %s, want %s", got, testAccount)
	}

	hash := secp256k1.SHA256([]byte("hi there"))
	sig, err := secp256k1.Sign(hash, priv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := FromSignature(sig.Serialize(), hash, MainnetPrefix)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != testAccount {
		t.Fatalf("got %s, want %s", got, testAccount)
	}

	if _, err := FromSignature(sig.Serialize(), hash[:31], MainnetPrefix); err == nil {
		t.Fatal("expected error for short hash")
	}
}

func TestDecode(t *testing.T) {
	prefix, keyHash, err := Decode(testAccount)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prefix != MainnetPrefix {
		t.Fatalf("got prefix %s, want %s", prefix, MainnetPrefix)
	}
	if want, _ := hex.DecodeString(testKeyHash); !bytes.Equal(keyHash, want) {
		t.Fatalf("got key hash %x, want %s", keyHash, testKeyHash)
	}
	if len(keyHash) != HashLen {
		t.Fatalf("got key hash length %d, want %d", len(keyHash), HashLen)
	}
}

func TestValidate(t *testing.T) {
	badChecksum := testAccount[:len(testAccount)-1] + "W"

	tests := []struct {
		name   string
		id     string
		prefix Prefix
		err    error
	}{
		{"valid", testAccount, MainnetPrefix, nil},
		{"invalid base58", "Tf0OIl", MainnetPrefix, ErrInvalidEncoding},
		{"too short", "1111", MainnetPrefix, ErrInvalidLen},
		{"bad checksum", badChecksum, MainnetPrefix, ErrBadChecksum},
		{"prefix mismatch", testAccount, Prefix{0x0f, 0x03}, ErrPrefixMismatch},
	}

	for _, test := range tests {
		err := Validate(test.id, test.prefix)
		if err != test.err {
			t.Errorf("%s: got %v, want %v", test.name, err, test.err)
		}
	}
}

func TestMatches(t *testing.T) {
	key, err := secp256k1.ParsePubKeyHex(testPubKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Matches(testAccount, key) {
		t.Fatal("account does not match its key")
	}

	other, err := secp256k1.ParsePubKeyHex("0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Matches(testAccount, other) {
		t.Fatal("account matches an unrelated key")
	}
	if Matches("not an id", key) {
		t.Fatal("malformed id matched")
	}
}

func TestPrefixString(t *testing.T) {
	if got := MainnetPrefix.String(); got != "0f02" {
		t.Fatalf("got %s, want 0f02", got)
	}
}
