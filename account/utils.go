package account

import (
	"github.com/ModChain/secp256k1"
)

func doubleSha256(in []byte) []byte {
	return secp256k1.SHA256(secp256k1.SHA256(in))
}

// ripemd160 + sha256
func rmd160sha256(in []byte) []byte {
	return secp256k1.RIPEMD160(secp256k1.SHA256(in))
}
