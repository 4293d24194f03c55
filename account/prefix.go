package account

import "encoding/hex"

// Prefix is the two version bytes placed in front of the key hash of an
// account id.  It determines the leading characters of the encoded id.
type Prefix [2]byte

var (
	// MainnetPrefix produces ids starting with "Tf".
	MainnetPrefix = Prefix{0x0f, 0x02}
)

// String returns the prefix as hex.
func (p Prefix) String() string {
	return hex.EncodeToString(p[:])
}
