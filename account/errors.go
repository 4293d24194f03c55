package account

import (
	"errors"
)

var (
	ErrInvalidEncoding = errors.New("account id is not valid base58")
	ErrInvalidLen      = errors.New("decoded account id length is invalid")
	ErrBadChecksum     = errors.New("bad account id checksum")
	ErrPrefixMismatch  = errors.New("account id prefix does not match")
)
