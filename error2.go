// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// These constants are used to identify a specific signature Error.
const (
	// ErrInvalidNonce is returned when the deterministic nonce derived for a
	// signature is zero or not less than the group order.
	ErrInvalidNonce = ErrorKind("ErrInvalidNonce")

	// ErrSigRIsZero is returned when signing produces an R component with the
	// value zero.
	ErrSigRIsZero = ErrorKind("ErrSigRIsZero")

	// ErrSigSIsZero is returned when signing produces an S component with the
	// value zero.
	ErrSigSIsZero = ErrorKind("ErrSigSIsZero")

	// ErrMalformedSignature is returned when a signature does not follow the
	// expected DER grammar of a SEQUENCE holding two INTEGERs, or when either
	// of its components is out of range.
	ErrMalformedSignature = ErrorKind("ErrMalformedSignature")

	// ErrInvalidRecoveryByte is returned when the byte prefixed to a
	// signature is not in the range [0x1b, 0x1e].
	ErrInvalidRecoveryByte = ErrorKind("ErrInvalidRecoveryByte")

	// ErrRecoveryFailed is returned when no public key can be recovered from
	// an otherwise well formed signature and hash.
	ErrRecoveryFailed = ErrorKind("ErrRecoveryFailed")
)

// signatureError creates an Error given a set of arguments.
func signatureError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
