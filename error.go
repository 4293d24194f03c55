// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific key or encoding Error.
const (
	// ErrInvalidPrivateKey is returned when a private key is not a 32-byte
	// scalar in the range [1, N-1].
	ErrInvalidPrivateKey = ErrorKind("ErrInvalidPrivateKey")

	// ErrPubKeyInvalid is returned when a serialized public key can not be
	// parsed into a point on the curve.
	ErrPubKeyInvalid = ErrorKind("ErrPubKeyInvalid")

	// ErrInvalidHashLen is returned when a message hash is not exactly 32
	// bytes.
	ErrInvalidHashLen = ErrorKind("ErrInvalidHashLen")

	// ErrEncoding is returned when a conversion between big integers, bytes
	// and strings is given inconsistent input.
	ErrEncoding = ErrorKind("ErrEncoding")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to secp256k1 keys, signatures and their
// encodings.  It has full support for errors.Is and errors.As, so the caller
// can ascertain the specific reason for the error by checking the underlying
// error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
