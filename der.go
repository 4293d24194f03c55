// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"fmt"
	"math/big"
)

// References:
//   [ISO/IEC 8825-1]: Information technology - ASN.1 encoding rules:
//     Specification of Basic Encoding Rules (BER), Canonical Encoding Rules
//     (CER) and Distinguished Encoding Rules (DER)

const (
	// asn1SequenceID is the ASN.1 identifier for a sequence and is used when
	// parsing and serializing signatures encoded with the Distinguished
	// Encoding Rules (DER) format per section 10 of [ISO/IEC 8825-1].
	asn1SequenceID = 0x30

	// asn1IntegerID is the ASN.1 identifier for an integer and is used when
	// parsing and serializing signatures encoded with the Distinguished
	// Encoding Rules (DER) format per section 10 of [ISO/IEC 8825-1].
	asn1IntegerID = 0x02

	// maxShortFormLen is the largest length that fits the single byte short
	// form.  Longer lengths are never needed for 256-bit values.
	maxShortFormLen = 0x7f
)

// EncodeDER returns the Distinguished Encoding Rules (DER) encoding of the
// signature components r and s:
//
//	0x30 <total length> 0x02 <length of R> <R> 0x02 <length of S> <S>
//
// Each component is written using the minimum number of bytes, with a single
// 0x00 byte prepended when the high bit of the first byte is set so the value
// is not interpreted as negative.
func EncodeDER(r, s *big.Int) ([]byte, error) {
	if r == nil || s == nil || r.Sign() < 0 || s.Sign() < 0 {
		return nil, makeError(ErrEncoding, "signature components must be "+
			"non-negative integers")
	}
	return encodeDER(r.Bytes(), s.Bytes())
}

// encodeDER encodes the big-endian unsigned components r and s as a DER
// sequence of two integers.
func encodeDER(r, s []byte) ([]byte, error) {
	canonR, canonS := canonicalInt(r), canonicalInt(s)

	// Total length of returned signature is 1 byte for each magic and length
	// (6 total), plus lengths of R and S.
	totalLen := 6 + len(canonR) + len(canonS)
	if totalLen-2 > maxShortFormLen {
		str := fmt.Sprintf("signature body of %d bytes requires a long "+
			"form length", totalLen-2)
		return nil, makeError(ErrEncoding, str)
	}

	b := make([]byte, 0, totalLen)
	b = append(b, asn1SequenceID)
	b = append(b, byte(totalLen-2))
	b = append(b, asn1IntegerID)
	b = append(b, byte(len(canonR)))
	b = append(b, canonR...)
	b = append(b, asn1IntegerID)
	b = append(b, byte(len(canonS)))
	b = append(b, canonS...)
	return b, nil
}

// canonicalInt returns the DER content octets for the big-endian unsigned
// integer b: leading zero bytes are trimmed and a single zero byte is
// prepended when the high bit of the first remaining byte is set.
func canonicalInt(b []byte) []byte {
	for len(b) > 0 && b[0] == 0x00 {
		b = b[1:]
	}
	if len(b) == 0 {
		return []byte{0x00}
	}
	if b[0]&0x80 != 0 {
		padded := make([]byte, len(b)+1)
		copy(padded[1:], b)
		return padded
	}
	return b
}

// DecodeDER parses a DER encoded sequence of two integers as produced by
// EncodeDER and returns the unsigned values of R and S.
func DecodeDER(sig []byte) (r, s *big.Int, err error) {
	// The minimal signature is when both numbers are 1 byte:
	// 0x30 + <0x06> + 0x02 + 0x01 + <byte> + 0x02 + 0x01 + <byte>
	const minSigLen = 8
	if len(sig) < minSigLen {
		str := fmt.Sprintf("malformed signature: too short: %d < %d",
			len(sig), minSigLen)
		return nil, nil, signatureError(ErrMalformedSignature, str)
	}

	if sig[0] != asn1SequenceID {
		str := fmt.Sprintf("malformed signature: format has wrong type: "+
			"%#x, want %#x", sig[0], asn1SequenceID)
		return nil, nil, signatureError(ErrMalformedSignature, str)
	}

	seqLen := int(sig[1])
	if seqLen > maxShortFormLen {
		str := fmt.Sprintf("malformed signature: long form sequence "+
			"length %#x is not supported", sig[1])
		return nil, nil, signatureError(ErrMalformedSignature, str)
	}
	if seqLen != len(sig)-2 {
		str := fmt.Sprintf("malformed signature: bad length: %d != %d",
			seqLen, len(sig)-2)
		return nil, nil, signatureError(ErrMalformedSignature, str)
	}

	rest := sig[2:]
	r, rest, err = parseDERInt(rest, "R")
	if err != nil {
		return nil, nil, err
	}
	s, rest, err = parseDERInt(rest, "S")
	if err != nil {
		return nil, nil, err
	}
	if len(rest) != 0 {
		str := fmt.Sprintf("malformed signature: %d unexpected trailing "+
			"bytes", len(rest))
		return nil, nil, signatureError(ErrMalformedSignature, str)
	}
	return r, s, nil
}

// parseDERInt parses one DER integer named name from the front of b and
// returns its unsigned value along with the remaining bytes.
func parseDERInt(b []byte, name string) (*big.Int, []byte, error) {
	if len(b) < 2 {
		str := fmt.Sprintf("malformed signature: missing %s type id or "+
			"length", name)
		return nil, nil, signatureError(ErrMalformedSignature, str)
	}
	if b[0] != asn1IntegerID {
		str := fmt.Sprintf("malformed signature: %s integer marker: %#x "+
			"!= %#x", name, b[0], asn1IntegerID)
		return nil, nil, signatureError(ErrMalformedSignature, str)
	}

	intLen := int(b[1])
	switch {
	case intLen > maxShortFormLen:
		str := fmt.Sprintf("malformed signature: long form %s length %#x "+
			"is not supported", name, b[1])
		return nil, nil, signatureError(ErrMalformedSignature, str)
	case intLen == 0:
		str := fmt.Sprintf("malformed signature: %s length is zero", name)
		return nil, nil, signatureError(ErrMalformedSignature, str)
	case intLen > len(b)-2:
		str := fmt.Sprintf("malformed signature: %s length %d exceeds "+
			"the %d remaining bytes", name, intLen, len(b)-2)
		return nil, nil, signatureError(ErrMalformedSignature, str)
	}

	content := b[2 : 2+intLen]
	if content[0]&0x80 != 0 {
		str := fmt.Sprintf("malformed signature: %s is negative", name)
		return nil, nil, signatureError(ErrMalformedSignature, str)
	}

	// Strip the zero padding that keeps the value non-negative.
	for len(content) > 1 && content[0] == 0x00 {
		content = content[1:]
	}
	return new(big.Int).SetBytes(content), b[2+intLen:], nil
}
