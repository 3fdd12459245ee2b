// Copyright (c) 2021 The minisign Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

import (
	"crypto/sha512"
	"crypto/subtle"
)

const (
	// PublicKeySize is the size, in bytes, of an encoded public key point.
	PublicKeySize = 32
	// SignatureSize is the size, in bytes, of an encoded signature (R ‖ S).
	SignatureSize = 64
)

// isIdentity reports whether s encodes the identity element, which has
// y == 1 and x == 0. The sign bit is masked so both encodings of the
// identity are caught.
func isIdentity(s []byte) bool {
	c := s[0] ^ 0x01
	for i := 1; i < 31; i++ {
		c |= s[i]
	}
	c |= s[31] & 0x7f
	return c == 0
}

// Verify reports whether sig is a valid signature of message by publicKey.
//
// The predicate is the cofactorless equation [S]B == R + [k]A, checked as
// an encoding comparison: R' = [k](-A) + [S]B must re-encode to the exact
// R bytes carried in the signature. Non-canonical S, the identity public
// key and the all-zero public key are rejected up front; R itself is
// compared bytewise, so a non-canonical R never verifies.
func Verify(publicKey, message, sig []byte) bool {
	if len(publicKey) != PublicKeySize || len(sig) != SignatureSize {
		return false
	}
	if !scMinimal(sig[32:]) {
		return false
	}
	if isIdentity(publicKey) {
		return false
	}

	// SetBytesNegateVartime gives -A, which is what the double scalar
	// multiplication below wants.
	negA, err := new(Point).SetBytesNegateVartime(publicKey)
	if err != nil {
		return false
	}
	z := byte(0)
	for _, b := range publicKey {
		z |= b
	}
	if z == 0 {
		return false
	}

	h := sha512.New()
	h.Write(sig[:32])
	h.Write(publicKey)
	h.Write(message)
	var digest [64]byte
	h.Sum(digest[:0])

	var k, s [32]byte
	scReduce(&k, &digest)
	copy(s[:], sig[32:])

	var R projP2
	R.VarTimeDoubleScalarBaseMult(&k, negA, &s)

	return subtle.ConstantTimeCompare(R.Bytes(), sig[:32]) == 1
}
