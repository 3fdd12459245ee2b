// Copyright (c) 2021 The minisign Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minisign verifies Minisign signatures.
//
// Minisign is a dead-simple tool to sign files and verify signatures,
// using Ed25519. A public key is a short base64 string, and a signature
// file carries the Ed25519 signature of the data (or of its BLAKE2b-512
// prehash, for signatures made by modern versions of Minisign) together
// with a signed trusted comment.
//
//	publicKey, err := minisign.NewPublicKey("RWQf6LRCGA9i53mlYecO4IzT51TGPpvWucNSCh1CBM0QTaLn73Y7GFO3")
//	if err != nil {
//		// ...
//	}
//	signature, err := minisign.NewSignatureFromFile("file.minisig")
//	if err != nil {
//		// ...
//	}
//	if err := publicKey.Verify(data, signature, false); err != nil {
//		// ...
//	}
package minisign

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/sigstash/minisign/internal/edwards25519"
)

var (
	// ErrInvalidEncoding is returned when a public key or signature is not
	// in the expected format.
	ErrInvalidEncoding = errors.New("minisign: invalid encoding")

	// ErrInvalidSignature is returned when a signature does not verify.
	ErrInvalidSignature = errors.New("minisign: invalid signature")

	// ErrUnexpectedAlgorithm is returned when a legacy (non-prehashed)
	// signature is verified without legacy mode explicitly allowed.
	ErrUnexpectedAlgorithm = errors.New("minisign: unexpected algorithm")

	// ErrUnexpectedKeyID is returned when a signature was not made with
	// the key it is verified against.
	ErrUnexpectedKeyID = errors.New("minisign: unexpected key identifier")

	// ErrUnsupportedAlgorithm is returned when a public key or signature
	// carries an unknown algorithm tag.
	ErrUnsupportedAlgorithm = errors.New("minisign: unsupported algorithm")

	// ErrUnsupportedLegacyMode is returned when a StreamVerifier is
	// requested for a legacy signature, which signs the raw data and
	// therefore cannot be verified incrementally.
	ErrUnsupportedLegacyMode = errors.New("minisign: stream verification requires a prehashed signature")
)

// Algorithm tags, as they appear at the start of key and signature blobs.
var (
	algEd25519          = [2]byte{0x45, 0x64} // "Ed", legacy: signature over the raw data
	algEd25519Prehashed = [2]byte{0x45, 0x44} // "ED", signature over the BLAKE2b-512 of the data
)

const trustedCommentPrefix = "trusted comment: "

// A PublicKey is a Minisign public key: an Ed25519 point with an 8-byte
// key identifier, optionally annotated with an untrusted comment when
// loaded from a key file.
type PublicKey struct {
	untrustedComment   string
	signatureAlgorithm [2]byte
	keyID              [8]byte
	key                [32]byte
}

// NewPublicKey decodes a public key from its base64 representation, as
// distributed inline (without a comment line).
func NewPublicKey(publicKeyB64 string) (*PublicKey, error) {
	bin, err := base64.StdEncoding.DecodeString(publicKeyB64)
	if err != nil || len(bin) != 42 {
		return nil, ErrInvalidEncoding
	}

	pk := &PublicKey{}
	copy(pk.signatureAlgorithm[:], bin[0:2])
	if pk.signatureAlgorithm != algEd25519 && pk.signatureAlgorithm != algEd25519Prehashed {
		return nil, ErrUnsupportedAlgorithm
	}
	copy(pk.keyID[:], bin[2:10])
	copy(pk.key[:], bin[10:42])
	return pk, nil
}

// DecodePublicKey decodes a public key in the format of a minisign.pub
// file: an untrusted comment line followed by the base64 key.
func DecodePublicKey(text string) (*PublicKey, error) {
	lines := splitLines(text)
	if len(lines) < 2 {
		return nil, ErrInvalidEncoding
	}
	pk, err := NewPublicKey(lines[1])
	if err != nil {
		return nil, err
	}
	pk.untrustedComment = lines[0]
	return pk, nil
}

// NewPublicKeyFromFile loads a public key from a file, such as the
// minisign.pub file written alongside a signing key.
func NewPublicKeyFromFile(path string) (*PublicKey, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("minisign: loading public key: %w", err)
	}
	return DecodePublicKey(string(text))
}

// UntrustedComment returns the comment line of the key file the key was
// loaded from, or the empty string if the key was decoded from bare
// base64. The comment is not signed and must not be trusted.
func (pk *PublicKey) UntrustedComment() string {
	return pk.untrustedComment
}

// A Signature is a parsed Minisign signature file: the Ed25519 signature
// of the data, and a trusted comment covered by a second, global
// signature.
type Signature struct {
	untrustedComment string
	keyID            [8]byte
	signature        [64]byte
	trustedComment   string
	globalSignature  [64]byte
	isPrehashed      bool
}

// DecodeSignature decodes a signature in the format of a .minisig file:
// an untrusted comment line, the base64 signature blob, the trusted
// comment line, and the base64 global signature.
func DecodeSignature(text string) (*Signature, error) {
	lines := splitLines(text)
	if len(lines) < 4 {
		return nil, ErrInvalidEncoding
	}

	bin1, err := base64.StdEncoding.DecodeString(lines[1])
	if err != nil || len(bin1) != 74 {
		return nil, ErrInvalidEncoding
	}
	bin2, err := base64.StdEncoding.DecodeString(lines[3])
	if err != nil || len(bin2) != 64 {
		return nil, ErrInvalidEncoding
	}
	if !strings.HasPrefix(lines[2], trustedCommentPrefix) {
		return nil, ErrInvalidEncoding
	}

	sig := &Signature{
		untrustedComment: lines[0],
		trustedComment:   lines[2],
	}
	var alg [2]byte
	copy(alg[:], bin1[0:2])
	switch alg {
	case algEd25519:
		sig.isPrehashed = false
	case algEd25519Prehashed:
		sig.isPrehashed = true
	default:
		return nil, ErrUnsupportedAlgorithm
	}
	copy(sig.keyID[:], bin1[2:10])
	copy(sig.signature[:], bin1[10:74])
	copy(sig.globalSignature[:], bin2)
	return sig, nil
}

// NewSignatureFromFile loads a signature from a .minisig file.
func NewSignatureFromFile(path string) (*Signature, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("minisign: loading signature: %w", err)
	}
	return DecodeSignature(string(text))
}

// TrustedComment returns the trusted comment of the signature, without
// its line prefix. It is covered by the global signature, so after a
// successful verification it can be trusted.
func (sig *Signature) TrustedComment() string {
	return sig.trustedComment[len(trustedCommentPrefix):]
}

// UntrustedComment returns the unsigned comment line of the signature
// file.
func (sig *Signature) UntrustedComment() string {
	return sig.untrustedComment
}

// verifyEd25519 checks both the data signature and the global signature,
// which covers the data signature concatenated with the trusted comment.
func (pk *PublicKey) verifyEd25519(bin []byte, sig *Signature) error {
	if !edwards25519.Verify(pk.key[:], bin, sig.signature[:]) {
		return ErrInvalidSignature
	}
	global := make([]byte, 0, len(sig.signature)+len(sig.TrustedComment()))
	global = append(global, sig.signature[:]...)
	global = append(global, sig.TrustedComment()...)
	if !edwards25519.Verify(pk.key[:], global, sig.globalSignature[:]) {
		return ErrInvalidSignature
	}
	return nil
}

// Verify checks that sig is a valid signature of bin by pk.
//
// allowLegacy should only be set to support signatures made by older
// versions of Minisign, which sign the raw data instead of its
// BLAKE2b-512 prehash.
func (pk *PublicKey) Verify(bin []byte, sig *Signature, allowLegacy bool) error {
	if !bytes.Equal(pk.keyID[:], sig.keyID[:]) {
		return ErrUnexpectedKeyID
	}
	if sig.isPrehashed {
		h := blake2b.Sum512(bin)
		bin = h[:]
	} else if !allowLegacy {
		return ErrUnexpectedAlgorithm
	}
	return pk.verifyEd25519(bin, sig)
}

// splitLines splits text into lines, accepting both LF and CRLF endings.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
