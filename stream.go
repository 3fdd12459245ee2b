// Copyright (c) 2021 The minisign Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minisign

import (
	"hash"

	"golang.org/x/crypto/blake2b"
)

// A StreamVerifier verifies a prehashed signature against data supplied
// incrementally, so large files never have to be held in memory.
//
// It only supports prehashed signatures: a legacy signature covers the
// raw data, which would have to be retained in full.
type StreamVerifier struct {
	publicKey *PublicKey
	signature *Signature
	hasher    hash.Hash
}

// NewStreamVerifier sets up a stream verifier for sig. Feed the data with
// Update or Write, then call Finalize once.
func (pk *PublicKey) NewStreamVerifier(sig *Signature) (*StreamVerifier, error) {
	if pk.keyID != sig.keyID {
		return nil, ErrUnexpectedKeyID
	}
	if !sig.isPrehashed {
		return nil, ErrUnsupportedLegacyMode
	}
	hasher, err := blake2b.New512(nil)
	if err != nil {
		return nil, err
	}
	return &StreamVerifier{
		publicKey: pk,
		signature: sig,
		hasher:    hasher,
	}, nil
}

// Update absorbs the next chunk of the data.
func (v *StreamVerifier) Update(buf []byte) {
	v.hasher.Write(buf)
}

// Write implements io.Writer, so a verifier can be the target of
// io.Copy. It never returns an error.
func (v *StreamVerifier) Write(p []byte) (int, error) {
	v.hasher.Write(p)
	return len(p), nil
}

// Finalize checks the signature against the absorbed data. The verifier
// must not be used again afterwards.
func (v *StreamVerifier) Finalize() error {
	return v.publicKey.verifyEd25519(v.hasher.Sum(nil), v.signature)
}
