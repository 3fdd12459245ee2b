// Copyright (c) 2021 The minisign Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minisign_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"

	"github.com/sigstash/minisign"
)

func TestVerifyStream(t *testing.T) {
	publicKey, err := minisign.NewPublicKey(testPublicKeyB64)
	require.NoError(t, err)

	signature, err := minisign.DecodeSignature(testPrehashedSignature)
	require.NoError(t, err)

	verifier, err := publicKey.NewStreamVerifier(signature)
	require.NoError(t, err)

	verifier.Update([]byte("te"))
	verifier.Update([]byte("st"))
	assert.NoError(t, verifier.Finalize())
}

func TestVerifyStreamRejectsWrongData(t *testing.T) {
	publicKey, err := minisign.NewPublicKey(testPublicKeyB64)
	require.NoError(t, err)

	signature, err := minisign.DecodeSignature(testPrehashedSignature)
	require.NoError(t, err)

	verifier, err := publicKey.NewStreamVerifier(signature)
	require.NoError(t, err)

	verifier.Update([]byte("Test"))
	assert.ErrorIs(t, verifier.Finalize(), minisign.ErrInvalidSignature)
}

func TestVerifyStreamRejectsLegacy(t *testing.T) {
	publicKey, err := minisign.NewPublicKey(testPublicKeyB64)
	require.NoError(t, err)

	signature, err := minisign.DecodeSignature(testLegacySignature)
	require.NoError(t, err)

	_, err = publicKey.NewStreamVerifier(signature)
	assert.ErrorIs(t, err, minisign.ErrUnsupportedLegacyMode)
}

func TestStreamMatchesOneShot(t *testing.T) {
	signer := newTestSigner(t)
	publicKey, err := minisign.NewPublicKey(signer.publicKeyB64())
	require.NoError(t, err)

	message := frand.Bytes(1 << 16)
	signature, err := minisign.DecodeSignature(signer.sign(message, "timestamp:1629753125", true))
	require.NoError(t, err)

	require.NoError(t, publicKey.Verify(message, signature, false))

	// Feeding the same data through the io.Writer side in odd-sized
	// chunks must agree with the one-shot verification.
	verifier, err := publicKey.NewStreamVerifier(signature)
	require.NoError(t, err)

	r := bytes.NewReader(message)
	buf := make([]byte, 1237)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			_, werr := verifier.Write(buf[:n])
			require.NoError(t, werr)
		}
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}
	assert.NoError(t, verifier.Finalize())
}

func TestStreamKeyIDMismatch(t *testing.T) {
	signer := newTestSigner(t)
	other := newTestSigner(t)

	publicKey, err := minisign.NewPublicKey(other.publicKeyB64())
	require.NoError(t, err)

	signature, err := minisign.DecodeSignature(signer.sign(frand.Bytes(16), "timestamp:1629753125", true))
	require.NoError(t, err)

	_, err = publicKey.NewStreamVerifier(signature)
	assert.ErrorIs(t, err, minisign.ErrUnexpectedKeyID)
}
