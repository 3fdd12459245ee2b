// Copyright (c) 2021 The minisign Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command minisign-verify verifies a file against a Minisign public key
// and a detached .minisig signature.
//
//	minisign-verify -P RWQf6LRC... -m file.tar.gz
//
// By default the signature is read from <file>.minisig and the data is
// streamed through the verifier, so arbitrarily large files can be
// checked. Legacy (non-prehashed) signatures require -l and load the
// whole file into memory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/sigstash/minisign"
)

func main() {
	var (
		pubKeyFile = flag.String("p", "", "public key file (default: minisign.pub)")
		pubKeyB64  = flag.String("P", "", "public key as base64, instead of -p")
		dataFile   = flag.String("m", "", "file to verify")
		sigFile    = flag.String("x", "", "signature file (default: <file>.minisig)")
		legacy     = flag.Bool("l", false, "accept legacy (non-prehashed) signatures")
		quiet      = flag.Bool("q", false, "quiet mode, suppress output")
	)
	flag.Parse()

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	log := zerolog.New(output).With().Timestamp().Logger()
	if *quiet {
		log = zerolog.Nop()
	}

	if *dataFile == "" {
		fmt.Fprintln(os.Stderr, "usage: minisign-verify [-p pubkeyfile | -P pubkey] [-x sigfile] [-l] [-q] -m file")
		flag.PrintDefaults()
		os.Exit(2)
	}

	publicKey, err := loadPublicKey(*pubKeyB64, *pubKeyFile)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load public key")
	}

	sigPath := *sigFile
	if sigPath == "" {
		sigPath = *dataFile + ".minisig"
	}
	signature, err := minisign.NewSignatureFromFile(sigPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", sigPath).Msg("cannot load signature")
	}

	if err := verify(publicKey, signature, *dataFile, *legacy); err != nil {
		log.Fatal().Err(err).Str("file", *dataFile).Msg("signature verification failed")
	}

	log.Info().
		Str("file", *dataFile).
		Str("trusted_comment", signature.TrustedComment()).
		Msg("signature and comment signature verified")
}

func loadPublicKey(b64, path string) (*minisign.PublicKey, error) {
	if b64 != "" {
		return minisign.NewPublicKey(b64)
	}
	if path == "" {
		path = "minisign.pub"
	}
	return minisign.NewPublicKeyFromFile(path)
}

func verify(publicKey *minisign.PublicKey, signature *minisign.Signature, path string, legacy bool) error {
	verifier, err := publicKey.NewStreamVerifier(signature)
	if errors.Is(err, minisign.ErrUnsupportedLegacyMode) {
		// Legacy signatures cover the raw data, so the file cannot be
		// streamed.
		if !legacy {
			return minisign.ErrUnexpectedAlgorithm
		}
		bin, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return publicKey.Verify(bin, signature, true)
	} else if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(verifier, f); err != nil {
		return err
	}
	return verifier.Finalize()
}
