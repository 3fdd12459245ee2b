// Copyright (c) 2021 The minisign Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"testing"
	"testing/quick"
)

// generatorBytes is the canonical encoding of the base point, y = 4/5.
var generatorBytes, _ = hex.DecodeString(
	"5866666666666666666666666666666666666666666666666666666666666666")

// decodePoint decodes a compressed encoding into extended coordinates,
// undoing the negation SetBytesNegateVartime applies.
func decodePoint(tb testing.TB, enc []byte) *Point {
	tb.Helper()
	p, err := new(Point).SetBytesNegateVartime(enc)
	if err != nil {
		tb.Fatalf("failed to decode point %x: %v", enc, err)
	}
	return p.Negate(p)
}

// randomPoint returns [k]B for the scalar encoded in b.
func randomPoint(tb testing.TB, b *[32]byte) *Point {
	var zero [32]byte
	var r projP2
	r.VarTimeDoubleScalarBaseMult(&zero, NewIdentityPoint(), b)
	return decodePoint(tb, r.Bytes())
}

func TestGeneratorRoundTrip(t *testing.T) {
	B := decodePoint(t, generatorBytes)

	var p2 projP2
	if got := p2.FromP3(B).Bytes(); !bytes.Equal(got, generatorBytes) {
		t.Errorf("generator round-trip: got %x, want %x", got, generatorBytes)
	}

	// The raw decompression result is -B, whose encoding differs only in
	// the sign bit.
	negB, err := new(Point).SetBytesNegateVartime(generatorBytes)
	if err != nil {
		t.Fatal(err)
	}
	wantNeg := append([]byte(nil), generatorBytes...)
	wantNeg[31] ^= 0x80
	if got := p2.FromP3(negB).Bytes(); !bytes.Equal(got, wantNeg) {
		t.Errorf("negated generator: got %x, want %x", got, wantNeg)
	}
}

func TestIdentityDecompression(t *testing.T) {
	enc := make([]byte, 32)
	enc[0] = 1

	p := decodePoint(t, enc)
	if p.Equal(NewIdentityPoint()) != 1 {
		t.Error("decoded identity does not equal NewIdentityPoint")
	}

	var p2 projP2
	if got := p2.FromP3(p).Bytes(); !bytes.Equal(got, enc) {
		t.Errorf("identity round-trip: got %x, want %x", got, enc)
	}
}

func TestInvalidPointLength(t *testing.T) {
	if _, err := new(Point).SetBytesNegateVartime(generatorBytes[:31]); err == nil {
		t.Error("expected error for short encoding")
	}
	if _, err := new(Point).SetBytesNegateVartime(append(generatorBytes, 0)); err == nil {
		t.Error("expected error for long encoding")
	}
}

func TestDecompressionRoundTrip(t *testing.T) {
	f := func(in [32]byte) bool {
		in[31] &= 0x7f
		// Skip non-canonical y values, which decode but re-encode reduced.
		if new(big.Int).SetBytes(swapEndianness(append([]byte(nil), in[:]...))).Cmp(bigP) >= 0 {
			return true
		}

		p, err := new(Point).SetBytesNegateVartime(in[:])
		if err != nil {
			return true // not a curve point
		}
		p.Negate(p)

		var p2 projP2
		return bytes.Equal(p2.FromP3(p).Bytes(), in[:])
	}
	if err := quick.Check(f, quickCheckConfig1024); err != nil {
		t.Error(err)
	}
}

func TestAddSubConsistency(t *testing.T) {
	f := func(bp, bq [32]byte) bool {
		bp[31] &= 0x0f
		bq[31] &= 0x0f
		P := randomPoint(t, &bp)
		Q := randomPoint(t, &bq)

		var qCached projCached
		qCached.FromP3(Q)

		var t1 projP1xP1
		var r Point
		t1.Add(P, &qCached)
		r.fromP1xP1(&t1)
		t1.Sub(&r, &qCached)
		r.fromP1xP1(&t1)

		return r.Equal(P) == 1
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 32}); err != nil {
		t.Error(err)
	}
}

func TestAffineAddMatchesProjective(t *testing.T) {
	var bp [32]byte
	bp[0] = 7
	P := randomPoint(t, &bp)
	B := decodePoint(t, generatorBytes)

	var bCached projCached
	bCached.FromP3(B)

	var t1 projP1xP1
	var want, got Point
	t1.Add(P, &bCached)
	want.fromP1xP1(&t1)

	t1.AddAffine(P, &basepointNafTable[0])
	got.fromP1xP1(&t1)

	if got.Equal(&want) != 1 {
		t.Error("affine and projective addition of B disagree")
	}

	t1.Sub(P, &bCached)
	want.fromP1xP1(&t1)

	t1.SubAffine(P, &basepointNafTable[0])
	got.fromP1xP1(&t1)

	if got.Equal(&want) != 1 {
		t.Error("affine and projective subtraction of B disagree")
	}
}

func TestDoubleMatchesAdd(t *testing.T) {
	B := decodePoint(t, generatorBytes)

	var bCached projCached
	bCached.FromP3(B)

	var t1 projP1xP1
	var want, got Point
	t1.Add(B, &bCached)
	want.fromP1xP1(&t1)

	var p2 projP2
	t1.Double(p2.FromP3(B))
	got.fromP1xP1(&t1)

	if got.Equal(&want) != 1 {
		t.Error("2B via doubling does not match B+B")
	}
}
