// Copyright (c) 2021 The minisign Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

// slide decodes a 256-bit little-endian scalar into 256 signed digits in
// {0, ±1, ±3, ..., ±15}, such that a = sum(r[i] * 2^i) and any two nonzero
// digits are at least 4 apart. The recoding scans low to high, absorbing up
// to five following bits into the current digit and rippling a borrow
// upward when the combined digit would leave the odd window.
func slide(r *[256]int8, a *[32]byte) {
	for i := range r {
		r[i] = int8(1 & (a[i>>3] >> uint(i&7)))
	}

	for i := 0; i < 256; i++ {
		if r[i] == 0 {
			continue
		}
		for b := 1; b <= 6 && i+b < 256; b++ {
			if r[i+b] == 0 {
				continue
			}
			if r[i]+(r[i+b]<<uint(b)) <= 15 {
				r[i] += r[i+b] << uint(b)
				r[i+b] = 0
			} else if r[i]-(r[i+b]<<uint(b)) >= -15 {
				r[i] -= r[i+b] << uint(b)
				for k := i + b; k < 256; k++ {
					if r[k] == 0 {
						r[k] = 1
						break
					}
					r[k] = 0
				}
			} else {
				break
			}
		}
	}
}

// VarTimeDoubleScalarBaseMult sets v = a * A + b * B, where B is the
// canonical generator, and returns v. Both scalars must be reduced.
//
// Execution time depends on the scalars, so this must only ever be used
// with public inputs, which for signature verification they are.
func (v *projP2) VarTimeDoubleScalarBaseMult(a *[32]byte, A *Point, b *[32]byte) *projP2 {
	var aSlide, bSlide [256]int8
	slide(&aSlide, a)
	slide(&bSlide, b)

	// Runtime table of the odd multiples A, 3A, 5A, ..., 15A.
	var aTable [8]projCached
	aTable[0].FromP3(A)
	var t projP1xP1
	var A2, tmp Point
	A2.fromP1xP1(t.Double(new(projP2).FromP3(A)))
	for i := 0; i < 7; i++ {
		aTable[i+1].FromP3(tmp.fromP1xP1(t.Add(&A2, &aTable[i])))
	}

	v.Zero()

	i := 255
	for ; i >= 0; i-- {
		if aSlide[i] != 0 || bSlide[i] != 0 {
			break
		}
	}

	var p Point
	for ; i >= 0; i-- {
		t.Double(v)

		if aSlide[i] > 0 {
			t.Add(p.fromP1xP1(&t), &aTable[aSlide[i]/2])
		} else if aSlide[i] < 0 {
			t.Sub(p.fromP1xP1(&t), &aTable[-aSlide[i]/2])
		}

		if bSlide[i] > 0 {
			t.AddAffine(p.fromP1xP1(&t), &basepointNafTable[bSlide[i]/2])
		} else if bSlide[i] < 0 {
			t.SubAffine(p.fromP1xP1(&t), &basepointNafTable[-bSlide[i]/2])
		}

		v.FromP1xP1(&t)
	}
	return v
}
