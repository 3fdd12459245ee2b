// Copyright (c) 2021 The minisign Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

import "encoding/binary"

// Scalar arithmetic modulo the prime order of the group,
// l = 2^252 + 27742317777372353535851937790883648493.
//
// A 512-bit value is held as 24 limbs of 21 bits each. Reduction works by
// repeatedly folding the limbs above position 11 back down using
// l = 2^252 - c, where the six constants below are the 21-bit limbs of c
// (with the signs of the negative limbs baked into the fold).

// scFold eliminates limb i by adding s[i] * 2^(21*i) mod l into the six
// limbs starting at i-12. The caller is responsible for discarding s[i].
func scFold(s *[24]int64, i int) {
	c := s[i]
	s[i-12] += c * 666643
	s[i-11] += c * 470296
	s[i-10] += c * 654183
	s[i-9] -= c * 997805
	s[i-8] += c * 136657
	s[i-7] -= c * 683901
}

// scCarry moves the excess of limb i into limb i+1, rounding to nearest so
// the remaining limb is centered on zero.
func scCarry(s *[24]int64, i int) {
	c := (s[i] + (1 << 20)) >> 21
	s[i+1] += c
	s[i] -= c << 21
}

// scCarryTrunc is the truncating variant used for the final passes, leaving
// limb i non-negative.
func scCarryTrunc(s *[24]int64, i int) {
	c := s[i] >> 21
	s[i+1] += c
	s[i] -= c << 21
}

// scReduce sets out to src mod l, where src is a 512-bit little-endian
// integer, producing the fully reduced 32-byte encoding.
func scReduce(out *[32]byte, src *[64]byte) {
	var s [24]int64
	for i := 0; i < 23; i++ {
		s[i] = 2097151 & (load4(src[21*i/8:]) >> uint(21*i%8))
	}
	s[23] = load4(src[60:]) >> 3

	for i := 23; i >= 18; i-- {
		scFold(&s, i)
	}

	for _, i := range [...]int{6, 8, 10, 12, 14, 16, 7, 9, 11, 13, 15} {
		scCarry(&s, i)
	}

	for i := 17; i >= 12; i-- {
		scFold(&s, i)
	}
	s[12] = 0

	for _, i := range [...]int{0, 2, 4, 6, 8, 10, 1, 3, 5, 7, 9, 11} {
		scCarry(&s, i)
	}

	scFold(&s, 12)
	s[12] = 0
	for i := 0; i < 12; i++ {
		scCarryTrunc(&s, i)
	}

	// One more fold: the previous carry chain can leave a single bit in
	// limb 12, and after eliminating it the carries cannot overflow again.
	scFold(&s, 12)
	for i := 0; i < 11; i++ {
		scCarryTrunc(&s, i)
	}

	out[0] = byte(s[0] >> 0)
	out[1] = byte(s[0] >> 8)
	out[2] = byte((s[0] >> 16) | (s[1] << 5))
	out[3] = byte(s[1] >> 3)
	out[4] = byte(s[1] >> 11)
	out[5] = byte((s[1] >> 19) | (s[2] << 2))
	out[6] = byte(s[2] >> 6)
	out[7] = byte((s[2] >> 14) | (s[3] << 7))
	out[8] = byte(s[3] >> 1)
	out[9] = byte(s[3] >> 9)
	out[10] = byte((s[3] >> 17) | (s[4] << 4))
	out[11] = byte(s[4] >> 4)
	out[12] = byte(s[4] >> 12)
	out[13] = byte((s[4] >> 20) | (s[5] << 1))
	out[14] = byte(s[5] >> 7)
	out[15] = byte((s[5] >> 15) | (s[6] << 6))
	out[16] = byte(s[6] >> 2)
	out[17] = byte(s[6] >> 10)
	out[18] = byte((s[6] >> 18) | (s[7] << 3))
	out[19] = byte(s[7] >> 5)
	out[20] = byte(s[7] >> 13)
	out[21] = byte(s[8] >> 0)
	out[22] = byte(s[8] >> 8)
	out[23] = byte((s[8] >> 16) | (s[9] << 5))
	out[24] = byte(s[9] >> 3)
	out[25] = byte(s[9] >> 11)
	out[26] = byte((s[9] >> 19) | (s[10] << 2))
	out[27] = byte(s[10] >> 6)
	out[28] = byte((s[10] >> 14) | (s[11] << 7))
	out[29] = byte(s[11] >> 1)
	out[30] = byte(s[11] >> 9)
	out[31] = byte(s[11] >> 17)
}

// order is the group order l as four little-endian 64-bit words.
var order = [4]uint64{0x5812631a5cf5d3ed, 0x14def9dea2f79cd6, 0, 0x1000000000000000}

// scMinimal returns true if the given 32-byte scalar is strictly less than
// the group order l, i.e. already in canonical reduced form.
func scMinimal(sc []byte) bool {
	for i := 3; ; i-- {
		v := binary.LittleEndian.Uint64(sc[i*8:])
		if v > order[i] {
			return false
		} else if v < order[i] {
			break
		} else if i == 0 {
			return false
		}
	}
	return true
}
