// Copyright (c) 2021 The minisign Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

import "crypto/subtle"

// FieldElement represents an element of the field GF(2^255-19).
//
// Limbs are in the ref10 mixed radix: limb i carries roughly 25.5 bits,
// alternating 26-bit (even limbs) and 25-bit (odd limbs) windows, so an
// element t represents the integer
//
//	t[0] + t[1]*2^26 + t[2]*2^51 + t[3]*2^77 + t[4]*2^102 + t[5]*2^128 +
//	t[6]*2^153 + t[7]*2^179 + t[8]*2^204 + t[9]*2^230
//
// Between operations limbs may be negative and slightly out of range; the
// bounds are maintained so that the 64-bit accumulators in Multiply and
// Square cannot overflow. A canonical representative in [0, 2^255-19) only
// exists at the byte level: Bytes performs the final reduction, and all
// sign/equality tests go through the byte encoding.
type FieldElement [10]int32

var (
	feZero FieldElement
	feOne  = FieldElement{1}

	// d is the twisted Edwards curve constant -121665/121666.
	d = FieldElement{-10913610, 13857413, -15372611, 6949391, 114729,
		-8787816, -6275908, -3247719, -18696448, -12055116}

	// d2 is 2*d, pre-scaled for the cached-operand addition formulas.
	d2 = FieldElement{-21827239, -5839606, -30745221, 13898782, 229458,
		15978800, -12551817, -6495438, 29715968, 9444199}

	// sqrtM1 is 2^((p-1)/4), a square root of -1, used to fix up the
	// candidate root during point decompression.
	sqrtM1 = FieldElement{-32595792, -7943725, 9377950, 3500415, 12389472,
		-272473, -25146209, -2005654, 326686, 11406482}
)

func load3(b []byte) int64 {
	return int64(b[0]) | int64(b[1])<<8 | int64(b[2])<<16
}

func load4(b []byte) int64 {
	return int64(b[0]) | int64(b[1])<<8 | int64(b[2])<<16 | int64(b[3])<<24
}

// Zero sets v = 0, and returns v.
func (v *FieldElement) Zero() *FieldElement {
	*v = feZero
	return v
}

// One sets v = 1, and returns v.
func (v *FieldElement) One() *FieldElement {
	*v = feOne
	return v
}

// Set sets v = a, and returns v.
func (v *FieldElement) Set(a *FieldElement) *FieldElement {
	*v = *a
	return v
}

// Add sets v = a + b, and returns v. No carrying is performed: the sum of
// two bounded elements stays well within the product-accumulator budget.
func (v *FieldElement) Add(a, b *FieldElement) *FieldElement {
	for i := range v {
		v[i] = a[i] + b[i]
	}
	return v
}

// Subtract sets v = a - b, and returns v.
func (v *FieldElement) Subtract(a, b *FieldElement) *FieldElement {
	for i := range v {
		v[i] = a[i] - b[i]
	}
	return v
}

// Negate sets v = -a, and returns v.
func (v *FieldElement) Negate(a *FieldElement) *FieldElement {
	for i := range v {
		v[i] = -a[i]
	}
	return v
}

// carry moves the excess of t[i] into the next limb, rounding to nearest so
// that the remaining limb is centered: even limbs keep 26 bits, odd limbs
// 25. The carry out of limb 9 wraps to limb 0 scaled by 19, since
// 2^255 = 19 (mod p).
func carry(t *[10]int64, i int) {
	shift := uint(26 - i&1)
	c := (t[i] + 1<<(shift-1)) >> shift
	if i == 9 {
		t[0] += c * 19
	} else {
		t[i+1] += c
	}
	t[i] -= c << shift
}

// reduce brings the 64-bit product accumulators down to bounded limbs using
// the exact ref10 carry schedule: the even and odd halves are interleaved,
// limb 9 folds into limb 0, and limb 0 is carried once more. The schedule,
// not just the end state, is what keeps every intermediate below 2^63.
func (v *FieldElement) reduce(t *[10]int64) *FieldElement {
	for _, i := range [...]int{0, 4, 1, 5, 2, 6, 3, 7, 4, 8, 9, 0} {
		carry(t, i)
	}
	for i := range v {
		v[i] = int32(t[i])
	}
	return v
}

// Multiply sets v = a * b, and returns v.
//
// This is a schoolbook multiply over the mixed radix with the two classic
// ref10 operand pre-scalings: a product of two odd limbs sits half a bit
// below its target window and must be doubled, and products that land beyond
// limb 9 wrap around multiplied by 19.
func (v *FieldElement) Multiply(a, b *FieldElement) *FieldElement {
	var f, f2, g, g19 [10]int64
	for i := 0; i < 10; i++ {
		f[i] = int64(a[i])
		f2[i] = 2 * f[i]
		g[i] = int64(b[i])
		g19[i] = 19 * g[i]
	}

	var t [10]int64
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			fi := f[i]
			if i&j&1 == 1 {
				fi = f2[i]
			}
			if k := i + j; k < 10 {
				t[k] += fi * g[j]
			} else {
				t[k-10] += fi * g19[j]
			}
		}
	}
	return v.reduce(&t)
}

// Square sets v = a * a, and returns v.
func (v *FieldElement) Square(a *FieldElement) *FieldElement {
	t := a.squareAccum()
	return v.reduce(&t)
}

// Square2 sets v = 2 * a * a, and returns v. The projective doubling
// formula wants 2*Z^2, and doubling the raw accumulators is cheaper than a
// separate addition after reduction.
func (v *FieldElement) Square2(a *FieldElement) *FieldElement {
	t := a.squareAccum()
	for i := range t {
		t[i] += t[i]
	}
	return v.reduce(&t)
}

// squareAccum computes the raw product accumulators for a*a, halving the
// work of Multiply by walking only the i <= j half of the limb grid and
// doubling the off-diagonal terms.
func (a *FieldElement) squareAccum() [10]int64 {
	var f, f19 [10]int64
	for i := 0; i < 10; i++ {
		f[i] = int64(a[i])
		f19[i] = 19 * f[i]
	}

	var t [10]int64
	for i := 0; i < 10; i++ {
		for j := i; j < 10; j++ {
			m := f[i]
			if i != j {
				m *= 2
			}
			if i&j&1 == 1 {
				m *= 2
			}
			if k := i + j; k < 10 {
				t[k] += m * f[j]
			} else {
				t[k-10] += m * f19[j]
			}
		}
	}
	return t
}

// Invert sets v = 1/a mod p, and returns v. If a == 0, Invert returns 0.
//
// Inversion is exponentiation by p-2 (Fermat), computed with the fixed ref10
// addition chain (11 multiplications, 254 squarings) rather than a generic
// square-and-multiply loop over the exponent bits.
func (v *FieldElement) Invert(a *FieldElement) *FieldElement {
	var z2, z9, z11, z2_5_0, z2_10_0, z2_20_0, z2_50_0, z2_100_0, t FieldElement

	z2.Square(a)             // 2
	t.Square(&z2)            // 4
	t.Square(&t)             // 8
	z9.Multiply(&t, a)       // 9
	z11.Multiply(&z9, &z2)   // 11
	t.Square(&z11)           // 22
	z2_5_0.Multiply(&t, &z9) // 31 = 2^5 - 2^0

	t.Square(&z2_5_0) // 2^6 - 2^1
	for i := 0; i < 4; i++ {
		t.Square(&t) // 2^10 - 2^5
	}
	z2_10_0.Multiply(&t, &z2_5_0) // 2^10 - 2^0

	t.Square(&z2_10_0) // 2^11 - 2^1
	for i := 0; i < 9; i++ {
		t.Square(&t) // 2^20 - 2^10
	}
	z2_20_0.Multiply(&t, &z2_10_0) // 2^20 - 2^0

	t.Square(&z2_20_0) // 2^21 - 2^1
	for i := 0; i < 19; i++ {
		t.Square(&t) // 2^40 - 2^20
	}
	t.Multiply(&t, &z2_20_0) // 2^40 - 2^0

	t.Square(&t) // 2^41 - 2^1
	for i := 0; i < 9; i++ {
		t.Square(&t) // 2^50 - 2^10
	}
	z2_50_0.Multiply(&t, &z2_10_0) // 2^50 - 2^0

	t.Square(&z2_50_0) // 2^51 - 2^1
	for i := 0; i < 49; i++ {
		t.Square(&t) // 2^100 - 2^50
	}
	z2_100_0.Multiply(&t, &z2_50_0) // 2^100 - 2^0

	t.Square(&z2_100_0) // 2^101 - 2^1
	for i := 0; i < 99; i++ {
		t.Square(&t) // 2^200 - 2^100
	}
	t.Multiply(&t, &z2_100_0) // 2^200 - 2^0

	t.Square(&t) // 2^201 - 2^1
	for i := 0; i < 49; i++ {
		t.Square(&t) // 2^250 - 2^50
	}
	t.Multiply(&t, &z2_50_0) // 2^250 - 2^0

	t.Square(&t) // 2^251 - 2^1
	for i := 0; i < 4; i++ {
		t.Square(&t) // 2^255 - 2^5
	}
	return v.Multiply(&t, &z11) // 2^255 - 21
}

// pow22523 sets v = a^((p-5)/8), and returns v. This is the exponentiation
// used to recover a candidate square root during point decompression; it
// shares everything but its tail with the Invert chain.
func (v *FieldElement) pow22523(a *FieldElement) *FieldElement {
	var z2, z9, z11, z2_5_0, z2_10_0, z2_20_0, z2_50_0, z2_100_0, t FieldElement

	z2.Square(a)             // 2
	t.Square(&z2)            // 4
	t.Square(&t)             // 8
	z9.Multiply(&t, a)       // 9
	z11.Multiply(&z9, &z2)   // 11
	t.Square(&z11)           // 22
	z2_5_0.Multiply(&t, &z9) // 31 = 2^5 - 2^0

	t.Square(&z2_5_0) // 2^6 - 2^1
	for i := 0; i < 4; i++ {
		t.Square(&t) // 2^10 - 2^5
	}
	z2_10_0.Multiply(&t, &z2_5_0) // 2^10 - 2^0

	t.Square(&z2_10_0) // 2^11 - 2^1
	for i := 0; i < 9; i++ {
		t.Square(&t) // 2^20 - 2^10
	}
	z2_20_0.Multiply(&t, &z2_10_0) // 2^20 - 2^0

	t.Square(&z2_20_0) // 2^21 - 2^1
	for i := 0; i < 19; i++ {
		t.Square(&t) // 2^40 - 2^20
	}
	t.Multiply(&t, &z2_20_0) // 2^40 - 2^0

	t.Square(&t) // 2^41 - 2^1
	for i := 0; i < 9; i++ {
		t.Square(&t) // 2^50 - 2^10
	}
	z2_50_0.Multiply(&t, &z2_10_0) // 2^50 - 2^0

	t.Square(&z2_50_0) // 2^51 - 2^1
	for i := 0; i < 49; i++ {
		t.Square(&t) // 2^100 - 2^50
	}
	z2_100_0.Multiply(&t, &z2_50_0) // 2^100 - 2^0

	t.Square(&z2_100_0) // 2^101 - 2^1
	for i := 0; i < 99; i++ {
		t.Square(&t) // 2^200 - 2^100
	}
	t.Multiply(&t, &z2_100_0) // 2^200 - 2^0

	t.Square(&t) // 2^201 - 2^1
	for i := 0; i < 49; i++ {
		t.Square(&t) // 2^250 - 2^50
	}
	t.Multiply(&t, &z2_50_0) // 2^250 - 2^0

	t.Square(&t) // 2^251 - 2^1
	t.Square(&t) // 2^252 - 2^2
	return v.Multiply(&t, a) // 2^252 - 3
}

// SetBytes interprets x as a 255-bit little-endian integer (the top bit of
// the last byte is ignored, per the point-encoding convention) and sets v to
// that value in bounded limbs.
func (v *FieldElement) SetBytes(x []byte) *FieldElement {
	if len(x) != 32 {
		panic("edwards25519: invalid field element input size")
	}
	var t [10]int64
	t[0] = load4(x[0:])
	t[1] = load3(x[4:]) << 6
	t[2] = load3(x[7:]) << 5
	t[3] = load3(x[10:]) << 3
	t[4] = load3(x[13:]) << 2
	t[5] = load4(x[16:])
	t[6] = load3(x[20:]) << 7
	t[7] = load3(x[23:]) << 5
	t[8] = load3(x[26:]) << 4
	t[9] = (load3(x[29:]) & 8388607) << 2

	for _, i := range [...]int{9, 1, 3, 5, 7, 0, 2, 4, 6, 8} {
		carry(&t, i)
	}
	for i := range v {
		v[i] = int32(t[i])
	}
	return v
}

// Bytes returns the canonical 32-byte little-endian encoding of v, fully
// reduced into [0, 2^255-19).
func (v *FieldElement) Bytes() []byte {
	// This function is outlined to make the allocations inline in the caller
	// rather than happen on the heap.
	var out [32]byte
	return v.bytes(&out)
}

func (v *FieldElement) bytes(out *[32]byte) []byte {
	var t [10]int64
	for i := range v {
		t[i] = int64(v[i])
	}

	// Compute q in {0, 1}, the number of times p must be subtracted for the
	// result to land in [0, 2^255-19), by pushing a trial carry of 19*t9
	// through all ten limbs.
	q := (19*t[9] + (1 << 24)) >> 25
	for i := 0; i < 10; i++ {
		q = (t[i] + q) >> uint(26-i&1)
	}

	// t - q*p = t + 19*q - q*2^255; the 2^255 term falls off the top of the
	// truncating carry chain below.
	t[0] += 19 * q

	for i := 0; i < 10; i++ {
		shift := uint(26 - i&1)
		c := t[i] >> shift
		if i < 9 {
			t[i+1] += c
		}
		t[i] -= c << shift
	}

	out[0] = byte(t[0] >> 0)
	out[1] = byte(t[0] >> 8)
	out[2] = byte(t[0] >> 16)
	out[3] = byte((t[0] >> 24) | (t[1] << 2))
	out[4] = byte(t[1] >> 6)
	out[5] = byte(t[1] >> 14)
	out[6] = byte((t[1] >> 22) | (t[2] << 3))
	out[7] = byte(t[2] >> 5)
	out[8] = byte(t[2] >> 13)
	out[9] = byte((t[2] >> 21) | (t[3] << 5))
	out[10] = byte(t[3] >> 3)
	out[11] = byte(t[3] >> 11)
	out[12] = byte((t[3] >> 19) | (t[4] << 6))
	out[13] = byte(t[4] >> 2)
	out[14] = byte(t[4] >> 10)
	out[15] = byte(t[4] >> 18)
	out[16] = byte(t[5] >> 0)
	out[17] = byte(t[5] >> 8)
	out[18] = byte(t[5] >> 16)
	out[19] = byte((t[5] >> 24) | (t[6] << 1))
	out[20] = byte(t[6] >> 7)
	out[21] = byte(t[6] >> 15)
	out[22] = byte((t[6] >> 23) | (t[7] << 3))
	out[23] = byte(t[7] >> 5)
	out[24] = byte(t[7] >> 13)
	out[25] = byte((t[7] >> 21) | (t[8] << 4))
	out[26] = byte(t[8] >> 4)
	out[27] = byte(t[8] >> 12)
	out[28] = byte((t[8] >> 20) | (t[9] << 6))
	out[29] = byte(t[9] >> 2)
	out[30] = byte(t[9] >> 10)
	out[31] = byte(t[9] >> 18)
	return out[:]
}

// Equal returns 1 if v and u are equal, and 0 otherwise. The comparison is
// performed on the canonical encodings without short-circuiting.
func (v *FieldElement) Equal(u *FieldElement) int {
	var sv, su [32]byte
	return subtle.ConstantTimeCompare(v.bytes(&sv), u.bytes(&su))
}

// IsNegative returns 1 if v is negative, and 0 otherwise. The sign of a
// field element is the low bit of its canonical encoding.
func (v *FieldElement) IsNegative() int {
	var buf [32]byte
	return int(v.bytes(&buf)[0] & 1)
}
