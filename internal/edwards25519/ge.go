// Copyright (c) 2021 The minisign Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

import "errors"

// Point types.
//
// The group logic works on the twisted Edwards curve
//
//	-x^2 + y^2 = 1 + -(121665/121666)*x^2*y^2
//
// in four coordinate systems: extended (Point), projective (projP2), the
// "completed" intermediate produced by the addition and doubling formulas
// (projP1xP1), and two precomputed shapes that cache the operand
// combinations the re-addition formulas want (projCached for runtime
// tables, affineCached for the fixed base point table).

type projP1xP1 struct {
	X, Y, Z, T FieldElement
}

type projP2 struct {
	X, Y, Z FieldElement
}

// Point represents a point on the curve in extended coordinates, with
// x = X/Z, y = Y/Z, and X*Y = T*Z.
type Point struct {
	x, y, z, t FieldElement

	// Make the type not comparable with bradfitz's device, since equal points
	// can be represented by different Go values.
	_ [0]func()
}

type projCached struct {
	YplusX, YminusX, Z, T2d FieldElement
}

type affineCached struct {
	YplusX, YminusX, T2d FieldElement
}

// Constructors.

func (v *projP2) Zero() *projP2 {
	v.X.Zero()
	v.Y.One()
	v.Z.One()
	return v
}

// NewIdentityPoint returns a new Point set to the identity.
func NewIdentityPoint() *Point {
	return (&Point{}).Identity()
}

// Identity sets v to the zero point, and returns v.
func (v *Point) Identity() *Point {
	v.x.Zero()
	v.y.One()
	v.z.One()
	v.t.Zero()
	return v
}

// Assignments.

// Set sets v = u, and returns v.
func (v *Point) Set(u *Point) *Point {
	*v = *u
	return v
}

// Conversions.

func (v *projP2) FromP1xP1(p *projP1xP1) *projP2 {
	v.X.Multiply(&p.X, &p.T)
	v.Y.Multiply(&p.Y, &p.Z)
	v.Z.Multiply(&p.Z, &p.T)
	return v
}

func (v *projP2) FromP3(p *Point) *projP2 {
	v.X.Set(&p.x)
	v.Y.Set(&p.y)
	v.Z.Set(&p.z)
	return v
}

func (v *Point) fromP1xP1(p *projP1xP1) *Point {
	v.x.Multiply(&p.X, &p.T)
	v.y.Multiply(&p.Y, &p.Z)
	v.z.Multiply(&p.Z, &p.T)
	v.t.Multiply(&p.X, &p.Y)
	return v
}

func (v *projCached) FromP3(p *Point) *projCached {
	v.YplusX.Add(&p.y, &p.x)
	v.YminusX.Subtract(&p.y, &p.x)
	v.Z.Set(&p.z)
	v.T2d.Multiply(&p.t, &d2)
	return v
}

// (Re)addition and subtraction.

func (v *projP1xP1) Add(p *Point, q *projCached) *projP1xP1 {
	var YplusX, YminusX, PP, MM, TT2d, ZZ2 FieldElement

	YplusX.Add(&p.y, &p.x)
	YminusX.Subtract(&p.y, &p.x)

	PP.Multiply(&YplusX, &q.YplusX)
	MM.Multiply(&YminusX, &q.YminusX)
	TT2d.Multiply(&p.t, &q.T2d)
	ZZ2.Multiply(&p.z, &q.Z)

	ZZ2.Add(&ZZ2, &ZZ2)

	v.X.Subtract(&PP, &MM)
	v.Y.Add(&PP, &MM)
	v.Z.Add(&ZZ2, &TT2d)
	v.T.Subtract(&ZZ2, &TT2d)
	return v
}

func (v *projP1xP1) Sub(p *Point, q *projCached) *projP1xP1 {
	var YplusX, YminusX, PP, MM, TT2d, ZZ2 FieldElement

	YplusX.Add(&p.y, &p.x)
	YminusX.Subtract(&p.y, &p.x)

	PP.Multiply(&YplusX, &q.YminusX) // flipped sign
	MM.Multiply(&YminusX, &q.YplusX) // flipped sign
	TT2d.Multiply(&p.t, &q.T2d)
	ZZ2.Multiply(&p.z, &q.Z)

	ZZ2.Add(&ZZ2, &ZZ2)

	v.X.Subtract(&PP, &MM)
	v.Y.Add(&PP, &MM)
	v.Z.Subtract(&ZZ2, &TT2d) // flipped sign
	v.T.Add(&ZZ2, &TT2d)      // flipped sign
	return v
}

func (v *projP1xP1) AddAffine(p *Point, q *affineCached) *projP1xP1 {
	var YplusX, YminusX, PP, MM, TT2d, Z2 FieldElement

	YplusX.Add(&p.y, &p.x)
	YminusX.Subtract(&p.y, &p.x)

	PP.Multiply(&YplusX, &q.YplusX)
	MM.Multiply(&YminusX, &q.YminusX)
	TT2d.Multiply(&p.t, &q.T2d)

	Z2.Add(&p.z, &p.z)

	v.X.Subtract(&PP, &MM)
	v.Y.Add(&PP, &MM)
	v.Z.Add(&Z2, &TT2d)
	v.T.Subtract(&Z2, &TT2d)
	return v
}

func (v *projP1xP1) SubAffine(p *Point, q *affineCached) *projP1xP1 {
	var YplusX, YminusX, PP, MM, TT2d, Z2 FieldElement

	YplusX.Add(&p.y, &p.x)
	YminusX.Subtract(&p.y, &p.x)

	PP.Multiply(&YplusX, &q.YminusX) // flipped sign
	MM.Multiply(&YminusX, &q.YplusX) // flipped sign
	TT2d.Multiply(&p.t, &q.T2d)

	Z2.Add(&p.z, &p.z)

	v.X.Subtract(&PP, &MM)
	v.Y.Add(&PP, &MM)
	v.Z.Subtract(&Z2, &TT2d) // flipped sign
	v.T.Add(&Z2, &TT2d)      // flipped sign
	return v
}

// Doubling.

func (v *projP1xP1) Double(p *projP2) *projP1xP1 {
	var XX, YY, ZZ2, XplusYsq FieldElement

	XX.Square(&p.X)
	YY.Square(&p.Y)
	ZZ2.Square2(&p.Z)
	XplusYsq.Add(&p.X, &p.Y)
	XplusYsq.Square(&XplusYsq)

	v.Y.Add(&YY, &XX)
	v.Z.Subtract(&YY, &XX)

	v.X.Subtract(&XplusYsq, &v.Y)
	v.T.Subtract(&ZZ2, &v.Z)
	return v
}

// Negation.

// Negate sets v = -p, and returns v.
func (v *Point) Negate(p *Point) *Point {
	v.x.Negate(&p.x)
	v.y.Set(&p.y)
	v.z.Set(&p.z)
	v.t.Negate(&p.t)
	return v
}

// Equal returns 1 if v is equivalent to u, and 0 otherwise.
func (v *Point) Equal(u *Point) int {
	var t1, t2, t3, t4 FieldElement
	t1.Multiply(&v.x, &u.z)
	t2.Multiply(&u.x, &v.z)
	t3.Multiply(&v.y, &u.z)
	t4.Multiply(&u.y, &v.z)

	return t1.Equal(&t2) & t3.Equal(&t4)
}

// Encoding and decoding.

var errInvalidPoint = errors.New("edwards25519: invalid point encoding")

// SetBytesNegateVartime decodes the 32-byte compressed encoding x and sets
// v to the NEGATION of the encoded point, returning an error if x does not
// encode a curve point. Returning -P instead of P saves the caller of the
// double scalar multiplication a separate negation; the running time leaks
// only whether the encoding was valid.
//
// Decompression solves the curve equation for x: with u = y^2 - 1 and
// v = d*y^2 + 1, the candidate root is (u*v^3) * (u*v^7)^((p-5)/8), fixed
// up by sqrt(-1) when v*x^2 == -u.
func (v *Point) SetBytesNegateVartime(x []byte) (*Point, error) {
	if len(x) != 32 {
		return nil, errInvalidPoint
	}

	var y, u, vv, v3, v7, xx, vxx, check FieldElement
	y.SetBytes(x)
	ySquared := new(FieldElement).Square(&y)
	u.Subtract(ySquared, &feOne)
	vv.Multiply(ySquared, &d)
	vv.Add(&vv, &feOne)
	v3.Square(&vv)
	v3.Multiply(&v3, &vv)
	v7.Square(&v3)
	v7.Multiply(&v7, &vv)

	xx.Multiply(&v7, &u)
	xx.pow22523(&xx)
	xx.Multiply(&xx, &v3)
	xx.Multiply(&xx, &u)

	vxx.Square(&xx)
	vxx.Multiply(&vxx, &vv)
	check.Subtract(&vxx, &u)
	if check.Equal(&feZero) != 1 {
		check.Add(&vxx, &u)
		if check.Equal(&feZero) != 1 {
			return nil, errInvalidPoint
		}
		xx.Multiply(&xx, &sqrtM1)
	}

	if xx.IsNegative() == int(x[31]>>7) {
		xx.Negate(&xx)
	}

	v.x.Set(&xx)
	v.y.Set(&y)
	v.z.One()
	v.t.Multiply(&xx, &y)
	return v, nil
}

// Bytes returns the 32-byte compressed encoding of v: the y coordinate in
// canonical little-endian form with the sign of x in the top bit.
func (v *projP2) Bytes() []byte {
	// This function is outlined to make the allocations inline in the caller
	// rather than happen on the heap.
	var buf [32]byte
	return v.bytes(&buf)
}

func (v *projP2) bytes(buf *[32]byte) []byte {
	var zInv, x, y FieldElement
	zInv.Invert(&v.Z)
	x.Multiply(&v.X, &zInv)
	y.Multiply(&v.Y, &zInv)

	y.bytes(buf)
	buf[31] ^= byte(x.IsNegative() << 7)
	return buf[:]
}
