// Package koblitz implements point arithmetic on Koblitz curves over
// F_2^m in López-Dahab projective coordinates (spec component E): for
// a point P = (x, y), the coordinates (X, Y, Z) stand for x = X/Z,
// y = Y/Z.
//
// References:
//
//	[GECC]: Guide to Elliptic Curve Cryptography (Hankerson, Menezes,
//	Vanstone), Algorithm 3.27 (doubling) and 3.20 (addition),
//	López-Dahab projective form.
//	[SECG]: Recommended Elliptic Curve Domain Parameters,
//	http://www.secg.org/sec2-v2.pdf, §3 (binary Koblitz curves).
//
// The package keeps the teacher's dedicated-file shape for projective point arithmetic (one file for the point type
// and the two core group laws, a second for the ladder), adapted from
// Jacobian-over-F_p to López-Dahab-over-F_2^m.
package koblitz

import (
	"github.com/sammyne/ecc-core/curve"
	"github.com/sammyne/ecc-core/eccerr"
	"github.com/sammyne/ecc-core/gf2m"
)

// Point is a López-Dahab projective point (X, Y, Z) with X, Y, Z in
// F_2^m. The curve's degree m travels alongside the point since field
// ops need it for reduction.
type Point struct {
	X, Y, Z *gf2m.Element
	M       int
}

// FromAffine lifts an affine (x, y) to projective form with Z = 1.
func FromAffine(x, y *gf2m.Element, m int) *Point {
	return &Point{X: x.Clone(), Y: y.Clone(), Z: gf2m.One(m), M: m}
}

// Double returns 2*P, per [GECC] Algorithm 3.27.
func Double(p *Point, c *curve.BinaryParams) (*Point, error) {
	m := p.M

	a2, err := gf2m.Square(p.X, m) // A = X^2
	if err != nil {
		return nil, err
	}

	yz, err := gf2m.Mul(p.Y, p.Z, m)
	if err != nil {
		return nil, err
	}
	b := gf2m.Add(yz, a2) // B = Y*Z + A

	cc, err := gf2m.Mul(p.X, p.Z, m) // C = X*Z
	if err != nil {
		return nil, err
	}
	bc := gf2m.Add(b, cc) // BC = B + C

	d, err := gf2m.Square(cc, m) // D = C^2
	if err != nil {
		return nil, err
	}

	bbc, err := gf2m.Mul(b, bc, m)
	if err != nil {
		return nil, err
	}
	e := bbc // E = B*BC + a*D
	if c.A != 0 {
		e = gf2m.Add(bbc, d)
	}

	x3, err := gf2m.Mul(cc, e, m) // X' = C*E
	if err != nil {
		return nil, err
	}

	bce, err := gf2m.Mul(bc, e, m)
	if err != nil {
		return nil, err
	}
	a2sq, err := gf2m.Square(a2, m)
	if err != nil {
		return nil, err
	}
	a2c, err := gf2m.Mul(a2sq, cc, m)
	if err != nil {
		return nil, err
	}
	y3 := gf2m.Add(bce, a2c) // Y' = BC*E + A^2*C

	z3, err := gf2m.Mul(cc, d, m) // Z' = C*D
	if err != nil {
		return nil, err
	}

	return &Point{X: x3, Y: y3, Z: z3, M: m}, nil
}

// Add returns P1 + P2, per [GECC] Algorithm 3.20 (mixed/general
// López-Dahab addition). P1 == P2 is an ArithmeticError (use Double).
// For P2 == -P1 the result has Z == 0, the point at infinity, which
// Normalize rejects.
func Add(p1, p2 *Point, c *curve.BinaryParams) (*Point, error) {
	m := p1.M

	y1z2, err := gf2m.Mul(p1.Y, p2.Z, m)
	if err != nil {
		return nil, err
	}
	x1z2, err := gf2m.Mul(p1.X, p2.Z, m)
	if err != nil {
		return nil, err
	}

	z1y2, err := gf2m.Mul(p1.Z, p2.Y, m)
	if err != nil {
		return nil, err
	}
	a := gf2m.Add(z1y2, y1z2)

	z1x2, err := gf2m.Mul(p1.Z, p2.X, m)
	if err != nil {
		return nil, err
	}
	b := gf2m.Add(z1x2, x1z2)

	if b.IsZero() && a.IsZero() {
		return nil, eccerr.Wrap(eccerr.KindArithmetic, "Add called with P == Q; use Double")
	}

	ab := gf2m.Add(a, b)

	cc, err := gf2m.Square(b, m) // C = B^2
	if err != nil {
		return nil, err
	}
	d, err := gf2m.Mul(p1.Z, p2.Z, m) // D = Z1*Z2
	if err != nil {
		return nil, err
	}
	e, err := gf2m.Mul(b, cc, m) // E = B*C
	if err != nil {
		return nil, err
	}

	aab, err := gf2m.Mul(a, ab, m)
	if err != nil {
		return nil, err
	}
	f := aab // F = A*AB + a*C
	if c.A != 0 {
		f = gf2m.Add(aab, cc)
	}
	fd, err := gf2m.Mul(f, d, m)
	if err != nil {
		return nil, err
	}
	f = gf2m.Add(fd, e) // F = F*D + E

	x3, err := gf2m.Mul(b, f, m) // X3 = B*F
	if err != nil {
		return nil, err
	}

	ax1z2, err := gf2m.Mul(a, x1z2, m)
	if err != nil {
		return nil, err
	}
	by1z2, err := gf2m.Mul(b, y1z2, m)
	if err != nil {
		return nil, err
	}
	left := gf2m.Add(ax1z2, by1z2)
	leftC, err := gf2m.Mul(left, cc, m)
	if err != nil {
		return nil, err
	}
	abf, err := gf2m.Mul(ab, f, m)
	if err != nil {
		return nil, err
	}
	y3 := gf2m.Add(leftC, abf) // Y3 = (A*X1Z2 + B*Y1Z2)*C + AB*F

	z3, err := gf2m.Mul(e, d, m) // Z3 = E*D
	if err != nil {
		return nil, err
	}

	return &Point{X: x3, Y: y3, Z: z3, M: m}, nil
}

// Normalize recovers the affine representation (x, y) = (X/Z, Y/Z).
// Raises ArithmeticError if Z == 0 (the point at infinity has no
// affine form).
func Normalize(p *Point) (x, y *gf2m.Element, err error) {
	if p.Z.IsZero() {
		return nil, nil, eccerr.Wrap(eccerr.KindArithmetic, "Normalize called on the point at infinity (Z == 0)")
	}

	zinv, err := gf2m.Invert(p.Z, p.M)
	if err != nil {
		return nil, nil, err
	}

	x, err = gf2m.Mul(p.X, zinv, p.M)
	if err != nil {
		return nil, nil, err
	}
	y, err = gf2m.Mul(p.Y, zinv, p.M)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}
