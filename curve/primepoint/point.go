// Package primepoint implements short-Weierstrass point arithmetic in
// affine coordinates over F_p (spec component D): add, double, the
// Montgomery-ladder scalar multiplier, and Shamir's simultaneous
// multiply-add used by ECDSA verify.
//
// Grounded on original_source/src/curveMath.c (pointZZ_pAdd/Double/Mul/
// ShamirsTrick) for the formulas and loop shapes; unlike that source,
// Add reduces (y2-y1) and (x2-x1) modulo p before inverting, per
// spec.md §9(b).
package primepoint

import (
	"github.com/sammyne/ecc-core/bigint"
	"github.com/sammyne/ecc-core/curve"
	"github.com/sammyne/ecc-core/eccerr"
)

// Point is an affine point (x, y) on a prime-field curve. The
// point-at-infinity is not materialized (spec.md §3) — operations that
// would produce it return ArithmeticError instead (spec.md §9(a)).
type Point struct {
	X, Y *bigint.Int
}

// Add returns P + Q for P != ±Q. Passing equal or negated points is an
// ArithmeticError: callers dispatch to Double for P == Q (spec.md §4.4)
// and must not request the sum of a point and its negation.
func Add(p, q *Point, c *curve.PrimeParams) (*Point, error) {
	if p.X.Cmp(q.X) == 0 {
		if p.Y.Cmp(q.Y) == 0 {
			return nil, eccerr.Wrap(eccerr.KindArithmetic, "Add called with P == Q; use Double")
		}
		return nil, eccerr.Wrap(eccerr.KindArithmetic, "Add called with P == -Q; sum is the point at infinity")
	}

	P := bigint.New(c.P)

	ydiff := q.Y.Sub(p.Y, P)
	xdiff := q.X.Sub(p.X, P)
	xdiffInv, err := xdiff.Inverse(P)
	if err != nil {
		return nil, err
	}
	lambda := ydiff.Mul(xdiffInv, P)

	x3 := lambda.Mul(lambda, P).Sub(p.X, P).Sub(q.X, P)
	y3 := p.X.Sub(x3, P).Mul(lambda, P).Sub(p.Y, P)

	return &Point{X: x3, Y: y3}, nil
}

// Double returns 2*P. y == 0 is an ArithmeticError: the tangent at a
// 2-torsion point is vertical and 2*P is the point at infinity.
func Double(p *Point, c *curve.PrimeParams) (*Point, error) {
	if p.Y.Sign() == 0 {
		return nil, eccerr.Wrap(eccerr.KindArithmetic, "Double called at y == 0; result is the point at infinity")
	}

	P := bigint.New(c.P)
	A := bigint.New(c.A)

	x1sq := p.X.Mul(p.X, P)
	numer := x1sq.MulSmall(3, P).Add(A, P)
	denom := p.Y.MulSmall(2, P)
	denomInv, err := denom.Inverse(P)
	if err != nil {
		return nil, err
	}
	lambda := numer.Mul(denomInv, P)

	twoX1 := p.X.MulSmall(2, P)
	x3 := lambda.Mul(lambda, P).Sub(twoX1, P)
	y3 := p.X.Sub(x3, P).Mul(lambda, P).Sub(p.Y, P)

	return &Point{X: x3, Y: y3}, nil
}

// Mul returns k*P via the constant-iteration Montgomery ladder
// (spec.md §4.4): every loop iteration performs one add and one
// double regardless of the scalar's bit values.
func Mul(p *Point, k *bigint.Int, c *curve.PrimeParams) (*Point, error) {
	r0 := p
	r1, err := Double(p, c)
	if err != nil {
		return nil, err
	}

	kBits := k.BitLen()
	for i := kBits - 2; i >= 0; i-- {
		if k.Bit(i) == 1 {
			sum, err := Add(r0, r1, c)
			if err != nil {
				return nil, err
			}
			dbl, err := Double(r1, c)
			if err != nil {
				return nil, err
			}
			r0, r1 = sum, dbl
		} else {
			// On the last iteration this sum only feeds R1, which is
			// discarded; for k = n-1 it is the point at infinity, and
			// Add's error for it does not affect the result.
			sum, err := Add(r0, r1, c)
			if err != nil && i > 0 {
				return nil, err
			}
			dbl, err := Double(r0, c)
			if err != nil {
				return nil, err
			}
			r1, r0 = sum, dbl
		}
	}

	return r0, nil
}

// ShamirMul returns k1*P1 + k2*P2 at roughly the cost of one scalar
// multiplication (spec.md §4.4). Used only by verify, where both
// scalars are public.
func ShamirMul(p1 *Point, k1 *bigint.Int, p2 *Point, k2 *bigint.Int, c *curve.PrimeParams) (*Point, error) {
	s, err := Add(p1, p2, c)
	if err != nil {
		return nil, err
	}

	l1, l2 := k1.BitLen(), k2.BitLen()
	l := l1
	if l2 > l1 {
		l = l2
	}
	l--

	var r *Point
	switch {
	case k1.Bit(l) == 1 && k2.Bit(l) == 1:
		r = s
	case k1.Bit(l) == 1:
		r = p1
	case k2.Bit(l) == 1:
		r = p2
	default:
		return nil, eccerr.Wrap(eccerr.KindArithmetic, "ShamirMul: both scalars are zero at the top bit")
	}

	for i := l - 1; i >= 0; i-- {
		r, err = Double(r, c)
		if err != nil {
			return nil, err
		}

		b1, b2 := k1.Bit(i) == 1, k2.Bit(i) == 1
		switch {
		case b1 && b2:
			r, err = Add(r, s, c)
		case b1:
			r, err = Add(r, p1, c)
		case b2:
			r, err = Add(r, p2, c)
		}
		if err != nil {
			return nil, err
		}
	}

	return r, nil
}
