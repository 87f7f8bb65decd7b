// Package ecdsa implements sign and verify (spec component F) over
// both curve families the catalogue serves: short-Weierstrass points
// in affine coordinates for prime curves (curve/primepoint) and
// López-Dahab projective points for binary Koblitz curves (koblitz).
//
// Grounded on original_source/src/_ecdsa.c (signZZ_p/signZZ_pX and
// verifyZZ_p/verifyZZ_pX) for the digest-truncation rule and the r/s
// formulas, and on other_examples' Dustin-Ray secp256r1 ECDSA package
// for the idiomatic Go re-expression of the same FIPS 186-4 steps.
package ecdsa

import (
	"github.com/sammyne/ecc-core/bigint"
	"github.com/sammyne/ecc-core/curve"
	"github.com/sammyne/ecc-core/curve/primepoint"
	"github.com/sammyne/ecc-core/eccerr"
	"github.com/sammyne/ecc-core/gf2m"
	"github.com/sammyne/ecc-core/koblitz"
)

// Signature is the pair (r, s) produced by Sign and consumed by
// Verify.
type Signature struct {
	R, S *bigint.Int
}

// truncateDigest parses a hex digest and right-shifts it when it's
// wider than the curve order, per spec.md §4.6 step 2 (FIPS 186-4's
// L_e > L_n rule).
func truncateDigest(digestHex string, n *bigint.Int) (*bigint.Int, error) {
	e, err := bigint.FromHex(digestHex)
	if err != nil {
		return nil, err
	}

	lN := n.BitLen()
	lE := 4 * len(digestHex)
	if lE > lN {
		e = e.Rsh(uint(lE - lN))
	}
	return e, nil
}

// scalarMulX computes k*G where G is the curve's base point, returning
// the affine x-coordinate reduced mod n.
func scalarMulX(v curve.Variant, k *bigint.Int) (*bigint.Int, error) {
	switch v.Kind {
	case curve.KindPrime:
		c := v.Prime
		g := &primepoint.Point{X: bigint.New(c.Gx), Y: bigint.New(c.Gy)}
		r, err := primepoint.Mul(g, k, c)
		if err != nil {
			return nil, err
		}
		return r.X.Mod(bigint.New(c.N)), nil
	case curve.KindBinary:
		c := v.Binary
		g := koblitz.FromAffine(gf2m.FromBigInt(c.Gx, c.M), gf2m.FromBigInt(c.Gy, c.M), c.M)
		r, err := koblitz.Mul(g, k, c)
		if err != nil {
			return nil, err
		}
		x, _, err := koblitz.Normalize(r)
		if err != nil {
			return nil, err
		}
		return bigint.New(x.BigInt()).Mod(orderOf(v)), nil
	default:
		return nil, eccerr.Wrap(eccerr.KindPrecondition, "unrecognized curve kind")
	}
}

func orderOf(v curve.Variant) *bigint.Int {
	if v.Kind == curve.KindPrime {
		return bigint.New(v.Prime.N)
	}
	return bigint.New(v.Binary.N)
}

// Sign implements spec.md §4.6's Sign. The caller supplies the nonce k
// (there is no internal default or deterministic-nonce derivation);
// ArithmeticError is returned for either degenerate (r == 0, s == 0)
// case and the caller is expected to retry with a fresh k.
func Sign(v curve.Variant, digestHex string, d, k *bigint.Int) (*Signature, error) {
	n := orderOf(v)

	r, err := scalarMulX(v, k)
	if err != nil {
		return nil, err
	}
	if r.Sign() == 0 {
		return nil, eccerr.Wrap(eccerr.KindArithmetic, "Sign: r == 0, retry with a fresh nonce")
	}

	e, err := truncateDigest(digestHex, n)
	if err != nil {
		return nil, err
	}

	kInv, err := k.Inverse(n)
	if err != nil {
		return nil, err
	}

	dr := d.Mul(r, n)
	edr := e.Add(dr, n)
	s := kInv.Mul(edr, n)
	if s.Sign() == 0 {
		return nil, eccerr.Wrap(eccerr.KindArithmetic, "Sign: s == 0, retry with a fresh nonce")
	}

	return &Signature{R: r, S: s}, nil
}

// Verify implements spec.md §4.6's Verify. Prime curves use Shamir's
// trick; binary curves use two independent ladders plus one add, per
// spec.md §4.6's note that Shamir's trick is a prime-curve-only
// optimization here.
func Verify(v curve.Variant, sig *Signature, digestHex string, Qx, Qy *bigint.Int) (bool, error) {
	n := orderOf(v)

	if sig.R.Sign() <= 0 || sig.R.Cmp(n) >= 0 {
		return false, eccerr.Wrap(eccerr.KindPrecondition, "Verify: r out of range [1, n)")
	}
	if sig.S.Sign() <= 0 || sig.S.Cmp(n) >= 0 {
		return false, eccerr.Wrap(eccerr.KindPrecondition, "Verify: s out of range [1, n)")
	}

	e, err := truncateDigest(digestHex, n)
	if err != nil {
		return false, err
	}

	w, err := sig.S.Inverse(n)
	if err != nil {
		return false, err
	}
	u1 := e.Mul(w, n)
	u2 := sig.R.Mul(w, n)

	var x *bigint.Int
	switch v.Kind {
	case curve.KindPrime:
		c := v.Prime
		g := &primepoint.Point{X: bigint.New(c.Gx), Y: bigint.New(c.Gy)}
		q := &primepoint.Point{X: Qx, Y: Qy}
		r, err := primepoint.ShamirMul(g, u1, q, u2, c)
		if err != nil {
			return false, err
		}
		x = r.X.Mod(n)
	case curve.KindBinary:
		c := v.Binary
		g := koblitz.FromAffine(gf2m.FromBigInt(c.Gx, c.M), gf2m.FromBigInt(c.Gy, c.M), c.M)
		q := koblitz.FromAffine(gf2m.FromBigInt(Qx.BigInt(), c.M), gf2m.FromBigInt(Qy.BigInt(), c.M), c.M)

		r1, err := koblitz.Mul(g, u1, c)
		if err != nil {
			return false, err
		}
		r2, err := koblitz.Mul(q, u2, c)
		if err != nil {
			return false, err
		}
		sum, err := koblitz.Add(r1, r2, c)
		if err != nil {
			return false, err
		}
		xf, _, err := koblitz.Normalize(sum)
		if err != nil {
			return false, err
		}
		x = bigint.New(xf.BigInt()).Mod(n)
	default:
		return false, eccerr.Wrap(eccerr.KindPrecondition, "unrecognized curve kind")
	}

	return x.Cmp(sig.R) == 0, nil
}
