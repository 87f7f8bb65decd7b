// Package eccapi is the conceptual host API (spec.md §6): four
// operations taking and returning base-10/base-16 ASCII strings so
// that a caller never reaches into math/big or this module's internal
// point/field types directly.
//
// Grounded on original_source/src/curveMath.c's Python-binding
// functions (curvemath_mul/curvemath_add) and _ecdsa.c's entry points
// for the parse-everything-up-front, dispatch-by-curve-kind shape.
package eccapi

import (
	"github.com/sammyne/ecc-core/bigint"
	"github.com/sammyne/ecc-core/curve"
	"github.com/sammyne/ecc-core/curve/primepoint"
	"github.com/sammyne/ecc-core/ecdsa"
	"github.com/sammyne/ecc-core/gf2m"
	"github.com/sammyne/ecc-core/koblitz"
)

// Mul returns k*P as decimal strings.
func Mul(curveName, pxDec, pyDec, kDec string) (rxDec, ryDec string, err error) {
	v, err := curve.Resolve(curve.Name(curveName))
	if err != nil {
		return "", "", err
	}

	px, err := bigint.FromDecimal(pxDec)
	if err != nil {
		return "", "", err
	}
	py, err := bigint.FromDecimal(pyDec)
	if err != nil {
		return "", "", err
	}
	k, err := bigint.FromDecimal(kDec)
	if err != nil {
		return "", "", err
	}

	switch v.Kind {
	case curve.KindPrime:
		p := &primepoint.Point{X: px, Y: py}
		r, err := primepoint.Mul(p, k, v.Prime)
		if err != nil {
			return "", "", err
		}
		return r.X.Decimal(), r.Y.Decimal(), nil
	default:
		m := v.Binary.M
		p := koblitz.FromAffine(gf2m.FromBigInt(px.BigInt(), m), gf2m.FromBigInt(py.BigInt(), m), m)
		r, err := koblitz.Mul(p, k, v.Binary)
		if err != nil {
			return "", "", err
		}
		x, y, err := koblitz.Normalize(r)
		if err != nil {
			return "", "", err
		}
		return bigint.New(x.BigInt()).Decimal(), bigint.New(y.BigInt()).Decimal(), nil
	}
}

// Add returns P+Q as decimal strings.
func Add(curveName, pxDec, pyDec, qxDec, qyDec string) (rxDec, ryDec string, err error) {
	v, err := curve.Resolve(curve.Name(curveName))
	if err != nil {
		return "", "", err
	}

	px, err := bigint.FromDecimal(pxDec)
	if err != nil {
		return "", "", err
	}
	py, err := bigint.FromDecimal(pyDec)
	if err != nil {
		return "", "", err
	}
	qx, err := bigint.FromDecimal(qxDec)
	if err != nil {
		return "", "", err
	}
	qy, err := bigint.FromDecimal(qyDec)
	if err != nil {
		return "", "", err
	}

	switch v.Kind {
	case curve.KindPrime:
		p := &primepoint.Point{X: px, Y: py}
		q := &primepoint.Point{X: qx, Y: qy}
		r, err := primepoint.Add(p, q, v.Prime)
		if err != nil {
			return "", "", err
		}
		return r.X.Decimal(), r.Y.Decimal(), nil
	default:
		m := v.Binary.M
		p := koblitz.FromAffine(gf2m.FromBigInt(px.BigInt(), m), gf2m.FromBigInt(py.BigInt(), m), m)
		q := koblitz.FromAffine(gf2m.FromBigInt(qx.BigInt(), m), gf2m.FromBigInt(qy.BigInt(), m), m)
		r, err := koblitz.Add(p, q, v.Binary)
		if err != nil {
			return "", "", err
		}
		x, y, err := koblitz.Normalize(r)
		if err != nil {
			return "", "", err
		}
		return bigint.New(x.BigInt()).Decimal(), bigint.New(y.BigInt()).Decimal(), nil
	}
}

// Sign returns (r, s) as decimal strings for the given curve, digest,
// private key and nonce.
func Sign(curveName, digestHex, dDec, kDec string) (rDec, sDec string, err error) {
	v, err := curve.Resolve(curve.Name(curveName))
	if err != nil {
		return "", "", err
	}

	d, err := bigint.FromDecimal(dDec)
	if err != nil {
		return "", "", err
	}
	k, err := bigint.FromDecimal(kDec)
	if err != nil {
		return "", "", err
	}

	sig, err := ecdsa.Sign(v, digestHex, d, k)
	if err != nil {
		return "", "", err
	}
	return sig.R.Decimal(), sig.S.Decimal(), nil
}

// Verify reports whether (r, s) is a valid signature over digestHex
// under public key (Qx, Qy) on the named curve.
func Verify(curveName, rDec, sDec, digestHex, qxDec, qyDec string) (bool, error) {
	v, err := curve.Resolve(curve.Name(curveName))
	if err != nil {
		return false, err
	}

	r, err := bigint.FromDecimal(rDec)
	if err != nil {
		return false, err
	}
	s, err := bigint.FromDecimal(sDec)
	if err != nil {
		return false, err
	}
	qx, err := bigint.FromDecimal(qxDec)
	if err != nil {
		return false, err
	}
	qy, err := bigint.FromDecimal(qyDec)
	if err != nil {
		return false, err
	}

	return ecdsa.Verify(v, &ecdsa.Signature{R: r, S: s}, digestHex, qx, qy)
}
