package ecdsa

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sammyne/ecc-core/bigint"
	"github.com/sammyne/ecc-core/curve"
	"github.com/sammyne/ecc-core/curve/primepoint"
	"github.com/sammyne/ecc-core/eccerr"
	"github.com/sammyne/ecc-core/gf2m"
	"github.com/sammyne/ecc-core/koblitz"
)

func resolve(t *testing.T, name curve.Name) curve.Variant {
	v, err := curve.Resolve(name)
	require.NoError(t, err)
	return v
}

func publicKeyPrime(t *testing.T, v curve.Variant, d *bigint.Int) (*bigint.Int, *bigint.Int) {
	c := v.Prime
	g := &primepoint.Point{X: bigint.New(c.Gx), Y: bigint.New(c.Gy)}
	q, err := primepoint.Mul(g, d, c)
	require.NoError(t, err)
	return q.X, q.Y
}

func TestSignThenVerifyRoundTripsOnP256(t *testing.T) {
	v := resolve(t, curve.P256)

	d := bigint.New(big.NewInt(0x1234567))
	k := bigint.New(big.NewInt(0x89abcdef1))
	digest := "7c3e883ddc8bd688f96eac5e9324222c8f30f9d6bb59e9c5f020bd39ba2b8377"

	sig, err := Sign(v, digest, d, k)
	require.NoError(t, err)

	qx, qy := publicKeyPrime(t, v, d)

	ok, err := Verify(v, sig, digest, qx, qy)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	v := resolve(t, curve.P256)

	d := bigint.New(big.NewInt(0xabcdef))
	k := bigint.New(big.NewInt(0x13572468))
	digest := "7c3e883ddc8bd688f96eac5e9324222c8f30f9d6bb59e9c5f020bd39ba2b8377"

	sig, err := Sign(v, digest, d, k)
	require.NoError(t, err)
	qx, qy := publicKeyPrime(t, v, d)

	tampered := &Signature{R: sig.R.Add(bigint.New(big.NewInt(1)), bigint.New(v.Prime.N)), S: sig.S}
	ok, err := Verify(v, tampered, digest, qx, qy)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyRejectsTamperedDigest(t *testing.T) {
	v := resolve(t, curve.P256)

	d := bigint.New(big.NewInt(0xabcdef))
	k := bigint.New(big.NewInt(0x13572468))
	digest := "7c3e883ddc8bd688f96eac5e9324222c8f30f9d6bb59e9c5f020bd39ba2b8377"

	sig, err := Sign(v, digest, d, k)
	require.NoError(t, err)
	qx, qy := publicKeyPrime(t, v, d)

	otherDigest := "7c3e883ddc8bd688f96eac5e9324222c8f30f9d6bb59e9c5f020bd39ba2b8378"
	ok, err := Verify(v, sig, otherDigest, qx, qy)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyRejectsOutOfRangeR(t *testing.T) {
	v := resolve(t, curve.P256)
	n := bigint.New(v.Prime.N)

	sig := &Signature{R: bigint.New(new(big.Int).Set(n.BigInt())), S: bigint.New(big.NewInt(1))}

	ok, verr := Verify(v, sig, "aa", bigint.New(v.Prime.Gx), bigint.New(v.Prime.Gy))
	require.Error(t, verr)
	assert.True(t, eccerr.Is(verr, eccerr.KindPrecondition))
	assert.False(t, ok)
}

// assertOnCurveK163 checks y^2 + x*y == x^3 + a*x^2 + b in F_2^163,
// independent of koblitz's own Add/Double — a stand-in for the
// reduction bug's blast radius reaching all the way to a derived
// public key, not just the point-arithmetic layer it originates in.
func assertOnCurveK163(t *testing.T, c *curve.BinaryParams, x, y *gf2m.Element) {
	t.Helper()
	m := c.M

	y2, err := gf2m.Square(y, m)
	require.NoError(t, err)
	xy, err := gf2m.Mul(x, y, m)
	require.NoError(t, err)
	lhs := gf2m.Add(y2, xy)

	x2, err := gf2m.Square(x, m)
	require.NoError(t, err)
	x3, err := gf2m.Mul(x2, x, m)
	require.NoError(t, err)

	rhs := x3
	if c.A != 0 {
		rhs = gf2m.Add(rhs, x2)
	}
	if c.B != 0 {
		rhs = gf2m.Add(rhs, gf2m.One(m))
	}

	assert.True(t, lhs.Equal(rhs), "derived public key is not on the curve")
}

func TestSignThenVerifyRoundTripsOnK163(t *testing.T) {
	v := resolve(t, curve.K163)

	d := bigint.New(big.NewInt(12345))
	k := bigint.New(big.NewInt(98765))
	digest := "abcd1234"

	sig, err := Sign(v, digest, d, k)
	require.NoError(t, err)

	c := v.Binary
	g := koblitz.FromAffine(gf2m.FromBigInt(c.Gx, c.M), gf2m.FromBigInt(c.Gy, c.M), c.M)
	q, err := koblitz.Mul(g, d, c)
	require.NoError(t, err)
	qx, qy, err := koblitz.Normalize(q)
	require.NoError(t, err)
	assertOnCurveK163(t, c, qx, qy)

	ok, err := Verify(v, sig, digest, bigint.New(qx.BigInt()), bigint.New(qy.BigInt()))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyRejectsTamperedSignatureK163(t *testing.T) {
	v := resolve(t, curve.K163)

	d := bigint.New(big.NewInt(12345))
	k := bigint.New(big.NewInt(98765))
	digest := "abcd1234"

	sig, err := Sign(v, digest, d, k)
	require.NoError(t, err)

	c := v.Binary
	g := koblitz.FromAffine(gf2m.FromBigInt(c.Gx, c.M), gf2m.FromBigInt(c.Gy, c.M), c.M)
	q, err := koblitz.Mul(g, d, c)
	require.NoError(t, err)
	qx, qy, err := koblitz.Normalize(q)
	require.NoError(t, err)

	tampered := &Signature{R: sig.R.Add(bigint.New(big.NewInt(1)), bigint.New(c.N)), S: sig.S}
	ok, err := Verify(v, tampered, digest, bigint.New(qx.BigInt()), bigint.New(qy.BigInt()))
	require.NoError(t, err)
	assert.False(t, ok)
}
