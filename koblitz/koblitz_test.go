package koblitz

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sammyne/ecc-core/bigint"
	"github.com/sammyne/ecc-core/curve"
	"github.com/sammyne/ecc-core/eccerr"
	"github.com/sammyne/ecc-core/gf2m"
)

func k163(t *testing.T) *curve.BinaryParams {
	v, err := curve.Resolve(curve.K163)
	require.NoError(t, err)
	return v.Binary
}

func generator(c *curve.BinaryParams) *Point {
	x := gf2m.FromBigInt(c.Gx, c.M)
	y := gf2m.FromBigInt(c.Gy, c.M)
	return FromAffine(x, y, c.M)
}

// negate returns -P = (x, x+y), the other root of y^2 + xy = x^3 + ax^2 + b.
func negate(x, y *gf2m.Element) *gf2m.Element {
	return gf2m.Add(x, y)
}

func TestNormalizeRoundTripsAffineInput(t *testing.T) {
	c := k163(t)
	x := gf2m.FromBigInt(c.Gx, c.M)
	y := gf2m.FromBigInt(c.Gy, c.M)
	p := FromAffine(x, y, c.M)

	gotX, gotY, err := Normalize(p)
	require.NoError(t, err)
	assert.True(t, gotX.Equal(x))
	assert.True(t, gotY.Equal(y))
}

func TestMulByTwoAndThreeMatchDoubleAndAdd(t *testing.T) {
	c := k163(t)
	g := generator(c)

	g2, err := Double(g, c)
	require.NoError(t, err)
	g3, err := Add(g2, g, c)
	require.NoError(t, err)

	two := bigint.New(big.NewInt(2))
	three := bigint.New(big.NewInt(3))

	g2m, err := Mul(g, two, c)
	require.NoError(t, err)
	g3m, err := Mul(g, three, c)
	require.NoError(t, err)

	x2, y2, err := Normalize(g2)
	require.NoError(t, err)
	x2m, y2m, err := Normalize(g2m)
	require.NoError(t, err)
	assert.True(t, x2.Equal(x2m))
	assert.True(t, y2.Equal(y2m))

	x3, y3, err := Normalize(g3)
	require.NoError(t, err)
	x3m, y3m, err := Normalize(g3m)
	require.NoError(t, err)
	assert.True(t, x3.Equal(x3m))
	assert.True(t, y3.Equal(y3m))
}

func TestAddEqualPointsIsArithmeticError(t *testing.T) {
	c := k163(t)
	g := generator(c)

	_, err := Add(g, g, c)
	require.Error(t, err)
	assert.True(t, eccerr.Is(err, eccerr.KindArithmetic))
}

func TestAddNegatedPointsIsArithmeticError(t *testing.T) {
	c := k163(t)
	x := gf2m.FromBigInt(c.Gx, c.M)
	y := gf2m.FromBigInt(c.Gy, c.M)
	g := FromAffine(x, y, c.M)
	negG := FromAffine(x, negate(x, y), c.M)

	// G + (-G) is the point at infinity: Add yields Z == 0 and
	// Normalize rejects it.
	sum, err := Add(g, negG, c)
	require.NoError(t, err)
	_, _, err = Normalize(sum)
	require.Error(t, err)
	assert.True(t, eccerr.Is(err, eccerr.KindArithmetic))
}

func TestNormalizeAtInfinityIsArithmeticError(t *testing.T) {
	c := k163(t)
	p := &Point{X: gf2m.Zero(c.M), Y: gf2m.Zero(c.M), Z: gf2m.Zero(c.M), M: c.M}

	_, _, err := Normalize(p)
	require.Error(t, err)
	assert.True(t, eccerr.Is(err, eccerr.KindArithmetic))
}

// assertOnCurve checks y^2 + x*y == x^3 + a*x^2 + b in F_2^m, computed
// directly from gf2m ops rather than through Double/Add, so it stands
// as independent ground truth for any point the ladder produces.
func assertOnCurve(t *testing.T, c *curve.BinaryParams, x, y *gf2m.Element) {
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

	assert.True(t, lhs.Equal(rhs), "point is not on the curve")
}

func TestGeneratorIsOnCurve(t *testing.T) {
	c := k163(t)
	x := gf2m.FromBigInt(c.Gx, c.M)
	y := gf2m.FromBigInt(c.Gy, c.M)
	assertOnCurve(t, c, x, y)
}

func TestDoubleResultIsOnCurve(t *testing.T) {
	c := k163(t)
	g := generator(c)

	g2, err := Double(g, c)
	require.NoError(t, err)

	x2, y2, err := Normalize(g2)
	require.NoError(t, err)
	assertOnCurve(t, c, x2, y2)
}

// S6: (n+1)*G == G, the base-point round trip spec.md §8 uses to catch
// exactly the class of reduction bug that self-consistency checks
// (e.g. Mul(G,2) vs Double(G)) cannot: both sides of such a check call
// the same underlying field routine twice and would agree even if it
// were wrong. n+1 is built from raw math/big, not bigint.Add (which
// reduces mod n and would collapse n+1 back down to 1).
func TestMulByOrderPlusOneIsGenerator(t *testing.T) {
	c := k163(t)
	g := generator(c)

	nPlus1 := new(big.Int).Add(c.N, big.NewInt(1))
	k := bigint.New(nPlus1)

	r, err := Mul(g, k, c)
	require.NoError(t, err)

	x, y, err := Normalize(r)
	require.NoError(t, err)

	wantX := gf2m.FromBigInt(c.Gx, c.M)
	wantY := gf2m.FromBigInt(c.Gy, c.M)
	assert.True(t, x.Equal(wantX))
	assert.True(t, y.Equal(wantY))
}

// n*G is the point at infinity: Normalize must reject it rather than
// silently returning an affine pair.
func TestMulByOrderIsInfinity(t *testing.T) {
	c := k163(t)
	g := generator(c)

	k := bigint.New(new(big.Int).Set(c.N))
	r, err := Mul(g, k, c)
	require.NoError(t, err)

	_, _, err = Normalize(r)
	require.Error(t, err)
	assert.True(t, eccerr.Is(err, eccerr.KindArithmetic))
}
