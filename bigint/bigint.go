// Package bigint is the façade over the arbitrary-precision integer
// backend (math/big). It exposes exactly the operations the rest of the
// engine needs — parse, modular add/sub/mul, modular inverse, bit-length,
// bit-test, right-shift, decimal emit — so that the point and ECDSA
// layers never reach into math/big directly.
package bigint

import (
	"math/big"

	"github.com/sammyne/ecc-core/eccerr"
)

// Int wraps a *big.Int. The zero value is not usable; construct with
// FromDecimal, FromHex or New.
type Int struct {
	v *big.Int
}

// New wraps an existing *big.Int. The caller gives up ownership of v.
func New(v *big.Int) *Int {
	return &Int{v: v}
}

// Zero returns the integer 0.
func Zero() *Int {
	return &Int{v: big.NewInt(0)}
}

// FromDecimal parses a base-10 ASCII string.
func FromDecimal(s string) (*Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, eccerr.Wrap(eccerr.KindParse, "invalid decimal integer %q", s)
	}
	return &Int{v: v}, nil
}

// FromHex parses an unsigned base-16 ASCII string with no "0x" prefix.
func FromHex(s string) (*Int, error) {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, eccerr.Wrap(eccerr.KindParse, "invalid hex integer %q", s)
	}
	return &Int{v: v}, nil
}

// Decimal emits the base-10 ASCII representation.
func (i *Int) Decimal() string {
	return i.v.String()
}

// BigInt exposes the underlying *big.Int for callers in this module that
// need to hand it to math/big APIs directly (e.g. ModInverse-adjacent
// helpers). Treat the result as read-only; mutate through Int's methods.
func (i *Int) BigInt() *big.Int {
	return i.v
}

// Sign returns -1, 0 or 1 as i is negative, zero or positive.
func (i *Int) Sign() int {
	return i.v.Sign()
}

// Cmp compares i to j.
func (i *Int) Cmp(j *Int) int {
	return i.v.Cmp(j.v)
}

// Add returns (i + j) mod m.
func (i *Int) Add(j *Int, m *Int) *Int {
	r := new(big.Int).Add(i.v, j.v)
	r.Mod(r, m.v)
	return &Int{v: r}
}

// Sub returns (i - j) mod m.
func (i *Int) Sub(j *Int, m *Int) *Int {
	r := new(big.Int).Sub(i.v, j.v)
	r.Mod(r, m.v)
	return &Int{v: r}
}

// Mul returns (i * j) mod m.
func (i *Int) Mul(j *Int, m *Int) *Int {
	r := new(big.Int).Mul(i.v, j.v)
	r.Mod(r, m.v)
	return &Int{v: r}
}

// MulSmall returns (i * s) mod m for a small machine-word multiplier.
func (i *Int) MulSmall(s int64, m *Int) *Int {
	r := new(big.Int).Mul(i.v, big.NewInt(s))
	r.Mod(r, m.v)
	return &Int{v: r}
}

// Mod returns i mod m, always non-negative.
func (i *Int) Mod(m *Int) *Int {
	r := new(big.Int).Mod(i.v, m.v)
	return &Int{v: r}
}

// Inverse returns the modular inverse of i mod m. Raises ArithmeticError
// if i is congruent to zero mod m, per spec.md §4.1.
func (i *Int) Inverse(m *Int) (*Int, error) {
	r := new(big.Int).ModInverse(i.v, m.v)
	if r == nil {
		return nil, eccerr.Wrap(eccerr.KindArithmetic, "no inverse of %s mod %s", i.v, m.v)
	}
	return &Int{v: r}, nil
}

// BitLen returns the bit length of i. The bit length of zero is defined
// as 1, matching the source's reliance on it during ladder setup
// (spec.md §4.1).
func (i *Int) BitLen() int {
	n := i.v.BitLen()
	if n == 0 {
		return 1
	}
	return n
}

// Bit returns the value (0 or 1) of bit k of i, LSB-first.
func (i *Int) Bit(k int) uint {
	return i.v.Bit(k)
}

// Rsh returns i right-shifted by n bits.
func (i *Int) Rsh(n uint) *Int {
	r := new(big.Int).Rsh(i.v, n)
	return &Int{v: r}
}

// Clone returns an independent copy of i.
func (i *Int) Clone() *Int {
	return &Int{v: new(big.Int).Set(i.v)}
}
