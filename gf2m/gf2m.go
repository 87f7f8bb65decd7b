// Package gf2m implements F_2^m binary-field arithmetic: a dense,
// bit-packed representation with schoolbook multiplication, byte-lookup
// squaring, extended-Euclidean inversion, and one table-driven fast
// reduction covering every supported Koblitz degree
// (m ∈ {163,233,283,409,571}).
//
// An Element is a little-endian array of 32-bit words — the LSB of word
// 0 is the coefficient of t^0 — carrying a degree metadatum equal to the
// index of its highest set bit (0 for the zero element). This mirrors
// the teacher's fieldVal: a dedicated field type, just over F_2^m instead
// of F_p.
package gf2m

import (
	"math/big"

	"github.com/sammyne/ecc-core/eccerr"
)

const wordBits = 32

// Element is a binary-field value. The zero value is not valid;
// construct with Zero, FromBytes or One.
type Element struct {
	words  []uint32
	degree int
}

func wordsFor(bits int) int {
	return (bits + wordBits) / wordBits // room for bit index `bits` (ceil((bits+1)/32))
}

// Zero returns the additive identity sized to hold degree m.
func Zero(m int) *Element {
	return &Element{words: make([]uint32, wordsFor(m)), degree: 0}
}

// One returns the multiplicative identity sized to hold degree m.
func One(m int) *Element {
	e := Zero(m)
	e.words[0] = 1
	e.degree = 0
	return e
}

// FromBytes interprets a little-endian byte slice (byte 0 holds the
// coefficients of t^0..t^7) as a field element sized to degree m.
func FromBytes(b []byte, m int) *Element {
	e := Zero(m)
	for i, by := range b {
		w := i / 4
		if w >= len(e.words) {
			break
		}
		e.words[w] |= uint32(by) << (uint(i%4) * 8)
	}
	e.recalculateDegree()
	return e
}

// Bytes returns the little-endian byte representation, padded to the
// canonical length for degree m.
func (e *Element) Bytes(m int) []byte {
	n := (m + 8) / 8
	out := make([]byte, n)
	for i := range out {
		w := i / 4
		if w >= len(e.words) {
			continue
		}
		out[i] = byte(e.words[w] >> (uint(i%4) * 8))
	}
	return out
}

// FromBigInt interprets a curve parameter (stored as a big-endian
// math/big.Int, the representation curve.BinaryParams uses) as a
// field element sized to degree m.
func FromBigInt(v *big.Int, m int) *Element {
	return FromBytes(reverse(v.Bytes()), m)
}

// BigInt renders e as the big-endian math/big.Int with the same bit
// pattern, the inverse of FromBigInt.
func (e *Element) BigInt() *big.Int {
	return new(big.Int).SetBytes(reverse(e.Bytes(e.degree)))
}

func reverse(b []byte) []byte {
	r := make([]byte, len(b))
	for i, v := range b {
		r[len(b)-1-i] = v
	}
	return r
}

// Clone returns an independent copy.
func (e *Element) Clone() *Element {
	cp := &Element{words: make([]uint32, len(e.words)), degree: e.degree}
	copy(cp.words, e.words)
	return cp
}

// Degree returns the index of the highest set bit (0 for the zero
// element).
func (e *Element) Degree() int {
	return e.degree
}

// IsZero reports whether e is the additive identity.
func (e *Element) IsZero() bool {
	for _, w := range e.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// IsOne reports whether e is the multiplicative identity.
func (e *Element) IsOne() bool {
	if len(e.words) == 0 || e.words[0] != 1 {
		return false
	}
	for i := 1; i < len(e.words); i++ {
		if e.words[i] != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether a and b represent the same polynomial.
func (a *Element) Equal(b *Element) bool {
	n := len(a.words)
	if len(b.words) > n {
		n = len(b.words)
	}
	for i := 0; i < n; i++ {
		var wa, wb uint32
		if i < len(a.words) {
			wa = a.words[i]
		}
		if i < len(b.words) {
			wb = b.words[i]
		}
		if wa != wb {
			return false
		}
	}
	return true
}

func (e *Element) bit(pos int) uint32 {
	w := pos / wordBits
	if w >= len(e.words) || w < 0 {
		return 0
	}
	return (e.words[w] >> uint(pos%wordBits)) & 1
}

func ensureLen(words []uint32, n int) []uint32 {
	if len(words) >= n {
		return words
	}
	grown := make([]uint32, n)
	copy(grown, words)
	return grown
}

func (e *Element) setBitXOR(pos int) {
	if pos < 0 {
		return
	}
	w := pos / wordBits
	e.words = ensureLen(e.words, w+1)
	e.words[w] ^= 1 << uint(pos%wordBits)
}

func (e *Element) recalculateDegree() {
	for i := len(e.words) - 1; i >= 0; i-- {
		if e.words[i] == 0 {
			continue
		}
		for b := wordBits - 1; b >= 0; b-- {
			if e.words[i]&(1<<uint(b)) != 0 {
				e.degree = i*wordBits + b
				return
			}
		}
	}
	e.degree = 0
}

// Add is coefficient-wise XOR over the longer of the two operands'
// word lengths.
func Add(a, b *Element) *Element {
	n := len(a.words)
	if len(b.words) > n {
		n = len(b.words)
	}
	r := &Element{words: make([]uint32, n)}
	for i := 0; i < n; i++ {
		var wa, wb uint32
		if i < len(a.words) {
			wa = a.words[i]
		}
		if i < len(b.words) {
			wb = b.words[i]
		}
		r.words[i] = wa ^ wb
	}
	r.recalculateDegree()
	return r
}

// shiftLeft returns a copy of e shifted left by amt bits, growing the
// backing array as needed — the binary-field analogue of the original's
// _f2m_left_shift.
func shiftLeft(e *Element, amt int) *Element {
	if amt == 0 {
		return e.Clone()
	}
	extraWords := (amt + wordBits - 1) / wordBits
	r := &Element{words: make([]uint32, len(e.words)+extraWords+1)}

	for i, w := range e.words {
		for b := 0; b < wordBits; b++ {
			if w&(1<<uint(b)) == 0 {
				continue
			}
			r.setBitXOR(i*wordBits + b + amt)
		}
	}
	r.recalculateDegree()
	return r
}

// rawMul performs unreduced bit-serial schoolbook multiplication: walk
// the bit positions k of a's words from LSB to MSB, shifting a copy of b
// left by one bit per step, and for every word j of a whose bit k is set
// XOR that copy into the product at word offset j. Grounded on
// original_source's f2m_mul.
func rawMul(a, b *Element) *Element {
	rop := &Element{words: make([]uint32, len(a.words)+len(b.words)+2)}
	shifted := b.Clone()
	shifted.words = ensureLen(shifted.words, len(a.words)+len(b.words)+2)

	for k := 0; k < wordBits; k++ {
		for j := 0; j < len(a.words); j++ {
			if a.words[j]&(1<<uint(k)) == 0 {
				continue
			}
			for i := 0; i < len(shifted.words); i++ {
				if i+j >= len(rop.words) {
					break
				}
				rop.words[i+j] ^= shifted.words[i]
			}
		}

		if k != wordBits-1 {
			carry := uint32(0)
			for i := 0; i < len(shifted.words); i++ {
				next := shifted.words[i] >> uint(wordBits-1)
				shifted.words[i] = (shifted.words[i] << 1) | carry
				carry = next
			}
		}
	}

	rop.recalculateDegree()
	return rop
}

// sqrTable[u] is the 16-bit value whose bit 2i equals bit i of u — the
// byte-interleave-with-zero lookup table spec.md §4.2 calls SQR_T,
// generated at init rather than transcribed as a literal table.
var sqrTable [256]uint16

func init() {
	for u := 0; u < 256; u++ {
		var v uint16
		for i := 0; i < 8; i++ {
			if u&(1<<uint(i)) != 0 {
				v |= 1 << uint(2*i)
			}
		}
		sqrTable[u] = v
	}
}

// rawSquare exploits (Σ aᵢ tⁱ)² = Σ aᵢ t^{2i} via the byte lookup table:
// two input bytes produce one 32-bit output word, two output words per
// input word.
func rawSquare(a *Element) *Element {
	rop := &Element{words: make([]uint32, len(a.words)*2)}
	for idx, w := range a.words {
		b0 := byte(w)
		b1 := byte(w >> 8)
		b2 := byte(w >> 16)
		b3 := byte(w >> 24)
		rop.words[2*idx] = uint32(sqrTable[b0]) | uint32(sqrTable[b1])<<16
		rop.words[2*idx+1] = uint32(sqrTable[b2]) | uint32(sqrTable[b3])<<16
	}
	rop.recalculateDegree()
	return rop
}

// Mul returns (a*b) reduced modulo the fixed reduction polynomial for
// degree m.
func Mul(a, b *Element, m int) (*Element, error) {
	return reduce(rawMul(a, b), m)
}

// Square returns a² reduced modulo the fixed reduction polynomial for
// degree m.
func Square(a *Element, m int) (*Element, error) {
	return reduce(rawSquare(a), m)
}

// Invert returns a^-1 mod f(t), via extended Euclidean division over
// polynomials (GECC Algorithm 2.48). Raises ArithmeticError for a == 0.
func Invert(a *Element, m int) (*Element, error) {
	if a.IsZero() {
		return nil, eccerr.Wrap(eccerr.KindArithmetic, "invert of zero in F_2^%d", m)
	}

	poly, ok := reductionPolynomial[m]
	if !ok {
		return nil, eccerr.Wrap(eccerr.KindUnknownCurve, "no reduction polynomial for degree %d", m)
	}

	u := a.Clone()
	u.recalculateDegree()
	v := poly.modulus.Clone()
	v.recalculateDegree()
	g1 := One(m)
	g2 := Zero(m)

	for !u.IsOne() {
		u.recalculateDegree()
		v.recalculateDegree()
		j := u.degree - v.degree
		if j < 0 {
			u, v = v, u
			g1, g2 = g2, g1
			j = -j
		}

		u = Add(u, shiftLeft(v, j))
		g1 = Add(g1, shiftLeft(g2, j))
	}

	return g1, nil
}
