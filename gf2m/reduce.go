package gf2m

import "github.com/sammyne/ecc-core/eccerr"

// reductionPoly describes a Koblitz curve's fixed sparse reduction
// polynomial f(t) = t^degree + Σ(middleTerms) + 1.
type reductionPoly struct {
	degree      int
	middleTerms []int
	modulus     *Element // f(t) itself, as an element, for Invert's Euclidean step
}

// reductionPolynomial tabulates the five supported Koblitz degrees and
// their trinomials/pentanomials, per spec.md §4.2's table.
var reductionPolynomial = map[int]reductionPoly{
	163: newReductionPoly(163, []int{7, 6, 3}),
	233: newReductionPoly(233, []int{74}),
	283: newReductionPoly(283, []int{12, 7, 5}),
	409: newReductionPoly(409, []int{87}),
	571: newReductionPoly(571, []int{10, 5, 2}),
}

func newReductionPoly(degree int, middleTerms []int) reductionPoly {
	modulus := Zero(degree)
	modulus.setBitXOR(degree)
	modulus.setBitXOR(0)
	for _, t := range middleTerms {
		modulus.setBitXOR(t)
	}
	modulus.recalculateDegree()
	return reductionPoly{degree: degree, middleTerms: middleTerms, modulus: modulus}
}

// reduce folds a (possibly double-width, unreduced) element down to the
// canonical word length for degree m, using the identity
//
//	t^m ≡ Σ(middleTerms) t^e + 1   (mod f)
//
// so that any bit set at position p >= m is replaced by the
// corresponding shifted copy of the low-order terms — the generalized,
// data-driven form of the original's per-degree word-folding routines
// (_f2m_reduce_k163 et al., GECC Algorithms 2.41-2.45): same fold-high-
// words-down shape, parameterized by each curve's term table instead of
// hand-unrolled per-m shift constants.
func reduce(e *Element, m int) (*Element, error) {
	poly, ok := reductionPolynomial[m]
	if !ok {
		return nil, eccerr.Wrap(eccerr.KindUnknownCurve, "no reduction polynomial for degree %d", m)
	}

	targetWords := wordsFor(m)
	r := e.Clone()
	r.words = ensureLen(r.words, targetWords)

	// Fold every bit at or above position m, from the top word down.
	for i := len(r.words) - 1; i >= 0; i-- {
		base := i * wordBits
		if base+wordBits-1 < m {
			break
		}
		w := r.words[i]
		if w == 0 {
			continue
		}
		r.words[i] = 0
		for b := wordBits - 1; b >= 0; b-- {
			if w&(1<<uint(b)) == 0 {
				continue
			}
			p := base + b
			if p < m {
				// Below the leading term: keep this bit as-is.
				r.setBitXOR(p)
				continue
			}
			// p >= m: fold via t^m ≡ Σ(middleTerms) t^e + 1 (mod f).
			shift := p - m
			r.setBitXOR(shift)
			for _, t := range poly.middleTerms {
				r.setBitXOR(shift + t)
			}
		}
	}

	// Final top-word mask: keep only the m mod 32 low bits (a full word
	// when m is word-aligned).
	r.words = ensureLen(r.words, targetWords)
	r.words = r.words[:targetWords]
	topBits := m % wordBits
	if topBits != 0 {
		mask := uint32(1)<<uint(topBits) - 1
		r.words[targetWords-1] &= mask
	}

	r.recalculateDegree()
	return r, nil
}
