package koblitz

import (
	"github.com/sammyne/ecc-core/bigint"
	"github.com/sammyne/ecc-core/curve"
)

// Mul returns k*P via the same constant-iteration Montgomery ladder as
// primepoint.Mul, carried out in projective López-Dahab coordinates
// (spec.md §4.5): the initial R1 = 2*P is computed directly from the
// affine input with Z = 1, and every loop iteration performs one add
// and one double regardless of the scalar's bit values.
func Mul(p *Point, k *bigint.Int, c *curve.BinaryParams) (*Point, error) {
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
			sum, err := Add(r0, r1, c)
			if err != nil {
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
