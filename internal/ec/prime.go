package ec

import (
	"fmt"
	"math/big"
)

// weierstrass decodes points of y^2 = x^3 + ax + b over GF(p).
type weierstrass struct {
	p, a, b  *big.Int
	fieldLen int
}

func newWeierstrass(p, a, b *big.Int) *weierstrass {
	return &weierstrass{p: p, a: a, b: b, fieldLen: (p.BitLen() + 7) / 8}
}

// rhs computes x^3 + ax + b mod p.
func (w *weierstrass) rhs(x *big.Int) *big.Int {
	r := new(big.Int).Mul(x, x)
	r.Mul(r, x)
	ax := new(big.Int).Mul(w.a, x)
	r.Add(r, ax)
	r.Add(r, w.b)
	return r.Mod(r, w.p)
}

func (w *weierstrass) onCurve(x, y *big.Int) bool {
	lhs := new(big.Int).Mul(y, y)
	lhs.Mod(lhs, w.p)
	return lhs.Cmp(w.rhs(x)) == 0
}

// decode returns the affine coordinates encoded in b.
func (w *weierstrass) decode(b []byte) (*big.Int, *big.Int, error) {
	o, err := splitOctets(b, w.fieldLen)
	if err != nil {
		return nil, nil, err
	}

	x := new(big.Int).SetBytes(o.x)
	if x.Cmp(w.p) >= 0 {
		return nil, nil, fmt.Errorf("%w: x outside field", ErrInvalidEncoding)
	}

	if o.form == formCompressed {
		y := new(big.Int).ModSqrt(w.rhs(x), w.p)
		if y == nil {
			return nil, nil, ErrNotOnCurve
		}
		if y.Bit(0) != o.yBit {
			if y.Sign() == 0 {
				return nil, nil, fmt.Errorf("%w: odd y requested for y = 0", ErrInvalidEncoding)
			}
			y.Sub(w.p, y)
		}
		return x, y, nil
	}

	y := new(big.Int).SetBytes(o.y)
	if y.Cmp(w.p) >= 0 {
		return nil, nil, fmt.Errorf("%w: y outside field", ErrInvalidEncoding)
	}
	if o.form == formHybrid && y.Bit(0) != o.yBit {
		return nil, nil, fmt.Errorf("%w: hybrid parity mismatch", ErrInvalidEncoding)
	}
	if !w.onCurve(x, y) {
		return nil, nil, ErrNotOnCurve
	}
	return x, y, nil
}

func (w *weierstrass) DecodePoint(b []byte) error {
	_, _, err := w.decode(b)
	return err
}
