package ec

import (
	"fmt"
	"math/big"
)

// gf2m is arithmetic in GF(2^m) with elements held as polynomials in the bits
// of a big.Int, reduced modulo the irreducible polynomial f.
type gf2m struct {
	f *big.Int
	m int

	// tau has trace 1. Only set for even m.
	tau *big.Int
}

func newGF2m(exps ...int) gf2m {
	f := new(big.Int)
	for _, e := range exps {
		f.SetBit(f, e, 1)
	}
	g := gf2m{f: f, m: exps[0]}
	if g.m%2 == 0 {
		g.tau = g.traceOne()
	}
	return g
}

func (g gf2m) add(a, b *big.Int) *big.Int {
	return new(big.Int).Xor(a, b)
}

func (g gf2m) reduce(a *big.Int) *big.Int {
	r := new(big.Int).Set(a)
	t := new(big.Int)
	for r.BitLen() > g.m {
		t.Lsh(g.f, uint(r.BitLen()-1-g.m))
		r.Xor(r, t)
	}
	return r
}

func (g gf2m) mul(a, b *big.Int) *big.Int {
	a = g.reduce(a)
	r := new(big.Int)
	for i := b.BitLen() - 1; i >= 0; i-- {
		r.Lsh(r, 1)
		if r.Bit(g.m) == 1 {
			r.Xor(r, g.f)
		}
		if b.Bit(i) == 1 {
			r.Xor(r, a)
		}
	}
	return r
}

func (g gf2m) sqr(a *big.Int) *big.Int {
	return g.mul(a, a)
}

// inv computes a^-1 with the binary extended Euclidean algorithm. a must be
// non-zero modulo f.
func (g gf2m) inv(a *big.Int) *big.Int {
	u := g.reduce(a)
	v := new(big.Int).Set(g.f)
	g1, g2 := big.NewInt(1), new(big.Int)
	t := new(big.Int)
	one := big.NewInt(1)

	for u.Cmp(one) != 0 {
		j := u.BitLen() - v.BitLen()
		if j < 0 {
			u, v = v, u
			g1, g2 = g2, g1
			j = -j
		}
		u.Xor(u, t.Lsh(v, uint(j)))
		g1.Xor(g1, t.Lsh(g2, uint(j)))
	}
	return g.reduce(g1)
}

// sqrt returns the unique square root a^(2^(m-1)).
func (g gf2m) sqrt(a *big.Int) *big.Int {
	r := g.reduce(a)
	for i := 0; i < g.m-1; i++ {
		r = g.sqr(r)
	}
	return r
}

// trace returns a + a^2 + ... + a^(2^(m-1)), which is always 0 or 1.
func (g gf2m) trace(a *big.Int) *big.Int {
	t := g.reduce(a)
	r := new(big.Int).Set(t)
	for i := 1; i < g.m; i++ {
		t = g.sqr(t)
		r.Xor(r, t)
	}
	return r
}

// traceOne returns the lowest monomial z^k of trace 1. Tr(z^k) is the k-th
// power sum of the roots of f, so Newton's identities give every trace from
// the coefficients of f alone.
func (g gf2m) traceOne() *big.Int {
	traces := make([]uint, g.m)
	for k := 1; k < g.m; k++ {
		t := uint(k&1) & g.f.Bit(g.m-k)
		for i := 1; i < k; i++ {
			t ^= g.f.Bit(g.m-i) & traces[k-i]
		}
		if t == 1 {
			return new(big.Int).SetBit(new(big.Int), k, 1)
		}
		traces[k] = t
	}
	return nil
}

// solveQuad returns z with z^2 + z = beta. Odd m uses the half-trace; even m
// uses the trace-one element tau (IEEE 1363 A.4.7).
func (g gf2m) solveQuad(beta *big.Int) (*big.Int, bool) {
	beta = g.reduce(beta)
	var z *big.Int
	if g.m%2 == 1 {
		z = new(big.Int).Set(beta)
		t := new(big.Int).Set(beta)
		for i := 0; i < (g.m-1)/2; i++ {
			t = g.sqr(g.sqr(t))
			z.Xor(z, t)
		}
	} else {
		if g.tau == nil {
			return nil, false
		}
		z = new(big.Int)
		w := new(big.Int).Set(g.tau)
		for i := 1; i < g.m; i++ {
			w2 := g.sqr(w)
			z = g.add(g.sqr(z), g.mul(w2, beta))
			w = g.add(w2, g.tau)
		}
	}
	check := g.add(g.sqr(z), z)
	return z, check.Cmp(beta) == 0
}

// binaryCurve decodes points of y^2 + xy = x^3 + ax^2 + b over GF(2^m).
type binaryCurve struct {
	field    gf2m
	a, b     *big.Int
	fieldLen int
}

func newBinaryCurve(field gf2m, a, b *big.Int) *binaryCurve {
	return &binaryCurve{field: field, a: a, b: b, fieldLen: (field.m + 7) / 8}
}

func (c *binaryCurve) onCurve(x, y *big.Int) bool {
	g := c.field
	lhs := g.add(g.sqr(y), g.mul(x, y))
	x2 := g.sqr(x)
	rhs := g.add(g.mul(x2, x), g.mul(c.a, x2))
	rhs = g.add(rhs, c.b)
	return lhs.Cmp(g.reduce(rhs)) == 0
}

func (c *binaryCurve) decode(b []byte) (*big.Int, *big.Int, error) {
	o, err := splitOctets(b, c.fieldLen)
	if err != nil {
		return nil, nil, err
	}
	g := c.field

	x := new(big.Int).SetBytes(o.x)
	if x.BitLen() > g.m {
		return nil, nil, fmt.Errorf("%w: x outside field", ErrInvalidEncoding)
	}

	if o.form == formCompressed {
		if x.Sign() == 0 {
			return x, g.sqrt(c.b), nil
		}
		x2 := g.sqr(x)
		beta := g.add(g.mul(c.b, g.inv(x2)), c.a)
		beta = g.add(beta, x)
		z, ok := g.solveQuad(beta)
		if !ok {
			return nil, nil, ErrNotOnCurve
		}
		if z.Bit(0) != o.yBit {
			z.SetBit(z, 0, o.yBit)
		}
		return x, g.mul(x, z), nil
	}

	y := new(big.Int).SetBytes(o.y)
	if y.BitLen() > g.m {
		return nil, nil, fmt.Errorf("%w: y outside field", ErrInvalidEncoding)
	}
	if o.form == formHybrid {
		if x.Sign() == 0 {
			if o.yBit != 0 {
				return nil, nil, fmt.Errorf("%w: hybrid parity mismatch", ErrInvalidEncoding)
			}
		} else if g.mul(y, g.inv(x)).Bit(0) != o.yBit {
			return nil, nil, fmt.Errorf("%w: hybrid parity mismatch", ErrInvalidEncoding)
		}
	}
	if !c.onCurve(x, y) {
		return nil, nil, ErrNotOnCurve
	}
	return x, y, nil
}

func (c *binaryCurve) DecodePoint(b []byte) error {
	_, _, err := c.decode(b)
	return err
}
