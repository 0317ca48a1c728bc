// Package ec holds the named elliptic curve catalog used to recognise curve
// parameters and encoded curve points.
package ec

import (
	"errors"
	"math/big"
)

// Field identifies the kind of field a curve is defined over.
type Field int

const (
	// PrimeField curves are short Weierstrass curves y^2 = x^3 + ax + b over GF(p).
	PrimeField Field = iota
	// BinaryField curves are y^2 + xy = x^3 + ax^2 + b over GF(2^m).
	BinaryField
	// EdwardsField curves use the twisted Edwards encoding (point test only).
	EdwardsField
)

func (f Field) String() string {
	switch f {
	case PrimeField:
		return "prime"
	case BinaryField:
		return "binary"
	case EdwardsField:
		return "edwards"
	default:
		return "unknown"
	}
}

var (
	// ErrInvalidEncoding is returned for octet strings that are not a point encoding.
	ErrInvalidEncoding = errors.New("invalid point encoding")
	// ErrNotOnCurve is returned when decoded coordinates do not satisfy the curve equation.
	ErrNotOnCurve = errors.New("point is not on curve")
)

// PointDecoder validates an octet-string point encoding against one curve.
type PointDecoder interface {
	// DecodePoint returns nil when b encodes a point on the curve.
	DecodePoint(b []byte) error
}

// Curve is one entry of the catalog.
type Curve struct {
	Name  string
	Field Field

	// P is the field prime for prime and Edwards curves. A and B are the
	// Weierstrass coefficients of prime curves. Nil values are not compared.
	P *big.Int
	A *big.Int
	B *big.Int

	decoder PointDecoder
}

// Param is a named curve parameter.
type Param struct {
	Name  string
	Value *big.Int
}

// Params returns the comparable parameters of the curve in report order.
// Binary curves have none.
func (c *Curve) Params() []Param {
	if c.Field == BinaryField {
		return nil
	}
	params := make([]Param, 0, 3)
	for _, p := range []Param{{"prime", c.P}, {"a", c.A}, {"b", c.B}} {
		if p.Value != nil {
			params = append(params, Param{Name: p.Name, Value: new(big.Int).Set(p.Value)})
		}
	}
	return params
}

// DecodePoint reports whether b is a valid point encoding on c.
func (c *Curve) DecodePoint(b []byte) error {
	if c.decoder == nil {
		return ErrInvalidEncoding
	}
	return c.decoder.DecodePoint(b)
}
