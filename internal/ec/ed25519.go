package ec

import (
	"bytes"
	"fmt"
	"math/big"

	"filippo.io/edwards25519"
)

// ed25519PointLen is the size of an encoded edwards25519 point.
const ed25519PointLen = 32

type ed25519Decoder struct{}

// DecodePoint accepts only exactly 32-byte encodings; the octet string is the
// number's own big-endian bytes, taken as the RFC 8032 encoding. Encodings
// with y >= p or a negative zero x are rejected even though SetBytes takes
// them.
func (ed25519Decoder) DecodePoint(b []byte) error {
	if len(b) != ed25519PointLen {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidEncoding, len(b), ed25519PointLen)
	}
	point, err := edwards25519.NewIdentityPoint().SetBytes(b)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotOnCurve, err)
	}
	if !bytes.Equal(point.Bytes(), b) {
		return fmt.Errorf("%w: non-canonical edwards25519 encoding", ErrInvalidEncoding)
	}
	return nil
}

func ed25519Curve(name string) definition {
	return definition{name: name, build: func(name string) (*Curve, error) {
		// p = 2^255 - 19
		p := new(big.Int).Lsh(big.NewInt(1), 255)
		p.Sub(p, big.NewInt(19))
		return &Curve{
			Name:    name,
			Field:   EdwardsField,
			P:       p,
			decoder: ed25519Decoder{},
		}, nil
	}}
}
