package ec

import (
	"crypto/elliptic"
	"fmt"
	"math/big"
)

// NIST curves are looked up from crypto/elliptic. All of them use a = -3.
const (
	p224 = "P-224"
	p256 = "P-256"
	p384 = "P-384"
	p521 = "P-521"
)

func nistByName(id string) (elliptic.Curve, error) {
	switch id {
	case p224:
		return elliptic.P224(), nil
	case p256:
		return elliptic.P256(), nil
	case p384:
		return elliptic.P384(), nil
	case p521:
		return elliptic.P521(), nil
	default:
		return nil, fmt.Errorf("unsupported NIST curve %q", id)
	}
}

func nistCurve(name, id string) definition {
	return definition{name: name, build: func(name string) (*Curve, error) {
		curve, err := nistByName(id)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		params := curve.Params()
		p := new(big.Int).Set(params.P)
		a := new(big.Int).Sub(p, big.NewInt(3))
		b := new(big.Int).Set(params.B)
		return weierstrassCurve(name, p, a, b), nil
	}}
}
