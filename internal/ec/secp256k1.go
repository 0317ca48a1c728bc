package ec

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// secp256k1Decoder defers point parsing to the decred implementation, which
// accepts the compressed, uncompressed and hybrid forms.
type secp256k1Decoder struct{}

func (secp256k1Decoder) DecodePoint(b []byte) error {
	_, err := secp256k1.ParsePubKey(b)
	return err
}

func secp256k1Curve(name string) definition {
	return definition{name: name, build: func(name string) (*Curve, error) {
		params := secp256k1.S256().Params()
		return &Curve{
			Name:    name,
			Field:   PrimeField,
			P:       new(big.Int).Set(params.P),
			A:       new(big.Int),
			B:       new(big.Int).Set(params.B),
			decoder: secp256k1Decoder{},
		}, nil
	}}
}
