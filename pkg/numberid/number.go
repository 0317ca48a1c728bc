package numberid

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/mahdiidarabi/numberid/internal/codec"
)

// Format selects the encoding of the input text.
type Format int

const (
	FormatHex Format = iota
	FormatDecimal
	FormatBase64
	FormatMPI
)

func (f Format) String() string {
	switch f {
	case FormatHex:
		return "hex"
	case FormatDecimal:
		return "dec"
	case FormatBase64:
		return "base64"
	case FormatMPI:
		return "mpi"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps a format name (hex, dec, base64, mpi) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "hex", "x":
		return FormatHex, nil
	case "dec", "decimal", "d":
		return FormatDecimal, nil
	case "base64", "b64", "b":
		return FormatBase64, nil
	case "mpi", "m":
		return FormatMPI, nil
	default:
		return 0, fmt.Errorf("unsupported input format %q", s)
	}
}

// Number is the canonical value being classified. It is read-only once built.
type Number struct {
	v *big.Int
}

// NewNumber wraps a copy of x.
func NewNumber(x *big.Int) (*Number, error) {
	if x == nil {
		return nil, ErrNullInput
	}
	return &Number{v: new(big.Int).Set(x)}, nil
}

// Import decodes text in the given format.
func Import(text string, format Format) (*Number, error) {
	var (
		x   *big.Int
		err error
	)
	switch format {
	case FormatHex:
		x, err = codec.ParseHex(text)
	case FormatDecimal:
		x, err = codec.ParseDecimal(text)
	case FormatBase64:
		x, err = codec.ParseBase64Binary(text)
	case FormatMPI:
		x, err = codec.ParseBase64MPI(text)
	default:
		return nil, fmt.Errorf("unsupported input format %v", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to import %s input: %w", format, err)
	}
	return &Number{v: x}, nil
}

// Int returns a copy of the value.
func (n *Number) Int() *big.Int {
	return new(big.Int).Set(n.v)
}

// BitLen returns the bit length of the magnitude.
func (n *Number) BitLen() int {
	return n.v.BitLen()
}

// ByteLen returns the byte length of the magnitude.
func (n *Number) ByteLen() int {
	return codec.ByteLen(n.v)
}

func (n *Number) String() string {
	return codec.Hex(n.v)
}
