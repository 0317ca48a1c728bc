package ec

import "fmt"

const (
	formCompressed   = 0x02
	formUncompressed = 0x04
	formHybrid       = 0x06
)

// octets is a point encoding split into its form byte and coordinates.
type octets struct {
	form byte
	yBit uint
	x    []byte
	y    []byte // nil for the compressed form
}

// splitOctets parses the SEC 1 octet-string layout for a field of fieldLen
// bytes. The point at infinity is not accepted.
func splitOctets(b []byte, fieldLen int) (octets, error) {
	if len(b) == 0 {
		return octets{}, fmt.Errorf("%w: empty", ErrInvalidEncoding)
	}

	o := octets{form: b[0] &^ 1, yBit: uint(b[0] & 1)}
	var want int
	switch o.form {
	case formCompressed:
		want = 1 + fieldLen
	case formUncompressed:
		if o.yBit != 0 {
			return octets{}, fmt.Errorf("%w: form byte %#02x", ErrInvalidEncoding, b[0])
		}
		want = 1 + 2*fieldLen
	case formHybrid:
		want = 1 + 2*fieldLen
	default:
		return octets{}, fmt.Errorf("%w: form byte %#02x", ErrInvalidEncoding, b[0])
	}
	if len(b) != want {
		return octets{}, fmt.Errorf("%w: length %d, want %d", ErrInvalidEncoding, len(b), want)
	}

	o.x = b[1 : 1+fieldLen]
	if o.form != formCompressed {
		o.y = b[1+fieldLen:]
	}
	return o, nil
}
