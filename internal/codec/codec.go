// Package codec converts between the textual and binary encodings accepted
// by numberid and the canonical *big.Int value.
package codec

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrParse is returned when input text is not a valid encoding.
var ErrParse = errors.New("malformed number encoding")

// ParseHex parses optionally signed, optionally 0x-prefixed hexadecimal text.
func ParseHex(s string) (*big.Int, error) {
	neg, digits := splitSign(strings.TrimSpace(s))
	digits = strings.TrimPrefix(digits, "0x")
	digits = strings.TrimPrefix(digits, "0X")
	if digits == "" {
		return nil, fmt.Errorf("%w: empty hex string", ErrParse)
	}
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return nil, fmt.Errorf("%w: invalid hex character %q", ErrParse, digits[i])
		}
	}

	z, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return nil, fmt.Errorf("%w: invalid hex string %q", ErrParse, s)
	}
	if neg {
		z.Neg(z)
	}
	return z, nil
}

// ParseDecimal parses optionally signed base-10 text.
func ParseDecimal(s string) (*big.Int, error) {
	neg, digits := splitSign(strings.TrimSpace(s))
	if digits == "" {
		return nil, fmt.Errorf("%w: empty decimal string", ErrParse)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return nil, fmt.Errorf("%w: invalid decimal character %q", ErrParse, digits[i])
		}
	}

	z, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("%w: invalid decimal string %q", ErrParse, s)
	}
	if neg {
		z.Neg(z)
	}
	return z, nil
}

// ParseBase64Binary decodes base64 text and interprets the bytes as an
// unsigned big-endian integer.
func ParseBase64Binary(s string) (*big.Int, error) {
	raw, err := decodeBase64(s)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(raw), nil
}

// ParseBase64MPI decodes base64 text holding an MPI encoded integer.
func ParseBase64MPI(s string) (*big.Int, error) {
	raw, err := decodeBase64(s)
	if err != nil {
		return nil, err
	}
	return ParseMPI(raw)
}

// Hex renders x as uppercase, byte aligned hexadecimal. Negative values carry
// a leading '-' and zero renders as "0".
func Hex(x *big.Int) string {
	if x.Sign() == 0 {
		return "0"
	}
	s := strings.ToUpper(hex.EncodeToString(magnitude(x)))
	if x.Sign() < 0 {
		return "-" + s
	}
	return s
}

// Normalize canonicalises hex text the way Hex renders it, so that
// Hex(ParseHex(s)) == Normalize(s) for every valid s.
func Normalize(s string) string {
	neg, digits := splitSign(strings.TrimSpace(s))
	digits = strings.TrimPrefix(digits, "0x")
	digits = strings.TrimPrefix(digits, "0X")
	digits = strings.TrimLeft(strings.ToUpper(digits), "0")
	if digits == "" {
		return "0"
	}
	if len(digits)%2 != 0 {
		digits = "0" + digits
	}
	if neg {
		return "-" + digits
	}
	return digits
}

// Decimal renders x in base 10.
func Decimal(x *big.Int) string {
	return x.Text(10)
}

// Base64Binary renders the big-endian magnitude of x as standard base64.
// Zero renders as a single zero byte, "AA==", so that the output always
// parses back.
func Base64Binary(x *big.Int) string {
	return base64.StdEncoding.EncodeToString(atLeastOneByte(magnitude(x)))
}

// Base64MPI renders the MPI encoding of x as standard base64.
func Base64MPI(x *big.Int) string {
	return base64.StdEncoding.EncodeToString(MPI(x))
}

// LittleEndianHex renders the magnitude of x, least significant byte first,
// as uppercase hexadecimal. Zero renders as "00".
func LittleEndianHex(x *big.Int) string {
	b := atLeastOneByte(magnitude(x))
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return strings.ToUpper(hex.EncodeToString(b))
}

// ByteLen returns the number of bytes needed to hold the magnitude of x.
func ByteLen(x *big.Int) int {
	return (x.BitLen() + 7) / 8
}

// Bytes returns the minimal big-endian magnitude of x. Zero yields an empty slice.
func Bytes(x *big.Int) []byte {
	return magnitude(x)
}

func magnitude(x *big.Int) []byte {
	// big.Int.Bytes ignores the sign and returns a fresh slice.
	return x.Bytes()
}

func atLeastOneByte(b []byte) []byte {
	if len(b) == 0 {
		return []byte{0}
	}
	return b
}

func decodeBase64(s string) ([]byte, error) {
	s = strings.Join(strings.Fields(s), "")
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		// Accept unpadded input.
		var rawErr error
		raw, rawErr = base64.RawStdEncoding.DecodeString(s)
		if rawErr != nil {
			return nil, fmt.Errorf("%w: invalid base64: %v", ErrParse, err)
		}
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: base64 decodes to zero bytes", ErrParse)
	}
	return raw, nil
}

func splitSign(s string) (bool, string) {
	if strings.HasPrefix(s, "-") {
		return true, s[1:]
	}
	return false, s
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
