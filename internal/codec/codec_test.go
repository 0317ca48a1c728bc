package codec

import (
	"encoding/base64"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"1a2b", 0x1a2b},
		{"0x1A2B", 0x1a2b},
		{"0X00ff", 0xff},
		{"-0x10", -16},
		{" 7 ", 7},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			z, err := ParseHex(tt.in)
			require.NoError(t, err)
			assert.Equal(t, 0, z.Cmp(big.NewInt(tt.want)), "got %s", z.Text(16))
		})
	}
}

func TestParseHex_Invalid(t *testing.T) {
	for _, in := range []string{"zz", "", "0x", "12g4", "0x-5", "-"} {
		_, err := ParseHex(in)
		assert.ErrorIs(t, err, ErrParse, "input %q", in)
	}
}

func TestParseDecimal(t *testing.T) {
	z, err := ParseDecimal("7919")
	require.NoError(t, err)
	assert.Equal(t, int64(7919), z.Int64())

	z, err = ParseDecimal("-42")
	require.NoError(t, err)
	assert.Equal(t, int64(-42), z.Int64())

	for _, in := range []string{"", "12a", "0x10", "1.5"} {
		_, err := ParseDecimal(in)
		assert.ErrorIs(t, err, ErrParse, "input %q", in)
	}
}

func TestParseBase64Binary(t *testing.T) {
	z, err := ParseBase64Binary(base64.StdEncoding.EncodeToString([]byte{0x01, 0x00, 0x01}))
	require.NoError(t, err)
	assert.Equal(t, int64(65537), z.Int64())

	// unpadded input
	z, err = ParseBase64Binary("AQAB")
	require.NoError(t, err)
	assert.Equal(t, int64(65537), z.Int64())

	z, err = ParseBase64Binary("Gis")
	require.NoError(t, err)
	assert.Equal(t, int64(0x1a2b), z.Int64())
}

func TestParseBase64Binary_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "!!!!", "A"} {
		_, err := ParseBase64Binary(in)
		assert.ErrorIs(t, err, ErrParse, "input %q", in)
	}
}

func TestParseMPI(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want int64
	}{
		{"zero", []byte{0, 0, 0, 0}, 0},
		{"positive", []byte{0, 0, 0, 2, 0x1a, 0x2b}, 0x1a2b},
		{"padded", []byte{0, 0, 0, 2, 0x00, 0x80}, 0x80},
		{"negative", []byte{0, 0, 0, 2, 0x9a, 0x2b}, -0x1a2b},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z, err := ParseMPI(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, z.Int64())
		})
	}
}

func TestParseMPI_Invalid(t *testing.T) {
	tests := map[string][]byte{
		"short header":  {0, 0, 1},
		"length excess": {0, 0, 0, 3, 0x01, 0x02},
		"length short":  {0, 0, 0, 1, 0x01, 0x02},
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseMPI(in)
			assert.ErrorIs(t, err, ErrParse)
		})
	}

	_, err := ParseBase64MPI("")
	assert.ErrorIs(t, err, ErrParse)
}

func TestMPI(t *testing.T) {
	assert.Equal(t, []byte{0, 0, 0, 0}, MPI(new(big.Int)))
	assert.Equal(t, []byte{0, 0, 0, 2, 0x1a, 0x2b}, MPI(big.NewInt(0x1a2b)))
	assert.Equal(t, []byte{0, 0, 0, 2, 0x00, 0x80}, MPI(big.NewInt(0x80)))
	assert.Equal(t, []byte{0, 0, 0, 2, 0x9a, 0x2b}, MPI(big.NewInt(-0x1a2b)))
	assert.Equal(t, []byte{0, 0, 0, 2, 0x80, 0x80}, MPI(big.NewInt(-0x80)))
}

func TestExport(t *testing.T) {
	x := big.NewInt(0x0a0b0c)

	assert.Equal(t, "0A0B0C", Hex(x))
	assert.Equal(t, "658188", Decimal(x))
	assert.Equal(t, "CgsM", Base64Binary(x))
	assert.Equal(t, "0C0B0A", LittleEndianHex(x))
	assert.Equal(t, "AAAAAwoLDA==", Base64MPI(x))
	assert.Equal(t, 3, ByteLen(x))

	assert.Equal(t, "0", Hex(new(big.Int)))
	assert.Equal(t, "-FF", Hex(big.NewInt(-255)))
	assert.Equal(t, "AA==", Base64Binary(new(big.Int)))
	assert.Equal(t, "00", LittleEndianHex(new(big.Int)))
	assert.Equal(t, "AAAAAA==", Base64MPI(new(big.Int)))
}

func TestRoundTrip(t *testing.T) {
	p256, _ := new(big.Int).SetString("ffffffff00000001000000000000000000000000ffffffffffffffffffffffff", 16)
	values := []*big.Int{
		new(big.Int),
		big.NewInt(1),
		big.NewInt(0x7f),
		big.NewInt(0x80),
		big.NewInt(65537),
		p256,
		new(big.Int).Lsh(big.NewInt(1), 4096),
	}

	for _, x := range values {
		h, err := ParseHex(Hex(x))
		require.NoError(t, err)
		assert.Equal(t, 0, h.Cmp(x), "hex round trip of %s", x)

		d, err := ParseDecimal(Decimal(x))
		require.NoError(t, err)
		assert.Equal(t, 0, d.Cmp(x), "decimal round trip of %s", x)

		b, err := ParseBase64Binary(Base64Binary(x))
		require.NoError(t, err)
		assert.Equal(t, 0, b.Cmp(x), "base64 round trip of %s", x)

		m, err := ParseBase64MPI(Base64MPI(x))
		require.NoError(t, err)
		assert.Equal(t, 0, m.Cmp(x), "MPI round trip of %s", x)
	}
}

func TestNormalize(t *testing.T) {
	for _, in := range []string{"0x1a2b", "1A2B", "0x00ab", "abc", "0X0", "-0xff"} {
		z, err := ParseHex(in)
		require.NoError(t, err)
		assert.Equal(t, Normalize(in), Hex(z), "input %q", in)
	}
}
