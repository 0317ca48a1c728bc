package codec

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

// mpiHeaderLen is the size of the big-endian length prefix of an MPI.
const mpiHeaderLen = 4

// ParseMPI decodes an MPI: a 4-byte big-endian length followed by exactly that
// many magnitude bytes. The top bit of the first magnitude byte is the sign.
func ParseMPI(b []byte) (*big.Int, error) {
	if len(b) < mpiHeaderLen {
		return nil, fmt.Errorf("%w: MPI shorter than its %d-byte length prefix", ErrParse, mpiHeaderLen)
	}

	n := binary.BigEndian.Uint32(b[:mpiHeaderLen])
	body := b[mpiHeaderLen:]
	if uint64(n) != uint64(len(body)) {
		return nil, fmt.Errorf("%w: MPI declares %d bytes, %d available", ErrParse, n, len(body))
	}
	if n == 0 {
		return new(big.Int), nil
	}

	mag := make([]byte, len(body))
	copy(mag, body)
	neg := mag[0]&0x80 != 0
	mag[0] &= 0x7f

	z := new(big.Int).SetBytes(mag)
	if neg {
		z.Neg(z)
	}
	return z, nil
}

// MPI encodes x as an MPI. A zero pad byte is inserted when the top bit of the
// magnitude is set so that it is not mistaken for the sign.
func MPI(x *big.Int) []byte {
	mag := magnitude(x)
	pad := len(mag) > 0 && mag[0]&0x80 != 0

	n := len(mag)
	if pad {
		n++
	}
	out := make([]byte, mpiHeaderLen+n)
	binary.BigEndian.PutUint32(out[:mpiHeaderLen], uint32(n))

	body := out[mpiHeaderLen:]
	if pad {
		copy(body[1:], mag)
	} else {
		copy(body, mag)
	}
	if x.Sign() < 0 {
		body[0] |= 0x80
	}
	return out
}
