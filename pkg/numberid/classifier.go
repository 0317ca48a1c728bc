package numberid

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/mahdiidarabi/numberid/internal/codec"
)

// Classifier names used by the default registry and the CLI.
const (
	NameBits      = "bits"
	NameBytes     = "bytes"
	NamePrime     = "prime"
	NameHash      = "hash"
	NameEC        = "ec"
	NameMatch     = "match"
	NameSSHModuli = "ssh-moduli"
)

// PrimalityRounds is the Miller-Rabin repetition count passed to
// big.Int.ProbablyPrime, which also runs a Baillie-PSW test.
const PrimalityRounds = 64

// Classifier inspects a number and produces a single report.
type Classifier interface {
	// Classify returns ErrNullInput when n is nil.
	Classify(n *Number) (Report, error)
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(n *Number) (Report, error)

// Classify implements Classifier.
func (f ClassifierFunc) Classify(n *Number) (Report, error) {
	if n == nil {
		return Report{}, ErrNullInput
	}
	return f(n)
}

// valueClassifier reports fn(x) under a fixed label.
func valueClassifier(label string, fn func(x *big.Int) string) Classifier {
	return ClassifierFunc(func(n *Number) (Report, error) {
		return Report{Label: label, Value: fn(n.v)}, nil
	})
}

// BitLength reports the bit length of the magnitude.
func BitLength() Classifier {
	return valueClassifier("bits", func(x *big.Int) string {
		return strconv.Itoa(x.BitLen())
	})
}

// ByteLength reports the byte length of the magnitude.
func ByteLength() Classifier {
	return valueClassifier("bytes", func(x *big.Int) string {
		return strconv.Itoa(codec.ByteLen(x))
	})
}

// Primality reports Yes for probable primes. Negative numbers are never prime.
func Primality() Classifier {
	return valueClassifier("prime", func(x *big.Int) string {
		return yesNo(x.Sign() > 0 && x.ProbablyPrime(PrimalityRounds))
	})
}

// digestClasses maps a byte length to the digests that produce it.
var digestClasses = map[int]string{
	16: "MD4, MD5",
	20: "SHA1, RIPEMD-160",
	24: "TIGER",
	32: "SHA256",
	64: "SHA512",
}

// DigestClass reports the digest algorithms whose output has the number's
// byte length.
func DigestClass() Classifier {
	return valueClassifier("hash", func(x *big.Int) string {
		if class, ok := digestClasses[codec.ByteLen(x)]; ok {
			return class
		}
		return Negative
	})
}

// OutputFormat names an output-formatting classifier.
type OutputFormat string

const (
	OutputHex          OutputFormat = "hex"
	OutputDecimal      OutputFormat = "dec"
	OutputBase64       OutputFormat = "base64"
	OutputMPI          OutputFormat = "mpi"
	OutputLittleEndian OutputFormat = "le"
)

// OutputClassifier returns the classifier that re-encodes the number in format.
func OutputClassifier(format OutputFormat) (Classifier, error) {
	switch format {
	case OutputHex:
		return valueClassifier("hex", codec.Hex), nil
	case OutputDecimal:
		return valueClassifier("dec", codec.Decimal), nil
	case OutputBase64:
		return valueClassifier("base64", codec.Base64Binary), nil
	case OutputMPI:
		return valueClassifier("MPI base64", codec.Base64MPI), nil
	case OutputLittleEndian:
		return valueClassifier("LE hex", codec.LittleEndianHex), nil
	default:
		return nil, fmt.Errorf("%w: output format %q", ErrUnknownFilter, string(format))
	}
}

// OutputClassifiers builds the classifiers for formats, keyed by format name.
func OutputClassifiers(formats ...OutputFormat) (map[string]Classifier, error) {
	out := make(map[string]Classifier, len(formats))
	for _, format := range formats {
		c, err := OutputClassifier(format)
		if err != nil {
			return nil, err
		}
		out[string(format)] = c
	}
	return out, nil
}
