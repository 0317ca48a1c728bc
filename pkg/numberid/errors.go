package numberid

import (
	"errors"

	"github.com/mahdiidarabi/numberid/internal/codec"
	"github.com/mahdiidarabi/numberid/internal/refdb"
)

var (
	// ErrParse reports a malformed input encoding.
	ErrParse = codec.ErrParse

	// ErrNullInput reports a classification attempted without a number.
	ErrNullInput = errors.New("no number to classify")

	// ErrUnknownFilter reports a classifier name that is not registered.
	ErrUnknownFilter = errors.New("unknown filter")

	// ErrResourceUnavailable reports a reference file that could not be read.
	ErrResourceUnavailable = refdb.ErrUnavailable
)
