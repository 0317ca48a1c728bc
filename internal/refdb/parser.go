package refdb

import (
	"encoding/csv"
	"fmt"
	"math/big"
	"strings"

	"github.com/mahdiidarabi/numberid/internal/codec"
)

// LineParser turns one line of a reference file into a Record.
type LineParser interface {
	// ParseLine returns ok == false for lines that carry no record
	// (comments, blanks). A non-nil error marks a malformed line.
	ParseLine(line string) (rec Record, ok bool, err error)

	// Name returns the parser name for logging.
	Name() string
}

// ModuliParser parses OpenSSH moduli files. Each line is a list of
// whitespace-separated fields and the last one is the hex modulus.
type ModuliParser struct{}

// ParseLine implements LineParser.
func (ModuliParser) ParseLine(line string) (Record, bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Record{}, false, nil
	}
	fields := strings.Fields(line)
	key, err := codec.ParseHex(fields[len(fields)-1])
	if err != nil {
		return Record{}, false, fmt.Errorf("failed to parse modulus: %w", err)
	}
	return Record{Key: key}, true, nil
}

// Name implements LineParser.
func (ModuliParser) Name() string { return "moduli" }

// CSVParser parses number databases of the form hex_key,label,...
// Labels may be quoted. Fields after the label are ignored.
type CSVParser struct{}

// ParseLine implements LineParser.
func (CSVParser) ParseLine(line string) (Record, bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Record{}, false, nil
	}

	reader := csv.NewReader(strings.NewReader(line))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	fields, err := reader.Read()
	if err != nil {
		return Record{}, false, fmt.Errorf("failed to read record: %w", err)
	}
	if len(fields) < 2 {
		return Record{}, false, fmt.Errorf("expected key and label, got %d field(s)", len(fields))
	}

	key, err := codec.ParseHex(strings.TrimSpace(fields[0]))
	if err != nil {
		return Record{}, false, fmt.Errorf("failed to parse key: %w", err)
	}
	return Record{Key: key, Label: strings.TrimSpace(fields[1])}, true, nil
}

// Name implements LineParser.
func (CSVParser) Name() string { return "csv" }

// Record is one parsed reference line.
type Record struct {
	Key   *big.Int
	Label string
}
