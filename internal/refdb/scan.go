// Package refdb scans flat reference files of known numbers one line at a time.
package refdb

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
)

// DefaultMaxLineBytes is the default limit on line length, not counting the
// line terminator.
const DefaultMaxLineBytes = 64 * 1024

// ErrUnavailable is returned when a reference file cannot be opened or read.
var ErrUnavailable = errors.New("reference file unavailable")

// Stats summarises one scan.
type Stats struct {
	Lines   int // lines read
	Skipped int // malformed or overlong lines
}

// Lookup scans path for the first record whose key equals key. found is false
// when the file was read to the end without a match. Malformed and overlong
// lines are counted in Stats and otherwise ignored.
func Lookup(path string, key *big.Int, parser LineParser, maxLine int) (rec Record, found bool, stats Stats, err error) {
	file, err := os.Open(path)
	if err != nil {
		return Record{}, false, stats, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer file.Close()

	rec, found, stats, err = scan(file, key, parser, maxLine)
	if err != nil {
		return Record{}, false, stats, fmt.Errorf("%w: %s: %w", ErrUnavailable, path, err)
	}
	return rec, found, stats, nil
}

func scan(r io.Reader, key *big.Int, parser LineParser, maxLine int) (Record, bool, Stats, error) {
	if maxLine <= 0 {
		maxLine = DefaultMaxLineBytes
	}
	// Room for the line, its "\r\n", and the 16 bytes bufio insists on.
	size := maxLine + 2
	if size < 16 {
		size = 16
	}
	reader := bufio.NewReaderSize(r, size)

	var stats Stats
	overlong := false
	for {
		line, err := reader.ReadSlice('\n')
		if errors.Is(err, bufio.ErrBufferFull) {
			// Drop the rest of this line.
			overlong = true
			continue
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return Record{}, false, stats, err
		}

		if contentLen(line) > maxLine {
			overlong = true
		}

		if len(line) > 0 || overlong {
			stats.Lines++
			if overlong {
				stats.Skipped++
			} else if rec, ok, perr := parser.ParseLine(string(line)); perr != nil {
				stats.Skipped++
			} else if ok && rec.Key.Cmp(key) == 0 {
				return rec, true, stats, nil
			}
		}
		overlong = false

		if errors.Is(err, io.EOF) {
			return Record{}, false, stats, nil
		}
	}
}

// contentLen is the length of line without its terminator.
func contentLen(line []byte) int {
	n := len(line)
	if n > 0 && line[n-1] == '\n' {
		n--
		if n > 0 && line[n-1] == '\r' {
			n--
		}
	}
	return n
}
