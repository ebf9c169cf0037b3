// Package countriesparser extracts the unique country code/label pairs
// from an IMF government-spending indicator CSV.
package countriesparser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/arun664/government-spending-explorer/logging"
	"golang.org/x/text/encoding/charmap"
)

// ErrInputNotFound is returned when the input CSV does not exist. It is
// the only failure the caller is expected to recover from.
var ErrInputNotFound = errors.New("input file not found")

// readRecords reads the whole CSV into memory, header row included.
// Rows are allowed to have varying field counts; the parser treats
// missing fields as empty strings.
func readRecords(path string) ([][]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	// The IMF export is UTF-8, but some sibling government datasets ship
	// in iso-8859-1, so check the content first
	var reader io.Reader
	if utf8.Valid(raw) {
		reader = bytes.NewReader(raw)
	} else {
		logging.Debug("input is not valid UTF-8, decoding as ISO-8859-1", "file", path)
		reader = charmap.ISO8859_1.NewDecoder().Reader(bytes.NewReader(raw))
	}

	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return records, nil
}
