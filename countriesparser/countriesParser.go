package countriesparser

import (
	"strings"

	"github.com/arun664/government-spending-explorer/countriesparser/entities"
	"github.com/arun664/government-spending-explorer/interfaces"
	"github.com/arun664/government-spending-explorer/logging"
)

// Compile-time check to ensure CountriesParser implements Parser interface
var _ interfaces.Parser = (*CountriesParser)(nil)

// CountriesParser implements the Parser interface
type CountriesParser struct{}

// NewCountriesParser creates a new CountriesParser instance
func NewCountriesParser() *CountriesParser {
	return &CountriesParser{}
}

// ParseCountries implements the Parser interface, returning the
// deduplicated entries ascending by code.
func (p *CountriesParser) ParseCountries(path, codeColumn, labelColumn string) ([]entities.Country, error) {
	table, err := ParseCountries(path, codeColumn, labelColumn)
	if err != nil {
		return nil, err
	}
	return table.Sorted(), nil
}

// ParseCountries reads the indicator CSV at path and collects the unique
// (code, label) pairs found in the named columns. Both fields are
// trimmed; rows where either is empty are skipped. Duplicate codes keep
// the last label seen.
func ParseCountries(path, codeColumn, labelColumn string) (*CountryTable, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}

	table := NewCountryTable()
	if len(records) == 0 {
		logging.Warn("indicator CSV is empty", "file", path)
		return table, nil
	}

	header := records[0]
	codeIdx := columnIndex(header, codeColumn)
	labelIdx := columnIndex(header, labelColumn)

	if codeIdx < 0 {
		logging.Warn("code column not found in header", "column", codeColumn, "file", path)
	}
	if labelIdx < 0 {
		logging.Warn("label column not found in header", "column", labelColumn, "file", path)
	}

	skippedEmptyFields := 0
	duplicateOverwrites := 0

	for _, row := range records[1:] {
		code := strings.TrimSpace(fieldAt(row, codeIdx))
		name := strings.TrimSpace(fieldAt(row, labelIdx))

		// A row missing either value carries no usable pair
		if code == "" || name == "" {
			skippedEmptyFields++
			continue
		}

		if table.Insert(code, name) {
			duplicateOverwrites++
		}
	}

	// Log skip statistics if any rows were skipped or overwritten
	if skippedEmptyFields > 0 || duplicateOverwrites > 0 {
		logging.Info("indicator CSV skip statistics",
			"empty_fields", skippedEmptyFields,
			"duplicate_overwrites", duplicateOverwrites,
			"total_rows", len(records)-1,
			"unique_countries", table.Len())
	}

	return table, nil
}

// columnIndex resolves a column by its header name.
func columnIndex(header []string, name string) int {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

// fieldAt returns the field at idx, or an empty string when the row is
// too short or the column was not found in the header.
func fieldAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
