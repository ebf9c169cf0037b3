// Package validation provides quality checks for the extracted country
// mapping. Checks only report through logging; they never change what
// gets written.
package validation

import (
	"fmt"
	"strings"

	"github.com/arun664/government-spending-explorer/countriesparser/entities"
	"github.com/arun664/government-spending-explorer/interfaces"
	"github.com/arun664/government-spending-explorer/logging"
)

const (
	// REF_AREA codes are short ISO-like identifiers
	maxCodeLength = 16
	maxNameLength = 200
)

// CountryValidatorImpl implements the interfaces.DataValidator interface
type CountryValidatorImpl struct{}

// NewCountryValidator creates a new country validator
func NewCountryValidator() interfaces.DataValidator {
	return &CountryValidatorImpl{}
}

// ValidateEntry checks if a country entry is valid
func (v *CountryValidatorImpl) ValidateEntry(country *entities.Country) error {
	if country == nil {
		return fmt.Errorf("country is nil")
	}

	if strings.TrimSpace(country.Code) == "" {
		return fmt.Errorf("empty country code")
	}

	if strings.TrimSpace(country.Name) == "" {
		return fmt.Errorf("empty country name for code %s", country.Code)
	}

	if len(country.Code) > maxCodeLength {
		return fmt.Errorf("country code too long: %q is %d characters", country.Code, len(country.Code))
	}

	if len(country.Name) > maxNameLength {
		return fmt.Errorf("country name too long for code %s: %d characters", country.Code, len(country.Name))
	}

	return nil
}

// ValidateMapping checks the deduplicated entries as a whole: every
// entry must be valid, codes must be unique, and codeToName/nameToCode
// must be exact inverses. Duplicate labels are logged as warnings since
// they make the nameToCode table lossy.
func (v *CountryValidatorImpl) ValidateMapping(entries []entities.Country) error {
	codeCount := make(map[string]int)
	labelCodes := make(map[string][]string)

	for i := range entries {
		if err := v.ValidateEntry(&entries[i]); err != nil {
			return fmt.Errorf("invalid entry at index %d: %w", i, err)
		}

		codeCount[entries[i].Code]++
		labelCodes[entries[i].Name] = append(labelCodes[entries[i].Name], entries[i].Code)
	}

	var duplicateCodes []string
	for code, count := range codeCount {
		if count > 1 {
			duplicateCodes = append(duplicateCodes, code)
		}
	}

	if len(duplicateCodes) > 0 {
		logging.Error("Duplicate country codes detected after deduplication",
			"count", len(duplicateCodes),
			"duplicates", duplicateCodes,
		)
		return fmt.Errorf("duplicate country codes: %v", duplicateCodes)
	}

	for label, codes := range labelCodes {
		if len(codes) > 1 {
			logging.Warn("Label shared by multiple codes, nameToCode keeps the last",
				"label", label,
				"codes", codes,
			)
		}
	}

	return nil
}
