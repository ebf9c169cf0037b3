// Package interfaces defines core abstractions for the country mapping
// extractor to improve testability and separation of concerns.
package interfaces

import (
	"github.com/arun664/government-spending-explorer/countriesparser/entities"
)

// Parser produces the deduplicated country entries from an indicator
// CSV, sorted ascending by code.
type Parser interface {
	ParseCountries(path, codeColumn, labelColumn string) ([]entities.Country, error)
}

// DataValidator checks the quality of the extracted mapping. Validation
// is report-only: it never alters the emitted artifacts.
type DataValidator interface {
	ValidateEntry(country *entities.Country) error
	ValidateMapping(entries []entities.Country) error
}
