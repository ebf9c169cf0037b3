package countriesparser

import (
	"sort"

	"github.com/arun664/government-spending-explorer/countriesparser/entities"
)

// CountryTable holds the deduplicated code-to-name entries built from the
// indicator CSV. Duplicate codes overwrite: the last row wins.
type CountryTable struct {
	byCode map[string]string
}

// NewCountryTable creates an empty table.
func NewCountryTable() *CountryTable {
	return &CountryTable{byCode: make(map[string]string)}
}

// Insert adds or replaces the entry for code and reports whether an
// existing entry was overwritten.
func (t *CountryTable) Insert(code, name string) bool {
	_, overwritten := t.byCode[code]
	t.byCode[code] = name
	return overwritten
}

// Name returns the label stored for code.
func (t *CountryTable) Name(code string) (string, bool) {
	name, ok := t.byCode[code]
	return name, ok
}

// Len returns the number of unique countries.
func (t *CountryTable) Len() int {
	return len(t.byCode)
}

// Sorted returns the entries ascending by code.
func (t *CountryTable) Sorted() []entities.Country {
	entries := make([]entities.Country, 0, len(t.byCode))
	for code, name := range t.byCode {
		entries = append(entries, entities.Country{Code: code, Name: name})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Code < entries[j].Code
	})

	return entries
}
