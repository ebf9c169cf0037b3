package countriesparser

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/arun664/government-spending-explorer/countriesparser/entities"
	"github.com/arun664/government-spending-explorer/logging"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Mapping is the serialized form of the country table: two lookup
// tables, both emitted in ascending-code insertion order. Ordered maps
// are used because plain Go maps marshal sorted by key, which would
// reorder nameToCode by label instead of code.
type Mapping struct {
	NameToCode *orderedmap.OrderedMap[string, string] `json:"nameToCode"`
	CodeToName *orderedmap.OrderedMap[string, string] `json:"codeToName"`
}

// BuildMapping builds both lookup tables from entries, which are
// expected to be sorted ascending by code. Duplicate labels keep the
// last code seen, matching the table's last-write-wins policy.
func BuildMapping(entries []entities.Country) *Mapping {
	mapping := &Mapping{
		NameToCode: orderedmap.New[string, string](),
		CodeToName: orderedmap.New[string, string](),
	}

	for _, country := range entries {
		mapping.NameToCode.Set(country.Name, country.Code)
		mapping.CodeToName.Set(country.Code, country.Name)
	}

	return mapping
}

// WriteMappingJSON writes the mapping to path with 2-space indentation,
// overwriting any previous artifact. Non-ASCII characters are kept
// literal.
func WriteMappingJSON(path string, mapping *Mapping) error {
	outFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if err := outFile.Close(); err != nil {
			logging.Warn("Failed to close mapping output file", "error", err)
		}
	}()

	encoder := json.NewEncoder(outFile)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(mapping); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
