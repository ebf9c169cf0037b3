package countriesparser

import (
	"fmt"
	"strings"

	"github.com/arun664/government-spending-explorer/countriesparser/entities"
)

// EscapeLabel escapes single quotes so a label can sit inside a
// single-quoted JS string literal.
func EscapeLabel(name string) string {
	return strings.ReplaceAll(name, "'", "\\'")
}

// RenderSnippet renders the two JS const tables (label→code and
// code→label) that get copy-pasted into the frontend's countryMapping.js.
// The entries are expected to be sorted ascending by code.
func RenderSnippet(entries []entities.Country) string {
	var b strings.Builder
	bar := strings.Repeat("=", 80)

	b.WriteString(bar + "\n")
	b.WriteString("COUNTRY CODE MAPPING (for countryMapping.js)\n")
	b.WriteString(bar + "\n")

	b.WriteString("\n// Extracted from IMF data - REF_AREA_LABEL to REF_AREA\n")
	b.WriteString("const IMF_COUNTRY_MAP = {\n")
	for _, country := range entries {
		fmt.Fprintf(&b, "  '%s': '%s',\n", EscapeLabel(country.Name), country.Code)
	}
	b.WriteString("}\n\n")

	b.WriteString("\n// Reverse mapping (code to name) for display\n")
	b.WriteString("const CODE_TO_NAME = {\n")
	for _, country := range entries {
		fmt.Fprintf(&b, "  '%s': '%s',\n", country.Code, EscapeLabel(country.Name))
	}
	b.WriteString("}\n\n")

	return b.String()
}
